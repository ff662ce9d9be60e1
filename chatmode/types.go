// Package chatmode implements the high-level-big-picture-architect ChatMode:
// a pre-configured workflow that generates architecture documents, mermaid
// diagrams, test-case outlines, gap scans, and use-case documents for a
// target system.
package chatmode

// ArtifactType identifies the kind of artifact a request produces.
type ArtifactType string

const (
	// ArtifactDoc generates an architecture document plus a companion flowchart.
	ArtifactDoc ArtifactType = "doc"
	// ArtifactDiagram generates a single mermaid diagram.
	ArtifactDiagram ArtifactType = "diagram"
	// ArtifactTestCases generates a test-case outline document.
	ArtifactTestCases ArtifactType = "testcases"
	// ArtifactGapScan generates a gap-analysis document.
	ArtifactGapScan ArtifactType = "gapscan"
	// ArtifactUseCases generates a use-case document plus a companion sequence diagram.
	ArtifactUseCases ArtifactType = "usecases"
)

// String returns the string representation of the artifact type.
func (a ArtifactType) String() string {
	return string(a)
}

// IsValid returns true if the artifact type is one of the supported kinds.
func (a ArtifactType) IsValid() bool {
	switch a {
	case ArtifactDoc, ArtifactDiagram, ArtifactTestCases, ArtifactGapScan, ArtifactUseCases:
		return true
	default:
		return false
	}
}

// ArtifactTypes returns all supported artifact types.
func ArtifactTypes() []ArtifactType {
	return []ArtifactType{ArtifactDoc, ArtifactDiagram, ArtifactTestCases, ArtifactGapScan, ArtifactUseCases}
}

// Depth is the requested level of detail for generated content.
// It is advisory text only; no generator algorithmically enforces it.
type Depth string

const (
	// DepthOverview is the default system-level depth.
	DepthOverview Depth = "overview"
	// DepthSubsystem focuses on a single subsystem.
	DepthSubsystem Depth = "subsystem"
	// DepthInterfaceOnly restricts content to interfaces and contracts.
	DepthInterfaceOnly Depth = "interface-only"
)

// String returns the string representation of the depth.
func (d Depth) String() string {
	return string(d)
}

// IsValid returns true if the depth is one of the supported levels.
func (d Depth) IsValid() bool {
	switch d {
	case DepthOverview, DepthSubsystem, DepthInterfaceOnly:
		return true
	default:
		return false
	}
}

// Depths returns all supported depth levels.
func Depths() []Depth {
	return []Depth{DepthOverview, DepthSubsystem, DepthInterfaceOnly}
}

// DiagramType identifies a mermaid diagram skeleton. Mermaid is the single
// enforced diagram engine; no other diagram grammar is ever produced.
type DiagramType string

const (
	DiagramSequence  DiagramType = "sequence"
	DiagramFlowchart DiagramType = "flowchart"
	DiagramClass     DiagramType = "class"
	DiagramER        DiagramType = "er"
	DiagramState     DiagramType = "state"
)

// String returns the string representation of the diagram type.
func (d DiagramType) String() string {
	return string(d)
}

// IsValid returns true if the diagram type is one of the supported kinds.
func (d DiagramType) IsValid() bool {
	switch d {
	case DiagramSequence, DiagramFlowchart, DiagramClass, DiagramER, DiagramState:
		return true
	default:
		return false
	}
}

// DiagramTypes returns all supported diagram types.
func DiagramTypes() []DiagramType {
	return []DiagramType{DiagramSequence, DiagramFlowchart, DiagramClass, DiagramER, DiagramState}
}

// ConstraintDiagram is the request constraint key that selects the diagram
// sub-kind for diagram artifacts.
const ConstraintDiagram = "diagram"

// Request describes one artifact-generation request.
//
// Constraints is a free-form key/value mapping. The only key acted on is
// "diagram"; "format" and "outputDir" are accepted but advisory only — the
// output format and directory layout are fixed by the ChatMode constraints.
type Request struct {
	Prompt      string
	Targets     string
	Artifact    ArtifactType
	Depth       Depth
	Constraints map[string]string
	UserName    string
}

// DiagramType returns the requested diagram sub-kind, falling back to
// flowchart when the constraint is absent or holds an unrecognized value.
// The fallback is deliberate: an unknown diagram kind is not an error.
func (r Request) DiagramType() DiagramType {
	if dt := DiagramType(r.Constraints[ConstraintDiagram]); dt.IsValid() {
		return dt
	}
	return DiagramFlowchart
}

// Result holds the artifacts produced by a single request. Document and
// DiagramFiles are set for document artifacts; DiagramFile and DiagramType
// for diagram artifacts. Content is always the raw text that was written.
type Result struct {
	Document     string      `json:"document,omitempty"`
	DiagramFiles []string    `json:"diagramFiles,omitempty"`
	DiagramFile  string      `json:"diagram_file,omitempty"`
	DiagramType  DiagramType `json:"diagram_type,omitempty"`
	Content      string      `json:"content"`
}
