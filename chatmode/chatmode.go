package chatmode

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"
)

// Directory and file-extension constants for the generated artifact tree.
const (
	DocsDir     = "docs"
	DiagramsDir = "diagrams"
	DocumentExt = ".md"
	DiagramExt  = ".mmd"
)

// DefaultUserName is used for the footer when a request names no user.
const DefaultUserName = "User"

// timestampLayout gives second-resolution, filename-safe timestamps
// (e.g. 20250115_093042). Two writes of the same kind within one second
// collide and overwrite; callers accept that.
const timestampLayout = "20060102_150405"

// Architect is the high-level-big-picture-architect ChatMode. It validates
// requests, routes them to the matching generator, and writes artifacts
// under {workspace}/docs and {workspace}/docs/diagrams.
type Architect struct {
	workspace      string
	docsFolder     string
	diagramsFolder string
	config         *Config
	surveyor       Surveyor
	logger         *slog.Logger
}

// Option configures an Architect.
type Option func(*Architect)

// WithSurveyor replaces the default stub surveyor.
func WithSurveyor(s Surveyor) Option {
	return func(a *Architect) {
		a.surveyor = s
	}
}

// WithLogger sets the logger used for request processing.
func WithLogger(l *slog.Logger) Option {
	return func(a *Architect) {
		a.logger = l
	}
}

// NewArchitect creates an architect rooted at the given workspace path.
func NewArchitect(workspace string, opts ...Option) *Architect {
	docsFolder := filepath.Join(workspace, DocsDir)
	a := &Architect{
		workspace:      workspace,
		docsFolder:     docsFolder,
		diagramsFolder: filepath.Join(docsFolder, DiagramsDir),
		config:         ArchitectConfig(),
		surveyor:       StubSurveyor{},
		logger:         slog.Default(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Config returns the profile this architect operates under.
func (a *Architect) Config() *Config {
	return a.config
}

// DocsPath returns the documents output directory.
func (a *Architect) DocsPath() string {
	return a.docsFolder
}

// DiagramsPath returns the diagrams output directory.
func (a *Architect) DiagramsPath() string {
	return a.diagramsFolder
}

// Process validates the request, ensures the output directories exist, and
// routes to the generator for the requested artifact type. Validation
// failures abort before any directory or file is touched.
func (a *Architect) Process(req Request) (*Result, error) {
	if req.Depth == "" {
		req.Depth = DepthOverview
	}
	if req.UserName == "" {
		req.UserName = DefaultUserName
	}

	if !req.Artifact.IsValid() {
		return nil, fmt.Errorf("invalid artifact_type: %q", req.Artifact)
	}
	if !req.Depth.IsValid() {
		return nil, fmt.Errorf("invalid depth: %q", req.Depth)
	}

	a.logger.Info("Processing artifact request",
		"artifact_type", req.Artifact,
		"targets", req.Targets,
		"depth", req.Depth)

	if err := a.ensureDirectories(); err != nil {
		return nil, err
	}

	switch req.Artifact {
	case ArtifactDoc:
		return a.generateDocumentation(req)
	case ArtifactDiagram:
		return a.generateDiagram(req)
	case ArtifactTestCases:
		return a.writeDocument("testcases", TestCasesTemplate(req.Prompt, req.Targets, req.UserName))
	case ArtifactGapScan:
		return a.writeDocument("gapscan", GapScanTemplate(req.Prompt, req.Targets, req.UserName))
	case ArtifactUseCases:
		return a.generateUseCases(req)
	default:
		return nil, fmt.Errorf("unsupported artifact_type: %q", req.Artifact)
	}
}

// ensureDirectories creates the docs and diagrams directories if absent.
func (a *Architect) ensureDirectories() error {
	for _, dir := range []string{a.docsFolder, a.diagramsFolder} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}
	return nil
}

// generateDocumentation writes the architecture document and its companion
// flowchart. The two writes are not atomic: a failed diagram write leaves
// the document on disk.
func (a *Architect) generateDocumentation(req Request) (*Result, error) {
	survey, err := a.surveyor.Survey(req.Targets)
	if err != nil {
		return nil, fmt.Errorf("failed to survey codebase: %w", err)
	}

	content := DocumentTemplate(req.Prompt, req.Targets, req.Depth, survey, req.UserName)
	docPath := filepath.Join(a.docsFolder, fmt.Sprintf("architecture_doc_%s%s", timestamp(), DocumentExt))
	if err := writeFile(docPath, content); err != nil {
		return nil, err
	}

	diagram, err := a.writeDiagram(DiagramFlowchart, req)
	if err != nil {
		return nil, err
	}

	return &Result{
		Document:     docPath,
		DiagramFiles: []string{diagram.DiagramFile},
		Content:      content,
	}, nil
}

// generateDiagram routes to the mermaid skeleton selected by the request's
// diagram constraint, defaulting to flowchart.
func (a *Architect) generateDiagram(req Request) (*Result, error) {
	return a.writeDiagram(req.DiagramType(), req)
}

// generateUseCases writes the use-case document and its companion sequence
// diagram. The pairing is fixed; the diagram constraint is ignored here.
func (a *Architect) generateUseCases(req Request) (*Result, error) {
	diagram, err := a.writeDiagram(DiagramSequence, req)
	if err != nil {
		return nil, err
	}

	content := UseCasesTemplate(req.Prompt, req.Targets, req.UserName)
	docPath := filepath.Join(a.docsFolder, fmt.Sprintf("usecases_%s%s", timestamp(), DocumentExt))
	if err := writeFile(docPath, content); err != nil {
		return nil, err
	}

	return &Result{
		Document:     docPath,
		DiagramFiles: []string{diagram.DiagramFile},
		Content:      content,
	}, nil
}

// writeDocument writes a standalone document artifact with no diagrams.
func (a *Architect) writeDocument(kind, content string) (*Result, error) {
	docPath := filepath.Join(a.docsFolder, fmt.Sprintf("%s_%s%s", kind, timestamp(), DocumentExt))
	if err := writeFile(docPath, content); err != nil {
		return nil, err
	}
	return &Result{
		Document:     docPath,
		DiagramFiles: []string{},
		Content:      content,
	}, nil
}

// writeDiagram renders and writes one mermaid diagram of the given kind.
func (a *Architect) writeDiagram(kind DiagramType, req Request) (*Result, error) {
	var content string
	switch kind {
	case DiagramSequence:
		content = SequenceDiagram(req.Prompt, req.Targets, req.UserName)
	case DiagramFlowchart:
		content = FlowchartDiagram(req.Prompt, req.Targets, req.UserName)
	case DiagramClass:
		content = ClassDiagram(req.Targets, req.UserName)
	case DiagramER:
		content = ERDiagram(req.UserName)
	case DiagramState:
		content = StateDiagram(req.Prompt, req.UserName)
	default:
		content = FlowchartDiagram(req.Prompt, req.Targets, req.UserName)
		kind = DiagramFlowchart
	}

	diagramPath := filepath.Join(a.diagramsFolder, fmt.Sprintf("%s_%s%s", kind, timestamp(), DiagramExt))
	if err := writeFile(diagramPath, content); err != nil {
		return nil, err
	}

	return &Result{
		DiagramFile: diagramPath,
		DiagramType: kind,
		Content:     content,
	}, nil
}

// timestamp returns the current time in the artifact filename layout.
func timestamp() string {
	return time.Now().Format(timestampLayout)
}

// writeFile writes content to a file.
func writeFile(path, content string) error {
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("failed to write file %s: %w", path, err)
	}
	return nil
}
