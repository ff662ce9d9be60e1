package chatmode

// Config describes one ChatMode profile: its persona, analysis scope, the
// input/output contract, fixed policy constraints, and advisory tooling.
// A Config is constructed once per session and never mutated afterwards.
type Config struct {
	Name        string
	Role        Role
	Scope       Scope
	Inputs      map[string]InputSpec
	Outputs     map[string]OutputSpec
	Constraints Constraints
	Behaviors   Behaviors
	Tools       []string
}

// Role describes the persona and mission of a ChatMode.
type Role struct {
	Level   string
	Mission string
}

// Scope describes what the ChatMode focuses its analysis on.
type Scope struct {
	Focus string
}

// InputSpec is the descriptor for a single request parameter.
type InputSpec struct {
	Required bool
	Default  string
	Enum     []string
}

// OutputSpec describes an emitted artifact kind.
type OutputSpec struct {
	Type string
}

// Constraints are the fixed policy values of a ChatMode. EnforceDiagramEngine
// and NoOtherDiagramFormats together pin every diagram to one grammar.
type Constraints struct {
	PreferredDocsFolder    string
	DiagramFolder          string
	DiagramDefaultMode     string
	EnforceDiagramEngine   string
	NoOtherDiagramFormats  bool
	DefaultFormat          string
	FooterRequired         bool
	FooterTemplate         string
	NoGuessing             bool
	IterationUntilComplete bool
}

// Behaviors are the boolean behavior flags of a ChatMode.
type Behaviors struct {
	AskIfMissing  bool
	HighlightGaps bool
}

func enumStrings[T ~string](values []T) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = string(v)
	}
	return out
}

// ArchitectConfig returns the profile for the high-level-big-picture-architect
// ChatMode.
func ArchitectConfig() *Config {
	return &Config{
		Name: "high-level-big-picture-architect",
		Role: Role{
			Level:   "PrincipalSystemsArchitect",
			Mission: "Explain and document software systems at a high level for fast onboarding, architectural clarity, and gap discovery.",
		},
		Scope: Scope{
			Focus: "Interfaces, contracts, data flows, major components, reliability behaviors, error surfaces, and integration points.",
		},
		Inputs: map[string]InputSpec{
			"prompt":       {Required: true},
			"targets":      {Required: true},
			"artifactType": {Required: true, Enum: enumStrings(ArtifactTypes())},
			"depth":        {Default: string(DepthOverview), Enum: enumStrings(Depths())},
			"constraints":  {},
		},
		Outputs: map[string]OutputSpec{
			"document":     {Type: "markdownOrConfluence"},
			"diagramFiles": {Type: "mermaidFileRefs"},
		},
		Constraints: Constraints{
			PreferredDocsFolder:    "docs/",
			DiagramFolder:          "docs/diagrams/",
			DiagramDefaultMode:     "file",
			EnforceDiagramEngine:   "mermaid",
			NoOtherDiagramFormats:  true,
			DefaultFormat:          "markdown",
			FooterRequired:         true,
			FooterTemplate:         "_Generated with GitHub Copilot as directed by {USER_NAME_PLACEHOLDER}",
			NoGuessing:             true,
			IterationUntilComplete: true,
		},
		Behaviors: Behaviors{
			AskIfMissing:  true,
			HighlightGaps: true,
		},
		Tools: []string{
			"codebase", "search", "findTestFiles", "runTests",
			"editFiles", "runCommands",
		},
	}
}
