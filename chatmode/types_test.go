package chatmode

import "testing"

func TestArtifactTypeIsValid(t *testing.T) {
	tests := []struct {
		input ArtifactType
		valid bool
	}{
		{ArtifactDoc, true},
		{ArtifactDiagram, true},
		{ArtifactTestCases, true},
		{ArtifactGapScan, true},
		{ArtifactUseCases, true},
		{ArtifactType("bogus"), false},
		{ArtifactType(""), false},
		{ArtifactType("Doc"), false},
	}

	for _, tt := range tests {
		t.Run(string(tt.input), func(t *testing.T) {
			if got := tt.input.IsValid(); got != tt.valid {
				t.Errorf("IsValid(%q) = %v, want %v", tt.input, got, tt.valid)
			}
		})
	}
}

func TestDepthIsValid(t *testing.T) {
	tests := []struct {
		input Depth
		valid bool
	}{
		{DepthOverview, true},
		{DepthSubsystem, true},
		{DepthInterfaceOnly, true},
		{Depth("deep"), false},
		{Depth(""), false},
	}

	for _, tt := range tests {
		t.Run(string(tt.input), func(t *testing.T) {
			if got := tt.input.IsValid(); got != tt.valid {
				t.Errorf("IsValid(%q) = %v, want %v", tt.input, got, tt.valid)
			}
		})
	}
}

func TestRequestDiagramType(t *testing.T) {
	tests := []struct {
		name        string
		constraints map[string]string
		expected    DiagramType
	}{
		{"nil constraints", nil, DiagramFlowchart},
		{"no diagram key", map[string]string{"format": "markdown"}, DiagramFlowchart},
		{"sequence", map[string]string{"diagram": "sequence"}, DiagramSequence},
		{"class", map[string]string{"diagram": "class"}, DiagramClass},
		{"er", map[string]string{"diagram": "er"}, DiagramER},
		{"state", map[string]string{"diagram": "state"}, DiagramState},
		{"unrecognized falls back", map[string]string{"diagram": "uml"}, DiagramFlowchart},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := Request{Constraints: tt.constraints}
			if got := req.DiagramType(); got != tt.expected {
				t.Errorf("DiagramType() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestArchitectConfig(t *testing.T) {
	cfg := ArchitectConfig()

	if cfg.Name != "high-level-big-picture-architect" {
		t.Errorf("Name = %q", cfg.Name)
	}
	if cfg.Role.Level != "PrincipalSystemsArchitect" {
		t.Errorf("Role.Level = %q", cfg.Role.Level)
	}
	if cfg.Constraints.EnforceDiagramEngine != "mermaid" {
		t.Errorf("EnforceDiagramEngine = %q", cfg.Constraints.EnforceDiagramEngine)
	}
	if !cfg.Constraints.NoOtherDiagramFormats {
		t.Error("NoOtherDiagramFormats should be set")
	}
	if !cfg.Constraints.FooterRequired {
		t.Error("FooterRequired should be set")
	}

	for _, param := range []string{"prompt", "targets", "artifactType"} {
		spec, ok := cfg.Inputs[param]
		if !ok {
			t.Errorf("missing input spec for %q", param)
			continue
		}
		if !spec.Required {
			t.Errorf("input %q should be required", param)
		}
	}

	if cfg.Inputs["depth"].Default != "overview" {
		t.Errorf("depth default = %q, want overview", cfg.Inputs["depth"].Default)
	}
}
