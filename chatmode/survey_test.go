package chatmode

import (
	"os"
	"path/filepath"
	"testing"
)

func TestStubSurveyor(t *testing.T) {
	survey, err := StubSurveyor{}.Survey("AuthService")
	if err != nil {
		t.Fatalf("Survey failed: %v", err)
	}

	if len(survey.FilesFound) != 0 || len(survey.Components) != 0 ||
		len(survey.Interfaces) != 0 || len(survey.Dependencies) != 0 {
		t.Errorf("stub surveyor must return an empty survey, got %+v", survey)
	}
}

func TestGlobSurveyor(t *testing.T) {
	root := t.TempDir()
	mustWrite := func(rel string) {
		path := filepath.Join(root, rel)
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte("x"), 0644); err != nil {
			t.Fatal(err)
		}
	}
	mustWrite("internal/auth/AuthService.go")
	mustWrite("internal/auth/AuthService_test.go")
	mustWrite("internal/billing/Invoice.go")

	tests := []struct {
		name     string
		targets  string
		expected []string
	}{
		{
			name:     "bare component name matches recursively",
			targets:  "AuthService",
			expected: []string{"internal/auth/AuthService.go", "internal/auth/AuthService_test.go"},
		},
		{
			name:     "explicit glob pattern",
			targets:  "internal/**/*.go",
			expected: []string{"internal/auth/AuthService.go", "internal/auth/AuthService_test.go", "internal/billing/Invoice.go"},
		},
		{
			name:     "comma-separated targets are merged",
			targets:  "AuthService, Invoice",
			expected: []string{"internal/auth/AuthService.go", "internal/auth/AuthService_test.go", "internal/billing/Invoice.go"},
		},
		{
			name:     "no matches",
			targets:  "PaymentGateway",
			expected: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			survey, err := GlobSurveyor{Root: root}.Survey(tt.targets)
			if err != nil {
				t.Fatalf("Survey failed: %v", err)
			}

			found := make(map[string]bool)
			for _, f := range survey.FilesFound {
				found[f] = true
			}
			if len(survey.FilesFound) != len(tt.expected) {
				t.Errorf("FilesFound = %v, want %v", survey.FilesFound, tt.expected)
			}
			for _, want := range tt.expected {
				if !found[want] {
					t.Errorf("missing expected file %q in %v", want, survey.FilesFound)
				}
			}
		})
	}
}

func TestContainsGlob(t *testing.T) {
	tests := []struct {
		pattern  string
		expected bool
	}{
		{"AuthService", false},
		{"internal/auth", false},
		{"*.go", true},
		{"internal/**", true},
		{"file?.go", true},
		{"{a,b}.go", true},
	}

	for _, tt := range tests {
		if got := containsGlob(tt.pattern); got != tt.expected {
			t.Errorf("containsGlob(%q) = %v, want %v", tt.pattern, got, tt.expected)
		}
	}
}
