package chatmode

import (
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// Survey is the result of scanning a codebase for the requested targets.
type Survey struct {
	FilesFound   []string `json:"files_found"`
	Components   []string `json:"components"`
	Interfaces   []string `json:"interfaces"`
	Dependencies []string `json:"dependencies"`
}

// EmptySurvey returns a survey with no findings.
func EmptySurvey() *Survey {
	return &Survey{
		FilesFound:   []string{},
		Components:   []string{},
		Interfaces:   []string{},
		Dependencies: []string{},
	}
}

// Surveyor scans a workspace for the targets named in a request. It is an
// injectable collaborator: the architect only consumes the returned Survey.
type Surveyor interface {
	Survey(targets string) (*Survey, error)
}

// StubSurveyor is the default surveyor. It performs no analysis and always
// returns an empty survey, keeping generated content independent of
// workspace state.
type StubSurveyor struct{}

// Survey returns an empty survey.
func (StubSurveyor) Survey(string) (*Survey, error) {
	return EmptySurvey(), nil
}

// GlobSurveyor resolves comma-separated target patterns as doublestar globs
// over a workspace root and records the matching files. Patterns without
// glob characters are tried as-is and then as a recursive **/<target>*
// match, so a bare component name like "AuthService" still finds its files.
type GlobSurveyor struct {
	Root string
}

// Survey resolves each target pattern against the workspace.
func (g GlobSurveyor) Survey(targets string) (*Survey, error) {
	survey := EmptySurvey()
	fsys := os.DirFS(g.Root)
	seen := make(map[string]bool)

	for _, target := range strings.Split(targets, ",") {
		target = strings.TrimSpace(target)
		if target == "" {
			continue
		}

		patterns := []string{target}
		if !containsGlob(target) {
			patterns = append(patterns, "**/"+target+"*")
		}

		for _, pattern := range patterns {
			matches, err := doublestar.Glob(fsys, pattern)
			if err != nil {
				return nil, fmt.Errorf("resolve pattern %q: %w", pattern, err)
			}
			for _, m := range matches {
				if seen[m] {
					continue
				}
				seen[m] = true
				if info, err := fs.Stat(fsys, m); err == nil && !info.IsDir() {
					survey.FilesFound = append(survey.FilesFound, m)
				}
			}
		}
	}

	return survey, nil
}

// containsGlob returns true if the pattern contains glob characters.
func containsGlob(pattern string) bool {
	return strings.ContainsAny(pattern, "*?[{")
}
