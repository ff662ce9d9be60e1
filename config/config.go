// Package config provides configuration loading and management for the
// orka artifact generator.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config represents the complete tool configuration
type Config struct {
	Workspace WorkspaceConfig `yaml:"workspace"`
	Output    OutputConfig    `yaml:"output"`
	User      UserConfig      `yaml:"user"`
}

// WorkspaceConfig configures the workspace settings
type WorkspaceConfig struct {
	// Path is the workspace root path (auto-detected from git if empty).
	// Documents are written to {path}/docs, diagrams to {path}/docs/diagrams.
	Path string `yaml:"path"`
	// Scan enables the glob-based codebase surveyor instead of the stub
	Scan bool `yaml:"scan"`
}

// OutputConfig configures document output settings
type OutputConfig struct {
	// Format is the document format (markdown or confluence).
	// Advisory only: generators currently always emit markdown.
	Format string `yaml:"format"`
}

// UserConfig configures the requesting user identity
type UserConfig struct {
	// Name appears in the attribution footer of every generated artifact
	Name string `yaml:"name"`
}

// DefaultConfig returns a Config with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Workspace: WorkspaceConfig{
			Path: "", // Auto-detect
			Scan: false,
		},
		Output: OutputConfig{
			Format: "markdown",
		},
		User: UserConfig{
			Name: "User",
		},
	}
}

// Validate checks that the configuration is valid
func (c *Config) Validate() error {
	switch c.Output.Format {
	case "markdown", "confluence":
	default:
		return fmt.Errorf("output.format must be markdown or confluence, got %q", c.Output.Format)
	}
	if c.User.Name == "" {
		return fmt.Errorf("user.name is required")
	}
	return nil
}

// LoadFromFile loads configuration from a YAML file
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return config, nil
}

// SaveToFile saves configuration to a YAML file
func (c *Config) SaveToFile(path string) error {
	// Ensure parent directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Merge merges another config into this one (other takes precedence for non-zero values)
func (c *Config) Merge(other *Config) {
	if other == nil {
		return
	}

	if other.Workspace.Path != "" {
		c.Workspace.Path = other.Workspace.Path
	}
	if other.Workspace.Scan {
		c.Workspace.Scan = true
	}

	if other.Output.Format != "" {
		c.Output.Format = other.Output.Format
	}

	if other.User.Name != "" {
		c.User.Name = other.User.Name
	}
}
