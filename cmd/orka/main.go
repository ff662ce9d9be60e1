// Package main provides the orka binary entry point.
// Orka generates architectural documentation and mermaid diagrams from
// natural-language requests via the architect ChatMode.
package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/spf13/cobra"

	"github.com/anchildress1/orka-reasoning/agent"
	"github.com/anchildress1/orka-reasoning/chatmode"
	"github.com/anchildress1/orka-reasoning/config"
)

const (
	Version   = "0.1.0"
	BuildTime = "dev"
	appName   = "orka"
)

func main() {
	// Add panic recovery
	defer func() {
		if r := recover(); r != nil {
			buf := make([]byte, 4096)
			n := runtime.Stack(buf, false)
			_, _ = fmt.Fprintf(os.Stderr, "PANIC: %v\nStack trace:\n%s\n", r, string(buf[:n]))
			os.Exit(2)
		}
	}()

	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "❌ Error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var logLevel string

	cmd := &cobra.Command{
		Use:   appName,
		Short: "Architectural documentation generator",
		Long: `Orka generates architectural artifacts from natural-language requests.

It provides:
- Architecture documents, test-case outlines, gap scans, and use cases
- Mermaid diagrams (flowchart, sequence, class, er, state)
- A docs/ and docs/diagrams/ output layout inside the workspace`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			configureLogging(logLevel)
		},
	}

	cmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")

	cmd.AddCommand(architectCmd())

	// Version command
	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("%s version %s (build: %s)\n", appName, Version, BuildTime)
		},
	})

	return cmd
}

// configureLogging installs a text slog handler at the requested level.
func configureLogging(logLevel string) {
	level := slog.LevelInfo
	switch strings.ToLower(logLevel) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
}

func architectCmd() *cobra.Command {
	var (
		artifactType string
		depth        string
		diagramType  string
		outputDir    string
		format       string
		userName     string
		workspace    string
		scan         bool
		asJSON       bool
	)

	cmd := &cobra.Command{
		Use:   "architect <prompt> <targets>",
		Short: "Generate architectural documentation and diagrams",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			prompt, targets := args[0], args[1]

			cfg, err := config.NewLoader(slog.Default()).Load()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}

			// Flags win over config; config wins over defaults.
			if !cmd.Flags().Changed("workspace") && cfg.Workspace.Path != "" {
				workspace = cfg.Workspace.Path
			}
			if !cmd.Flags().Changed("user-name") {
				userName = cfg.User.Name
			}
			if !cmd.Flags().Changed("format") {
				format = cfg.Output.Format
			}

			absWorkspace, err := filepath.Abs(workspace)
			if err != nil {
				return fmt.Errorf("resolve workspace path: %w", err)
			}

			var opts []chatmode.Option
			if scan || cfg.Workspace.Scan {
				opts = append(opts, chatmode.WithSurveyor(chatmode.GlobSurveyor{Root: absWorkspace}))
			}

			constraints := map[string]string{
				"format":    format,
				"outputDir": outputDir,
			}
			if diagramType != "" {
				constraints["diagram"] = diagramType
			}

			ag := agent.New("architect-agent", absWorkspace, opts...)
			resp := ag.Process(cmd.Context(), prompt, &agent.Context{
				Prompt:       prompt,
				Targets:      targets,
				ArtifactType: artifactType,
				Depth:        depth,
				UserName:     userName,
				Constraints:  constraints,
			})

			if !resp.Success {
				return fmt.Errorf("%s", resp.Error)
			}

			fmt.Println("✅ Successfully generated architectural documentation!")
			if resp.Result.Document != "" {
				fmt.Printf("📄 Document: %s\n", resp.Result.Document)
			}
			if resp.Result.DiagramFile != "" {
				fmt.Printf("📊 Diagram: %s\n", resp.Result.DiagramFile)
			}
			if len(resp.Result.DiagramFiles) > 0 {
				fmt.Println("📊 Diagrams:")
				for _, diagram := range resp.Result.DiagramFiles {
					fmt.Printf("   - %s\n", diagram)
				}
			}

			if asJSON {
				data, err := json.MarshalIndent(resp, "", "  ")
				if err != nil {
					return fmt.Errorf("marshal response: %w", err)
				}
				fmt.Println(string(data))
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&artifactType, "artifact-type", "doc", "Type of artifact to generate (doc, diagram, testcases, gapscan, usecases)")
	cmd.Flags().StringVar(&depth, "depth", "overview", "Level of detail (overview, subsystem, interface-only)")
	cmd.Flags().StringVar(&diagramType, "diagram-type", "", "Diagram type for diagram artifacts (sequence, flowchart, class, er, state)")
	cmd.Flags().StringVar(&outputDir, "output-dir", "docs", "Output directory for generated files (advisory)")
	cmd.Flags().StringVar(&format, "format", "markdown", "Output format for documents (markdown, confluence)")
	cmd.Flags().StringVar(&userName, "user-name", "User", "User name for the generated footer")
	cmd.Flags().StringVar(&workspace, "workspace", ".", "Workspace path for analysis")
	cmd.Flags().BoolVar(&scan, "scan", false, "Survey the workspace for target files with glob matching")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the full response envelope as JSON")

	return cmd
}
