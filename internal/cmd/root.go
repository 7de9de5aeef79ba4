// Package cmd contains all CLI commands for apimap.
package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/apimap/apimap/internal/config"
	"github.com/apimap/apimap/internal/mapper"
	"github.com/apimap/apimap/internal/render"
	"github.com/apimap/apimap/internal/store"
	"github.com/apimap/apimap/internal/surface"
)

// Version is the current version of apimap.
var Version = "0.1.0"

// Global flags
var (
	verbose      bool
	configPath   string
	forAgents    bool
	outputFormat string
	outputDir    string
	writeIndex   bool
)

// rootCmd represents the base command. apimap is single-purpose, so the root
// command runs the mapping itself.
var rootCmd = &cobra.Command{
	Use:   "apimap [path]",
	Short: "Map the public API surface of C# projects",
	Long: `apimap parses C# source files and writes a compact, hierarchical map of
their public API surface, sized for consumers with limited context budgets
such as AI agents.

For each project (.csproj) under the given path, apimap:
  1. Collects its .cs files, skipping bin/ and obj/ output directories
  2. Parses each file with tree-sitter
  3. Extracts public and internal declarations into a member tree
     (namespaces, classes, interfaces, records, enums, constructors,
     methods, properties), with canonical signatures, doc summaries,
     base types, and attributes
  4. Writes one artifact per project to the output directory

A path with no .csproj files is treated as a single implicit project.
Private and protected declarations are excluded along with everything
nested inside them.

Examples:
  apimap .                       # Map projects under the current directory
  apimap ./src --format json     # JSON artifacts
  apimap . --out build/maps      # Custom output directory
  apimap . --db                  # Also write a queryable SQLite index
  apimap serve                   # Expose the mapper over MCP`,
	Args:    cobra.MaximumNArgs(1),
	Version: Version,
	RunE:    runMap,
}

// Execute adds all child commands to the root command and runs it.
// This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config file (default: .apimap.yaml, searched upward)")
	rootCmd.Flags().StringVar(&outputFormat, "format", "", "Output format (text|json, default text)")
	rootCmd.Flags().StringVar(&outputDir, "out", "", "Output directory (default api-maps)")
	rootCmd.Flags().BoolVar(&writeIndex, "db", false, "Also write a SQLite surface index to the output directory")
	rootCmd.Flags().BoolVar(&forAgents, "for-agents", false, "Output machine-readable capability discovery JSON")

	// Custom help function to intercept --for-agents
	originalHelp := rootCmd.HelpFunc()
	rootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		if forAgents {
			outputAgentHelp(cmd)
			return
		}
		originalHelp(cmd, args)
	})
}

// runMap implements the root command: discover, map, render, write.
func runMap(cmd *cobra.Command, args []string) error {
	rootPath := "."
	if len(args) > 0 {
		rootPath = args[0]
	}

	cfg, err := loadConfig(rootPath)
	if err != nil {
		return err
	}

	format, err := render.ParseFormat(cfg.Output.Format)
	if err != nil {
		return err
	}

	projects, runSummary, err := mapper.Run(mapper.Options{
		Root:     rootPath,
		Excludes: cfg.Scan.Exclude,
		Report:   cmd.ErrOrStderr(),
	})
	if err != nil {
		return err
	}

	if len(projects) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "no API surface found")
		return nil
	}

	if err := os.MkdirAll(cfg.Output.Dir, 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	var idx *store.Store
	if writeIndex || cfg.Output.Index {
		idx, err = store.Open(filepath.Join(cfg.Output.Dir, "surface.db"))
		if err != nil {
			return err
		}
		defer idx.Close()
	}

	written := 0
	for _, pm := range projects {
		if err := writeArtifact(cfg.Output.Dir, pm, format); err != nil {
			// Write failures are isolated per project.
			fmt.Fprintf(cmd.ErrOrStderr(), "writing %s: %v\n", pm.Name, err)
			continue
		}
		written++

		if idx != nil {
			if err := idx.SaveProject(pm.Name, pm.Files); err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "indexing %s: %v\n", pm.Name, err)
			}
		}

		if verbose {
			fmt.Fprintf(cmd.ErrOrStderr(), "%s: %d files, %d types\n",
				pm.Name, pm.Summary.Files, pm.Summary.Types)
		}
	}

	fmt.Fprintln(cmd.OutOrStdout(), summaryLine(runSummary, written))
	return nil
}

// loadConfig loads config for the scan root and applies flag overrides.
func loadConfig(rootPath string) (*config.Config, error) {
	var cfg *config.Config
	var err error
	if configPath != "" {
		cfg, err = config.LoadFromPath(configPath)
	} else {
		cfg, err = config.Load(rootPath)
	}
	if err != nil {
		return nil, err
	}

	if outputFormat != "" {
		cfg.Output.Format = outputFormat
	}
	if outputDir != "" {
		cfg.Output.Dir = outputDir
	}
	return cfg, nil
}

// writeArtifact assembles one project's artifact fully in memory and then
// writes it, so a failed write never leaves truncated output behind.
func writeArtifact(dir string, pm mapper.ProjectMap, format render.Format) error {
	var data []byte
	switch format {
	case render.FormatJSON:
		var err error
		data, err = render.JSON(pm.Files, pm.Summary)
		if err != nil {
			return err
		}
	default:
		data = []byte(render.Text(pm.Files, pm.Summary))
	}

	path := filepath.Join(dir, pm.Name+"."+format.Extension())
	return os.WriteFile(path, data, 0o644)
}

// summaryLine formats the process-wide run summary.
func summaryLine(s surface.Summary, written int) string {
	return fmt.Sprintf("mapped %d projects (%d written): %d files, %d namespaces, %d types, %d methods",
		s.Projects, written, s.Files, s.Namespaces, s.Types, s.Methods)
}
