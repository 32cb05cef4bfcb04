// Package inspect implements the inspect command, the full analysis
// pipeline from catalog to rendered report.
package inspect

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/repolens/repolens/internal/catalog"
	"github.com/repolens/repolens/internal/config"
	"github.com/repolens/repolens/internal/inspect"
	"github.com/repolens/repolens/internal/prompts"
	"github.com/repolens/repolens/internal/providers"
	"github.com/repolens/repolens/internal/report"
)

// Flag variables for the inspect command.
var (
	inspectLevel       string
	inspectDiagram     bool
	inspectFormat      string
	inspectTargetSize  int
	inspectConcurrency int
	inspectAPIKey      string
)

var progressStyle = lipgloss.NewStyle().Faint(true)

// InspectCmd analyzes a repository and prints a synthesized report.
var InspectCmd = &cobra.Command{
	Use:   "inspect <path>",
	Short: "Analyze a repository and generate a comprehensive summary",
	Long: "Analyze a repository with the configured LLM provider.\n\n" +
		"Files are cataloged, partitioned into chunks, analyzed chunk by chunk, " +
		"and synthesized into a single report. Use --diagram to also request a " +
		"Mermaid architecture diagram.",
	Example: `  # Analyze the current directory
  repolens inspect .

  # Senior-level analysis with a diagram, as markdown
  repolens inspect /path/to/repo --level senior --diagram --format markdown`,
	Args:    cobra.ExactArgs(1),
	PreRunE: validateInspect,
	RunE:    runInspect,
}

func init() {
	InspectCmd.Flags().StringVarP(&inspectLevel, "level", "l", "",
		"Explanation level: 'beginner' or 'senior' (default from config)")
	InspectCmd.Flags().BoolVarP(&inspectDiagram, "diagram", "d", false,
		"Generate a Mermaid architecture diagram")
	InspectCmd.Flags().StringVarP(&inspectFormat, "format", "f", "",
		"Output format: 'text' or 'markdown' (default from config)")
	InspectCmd.Flags().IntVarP(&inspectTargetSize, "target-size", "t", 0,
		"Chunk byte budget (default from config)")
	InspectCmd.Flags().IntVarP(&inspectConcurrency, "concurrency", "c", 0,
		"Parallel chunk analysis calls (default from config)")
	InspectCmd.Flags().StringVar(&inspectAPIKey, "api-key", "",
		"Provider API key (defaults to the provider's environment variable)")
}

func validateInspect(cmd *cobra.Command, args []string) error {
	if inspectLevel != "" && !prompts.ValidLevel(inspectLevel) {
		return fmt.Errorf("invalid level %q; use 'beginner' or 'senior'", inspectLevel)
	}
	if inspectFormat != "" && !report.ValidFormat(inspectFormat) {
		return fmt.Errorf("invalid format %q; use 'text' or 'markdown'", inspectFormat)
	}
	if cmd.Flags().Changed("target-size") && inspectTargetSize <= 0 {
		return fmt.Errorf("invalid target size %d; must be positive", inspectTargetSize)
	}
	if cmd.Flags().Changed("concurrency") && inspectConcurrency < 1 {
		return fmt.Errorf("invalid concurrency %d; must be >= 1", inspectConcurrency)
	}

	cmd.SilenceUsage = true
	return nil
}

func runInspect(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	out := cmd.OutOrStdout()
	errOut := cmd.ErrOrStderr()
	cfg := config.Get()

	level := inspectLevel
	if level == "" {
		level = cfg.Analysis.Level
	}
	format := inspectFormat
	if format == "" {
		format = cfg.Output.Format
	}
	targetSize := inspectTargetSize
	if targetSize <= 0 {
		targetSize = cfg.Chunking.TargetSize
	}
	concurrency := inspectConcurrency
	if concurrency < 1 {
		concurrency = cfg.Analysis.Concurrency
	}
	diagram := inspectDiagram || cfg.Analysis.Diagram

	analyzer, err := buildAnalyzer(cfg)
	if err != nil {
		return err
	}
	if !analyzer.Available() {
		return fmt.Errorf("provider %q has no API key; set %s or use --api-key",
			analyzer.Name(), cfg.Provider.APIKeyEnv)
	}

	filter := catalog.NewFilter(catalog.Options{
		MaxFileSize:     cfg.Catalog.MaxFileSize,
		SkipExtensions:  cfg.Catalog.SkipExtensions,
		SkipDirectories: cfg.Catalog.SkipDirectories,
		SkipFiles:       cfg.Catalog.SkipFiles,
	})

	files, err := catalog.Load(args[0], filter)
	if err != nil {
		return fmt.Errorf("failed to load repository; %w", err)
	}

	if len(files) == 0 {
		fmt.Fprintln(out, "No files found to analyze.")
		fmt.Fprintln(out, "Make sure the repository contains supported file types (.py, .js, .ts, .go, .java, .yaml, .json, .md, etc.)")
		return nil
	}

	fmt.Fprintln(errOut, progressStyle.Render(fmt.Sprintf("Found %d files to analyze", len(files))))

	result, err := inspect.Run(ctx, analyzer, files, inspect.Options{
		Level:       level,
		Diagram:     diagram,
		TargetSize:  targetSize,
		Concurrency: concurrency,
		OnProgress: func(stage string, current, total int) {
			switch stage {
			case inspect.StageAnalyzing:
				fmt.Fprintln(errOut, progressStyle.Render(
					fmt.Sprintf("Analyzed chunk %d/%d", current, total)))
			case inspect.StageSynthesizing:
				fmt.Fprintln(errOut, progressStyle.Render("Synthesizing results..."))
			}
		},
	})
	if err != nil {
		return err
	}

	rendered, err := report.Render(result, format)
	if err != nil {
		return err
	}
	fmt.Fprint(out, rendered)

	return nil
}

// buildAnalyzer constructs the configured provider from config and flags.
func buildAnalyzer(cfg *config.Config) (providers.Analyzer, error) {
	apiKey := inspectAPIKey
	if apiKey == "" {
		apiKey = cfg.Provider.ResolveAPIKey()
	}

	// The explicit key only applies to the selected provider; the other one
	// falls back to its own environment variable.
	googleKey, openaiKey := "", ""
	switch cfg.Provider.Name {
	case "google":
		googleKey = apiKey
	case "openai":
		openaiKey = apiKey
	}

	registry := providers.NewRegistry()

	if err := registry.Register(providers.NewGoogleAnalyzer(
		providers.WithGoogleModel(cfg.Provider.Model),
		providers.WithGoogleAPIKey(googleKey),
		providers.WithGoogleRateLimit(cfg.Provider.RateLimit),
	)); err != nil {
		return nil, err
	}

	if err := registry.Register(providers.NewOpenAIAnalyzer(
		providers.WithOpenAIModel(cfg.Provider.Model),
		providers.WithOpenAIAPIKey(openaiKey),
		providers.WithOpenAIRateLimit(cfg.Provider.RateLimit),
	)); err != nil {
		return nil, err
	}

	return registry.Get(cfg.Provider.Name)
}
