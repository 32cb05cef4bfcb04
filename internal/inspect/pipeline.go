// Package inspect orchestrates the analysis pipeline: partition the catalog
// into chunks, analyze each chunk with a provider, synthesize the per-chunk
// analyses into one report, and optionally request an architecture diagram.
package inspect

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync/atomic"

	"github.com/google/uuid"
	"github.com/sourcegraph/conc/pool"

	"github.com/repolens/repolens/internal/catalog"
	"github.com/repolens/repolens/internal/chunker"
	"github.com/repolens/repolens/internal/diagram"
	"github.com/repolens/repolens/internal/prompts"
	"github.com/repolens/repolens/internal/providers"
)

// Progress stages reported to the OnProgress callback.
const (
	StageAnalyzing    = "analyzing"
	StageSynthesizing = "synthesizing"
)

// Options configures a pipeline run.
type Options struct {
	// Level selects the prompt set ("beginner" or "senior").
	Level string

	// Diagram requests a Mermaid architecture diagram after synthesis.
	Diagram bool

	// TargetSize is the chunk byte budget; DefaultTargetSize when zero.
	TargetSize int

	// Concurrency bounds parallel per-chunk analysis calls. Values below 1
	// run sequentially. Output ordering is stable regardless.
	Concurrency int

	// OnProgress, when set, receives (stage, current, total) updates.
	OnProgress func(stage string, current, total int)
}

// Result is the complete outcome of inspecting a repository.
type Result struct {
	Summary    string
	Diagram    string
	FileCount  int
	ChunkCount int
	Stats      catalog.Stats
}

// Run inspects the given files using the analyzer. Partitioning is pure and
// is never retried on provider failure; a failed run can safely be re-run
// against the same tree.
func Run(ctx context.Context, analyzer providers.Analyzer, files []catalog.SourceFile, opts Options) (*Result, error) {
	if opts.Level == "" {
		opts.Level = prompts.LevelBeginner
	}
	if opts.TargetSize <= 0 {
		opts.TargetSize = chunker.DefaultTargetSize
	}
	if opts.Concurrency < 1 {
		opts.Concurrency = 1
	}

	logger := slog.With("run_id", uuid.NewString(), "provider", analyzer.Name(), "model", analyzer.Model())

	if len(files) == 0 {
		return &Result{Summary: "No files found to analyze."}, nil
	}

	stats := catalog.Collect(files)

	chunks, err := chunker.Partition(files, opts.TargetSize)
	if err != nil {
		return nil, fmt.Errorf("failed to partition files; %w", err)
	}
	if len(chunks) == 0 {
		return &Result{
			Summary:   "No content to analyze after chunking.",
			FileCount: len(files),
			Stats:     stats,
		}, nil
	}

	logger.Info("starting analysis", "files", len(files), "chunks", len(chunks), "level", opts.Level)

	analyses, err := analyzeChunks(ctx, analyzer, chunks, opts)
	if err != nil {
		return nil, err
	}

	report(opts, StageSynthesizing, 0, 0)
	logger.Info("synthesizing analyses", "chunks", len(analyses))

	summary, err := synthesize(ctx, analyzer, analyses, opts.Level)
	if err != nil {
		return nil, err
	}

	result := &Result{
		Summary:    summary,
		FileCount:  len(files),
		ChunkCount: len(chunks),
		Stats:      stats,
	}

	if opts.Diagram {
		code, err := generateDiagram(ctx, analyzer, summary)
		if err != nil {
			return nil, err
		}
		result.Diagram = code
	}

	logger.Info("analysis complete", "summary_bytes", len(summary), "diagram", result.Diagram != "")

	return result, nil
}

// analyzeChunks runs one analysis call per chunk with bounded parallelism.
// Results are keyed by chunk index so the output order matches the
// partitioner's chunk order no matter how calls interleave.
func analyzeChunks(ctx context.Context, analyzer providers.Analyzer, chunks []*chunker.Chunk, opts Options) ([]string, error) {
	analyses := make([]string, len(chunks))
	var done atomic.Int64

	p := pool.New().WithErrors().WithContext(ctx).WithMaxGoroutines(opts.Concurrency)

	for i, c := range chunks {
		i, c := i, c
		p.Go(func(ctx context.Context) error {
			prompt, err := prompts.Analysis(opts.Level, c.Text())
			if err != nil {
				return err
			}

			analysis, err := analyzer.Generate(ctx, prompt)
			if err != nil {
				return fmt.Errorf("failed to analyze chunk %d; %w", i+1, err)
			}

			analyses[i] = analysis
			report(opts, StageAnalyzing, int(done.Add(1)), len(chunks))
			return nil
		})
	}

	if err := p.Wait(); err != nil {
		return nil, err
	}

	return analyses, nil
}

// synthesize combines per-chunk analyses into one report.
func synthesize(ctx context.Context, analyzer providers.Analyzer, analyses []string, level string) (string, error) {
	sections := make([]string, len(analyses))
	for i, a := range analyses {
		sections[i] = fmt.Sprintf("### Chunk %d Analysis\n\n%s", i+1, a)
	}
	combined := strings.Join(sections, "\n\n---\n\n")

	prompt, err := prompts.Synthesis(level, combined)
	if err != nil {
		return "", err
	}

	summary, err := analyzer.Generate(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("failed to synthesize analyses; %w", err)
	}

	return summary, nil
}

// generateDiagram requests a Mermaid diagram over the synthesized summary.
func generateDiagram(ctx context.Context, analyzer providers.Analyzer, summary string) (string, error) {
	prompt, err := prompts.Diagram(summary)
	if err != nil {
		return "", err
	}

	response, err := analyzer.Generate(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("failed to generate diagram; %w", err)
	}

	return diagram.Extract(response), nil
}

func report(opts Options, stage string, current, total int) {
	if opts.OnProgress != nil {
		opts.OnProgress(stage, current, total)
	}
}
