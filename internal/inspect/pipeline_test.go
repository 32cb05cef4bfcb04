package inspect

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/repolens/repolens/internal/catalog"
)

// scriptedAnalyzer answers Generate calls based on the prompt contents and
// records every prompt it sees.
type scriptedAnalyzer struct {
	mu      sync.Mutex
	prompts []string
	fail    bool
}

func (s *scriptedAnalyzer) Name() string    { return "scripted" }
func (s *scriptedAnalyzer) Model() string   { return "scripted-model" }
func (s *scriptedAnalyzer) Available() bool { return true }

func (s *scriptedAnalyzer) Generate(ctx context.Context, prompt string) (string, error) {
	s.mu.Lock()
	s.prompts = append(s.prompts, prompt)
	s.mu.Unlock()

	if s.fail {
		return "", errors.New("provider down")
	}

	// Echo a marker derived from the chunk content so tests can verify
	// which chunk produced which analysis. The header lines injected into
	// analysis prompts always start on their own line.
	if i := strings.Index(prompt, "\n=== "); i >= 0 {
		rest := prompt[i+5:]
		end := strings.Index(rest, " ===")
		return "analysis of " + rest[:end], nil
	}
	if strings.Contains(prompt, "### Chunk") {
		return "synthesized summary", nil
	}
	return "```mermaid\nflowchart TD\n  A --> B\n```", nil
}

func somefiles(n, size int) []catalog.SourceFile {
	files := make([]catalog.SourceFile, n)
	for i := range files {
		files[i] = catalog.SourceFile{
			Path:    fmt.Sprintf("pkg%02d/file.go", i),
			Content: strings.Repeat("x", size),
		}
	}
	return files
}

func TestRun_EmptyInput(t *testing.T) {
	result, err := Run(context.Background(), &scriptedAnalyzer{}, nil, Options{})
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if result.Summary != "No files found to analyze." {
		t.Errorf("Summary = %q", result.Summary)
	}
	if result.FileCount != 0 || result.ChunkCount != 0 {
		t.Errorf("counts = %d/%d, want 0/0", result.FileCount, result.ChunkCount)
	}
}

func TestRun_SingleChunk(t *testing.T) {
	analyzer := &scriptedAnalyzer{}
	files := []catalog.SourceFile{
		{Path: "main.go", Content: "package main"},
	}

	result, err := Run(context.Background(), analyzer, files, Options{})
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}

	if result.Summary != "synthesized summary" {
		t.Errorf("Summary = %q, want synthesized summary", result.Summary)
	}
	if result.FileCount != 1 || result.ChunkCount != 1 {
		t.Errorf("counts = %d/%d, want 1/1", result.FileCount, result.ChunkCount)
	}
	if result.Diagram != "" {
		t.Errorf("Diagram = %q, want empty when not requested", result.Diagram)
	}

	// One analysis call plus one synthesis call.
	if len(analyzer.prompts) != 2 {
		t.Fatalf("provider saw %d prompts, want 2", len(analyzer.prompts))
	}
	if !strings.Contains(analyzer.prompts[1], "analysis of main.go") {
		t.Error("synthesis prompt does not embed the chunk analysis")
	}
	if !strings.Contains(analyzer.prompts[1], "### Chunk 1 Analysis") {
		t.Error("synthesis prompt is missing the chunk section header")
	}
}

func TestRun_OrderStableUnderConcurrency(t *testing.T) {
	analyzer := &scriptedAnalyzer{}
	// 60 KiB files with a 100 KiB budget: one chunk per file.
	files := somefiles(6, 60*1024)

	result, err := Run(context.Background(), analyzer, files, Options{
		TargetSize:  100 * 1024,
		Concurrency: 4,
	})
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if result.ChunkCount != 6 {
		t.Fatalf("ChunkCount = %d, want 6", result.ChunkCount)
	}

	// The synthesis prompt must list chunk analyses in partition order no
	// matter how the parallel calls interleaved.
	synthesis := analyzer.prompts[len(analyzer.prompts)-1]
	last := -1
	for i := 0; i < 6; i++ {
		marker := fmt.Sprintf("analysis of pkg%02d/file.go", i)
		pos := strings.Index(synthesis, marker)
		if pos < 0 {
			t.Fatalf("synthesis prompt missing %q", marker)
		}
		if pos < last {
			t.Fatalf("chunk analyses out of order in synthesis prompt")
		}
		last = pos
	}
}

func TestRun_Progress(t *testing.T) {
	var mu sync.Mutex
	var stages []string

	files := somefiles(3, 60*1024)

	_, err := Run(context.Background(), &scriptedAnalyzer{}, files, Options{
		TargetSize: 100 * 1024,
		OnProgress: func(stage string, current, total int) {
			mu.Lock()
			stages = append(stages, fmt.Sprintf("%s %d/%d", stage, current, total))
			mu.Unlock()
		},
	})
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}

	want := []string{
		"analyzing 1/3",
		"analyzing 2/3",
		"analyzing 3/3",
		"synthesizing 0/0",
	}
	if len(stages) != len(want) {
		t.Fatalf("stages = %v, want %v", stages, want)
	}
	for i := range want {
		if stages[i] != want[i] {
			t.Errorf("stage %d = %q, want %q", i, stages[i], want[i])
		}
	}
}

func TestRun_Diagram(t *testing.T) {
	analyzer := &scriptedAnalyzer{}
	files := []catalog.SourceFile{{Path: "main.go", Content: "package main"}}

	result, err := Run(context.Background(), analyzer, files, Options{Diagram: true})
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}

	if result.Diagram != "flowchart TD\n  A --> B" {
		t.Errorf("Diagram = %q, want the extracted mermaid code", result.Diagram)
	}
	// Analysis + synthesis + diagram.
	if len(analyzer.prompts) != 3 {
		t.Errorf("provider saw %d prompts, want 3", len(analyzer.prompts))
	}
}

func TestRun_ProviderFailure(t *testing.T) {
	analyzer := &scriptedAnalyzer{fail: true}
	files := []catalog.SourceFile{{Path: "main.go", Content: "package main"}}

	_, err := Run(context.Background(), analyzer, files, Options{})
	if err == nil {
		t.Fatal("expected error when the provider fails")
	}
	if !strings.Contains(err.Error(), "chunk 1") {
		t.Errorf("error %q should name the failing chunk", err)
	}
}

func TestRun_InvalidLevel(t *testing.T) {
	files := []catalog.SourceFile{{Path: "main.go", Content: "package main"}}

	_, err := Run(context.Background(), &scriptedAnalyzer{}, files, Options{Level: "expert"})
	if err == nil {
		t.Fatal("expected error for unknown level")
	}
}

func TestRun_Stats(t *testing.T) {
	files := []catalog.SourceFile{
		{Path: "main.go", Content: "package main\n", Extension: ".go"},
		{Path: "doc.md", Content: "# doc\n", Extension: ".md"},
	}

	result, err := Run(context.Background(), &scriptedAnalyzer{}, files, Options{})
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if result.Stats.FileCount != 2 {
		t.Errorf("Stats.FileCount = %d, want 2", result.Stats.FileCount)
	}
	if result.Stats.Extensions[".go"] != 1 {
		t.Errorf("Stats.Extensions = %v, want one .go", result.Stats.Extensions)
	}
}
