package chunker

import (
	"testing"

	"github.com/repolens/repolens/internal/catalog"
)

func TestChunk_Add(t *testing.T) {
	c := &Chunk{}

	if c.Len() != 0 || c.Size() != 0 {
		t.Fatalf("new chunk = %d files / %d bytes, want empty", c.Len(), c.Size())
	}

	c.Add(catalog.SourceFile{Path: "a.go", Content: "hello"})
	c.Add(catalog.SourceFile{Path: "b.go", Content: "world!!"})

	if c.Len() != 2 {
		t.Errorf("Len() = %d, want 2", c.Len())
	}
	if c.Size() != 12 {
		t.Errorf("Size() = %d, want 12", c.Size())
	}

	// Size always equals the sum of content lengths.
	sum := 0
	for _, f := range c.Files() {
		sum += len(f.Content)
	}
	if c.Size() != sum {
		t.Errorf("Size() = %d, sum of contents = %d", c.Size(), sum)
	}
}

func TestChunk_Text(t *testing.T) {
	c := &Chunk{}
	c.Add(catalog.SourceFile{Path: "README.md", Content: "# Hello"})
	c.Add(catalog.SourceFile{Path: "src/main.go", Content: "package main"})

	want := "=== README.md ===\n# Hello\n\n=== src/main.go ===\npackage main\n"
	if got := c.Text(); got != want {
		t.Errorf("Text() = %q, want %q", got, want)
	}
}

func TestChunk_TextEmpty(t *testing.T) {
	c := &Chunk{}
	if got := c.Text(); got != "" {
		t.Errorf("Text() on empty chunk = %q, want empty", got)
	}
}
