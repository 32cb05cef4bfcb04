// Package chunker partitions catalog files into bounded-size chunks for
// analysis. Chunks respect a byte budget, keep files from the same top-level
// directory close together, and schedule README and entry-point files ahead
// of everything else. Partitioning is a pure, deterministic computation:
// the same file list and target size always produce the same chunks.
package chunker

import (
	"strings"

	"github.com/repolens/repolens/internal/catalog"
)

// DefaultTargetSize is the byte budget per chunk. Current model context
// windows comfortably fit far more, so the budget can be generous.
const DefaultTargetSize = 100 * 1024

// Chunk is a group of files analyzed together. It grows by Add during
// packing and is treated as read-only once the partitioner emits it.
type Chunk struct {
	files     []catalog.SourceFile
	totalSize int
}

// Add appends a file to the chunk and grows the running size.
func (c *Chunk) Add(f catalog.SourceFile) {
	c.files = append(c.files, f)
	c.totalSize += len(f.Content)
}

// Files returns the chunk's files in packing order. Callers must not
// modify the returned slice.
func (c *Chunk) Files() []catalog.SourceFile {
	return c.files
}

// Len returns the number of files in the chunk.
func (c *Chunk) Len() int {
	return len(c.files)
}

// Size returns the sum of content lengths across the chunk's files.
func (c *Chunk) Size() int {
	return c.totalSize
}

// Text serializes the chunk for model input: each file as a labeled
// section with a blank separator line, in packing order.
func (c *Chunk) Text() string {
	var b strings.Builder
	for i, f := range c.files {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString("=== ")
		b.WriteString(f.Path)
		b.WriteString(" ===\n")
		b.WriteString(f.Content)
		b.WriteString("\n")
	}
	return b.String()
}
