package chunker

import (
	"fmt"
	"strings"
)

// Summarize renders human-readable statistics for a partitioning result:
// total file count, total size, and the file count and size of each chunk.
func Summarize(chunks []*Chunk) string {
	var totalFiles, totalSize int
	for _, c := range chunks {
		totalFiles += c.Len()
		totalSize += c.Size()
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Split %d files into %d chunks\n", totalFiles, len(chunks))
	fmt.Fprintf(&b, "Total content size: %.1f KB", float64(totalSize)/1024)

	for i, c := range chunks {
		fmt.Fprintf(&b, "\n  Chunk %d: %d files, %.1f KB", i+1, c.Len(), float64(c.Size())/1024)
	}

	return b.String()
}
