package catalog

import "strings"

// Stats aggregates basic measurements over a set of loaded files.
type Stats struct {
	FileCount  int
	TotalBytes int
	TotalLines int
	Extensions map[string]int
}

// Collect computes statistics for the given files.
func Collect(files []SourceFile) Stats {
	stats := Stats{
		Extensions: make(map[string]int),
	}

	for _, f := range files {
		stats.FileCount++
		stats.TotalBytes += len(f.Content)
		stats.TotalLines += strings.Count(f.Content, "\n") + 1
		stats.Extensions[f.Extension]++
	}

	return stats
}
