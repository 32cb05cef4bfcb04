// Package catalog discovers and loads the readable text files of a
// repository tree. It applies extension, size, and name filters and returns
// files in a deterministic, priority-aware order so that downstream
// partitioning is reproducible for the same tree.
package catalog

import (
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"unicode/utf8"
)

// SourceFile is a single discovered file. Instances are never mutated after
// discovery; Path is unique within one catalog run.
type SourceFile struct {
	// Path is slash-separated and relative to the repository root.
	Path string

	// Content is the full file text.
	Content string

	// Extension is the lower-cased file extension, including the leading dot.
	Extension string
}

// Load walks the tree rooted at root and returns all files that pass the
// filter, ordered deterministically: README files first, then conventional
// entry points, then files whose name suggests an entry point, then the
// rest, each tier sorted by path.
func Load(root string, filter *Filter) ([]SourceFile, error) {
	if filter == nil {
		filter = NewFilter(Options{})
	}

	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve path; %w", err)
	}

	info, err := os.Stat(absRoot)
	if err != nil {
		return nil, fmt.Errorf("failed to stat path; %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("path is not a directory: %s", absRoot)
	}

	var files []SourceFile

	err = filepath.WalkDir(absRoot, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}

		// Skip symlinks entirely
		if d.Type()&fs.ModeSymlink != 0 {
			return nil
		}

		if d.IsDir() {
			if path == absRoot {
				return nil
			}
			if !filter.ShouldProcessDir(path) {
				return fs.SkipDir
			}
			return nil
		}

		if !filter.ShouldProcessFile(path) {
			return nil
		}

		fi, err := d.Info()
		if err != nil {
			return nil // Skip files we can't stat
		}
		if fi.Size() == 0 || fi.Size() > filter.MaxFileSize() {
			return nil
		}

		data, err := os.ReadFile(path)
		if err != nil {
			slog.Debug("skipping unreadable file", "path", path, "error", err)
			return nil
		}
		if !utf8.Valid(data) {
			slog.Debug("skipping non-text file", "path", path)
			return nil
		}

		rel, err := filepath.Rel(absRoot, path)
		if err != nil {
			return nil
		}

		files = append(files, SourceFile{
			Path:      filepath.ToSlash(rel),
			Content:   string(data),
			Extension: strings.ToLower(filepath.Ext(path)),
		})

		return nil
	})
	if err != nil {
		return nil, err
	}

	sortFiles(files)

	return files, nil
}

// Conventional entry-point filenames, matched against the full relative path.
var entryPointPaths = map[string]struct{}{
	"main.py":  {},
	"app.py":   {},
	"index.js": {},
	"index.ts": {},
	"main.go":  {},
	"main.rs":  {},
}

// sortFiles orders files so the most explanatory ones come first. Tiers:
// README files, exact entry points, near-entry names, everything else.
// Ties break by path so the order is stable across runs.
func sortFiles(files []SourceFile) {
	tier := func(f SourceFile) int {
		lower := strings.ToLower(f.Path)
		switch {
		case strings.Contains(lower, "readme"):
			return 0
		case pathIsEntryPoint(f.Path):
			return 1
		case strings.Contains(lower, "main") || strings.Contains(lower, "index") || strings.Contains(lower, "app"):
			return 2
		default:
			return 3
		}
	}

	sort.SliceStable(files, func(i, j int) bool {
		ti, tj := tier(files[i]), tier(files[j])
		if ti != tj {
			return ti < tj
		}
		return files[i].Path < files[j].Path
	})
}

func pathIsEntryPoint(path string) bool {
	_, ok := entryPointPaths[path]
	return ok
}
