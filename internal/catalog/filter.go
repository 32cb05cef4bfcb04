package catalog

import (
	"path/filepath"
	"strings"
)

// DefaultMaxFileSize is the per-file size cap. Larger files are almost
// always generated artifacts or data dumps, not code worth analyzing.
const DefaultMaxFileSize = 50 * 1024

// allowedExtensions is the set of file extensions treated as analyzable text.
var allowedExtensions = map[string]struct{}{
	".py": {}, ".js": {}, ".ts": {}, ".tsx": {}, ".jsx": {},
	".go": {}, ".java": {}, ".yaml": {}, ".yml": {}, ".json": {},
	".md": {}, ".rs": {}, ".rb": {}, ".php": {}, ".c": {},
	".cpp": {}, ".h": {}, ".hpp": {}, ".cs": {}, ".swift": {},
	".kt": {}, ".scala": {}, ".sh": {}, ".bash": {}, ".toml": {},
	".cfg": {}, ".ini": {},
}

// ignoredDirectories are build outputs, caches, and tool state that never
// contain hand-written source.
var ignoredDirectories = map[string]struct{}{
	"node_modules": {}, ".git": {}, "__pycache__": {}, ".pytest_cache": {},
	".mypy_cache": {}, ".ruff_cache": {}, "dist": {}, "build": {},
	".venv": {}, "venv": {}, "env": {}, ".env": {}, ".tox": {}, ".nox": {},
	"target": {}, "vendor": {}, ".idea": {}, ".vscode": {},
	"coverage": {}, ".coverage": {}, "htmlcov": {}, ".next": {},
	".nuxt": {}, "out": {}, ".turbo": {},
}

// ignoredFiles are lock files whose contents are machine-generated.
var ignoredFiles = map[string]struct{}{
	"package-lock.json": {}, "yarn.lock": {}, "pnpm-lock.yaml": {},
	"poetry.lock": {}, "Pipfile.lock": {}, "Cargo.lock": {},
	"Gemfile.lock": {}, "composer.lock": {}, "go.sum": {},
}

// Options customizes filtering beyond the built-in defaults.
type Options struct {
	// MaxFileSize overrides the per-file byte cap when positive.
	MaxFileSize int64

	// SkipExtensions adds extensions (with or without leading dot) to skip
	// even when the built-in allow-list would accept them.
	SkipExtensions []string

	// SkipDirectories adds directory names to skip during traversal.
	SkipDirectories []string

	// SkipFiles adds file names to skip.
	SkipFiles []string
}

// Filter decides which files and directories the catalog should process.
type Filter struct {
	maxFileSize int64
	skipExts    map[string]struct{}
	skipDirs    map[string]struct{}
	skipFiles   map[string]struct{}
}

// NewFilter builds a Filter from Options merged over the built-in defaults.
func NewFilter(opts Options) *Filter {
	f := &Filter{
		maxFileSize: DefaultMaxFileSize,
		skipExts:    make(map[string]struct{}),
		skipDirs:    make(map[string]struct{}),
		skipFiles:   make(map[string]struct{}),
	}

	if opts.MaxFileSize > 0 {
		f.maxFileSize = opts.MaxFileSize
	}
	for _, ext := range opts.SkipExtensions {
		f.skipExts[normalizeExt(ext)] = struct{}{}
	}
	for _, dir := range opts.SkipDirectories {
		f.skipDirs[dir] = struct{}{}
	}
	for _, name := range opts.SkipFiles {
		f.skipFiles[name] = struct{}{}
	}

	return f
}

// MaxFileSize returns the effective per-file byte cap.
func (f *Filter) MaxFileSize() int64 {
	return f.maxFileSize
}

// ShouldProcessFile returns true if the file should be loaded.
func (f *Filter) ShouldProcessFile(path string) bool {
	name := filepath.Base(path)
	ext := strings.ToLower(filepath.Ext(path))

	if _, ok := allowedExtensions[ext]; !ok {
		return false
	}
	if _, ok := f.skipExts[ext]; ok {
		return false
	}
	if _, ok := ignoredFiles[name]; ok {
		return false
	}
	if _, ok := f.skipFiles[name]; ok {
		return false
	}
	if strings.HasPrefix(name, ".") {
		return false
	}
	if isMinified(name) || isGenerated(name) {
		return false
	}

	return true
}

// ShouldProcessDir returns true if the directory should be traversed.
func (f *Filter) ShouldProcessDir(path string) bool {
	name := filepath.Base(path)

	if strings.HasPrefix(name, ".") {
		return false
	}
	if _, ok := ignoredDirectories[name]; ok {
		return false
	}
	if _, ok := f.skipDirs[name]; ok {
		return false
	}

	return true
}

// isMinified reports whether a filename looks like minified JS/CSS.
func isMinified(name string) bool {
	return strings.Contains(name, ".min.") ||
		strings.HasSuffix(name, ".min.js") ||
		strings.HasSuffix(name, ".min.css")
}

// generatedPatterns mark files emitted by code generators.
var generatedPatterns = []string{
	".generated.",
	".g.dart",
	".pb.go",
	"_pb2.py",
	".d.ts",
}

// isGenerated reports whether a filename looks machine-generated.
func isGenerated(name string) bool {
	for _, pattern := range generatedPatterns {
		if strings.Contains(name, pattern) {
			return true
		}
	}
	return false
}

// normalizeExt ensures an extension has a leading dot and is lowercase.
func normalizeExt(ext string) string {
	ext = strings.ToLower(ext)
	if ext != "" && !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return ext
}
