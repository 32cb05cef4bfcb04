package chunker

import "strings"

// priorityRule pairs a match reason with a predicate over a slash-relative
// file path. Rules live in a table so new entry-point conventions can be
// added without touching the packing loop.
type priorityRule struct {
	reason string
	match  func(path string) bool
}

// entryPointNames are conventional entry-point files, matched exactly
// against the full relative path (an entry point at the repository root).
var entryPointNames = map[string]struct{}{
	"main.py":  {},
	"app.py":   {},
	"index.js": {},
	"index.ts": {},
	"main.go":  {},
	"main.rs":  {},
}

var priorityRules = []priorityRule{
	{
		reason: "readme",
		match: func(path string) bool {
			return strings.Contains(strings.ToLower(path), "readme")
		},
	},
	{
		reason: "entry point",
		match: func(path string) bool {
			_, ok := entryPointNames[path]
			return ok
		},
	},
	{
		reason: "package initializer",
		match: func(path string) bool {
			return strings.HasSuffix(strings.ToLower(path), "__init__.py")
		},
	},
}

// IsPriority reports whether a file is scheduled ahead of regular files,
// along with the rule that matched it.
func IsPriority(path string) (reason string, ok bool) {
	for _, rule := range priorityRules {
		if rule.match(path) {
			return rule.reason, true
		}
	}
	return "", false
}
