package chunker

import "testing"

func TestIsPriority(t *testing.T) {
	tests := []struct {
		name       string
		path       string
		wantReason string
		want       bool
	}{
		{"readme at root", "README.md", "readme", true},
		{"readme lowercase", "readme.txt", "readme", true},
		{"readme in subdirectory", "docs/README.rst", "readme", true},
		{"readme as path substring", "src/readme_gen.go", "readme", true},
		{"mixed case readme", "ReadMe.md", "readme", true},
		{"main.go at root", "main.go", "entry point", true},
		{"main.py at root", "main.py", "entry point", true},
		{"app.py at root", "app.py", "entry point", true},
		{"index.js at root", "index.js", "entry point", true},
		{"index.ts at root", "index.ts", "entry point", true},
		{"main.rs at root", "main.rs", "entry point", true},
		{"nested main.go is not an entry point", "cmd/server/main.go", "", false},
		{"package initializer at root", "__init__.py", "package initializer", true},
		{"nested package initializer", "pkg/sub/__init__.py", "package initializer", true},
		{"uppercase package initializer", "PKG/__INIT__.PY", "package initializer", true},
		{"regular source file", "src/server.go", "", false},
		{"regular config file", "config.yaml", "", false},
		{"main substring alone is not priority", "src/mainframe.go", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reason, got := IsPriority(tt.path)
			if got != tt.want {
				t.Errorf("IsPriority(%q) = %v, want %v", tt.path, got, tt.want)
			}
			if reason != tt.wantReason {
				t.Errorf("IsPriority(%q) reason = %q, want %q", tt.path, reason, tt.wantReason)
			}
		})
	}
}
