package catalog

import "testing"

func TestFilter_ShouldProcessFile(t *testing.T) {
	tests := []struct {
		name string
		opts Options
		path string
		want bool
	}{
		{"go source allowed", Options{}, "/repo/main.go", true},
		{"python source allowed", Options{}, "/repo/app.py", true},
		{"markdown allowed", Options{}, "/repo/README.md", true},
		{"unknown extension rejected", Options{}, "/repo/image.png", false},
		{"no extension rejected", Options{}, "/repo/Makefile", false},
		{"lock file rejected", Options{}, "/repo/package-lock.json", false},
		{"go.sum rejected", Options{}, "/repo/go.sum", false},
		{"hidden file rejected", Options{}, "/repo/.env.js", false},
		{"minified js rejected", Options{}, "/repo/bundle.min.js", false},
		{"generated protobuf rejected", Options{}, "/repo/api.pb.go", false},
		{"typescript declaration rejected", Options{}, "/repo/types.d.ts", false},
		{"python generated rejected", Options{}, "/repo/schema_pb2.py", false},
		{
			"config skip extension",
			Options{SkipExtensions: []string{"md"}},
			"/repo/README.md",
			false,
		},
		{
			"config skip extension with dot",
			Options{SkipExtensions: []string{".json"}},
			"/repo/data.json",
			false,
		},
		{
			"config skip file name",
			Options{SkipFiles: []string{"generated.go"}},
			"/repo/generated.go",
			false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := NewFilter(tt.opts)
			if got := f.ShouldProcessFile(tt.path); got != tt.want {
				t.Errorf("ShouldProcessFile(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}

func TestFilter_ShouldProcessDir(t *testing.T) {
	tests := []struct {
		name string
		opts Options
		path string
		want bool
	}{
		{"source dir allowed", Options{}, "/repo/src", true},
		{"node_modules rejected", Options{}, "/repo/node_modules", false},
		{"git dir rejected", Options{}, "/repo/.git", false},
		{"hidden dir rejected", Options{}, "/repo/.cache", false},
		{"pycache rejected", Options{}, "/repo/__pycache__", false},
		{"vendor rejected", Options{}, "/repo/vendor", false},
		{"dist rejected", Options{}, "/repo/dist", false},
		{
			"config skip directory",
			Options{SkipDirectories: []string{"testdata"}},
			"/repo/testdata",
			false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := NewFilter(tt.opts)
			if got := f.ShouldProcessDir(tt.path); got != tt.want {
				t.Errorf("ShouldProcessDir(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}

func TestFilter_MaxFileSize(t *testing.T) {
	if got := NewFilter(Options{}).MaxFileSize(); got != DefaultMaxFileSize {
		t.Errorf("default MaxFileSize() = %d, want %d", got, DefaultMaxFileSize)
	}
	if got := NewFilter(Options{MaxFileSize: 1024}).MaxFileSize(); got != 1024 {
		t.Errorf("MaxFileSize() = %d, want 1024", got)
	}
}
