package diagram

import (
	"strings"
	"testing"
)

func TestExtract(t *testing.T) {
	tests := []struct {
		name     string
		response string
		want     string
	}{
		{
			"fenced mermaid block",
			"Here is the diagram:\n```mermaid\nflowchart TD\n  A --> B\n```\nDone.",
			"flowchart TD\n  A --> B",
		},
		{
			"raw flowchart without fence",
			"flowchart TD\n  A --> B\n",
			"flowchart TD\n  A --> B",
		},
		{
			"unfenced non-flowchart returned trimmed",
			"  graph LR\n  A --> B  \n",
			"graph LR\n  A --> B",
		},
		{
			"unterminated fence falls back to trimmed response",
			"```mermaid\nflowchart TD",
			"```mermaid\nflowchart TD",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Extract(tt.response); got != tt.want {
				t.Errorf("Extract() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFormat(t *testing.T) {
	in := "\n\n  flowchart TD  \n   A --> B\n\n\n"
	want := "flowchart TD\nA --> B"
	if got := Format(in); got != want {
		t.Errorf("Format() = %q, want %q", got, want)
	}
}

func TestWrapMarkdown(t *testing.T) {
	got := WrapMarkdown("flowchart TD\nA --> B")
	if !strings.HasPrefix(got, "```mermaid\n") || !strings.HasSuffix(got, "\n```") {
		t.Errorf("WrapMarkdown() = %q, want a mermaid fence", got)
	}
}

func TestWrapText(t *testing.T) {
	got := WrapText("flowchart TD\nA --> B")
	if !strings.HasPrefix(got, "Mermaid Diagram:\n\n") {
		t.Errorf("WrapText() = %q, want a Mermaid Diagram header", got)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		code    string
		wantErr string
	}{
		{"valid flowchart", "flowchart TD\n  A --> B", ""},
		{"valid graph", "graph LR\n  A --> B", ""},
		{"valid sequence diagram", "sequenceDiagram\n  A->>B: hi", ""},
		{"valid pie", "pie\n  \"a\": 1", ""},
		{"empty", "", "empty diagram"},
		{"whitespace only", "   \n  ", "empty diagram"},
		{"unknown type", "mindmap\n  root", "invalid diagram type"},
		{"header only", "flowchart TD", "diagram has no content"},
		{"header with blank lines", "flowchart TD\n\n  \n", "diagram has no content"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.code)
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() = %v, want nil", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() = %v, want error containing %q", err, tt.wantErr)
			}
		})
	}
}
