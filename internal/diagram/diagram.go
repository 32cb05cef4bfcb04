// Package diagram extracts, cleans, and validates Mermaid diagrams returned
// by the analysis provider.
package diagram

import (
	"errors"
	"fmt"
	"strings"
)

// Extract pulls Mermaid code out of a model response. It prefers a
// ```mermaid fenced block; failing that it returns the trimmed response
// as-is for the caller to validate.
func Extract(response string) string {
	if idx := strings.Index(response, "```mermaid"); idx >= 0 {
		start := idx + len("```mermaid")
		if end := strings.Index(response[start:], "```"); end > 0 {
			return strings.TrimSpace(response[start : start+end])
		}
	}

	return strings.TrimSpace(response)
}

// Format trims each line and drops leading and trailing blank lines.
func Format(code string) string {
	lines := strings.Split(strings.TrimSpace(code), "\n")

	cleaned := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" && len(cleaned) == 0 {
			continue
		}
		cleaned = append(cleaned, line)
	}

	for len(cleaned) > 0 && cleaned[len(cleaned)-1] == "" {
		cleaned = cleaned[:len(cleaned)-1]
	}

	return strings.Join(cleaned, "\n")
}

// WrapMarkdown wraps diagram code in a ```mermaid fence.
func WrapMarkdown(code string) string {
	return fmt.Sprintf("```mermaid\n%s\n```", Format(code))
}

// WrapText formats diagram code for plain text output.
func WrapText(code string) string {
	return fmt.Sprintf("Mermaid Diagram:\n\n%s", Format(code))
}

// validStarts are the Mermaid diagram types we accept.
var validStarts = []string{
	"flowchart",
	"graph",
	"sequencediagram",
	"classdiagram",
	"statediagram",
	"erdiagram",
	"gantt",
	"pie",
	"journey",
}

// Validate performs a basic syntax check on diagram code: a known diagram
// type on the first line and at least one content line after it.
func Validate(code string) error {
	code = strings.TrimSpace(code)
	if code == "" {
		return errors.New("empty diagram")
	}

	lines := strings.Split(code, "\n")
	first := strings.ToLower(strings.TrimSpace(lines[0]))

	known := false
	for _, s := range validStarts {
		if strings.HasPrefix(first, s) {
			known = true
			break
		}
	}
	if !known {
		return fmt.Errorf("invalid diagram type: %s", first)
	}

	for _, line := range lines[1:] {
		if strings.TrimSpace(line) != "" {
			return nil
		}
	}
	return errors.New("diagram has no content")
}
