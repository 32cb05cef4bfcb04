// Package report renders an inspection result for the terminal or as
// markdown.
package report

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"github.com/repolens/repolens/internal/diagram"
	"github.com/repolens/repolens/internal/inspect"
)

// Output formats accepted by Render.
const (
	FormatText     = "text"
	FormatMarkdown = "markdown"
)

// ValidFormat reports whether format names a known output format.
func ValidFormat(format string) bool {
	return format == FormatText || format == FormatMarkdown
}

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("14")).
			Border(lipgloss.RoundedBorder()).
			Padding(0, 2)

	subtitleStyle = lipgloss.NewStyle().
			Faint(true)

	diagramHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("10")).
				Border(lipgloss.RoundedBorder()).
				Padding(0, 2)
)

// Render formats the result in the requested output format.
func Render(result *inspect.Result, format string) (string, error) {
	if format == FormatMarkdown {
		return Markdown(result), nil
	}
	return Text(result)
}

// Markdown assembles the result as a markdown document.
func Markdown(result *inspect.Result) string {
	var parts []string

	parts = append(parts,
		"# Repository Analysis",
		"",
		fmt.Sprintf("*%d files analyzed in %d chunks*", result.FileCount, result.ChunkCount),
		"",
		result.Summary,
	)

	if result.Diagram != "" {
		parts = append(parts,
			"",
			"## Architecture Diagram",
			"",
			diagram.WrapMarkdown(result.Diagram),
		)
	}

	parts = append(parts, "")

	return strings.Join(parts, "\n")
}

// Text renders the result as styled terminal output, with the summary
// markdown rendered through glamour.
func Text(result *inspect.Result) (string, error) {
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		return "", fmt.Errorf("failed to create markdown renderer; %w", err)
	}

	summary, err := renderer.Render(result.Summary)
	if err != nil {
		// Fall back to the raw markdown rather than losing the report.
		summary = result.Summary
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(headerStyle.Render("Repository Analysis"))
	b.WriteString("\n")
	b.WriteString(subtitleStyle.Render(
		fmt.Sprintf("%d files analyzed in %d chunks", result.FileCount, result.ChunkCount)))
	b.WriteString("\n\n")
	b.WriteString(summary)

	if result.Diagram != "" {
		b.WriteString("\n")
		b.WriteString(diagramHeaderStyle.Render("Architecture Diagram"))
		b.WriteString("\n\n")
		b.WriteString(diagram.WrapText(result.Diagram))
		b.WriteString("\n")
	}

	b.WriteString("\n")

	return b.String(), nil
}
