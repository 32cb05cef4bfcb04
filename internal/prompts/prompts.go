// Package prompts bundles the analysis prompt templates and fills their
// placeholders. Templates are embedded so the binary is self-contained.
package prompts

import (
	"embed"
	"fmt"
	"strings"
)

//go:embed templates/*.txt
var templates embed.FS

// Analysis levels supported by the templates.
const (
	LevelBeginner = "beginner"
	LevelSenior   = "senior"
)

// ValidLevel reports whether level names a known template set.
func ValidLevel(level string) bool {
	return level == LevelBeginner || level == LevelSenior
}

// load reads a template by name.
func load(name string) (string, error) {
	data, err := templates.ReadFile("templates/" + name + ".txt")
	if err != nil {
		return "", fmt.Errorf("prompt template not found: %s", name)
	}
	return string(data), nil
}

// Analysis returns the per-chunk analysis prompt with the code filled in.
func Analysis(level, code string) (string, error) {
	tpl, err := load(level)
	if err != nil {
		return "", err
	}
	return strings.ReplaceAll(tpl, "{code}", code), nil
}

// Synthesis returns the synthesis prompt with the combined chunk analyses
// filled in.
func Synthesis(level, analyses string) (string, error) {
	tpl, err := load(level + "_synthesis")
	if err != nil {
		return "", err
	}
	return strings.ReplaceAll(tpl, "{analyses}", analyses), nil
}

// Diagram returns the diagram prompt with the synthesized analysis filled in.
func Diagram(analysis string) (string, error) {
	tpl, err := load("diagram")
	if err != nil {
		return "", err
	}
	return strings.ReplaceAll(tpl, "{analysis}", analysis), nil
}
