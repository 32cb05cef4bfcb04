// Package providers implements the remote text-analysis backends the
// inspection pipeline calls. Each provider turns a prompt into generated
// text; the pipeline owns prompt construction and result handling.
package providers

import "context"

// Analyzer generates text from a prompt using a remote model.
type Analyzer interface {
	// Name returns the provider's unique identifier.
	Name() string

	// Model returns the model identifier used by this provider.
	Model() string

	// Available returns true if the provider is configured and ready.
	Available() bool

	// Generate produces a completion for the given prompt.
	Generate(ctx context.Context, prompt string) (string, error)
}

// Generation parameters shared by all providers. Low temperature keeps
// repeated analyses of the same tree consistent.
const (
	generationTemperature = 0.3
	generationMaxTokens   = 8192
)
