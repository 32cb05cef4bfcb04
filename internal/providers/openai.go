package providers

import (
	"context"
	"fmt"
	"os"

	openai "github.com/sashabaranov/go-openai"
)

// OpenAIAnalyzer generates text using the OpenAI chat completions API.
type OpenAIAnalyzer struct {
	apiKey  string
	model   string
	baseURL string
	client  *openai.Client
	limiter *RateLimiter
}

// OpenAIOption configures the OpenAIAnalyzer.
type OpenAIOption func(*OpenAIAnalyzer)

// WithOpenAIModel sets the model to use.
func WithOpenAIModel(model string) OpenAIOption {
	return func(a *OpenAIAnalyzer) {
		if model != "" {
			a.model = model
		}
	}
}

// WithOpenAIAPIKey sets the API key, overriding the environment.
func WithOpenAIAPIKey(key string) OpenAIOption {
	return func(a *OpenAIAnalyzer) {
		if key != "" {
			a.apiKey = key
		}
	}
}

// WithOpenAIRateLimit sets the requests-per-minute quota.
func WithOpenAIRateLimit(requestsPerMinute int) OpenAIOption {
	return func(a *OpenAIAnalyzer) {
		a.limiter = NewRateLimiter(requestsPerMinute)
	}
}

// WithOpenAIBaseURL overrides the API base URL. Used in tests and for
// OpenAI-compatible endpoints.
func WithOpenAIBaseURL(url string) OpenAIOption {
	return func(a *OpenAIAnalyzer) {
		if url != "" {
			a.baseURL = url
		}
	}
}

// NewOpenAIAnalyzer creates an OpenAI-backed analyzer. The API key defaults
// to the OPENAI_API_KEY environment variable.
func NewOpenAIAnalyzer(opts ...OpenAIOption) *OpenAIAnalyzer {
	a := &OpenAIAnalyzer{
		apiKey: os.Getenv("OPENAI_API_KEY"),
		model:  openai.GPT4oMini,
	}

	for _, opt := range opts {
		opt(a)
	}

	if a.limiter == nil {
		a.limiter = NewRateLimiter(60)
	}

	cfg := openai.DefaultConfig(a.apiKey)
	if a.baseURL != "" {
		cfg.BaseURL = a.baseURL
	}
	a.client = openai.NewClientWithConfig(cfg)

	return a
}

// Name returns the provider's unique identifier.
func (a *OpenAIAnalyzer) Name() string {
	return "openai"
}

// Model returns the model identifier used by this provider.
func (a *OpenAIAnalyzer) Model() string {
	return a.model
}

// Available returns true if an API key is configured.
func (a *OpenAIAnalyzer) Available() bool {
	return a.apiKey != ""
}

// Generate produces a completion for the given prompt.
func (a *OpenAIAnalyzer) Generate(ctx context.Context, prompt string) (string, error) {
	if !a.Available() {
		return "", fmt.Errorf("openai provider not available; OPENAI_API_KEY not set")
	}

	if err := a.limiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("rate limit wait failed; %w", err)
	}

	resp, err := a.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       a.model,
		Temperature: generationTemperature,
		MaxTokens:   generationMaxTokens,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleUser,
				Content: prompt,
			},
		},
	})
	if err != nil {
		return "", fmt.Errorf("API request failed; %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no response content returned")
	}

	return resp.Choices[0].Message.Content, nil
}
