package providers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"
)

const defaultGoogleEndpoint = "https://generativelanguage.googleapis.com/v1beta"

// GoogleAnalyzer generates text using Google's Gemini API.
type GoogleAnalyzer struct {
	apiKey     string
	model      string
	endpoint   string
	httpClient *http.Client
	limiter    *RateLimiter
}

// GoogleOption configures the GoogleAnalyzer.
type GoogleOption func(*GoogleAnalyzer)

// WithGoogleModel sets the model to use.
func WithGoogleModel(model string) GoogleOption {
	return func(a *GoogleAnalyzer) {
		if model != "" {
			a.model = model
		}
	}
}

// WithGoogleAPIKey sets the API key, overriding the environment.
func WithGoogleAPIKey(key string) GoogleOption {
	return func(a *GoogleAnalyzer) {
		if key != "" {
			a.apiKey = key
		}
	}
}

// WithGoogleRateLimit sets the requests-per-minute quota.
func WithGoogleRateLimit(requestsPerMinute int) GoogleOption {
	return func(a *GoogleAnalyzer) {
		a.limiter = NewRateLimiter(requestsPerMinute)
	}
}

// WithGoogleEndpoint overrides the API base URL. Used in tests.
func WithGoogleEndpoint(endpoint string) GoogleOption {
	return func(a *GoogleAnalyzer) {
		if endpoint != "" {
			a.endpoint = endpoint
		}
	}
}

// NewGoogleAnalyzer creates a Gemini-backed analyzer. The API key defaults
// to the GEMINI_API_KEY environment variable.
func NewGoogleAnalyzer(opts ...GoogleOption) *GoogleAnalyzer {
	a := &GoogleAnalyzer{
		apiKey:     os.Getenv("GEMINI_API_KEY"),
		model:      "gemini-2.0-flash",
		endpoint:   defaultGoogleEndpoint,
		httpClient: &http.Client{Timeout: 120 * time.Second},
	}

	for _, opt := range opts {
		opt(a)
	}

	if a.limiter == nil {
		a.limiter = NewRateLimiter(60)
	}

	return a
}

// Name returns the provider's unique identifier.
func (a *GoogleAnalyzer) Name() string {
	return "google"
}

// Model returns the model identifier used by this provider.
func (a *GoogleAnalyzer) Model() string {
	return a.model
}

// Available returns true if an API key is configured.
func (a *GoogleAnalyzer) Available() bool {
	return a.apiKey != ""
}

// Generate produces a completion for the given prompt.
func (a *GoogleAnalyzer) Generate(ctx context.Context, prompt string) (string, error) {
	if !a.Available() {
		return "", fmt.Errorf("google provider not available; GEMINI_API_KEY not set")
	}

	if err := a.limiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("rate limit wait failed; %w", err)
	}

	apiURL := fmt.Sprintf("%s/models/%s:generateContent?key=%s", a.endpoint, a.model, a.apiKey)

	requestBody := map[string]any{
		"contents": []map[string]any{
			{
				"role": "user",
				"parts": []map[string]any{
					{"text": prompt},
				},
			},
		},
		"generationConfig": map[string]any{
			"temperature":     generationTemperature,
			"maxOutputTokens": generationMaxTokens,
		},
	}

	jsonBody, err := json.Marshal(requestBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request; %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, apiURL, bytes.NewReader(jsonBody))
	if err != nil {
		return "", fmt.Errorf("failed to create request; %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := a.httpClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("API request failed; %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response; %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("API error %d: %s", resp.StatusCode, string(body))
	}

	var apiResp googleResponse
	if err := json.Unmarshal(body, &apiResp); err != nil {
		return "", fmt.Errorf("failed to parse response; %w", err)
	}

	if len(apiResp.Candidates) == 0 || len(apiResp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no response content returned")
	}

	return apiResp.Candidates[0].Content.Parts[0].Text, nil
}

// googleResponse is the subset of the Gemini API response we consume.
type googleResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
	UsageMetadata struct {
		PromptTokenCount     int `json:"promptTokenCount"`
		CandidatesTokenCount int `json:"candidatesTokenCount"`
		TotalTokenCount      int `json:"totalTokenCount"`
	} `json:"usageMetadata"`
}
