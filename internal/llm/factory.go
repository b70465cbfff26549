package llm

import (
	"context"
	"fmt"
	"strings"
)

// Settings are the connection parameters a caller supplies per request. They
// arrive from externally managed agent configuration and are never cached or
// mutated here.
type Settings struct {
	Provider string
	Model    string
	APIKey   string
	BaseURL  string
}

// NewClient builds a provider client for the given settings.
func NewClient(ctx context.Context, s Settings) (Client, error) {
	switch strings.ToLower(s.Provider) {
	case "openai":
		return NewOpenAIClient(s.APIKey, s.Model, s.BaseURL), nil

	case "claude":
		return NewClaudeClient(s.APIKey, s.Model, s.BaseURL), nil

	case "gemini":
		return NewGeminiClient(ctx, s.APIKey, s.Model)

	case "ollama":
		// Ollama speaks the OpenAI-compatible API under /v1; the key is
		// ignored by the server but required by the client config.
		baseURL := s.BaseURL
		if baseURL == "" {
			baseURL = "http://localhost:11434"
		}
		if !strings.HasSuffix(baseURL, "/v1") {
			baseURL = fmt.Sprintf("%s/v1", strings.TrimRight(baseURL, "/"))
		}
		apiKey := s.APIKey
		if apiKey == "" {
			apiKey = "ollama"
		}
		return NewOpenAIClient(apiKey, s.Model, baseURL), nil

	default:
		return nil, fmt.Errorf("unsupported llm provider: %s", s.Provider)
	}
}
