package llm

import (
	"context"
)

// Request is one text-generation exchange. Temperature is nil to use the
// provider's default.
type Request struct {
	Prompt       string
	SystemPrompt string
	MaxTokens    int
	Temperature  *float64
}

// Result is the provider-neutral outcome of a generation call. FinishReason
// is "stop" or "length"; failures travel as errors, not in here.
type Result struct {
	Text         string
	FinishReason string
	InputTokens  int
	OutputTokens int
}

type Client interface {
	Generate(ctx context.Context, req Request) (*Result, error)
}
