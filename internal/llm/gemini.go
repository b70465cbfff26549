package llm

import (
	"context"
	"fmt"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

type GeminiClient struct {
	client *genai.Client
	model  string
}

func NewGeminiClient(ctx context.Context, apiKey string, model string) (*GeminiClient, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, err
	}
	return &GeminiClient{
		client: client,
		model:  model,
	}, nil
}

func (c *GeminiClient) Generate(ctx context.Context, req Request) (*Result, error) {
	m := c.client.GenerativeModel(c.model)
	if req.MaxTokens > 0 {
		m.SetMaxOutputTokens(int32(req.MaxTokens))
	}
	if req.Temperature != nil {
		m.SetTemperature(float32(*req.Temperature))
	}
	if req.SystemPrompt != "" {
		m.SystemInstruction = &genai.Content{
			Parts: []genai.Part{genai.Text(req.SystemPrompt)},
		}
	}

	resp, err := m.GenerateContent(ctx, genai.Text(req.Prompt))
	if err != nil {
		return nil, err
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return nil, fmt.Errorf("no response candidates or content")
	}

	txt, ok := resp.Candidates[0].Content.Parts[0].(genai.Text)
	if !ok {
		return nil, fmt.Errorf("unexpected response part type")
	}

	finish := "stop"
	if resp.Candidates[0].FinishReason == genai.FinishReasonMaxTokens {
		finish = "length"
	}

	result := &Result{
		Text:         string(txt),
		FinishReason: finish,
	}
	if resp.UsageMetadata != nil {
		result.InputTokens = int(resp.UsageMetadata.PromptTokenCount)
		result.OutputTokens = int(resp.UsageMetadata.CandidatesTokenCount)
	}
	return result, nil
}

// Close releases the underlying gRPC connection.
func (c *GeminiClient) Close() error {
	return c.client.Close()
}
