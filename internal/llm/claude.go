package llm

import (
	"context"
	"fmt"

	"github.com/liushuangls/go-anthropic/v2"
)

const defaultMaxTokens = 1000

type ClaudeClient struct {
	client *anthropic.Client
	model  string
}

func NewClaudeClient(apiKey string, model string, baseURL string) *ClaudeClient {
	var opts []anthropic.ClientOption
	if baseURL != "" {
		opts = append(opts, anthropic.WithBaseURL(baseURL))
	}
	client := anthropic.NewClient(apiKey, opts...)
	return &ClaudeClient{
		client: client,
		model:  model,
	}
}

func (c *ClaudeClient) Generate(ctx context.Context, req Request) (*Result, error) {
	maxTokens := req.MaxTokens
	if maxTokens <= 0 {
		maxTokens = defaultMaxTokens
	}

	msgReq := anthropic.MessagesRequest{
		Model: anthropic.Model(c.model),
		Messages: []anthropic.Message{
			{
				Role: anthropic.RoleUser,
				Content: []anthropic.MessageContent{
					anthropic.NewTextMessageContent(req.Prompt),
				},
			},
		},
		MaxTokens: maxTokens,
	}
	if req.SystemPrompt != "" {
		msgReq.System = req.SystemPrompt
	}
	if req.Temperature != nil {
		t := float32(*req.Temperature)
		msgReq.Temperature = &t
	}

	resp, err := c.client.CreateMessages(ctx, msgReq)
	if err != nil {
		return nil, err
	}
	if len(resp.Content) == 0 || resp.Content[0].Text == nil {
		return nil, fmt.Errorf("no response content")
	}

	finish := "stop"
	if resp.StopReason == anthropic.MessagesStopReasonMaxTokens {
		finish = "length"
	}

	return &Result{
		Text:         *resp.Content[0].Text,
		FinishReason: finish,
		InputTokens:  resp.Usage.InputTokens,
		OutputTokens: resp.Usage.OutputTokens,
	}, nil
}
