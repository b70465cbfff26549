package completion

import "github.com/chronicler-app/chronicler/internal/model"

// Wire types for the provider-agnostic completion gateway. The same shapes are
// used by the gin server and by the client; the external contract is JSON over
// HTTP.

const (
	FinishStop   = "stop"
	FinishLength = "length"
	FinishError  = "error"
)

// CampaignContext carries the campaign-level fields the remote model should
// know about. Absent fields are omitted, never defaulted; defaulting already
// happened during validation.
type CampaignContext struct {
	Title      string   `json:"title,omitempty"`
	Setting    string   `json:"setting,omitempty"`
	Summary    string   `json:"summary,omitempty"`
	Storyline  []string `json:"storyline,omitempty"`
	Characters []string `json:"characters,omitempty"`
	Locations  []string `json:"locations,omitempty"`
	Items      []string `json:"items,omitempty"`
	Rules      []string `json:"rules,omitempty"`
	Objectives []string `json:"objectives,omitempty"`
}

// EntityContext pins the completion to the specific entity field being edited.
type EntityContext struct {
	ObjID        model.Identifier `json:"obj_id"`
	Field        string           `json:"field"`
	CurrentValue string           `json:"current_value"`
}

type CompletionContext struct {
	Campaign CampaignContext `json:"campaign"`
	Entity   EntityContext   `json:"entity"`
}

type CompletionRequest struct {
	Prompt       string            `json:"prompt"`
	Context      CompletionContext `json:"context"`
	MaxTokens    int               `json:"max_tokens,omitempty"`
	Temperature  *float64          `json:"temperature,omitempty"`
	SystemPrompt string            `json:"system_prompt,omitempty"`
	ProviderType string            `json:"provider_type"`
	APIKey       string            `json:"api_key"`
	BaseURL      string            `json:"base_url,omitempty"`
	Model        string            `json:"model"`
}

type Usage struct {
	InputTokens  int `json:"input_tokens"`
	OutputTokens int `json:"output_tokens"`
}

type CompletionResponse struct {
	Text         string `json:"text"`
	FinishReason string `json:"finish_reason"`
	Usage        *Usage `json:"usage,omitempty"`
	ErrorMessage string `json:"error_message"`
}

type TestConnectionRequest struct {
	ProviderType string `json:"provider_type"`
	APIKey       string `json:"api_key"`
	BaseURL      string `json:"base_url,omitempty"`
	Model        string `json:"model"`
}

type TestConnectionResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type ProviderInfo struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

type ModelInfo struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
