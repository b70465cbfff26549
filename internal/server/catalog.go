package server

import "github.com/chronicler-app/chronicler/internal/completion"

// Static catalog backing /providers and /models. These gate the settings UI;
// a provider's live model list still depends on the account behind the key,
// so this is the supported baseline, not an exhaustive inventory.

var providerCatalog = []completion.ProviderInfo{
	{Name: "OpenAI", Type: "openai"},
	{Name: "Claude", Type: "claude"},
	{Name: "Gemini", Type: "gemini"},
	{Name: "Ollama", Type: "ollama"},
}

var modelCatalog = map[string][]completion.ModelInfo{
	"openai": {
		{ID: "gpt-4o", Name: "GPT-4o"},
		{ID: "gpt-4o-mini", Name: "GPT-4o mini"},
		{ID: "gpt-4.1", Name: "GPT-4.1"},
	},
	"claude": {
		{ID: "claude-sonnet-4-20250514", Name: "Claude Sonnet 4"},
		{ID: "claude-3-5-haiku-20241022", Name: "Claude 3.5 Haiku"},
	},
	"gemini": {
		{ID: "gemini-2.0-flash", Name: "Gemini 2.0 Flash"},
		{ID: "gemini-1.5-pro", Name: "Gemini 1.5 Pro"},
	},
	"ollama": {
		{ID: "llama3.1", Name: "Llama 3.1"},
		{ID: "mistral", Name: "Mistral"},
	},
}
