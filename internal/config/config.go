package config

import (
	"fmt"
	"os"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// AgentConfig is the default agent bundle a deployment selects for
// completions: provider connection plus generation parameters. The core reads
// it, never writes it back.
type AgentConfig struct {
	Provider     string  `toml:"provider"`
	Model        string  `toml:"model"`
	APIKey       string  `toml:"api_key"`
	BaseURL      string  `toml:"base_url"`
	SystemPrompt string  `toml:"system_prompt"`
	MaxTokens    int     `toml:"max_tokens"`
	Temperature  float64 `toml:"temperature"`
}

type ServerConfig struct {
	Port                  string `toml:"port"`
	RequestTimeoutSeconds int    `toml:"request_timeout_seconds"`
}

type StoreConfig struct {
	BaseURL string `toml:"base_url"`
}

type Config struct {
	Server ServerConfig `toml:"server"`
	Agent  AgentConfig  `toml:"agent"`
	Store  StoreConfig  `toml:"store"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Port:                  "8080",
			RequestTimeoutSeconds: 60,
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file '%s': %w", path, err)
	}

	cfg := Default()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse TOML: %w", err)
	}

	return cfg, nil
}

// ApplyEnv overlays environment variables onto a loaded config.
func (c *Config) ApplyEnv() {
	if v := os.Getenv("PORT"); v != "" {
		c.Server.Port = v
	}
	if v := os.Getenv("LLM_PROVIDER"); v != "" {
		c.Agent.Provider = v
	}
	if v := os.Getenv("LLM_MODEL"); v != "" {
		c.Agent.Model = v
	}
	if v := os.Getenv("LLM_API_KEY"); v != "" {
		c.Agent.APIKey = v
	}
	if v := os.Getenv("LLM_BASE_URL"); v != "" {
		c.Agent.BaseURL = v
	}
	if v := os.Getenv("STORE_BASE_URL"); v != "" {
		c.Store.BaseURL = v
	}
}

// RequestTimeout returns the completion request timeout as a duration.
func (c *Config) RequestTimeout() time.Duration {
	if c.Server.RequestTimeoutSeconds <= 0 {
		return 60 * time.Second
	}
	return time.Duration(c.Server.RequestTimeoutSeconds) * time.Second
}
