package llm

import (
	"fmt"
	"os"
	"time"
)

// Provider names accepted in Config.Provider.
const (
	ProviderAnthropic  = "anthropic"
	ProviderOpenAI     = "openai"
	ProviderGemini     = "gemini"
	ProviderOpenRouter = "openrouter"
	ProviderMock       = "mock"
)

// Config selects and configures the grading model.
type Config struct {
	Provider string

	Anthropic  AnthropicConfig
	OpenAI     OpenAIConfig
	Gemini     GeminiConfig
	OpenRouter OpenRouterConfig
	Retry      RetryConfig

	// Timeout bounds one grading call including retries.
	Timeout time.Duration
}

type AnthropicConfig struct {
	APIKey string
	Model  string
}

type OpenAIConfig struct {
	APIKey  string
	Model   string
	BaseURL string // For OpenAI-compatible endpoints
}

type GeminiConfig struct {
	APIKey string
	Model  string
}

type OpenRouterConfig struct {
	APIKey  string
	Model   string
	BaseURL string
}

// RetryConfig controls backoff for transient failures.
type RetryConfig struct {
	MaxAttempts int
	InitialWait time.Duration
	MaxWait     time.Duration
	Multiplier  float64
}

// DefaultConfig uses small, fast models; grading needs one short JSON answer.
func DefaultConfig() Config {
	return Config{
		Provider:   ProviderAnthropic,
		Anthropic:  AnthropicConfig{Model: "claude-haiku"},
		OpenAI:     OpenAIConfig{Model: "gpt-4o-mini"},
		Gemini:     GeminiConfig{Model: "gemini-flash"},
		OpenRouter: OpenRouterConfig{Model: "google/gemini-2.0-flash-001"},
		Retry: RetryConfig{
			MaxAttempts: 3,
			InitialWait: 500 * time.Millisecond,
			MaxWait:     5 * time.Second,
			Multiplier:  2.0,
		},
		Timeout: 20 * time.Second,
	}
}

// ConfigFromEnv reads CONECTIVO_LLM_* and CONECTIVO_<PROVIDER>_* variables
// over DefaultConfig.
func ConfigFromEnv() Config {
	return configFromLookup(os.LookupEnv)
}

func configFromLookup(lookup func(string) (string, bool)) Config {
	cfg := DefaultConfig()
	set := func(dst *string, key string) {
		if v, ok := lookup(key); ok && v != "" {
			*dst = v
		}
	}

	set(&cfg.Provider, "CONECTIVO_LLM_PROVIDER")
	set(&cfg.Anthropic.APIKey, "CONECTIVO_ANTHROPIC_API_KEY")
	set(&cfg.Anthropic.Model, "CONECTIVO_ANTHROPIC_MODEL")
	set(&cfg.OpenAI.APIKey, "CONECTIVO_OPENAI_API_KEY")
	set(&cfg.OpenAI.Model, "CONECTIVO_OPENAI_MODEL")
	set(&cfg.OpenAI.BaseURL, "CONECTIVO_OPENAI_BASE_URL")
	set(&cfg.Gemini.APIKey, "CONECTIVO_GEMINI_API_KEY")
	set(&cfg.Gemini.Model, "CONECTIVO_GEMINI_MODEL")
	set(&cfg.OpenRouter.APIKey, "CONECTIVO_OPENROUTER_API_KEY")
	set(&cfg.OpenRouter.Model, "CONECTIVO_OPENROUTER_MODEL")

	if v, ok := lookup("CONECTIVO_LLM_TIMEOUT"); ok {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			cfg.Timeout = d
		}
	}
	return cfg
}

// DiscoverConfig picks the first provider with a standard API key variable
// set, checking Gemini, OpenAI, Anthropic then OpenRouter.
func DiscoverConfig() (Config, bool) {
	return discoverFromLookup(os.LookupEnv)
}

func discoverFromLookup(lookup func(string) (string, bool)) (Config, bool) {
	cfg := DefaultConfig()
	candidates := []struct {
		env      string
		provider string
		key      *string
	}{
		{"GEMINI_API_KEY", ProviderGemini, &cfg.Gemini.APIKey},
		{"OPENAI_API_KEY", ProviderOpenAI, &cfg.OpenAI.APIKey},
		{"ANTHROPIC_API_KEY", ProviderAnthropic, &cfg.Anthropic.APIKey},
		{"OPENROUTER_API_KEY", ProviderOpenRouter, &cfg.OpenRouter.APIKey},
	}
	for _, c := range candidates {
		if v, ok := lookup(c.env); ok && v != "" {
			cfg.Provider = c.provider
			*c.key = v
			return cfg, true
		}
	}
	return Config{}, false
}

// ResolveConfig returns the explicit CONECTIVO_* configuration when
// CONECTIVO_LLM_PROVIDER is set, and otherwise falls back to key discovery.
// ok is false when no provider can be configured.
func ResolveConfig() (cfg Config, ok bool) {
	if _, explicit := os.LookupEnv("CONECTIVO_LLM_PROVIDER"); explicit {
		cfg = ConfigFromEnv()
		return cfg, cfg.Validate() == nil
	}
	return DiscoverConfig()
}

// Validate checks the selected provider has an API key.
func (c Config) Validate() error {
	var key, env string
	switch c.Provider {
	case ProviderAnthropic:
		key, env = c.Anthropic.APIKey, "CONECTIVO_ANTHROPIC_API_KEY"
	case ProviderOpenAI:
		key, env = c.OpenAI.APIKey, "CONECTIVO_OPENAI_API_KEY"
	case ProviderGemini:
		key, env = c.Gemini.APIKey, "CONECTIVO_GEMINI_API_KEY"
	case ProviderOpenRouter:
		key, env = c.OpenRouter.APIKey, "CONECTIVO_OPENROUTER_API_KEY"
	case ProviderMock:
		return nil
	default:
		return fmt.Errorf("unknown LLM provider: %q", c.Provider)
	}
	if key == "" {
		return fmt.Errorf("%s is required for the %s provider", env, c.Provider)
	}
	return nil
}
