package llm

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Provider names, in the default fallback order.
const (
	ProviderGemini    = "gemini"
	ProviderOpenAI    = "openai"
	ProviderAnthropic = "anthropic"
)

// defaultOrder is the credential-presence fallback order.
var defaultOrder = []string{ProviderGemini, ProviderOpenAI, ProviderAnthropic}

// Config holds all LLM provider configuration.
type Config struct {
	// Providers lists provider names in fallback order. When empty the
	// order is derived from which API keys are present.
	Providers []string

	Anthropic AnthropicConfig
	OpenAI    OpenAIConfig
	Gemini    GeminiConfig
	Retry     RetryConfig

	// Timeout bounds a single provider attempt (including retries).
	// Default: 45s.
	Timeout time.Duration

	MaxTokens   int
	Temperature float64
}

// AnthropicConfig holds Anthropic-specific configuration.
type AnthropicConfig struct {
	APIKey  string
	Model   string // Default: "claude-haiku"
	BaseURL string
}

// OpenAIConfig holds OpenAI-specific configuration.
type OpenAIConfig struct {
	APIKey  string
	Model   string // Default: "gpt-4o-mini"
	BaseURL string // Optional. Override for OpenRouter or compatible APIs.
}

// GeminiConfig holds Gemini-specific configuration.
type GeminiConfig struct {
	APIKey  string
	Model   string // Default: "gemini-flash"
	BaseURL string
}

// RetryConfig configures retry behavior for transient failures.
type RetryConfig struct {
	MaxAttempts int
	InitialWait time.Duration
	MaxWait     time.Duration
	Multiplier  float64
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Anthropic: AnthropicConfig{
			Model: "claude-haiku",
		},
		OpenAI: OpenAIConfig{
			Model: "gpt-4o-mini",
		},
		Gemini: GeminiConfig{
			Model: "gemini-flash",
		},
		Retry: RetryConfig{
			MaxAttempts: 2,
			InitialWait: 500 * time.Millisecond,
			MaxWait:     4 * time.Second,
			Multiplier:  2.0,
		},
		Timeout:     45 * time.Second,
		MaxTokens:   4096,
		Temperature: 0.7,
	}
}

// ConfigFromEnv builds a Config from environment variables, falling back
// to defaults for unset values.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()

	if p := os.Getenv("READINGCOACH_LLM_PROVIDERS"); p != "" {
		cfg.Providers = splitList(p)
	}

	cfg.Gemini.APIKey = firstEnv("GOOGLE_API_KEY", "GEMINI_API_KEY")
	if m := os.Getenv("READINGCOACH_GEMINI_MODEL"); m != "" {
		cfg.Gemini.Model = m
	}

	cfg.OpenAI.APIKey = os.Getenv("OPENAI_API_KEY")
	if m := os.Getenv("READINGCOACH_OPENAI_MODEL"); m != "" {
		cfg.OpenAI.Model = m
	}
	if u := os.Getenv("READINGCOACH_OPENAI_BASE_URL"); u != "" {
		cfg.OpenAI.BaseURL = u
	}

	cfg.Anthropic.APIKey = os.Getenv("ANTHROPIC_API_KEY")
	if m := os.Getenv("READINGCOACH_ANTHROPIC_MODEL"); m != "" {
		cfg.Anthropic.Model = m
	}

	if d, err := time.ParseDuration(os.Getenv("READINGCOACH_LLM_TIMEOUT")); err == nil && d > 0 {
		cfg.Timeout = d
	}
	if n, err := strconv.Atoi(os.Getenv("READINGCOACH_LLM_RETRIES")); err == nil && n > 0 {
		cfg.Retry.MaxAttempts = n
	}

	return cfg
}

// Order returns the provider names to try, in order, keeping only those
// whose API key is configured.
func (c Config) Order() []string {
	names := c.Providers
	if len(names) == 0 {
		names = defaultOrder
	}

	var out []string
	seen := make(map[string]bool)
	for _, n := range names {
		n = strings.ToLower(strings.TrimSpace(n))
		if seen[n] || c.apiKey(n) == "" {
			continue
		}
		seen[n] = true
		out = append(out, n)
	}
	return out
}

// Validate checks that every explicitly listed provider is known and has
// its API key set.
func (c Config) Validate() error {
	for _, n := range c.Providers {
		name := strings.ToLower(strings.TrimSpace(n))
		switch name {
		case ProviderGemini:
			if c.Gemini.APIKey == "" {
				return fmt.Errorf("GOOGLE_API_KEY is required for the gemini provider")
			}
		case ProviderOpenAI:
			if c.OpenAI.APIKey == "" {
				return fmt.Errorf("OPENAI_API_KEY is required for the openai provider")
			}
		case ProviderAnthropic:
			if c.Anthropic.APIKey == "" {
				return fmt.Errorf("ANTHROPIC_API_KEY is required for the anthropic provider")
			}
		default:
			return fmt.Errorf("unknown LLM provider: %q", n)
		}
	}
	if c.Timeout < 0 {
		return fmt.Errorf("LLM timeout must not be negative")
	}
	return nil
}

func (c Config) apiKey(name string) string {
	switch name {
	case ProviderGemini:
		return c.Gemini.APIKey
	case ProviderOpenAI:
		return c.OpenAI.APIKey
	case ProviderAnthropic:
		return c.Anthropic.APIKey
	}
	return ""
}

func firstEnv(keys ...string) string {
	for _, k := range keys {
		if v := os.Getenv(k); v != "" {
			return v
		}
	}
	return ""
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
