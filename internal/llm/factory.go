package llm

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/shirley/readingcoach/internal/store"
)

// Tier is one named provider in the fallback order.
type Tier struct {
	Name     string
	Provider Provider
}

// NewProvider creates the named Provider from configuration.
// It returns the provider wrapped with retry and logging middleware.
func NewProvider(ctx context.Context, name string, cfg Config, eventRepo store.EventRepo, log *zap.Logger) (Provider, error) {
	var base Provider
	var err error

	switch name {
	case ProviderAnthropic:
		base, err = NewAnthropicProvider(cfg.Anthropic)
	case ProviderOpenAI:
		base, err = NewOpenAIProvider(cfg.OpenAI)
	case ProviderGemini:
		base, err = NewGeminiProvider(ctx, cfg.Gemini)
	default:
		return nil, fmt.Errorf("unknown LLM provider: %q", name)
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", name, err)
	}

	// caller -> retry -> logging -> base, so every attempt is recorded.
	logged := WithLogging(base, name, eventRepo, log)
	var opts []RetryOption
	if log != nil {
		opts = append(opts, RetryLogger(log.With(zap.String("provider", name))))
	}
	return WithRetry(logged, cfg.Retry, opts...), nil
}

// NewTiers builds every configured provider in fallback order. An empty
// result means no credentials are present.
func NewTiers(ctx context.Context, cfg Config, eventRepo store.EventRepo, log *zap.Logger) ([]Tier, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var tiers []Tier
	for _, name := range cfg.Order() {
		p, err := NewProvider(ctx, name, cfg, eventRepo, log)
		if err != nil {
			return nil, err
		}
		tiers = append(tiers, Tier{Name: name, Provider: p})
	}
	return tiers, nil
}
