package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

// anthropicModels maps friendly names to Anthropic model IDs.
var anthropicModels = map[string]string{
	"claude-haiku":  "claude-haiku-4-5-20251001",
	"claude-sonnet": "claude-sonnet-4-5",
}

// anthropicDefaultMaxTokens applies when a request leaves MaxTokens unset;
// the Messages API requires a value.
const anthropicDefaultMaxTokens = 4096

// AnthropicProvider implements Provider using the Anthropic Messages API.
type AnthropicProvider struct {
	client *anthropic.Client
	model  string
}

// NewAnthropicProvider creates a new Anthropic provider.
func NewAnthropicProvider(cfg AnthropicConfig) (*AnthropicProvider, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("anthropic API key is required")
	}

	opts := []option.RequestOption{option.WithAPIKey(cfg.APIKey)}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}
	client := anthropic.NewClient(opts...)

	return &AnthropicProvider{client: &client, model: resolveModel(cfg.Model, anthropicModels)}, nil
}

// Generate honours Request.JSON without a schema by prefilling the
// assistant turn with "{" and restoring it on the reply.
func (p *AnthropicProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	prefill := req.JSON && req.Schema == nil

	msg, err := p.client.Messages.New(ctx, p.params(req, prefill))
	if err != nil {
		return nil, mapAnthropicError(err)
	}

	var text strings.Builder
	for _, block := range msg.Content {
		if block.Type == "text" {
			text.WriteString(block.Text)
		}
	}
	raw := text.String()
	if prefill && raw != "" && !strings.HasPrefix(strings.TrimSpace(raw), "{") {
		raw = "{" + raw
	}

	var stop StopReason
	switch msg.StopReason {
	case anthropic.StopReasonMaxTokens:
		stop = StopMaxTokens
	case anthropic.StopReasonRefusal:
		stop = StopFiltered
	default:
		stop = StopEnd
	}

	usage := Usage{
		InputTokens:  int(msg.Usage.InputTokens),
		OutputTokens: int(msg.Usage.OutputTokens),
	}
	return finalize(req, raw, usage, string(msg.Model), stop)
}

func (p *AnthropicProvider) ModelID() string {
	return p.model
}

func (p *AnthropicProvider) params(req Request, prefill bool) anthropic.MessageNewParams {
	maxTokens := req.MaxTokens
	if maxTokens <= 0 {
		maxTokens = anthropicDefaultMaxTokens
	}

	msgs := make([]anthropic.MessageParam, 0, len(req.Messages)+1)
	for _, m := range req.Messages {
		block := anthropic.NewTextBlock(m.Content)
		if m.Role == RoleAssistant {
			msgs = append(msgs, anthropic.NewAssistantMessage(block))
		} else {
			msgs = append(msgs, anthropic.NewUserMessage(block))
		}
	}
	if prefill {
		msgs = append(msgs, anthropic.NewAssistantMessage(anthropic.NewTextBlock("{")))
	}

	params := anthropic.MessageNewParams{
		Model:     anthropic.Model(p.model),
		MaxTokens: int64(maxTokens),
		Messages:  msgs,
	}
	if req.System != "" {
		params.System = []anthropic.TextBlockParam{{Text: req.System}}
	}
	if req.Temperature > 0 {
		params.Temperature = anthropic.Float(req.Temperature)
	}
	if req.Schema != nil {
		params.OutputConfig = anthropic.OutputConfigParam{
			Format: anthropic.JSONOutputFormatParam{Schema: req.Schema.Definition},
		}
	}
	return params
}

func mapAnthropicError(err error) error {
	var apiErr *anthropic.Error
	if errors.As(err, &apiErr) {
		return mapStatusError(apiErr.StatusCode, err)
	}
	return &ErrProviderUnavailable{Err: err}
}

// resolveModel maps a friendly model name to a provider model ID. Unknown
// names are treated as literal model IDs.
func resolveModel(name string, models map[string]string) string {
	if id, ok := models[name]; ok {
		return id
	}
	return name
}
