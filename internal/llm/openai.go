package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
)

// openaiModels maps friendly names to OpenAI model IDs.
var openaiModels = map[string]string{
	"gpt-mini": "gpt-4.1-mini",
	"gpt-nano": "gpt-4.1-nano",
	"gpt-4o":   "gpt-4o",
}

// OpenAIProvider implements Provider using the OpenAI chat completions API.
// A BaseURL points it at OpenRouter or another compatible gateway.
type OpenAIProvider struct {
	client *openai.Client
	model  string

	// compat sends max_tokens instead of max_completion_tokens; most
	// third-party gateways only accept the older field.
	compat bool
}

// NewOpenAIProvider creates a new OpenAI provider.
func NewOpenAIProvider(cfg OpenAIConfig) (*OpenAIProvider, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("openai API key is required")
	}

	cc := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		cc.BaseURL = cfg.BaseURL
	}
	return &OpenAIProvider{
		client: openai.NewClientWithConfig(cc),
		model:  resolveModel(cfg.Model, openaiModels),
		compat: cfg.BaseURL != "",
	}, nil
}

func (p *OpenAIProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	chatReq, err := p.chatRequest(req)
	if err != nil {
		return nil, err
	}

	resp, err := p.client.CreateChatCompletion(ctx, chatReq)
	if err != nil {
		return nil, mapOpenAIError(err)
	}
	if len(resp.Choices) == 0 {
		return nil, &ErrInvalidResponse{Err: errors.New("no choices in OpenAI response")}
	}

	choice := resp.Choices[0]
	if choice.Message.Refusal != "" {
		return nil, &ErrInvalidResponse{Content: choice.Message.Refusal, Err: errors.New("model refused the request")}
	}

	stop := StopEnd
	switch choice.FinishReason {
	case openai.FinishReasonLength:
		stop = StopMaxTokens
	case openai.FinishReasonContentFilter:
		stop = StopFiltered
	}

	usage := Usage{
		InputTokens:  resp.Usage.PromptTokens,
		OutputTokens: resp.Usage.CompletionTokens,
		TotalTokens:  resp.Usage.TotalTokens,
	}
	model := resp.Model
	if model == "" {
		model = p.model
	}
	return finalize(req, choice.Message.Content, usage, model, stop)
}

func (p *OpenAIProvider) ModelID() string {
	return p.model
}

func (p *OpenAIProvider) chatRequest(req Request) (openai.ChatCompletionRequest, error) {
	out := openai.ChatCompletionRequest{
		Model:       p.model,
		Messages:    openaiMessages(req),
		Temperature: float32(req.Temperature),
	}
	if p.compat {
		out.MaxTokens = req.MaxTokens
	} else {
		out.MaxCompletionTokens = req.MaxTokens
	}

	switch {
	case req.Schema != nil:
		def, err := json.Marshal(req.Schema.Definition)
		if err != nil {
			return out, fmt.Errorf("marshal schema %s: %w", req.Schema.Name, err)
		}
		out.ResponseFormat = &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONSchema,
			JSONSchema: &openai.ChatCompletionResponseFormatJSONSchema{
				Name:        req.Schema.Name,
				Description: req.Schema.Description,
				Schema:      json.RawMessage(def),
				Strict:      true,
			},
		}
	case req.JSON:
		out.ResponseFormat = &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		}
	}
	return out, nil
}

func openaiMessages(req Request) []openai.ChatCompletionMessage {
	msgs := make([]openai.ChatCompletionMessage, 0, len(req.Messages)+1)
	if req.System != "" {
		msgs = append(msgs, openai.ChatCompletionMessage{Role: openai.ChatMessageRoleSystem, Content: req.System})
	}
	for _, m := range req.Messages {
		role := openai.ChatMessageRoleUser
		if m.Role == RoleAssistant {
			role = openai.ChatMessageRoleAssistant
		}
		msgs = append(msgs, openai.ChatCompletionMessage{Role: role, Content: m.Content})
	}
	return msgs
}

func mapOpenAIError(err error) error {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return mapStatusError(apiErr.HTTPStatusCode, err)
	}
	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		return mapStatusError(reqErr.HTTPStatusCode, err)
	}
	return &ErrProviderUnavailable{Err: err}
}
