package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

// geminiModels maps friendly names to Gemini model IDs.
var geminiModels = map[string]string{
	"gemini-flash":      "gemini-2.5-flash",
	"gemini-flash-lite": "gemini-2.5-flash-lite",
	"gemini-pro":        "gemini-2.5-pro",
}

// GeminiProvider implements Provider using the Google Gen AI SDK. It is the
// primary lesson generator when GOOGLE_API_KEY or GEMINI_API_KEY is set.
type GeminiProvider struct {
	client *genai.Client
	model  string
}

// NewGeminiProvider creates a new Gemini provider.
func NewGeminiProvider(ctx context.Context, cfg GeminiConfig) (*GeminiProvider, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("gemini API key is required")
	}

	cc := &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	}
	if cfg.BaseURL != "" {
		cc.HTTPOptions = genai.HTTPOptions{BaseURL: cfg.BaseURL}
	}
	client, err := genai.NewClient(ctx, cc)
	if err != nil {
		return nil, fmt.Errorf("create Gemini client: %w", err)
	}

	return &GeminiProvider{client: client, model: resolveModel(cfg.Model, geminiModels)}, nil
}

func (p *GeminiProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	result, err := p.client.Models.GenerateContent(ctx, p.model, geminiContents(req.Messages), geminiConfig(req))
	if err != nil {
		return nil, mapGeminiError(err)
	}

	if fb := result.PromptFeedback; fb != nil && fb.BlockReason != "" {
		return nil, &ErrInvalidResponse{Err: fmt.Errorf("prompt blocked: %s", fb.BlockReason)}
	}

	var usage Usage
	if m := result.UsageMetadata; m != nil {
		usage = Usage{
			InputTokens:  int(m.PromptTokenCount),
			OutputTokens: int(m.CandidatesTokenCount),
			TotalTokens:  int(m.TotalTokenCount),
		}
	}
	model := p.model
	if result.ModelVersion != "" {
		model = result.ModelVersion
	}
	return finalize(req, result.Text(), usage, model, geminiStop(result))
}

func (p *GeminiProvider) ModelID() string {
	return p.model
}

// geminiConfig translates a Request. Schemas are passed through as raw JSON
// Schema so additionalProperties and enums survive.
func geminiConfig(req Request) *genai.GenerateContentConfig {
	cfg := &genai.GenerateContentConfig{
		MaxOutputTokens: int32(req.MaxTokens),
		CandidateCount:  1,
	}
	if req.Temperature > 0 {
		cfg.Temperature = genai.Ptr(float32(req.Temperature))
	}
	if req.System != "" {
		cfg.SystemInstruction = genai.NewContentFromText(req.System, genai.RoleUser)
	}
	if req.Schema != nil || req.JSON {
		cfg.ResponseMIMEType = "application/json"
	}
	if req.Schema != nil {
		cfg.ResponseJsonSchema = req.Schema.Definition
	}
	return cfg
}

func geminiContents(msgs []Message) []*genai.Content {
	out := make([]*genai.Content, 0, len(msgs))
	for _, m := range msgs {
		role := genai.Role(genai.RoleUser)
		if m.Role == RoleAssistant {
			role = genai.RoleModel
		}
		out = append(out, genai.NewContentFromText(m.Content, role))
	}
	return out
}

func geminiStop(result *genai.GenerateContentResponse) StopReason {
	if len(result.Candidates) == 0 {
		return StopEnd
	}
	switch result.Candidates[0].FinishReason {
	case genai.FinishReasonMaxTokens:
		return StopMaxTokens
	case genai.FinishReasonSafety, genai.FinishReasonRecitation, genai.FinishReasonBlocklist,
		genai.FinishReasonProhibitedContent, genai.FinishReasonSPII:
		return StopFiltered
	default:
		return StopEnd
	}
}

func mapGeminiError(err error) error {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		return mapStatusError(apiErr.Code, err)
	}
	var apiErrPtr *genai.APIError
	if errors.As(err, &apiErrPtr) {
		return mapStatusError(apiErrPtr.Code, err)
	}
	if strings.Contains(err.Error(), "RESOURCE_EXHAUSTED") {
		return &ErrRateLimit{Err: err}
	}
	return &ErrProviderUnavailable{Err: err}
}
