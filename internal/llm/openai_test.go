package llm

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	openai "github.com/sashabaranov/go-openai"
)

func newTestOpenAIProvider(t *testing.T, handler http.HandlerFunc) *OpenAIProvider {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	config := openai.DefaultConfig("test-key")
	config.BaseURL = server.URL + "/v1"
	client := openai.NewClientWithConfig(config)

	return &OpenAIProvider{
		client: client,
		model:  "gpt-4o-mini",
	}
}

func writeOpenAICompletion(w http.ResponseWriter, content string) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"id":      "chatcmpl-test",
		"object":  "chat.completion",
		"created": 1234567890,
		"model":   "gpt-4o-mini",
		"choices": []map[string]any{
			{
				"index": 0,
				"message": map[string]any{
					"role":    "assistant",
					"content": content,
				},
				"finish_reason": "stop",
			},
		},
		"usage": map[string]any{
			"prompt_tokens":     40,
			"completion_tokens": 25,
			"total_tokens":      65,
		},
	})
}

func TestOpenAIProvider_HappyPath(t *testing.T) {
	var body string
	handler := func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		body = string(b)
		writeOpenAICompletion(w, `{"article":{"titleEn":"Oceans"}}`)
	}

	p := newTestOpenAIProvider(t, handler)
	req := UserPrompt("Return ONLY JSON.", "Write a lesson about oceans.")
	req.JSON = true
	req.MaxTokens = 256
	req.Temperature = 0.7

	resp, err := p.Generate(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Content != `{"article":{"titleEn":"Oceans"}}` {
		t.Fatalf("unexpected content: %s", resp.Content)
	}
	if resp.Usage.InputTokens != 40 {
		t.Fatalf("expected 40 input tokens, got %d", resp.Usage.InputTokens)
	}
	if resp.Usage.OutputTokens != 25 {
		t.Fatalf("expected 25 output tokens, got %d", resp.Usage.OutputTokens)
	}
	if resp.StopReason != "end" {
		t.Fatalf("expected stop reason 'end', got %q", resp.StopReason)
	}
	if !strings.Contains(body, `"json_object"`) {
		t.Fatalf("expected json_object response format in request: %s", body)
	}
	if !strings.Contains(body, `"Return ONLY JSON."`) {
		t.Fatalf("expected system prompt in request: %s", body)
	}
}

func TestOpenAIProvider_PlainTextRequest(t *testing.T) {
	var body string
	handler := func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		body = string(b)
		writeOpenAICompletion(w, "TITLE_EN: Oceans")
	}

	p := newTestOpenAIProvider(t, handler)
	resp, err := p.Generate(context.Background(), UserPrompt("", "sections please"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Content != "TITLE_EN: Oceans" {
		t.Fatalf("unexpected content: %s", resp.Content)
	}
	if strings.Contains(body, "response_format") {
		t.Fatalf("did not expect a response format: %s", body)
	}
}

func TestOpenAIProvider_RateLimit(t *testing.T) {
	handler := func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusTooManyRequests)
		json.NewEncoder(w).Encode(map[string]any{
			"error": map[string]any{
				"type":    "tokens",
				"message": "Rate limit exceeded",
				"code":    "rate_limit_exceeded",
			},
		})
	}

	p := newTestOpenAIProvider(t, handler)
	_, err := p.Generate(context.Background(), UserPrompt("", "test"))
	if err == nil {
		t.Fatal("expected error")
	}
	var rl *ErrRateLimit
	if !errors.As(err, &rl) {
		t.Fatalf("expected ErrRateLimit, got: %T (%v)", err, err)
	}
}

func TestOpenAIProvider_ServerError(t *testing.T) {
	handler := func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(map[string]any{
			"error": map[string]any{
				"type":    "server_error",
				"message": "Internal server error",
			},
		})
	}

	p := newTestOpenAIProvider(t, handler)
	_, err := p.Generate(context.Background(), UserPrompt("", "test"))
	if err == nil {
		t.Fatal("expected error")
	}
	var unavail *ErrProviderUnavailable
	if !errors.As(err, &unavail) {
		t.Fatalf("expected ErrProviderUnavailable, got: %T (%v)", err, err)
	}
	if code, ok := StatusCode(err); !ok || code != 500 {
		t.Fatalf("expected status 500, got %d", code)
	}
}

func TestOpenAIProvider_Unauthorized(t *testing.T) {
	handler := func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]any{
			"error": map[string]any{
				"type":    "invalid_request_error",
				"message": "Incorrect API key provided",
				"code":    "invalid_api_key",
			},
		})
	}

	p := newTestOpenAIProvider(t, handler)
	_, err := p.Generate(context.Background(), UserPrompt("", "test"))
	if code, ok := StatusCode(err); !ok || code != 401 {
		t.Fatalf("expected status 401, got %d (%v)", code, err)
	}
}

func TestOpenAIProvider_NoChoices(t *testing.T) {
	handler := func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"id":      "chatcmpl-test",
			"object":  "chat.completion",
			"model":   "gpt-4o-mini",
			"choices": []map[string]any{},
		})
	}

	p := newTestOpenAIProvider(t, handler)
	_, err := p.Generate(context.Background(), UserPrompt("", "test"))
	var invErr *ErrInvalidResponse
	if !errors.As(err, &invErr) {
		t.Fatalf("expected ErrInvalidResponse, got: %T (%v)", err, err)
	}
}

func TestOpenAIProvider_ModelID(t *testing.T) {
	p := &OpenAIProvider{model: "gpt-4o-mini"}
	if p.ModelID() != "gpt-4o-mini" {
		t.Fatalf("expected 'gpt-4o-mini', got %q", p.ModelID())
	}
}

func TestOpenAIProvider_BaseURLOverride(t *testing.T) {
	cfg := OpenAIConfig{
		APIKey:  "test-key",
		Model:   "gpt-mini",
		BaseURL: "https://openrouter.ai/api/v1",
	}
	p, err := NewOpenAIProvider(cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.ModelID() != "gpt-4.1-mini" {
		t.Fatalf("expected 'gpt-4.1-mini', got %q", p.ModelID())
	}
}

func TestOpenAIProvider_RequiresKey(t *testing.T) {
	if _, err := NewOpenAIProvider(OpenAIConfig{}); err == nil {
		t.Fatal("expected error without API key")
	}
}

func TestOpenAIProvider_ContentFilter(t *testing.T) {
	handler := func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"model": "gpt-4o-mini",
			"choices": []map[string]any{{
				"index":         0,
				"message":       map[string]any{"role": "assistant", "content": ""},
				"finish_reason": "content_filter",
			}},
		})
	}

	p := newTestOpenAIProvider(t, handler)
	_, err := p.Generate(context.Background(), UserPrompt("", "Write a lesson."))
	var inv *ErrInvalidResponse
	if !errors.As(err, &inv) {
		t.Fatalf("expected ErrInvalidResponse, got %T (%v)", err, err)
	}
}

func TestOpenAIProvider_Refusal(t *testing.T) {
	handler := func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"model": "gpt-4o-mini",
			"choices": []map[string]any{{
				"index":         0,
				"message":       map[string]any{"role": "assistant", "refusal": "I can't help with that."},
				"finish_reason": "stop",
			}},
		})
	}

	p := newTestOpenAIProvider(t, handler)
	_, err := p.Generate(context.Background(), UserPrompt("", "Write a lesson."))
	var inv *ErrInvalidResponse
	if !errors.As(err, &inv) {
		t.Fatalf("expected ErrInvalidResponse, got %T (%v)", err, err)
	}
	if inv.Content != "I can't help with that." {
		t.Fatalf("refusal not kept: %q", inv.Content)
	}
}

func TestOpenAIProvider_CompatMaxTokens(t *testing.T) {
	var body map[string]any
	handler := func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&body)
		writeOpenAICompletion(w, "TITLE_EN: Oceans")
	}

	p := newTestOpenAIProvider(t, handler)
	p.compat = true
	req := UserPrompt("", "sections please")
	req.MaxTokens = 512
	if _, err := p.Generate(context.Background(), req); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if body["max_tokens"] != float64(512) {
		t.Fatalf("max_tokens = %v, want 512", body["max_tokens"])
	}
	if _, ok := body["max_completion_tokens"]; ok {
		t.Fatal("compat mode should not send max_completion_tokens")
	}
}
