package llm

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"
)

func TestMockProvider_ReturnsCannedResponses(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Content: `{"article":{}}`, Usage: Usage{InputTokens: 10, OutputTokens: 5, TotalTokens: 15}},
		MockResponse{Content: "TITLE_EN: Oceans"},
	)

	resp1, err := mock.Generate(context.Background(), UserPrompt("", "first"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp1.Content != `{"article":{}}` {
		t.Fatalf("unexpected content %s", resp1.Content)
	}
	if resp1.Usage.InputTokens != 10 {
		t.Fatalf("expected 10 input tokens, got %d", resp1.Usage.InputTokens)
	}
	if resp1.StopReason != "end" {
		t.Fatalf("expected stop reason 'end', got %q", resp1.StopReason)
	}

	resp2, err := mock.Generate(context.Background(), UserPrompt("", "second"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp2.Content != "TITLE_EN: Oceans" {
		t.Fatalf("unexpected content %s", resp2.Content)
	}
}

func TestMockProvider_EmptyQueueReturnsError(t *testing.T) {
	mock := NewMockProvider()
	_, err := mock.Generate(context.Background(), Request{})
	if err == nil {
		t.Fatal("expected error from empty queue")
	}
	var unavail *ErrProviderUnavailable
	if !errors.As(err, &unavail) {
		t.Fatalf("expected ErrProviderUnavailable, got: %T", err)
	}
}

func TestMockProvider_RecordsCalls(t *testing.T) {
	mock := NewMockProvider(MockResponse{Content: `{}`})

	_, _ = mock.Generate(context.Background(), UserPrompt("sys", "hello"))

	if mock.CallCount() != 1 {
		t.Fatalf("expected 1 call, got %d", mock.CallCount())
	}
	if mock.Calls[0].System != "sys" {
		t.Fatalf("expected system 'sys', got %q", mock.Calls[0].System)
	}
	if mock.Calls[0].Messages[0].Role != RoleUser {
		t.Fatalf("expected user role, got %q", mock.Calls[0].Messages[0].Role)
	}
}

func TestMockProvider_ReturnsConfiguredError(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Err: &ErrRateLimit{RetryAfter: 0}},
	)

	_, err := mock.Generate(context.Background(), Request{})
	if err == nil {
		t.Fatal("expected error")
	}
	var rl *ErrRateLimit
	if !errors.As(err, &rl) {
		t.Fatalf("expected ErrRateLimit, got: %T", err)
	}
}

func TestMockProvider_ModelID(t *testing.T) {
	if id := NewMockProvider().ModelID(); id != "mock" {
		t.Fatalf("expected 'mock', got %q", id)
	}
	if id := NewNamedMockProvider("gemini-test").ModelID(); id != "gemini-test" {
		t.Fatalf("expected 'gemini-test', got %q", id)
	}
}

func TestMockProvider_DelayHonoursContext(t *testing.T) {
	mock := NewMockProvider(MockResponse{Content: "late", Delay: time.Hour})
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := mock.Generate(ctx, Request{})
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected deadline exceeded, got %v", err)
	}
}

func TestMockProvider_StopAndLastRequest(t *testing.T) {
	mock := NewMockProvider(MockResponse{Content: "TITLE_EN: Cut", Stop: StopMaxTokens})
	if _, ok := mock.LastRequest(); ok {
		t.Fatal("expected no request before the first call")
	}

	resp, err := mock.Generate(context.Background(), UserPrompt("sys", "go"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.StopReason != StopMaxTokens {
		t.Fatalf("stop reason = %q", resp.StopReason)
	}
	last, ok := mock.LastRequest()
	if !ok || last.System != "sys" {
		t.Fatalf("unexpected last request: %+v", last)
	}
}

func TestPurposeContext(t *testing.T) {
	ctx := context.Background()
	if p := PurposeFrom(ctx); p != "unknown" {
		t.Fatalf("expected 'unknown', got %q", p)
	}

	ctx = WithPurpose(ctx, "lesson")
	if p := PurposeFrom(ctx); p != "lesson" {
		t.Fatalf("expected 'lesson', got %q", p)
	}
}

func TestStatusCode(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		want   int
		wantOK bool
	}{
		{"rate limit", &ErrRateLimit{}, 429, true},
		{"unavailable with status", &ErrProviderUnavailable{StatusCode: 503}, 503, true},
		{"unavailable without status", &ErrProviderUnavailable{Err: errors.New("dial tcp")}, 0, false},
		{"invalid response", &ErrInvalidResponse{Err: errors.New("bad")}, 0, false},
		{"plain error", errors.New("boom"), 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := StatusCode(tt.err)
			if got != tt.want || ok != tt.wantOK {
				t.Fatalf("StatusCode() = (%d, %v), want (%d, %v)", got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{
			name:    "anthropic without key",
			cfg:     Config{Providers: []string{"anthropic"}},
			wantErr: true,
		},
		{
			name:    "anthropic with key",
			cfg:     Config{Providers: []string{"anthropic"}, Anthropic: AnthropicConfig{APIKey: "sk-test"}},
			wantErr: false,
		},
		{
			name:    "openai without key",
			cfg:     Config{Providers: []string{"openai"}},
			wantErr: true,
		},
		{
			name:    "gemini then openai",
			cfg:     Config{Providers: []string{"gemini", "openai"}, Gemini: GeminiConfig{APIKey: "g"}, OpenAI: OpenAIConfig{APIKey: "o"}},
			wantErr: false,
		},
		{
			name:    "implicit order needs no keys",
			cfg:     Config{},
			wantErr: false,
		},
		{
			name:    "unknown provider",
			cfg:     Config{Providers: []string{"unknown"}},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestConfig_Order(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		want string
	}{
		{"no keys", Config{}, ""},
		{"google only", Config{Gemini: GeminiConfig{APIKey: "g"}}, "gemini"},
		{"google before openai", Config{Gemini: GeminiConfig{APIKey: "g"}, OpenAI: OpenAIConfig{APIKey: "o"}}, "gemini,openai"},
		{"all three", Config{Gemini: GeminiConfig{APIKey: "g"}, OpenAI: OpenAIConfig{APIKey: "o"}, Anthropic: AnthropicConfig{APIKey: "a"}}, "gemini,openai,anthropic"},
		{"explicit order", Config{Providers: []string{"openai", "gemini"}, Gemini: GeminiConfig{APIKey: "g"}, OpenAI: OpenAIConfig{APIKey: "o"}}, "openai,gemini"},
		{"explicit order skips missing keys", Config{Providers: []string{"anthropic", " OpenAI "}, OpenAI: OpenAIConfig{APIKey: "o"}}, "openai"},
		{"duplicates collapse", Config{Providers: []string{"openai", "openai"}, OpenAI: OpenAIConfig{APIKey: "o"}}, "openai"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := strings.Join(tt.cfg.Order(), ",")
			if got != tt.want {
				t.Fatalf("Order() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestConfigFromEnv(t *testing.T) {
	t.Setenv("GOOGLE_API_KEY", "")
	t.Setenv("GEMINI_API_KEY", "gem-key")
	t.Setenv("OPENAI_API_KEY", "oa-key")
	t.Setenv("ANTHROPIC_API_KEY", "")
	t.Setenv("READINGCOACH_LLM_PROVIDERS", "openai, gemini")
	t.Setenv("READINGCOACH_OPENAI_MODEL", "gpt-4o")
	t.Setenv("READINGCOACH_LLM_TIMEOUT", "10s")
	t.Setenv("READINGCOACH_LLM_RETRIES", "4")

	cfg := ConfigFromEnv()

	if cfg.Gemini.APIKey != "gem-key" {
		t.Fatalf("expected GEMINI_API_KEY fallback, got %q", cfg.Gemini.APIKey)
	}
	if cfg.OpenAI.Model != "gpt-4o" {
		t.Fatalf("expected gpt-4o, got %q", cfg.OpenAI.Model)
	}
	if cfg.Timeout != 10*time.Second {
		t.Fatalf("expected 10s timeout, got %s", cfg.Timeout)
	}
	if cfg.Retry.MaxAttempts != 4 {
		t.Fatalf("expected 4 attempts, got %d", cfg.Retry.MaxAttempts)
	}
	if got := strings.Join(cfg.Order(), ","); got != "openai,gemini" {
		t.Fatalf("Order() = %q", got)
	}
}

func TestConfigFromEnv_GoogleKeyWins(t *testing.T) {
	t.Setenv("GOOGLE_API_KEY", "google")
	t.Setenv("GEMINI_API_KEY", "gemini")

	cfg := ConfigFromEnv()
	if cfg.Gemini.APIKey != "google" {
		t.Fatalf("expected GOOGLE_API_KEY to win, got %q", cfg.Gemini.APIKey)
	}
}

func TestNewTiers_NoKeys(t *testing.T) {
	tiers, err := NewTiers(context.Background(), Config{}, nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tiers) != 0 {
		t.Fatalf("expected no tiers, got %d", len(tiers))
	}
}

func TestNewTiers_BuildsInOrder(t *testing.T) {
	cfg := DefaultConfig()
	cfg.OpenAI.APIKey = "o"
	cfg.Anthropic.APIKey = "a"

	tiers, err := NewTiers(context.Background(), cfg, nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tiers) != 2 {
		t.Fatalf("expected 2 tiers, got %d", len(tiers))
	}
	if tiers[0].Name != ProviderOpenAI || tiers[1].Name != ProviderAnthropic {
		t.Fatalf("unexpected order: %s, %s", tiers[0].Name, tiers[1].Name)
	}
	if tiers[0].Provider.ModelID() != "gpt-4o-mini" {
		t.Fatalf("expected gpt-4o-mini, got %q", tiers[0].Provider.ModelID())
	}
}

func TestSerializeRequest(t *testing.T) {
	req := UserPrompt("Return ONLY JSON.", "Write a lesson.")
	req.JSON = true

	out := serializeRequest(req)
	for _, want := range []string{"[system]", "Return ONLY JSON.", "[user]", "Write a lesson.", "[format: json]"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in %q", want, out)
		}
	}
}
