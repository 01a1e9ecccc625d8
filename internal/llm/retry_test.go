package llm

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func retryConfig() RetryConfig {
	return RetryConfig{
		MaxAttempts: 3,
		InitialWait: 1 * time.Millisecond,
		MaxWait:     10 * time.Millisecond,
		Multiplier:  2.0,
	}
}

func TestRetry_SucceedsOnFirstAttempt(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Content: `{"ok":true}`},
	)
	p := WithRetry(mock, retryConfig())

	resp, err := p.Generate(context.Background(), Request{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Content != `{"ok":true}` {
		t.Fatalf("unexpected content: %s", resp.Content)
	}
	if mock.CallCount() != 1 {
		t.Fatalf("expected 1 call, got %d", mock.CallCount())
	}
}

func TestRetry_TransientThenSuccess(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Err: &ErrProviderUnavailable{Err: errors.New("down")}},
		MockResponse{Content: `{"ok":true}`},
	)
	p := WithRetry(mock, retryConfig())

	resp, err := p.Generate(context.Background(), Request{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Content != `{"ok":true}` {
		t.Fatalf("unexpected content: %s", resp.Content)
	}
	if mock.CallCount() != 2 {
		t.Fatalf("expected 2 calls, got %d", mock.CallCount())
	}
}

func TestRetry_AllAttemptsFail(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Err: &ErrProviderUnavailable{Err: errors.New("down")}},
		MockResponse{Err: &ErrProviderUnavailable{Err: errors.New("down")}},
		MockResponse{Err: &ErrProviderUnavailable{Err: errors.New("down")}},
	)
	p := WithRetry(mock, retryConfig())

	_, err := p.Generate(context.Background(), Request{})
	if err == nil {
		t.Fatal("expected error")
	}
	if mock.CallCount() != 3 {
		t.Fatalf("expected 3 calls, got %d", mock.CallCount())
	}
}

func TestRetry_MaxTokensNotRetried(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Err: &ErrMaxTokensExceeded{Content: `{}`}},
	)
	p := WithRetry(mock, retryConfig())

	_, err := p.Generate(context.Background(), Request{})
	if err == nil {
		t.Fatal("expected error")
	}
	var maxTok *ErrMaxTokensExceeded
	if !errors.As(err, &maxTok) {
		t.Fatalf("expected ErrMaxTokensExceeded, got: %T", err)
	}
	if mock.CallCount() != 1 {
		t.Fatalf("expected 1 call (no retry), got %d", mock.CallCount())
	}
}

func TestRetry_InvalidResponseRetriedOnce(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Err: &ErrInvalidResponse{Content: `bad`, Err: errors.New("bad")}},
		MockResponse{Err: &ErrInvalidResponse{Content: `bad`, Err: errors.New("bad")}},
		MockResponse{Content: `{"ok":true}`}, // Won't be reached.
	)
	p := WithRetry(mock, retryConfig())

	_, err := p.Generate(context.Background(), Request{})
	if err == nil {
		t.Fatal("expected error")
	}
	// Should have retried once (2 calls total), then stopped.
	if mock.CallCount() != 2 {
		t.Fatalf("expected 2 calls, got %d", mock.CallCount())
	}
}

func TestRetry_ContextCancellation(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Err: &ErrProviderUnavailable{Err: errors.New("down")}},
		MockResponse{Err: &ErrProviderUnavailable{Err: errors.New("down")}},
		MockResponse{Content: `{"ok":true}`},
	)
	p := WithRetry(mock, retryConfig())

	ctx, cancel := context.WithCancel(context.Background())
	cancel() // Cancel immediately.

	_, err := p.Generate(ctx, Request{})
	if err == nil {
		t.Fatal("expected error")
	}
}

func TestRetry_RateLimitRespectsRetryAfter(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Err: &ErrRateLimit{RetryAfter: 1 * time.Millisecond, Err: errors.New("429")}},
		MockResponse{Content: `{"ok":true}`},
	)
	p := WithRetry(mock, retryConfig())

	resp, err := p.Generate(context.Background(), Request{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Content != `{"ok":true}` {
		t.Fatalf("unexpected content: %s", resp.Content)
	}
	if mock.CallCount() != 2 {
		t.Fatalf("expected 2 calls, got %d", mock.CallCount())
	}
}

func TestRetry_ClientErrorNotRetried(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Err: &ErrProviderUnavailable{StatusCode: 401, Err: errors.New("bad key")}},
		MockResponse{Content: `{"ok":true}`},
	)
	p := WithRetry(mock, retryConfig())

	_, err := p.Generate(context.Background(), Request{})
	if err == nil {
		t.Fatal("expected error")
	}
	if code, ok := StatusCode(err); !ok || code != 401 {
		t.Fatalf("expected status 401, got %d (%v)", code, ok)
	}
	if mock.CallCount() != 1 {
		t.Fatalf("expected 1 call (no retry), got %d", mock.CallCount())
	}
}

func TestRetry_ZeroAttemptsStillCallsOnce(t *testing.T) {
	mock := NewMockProvider(MockResponse{Content: "text"})
	p := WithRetry(mock, RetryConfig{})

	resp, err := p.Generate(context.Background(), Request{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Content != "text" {
		t.Fatalf("unexpected content: %s", resp.Content)
	}
}

func TestRetry_ModelIDDelegates(t *testing.T) {
	mock := NewMockProvider()
	p := WithRetry(mock, retryConfig())
	if p.ModelID() != "mock" {
		t.Fatalf("expected 'mock', got %q", p.ModelID())
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want retryClass
	}{
		{"canceled", context.Canceled, retryNever},
		{"deadline wrapped", fmt.Errorf("attempt: %w", context.DeadlineExceeded), retryNever},
		{"truncated", &ErrMaxTokensExceeded{}, retryNever},
		{"bad key", &ErrProviderUnavailable{StatusCode: 401}, retryNever},
		{"bad request", &ErrProviderUnavailable{StatusCode: 400}, retryNever},
		{"malformed", &ErrInvalidResponse{Err: errors.New("bad")}, retryOnce},
		{"rate limit", &ErrRateLimit{}, retryBackoff},
		{"server error", &ErrProviderUnavailable{StatusCode: 503}, retryBackoff},
		{"transport", errors.New("connection reset"), retryBackoff},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := classify(tt.err); got != tt.want {
				t.Fatalf("classify(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}

func TestRetry_WaitIsCapped(t *testing.T) {
	r := &RetryProvider{config: RetryConfig{
		InitialWait: 10 * time.Millisecond,
		MaxWait:     40 * time.Millisecond,
		Multiplier:  2,
	}}
	for attempt := range 8 {
		got := r.wait(attempt, errors.New("down"))
		if got > 48*time.Millisecond {
			t.Fatalf("attempt %d: wait %s exceeds cap plus jitter", attempt, got)
		}
		if got < 8*time.Millisecond {
			t.Fatalf("attempt %d: wait %s below initial minus jitter", attempt, got)
		}
	}
}

func TestRetry_LogsEachRetry(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	mock := NewMockProvider(
		MockResponse{Err: &ErrProviderUnavailable{Err: errors.New("down")}},
		MockResponse{Err: &ErrProviderUnavailable{Err: errors.New("down")}},
		MockResponse{Content: "ok"},
	)
	p := WithRetry(mock, retryConfig(), RetryLogger(zap.New(core)))

	if _, err := p.Generate(context.Background(), Request{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	entries := logs.FilterMessage("retrying llm request").All()
	if len(entries) != 2 {
		t.Fatalf("expected 2 retry logs, got %d", len(entries))
	}
	if got := entries[1].ContextMap()["attempt"]; got != int64(2) {
		t.Fatalf("attempt = %v, want 2", got)
	}
}
