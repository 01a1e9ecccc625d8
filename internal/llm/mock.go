package llm

import (
	"context"
	"errors"
	"sync"
	"time"
)

// MockResponse is one scripted reply for MockProvider.
type MockResponse struct {
	Content string
	Usage   Usage
	Err     error

	// Stop defaults to StopEnd.
	Stop  StopReason
	// Delay holds the reply back; a context that ends first wins.
	Delay time.Duration
}

// MockProvider replays scripted replies in order and records every request.
// Content is returned untouched so callers can exercise their own parsing.
type MockProvider struct {
	mu     sync.Mutex
	model  string
	script []MockResponse
	Calls  []Request
}

// NewMockProvider creates a MockProvider reporting the model "mock".
func NewMockProvider(responses ...MockResponse) *MockProvider {
	return NewNamedMockProvider("mock", responses...)
}

// NewNamedMockProvider creates a MockProvider reporting the given model ID.
func NewNamedMockProvider(model string, responses ...MockResponse) *MockProvider {
	return &MockProvider{model: model, script: responses}
}

// Generate pops the next scripted reply. An exhausted script reports the
// provider as unavailable.
func (m *MockProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	next, ok := m.pop(req)
	if !ok {
		return nil, &ErrProviderUnavailable{Err: errors.New("mock script exhausted")}
	}

	if next.Delay > 0 {
		t := time.NewTimer(next.Delay)
		defer t.Stop()
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-t.C:
		}
	} else if err := ctx.Err(); err != nil {
		return nil, err
	}

	if next.Err != nil {
		return nil, next.Err
	}
	stop := next.Stop
	if stop == "" {
		stop = StopEnd
	}
	return &Response{Content: next.Content, Usage: next.Usage, Model: m.model, StopReason: stop}, nil
}

func (m *MockProvider) pop(req Request) (MockResponse, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Calls = append(m.Calls, req)
	if len(m.script) == 0 {
		return MockResponse{}, false
	}
	next := m.script[0]
	m.script = m.script[1:]
	return next, true
}

func (m *MockProvider) ModelID() string {
	return m.model
}

// AddResponse appends a reply to the script.
func (m *MockProvider) AddResponse(resp MockResponse) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.script = append(m.script, resp)
}

// CallCount returns the number of Generate calls made.
func (m *MockProvider) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Calls)
}

// LastRequest returns the most recent request, or false before any call.
func (m *MockProvider) LastRequest() (Request, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.Calls) == 0 {
		return Request{}, false
	}
	return m.Calls[len(m.Calls)-1], true
}
