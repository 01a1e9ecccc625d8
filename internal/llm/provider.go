// Package llm talks to hosted language models. Each backend implements
// Provider; decorators add retries and event logging, and NewTiers assembles
// them in fallback order for the lesson service.
package llm

import "context"

// Provider sends one request to a model and returns its raw reply.
type Provider interface {
	// Generate returns the reply text unchanged. When req.Schema is set the
	// text has already been validated against it.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID is the configured model, used for logs and pricing.
	ModelID() string
}

// Role is a chat turn's author.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is one chat turn.
type Message struct {
	Role    Role
	Content string
}

// Request is a provider-neutral generation request.
type Request struct {
	System   string
	Messages []Message

	// Schema switches the provider to native structured output.
	Schema *Schema
	// JSON asks for a bare JSON object. Ignored when Schema is set.
	JSON   bool

	MaxTokens   int
	Temperature float64
}

// UserPrompt builds a single-turn request.
func UserPrompt(system, prompt string) Request {
	return Request{
		System:   system,
		Messages: []Message{{Role: RoleUser, Content: prompt}},
	}
}

// Schema is a named JSON Schema document.
type Schema struct {
	// Name is kebab-case; OpenAI requires it and it keys the compile cache.
	Name        string
	Description string
	Definition  map[string]any
}

// Response is a model reply.
type Response struct {
	Content    string
	Usage      Usage
	Model      string // model that actually served the request
	StopReason StopReason
}

// Usage counts tokens for one request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
