package llm

import (
	"errors"
	"fmt"
	"time"
)

// ErrRateLimit indicates the provider returned a rate limit error (429).
type ErrRateLimit struct {
	RetryAfter time.Duration
	Err        error
}

func (e *ErrRateLimit) Error() string {
	return fmt.Sprintf("rate limited (retry after %s): %v", e.RetryAfter, e.Err)
}

func (e *ErrRateLimit) Unwrap() error { return e.Err }

// ErrInvalidResponse indicates the LLM returned content that does not
// conform to the requested schema.
type ErrInvalidResponse struct {
	Content string
	Err     error
}

func (e *ErrInvalidResponse) Error() string {
	return fmt.Sprintf("invalid LLM response: %v", e.Err)
}

func (e *ErrInvalidResponse) Unwrap() error { return e.Err }

// ErrProviderUnavailable indicates the provider is down, unreachable or
// rejected the request. StatusCode is the HTTP status when one was returned.
type ErrProviderUnavailable struct {
	StatusCode int
	Err        error
}

func (e *ErrProviderUnavailable) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("LLM provider unavailable: %v", e.Err)
	}
	return "LLM provider unavailable"
}

func (e *ErrProviderUnavailable) Unwrap() error { return e.Err }

// ErrMaxTokensExceeded indicates the response was truncated because it
// hit the MaxTokens limit.
type ErrMaxTokensExceeded struct {
	Content string
}

func (e *ErrMaxTokensExceeded) Error() string {
	return "LLM response truncated: max tokens exceeded"
}

// StatusCode extracts the HTTP status carried by a provider error.
// Rate limits always report 429.
func StatusCode(err error) (int, bool) {
	var rl *ErrRateLimit
	if errors.As(err, &rl) {
		return 429, true
	}
	var unavail *ErrProviderUnavailable
	if errors.As(err, &unavail) && unavail.StatusCode > 0 {
		return unavail.StatusCode, true
	}
	return 0, false
}

// mapStatusError converts an HTTP status from any SDK into a typed error.
func mapStatusError(status int, err error) error {
	if status == 429 {
		return &ErrRateLimit{Err: err}
	}
	return &ErrProviderUnavailable{StatusCode: status, Err: err}
}
