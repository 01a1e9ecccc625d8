package llm

import (
	"errors"
	"strings"
)

// StopReason is the normalized reason a model stopped generating.
type StopReason string

const (
	StopEnd       StopReason = "end"
	StopMaxTokens StopReason = "max_tokens"
	// StopFiltered covers safety blocks and refusals.
	StopFiltered StopReason = "filtered"
)

// finalize turns the text a provider extracted into a Response, applying the
// checks every backend shares. A schema mismatch on a truncated reply is
// reported as ErrMaxTokensExceeded so callers can tell the two apart.
func finalize(req Request, raw string, usage Usage, model string, stop StopReason) (*Response, error) {
	switch {
	case stop == StopFiltered:
		return nil, &ErrInvalidResponse{Content: raw, Err: errors.New("content filtered by provider")}
	case strings.TrimSpace(raw) == "":
		if stop == StopMaxTokens {
			return nil, &ErrMaxTokensExceeded{}
		}
		return nil, &ErrInvalidResponse{Err: errors.New("empty response")}
	}

	if req.Schema != nil {
		if err := req.Schema.Validate(raw); err != nil {
			if stop == StopMaxTokens {
				return nil, &ErrMaxTokensExceeded{Content: raw}
			}
			return nil, err
		}
	}

	if usage.TotalTokens == 0 {
		usage.TotalTokens = usage.InputTokens + usage.OutputTokens
	}
	return &Response{
		Content:    raw,
		Usage:      usage,
		Model:      model,
		StopReason: stop,
	}, nil
}
