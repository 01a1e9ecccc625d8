package store

import (
	"context"
	"time"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit   int       // max results (0 = unlimited)
	After   int64     // id > After
	Before  int64     // id < Before
	From    time.Time // timestamp >= From
	To      time.Time // timestamp <= To
	Purpose string    // exact purpose match when set
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMEventRecord is a stored LLM request event.
type LLMEventRecord struct {
	ID        int
	Timestamp time.Time
	LLMRequestEventData
}

// LLMPurposeUsage aggregates token usage for one purpose label.
type LLMPurposeUsage struct {
	Purpose      string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// LLMModelUsage aggregates token usage for one model.
type LLMModelUsage struct {
	Model        string
	Calls        int
	InputTokens  int
	OutputTokens int
}

// EventRepo provides append access to LLM request events.
type EventRepo interface {
	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error
}
