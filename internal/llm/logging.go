package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/shirley/readingcoach/internal/store"
)

// LoggingProvider records every attempt in the event log and the
// structured log.
type LoggingProvider struct {
	inner     Provider
	name      string
	eventRepo store.EventRepo
	log       *zap.Logger
}

// WithLogging wraps a Provider with event logging. A nil repo disables the
// event log; a nil logger disables structured logging.
func WithLogging(p Provider, name string, repo store.EventRepo, log *zap.Logger) Provider {
	if log == nil {
		log = zap.NewNop()
	}
	return &LoggingProvider{inner: p, name: name, eventRepo: repo, log: log}
}

func (l *LoggingProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()
	resp, err := l.inner.Generate(ctx, req)
	ev := l.event(ctx, req, resp, err, time.Since(start))

	fields := []zap.Field{
		zap.String("provider", ev.Provider),
		zap.String("model", ev.Model),
		zap.String("purpose", ev.Purpose),
		zap.Int64("latency_ms", ev.LatencyMs),
		zap.Int("input_tokens", ev.InputTokens),
		zap.Int("output_tokens", ev.OutputTokens),
	}
	if resp != nil {
		fields = append(fields, zap.String("stop", string(resp.StopReason)))
	}
	if err != nil {
		l.log.Warn("llm request failed", append(fields, zap.Error(err))...)
	} else {
		l.log.Debug("llm request", fields...)
	}

	if l.eventRepo != nil {
		// Recording is best effort; the caller still gets the reply.
		if logErr := l.eventRepo.AppendLLMRequest(ctx, ev); logErr != nil {
			l.log.Warn("failed to record LLM request event", zap.Error(logErr))
		}
	}
	return resp, err
}

func (l *LoggingProvider) ModelID() string {
	return l.inner.ModelID()
}

// event builds the stored record. Rejected output carried by
// ErrInvalidResponse or ErrMaxTokensExceeded is kept as the response body.
func (l *LoggingProvider) event(ctx context.Context, req Request, resp *Response, err error, elapsed time.Duration) store.LLMRequestEventData {
	ev := store.LLMRequestEventData{
		Provider:    l.name,
		Model:       l.inner.ModelID(),
		Purpose:     PurposeFrom(ctx),
		LatencyMs:   elapsed.Milliseconds(),
		Success:     err == nil,
		RequestBody: serializeRequest(req),
	}
	if resp != nil {
		ev.InputTokens = resp.Usage.InputTokens
		ev.OutputTokens = resp.Usage.OutputTokens
		ev.ResponseBody = resp.Content
		if resp.Model != "" {
			ev.Model = resp.Model
		}
	}
	if err != nil {
		ev.ErrorMessage = err.Error()
		var inv *ErrInvalidResponse
		var trunc *ErrMaxTokensExceeded
		switch {
		case errors.As(err, &inv):
			ev.ResponseBody = inv.Content
		case errors.As(err, &trunc):
			ev.ResponseBody = trunc.Content
		}
	}
	return ev
}

// serializeRequest renders a request the way `readingcoach llm view` shows it.
func serializeRequest(req Request) string {
	var b strings.Builder
	if req.System != "" {
		fmt.Fprintf(&b, "[system]\n%s\n\n", req.System)
	}
	for _, m := range req.Messages {
		fmt.Fprintf(&b, "[%s]\n%s\n\n", m.Role, m.Content)
	}
	switch {
	case req.Schema != nil:
		if def, err := json.Marshal(req.Schema.Definition); err == nil {
			fmt.Fprintf(&b, "[schema: %s]\n%s\n", req.Schema.Name, def)
		}
	case req.JSON:
		b.WriteString("[format: json]\n")
	}
	if req.MaxTokens > 0 || req.Temperature > 0 {
		fmt.Fprintf(&b, "[max_tokens: %d, temperature: %.2f]\n", req.MaxTokens, req.Temperature)
	}
	return b.String()
}
