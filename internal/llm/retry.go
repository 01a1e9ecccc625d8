package llm

import (
	"context"
	"errors"
	"math/rand/v2"
	"time"

	"go.uber.org/zap"
)

// RetryProvider retries transient provider failures with capped
// exponential backoff. It runs inside a single fallback tier, so the
// tier's timeout bounds every attempt together.
type RetryProvider struct {
	inner  Provider
	config RetryConfig
	log    *zap.Logger
}

// RetryOption customises a RetryProvider.
type RetryOption func(*RetryProvider)

// RetryLogger reports each retry at debug level.
func RetryLogger(log *zap.Logger) RetryOption {
	return func(r *RetryProvider) {
		if log != nil {
			r.log = log
		}
	}
}

// WithRetry wraps a Provider with retry logic.
func WithRetry(p Provider, cfg RetryConfig, opts ...RetryOption) Provider {
	r := &RetryProvider{inner: p, config: cfg, log: zap.NewNop()}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// retryClass says how an error may be retried.
type retryClass int

const (
	retryNever retryClass = iota
	retryOnce
	retryBackoff
)

// classify sorts errors: cancellation, truncation and 4xx rejections are
// final; malformed output earns one more try; the rest is transient.
func classify(err error) retryClass {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return retryNever
	}
	var maxTok *ErrMaxTokensExceeded
	if errors.As(err, &maxTok) {
		return retryNever
	}
	var inv *ErrInvalidResponse
	if errors.As(err, &inv) {
		return retryOnce
	}
	var unavail *ErrProviderUnavailable
	if errors.As(err, &unavail) && unavail.StatusCode >= 400 && unavail.StatusCode < 500 {
		return retryNever
	}
	return retryBackoff
}

func (r *RetryProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	attempts := max(r.config.MaxAttempts, 1)
	usedOnce := false

	var err error
	for attempt := 0; attempt < attempts; attempt++ {
		var resp *Response
		resp, err = r.inner.Generate(ctx, req)
		if err == nil {
			return resp, nil
		}

		switch classify(err) {
		case retryNever:
			return nil, err
		case retryOnce:
			if usedOnce {
				return nil, err
			}
			usedOnce = true
		}
		if attempt == attempts-1 {
			break
		}

		wait := r.wait(attempt, err)
		r.log.Debug("retrying llm request",
			zap.String("model", r.inner.ModelID()),
			zap.Int("attempt", attempt+1),
			zap.Duration("wait", wait),
			zap.Error(err))

		t := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			t.Stop()
			return nil, ctx.Err()
		case <-t.C:
		}
	}
	return nil, err
}

func (r *RetryProvider) ModelID() string {
	return r.inner.ModelID()
}

// wait returns the pause before the next attempt. A rate limit's
// Retry-After wins; otherwise InitialWait*Multiplier^attempt, capped at
// MaxWait, with up to 20% jitter either way.
func (r *RetryProvider) wait(attempt int, err error) time.Duration {
	var rl *ErrRateLimit
	if errors.As(err, &rl) && rl.RetryAfter > 0 {
		return rl.RetryAfter
	}

	d := float64(r.config.InitialWait)
	for range attempt {
		d *= r.config.Multiplier
		if d >= float64(r.config.MaxWait) {
			break
		}
	}
	if r.config.MaxWait > 0 && d > float64(r.config.MaxWait) {
		d = float64(r.config.MaxWait)
	}
	d *= 0.8 + 0.4*rand.Float64()
	return time.Duration(d)
}
