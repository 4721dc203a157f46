// Package provider holds the provider-neutral pieces shared by the food-data
// clients: the retry policy and the three-way lookup result.
package provider

import (
	"context"
	"log/slog"
	"time"

	"github.com/heartmarshall/nutritrack-backend/internal/domain"
)

const (
	DefaultMaxAttempts = 3
	DefaultBaseDelay   = time.Second
)

// Retrier runs a provider call with bounded linear backoff. Only transient
// failures (timeout, 5xx, no response) are retried; the wait before attempt
// n+1 is BaseDelay*n.
type Retrier struct {
	maxAttempts int
	baseDelay   time.Duration
	log         *slog.Logger

	// wait is replaced in tests.
	wait func(ctx context.Context, d time.Duration) error
}

// NewRetrier creates a Retrier. Non-positive arguments fall back to the defaults.
func NewRetrier(maxAttempts int, baseDelay time.Duration, logger *slog.Logger) *Retrier {
	if maxAttempts <= 0 {
		maxAttempts = DefaultMaxAttempts
	}
	if baseDelay <= 0 {
		baseDelay = DefaultBaseDelay
	}
	return &Retrier{
		maxAttempts: maxAttempts,
		baseDelay:   baseDelay,
		log:         logger.With("component", "retrier"),
		wait:        sleepCtx,
	}
}

// Do calls fn until it succeeds, fails with a non-transient error, or the
// attempts run out. The last error is returned unchanged.
func (r *Retrier) Do(ctx context.Context, op string, fn func(ctx context.Context) error) error {
	var err error
	for attempt := 1; ; attempt++ {
		err = fn(ctx)
		if err == nil {
			return nil
		}
		if !domain.IsTransient(err) || attempt >= r.maxAttempts {
			return err
		}
		if ctx.Err() != nil {
			return err
		}

		delay := r.baseDelay * time.Duration(attempt)
		r.log.WarnContext(ctx, "provider retry",
			slog.String("op", op),
			slog.Int("attempt", attempt),
			slog.Int("max_attempts", r.maxAttempts),
			slog.Duration("delay", delay),
			slog.String("error", err.Error()),
		)

		if werr := r.wait(ctx, delay); werr != nil {
			return werr
		}
	}
}

// Retry is Do for calls that return a value.
func Retry[T any](ctx context.Context, r *Retrier, op string, fn func(ctx context.Context) (T, error)) (T, error) {
	var out T
	err := r.Do(ctx, op, func(ctx context.Context) error {
		v, err := fn(ctx)
		if err != nil {
			return err
		}
		out = v
		return nil
	})
	return out, err
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
