// Package retry re-runs failed operations with exponential backoff. Event
// handlers are wrapped with it so that transient handler failures do not
// surface as publish errors.
package retry

import (
	"context"
	"errors"
	"math"
	"math/rand"
	"time"

	"catalog/config"
	"catalog/domain/shared"
)

type Config struct {
	Enabled        bool
	MaxAttempts    int
	InitialDelay   time.Duration
	MaxDelay       time.Duration
	BackoffFactor  float64
	JitterEnabled  bool
	RetryPredicate func(error) bool
}

var DefaultConfig = Config{
	Enabled:       true,
	MaxAttempts:   3,
	InitialDelay:  100 * time.Millisecond,
	MaxDelay:      2 * time.Second,
	BackoffFactor: 2.0,
	JitterEnabled: true,
}

func FromAppConfig(cfg config.RetryConfig) Config {
	return Config{
		Enabled:       cfg.Enabled,
		MaxAttempts:   cfg.MaxAttempts,
		InitialDelay:  cfg.InitialDelay,
		MaxDelay:      cfg.MaxDelay,
		BackoffFactor: cfg.BackoffFactor,
		JitterEnabled: cfg.JitterEnabled,
	}
}

// Backoff is the delay before the next try after the given failed attempt (1-indexed).
func Backoff(attempt int, cfg Config) time.Duration {
	if attempt <= 0 {
		return 0
	}
	delay := float64(cfg.InitialDelay) * math.Pow(cfg.BackoffFactor, float64(attempt-1))
	if delay > float64(cfg.MaxDelay) {
		delay = float64(cfg.MaxDelay)
	}
	if cfg.JitterEnabled {
		delay *= 0.8 + rand.Float64()*0.4
	}
	if delay < 0 {
		delay = 0
	}
	return time.Duration(delay)
}

// IsRetryable reports whether err is worth another attempt.
// Cancellation and domain rejections (bad input, missing entity) are permanent.
func IsRetryable(err error, cfg Config) bool {
	if err == nil {
		return false
	}
	if cfg.RetryPredicate != nil {
		return cfg.RetryPredicate(err)
	}
	switch {
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return false
	case errors.Is(err, shared.ErrInvalidInput),
		errors.Is(err, shared.ErrInvalidIdentifier),
		errors.Is(err, shared.ErrNotFound):
		return false
	}
	return true
}

// Do calls fn until it succeeds, returns a permanent error, runs out of
// attempts or ctx is done. The last error from fn is returned.
func Do(ctx context.Context, cfg Config, fn func(ctx context.Context) error) error {
	if !cfg.Enabled || cfg.MaxAttempts <= 1 {
		return fn(ctx)
	}

	var lastErr error
	for attempt := 1; attempt <= cfg.MaxAttempts; attempt++ {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		err := fn(ctx)
		if err == nil {
			return nil
		}

		lastErr = err
		if !IsRetryable(err, cfg) || attempt == cfg.MaxAttempts {
			break
		}

		if delay := Backoff(attempt, cfg); delay > 0 {
			timer := time.NewTimer(delay)
			select {
			case <-timer.C:
			case <-ctx.Done():
				timer.Stop()
				return ctx.Err()
			}
		}
	}
	return lastErr
}

// Handler retries the wrapped event handler according to cfg.
type Handler struct {
	inner shared.EventHandler
	cfg   Config
}

func NewHandler(inner shared.EventHandler, cfg Config) *Handler {
	return &Handler{inner: inner, cfg: cfg}
}

func (h *Handler) Handle(event shared.DomainEvent) error {
	return Do(context.Background(), h.cfg, func(context.Context) error {
		return h.inner.Handle(event)
	})
}

// Name keeps the wrapped handler's name so Unsubscribe still matches it.
func (h *Handler) Name() string { return h.inner.Name() }

var _ shared.EventHandler = (*Handler)(nil)
