package retry

import (
	"context"
	"errors"
	"testing"
	"time"

	"catalog/domain/shared"
)

var fastConfig = Config{
	Enabled:       true,
	MaxAttempts:   3,
	InitialDelay:  time.Millisecond,
	MaxDelay:      5 * time.Millisecond,
	BackoffFactor: 2.0,
}

func TestDoRetriesTransientErrors(t *testing.T) {
	calls := 0
	err := Do(context.Background(), fastConfig, func(context.Context) error {
		calls++
		if calls < 3 {
			return errors.New("temporary")
		}
		return nil
	})
	if err != nil {
		t.Fatalf("Do() error = %v", err)
	}
	if calls != 3 {
		t.Errorf("calls = %d, want 3", calls)
	}
}

func TestDoReturnsLastError(t *testing.T) {
	calls := 0
	boom := errors.New("boom")
	err := Do(context.Background(), fastConfig, func(context.Context) error {
		calls++
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("Do() error = %v, want boom", err)
	}
	if calls != fastConfig.MaxAttempts {
		t.Errorf("calls = %d, want %d", calls, fastConfig.MaxAttempts)
	}
}

func TestDoStopsOnPermanentErrors(t *testing.T) {
	permanent := []error{
		shared.NewNotFoundError("Category", "id"),
		shared.NewInvalidUuidError("x"),
		shared.ErrInvalidInput,
		context.Canceled,
	}
	for _, perm := range permanent {
		calls := 0
		err := Do(context.Background(), fastConfig, func(context.Context) error {
			calls++
			return perm
		})
		if !errors.Is(err, perm) {
			t.Errorf("Do() error = %v, want %v", err, perm)
		}
		if calls != 1 {
			t.Errorf("%v: calls = %d, want 1", perm, calls)
		}
	}
}

func TestDoDisabled(t *testing.T) {
	cfg := fastConfig
	cfg.Enabled = false

	calls := 0
	_ = Do(context.Background(), cfg, func(context.Context) error {
		calls++
		return errors.New("temporary")
	})
	if calls != 1 {
		t.Errorf("calls = %d, want 1", calls)
	}
}

func TestDoHonoursCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cfg := fastConfig
	cfg.InitialDelay = time.Hour
	cfg.MaxDelay = time.Hour

	calls := 0
	err := Do(ctx, cfg, func(context.Context) error {
		calls++
		cancel()
		return errors.New("temporary")
	})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("Do() error = %v, want context.Canceled", err)
	}
	if calls != 1 {
		t.Errorf("calls = %d, want 1", calls)
	}
}

func TestBackoff(t *testing.T) {
	cfg := Config{InitialDelay: 100 * time.Millisecond, MaxDelay: 300 * time.Millisecond, BackoffFactor: 2}

	tests := []struct {
		attempt int
		want    time.Duration
	}{
		{0, 0},
		{1, 100 * time.Millisecond},
		{2, 200 * time.Millisecond},
		{3, 300 * time.Millisecond},
		{10, 300 * time.Millisecond},
	}
	for _, tt := range tests {
		if got := Backoff(tt.attempt, cfg); got != tt.want {
			t.Errorf("Backoff(%d) = %v, want %v", tt.attempt, got, tt.want)
		}
	}

	cfg.JitterEnabled = true
	for i := 0; i < 20; i++ {
		got := Backoff(1, cfg)
		if got < 80*time.Millisecond || got > 120*time.Millisecond {
			t.Fatalf("jittered Backoff(1) = %v, want within 20%% of 100ms", got)
		}
	}
}

func TestHandlerRetriesInner(t *testing.T) {
	calls := 0
	inner := shared.NewFuncHandler("audit", func(shared.DomainEvent) error {
		calls++
		if calls == 1 {
			return errors.New("temporary")
		}
		return nil
	})
	h := NewHandler(inner, fastConfig)

	if h.Name() != "audit" {
		t.Errorf("Name() = %q, want audit", h.Name())
	}

	bus := shared.NewEventBus()
	if err := bus.Subscribe("category.created", h); err != nil {
		t.Fatal(err)
	}
	event := testEvent{}
	if err := bus.Publish(event); err != nil {
		t.Fatalf("Publish() error = %v", err)
	}
	if calls != 2 {
		t.Errorf("calls = %d, want 2", calls)
	}
}

type testEvent struct{}

func (testEvent) EventName() string      { return "category.created" }
func (testEvent) OccurredOn() time.Time  { return time.Unix(1700000000, 0) }
func (testEvent) GetAggregateID() string { return "a95e0677-b8db-4870-b1be-be7e000bc581" }
