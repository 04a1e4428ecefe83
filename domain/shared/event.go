package shared

import (
	"errors"
	"fmt"
	"sync"
	"time"
)

// maxPublishHistory 发布历史最多保留条数
const maxPublishHistory = 1000

type DomainEvent interface {
	EventName() string
	OccurredOn() time.Time
	GetAggregateID() string
}
type DomainEventPublisher interface {
	Publish(event DomainEvent) error
	Subscribe(eventName string, handler EventHandler) error
	Unsubscribe(eventName string, handler EventHandler) error
}
type EventHandler interface {
	Handle(event DomainEvent) error
	Name() string
}
type EventPublishResult struct {
	EventName   string    `json:"event_name"`
	AggregateID string    `json:"aggregate_id"`
	Success     bool      `json:"success"`
	Message     string    `json:"message,omitempty"`
	PublishedAt time.Time `json:"published_at"`
}

func ValidateEvent(event DomainEvent) error {
	if isNil(event) {
		return errors.New("event cannot be nil")
	}

	if event.EventName() == "" {
		return errors.New("event name cannot be empty")
	}

	if event.GetAggregateID() == "" {
		return errors.New("aggregate ID cannot be empty")
	}

	if event.OccurredOn().IsZero() {
		return errors.New("occurred on time cannot be zero")
	}

	return nil
}

// EventBus 进程内同步事件总线
type EventBus struct {
	handlers  map[string][]EventHandler
	mu        sync.RWMutex
	history   []EventPublishResult
	muHistory sync.Mutex
}

func NewEventBus() *EventBus {
	return &EventBus{
		handlers: make(map[string][]EventHandler),
		history:  make([]EventPublishResult, 0),
	}
}

func (bus *EventBus) Publish(event DomainEvent) error {
	if err := ValidateEvent(event); err != nil {
		return err
	}

	bus.mu.RLock()
	handlers := append([]EventHandler(nil), bus.handlers[event.EventName()]...)
	bus.mu.RUnlock()

	result := EventPublishResult{
		EventName:   event.EventName(),
		AggregateID: event.GetAggregateID(),
		Success:     true,
		PublishedAt: time.Now(),
	}

	if len(handlers) == 0 {
		result.Message = "no handlers registered for this event"
		bus.record(result)
		return nil
	}

	var errs []error
	for _, handler := range handlers {
		if err := handler.Handle(event); err != nil {
			errs = append(errs, fmt.Errorf("handler %s: %w", handler.Name(), err))
		}
	}
	if len(errs) > 0 {
		result.Success = false
		result.Message = fmt.Sprintf("%d handlers failed", len(errs))
		bus.record(result)
		return fmt.Errorf("event %s: %w", event.EventName(), errors.Join(errs...))
	}

	bus.record(result)
	return nil
}

func (bus *EventBus) record(result EventPublishResult) {
	bus.muHistory.Lock()
	defer bus.muHistory.Unlock()

	bus.history = append(bus.history, result)
	if len(bus.history) > maxPublishHistory {
		bus.history = bus.history[len(bus.history)-maxPublishHistory:]
	}
}

func (bus *EventBus) Subscribe(eventName string, handler EventHandler) error {
	if eventName == "" {
		return errors.New("event name cannot be empty")
	}

	if isNil(handler) {
		return errors.New("handler cannot be nil")
	}

	bus.mu.Lock()
	defer bus.mu.Unlock()

	for _, h := range bus.handlers[eventName] {
		if h.Name() == handler.Name() {
			return fmt.Errorf("handler %s already subscribed to %s", handler.Name(), eventName)
		}
	}

	bus.handlers[eventName] = append(bus.handlers[eventName], handler)
	return nil
}

func (bus *EventBus) Unsubscribe(eventName string, handler EventHandler) error {
	bus.mu.Lock()
	defer bus.mu.Unlock()

	handlers, exists := bus.handlers[eventName]
	if !exists {
		return nil
	}

	for i, h := range handlers {
		if h.Name() == handler.Name() {
			bus.handlers[eventName] = append(handlers[:i:i], handlers[i+1:]...)
			return nil
		}
	}

	return nil
}

func (bus *EventBus) GetPublishHistory() []EventPublishResult {
	bus.muHistory.Lock()
	defer bus.muHistory.Unlock()

	history := make([]EventPublishResult, len(bus.history))
	copy(history, bus.history)
	return history
}

type FuncHandler struct {
	name string
	fn   func(DomainEvent) error
}

func NewFuncHandler(name string, fn func(DomainEvent) error) *FuncHandler {
	if name == "" {
		name = fmt.Sprintf("func-handler-%d", time.Now().UnixNano())
	}
	return &FuncHandler{
		name: name,
		fn:   fn,
	}
}
func (h *FuncHandler) Handle(event DomainEvent) error {
	return h.fn(event)
}
func (h *FuncHandler) Name() string {
	return h.name
}

var _ DomainEventPublisher = (*EventBus)(nil)
