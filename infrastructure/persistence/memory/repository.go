package memory

import (
	"context"
	"reflect"
	"slices"
	"sync"

	"catalog/domain/shared"
)

// Option configures an in-memory repository.
type Option func(*options)

type options struct {
	publisher      shared.DomainEventPublisher
	onPublishError func(shared.DomainEvent, error)
}

// WithEventPublisher publishes the events recorded by an entity after it has
// been inserted or updated. onErr receives publish failures; it may be nil.
func WithEventPublisher(publisher shared.DomainEventPublisher, onErr func(shared.DomainEvent, error)) Option {
	return func(o *options) {
		o.publisher = publisher
		o.onPublishError = onErr
	}
}

// InMemoryRepository keeps entities of one kind in insertion order.
// Insert does not check identifier uniqueness. Update and Delete require the
// entity to exist.
type InMemoryRepository[E shared.Entity[ID], ID shared.Identifier] struct {
	mu    sync.RWMutex
	items []E
	opts  options
}

func NewInMemoryRepository[E shared.Entity[ID], ID shared.Identifier](opts ...Option) *InMemoryRepository[E, ID] {
	r := &InMemoryRepository[E, ID]{items: make([]E, 0)}
	for _, opt := range opts {
		opt(&r.opts)
	}
	return r
}

func (r *InMemoryRepository[E, ID]) Insert(ctx context.Context, entity E) error {
	r.mu.Lock()
	r.items = append(r.items, entity)
	r.mu.Unlock()

	r.publishEvents(entity)
	return nil
}

func (r *InMemoryRepository[E, ID]) BulkInsert(ctx context.Context, entities []E) error {
	r.mu.Lock()
	r.items = append(r.items, entities...)
	r.mu.Unlock()

	for _, entity := range entities {
		r.publishEvents(entity)
	}
	return nil
}

// FindAll returns a snapshot of the collection in its current order.
func (r *InMemoryRepository[E, ID]) FindAll(ctx context.Context) ([]E, error) {
	return r.Items(), nil
}

func (r *InMemoryRepository[E, ID]) FindByID(ctx context.Context, id ID) (E, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if i := r.indexOf(id); i >= 0 {
		return r.items[i], nil
	}
	var zero E
	return zero, nil
}

// Update replaces the stored entity with the same identifier, keeping its position.
func (r *InMemoryRepository[E, ID]) Update(ctx context.Context, entity E) error {
	id := entity.EntityID()

	r.mu.Lock()
	i := r.indexOf(id)
	if i < 0 {
		r.mu.Unlock()
		return shared.NewNotFoundError(r.EntityKind(), id.String())
	}
	r.items[i] = entity
	r.mu.Unlock()

	r.publishEvents(entity)
	return nil
}

// Delete removes the entity and keeps the relative order of the rest.
func (r *InMemoryRepository[E, ID]) Delete(ctx context.Context, id ID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return shared.NewNotFoundError(r.EntityKind(), id.String())
	}
	r.items = slices.Delete(r.items, i, i+1)
	return nil
}

// FindBySpecification returns, in collection order, the entities satisfying spec.
func (r *InMemoryRepository[E, ID]) FindBySpecification(ctx context.Context, spec shared.Specification[E]) ([]E, error) {
	items := r.Items()
	if spec == nil {
		return items, nil
	}

	result := make([]E, 0, len(items))
	for _, item := range items {
		if spec.IsSatisfiedBy(ctx, item) {
			result = append(result, item)
		}
	}
	return result, nil
}

// EntityKind is the name of the concrete entity type, e.g. "Category" for *Category.
func (r *InMemoryRepository[E, ID]) EntityKind() string {
	t := reflect.TypeFor[E]()
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Name()
}

// Items returns a copy of the stored collection.
func (r *InMemoryRepository[E, ID]) Items() []E {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]E, len(r.items))
	copy(result, r.items)
	return result
}

// indexOf must be called with r.mu held.
func (r *InMemoryRepository[E, ID]) indexOf(id ID) int {
	return slices.IndexFunc(r.items, func(item E) bool {
		return item.EntityID().Equals(id)
	})
}

func (r *InMemoryRepository[E, ID]) publishEvents(entity E) {
	if r.opts.publisher == nil {
		return
	}
	recorder, ok := any(entity).(shared.EventRecorder)
	if !ok {
		return
	}
	for _, event := range recorder.PullEvents() {
		if err := r.opts.publisher.Publish(event); err != nil && r.opts.onPublishError != nil {
			r.opts.onPublishError(event, err)
		}
	}
}

var _ shared.Repository[shared.Entity[shared.Uuid], shared.Uuid] = (*InMemoryRepository[shared.Entity[shared.Uuid], shared.Uuid])(nil)
