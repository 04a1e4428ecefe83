package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"catalog/domain/shared"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubEntity struct {
	id     shared.Uuid
	name   string
	price  int
	events []shared.DomainEvent
}

func newStubEntity(name string, price int) *stubEntity {
	return &stubEntity{id: shared.GenerateUuid(), name: name, price: price}
}

func (e *stubEntity) EntityID() shared.Uuid { return e.id }
func (e *stubEntity) ToJSON() map[string]any {
	return map[string]any{"entity_id": e.id.String(), "name": e.name, "price": e.price}
}

func (e *stubEntity) PullEvents() []shared.DomainEvent {
	events := e.events
	e.events = nil
	return events
}

type stubEvent struct {
	name string
	id   string
}

func (e stubEvent) EventName() string      { return e.name }
func (e stubEvent) OccurredOn() time.Time  { return time.Now() }
func (e stubEvent) GetAggregateID() string { return e.id }

func newStubRepository(opts ...Option) *InMemoryRepository[*stubEntity, shared.Uuid] {
	return NewInMemoryRepository[*stubEntity, shared.Uuid](opts...)
}

func TestInsert(t *testing.T) {
	ctx := context.Background()
	repo := newStubRepository()

	entity := newStubEntity("Test", 5)
	require.NoError(t, repo.Insert(ctx, entity))

	items := repo.Items()
	require.Len(t, items, 1)
	assert.Equal(t, entity.ToJSON(), items[0].ToJSON())
}

func TestInsertDoesNotCheckUniqueness(t *testing.T) {
	ctx := context.Background()
	repo := newStubRepository()

	entity := newStubEntity("Test", 5)
	require.NoError(t, repo.Insert(ctx, entity))
	require.NoError(t, repo.Insert(ctx, entity))
	assert.Len(t, repo.Items(), 2)
}

func TestBulkInsertKeepsOrder(t *testing.T) {
	ctx := context.Background()
	repo := newStubRepository()

	entities := []*stubEntity{newStubEntity("a", 1), newStubEntity("b", 2), newStubEntity("c", 3)}
	require.NoError(t, repo.BulkInsert(ctx, entities))

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, entities, all)
}

func TestFindAllReturnsSnapshot(t *testing.T) {
	ctx := context.Background()
	repo := newStubRepository()
	require.NoError(t, repo.Insert(ctx, newStubEntity("a", 1)))

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	all[0] = newStubEntity("replaced", 0)

	assert.Equal(t, "a", repo.Items()[0].name)
}

func TestFindByID(t *testing.T) {
	ctx := context.Background()
	repo := newStubRepository()
	entity := newStubEntity("a", 1)
	require.NoError(t, repo.Insert(ctx, entity))

	found, err := repo.FindByID(ctx, shared.MustNewUuid(entity.id.String()))
	require.NoError(t, err)
	assert.Same(t, entity, found)

	missing, err := repo.FindByID(ctx, shared.GenerateUuid())
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestUpdateMissingEntity(t *testing.T) {
	ctx := context.Background()
	repo := newStubRepository()
	existing := newStubEntity("a", 1)
	require.NoError(t, repo.Insert(ctx, existing))

	missing := newStubEntity("b", 2)
	err := repo.Update(ctx, missing)
	require.Error(t, err)

	var nf *shared.NotFoundError
	require.True(t, errors.As(err, &nf))
	assert.True(t, errors.Is(err, shared.ErrNotFound))
	assert.Equal(t, "stubEntity Not Found using ID "+missing.id.String(), err.Error())
	assert.Equal(t, []*stubEntity{existing}, repo.Items())
}

func TestUpdateReplacesInPlace(t *testing.T) {
	ctx := context.Background()
	repo := newStubRepository()

	first := newStubEntity("a", 1)
	second := newStubEntity("b", 2)
	require.NoError(t, repo.BulkInsert(ctx, []*stubEntity{first, second}))

	updated := &stubEntity{id: first.id, name: "updated", price: 10}
	require.NoError(t, repo.Update(ctx, updated))

	items := repo.Items()
	require.Len(t, items, 2)
	assert.Equal(t, updated.ToJSON(), items[0].ToJSON())
	assert.Same(t, second, items[1])
}

func TestDeleteMissingEntity(t *testing.T) {
	ctx := context.Background()
	repo := newStubRepository()
	require.NoError(t, repo.Insert(ctx, newStubEntity("a", 1)))

	id := shared.MustNewUuid("9366b7dc-2d71-4799-b91c-c64adb205104")
	err := repo.Delete(ctx, id)
	require.Error(t, err)
	assert.Equal(t, "stubEntity Not Found using ID 9366b7dc-2d71-4799-b91c-c64adb205104", err.Error())
	assert.Len(t, repo.Items(), 1)
}

func TestDeleteKeepsRelativeOrder(t *testing.T) {
	ctx := context.Background()
	repo := newStubRepository()

	a, b, c := newStubEntity("a", 1), newStubEntity("b", 2), newStubEntity("c", 3)
	require.NoError(t, repo.BulkInsert(ctx, []*stubEntity{a, b, c}))

	require.NoError(t, repo.Delete(ctx, b.id))
	assert.Equal(t, []*stubEntity{a, c}, repo.Items())

	require.NoError(t, repo.Delete(ctx, a.id))
	require.NoError(t, repo.Delete(ctx, c.id))
	assert.Empty(t, repo.Items())
}

func TestFindBySpecification(t *testing.T) {
	ctx := context.Background()
	repo := newStubRepository()

	cheap, pricey := newStubEntity("cheap", 1), newStubEntity("pricey", 100)
	require.NoError(t, repo.BulkInsert(ctx, []*stubEntity{cheap, pricey}))

	spec := shared.SpecificationFunc[*stubEntity](func(_ context.Context, e *stubEntity) bool { return e.price > 10 })
	found, err := repo.FindBySpecification(ctx, spec)
	require.NoError(t, err)
	assert.Equal(t, []*stubEntity{pricey}, found)

	all, err := repo.FindBySpecification(ctx, nil)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestEntityKind(t *testing.T) {
	assert.Equal(t, "stubEntity", newStubRepository().EntityKind())
	assert.Equal(t, "Category", NewCategoryRepository().EntityKind())
}

func TestEventsArePublishedAfterSave(t *testing.T) {
	ctx := context.Background()
	bus := shared.NewEventBus()

	var received []string
	require.NoError(t, bus.Subscribe("stub.saved", shared.NewFuncHandler("recorder", func(e shared.DomainEvent) error {
		received = append(received, e.GetAggregateID())
		return nil
	})))
	boom := errors.New("boom")
	require.NoError(t, bus.Subscribe("stub.failed", shared.NewFuncHandler("failing", func(shared.DomainEvent) error {
		return boom
	})))

	var publishErrs []error
	repo := newStubRepository(WithEventPublisher(bus, func(_ shared.DomainEvent, err error) {
		publishErrs = append(publishErrs, err)
	}))

	entity := newStubEntity("a", 1)
	entity.events = []shared.DomainEvent{stubEvent{name: "stub.saved", id: entity.id.String()}}
	require.NoError(t, repo.Insert(ctx, entity))
	assert.Equal(t, []string{entity.id.String()}, received)
	assert.Empty(t, entity.events, "events are pulled on save")

	entity.events = []shared.DomainEvent{stubEvent{name: "stub.failed", id: entity.id.String()}}
	require.NoError(t, repo.Update(ctx, entity), "publish failures do not fail the save")
	require.Len(t, publishErrs, 1)
	assert.ErrorIs(t, publishErrs[0], boom)
}
