package category

import "time"

// CategoryCreatedEvent Category created event
type CategoryCreatedEvent struct {
	categoryID string
	name       string
	occurredOn time.Time
}

func NewCategoryCreatedEvent(categoryID, name string) *CategoryCreatedEvent {
	return &CategoryCreatedEvent{
		categoryID: categoryID,
		name:       name,
		occurredOn: time.Now(),
	}
}

func (e *CategoryCreatedEvent) EventName() string      { return "category.created" }
func (e *CategoryCreatedEvent) OccurredOn() time.Time  { return e.occurredOn }
func (e *CategoryCreatedEvent) GetAggregateID() string { return e.categoryID }
func (e *CategoryCreatedEvent) Name() string           { return e.name }

// CategoryActivatedEvent Category activated event
type CategoryActivatedEvent struct {
	categoryID string
	occurredOn time.Time
}

func NewCategoryActivatedEvent(categoryID string) *CategoryActivatedEvent {
	return &CategoryActivatedEvent{
		categoryID: categoryID,
		occurredOn: time.Now(),
	}
}

func (e *CategoryActivatedEvent) EventName() string      { return "category.activated" }
func (e *CategoryActivatedEvent) OccurredOn() time.Time  { return e.occurredOn }
func (e *CategoryActivatedEvent) GetAggregateID() string { return e.categoryID }

// CategoryDeactivatedEvent Category deactivated event
type CategoryDeactivatedEvent struct {
	categoryID string
	occurredOn time.Time
}

func NewCategoryDeactivatedEvent(categoryID string) *CategoryDeactivatedEvent {
	return &CategoryDeactivatedEvent{
		categoryID: categoryID,
		occurredOn: time.Now(),
	}
}

func (e *CategoryDeactivatedEvent) EventName() string      { return "category.deactivated" }
func (e *CategoryDeactivatedEvent) OccurredOn() time.Time  { return e.occurredOn }
func (e *CategoryDeactivatedEvent) GetAggregateID() string { return e.categoryID }
