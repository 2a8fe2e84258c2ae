package presence

import (
	"context"
	"time"
)

// EventFilter narrows List results. Nil fields match everything.
type EventFilter struct {
	EmployeeID *string
	Type       *EventType
	Status     *EventStatus
}

// EventRepository defines data access for presence events. Implementations
// return ErrEventNotFound for missing ids and join the owning employee's
// display name into Event.EmployeeName where available.
type EventRepository interface {
	// Create persists a new event with a freshly allocated identifier.
	Create(ctx context.Context, event Event) (Event, error)

	// GetByID retrieves one event by id.
	GetByID(ctx context.Context, id string) (Event, error)

	// List retrieves events matching the filter, ordered by start descending.
	List(ctx context.Context, filter EventFilter) ([]Event, error)

	// ListOverlapping retrieves events in any of the given statuses whose
	// [start, end] interval intersects [rangeStart, rangeEnd], ordered by
	// start ascending.
	ListOverlapping(ctx context.Context, rangeStart, rangeEnd time.Time, statuses []EventStatus) ([]Event, error)

	// UpdateStatus overwrites the status of an event. Last write wins; there
	// is no version check.
	UpdateStatus(ctx context.Context, id string, status EventStatus) (Event, error)

	// Delete removes an event.
	Delete(ctx context.Context, id string) error
}
