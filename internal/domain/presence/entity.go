package presence

import "time"

// EventType is the closed set of presence event kinds. Keeping it a named type
// (instead of free text validated at the edges) makes the approval state
// machine checkable where events are handled.
type EventType string

const (
	TypeVacation     EventType = "vacation"
	TypeBusinessTrip EventType = "business_trip"
	TypeSickLeave    EventType = "sick_leave"
	TypeDayOff       EventType = "day_off"
	TypeMeeting      EventType = "meeting"
)

// AllowedTypes returns every event type a client may create.
func AllowedTypes() []EventType {
	return []EventType{TypeVacation, TypeBusinessTrip, TypeSickLeave, TypeDayOff, TypeMeeting}
}

// AllowedTypeNames returns the allowed types as plain strings, for error payloads.
func AllowedTypeNames() []string {
	types := AllowedTypes()
	names := make([]string, len(types))
	for i, t := range types {
		names[i] = string(t)
	}
	return names
}

func (t EventType) Valid() bool {
	switch t {
	case TypeVacation, TypeBusinessTrip, TypeSickLeave, TypeDayOff, TypeMeeting:
		return true
	}
	return false
}

// RequiresApproval reports whether the type starts as a planned request that
// needs an admin decision. The remaining types are self-certifying facts.
func (t EventType) RequiresApproval() bool {
	return t == TypeVacation || t == TypeBusinessTrip
}

// Private reports whether the type's detail is hidden from viewers who are
// neither the owner nor an admin.
func (t EventType) Private() bool {
	return t == TypeSickLeave || t == TypeDayOff
}

// InitialStatus derives the status a freshly created event gets.
func (t EventType) InitialStatus() EventStatus {
	if t.RequiresApproval() {
		return StatusPlanned
	}
	return StatusCompleted
}

// EventStatus is the lifecycle state of a presence event.
type EventStatus string

const (
	StatusPlanned   EventStatus = "planned"
	StatusApproved  EventStatus = "approved"
	StatusRejected  EventStatus = "rejected"
	StatusCompleted EventStatus = "completed"
)

func (s EventStatus) Valid() bool {
	switch s {
	case StatusPlanned, StatusApproved, StatusRejected, StatusCompleted:
		return true
	}
	return false
}

// IsDecision reports whether the status is a valid admin decision on a
// planned request.
func (s EventStatus) IsDecision() bool {
	return s == StatusApproved || s == StatusRejected
}

// Event is one claimed or factual period of employee absence or special work
// mode. EndAt is always the last instant of its calendar day.
type Event struct {
	ID         string
	EmployeeID string
	Type       EventType
	StartAt    time.Time
	EndAt      time.Time
	Status     EventStatus
	Comment    *string
	CreatedAt  time.Time
	UpdatedAt  time.Time

	// DTO, joined from the owning employee
	EmployeeName *string
}
