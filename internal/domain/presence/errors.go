package presence

import "errors"

// Presence domain errors
var (
	ErrEventNotFound = errors.New("event not found")

	// Creation errors
	ErrInvalidEventType = errors.New("invalid event type")
	ErrInvalidDate      = errors.New("invalid date, use YYYY-MM-DD")
	ErrInvalidDateRange = errors.New("end date must not be before start date")
	ErrCreateForOthers  = errors.New("you can only create events for yourself")

	// Filter errors
	ErrInvalidStatus = errors.New("invalid status value")

	// Status transition errors
	ErrApprovalNotRequired = errors.New("event type does not require approval")
	ErrInvalidDecision     = errors.New("status must be 'approved' or 'rejected'")

	// Deletion errors
	ErrNotEventOwner   = errors.New("you are not the owner of this event")
	ErrEventNotPlanned = errors.New("only planned events can be deleted by their owner")
)
