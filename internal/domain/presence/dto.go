package presence

import "github.com/staffpoint/presence-backend-go/internal/pkg/validator"

type CreateEventRequest struct {
	// EmployeeID may only differ from the caller's own id for admins.
	EmployeeID *string `json:"employee_id,omitempty"`
	EventType  string  `json:"event_type"`
	StartDate  string  `json:"start_date"`
	EndDate    string  `json:"end_date"`
	Comment    *string `json:"comment,omitempty"`
}

func (r *CreateEventRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EventType) {
		errs = append(errs, validator.ValidationError{
			Field:   "event_type",
			Message: "event_type is required",
		})
	}

	if validator.IsEmpty(r.StartDate) {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date is required",
		})
	}

	if validator.IsEmpty(r.EndDate) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// CalendarRangeRequest asks for the organization-wide calendar view. Both
// dates must be given together; with neither set the whole calendar is
// returned.
type CalendarRangeRequest struct {
	StartDate string
	EndDate   string
}

func (r *CalendarRangeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.StartDate) != validator.IsEmpty(r.EndDate) {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date and end_date must be provided together",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// ListEventsRequest carries the optional filters of the administrative event
// list. Parsed from query parameters by the HTTP layer.
type ListEventsRequest struct {
	EmployeeID string
	EventType  string
	Status     string
}

type UpdateEventStatusRequest struct {
	Status string `json:"status"`
}

func (r *UpdateEventStatusRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Status) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}
