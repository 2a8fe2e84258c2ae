package presence

import (
	"time"

	"github.com/staffpoint/presence-backend-go/internal/domain/auth"
)

// RedactedType replaces a private event type for viewers who may not see it.
const RedactedType = "absence"

// redactedComment replaces the real comment on redacted events.
const redactedComment = "Employee is absent"

// EventView is the externally safe representation of an event, shaped for one
// specific viewer.
type EventView struct {
	ID           string  `json:"id"`
	EmployeeID   string  `json:"employee_id"`
	EmployeeName *string `json:"employee_name"`
	PresenceType string  `json:"presence_type"`
	StartDate    string  `json:"start_date"`
	EndDate      string  `json:"end_date"`
	Status       string  `json:"status"`
	Comment      *string `json:"comment"`
}

// Project renders an event for a viewer, hiding the real type and comment of
// private events from everyone except the owner and admins. It is a pure
// function of (event, viewer); projecting its own output again changes nothing.
func Project(event Event, viewer auth.Viewer) EventView {
	view := EventView{
		ID:           event.ID,
		EmployeeID:   event.EmployeeID,
		EmployeeName: event.EmployeeName,
		PresenceType: string(event.Type),
		StartDate:    event.StartAt.Format(time.DateOnly),
		EndDate:      event.EndAt.Format(time.DateOnly),
		Status:       string(event.Status),
		Comment:      event.Comment,
	}

	if event.Type.Private() && !viewer.IsAdmin() && !viewer.Owns(event.EmployeeID) {
		view.PresenceType = RedactedType
		generic := redactedComment
		view.Comment = &generic
	}

	return view
}

// ProjectAll projects every event in the slice independently. Redaction
// depends on the owner of each record, so there is no batch shortcut.
func ProjectAll(events []Event, viewer auth.Viewer) []EventView {
	views := make([]EventView, 0, len(events))
	for _, event := range events {
		views = append(views, Project(event, viewer))
	}
	return views
}
