package presence

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/staffpoint/presence-backend-go/internal/domain/auth"
)

func strPtr(s string) *string { return &s }

func sampleEvent(eventType EventType) Event {
	return Event{
		ID:           "event-1",
		EmployeeID:   "emp-owner",
		Type:         eventType,
		StartAt:      time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
		EndAt:        time.Date(2026, 3, 12, 23, 59, 59, 0, time.UTC),
		Status:       eventType.InitialStatus(),
		Comment:      strPtr("flu, staying home"),
		EmployeeName: strPtr("Anna Smith"),
	}
}

func TestProjectRedactsPrivateTypesForUnrelatedViewer(t *testing.T) {
	viewer := auth.Viewer{EmployeeID: "emp-other", Role: auth.RoleUser}

	for _, eventType := range []EventType{TypeSickLeave, TypeDayOff} {
		view := Project(sampleEvent(eventType), viewer)

		assert.Equal(t, RedactedType, view.PresenceType)
		require.NotNil(t, view.Comment)
		assert.Equal(t, "Employee is absent", *view.Comment)

		// Everything else stays visible.
		assert.Equal(t, "event-1", view.ID)
		assert.Equal(t, "emp-owner", view.EmployeeID)
		assert.Equal(t, "2026-03-10", view.StartDate)
		assert.Equal(t, "2026-03-12", view.EndDate)
		assert.Equal(t, string(StatusCompleted), view.Status)
		require.NotNil(t, view.EmployeeName)
		assert.Equal(t, "Anna Smith", *view.EmployeeName)
	}
}

func TestProjectKeepsPublicTypesForUnrelatedViewer(t *testing.T) {
	viewer := auth.Viewer{EmployeeID: "emp-other", Role: auth.RoleUser}

	for _, eventType := range []EventType{TypeVacation, TypeBusinessTrip, TypeMeeting} {
		view := Project(sampleEvent(eventType), viewer)

		assert.Equal(t, string(eventType), view.PresenceType)
		require.NotNil(t, view.Comment)
		assert.Equal(t, "flu, staying home", *view.Comment)
	}
}

func TestProjectOwnerSeesFullDetail(t *testing.T) {
	owner := auth.Viewer{EmployeeID: "emp-owner", Role: auth.RoleUser}

	view := Project(sampleEvent(TypeSickLeave), owner)

	assert.Equal(t, string(TypeSickLeave), view.PresenceType)
	require.NotNil(t, view.Comment)
	assert.Equal(t, "flu, staying home", *view.Comment)
}

func TestProjectAdminSeesFullDetail(t *testing.T) {
	admin := auth.Viewer{EmployeeID: "emp-admin", Role: auth.RoleAdmin}

	view := Project(sampleEvent(TypeDayOff), admin)

	assert.Equal(t, string(TypeDayOff), view.PresenceType)
	require.NotNil(t, view.Comment)
	assert.Equal(t, "flu, staying home", *view.Comment)
}

func TestProjectNilCommentStillRedacted(t *testing.T) {
	event := sampleEvent(TypeSickLeave)
	event.Comment = nil
	viewer := auth.Viewer{EmployeeID: "emp-other", Role: auth.RoleUser}

	view := Project(event, viewer)

	assert.Equal(t, RedactedType, view.PresenceType)
	require.NotNil(t, view.Comment)
	assert.Equal(t, "Employee is absent", *view.Comment)
}

func TestProjectAllRedactsPerRecord(t *testing.T) {
	ownEvent := sampleEvent(TypeSickLeave)
	otherEvent := sampleEvent(TypeSickLeave)
	otherEvent.ID = "event-2"
	otherEvent.EmployeeID = "emp-other"

	viewer := auth.Viewer{EmployeeID: "emp-owner", Role: auth.RoleUser}
	views := ProjectAll([]Event{ownEvent, otherEvent}, viewer)

	require.Len(t, views, 2)
	assert.Equal(t, string(TypeSickLeave), views[0].PresenceType)
	assert.Equal(t, RedactedType, views[1].PresenceType)
}

func TestProjectAllEmpty(t *testing.T) {
	views := ProjectAll(nil, auth.Viewer{EmployeeID: "emp-1", Role: auth.RoleUser})
	assert.NotNil(t, views)
	assert.Empty(t, views)
}
