package presence

import (
	"context"
	"fmt"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/staffpoint/presence-backend-go/internal/domain/auth"
	"github.com/staffpoint/presence-backend-go/internal/domain/employee"
	"github.com/staffpoint/presence-backend-go/internal/domain/presence"
)

// fakeEventRepo keeps events in memory and mimics the ordering and filtering
// contract of the PostgreSQL implementation.
type fakeEventRepo struct {
	events map[string]presence.Event
	nextID int
}

func newFakeEventRepo() *fakeEventRepo {
	return &fakeEventRepo{events: make(map[string]presence.Event)}
}

func (f *fakeEventRepo) Create(ctx context.Context, event presence.Event) (presence.Event, error) {
	f.nextID++
	event.ID = fmt.Sprintf("event-%d", f.nextID)
	event.CreatedAt = time.Now()
	event.UpdatedAt = event.CreatedAt
	f.events[event.ID] = event
	return event, nil
}

func (f *fakeEventRepo) GetByID(ctx context.Context, id string) (presence.Event, error) {
	event, ok := f.events[id]
	if !ok {
		return presence.Event{}, presence.ErrEventNotFound
	}
	return event, nil
}

func (f *fakeEventRepo) List(ctx context.Context, filter presence.EventFilter) ([]presence.Event, error) {
	var result []presence.Event
	for _, event := range f.events {
		if filter.EmployeeID != nil && event.EmployeeID != *filter.EmployeeID {
			continue
		}
		if filter.Type != nil && event.Type != *filter.Type {
			continue
		}
		if filter.Status != nil && event.Status != *filter.Status {
			continue
		}
		result = append(result, event)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].StartAt.After(result[j].StartAt) })
	return result, nil
}

func (f *fakeEventRepo) ListOverlapping(ctx context.Context, rangeStart, rangeEnd time.Time, statuses []presence.EventStatus) ([]presence.Event, error) {
	wanted := make(map[presence.EventStatus]bool, len(statuses))
	for _, s := range statuses {
		wanted[s] = true
	}

	var result []presence.Event
	for _, event := range f.events {
		if !wanted[event.Status] {
			continue
		}
		startsIn := !event.StartAt.Before(rangeStart) && !event.StartAt.After(rangeEnd)
		endsIn := !event.EndAt.Before(rangeStart) && !event.EndAt.After(rangeEnd)
		contains := !event.StartAt.After(rangeStart) && !event.EndAt.Before(rangeEnd)
		if startsIn || endsIn || contains {
			result = append(result, event)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].StartAt.Before(result[j].StartAt) })
	return result, nil
}

func (f *fakeEventRepo) UpdateStatus(ctx context.Context, id string, status presence.EventStatus) (presence.Event, error) {
	event, ok := f.events[id]
	if !ok {
		return presence.Event{}, presence.ErrEventNotFound
	}
	event.Status = status
	event.UpdatedAt = time.Now()
	f.events[id] = event
	return event, nil
}

func (f *fakeEventRepo) Delete(ctx context.Context, id string) error {
	if _, ok := f.events[id]; !ok {
		return presence.ErrEventNotFound
	}
	delete(f.events, id)
	return nil
}

// fakeEmployeeRepo serves the Exists check; the remaining methods are not
// exercised by the presence service.
type fakeEmployeeRepo struct {
	ids map[string]bool
}

func newFakeEmployeeRepo(ids ...string) *fakeEmployeeRepo {
	known := make(map[string]bool, len(ids))
	for _, id := range ids {
		known[id] = true
	}
	return &fakeEmployeeRepo{ids: known}
}

func (f *fakeEmployeeRepo) Exists(ctx context.Context, id string) (bool, error) {
	return f.ids[id], nil
}

func (f *fakeEmployeeRepo) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	return employee.Employee{}, nil
}

func (f *fakeEmployeeRepo) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	if !f.ids[id] {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return employee.Employee{ID: id}, nil
}

func (f *fakeEmployeeRepo) GetByEmail(ctx context.Context, email string) (employee.Employee, error) {
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) List(ctx context.Context) ([]employee.Employee, error) { return nil, nil }

func (f *fakeEmployeeRepo) Update(ctx context.Context, emp employee.Employee) error { return nil }

func (f *fakeEmployeeRepo) Delete(ctx context.Context, id string) error { return nil }

func (f *fakeEmployeeRepo) GetDepartments(ctx context.Context, employeeID string) ([]employee.Reference, error) {
	return nil, nil
}

func (f *fakeEmployeeRepo) SetDepartments(ctx context.Context, employeeID string, departmentIDs []string) error {
	return nil
}

func (f *fakeEmployeeRepo) GetTeams(ctx context.Context, employeeID string) ([]employee.Reference, error) {
	return nil, nil
}

func (f *fakeEmployeeRepo) SetTeams(ctx context.Context, employeeID string, teamIDs []string) error {
	return nil
}

func (f *fakeEmployeeRepo) GetProjectAssignments(ctx context.Context, employeeID string) ([]employee.ProjectAssignment, error) {
	return nil, nil
}

func (f *fakeEmployeeRepo) SetProjectAssignments(ctx context.Context, employeeID string, assignments []employee.ProjectAssignmentRequest) error {
	return nil
}

func newTestService(employeeIDs ...string) (PresenceService, *fakeEventRepo) {
	eventRepo := newFakeEventRepo()
	return NewPresenceService(eventRepo, newFakeEmployeeRepo(employeeIDs...)), eventRepo
}

var (
	userViewer  = auth.Viewer{EmployeeID: "emp-1", Role: auth.RoleUser}
	otherViewer = auth.Viewer{EmployeeID: "emp-2", Role: auth.RoleUser}
	adminViewer = auth.Viewer{EmployeeID: "emp-admin", Role: auth.RoleAdmin}
)

func TestCreateEventVacationStartsPlanned(t *testing.T) {
	svc, _ := newTestService("emp-1")
	ctx := context.Background()

	view, err := svc.CreateEvent(ctx, userViewer, presence.CreateEventRequest{
		EventType: "vacation",
		StartDate: "2026-07-01",
		EndDate:   "2026-07-14",
	})
	require.NoError(t, err)

	assert.Equal(t, "vacation", view.PresenceType)
	assert.Equal(t, "planned", view.Status)
	assert.Equal(t, "emp-1", view.EmployeeID)
	assert.Equal(t, "2026-07-01", view.StartDate)
	assert.Equal(t, "2026-07-14", view.EndDate)
}

func TestCreateEventFactualTypeStartsCompleted(t *testing.T) {
	svc, repo := newTestService("emp-1")
	ctx := context.Background()

	view, err := svc.CreateEvent(ctx, userViewer, presence.CreateEventRequest{
		EventType: "sick_leave",
		StartDate: "2026-02-02",
		EndDate:   "2026-02-04",
	})
	require.NoError(t, err)
	assert.Equal(t, "completed", view.Status)

	stored, err := repo.GetByID(ctx, view.ID)
	require.NoError(t, err)
	assert.Equal(t, presence.StatusCompleted, stored.Status)
}

func TestCreateEventEndNormalizedToEndOfDay(t *testing.T) {
	svc, repo := newTestService("emp-1")
	ctx := context.Background()

	view, err := svc.CreateEvent(ctx, userViewer, presence.CreateEventRequest{
		EventType: "meeting",
		StartDate: "2026-05-05",
		EndDate:   "2026-05-05",
	})
	require.NoError(t, err)

	stored, err := repo.GetByID(ctx, view.ID)
	require.NoError(t, err)
	assert.Equal(t, 23, stored.EndAt.Hour())
	assert.Equal(t, 59, stored.EndAt.Minute())
	assert.Equal(t, 59, stored.EndAt.Second())
}

func TestCreateEventSingleDayAllowed(t *testing.T) {
	svc, _ := newTestService("emp-1")

	_, err := svc.CreateEvent(context.Background(), userViewer, presence.CreateEventRequest{
		EventType: "day_off",
		StartDate: "2026-01-15",
		EndDate:   "2026-01-15",
	})
	assert.NoError(t, err)
}

func TestCreateEventRejectsReversedRange(t *testing.T) {
	svc, _ := newTestService("emp-1")

	_, err := svc.CreateEvent(context.Background(), userViewer, presence.CreateEventRequest{
		EventType: "vacation",
		StartDate: "2026-07-14",
		EndDate:   "2026-07-01",
	})
	assert.ErrorIs(t, err, presence.ErrInvalidDateRange)
}

func TestCreateEventRejectsBadDate(t *testing.T) {
	svc, _ := newTestService("emp-1")

	_, err := svc.CreateEvent(context.Background(), userViewer, presence.CreateEventRequest{
		EventType: "vacation",
		StartDate: "07/01/2026",
		EndDate:   "2026-07-14",
	})
	assert.ErrorIs(t, err, presence.ErrInvalidDate)
}

func TestCreateEventRejectsUnknownType(t *testing.T) {
	svc, _ := newTestService("emp-1")

	_, err := svc.CreateEvent(context.Background(), userViewer, presence.CreateEventRequest{
		EventType: "holiday",
		StartDate: "2026-07-01",
		EndDate:   "2026-07-02",
	})
	assert.ErrorIs(t, err, presence.ErrInvalidEventType)
}

func TestCreateEventForOtherEmployee(t *testing.T) {
	svc, _ := newTestService("emp-1", "emp-2")
	ctx := context.Background()
	target := "emp-2"

	// A regular user may not create events for someone else.
	_, err := svc.CreateEvent(ctx, userViewer, presence.CreateEventRequest{
		EmployeeID: &target,
		EventType:  "vacation",
		StartDate:  "2026-07-01",
		EndDate:    "2026-07-02",
	})
	assert.ErrorIs(t, err, presence.ErrCreateForOthers)

	// An admin may.
	view, err := svc.CreateEvent(ctx, adminViewer, presence.CreateEventRequest{
		EmployeeID: &target,
		EventType:  "vacation",
		StartDate:  "2026-07-01",
		EndDate:    "2026-07-02",
	})
	require.NoError(t, err)
	assert.Equal(t, "emp-2", view.EmployeeID)
}

func TestCreateEventUnknownTarget(t *testing.T) {
	svc, _ := newTestService("emp-admin")
	target := "emp-ghost"

	_, err := svc.CreateEvent(context.Background(), adminViewer, presence.CreateEventRequest{
		EmployeeID: &target,
		EventType:  "vacation",
		StartDate:  "2026-07-01",
		EndDate:    "2026-07-02",
	})
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestUpdateEventStatusLifecycle(t *testing.T) {
	svc, _ := newTestService("emp-1")
	ctx := context.Background()

	created, err := svc.CreateEvent(ctx, userViewer, presence.CreateEventRequest{
		EventType: "vacation",
		StartDate: "2026-08-01",
		EndDate:   "2026-08-10",
	})
	require.NoError(t, err)
	require.Equal(t, "planned", created.Status)

	// Regular users cannot decide.
	_, err = svc.UpdateEventStatus(ctx, userViewer, created.ID, presence.UpdateEventStatusRequest{Status: "approved"})
	assert.ErrorIs(t, err, auth.ErrAdminRequired)

	// Admin approves.
	updated, err := svc.UpdateEventStatus(ctx, adminViewer, created.ID, presence.UpdateEventStatusRequest{Status: "approved"})
	require.NoError(t, err)
	assert.Equal(t, "approved", updated.Status)
}

func TestUpdateEventStatusRejectsNonDecision(t *testing.T) {
	svc, _ := newTestService("emp-1")
	ctx := context.Background()

	created, err := svc.CreateEvent(ctx, userViewer, presence.CreateEventRequest{
		EventType: "business_trip",
		StartDate: "2026-08-01",
		EndDate:   "2026-08-03",
	})
	require.NoError(t, err)

	for _, status := range []string{"planned", "completed", "cancelled"} {
		_, err = svc.UpdateEventStatus(ctx, adminViewer, created.ID, presence.UpdateEventStatusRequest{Status: status})
		assert.ErrorIs(t, err, presence.ErrInvalidDecision, "status %s", status)
	}
}

func TestUpdateEventStatusFactualTypeRejected(t *testing.T) {
	svc, _ := newTestService("emp-1")
	ctx := context.Background()

	created, err := svc.CreateEvent(ctx, userViewer, presence.CreateEventRequest{
		EventType: "meeting",
		StartDate: "2026-08-01",
		EndDate:   "2026-08-01",
	})
	require.NoError(t, err)

	_, err = svc.UpdateEventStatus(ctx, adminViewer, created.ID, presence.UpdateEventStatusRequest{Status: "approved"})
	assert.ErrorIs(t, err, presence.ErrApprovalNotRequired)
}

func TestUpdateEventStatusUnknownEvent(t *testing.T) {
	svc, _ := newTestService("emp-1")

	_, err := svc.UpdateEventStatus(context.Background(), adminViewer, "event-missing", presence.UpdateEventStatusRequest{Status: "approved"})
	assert.ErrorIs(t, err, presence.ErrEventNotFound)
}

func TestCalendarShowsOnlyApprovedAndCompleted(t *testing.T) {
	svc, _ := newTestService("emp-1")
	ctx := context.Background()

	planned, err := svc.CreateEvent(ctx, userViewer, presence.CreateEventRequest{
		EventType: "vacation",
		StartDate: "2026-07-01",
		EndDate:   "2026-07-10",
	})
	require.NoError(t, err)

	completed, err := svc.CreateEvent(ctx, userViewer, presence.CreateEventRequest{
		EventType: "meeting",
		StartDate: "2026-07-05",
		EndDate:   "2026-07-05",
	})
	require.NoError(t, err)

	views, err := svc.CalendarEvents(ctx, userViewer, presence.CalendarRangeRequest{
		StartDate: "2026-07-01",
		EndDate:   "2026-07-31",
	})
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, completed.ID, views[0].ID)

	// Once approved the planned vacation appears too, ordered by start.
	_, err = svc.UpdateEventStatus(ctx, adminViewer, planned.ID, presence.UpdateEventStatusRequest{Status: "approved"})
	require.NoError(t, err)

	views, err = svc.CalendarEvents(ctx, userViewer, presence.CalendarRangeRequest{
		StartDate: "2026-07-01",
		EndDate:   "2026-07-31",
	})
	require.NoError(t, err)
	require.Len(t, views, 2)
	assert.Equal(t, planned.ID, views[0].ID)
	assert.Equal(t, completed.ID, views[1].ID)
}

func TestCalendarRejectedEventsHidden(t *testing.T) {
	svc, _ := newTestService("emp-1")
	ctx := context.Background()

	created, err := svc.CreateEvent(ctx, userViewer, presence.CreateEventRequest{
		EventType: "vacation",
		StartDate: "2026-07-01",
		EndDate:   "2026-07-10",
	})
	require.NoError(t, err)

	_, err = svc.UpdateEventStatus(ctx, adminViewer, created.ID, presence.UpdateEventStatusRequest{Status: "rejected"})
	require.NoError(t, err)

	views, err := svc.CalendarEvents(ctx, userViewer, presence.CalendarRangeRequest{
		StartDate: "2026-07-01",
		EndDate:   "2026-07-31",
	})
	require.NoError(t, err)
	assert.Empty(t, views)
}

func TestCalendarOverlapMatchesPartialAndContaining(t *testing.T) {
	svc, _ := newTestService("emp-1")
	ctx := context.Background()

	// Ends inside the queried range.
	_, err := svc.CreateEvent(ctx, userViewer, presence.CreateEventRequest{
		EventType: "sick_leave",
		StartDate: "2026-06-25",
		EndDate:   "2026-07-02",
	})
	require.NoError(t, err)

	// Fully contains the queried range.
	_, err = svc.CreateEvent(ctx, userViewer, presence.CreateEventRequest{
		EventType: "day_off",
		StartDate: "2026-06-01",
		EndDate:   "2026-08-31",
	})
	require.NoError(t, err)

	// Entirely outside.
	_, err = svc.CreateEvent(ctx, userViewer, presence.CreateEventRequest{
		EventType: "meeting",
		StartDate: "2026-09-10",
		EndDate:   "2026-09-10",
	})
	require.NoError(t, err)

	views, err := svc.CalendarEvents(ctx, userViewer, presence.CalendarRangeRequest{
		StartDate: "2026-07-01",
		EndDate:   "2026-07-31",
	})
	require.NoError(t, err)
	assert.Len(t, views, 2)
}

func TestCalendarOpenRangeReturnsEverything(t *testing.T) {
	svc, _ := newTestService("emp-1")
	ctx := context.Background()

	_, err := svc.CreateEvent(ctx, userViewer, presence.CreateEventRequest{
		EventType: "meeting",
		StartDate: "2026-01-01",
		EndDate:   "2026-01-01",
	})
	require.NoError(t, err)

	views, err := svc.CalendarEvents(ctx, userViewer, presence.CalendarRangeRequest{})
	require.NoError(t, err)
	assert.Len(t, views, 1)
}

func TestCalendarHalfRangeRejected(t *testing.T) {
	svc, _ := newTestService("emp-1")

	_, err := svc.CalendarEvents(context.Background(), userViewer, presence.CalendarRangeRequest{
		StartDate: "2026-07-01",
	})
	assert.Error(t, err)
}

func TestCalendarRedactsPrivateEventsOfOthers(t *testing.T) {
	svc, _ := newTestService("emp-1")
	ctx := context.Background()

	_, err := svc.CreateEvent(ctx, userViewer, presence.CreateEventRequest{
		EventType: "sick_leave",
		StartDate: "2026-03-01",
		EndDate:   "2026-03-05",
	})
	require.NoError(t, err)

	// Another employee sees the placeholder.
	views, err := svc.CalendarEvents(ctx, otherViewer, presence.CalendarRangeRequest{})
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, presence.RedactedType, views[0].PresenceType)

	// The owner sees the real type.
	views, err = svc.CalendarEvents(ctx, userViewer, presence.CalendarRangeRequest{})
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, "sick_leave", views[0].PresenceType)

	// So does an admin.
	views, err = svc.CalendarEvents(ctx, adminViewer, presence.CalendarRangeRequest{})
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, "sick_leave", views[0].PresenceType)
}

func TestListEventsOwnershipWinsOverFilter(t *testing.T) {
	svc, _ := newTestService("emp-1", "emp-2")
	ctx := context.Background()

	_, err := svc.CreateEvent(ctx, userViewer, presence.CreateEventRequest{
		EventType: "vacation",
		StartDate: "2026-07-01",
		EndDate:   "2026-07-02",
	})
	require.NoError(t, err)

	_, err = svc.CreateEvent(ctx, otherViewer, presence.CreateEventRequest{
		EventType: "vacation",
		StartDate: "2026-07-03",
		EndDate:   "2026-07-04",
	})
	require.NoError(t, err)

	// A regular user asking for someone else's events still gets their own.
	views, err := svc.ListEvents(ctx, userViewer, presence.ListEventsRequest{EmployeeID: "emp-2"})
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, "emp-1", views[0].EmployeeID)

	// An admin can filter by employee.
	views, err = svc.ListEvents(ctx, adminViewer, presence.ListEventsRequest{EmployeeID: "emp-2"})
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, "emp-2", views[0].EmployeeID)

	// Or see everything.
	views, err = svc.ListEvents(ctx, adminViewer, presence.ListEventsRequest{})
	require.NoError(t, err)
	assert.Len(t, views, 2)
}

func TestListEventsFilterValidation(t *testing.T) {
	svc, _ := newTestService("emp-1")
	ctx := context.Background()

	_, err := svc.ListEvents(ctx, adminViewer, presence.ListEventsRequest{EventType: "holiday"})
	assert.ErrorIs(t, err, presence.ErrInvalidEventType)

	_, err = svc.ListEvents(ctx, adminViewer, presence.ListEventsRequest{Status: "pending"})
	assert.ErrorIs(t, err, presence.ErrInvalidStatus)
}

func TestListEventsTypeAndStatusFilters(t *testing.T) {
	svc, _ := newTestService("emp-1")
	ctx := context.Background()

	_, err := svc.CreateEvent(ctx, userViewer, presence.CreateEventRequest{
		EventType: "vacation",
		StartDate: "2026-07-01",
		EndDate:   "2026-07-02",
	})
	require.NoError(t, err)

	_, err = svc.CreateEvent(ctx, userViewer, presence.CreateEventRequest{
		EventType: "meeting",
		StartDate: "2026-07-03",
		EndDate:   "2026-07-03",
	})
	require.NoError(t, err)

	views, err := svc.ListEvents(ctx, userViewer, presence.ListEventsRequest{EventType: "meeting"})
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, "meeting", views[0].PresenceType)

	views, err = svc.ListEvents(ctx, userViewer, presence.ListEventsRequest{Status: "planned"})
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, "vacation", views[0].PresenceType)
}

func TestDeleteEventOwnerRules(t *testing.T) {
	svc, repo := newTestService("emp-1")
	ctx := context.Background()

	planned, err := svc.CreateEvent(ctx, userViewer, presence.CreateEventRequest{
		EventType: "vacation",
		StartDate: "2026-07-01",
		EndDate:   "2026-07-02",
	})
	require.NoError(t, err)

	// Someone else cannot delete it at all.
	err = svc.DeleteEvent(ctx, otherViewer, planned.ID)
	assert.ErrorIs(t, err, presence.ErrNotEventOwner)

	// The owner can while it is still planned.
	require.NoError(t, svc.DeleteEvent(ctx, userViewer, planned.ID))
	_, err = repo.GetByID(ctx, planned.ID)
	assert.ErrorIs(t, err, presence.ErrEventNotFound)
}

func TestDeleteEventOwnerCannotDeleteApproved(t *testing.T) {
	svc, _ := newTestService("emp-1")
	ctx := context.Background()

	created, err := svc.CreateEvent(ctx, userViewer, presence.CreateEventRequest{
		EventType: "vacation",
		StartDate: "2026-07-01",
		EndDate:   "2026-07-02",
	})
	require.NoError(t, err)

	_, err = svc.UpdateEventStatus(ctx, adminViewer, created.ID, presence.UpdateEventStatusRequest{Status: "approved"})
	require.NoError(t, err)

	err = svc.DeleteEvent(ctx, userViewer, created.ID)
	assert.ErrorIs(t, err, presence.ErrEventNotPlanned)

	// The admin still can.
	assert.NoError(t, svc.DeleteEvent(ctx, adminViewer, created.ID))
}

func TestDeleteEventUnknown(t *testing.T) {
	svc, _ := newTestService("emp-1")

	err := svc.DeleteEvent(context.Background(), adminViewer, "event-missing")
	assert.ErrorIs(t, err, presence.ErrEventNotFound)
}
