package presence

import (
	"context"
	"fmt"
	"time"

	"github.com/staffpoint/presence-backend-go/internal/domain/auth"
	"github.com/staffpoint/presence-backend-go/internal/domain/employee"
	"github.com/staffpoint/presence-backend-go/internal/domain/presence"
	"github.com/staffpoint/presence-backend-go/internal/pkg/validator"
)

// PresenceService owns the lifecycle of presence events: creation, the
// approval state machine, listings and deletion. Every event it returns has
// already been projected for the calling viewer.
type PresenceService interface {
	CreateEvent(ctx context.Context, viewer auth.Viewer, req presence.CreateEventRequest) (presence.EventView, error)
	CalendarEvents(ctx context.Context, viewer auth.Viewer, req presence.CalendarRangeRequest) ([]presence.EventView, error)
	ListEvents(ctx context.Context, viewer auth.Viewer, req presence.ListEventsRequest) ([]presence.EventView, error)
	UpdateEventStatus(ctx context.Context, viewer auth.Viewer, eventID string, req presence.UpdateEventStatusRequest) (presence.EventView, error)
	DeleteEvent(ctx context.Context, viewer auth.Viewer, eventID string) error
}

type presenceServiceImpl struct {
	eventRepo    presence.EventRepository
	employeeRepo employee.EmployeeRepository
}

func NewPresenceService(eventRepo presence.EventRepository, employeeRepo employee.EmployeeRepository) PresenceService {
	return &presenceServiceImpl{
		eventRepo:    eventRepo,
		employeeRepo: employeeRepo,
	}
}

func (s *presenceServiceImpl) CreateEvent(ctx context.Context, viewer auth.Viewer, req presence.CreateEventRequest) (presence.EventView, error) {
	if err := req.Validate(); err != nil {
		return presence.EventView{}, err
	}

	targetEmployeeID := viewer.EmployeeID
	if req.EmployeeID != nil && *req.EmployeeID != "" {
		targetEmployeeID = *req.EmployeeID
	}
	if !viewer.IsAdmin() && !viewer.Owns(targetEmployeeID) {
		return presence.EventView{}, presence.ErrCreateForOthers
	}

	eventType := presence.EventType(req.EventType)
	if !eventType.Valid() {
		return presence.EventView{}, presence.ErrInvalidEventType
	}

	startAt, ok := validator.IsValidDate(req.StartDate)
	if !ok {
		return presence.EventView{}, presence.ErrInvalidDate
	}
	endDay, ok := validator.IsValidDate(req.EndDate)
	if !ok {
		return presence.EventView{}, presence.ErrInvalidDate
	}
	if endDay.Before(startAt) {
		return presence.EventView{}, presence.ErrInvalidDateRange
	}
	// The event covers whole days; the end is pushed to the last instant of
	// its calendar day.
	endAt := endOfDay(endDay)

	exists, err := s.employeeRepo.Exists(ctx, targetEmployeeID)
	if err != nil {
		return presence.EventView{}, fmt.Errorf("check target employee: %w", err)
	}
	if !exists {
		return presence.EventView{}, employee.ErrEmployeeNotFound
	}

	event := presence.Event{
		EmployeeID: targetEmployeeID,
		Type:       eventType,
		StartAt:    startAt,
		EndAt:      endAt,
		Status:     eventType.InitialStatus(),
		Comment:    req.Comment,
	}

	created, err := s.eventRepo.Create(ctx, event)
	if err != nil {
		return presence.EventView{}, fmt.Errorf("create presence event: %w", err)
	}

	return presence.Project(created, viewer), nil
}

func (s *presenceServiceImpl) CalendarEvents(ctx context.Context, viewer auth.Viewer, req presence.CalendarRangeRequest) ([]presence.EventView, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	// The calendar deliberately shows every employee's approved and completed
	// events; redaction of private types happens in the projection.
	rangeStart := time.Time{}
	rangeEnd := maxRangeEnd
	if req.StartDate != "" {
		var ok bool
		rangeStart, ok = validator.IsValidDate(req.StartDate)
		if !ok {
			return nil, presence.ErrInvalidDate
		}
		endDay, ok := validator.IsValidDate(req.EndDate)
		if !ok {
			return nil, presence.ErrInvalidDate
		}
		rangeEnd = endOfDay(endDay)
	}

	events, err := s.eventRepo.ListOverlapping(ctx, rangeStart, rangeEnd,
		[]presence.EventStatus{presence.StatusApproved, presence.StatusCompleted})
	if err != nil {
		return nil, fmt.Errorf("list calendar events: %w", err)
	}

	return presence.ProjectAll(events, viewer), nil
}

func (s *presenceServiceImpl) ListEvents(ctx context.Context, viewer auth.Viewer, req presence.ListEventsRequest) ([]presence.EventView, error) {
	var filter presence.EventFilter

	if viewer.IsAdmin() {
		if req.EmployeeID != "" {
			employeeID := req.EmployeeID
			filter.EmployeeID = &employeeID
		}
	} else {
		// Ownership always wins over a requested employee filter.
		employeeID := viewer.EmployeeID
		filter.EmployeeID = &employeeID
	}

	if req.EventType != "" {
		eventType := presence.EventType(req.EventType)
		if !eventType.Valid() {
			return nil, presence.ErrInvalidEventType
		}
		filter.Type = &eventType
	}
	if req.Status != "" {
		status := presence.EventStatus(req.Status)
		if !status.Valid() {
			return nil, presence.ErrInvalidStatus
		}
		filter.Status = &status
	}

	events, err := s.eventRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list presence events: %w", err)
	}

	return presence.ProjectAll(events, viewer), nil
}

func (s *presenceServiceImpl) UpdateEventStatus(ctx context.Context, viewer auth.Viewer, eventID string, req presence.UpdateEventStatusRequest) (presence.EventView, error) {
	if !viewer.IsAdmin() {
		return presence.EventView{}, auth.ErrAdminRequired
	}

	if err := req.Validate(); err != nil {
		return presence.EventView{}, err
	}

	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return presence.EventView{}, err
	}

	// Only planned requests carry an approval decision; factual types never
	// leave their initial status.
	if !event.Type.RequiresApproval() {
		return presence.EventView{}, presence.ErrApprovalNotRequired
	}

	newStatus := presence.EventStatus(req.Status)
	if !newStatus.IsDecision() {
		return presence.EventView{}, presence.ErrInvalidDecision
	}

	// Last write wins; concurrent decisions on the same event are not
	// detected.
	updated, err := s.eventRepo.UpdateStatus(ctx, eventID, newStatus)
	if err != nil {
		return presence.EventView{}, fmt.Errorf("update event status: %w", err)
	}

	return presence.Project(updated, viewer), nil
}

func (s *presenceServiceImpl) DeleteEvent(ctx context.Context, viewer auth.Viewer, eventID string) error {
	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return err
	}

	if !viewer.IsAdmin() {
		if !viewer.Owns(event.EmployeeID) {
			return presence.ErrNotEventOwner
		}
		if event.Status != presence.StatusPlanned {
			return presence.ErrEventNotPlanned
		}
	}

	return s.eventRepo.Delete(ctx, eventID)
}

// maxRangeEnd bounds an open calendar query far enough in the future to catch
// every stored event.
var maxRangeEnd = time.Date(9999, 12, 31, 23, 59, 59, 0, time.UTC)

func endOfDay(day time.Time) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(), 23, 59, 59, 0, day.Location())
}
