package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/staffpoint/presence-backend-go/internal/domain/presence"
	"github.com/staffpoint/presence-backend-go/internal/handler/http/response"
	presencesvc "github.com/staffpoint/presence-backend-go/internal/service/presence"
)

type PresenceHandler interface {
	CalendarEvents(w http.ResponseWriter, r *http.Request)
	CreateEvent(w http.ResponseWriter, r *http.Request)
	ListEvents(w http.ResponseWriter, r *http.Request)
	UpdateEventStatus(w http.ResponseWriter, r *http.Request)
	DeleteEvent(w http.ResponseWriter, r *http.Request)
}

type PresenceHandlerImpl struct {
	presenceService presencesvc.PresenceService
}

func NewPresenceHandler(presenceService presencesvc.PresenceService) PresenceHandler {
	return &PresenceHandlerImpl{presenceService: presenceService}
}

// CalendarEvents implements PresenceHandler.
func (p *PresenceHandlerImpl) CalendarEvents(w http.ResponseWriter, r *http.Request) {
	viewer, err := viewerFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	req := presence.CalendarRangeRequest{
		StartDate: r.URL.Query().Get("start_date"),
		EndDate:   r.URL.Query().Get("end_date"),
	}

	events, err := p.presenceService.CalendarEvents(r.Context(), viewer, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, events)
}

// CreateEvent implements PresenceHandler.
func (p *PresenceHandlerImpl) CreateEvent(w http.ResponseWriter, r *http.Request) {
	viewer, err := viewerFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req presence.CreateEventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CreateEvent decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	event, err := p.presenceService.CreateEvent(r.Context(), viewer, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Presence event created successfully", event)
}

// ListEvents implements PresenceHandler.
func (p *PresenceHandlerImpl) ListEvents(w http.ResponseWriter, r *http.Request) {
	viewer, err := viewerFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	req := presence.ListEventsRequest{
		EmployeeID: r.URL.Query().Get("employee_id"),
		EventType:  r.URL.Query().Get("event_type"),
		Status:     r.URL.Query().Get("status"),
	}

	events, err := p.presenceService.ListEvents(r.Context(), viewer, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, events)
}

// UpdateEventStatus implements PresenceHandler.
func (p *PresenceHandlerImpl) UpdateEventStatus(w http.ResponseWriter, r *http.Request) {
	viewer, err := viewerFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	eventID := chi.URLParam(r, "id")
	if eventID == "" {
		response.BadRequest(w, "Event ID is required", nil)
		return
	}

	var req presence.UpdateEventStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("UpdateEventStatus decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	event, err := p.presenceService.UpdateEventStatus(r.Context(), viewer, eventID, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Event status updated successfully", event)
}

// DeleteEvent implements PresenceHandler.
func (p *PresenceHandlerImpl) DeleteEvent(w http.ResponseWriter, r *http.Request) {
	viewer, err := viewerFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	eventID := chi.URLParam(r, "id")
	if eventID == "" {
		response.BadRequest(w, "Event ID is required", nil)
		return
	}

	if err := p.presenceService.DeleteEvent(r.Context(), viewer, eventID); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Presence event deleted successfully", nil)
}
