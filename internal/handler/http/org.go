package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/staffpoint/presence-backend-go/internal/domain/org/department"
	"github.com/staffpoint/presence-backend-go/internal/domain/org/position"
	"github.com/staffpoint/presence-backend-go/internal/domain/org/project"
	"github.com/staffpoint/presence-backend-go/internal/domain/org/team"
	"github.com/staffpoint/presence-backend-go/internal/handler/http/response"
	orgsvc "github.com/staffpoint/presence-backend-go/internal/service/org"
)

// OrgHandler serves the organizational reference data the employee profiles
// and presence views hang off of.
type OrgHandler interface {
	CreatePosition(w http.ResponseWriter, r *http.Request)
	GetPosition(w http.ResponseWriter, r *http.Request)
	ListPositions(w http.ResponseWriter, r *http.Request)
	UpdatePosition(w http.ResponseWriter, r *http.Request)
	DeletePosition(w http.ResponseWriter, r *http.Request)

	CreateDepartment(w http.ResponseWriter, r *http.Request)
	GetDepartment(w http.ResponseWriter, r *http.Request)
	ListDepartments(w http.ResponseWriter, r *http.Request)
	UpdateDepartment(w http.ResponseWriter, r *http.Request)
	DeleteDepartment(w http.ResponseWriter, r *http.Request)

	CreateTeam(w http.ResponseWriter, r *http.Request)
	GetTeam(w http.ResponseWriter, r *http.Request)
	ListTeams(w http.ResponseWriter, r *http.Request)
	UpdateTeam(w http.ResponseWriter, r *http.Request)
	DeleteTeam(w http.ResponseWriter, r *http.Request)

	CreateProject(w http.ResponseWriter, r *http.Request)
	GetProject(w http.ResponseWriter, r *http.Request)
	ListProjects(w http.ResponseWriter, r *http.Request)
	UpdateProject(w http.ResponseWriter, r *http.Request)
	DeleteProject(w http.ResponseWriter, r *http.Request)
}

type OrgHandlerImpl struct {
	orgService orgsvc.OrgService
}

func NewOrgHandler(orgService orgsvc.OrgService) OrgHandler {
	return &OrgHandlerImpl{orgService: orgService}
}

// ==================== POSITION OPERATIONS ====================

func (o *OrgHandlerImpl) CreatePosition(w http.ResponseWriter, r *http.Request) {
	var req position.CreatePositionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CreatePosition decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := o.orgService.CreatePosition(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Position created successfully", created)
}

func (o *OrgHandlerImpl) GetPosition(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	pos, err := o.orgService.GetPosition(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, pos)
}

func (o *OrgHandlerImpl) ListPositions(w http.ResponseWriter, r *http.Request) {
	positions, err := o.orgService.ListPositions(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, positions)
}

func (o *OrgHandlerImpl) UpdatePosition(w http.ResponseWriter, r *http.Request) {
	var req position.UpdatePositionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("UpdatePosition decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	if err := o.orgService.UpdatePosition(r.Context(), req); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Position updated successfully", nil)
}

func (o *OrgHandlerImpl) DeletePosition(w http.ResponseWriter, r *http.Request) {
	if err := o.orgService.DeletePosition(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Position deleted successfully", nil)
}

// ==================== DEPARTMENT OPERATIONS ====================

func (o *OrgHandlerImpl) CreateDepartment(w http.ResponseWriter, r *http.Request) {
	var req department.CreateDepartmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CreateDepartment decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := o.orgService.CreateDepartment(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Department created successfully", created)
}

func (o *OrgHandlerImpl) GetDepartment(w http.ResponseWriter, r *http.Request) {
	dept, err := o.orgService.GetDepartment(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, dept)
}

func (o *OrgHandlerImpl) ListDepartments(w http.ResponseWriter, r *http.Request) {
	departments, err := o.orgService.ListDepartments(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, departments)
}

func (o *OrgHandlerImpl) UpdateDepartment(w http.ResponseWriter, r *http.Request) {
	var req department.UpdateDepartmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("UpdateDepartment decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	if err := o.orgService.UpdateDepartment(r.Context(), req); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Department updated successfully", nil)
}

func (o *OrgHandlerImpl) DeleteDepartment(w http.ResponseWriter, r *http.Request) {
	if err := o.orgService.DeleteDepartment(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Department deleted successfully", nil)
}

// ==================== TEAM OPERATIONS ====================

func (o *OrgHandlerImpl) CreateTeam(w http.ResponseWriter, r *http.Request) {
	var req team.CreateTeamRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CreateTeam decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := o.orgService.CreateTeam(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Team created successfully", created)
}

func (o *OrgHandlerImpl) GetTeam(w http.ResponseWriter, r *http.Request) {
	t, err := o.orgService.GetTeam(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, t)
}

func (o *OrgHandlerImpl) ListTeams(w http.ResponseWriter, r *http.Request) {
	teams, err := o.orgService.ListTeams(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, teams)
}

func (o *OrgHandlerImpl) UpdateTeam(w http.ResponseWriter, r *http.Request) {
	var req team.UpdateTeamRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("UpdateTeam decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	if err := o.orgService.UpdateTeam(r.Context(), req); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Team updated successfully", nil)
}

func (o *OrgHandlerImpl) DeleteTeam(w http.ResponseWriter, r *http.Request) {
	if err := o.orgService.DeleteTeam(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Team deleted successfully", nil)
}

// ==================== PROJECT OPERATIONS ====================

func (o *OrgHandlerImpl) CreateProject(w http.ResponseWriter, r *http.Request) {
	var req project.CreateProjectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CreateProject decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := o.orgService.CreateProject(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Project created successfully", created)
}

func (o *OrgHandlerImpl) GetProject(w http.ResponseWriter, r *http.Request) {
	proj, err := o.orgService.GetProject(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, proj)
}

func (o *OrgHandlerImpl) ListProjects(w http.ResponseWriter, r *http.Request) {
	projects, err := o.orgService.ListProjects(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, projects)
}

func (o *OrgHandlerImpl) UpdateProject(w http.ResponseWriter, r *http.Request) {
	var req project.UpdateProjectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("UpdateProject decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	if err := o.orgService.UpdateProject(r.Context(), req); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Project updated successfully", nil)
}

func (o *OrgHandlerImpl) DeleteProject(w http.ResponseWriter, r *http.Request) {
	if err := o.orgService.DeleteProject(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Project deleted successfully", nil)
}
