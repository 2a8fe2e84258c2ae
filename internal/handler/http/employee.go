package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/staffpoint/presence-backend-go/internal/domain/auth"
	"github.com/staffpoint/presence-backend-go/internal/domain/employee"
	"github.com/staffpoint/presence-backend-go/internal/handler/http/response"
	employeesvc "github.com/staffpoint/presence-backend-go/internal/service/employee"
)

type EmployeeHandler interface {
	CreateEmployee(w http.ResponseWriter, r *http.Request)
	GetEmployee(w http.ResponseWriter, r *http.Request)
	ListEmployees(w http.ResponseWriter, r *http.Request)
	UpdateEmployee(w http.ResponseWriter, r *http.Request)
	DeleteEmployee(w http.ResponseWriter, r *http.Request)
	GetProfile(w http.ResponseWriter, r *http.Request)
}

type EmployeeHandlerImpl struct {
	employeeService employeesvc.EmployeeService
}

func NewEmployeeHandler(employeeService employeesvc.EmployeeService) EmployeeHandler {
	return &EmployeeHandlerImpl{employeeService: employeeService}
}

// CreateEmployee implements EmployeeHandler.
func (e *EmployeeHandlerImpl) CreateEmployee(w http.ResponseWriter, r *http.Request) {
	var req employee.CreateEmployeeRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CreateEmployee decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	emp, err := e.employeeService.CreateEmployee(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Employee created successfully", emp)
}

// GetEmployee implements EmployeeHandler.
func (e *EmployeeHandlerImpl) GetEmployee(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "id")
	if employeeID == "" {
		response.BadRequest(w, "Employee ID is required", nil)
		return
	}

	emp, err := e.employeeService.GetEmployee(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, emp)
}

// ListEmployees implements EmployeeHandler.
func (e *EmployeeHandlerImpl) ListEmployees(w http.ResponseWriter, r *http.Request) {
	employees, err := e.employeeService.ListEmployees(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, employees)
}

// UpdateEmployee implements EmployeeHandler.
func (e *EmployeeHandlerImpl) UpdateEmployee(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "id")
	if employeeID == "" {
		response.BadRequest(w, "Employee ID is required", nil)
		return
	}

	var req employee.UpdateEmployeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("UpdateEmployee decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = employeeID

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	emp, err := e.employeeService.UpdateEmployee(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Employee updated successfully", emp)
}

// DeleteEmployee implements EmployeeHandler.
func (e *EmployeeHandlerImpl) DeleteEmployee(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "id")
	if employeeID == "" {
		response.BadRequest(w, "Employee ID is required", nil)
		return
	}

	if err := e.employeeService.DeleteEmployee(r.Context(), employeeID); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Employee deleted successfully", nil)
}

// GetProfile implements EmployeeHandler.
func (e *EmployeeHandlerImpl) GetProfile(w http.ResponseWriter, r *http.Request) {
	viewer, err := viewerFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	emp, err := e.employeeService.GetEmployee(r.Context(), viewer.EmployeeID)
	if err != nil {
		// A valid token whose employee row is gone means the account was
		// removed after the token was issued.
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			response.HandleError(w, auth.ErrEmployeeAccountRemoved)
			return
		}
		response.HandleError(w, err)
		return
	}

	response.Success(w, emp)
}
