package response

import (
	"errors"
	"net/http"
	"strings"

	"github.com/staffpoint/presence-backend-go/internal/domain/auth"
	"github.com/staffpoint/presence-backend-go/internal/domain/employee"
	"github.com/staffpoint/presence-backend-go/internal/domain/org/department"
	"github.com/staffpoint/presence-backend-go/internal/domain/org/position"
	"github.com/staffpoint/presence-backend-go/internal/domain/org/project"
	"github.com/staffpoint/presence-backend-go/internal/domain/org/team"
	"github.com/staffpoint/presence-backend-go/internal/domain/presence"
	"github.com/staffpoint/presence-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses. Handlers call this for
// every error a service returns so status codes stay consistent.
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// 401
	case errors.Is(err, auth.ErrInvalidCredentials),
		errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrEmployeeAccountRemoved):
		Unauthorized(w, err.Error())

	// 403
	case errors.Is(err, auth.ErrAdminRequired),
		errors.Is(err, presence.ErrCreateForOthers),
		errors.Is(err, presence.ErrNotEventOwner):
		Forbidden(w, err.Error())

	// 404
	case errors.Is(err, presence.ErrEventNotFound),
		errors.Is(err, employee.ErrEmployeeNotFound),
		errors.Is(err, position.ErrPositionNotFound),
		errors.Is(err, department.ErrDepartmentNotFound),
		errors.Is(err, team.ErrTeamNotFound),
		errors.Is(err, project.ErrProjectNotFound):
		NotFound(w, err.Error())

	// 409
	case errors.Is(err, employee.ErrEmailExists),
		errors.Is(err, position.ErrPositionNameExists),
		errors.Is(err, department.ErrDepartmentNameExists),
		errors.Is(err, team.ErrTeamNameExists),
		errors.Is(err, project.ErrProjectNameExists):
		Conflict(w, err.Error())

	// 400
	case errors.Is(err, presence.ErrInvalidEventType):
		BadRequest(w, err.Error(), map[string]string{
			"event_type": "must be one of: " + strings.Join(presence.AllowedTypeNames(), ", "),
		})
	case errors.Is(err, presence.ErrInvalidDate),
		errors.Is(err, presence.ErrInvalidDateRange),
		errors.Is(err, presence.ErrInvalidStatus),
		errors.Is(err, presence.ErrApprovalNotRequired),
		errors.Is(err, presence.ErrInvalidDecision),
		errors.Is(err, presence.ErrEventNotPlanned),
		errors.Is(err, employee.ErrPositionNotFound),
		errors.Is(err, employee.ErrDepartmentNotFound),
		errors.Is(err, employee.ErrTeamNotFound),
		errors.Is(err, employee.ErrProjectNotFound),
		errors.Is(err, auth.ErrOAuthEmailNotVerified),
		errors.Is(err, auth.ErrOAuthUnknownEmployee):
		BadRequest(w, err.Error(), nil)

	// 503
	case errors.Is(err, auth.ErrOAuthNotConfigured):
		writeJSON(w, http.StatusServiceUnavailable, Response{
			Success: false,
			Error: &ErrorDetail{
				Code:    "SERVICE_UNAVAILABLE",
				Message: err.Error(),
			},
		})

	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
