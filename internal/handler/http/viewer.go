package http

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"
	"github.com/staffpoint/presence-backend-go/internal/domain/auth"
)

// viewerFromRequest builds the caller identity from verified JWT claims.
func viewerFromRequest(r *http.Request) (auth.Viewer, error) {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return auth.Viewer{}, auth.ErrInvalidToken
	}

	employeeID, ok := claims["employee_id"].(string)
	if !ok || employeeID == "" {
		return auth.Viewer{}, auth.ErrInvalidToken
	}

	role, ok := claims["role"].(string)
	if !ok || role == "" {
		return auth.Viewer{}, auth.ErrInvalidToken
	}

	return auth.Viewer{
		EmployeeID: employeeID,
		Role:       auth.Role(role),
	}, nil
}
