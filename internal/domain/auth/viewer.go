package auth

// Role is the access level carried in the token claims.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// Viewer identifies the authenticated caller of an operation. It is built from
// the request token by the HTTP layer and passed explicitly into services;
// nothing below the handlers reads claims on its own.
type Viewer struct {
	EmployeeID string
	Role       Role
}

// IsAdmin reports whether the viewer has admin rights.
func (v Viewer) IsAdmin() bool {
	return v.Role == RoleAdmin
}

// Owns reports whether the viewer is the employee identified by employeeID.
func (v Viewer) Owns(employeeID string) bool {
	return v.EmployeeID == employeeID
}
