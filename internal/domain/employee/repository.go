package employee

import "context"

// EmployeeRepository defines data access for the employee directory.
// Implementations return ErrEmployeeNotFound for missing ids/emails.
type EmployeeRepository interface {
	Create(ctx context.Context, emp Employee) (Employee, error)
	GetByID(ctx context.Context, id string) (Employee, error)
	GetByEmail(ctx context.Context, email string) (Employee, error)
	List(ctx context.Context) ([]Employee, error)
	Update(ctx context.Context, emp Employee) error
	Delete(ctx context.Context, id string) error

	// Exists is a lightweight ownership/target check used by other services.
	Exists(ctx context.Context, id string) (bool, error)

	// M2M relations
	GetDepartments(ctx context.Context, employeeID string) ([]Reference, error)
	SetDepartments(ctx context.Context, employeeID string, departmentIDs []string) error
	GetTeams(ctx context.Context, employeeID string) ([]Reference, error)
	SetTeams(ctx context.Context, employeeID string, teamIDs []string) error
	GetProjectAssignments(ctx context.Context, employeeID string) ([]ProjectAssignment, error)
	SetProjectAssignments(ctx context.Context, employeeID string, assignments []ProjectAssignmentRequest) error
}
