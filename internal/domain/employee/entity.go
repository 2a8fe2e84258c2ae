package employee

import (
	"time"

	"github.com/staffpoint/presence-backend-go/internal/domain/auth"
)

type WorkMode string

const (
	WorkModeOffice WorkMode = "office"
	WorkModeRemote WorkMode = "remote"
	WorkModeHybrid WorkMode = "hybrid"
)

func (m WorkMode) Valid() bool {
	switch m {
	case WorkModeOffice, WorkModeRemote, WorkModeHybrid:
		return true
	}
	return false
}

type Employee struct {
	ID               string
	FullName         string
	Email            string
	PasswordHash     string
	Role             auth.Role
	WorkMode         WorkMode
	HireDate         time.Time
	TerminationDate  *time.Time
	WorkSchedule     *string
	PositionID       *string
	MainDepartmentID *string
	MainTeamID       *string
	CreatedAt        time.Time
	UpdatedAt        time.Time

	// DTO, joined reference names
	PositionName       *string
	MainDepartmentName *string
	MainTeamName       *string
}

// Reference is a named link to a position, department, team or project.
type Reference struct {
	ID   string
	Name string
}

// ProjectAssignment links an employee to a project with a workload share.
type ProjectAssignment struct {
	ProjectID               string
	ProjectName             string
	ParticipationPercentage int
}

// IsAdmin reports whether the employee holds the admin role.
func (e *Employee) IsAdmin() bool {
	return e.Role == auth.RoleAdmin
}
