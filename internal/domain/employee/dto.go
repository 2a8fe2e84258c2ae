package employee

import "github.com/staffpoint/presence-backend-go/internal/pkg/validator"

type ProjectAssignmentRequest struct {
	ProjectID               string `json:"project_id"`
	ParticipationPercentage int    `json:"participation_percentage"`
}

func validateAssignments(assignments []ProjectAssignmentRequest, errs validator.ValidationErrors) validator.ValidationErrors {
	for _, a := range assignments {
		if validator.IsEmpty(a.ProjectID) {
			errs = append(errs, validator.ValidationError{
				Field:   "projects",
				Message: "project_id is required for every project assignment",
			})
			continue
		}
		p := a.ParticipationPercentage
		if p <= 0 || p > 100 || p%10 != 0 {
			errs = append(errs, validator.ValidationError{
				Field:   "projects",
				Message: "participation_percentage must be a multiple of 10 between 10 and 100",
			})
		}
	}
	return errs
}

type CreateEmployeeRequest struct {
	Email                   string                     `json:"email"`
	Password                string                     `json:"password"`
	FullName                string                     `json:"full_name"`
	Role                    *string                    `json:"role,omitempty"`
	WorkMode                *string                    `json:"work_mode,omitempty"`
	WorkSchedule            *string                    `json:"work_schedule,omitempty"`
	PositionID              *string                    `json:"position_id,omitempty"`
	MainDepartmentID        *string                    `json:"main_department_id,omitempty"`
	MainTeamID              *string                    `json:"main_team_id,omitempty"`
	AdditionalDepartmentIDs []string                   `json:"additional_department_ids,omitempty"`
	AdditionalTeamIDs       []string                   `json:"additional_team_ids,omitempty"`
	Projects                []ProjectAssignmentRequest `json:"projects,omitempty"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email is required",
		})
	} else if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email is not a valid address",
		})
	}

	if validator.IsEmpty(r.Password) {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password is required",
		})
	}

	if validator.IsEmpty(r.FullName) {
		errs = append(errs, validator.ValidationError{
			Field:   "full_name",
			Message: "full_name is required",
		})
	} else if len(r.FullName) > 255 {
		errs = append(errs, validator.ValidationError{
			Field:   "full_name",
			Message: "full_name must not exceed 255 characters",
		})
	}

	if r.Role != nil && !validator.IsInSlice(*r.Role, []string{"user", "admin"}) {
		errs = append(errs, validator.ValidationError{
			Field:   "role",
			Message: "role must be 'user' or 'admin'",
		})
	}

	if r.WorkMode != nil && !WorkMode(*r.WorkMode).Valid() {
		errs = append(errs, validator.ValidationError{
			Field:   "work_mode",
			Message: "work_mode must be 'office', 'remote' or 'hybrid'",
		})
	}

	errs = validateAssignments(r.Projects, errs)

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateEmployeeRequest struct {
	ID                      string                     `json:"-"`
	Email                   *string                    `json:"email,omitempty"`
	Password                *string                    `json:"password,omitempty"`
	FullName                *string                    `json:"full_name,omitempty"`
	Role                    *string                    `json:"role,omitempty"`
	WorkMode                *string                    `json:"work_mode,omitempty"`
	WorkSchedule            *string                    `json:"work_schedule,omitempty"`
	PositionID              *string                    `json:"position_id,omitempty"`
	MainDepartmentID        *string                    `json:"main_department_id,omitempty"`
	MainTeamID              *string                    `json:"main_team_id,omitempty"`
	AdditionalDepartmentIDs []string                   `json:"additional_department_ids,omitempty"`
	AdditionalTeamIDs       []string                   `json:"additional_team_ids,omitempty"`
	Projects                []ProjectAssignmentRequest `json:"projects,omitempty"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id is required",
		})
	}

	if r.Email != nil && !validator.IsValidEmail(*r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email is not a valid address",
		})
	}

	if r.FullName != nil && validator.IsEmpty(*r.FullName) {
		errs = append(errs, validator.ValidationError{
			Field:   "full_name",
			Message: "full_name must not be empty",
		})
	}

	if r.Role != nil && !validator.IsInSlice(*r.Role, []string{"user", "admin"}) {
		errs = append(errs, validator.ValidationError{
			Field:   "role",
			Message: "role must be 'user' or 'admin'",
		})
	}

	if r.WorkMode != nil && !WorkMode(*r.WorkMode).Valid() {
		errs = append(errs, validator.ValidationError{
			Field:   "work_mode",
			Message: "work_mode must be 'office', 'remote' or 'hybrid'",
		})
	}

	errs = validateAssignments(r.Projects, errs)

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ReferenceResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type ProjectAssignmentResponse struct {
	Project                 ReferenceResponse `json:"project"`
	ParticipationPercentage int               `json:"participation_percentage"`
}

type EmployeeResponse struct {
	ID                    string                      `json:"id"`
	FullName              string                      `json:"full_name"`
	Email                 string                      `json:"email"`
	Role                  string                      `json:"role"`
	WorkMode              string                      `json:"work_mode"`
	HireDate              string                      `json:"hire_date"`
	TerminationDate       *string                     `json:"termination_date,omitempty"`
	WorkSchedule          *string                     `json:"work_schedule,omitempty"`
	Position              *ReferenceResponse          `json:"position"`
	MainDepartment        *ReferenceResponse          `json:"main_department"`
	MainTeam              *ReferenceResponse          `json:"main_team"`
	AdditionalDepartments []ReferenceResponse         `json:"additional_departments"`
	AdditionalTeams       []ReferenceResponse         `json:"additional_teams"`
	Projects              []ProjectAssignmentResponse `json:"projects"`
}
