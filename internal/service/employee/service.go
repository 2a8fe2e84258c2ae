package employee

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/staffpoint/presence-backend-go/internal/domain/auth"
	"github.com/staffpoint/presence-backend-go/internal/domain/employee"
	"github.com/staffpoint/presence-backend-go/internal/domain/org/department"
	"github.com/staffpoint/presence-backend-go/internal/domain/org/position"
	"github.com/staffpoint/presence-backend-go/internal/domain/org/project"
	"github.com/staffpoint/presence-backend-go/internal/domain/org/team"
	"github.com/staffpoint/presence-backend-go/internal/pkg/database"
	"github.com/staffpoint/presence-backend-go/internal/pkg/validator"
	"github.com/staffpoint/presence-backend-go/internal/repository/postgresql"
)

type EmployeeService interface {
	CreateEmployee(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error)
	GetEmployee(ctx context.Context, id string) (employee.EmployeeResponse, error)
	ListEmployees(ctx context.Context) ([]employee.EmployeeResponse, error)
	UpdateEmployee(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error)
	DeleteEmployee(ctx context.Context, id string) error
}

type employeeServiceImpl struct {
	db             *database.DB
	employeeRepo   employee.EmployeeRepository
	positionRepo   position.PositionRepository
	departmentRepo department.DepartmentRepository
	teamRepo       team.TeamRepository
	projectRepo    project.ProjectRepository
}

func NewEmployeeService(
	db *database.DB,
	employeeRepo employee.EmployeeRepository,
	positionRepo position.PositionRepository,
	departmentRepo department.DepartmentRepository,
	teamRepo team.TeamRepository,
	projectRepo project.ProjectRepository,
) EmployeeService {
	return &employeeServiceImpl{
		db:             db,
		employeeRepo:   employeeRepo,
		positionRepo:   positionRepo,
		departmentRepo: departmentRepo,
		teamRepo:       teamRepo,
		projectRepo:    projectRepo,
	}
}

func (s *employeeServiceImpl) CreateEmployee(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	if _, err := s.employeeRepo.GetByEmail(ctx, req.Email); err == nil {
		return employee.EmployeeResponse{}, employee.ErrEmailExists
	} else if !errors.Is(err, employee.ErrEmployeeNotFound) {
		return employee.EmployeeResponse{}, fmt.Errorf("check email uniqueness: %w", err)
	}

	if err := s.validateReferences(ctx, req.PositionID, req.MainDepartmentID, req.MainTeamID, req.Projects); err != nil {
		return employee.EmployeeResponse{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("hash password: %w", err)
	}

	emp := employee.Employee{
		FullName:         req.FullName,
		Email:            req.Email,
		PasswordHash:     string(hash),
		Role:             auth.RoleUser,
		WorkMode:         employee.WorkModeOffice,
		HireDate:         time.Now(),
		WorkSchedule:     req.WorkSchedule,
		PositionID:       req.PositionID,
		MainDepartmentID: req.MainDepartmentID,
		MainTeamID:       req.MainTeamID,
	}
	if req.Role != nil {
		emp.Role = auth.Role(*req.Role)
	}
	if req.WorkMode != nil {
		emp.WorkMode = employee.WorkMode(*req.WorkMode)
	}

	var created employee.Employee
	err = postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		var txErr error
		created, txErr = s.employeeRepo.Create(txCtx, emp)
		if txErr != nil {
			return txErr
		}
		if len(req.AdditionalDepartmentIDs) > 0 {
			if txErr := s.employeeRepo.SetDepartments(txCtx, created.ID, req.AdditionalDepartmentIDs); txErr != nil {
				return txErr
			}
		}
		if len(req.AdditionalTeamIDs) > 0 {
			if txErr := s.employeeRepo.SetTeams(txCtx, created.ID, req.AdditionalTeamIDs); txErr != nil {
				return txErr
			}
		}
		if len(req.Projects) > 0 {
			if txErr := s.employeeRepo.SetProjectAssignments(txCtx, created.ID, req.Projects); txErr != nil {
				return txErr
			}
		}
		return nil
	})
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("create employee: %w", err)
	}

	return s.toResponse(ctx, created)
}

func (s *employeeServiceImpl) GetEmployee(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	emp, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return s.toResponse(ctx, emp)
}

func (s *employeeServiceImpl) ListEmployees(ctx context.Context) ([]employee.EmployeeResponse, error) {
	employees, err := s.employeeRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list employees: %w", err)
	}

	responses := make([]employee.EmployeeResponse, 0, len(employees))
	for _, emp := range employees {
		resp, err := s.toResponse(ctx, emp)
		if err != nil {
			return nil, err
		}
		responses = append(responses, resp)
	}
	return responses, nil
}

func (s *employeeServiceImpl) UpdateEmployee(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, req.ID)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	if err := s.validateReferences(ctx, req.PositionID, req.MainDepartmentID, req.MainTeamID, req.Projects); err != nil {
		return employee.EmployeeResponse{}, err
	}

	if req.FullName != nil {
		emp.FullName = *req.FullName
	}
	if req.Email != nil {
		emp.Email = *req.Email
	}
	if req.Role != nil {
		emp.Role = auth.Role(*req.Role)
	}
	if req.WorkMode != nil {
		emp.WorkMode = employee.WorkMode(*req.WorkMode)
	}
	if req.WorkSchedule != nil {
		emp.WorkSchedule = req.WorkSchedule
	}
	if req.PositionID != nil {
		emp.PositionID = req.PositionID
	}
	if req.MainDepartmentID != nil {
		emp.MainDepartmentID = req.MainDepartmentID
	}
	if req.MainTeamID != nil {
		emp.MainTeamID = req.MainTeamID
	}
	if req.Password != nil && !validator.IsEmpty(*req.Password) {
		hash, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			return employee.EmployeeResponse{}, fmt.Errorf("hash password: %w", err)
		}
		emp.PasswordHash = string(hash)
	}

	err = postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		if txErr := s.employeeRepo.Update(txCtx, emp); txErr != nil {
			return txErr
		}
		if req.AdditionalDepartmentIDs != nil {
			if txErr := s.employeeRepo.SetDepartments(txCtx, emp.ID, req.AdditionalDepartmentIDs); txErr != nil {
				return txErr
			}
		}
		if req.AdditionalTeamIDs != nil {
			if txErr := s.employeeRepo.SetTeams(txCtx, emp.ID, req.AdditionalTeamIDs); txErr != nil {
				return txErr
			}
		}
		if req.Projects != nil {
			if txErr := s.employeeRepo.SetProjectAssignments(txCtx, emp.ID, req.Projects); txErr != nil {
				return txErr
			}
		}
		return nil
	})
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("update employee: %w", err)
	}

	updated, err := s.employeeRepo.GetByID(ctx, emp.ID)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return s.toResponse(ctx, updated)
}

func (s *employeeServiceImpl) DeleteEmployee(ctx context.Context, id string) error {
	return s.employeeRepo.Delete(ctx, id)
}

// validateReferences mirrors the id checks done before linking an employee to
// reference data, so a broken reference fails with a meaningful error instead
// of a constraint violation.
func (s *employeeServiceImpl) validateReferences(ctx context.Context, positionID, departmentID, teamID *string, projects []employee.ProjectAssignmentRequest) error {
	if positionID != nil {
		if _, err := s.positionRepo.GetByID(ctx, *positionID); err != nil {
			if errors.Is(err, position.ErrPositionNotFound) {
				return employee.ErrPositionNotFound
			}
			return err
		}
	}
	if departmentID != nil {
		if _, err := s.departmentRepo.GetByID(ctx, *departmentID); err != nil {
			if errors.Is(err, department.ErrDepartmentNotFound) {
				return employee.ErrDepartmentNotFound
			}
			return err
		}
	}
	if teamID != nil {
		if _, err := s.teamRepo.GetByID(ctx, *teamID); err != nil {
			if errors.Is(err, team.ErrTeamNotFound) {
				return employee.ErrTeamNotFound
			}
			return err
		}
	}
	for _, a := range projects {
		if _, err := s.projectRepo.GetByID(ctx, a.ProjectID); err != nil {
			if errors.Is(err, project.ErrProjectNotFound) {
				return employee.ErrProjectNotFound
			}
			return err
		}
	}
	return nil
}

func (s *employeeServiceImpl) toResponse(ctx context.Context, emp employee.Employee) (employee.EmployeeResponse, error) {
	departments, err := s.employeeRepo.GetDepartments(ctx, emp.ID)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("get employee departments: %w", err)
	}
	teams, err := s.employeeRepo.GetTeams(ctx, emp.ID)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("get employee teams: %w", err)
	}
	assignments, err := s.employeeRepo.GetProjectAssignments(ctx, emp.ID)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("get employee projects: %w", err)
	}

	resp := employee.EmployeeResponse{
		ID:                    emp.ID,
		FullName:              emp.FullName,
		Email:                 emp.Email,
		Role:                  string(emp.Role),
		WorkMode:              string(emp.WorkMode),
		HireDate:              emp.HireDate.Format(time.DateOnly),
		WorkSchedule:          emp.WorkSchedule,
		AdditionalDepartments: toReferenceResponses(departments),
		AdditionalTeams:       toReferenceResponses(teams),
		Projects:              make([]employee.ProjectAssignmentResponse, 0, len(assignments)),
	}
	if emp.TerminationDate != nil {
		terminated := emp.TerminationDate.Format(time.DateOnly)
		resp.TerminationDate = &terminated
	}
	if emp.PositionID != nil && emp.PositionName != nil {
		resp.Position = &employee.ReferenceResponse{ID: *emp.PositionID, Name: *emp.PositionName}
	}
	if emp.MainDepartmentID != nil && emp.MainDepartmentName != nil {
		resp.MainDepartment = &employee.ReferenceResponse{ID: *emp.MainDepartmentID, Name: *emp.MainDepartmentName}
	}
	if emp.MainTeamID != nil && emp.MainTeamName != nil {
		resp.MainTeam = &employee.ReferenceResponse{ID: *emp.MainTeamID, Name: *emp.MainTeamName}
	}
	for _, a := range assignments {
		resp.Projects = append(resp.Projects, employee.ProjectAssignmentResponse{
			Project:                 employee.ReferenceResponse{ID: a.ProjectID, Name: a.ProjectName},
			ParticipationPercentage: a.ParticipationPercentage,
		})
	}

	return resp, nil
}

func toReferenceResponses(refs []employee.Reference) []employee.ReferenceResponse {
	responses := make([]employee.ReferenceResponse, 0, len(refs))
	for _, ref := range refs {
		responses = append(responses, employee.ReferenceResponse{ID: ref.ID, Name: ref.Name})
	}
	return responses
}
