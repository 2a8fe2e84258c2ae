package org

import (
	"context"
	"fmt"
	"time"

	"github.com/staffpoint/presence-backend-go/internal/domain/org/department"
	"github.com/staffpoint/presence-backend-go/internal/domain/org/position"
	"github.com/staffpoint/presence-backend-go/internal/domain/org/project"
	"github.com/staffpoint/presence-backend-go/internal/domain/org/team"
	"github.com/staffpoint/presence-backend-go/internal/pkg/validator"
)

// OrgService covers the reference data of the organizational structure:
// positions, departments, teams and projects.
type OrgService interface {
	// Position operations
	CreatePosition(ctx context.Context, req position.CreatePositionRequest) (position.PositionResponse, error)
	GetPosition(ctx context.Context, id string) (position.PositionResponse, error)
	ListPositions(ctx context.Context) ([]position.PositionResponse, error)
	UpdatePosition(ctx context.Context, req position.UpdatePositionRequest) error
	DeletePosition(ctx context.Context, id string) error

	// Department operations
	CreateDepartment(ctx context.Context, req department.CreateDepartmentRequest) (department.DepartmentResponse, error)
	GetDepartment(ctx context.Context, id string) (department.DepartmentResponse, error)
	ListDepartments(ctx context.Context) ([]department.DepartmentResponse, error)
	UpdateDepartment(ctx context.Context, req department.UpdateDepartmentRequest) error
	DeleteDepartment(ctx context.Context, id string) error

	// Team operations
	CreateTeam(ctx context.Context, req team.CreateTeamRequest) (team.TeamResponse, error)
	GetTeam(ctx context.Context, id string) (team.TeamResponse, error)
	ListTeams(ctx context.Context) ([]team.TeamResponse, error)
	UpdateTeam(ctx context.Context, req team.UpdateTeamRequest) error
	DeleteTeam(ctx context.Context, id string) error

	// Project operations
	CreateProject(ctx context.Context, req project.CreateProjectRequest) (project.ProjectResponse, error)
	GetProject(ctx context.Context, id string) (project.ProjectResponse, error)
	ListProjects(ctx context.Context) ([]project.ProjectResponse, error)
	UpdateProject(ctx context.Context, req project.UpdateProjectRequest) error
	DeleteProject(ctx context.Context, id string) error
}

type orgServiceImpl struct {
	positionRepo   position.PositionRepository
	departmentRepo department.DepartmentRepository
	teamRepo       team.TeamRepository
	projectRepo    project.ProjectRepository
}

func NewOrgService(
	positionRepo position.PositionRepository,
	departmentRepo department.DepartmentRepository,
	teamRepo team.TeamRepository,
	projectRepo project.ProjectRepository,
) OrgService {
	return &orgServiceImpl{
		positionRepo:   positionRepo,
		departmentRepo: departmentRepo,
		teamRepo:       teamRepo,
		projectRepo:    projectRepo,
	}
}

// ==================== POSITION OPERATIONS ====================

func (s *orgServiceImpl) CreatePosition(ctx context.Context, req position.CreatePositionRequest) (position.PositionResponse, error) {
	if err := req.Validate(); err != nil {
		return position.PositionResponse{}, err
	}

	created, err := s.positionRepo.Create(ctx, position.Position{Name: req.Name})
	if err != nil {
		return position.PositionResponse{}, err
	}
	return position.PositionResponse{ID: created.ID, Name: created.Name}, nil
}

func (s *orgServiceImpl) GetPosition(ctx context.Context, id string) (position.PositionResponse, error) {
	entity, err := s.positionRepo.GetByID(ctx, id)
	if err != nil {
		return position.PositionResponse{}, err
	}
	return position.PositionResponse{ID: entity.ID, Name: entity.Name}, nil
}

func (s *orgServiceImpl) ListPositions(ctx context.Context) ([]position.PositionResponse, error) {
	entities, err := s.positionRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list positions: %w", err)
	}
	responses := make([]position.PositionResponse, 0, len(entities))
	for _, entity := range entities {
		responses = append(responses, position.PositionResponse{ID: entity.ID, Name: entity.Name})
	}
	return responses, nil
}

func (s *orgServiceImpl) UpdatePosition(ctx context.Context, req position.UpdatePositionRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}
	return s.positionRepo.Update(ctx, req)
}

func (s *orgServiceImpl) DeletePosition(ctx context.Context, id string) error {
	return s.positionRepo.Delete(ctx, id)
}

// ==================== DEPARTMENT OPERATIONS ====================

func (s *orgServiceImpl) CreateDepartment(ctx context.Context, req department.CreateDepartmentRequest) (department.DepartmentResponse, error) {
	if err := req.Validate(); err != nil {
		return department.DepartmentResponse{}, err
	}

	created, err := s.departmentRepo.Create(ctx, department.Department{Name: req.Name})
	if err != nil {
		return department.DepartmentResponse{}, err
	}
	return department.DepartmentResponse{ID: created.ID, Name: created.Name}, nil
}

func (s *orgServiceImpl) GetDepartment(ctx context.Context, id string) (department.DepartmentResponse, error) {
	entity, err := s.departmentRepo.GetByID(ctx, id)
	if err != nil {
		return department.DepartmentResponse{}, err
	}
	return department.DepartmentResponse{ID: entity.ID, Name: entity.Name}, nil
}

func (s *orgServiceImpl) ListDepartments(ctx context.Context) ([]department.DepartmentResponse, error) {
	entities, err := s.departmentRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list departments: %w", err)
	}
	responses := make([]department.DepartmentResponse, 0, len(entities))
	for _, entity := range entities {
		responses = append(responses, department.DepartmentResponse{ID: entity.ID, Name: entity.Name})
	}
	return responses, nil
}

func (s *orgServiceImpl) UpdateDepartment(ctx context.Context, req department.UpdateDepartmentRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}
	return s.departmentRepo.Update(ctx, req)
}

func (s *orgServiceImpl) DeleteDepartment(ctx context.Context, id string) error {
	return s.departmentRepo.Delete(ctx, id)
}

// ==================== TEAM OPERATIONS ====================

func (s *orgServiceImpl) CreateTeam(ctx context.Context, req team.CreateTeamRequest) (team.TeamResponse, error) {
	if err := req.Validate(); err != nil {
		return team.TeamResponse{}, err
	}

	created, err := s.teamRepo.Create(ctx, team.Team{Name: req.Name})
	if err != nil {
		return team.TeamResponse{}, err
	}
	return team.TeamResponse{ID: created.ID, Name: created.Name}, nil
}

func (s *orgServiceImpl) GetTeam(ctx context.Context, id string) (team.TeamResponse, error) {
	entity, err := s.teamRepo.GetByID(ctx, id)
	if err != nil {
		return team.TeamResponse{}, err
	}
	return team.TeamResponse{ID: entity.ID, Name: entity.Name}, nil
}

func (s *orgServiceImpl) ListTeams(ctx context.Context) ([]team.TeamResponse, error) {
	entities, err := s.teamRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list teams: %w", err)
	}
	responses := make([]team.TeamResponse, 0, len(entities))
	for _, entity := range entities {
		responses = append(responses, team.TeamResponse{ID: entity.ID, Name: entity.Name})
	}
	return responses, nil
}

func (s *orgServiceImpl) UpdateTeam(ctx context.Context, req team.UpdateTeamRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}
	return s.teamRepo.Update(ctx, req)
}

func (s *orgServiceImpl) DeleteTeam(ctx context.Context, id string) error {
	return s.teamRepo.Delete(ctx, id)
}

// ==================== PROJECT OPERATIONS ====================

func (s *orgServiceImpl) CreateProject(ctx context.Context, req project.CreateProjectRequest) (project.ProjectResponse, error) {
	if err := req.Validate(); err != nil {
		return project.ProjectResponse{}, err
	}

	entity := project.Project{Name: req.Name}
	if req.StartDate != nil {
		start, _ := validator.IsValidDate(*req.StartDate)
		entity.StartDate = &start
	}
	if req.EndDate != nil {
		end, _ := validator.IsValidDate(*req.EndDate)
		entity.EndDate = &end
	}

	created, err := s.projectRepo.Create(ctx, entity)
	if err != nil {
		return project.ProjectResponse{}, err
	}
	return toProjectResponse(created), nil
}

func (s *orgServiceImpl) GetProject(ctx context.Context, id string) (project.ProjectResponse, error) {
	entity, err := s.projectRepo.GetByID(ctx, id)
	if err != nil {
		return project.ProjectResponse{}, err
	}
	return toProjectResponse(entity), nil
}

func (s *orgServiceImpl) ListProjects(ctx context.Context) ([]project.ProjectResponse, error) {
	entities, err := s.projectRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	responses := make([]project.ProjectResponse, 0, len(entities))
	for _, entity := range entities {
		responses = append(responses, toProjectResponse(entity))
	}
	return responses, nil
}

func (s *orgServiceImpl) UpdateProject(ctx context.Context, req project.UpdateProjectRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}
	return s.projectRepo.Update(ctx, req)
}

func (s *orgServiceImpl) DeleteProject(ctx context.Context, id string) error {
	return s.projectRepo.Delete(ctx, id)
}

func toProjectResponse(entity project.Project) project.ProjectResponse {
	resp := project.ProjectResponse{ID: entity.ID, Name: entity.Name}
	if entity.StartDate != nil {
		start := entity.StartDate.Format(time.DateOnly)
		resp.StartDate = &start
	}
	if entity.EndDate != nil {
		end := entity.EndDate.Format(time.DateOnly)
		resp.EndDate = &end
	}
	return resp
}
