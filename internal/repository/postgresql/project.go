package postgresql

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/staffpoint/presence-backend-go/internal/domain/org/project"
	"github.com/staffpoint/presence-backend-go/internal/pkg/database"
	"github.com/staffpoint/presence-backend-go/internal/pkg/validator"
)

// parseDate assumes the value was already validated by the request DTO.
func parseDate(s string) (time.Time, error) {
	return time.Parse(validator.DateLayout, s)
}

type projectRepositoryImpl struct {
	db *database.DB
}

func NewProjectRepository(db *database.DB) project.ProjectRepository {
	return &projectRepositoryImpl{db: db}
}

func (r *projectRepositoryImpl) Create(ctx context.Context, p project.Project) (project.Project, error) {
	q := GetQuerier(ctx, r.db)

	p.ID = uuid.NewString()
	_, err := q.Exec(ctx,
		`INSERT INTO projects (id, name, start_date, end_date) VALUES ($1, $2, $3, $4)`,
		p.ID, p.Name, p.StartDate, p.EndDate,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return project.Project{}, project.ErrProjectNameExists
		}
		return project.Project{}, err
	}
	return p, nil
}

func (r *projectRepositoryImpl) GetByID(ctx context.Context, id string) (project.Project, error) {
	q := GetQuerier(ctx, r.db)

	var p project.Project
	err := q.QueryRow(ctx,
		`SELECT id, name, start_date, end_date FROM projects WHERE id = $1`, id,
	).Scan(&p.ID, &p.Name, &p.StartDate, &p.EndDate)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return project.Project{}, project.ErrProjectNotFound
		}
		return project.Project{}, err
	}
	return p, nil
}

func (r *projectRepositoryImpl) List(ctx context.Context) ([]project.Project, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `SELECT id, name, start_date, end_date FROM projects ORDER BY name ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var projects []project.Project
	for rows.Next() {
		var p project.Project
		if err := rows.Scan(&p.ID, &p.Name, &p.StartDate, &p.EndDate); err != nil {
			return nil, err
		}
		projects = append(projects, p)
	}
	return projects, rows.Err()
}

func (r *projectRepositoryImpl) Update(ctx context.Context, req project.UpdateProjectRequest) error {
	q := GetQuerier(ctx, r.db)

	current, err := r.GetByID(ctx, req.ID)
	if err != nil {
		return err
	}

	name := current.Name
	if req.Name != nil {
		name = *req.Name
	}
	startDate := current.StartDate
	if req.StartDate != nil {
		t, _ := parseDate(*req.StartDate)
		startDate = &t
	}
	endDate := current.EndDate
	if req.EndDate != nil {
		t, _ := parseDate(*req.EndDate)
		endDate = &t
	}

	_, err = q.Exec(ctx,
		`UPDATE projects SET name = $2, start_date = $3, end_date = $4 WHERE id = $1`,
		req.ID, name, startDate, endDate,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return project.ErrProjectNameExists
		}
		return err
	}
	return nil
}

func (r *projectRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	commandTag, err := q.Exec(ctx, `DELETE FROM projects WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() != 1 {
		return project.ErrProjectNotFound
	}
	return nil
}
