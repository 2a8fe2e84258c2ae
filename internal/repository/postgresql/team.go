package postgresql

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/staffpoint/presence-backend-go/internal/domain/org/team"
	"github.com/staffpoint/presence-backend-go/internal/pkg/database"
)

type teamRepositoryImpl struct {
	db *database.DB
}

func NewTeamRepository(db *database.DB) team.TeamRepository {
	return &teamRepositoryImpl{db: db}
}

func (r *teamRepositoryImpl) Create(ctx context.Context, t team.Team) (team.Team, error) {
	q := GetQuerier(ctx, r.db)

	t.ID = uuid.NewString()
	_, err := q.Exec(ctx, `INSERT INTO teams (id, name) VALUES ($1, $2)`, t.ID, t.Name)
	if err != nil {
		if isUniqueViolation(err) {
			return team.Team{}, team.ErrTeamNameExists
		}
		return team.Team{}, err
	}
	return t, nil
}

func (r *teamRepositoryImpl) GetByID(ctx context.Context, id string) (team.Team, error) {
	q := GetQuerier(ctx, r.db)

	var t team.Team
	err := q.QueryRow(ctx, `SELECT id, name FROM teams WHERE id = $1`, id).Scan(&t.ID, &t.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return team.Team{}, team.ErrTeamNotFound
		}
		return team.Team{}, err
	}
	return t, nil
}

func (r *teamRepositoryImpl) List(ctx context.Context) ([]team.Team, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `SELECT id, name FROM teams ORDER BY name ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var teams []team.Team
	for rows.Next() {
		var t team.Team
		if err := rows.Scan(&t.ID, &t.Name); err != nil {
			return nil, err
		}
		teams = append(teams, t)
	}
	return teams, rows.Err()
}

func (r *teamRepositoryImpl) Update(ctx context.Context, req team.UpdateTeamRequest) error {
	q := GetQuerier(ctx, r.db)

	commandTag, err := q.Exec(ctx, `UPDATE teams SET name = $2 WHERE id = $1`, req.ID, req.Name)
	if err != nil {
		if isUniqueViolation(err) {
			return team.ErrTeamNameExists
		}
		return err
	}
	if commandTag.RowsAffected() != 1 {
		return team.ErrTeamNotFound
	}
	return nil
}

func (r *teamRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	commandTag, err := q.Exec(ctx, `DELETE FROM teams WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() != 1 {
		return team.ErrTeamNotFound
	}
	return nil
}
