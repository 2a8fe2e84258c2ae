package postgresql

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/staffpoint/presence-backend-go/internal/domain/org/position"
	"github.com/staffpoint/presence-backend-go/internal/pkg/database"
)

type positionRepositoryImpl struct {
	db *database.DB
}

func NewPositionRepository(db *database.DB) position.PositionRepository {
	return &positionRepositoryImpl{db: db}
}

// isUniqueViolation reports a Postgres unique constraint violation (23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

func (r *positionRepositoryImpl) Create(ctx context.Context, p position.Position) (position.Position, error) {
	q := GetQuerier(ctx, r.db)

	p.ID = uuid.NewString()
	_, err := q.Exec(ctx, `INSERT INTO positions (id, name) VALUES ($1, $2)`, p.ID, p.Name)
	if err != nil {
		if isUniqueViolation(err) {
			return position.Position{}, position.ErrPositionNameExists
		}
		return position.Position{}, err
	}
	return p, nil
}

func (r *positionRepositoryImpl) GetByID(ctx context.Context, id string) (position.Position, error) {
	q := GetQuerier(ctx, r.db)

	var p position.Position
	err := q.QueryRow(ctx, `SELECT id, name FROM positions WHERE id = $1`, id).Scan(&p.ID, &p.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return position.Position{}, position.ErrPositionNotFound
		}
		return position.Position{}, err
	}
	return p, nil
}

func (r *positionRepositoryImpl) List(ctx context.Context) ([]position.Position, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `SELECT id, name FROM positions ORDER BY name ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var positions []position.Position
	for rows.Next() {
		var p position.Position
		if err := rows.Scan(&p.ID, &p.Name); err != nil {
			return nil, err
		}
		positions = append(positions, p)
	}
	return positions, rows.Err()
}

func (r *positionRepositoryImpl) Update(ctx context.Context, req position.UpdatePositionRequest) error {
	q := GetQuerier(ctx, r.db)

	commandTag, err := q.Exec(ctx, `UPDATE positions SET name = $2 WHERE id = $1`, req.ID, req.Name)
	if err != nil {
		if isUniqueViolation(err) {
			return position.ErrPositionNameExists
		}
		return err
	}
	if commandTag.RowsAffected() != 1 {
		return position.ErrPositionNotFound
	}
	return nil
}

func (r *positionRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	commandTag, err := q.Exec(ctx, `DELETE FROM positions WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() != 1 {
		return position.ErrPositionNotFound
	}
	return nil
}
