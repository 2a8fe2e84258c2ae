package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/staffpoint/presence-backend-go/internal/domain/presence"
	"github.com/staffpoint/presence-backend-go/internal/pkg/database"
)

type eventRepositoryImpl struct {
	db *database.DB
}

func NewEventRepository(db *database.DB) presence.EventRepository {
	return &eventRepositoryImpl{db: db}
}

const eventSelect = `
	SELECT ep.id, ep.employee_id, ep.presence_type, ep.start_datetime, ep.end_datetime,
	       ep.status, ep.comment, ep.created_at, ep.updated_at, e.full_name
	FROM employee_presence ep
	LEFT JOIN employees e ON e.id = ep.employee_id
`

func scanEvent(row pgx.Row) (presence.Event, error) {
	var ev presence.Event
	var eventType, status string
	err := row.Scan(
		&ev.ID,
		&ev.EmployeeID,
		&eventType,
		&ev.StartAt,
		&ev.EndAt,
		&status,
		&ev.Comment,
		&ev.CreatedAt,
		&ev.UpdatedAt,
		&ev.EmployeeName,
	)
	if err != nil {
		return presence.Event{}, err
	}
	ev.Type = presence.EventType(eventType)
	ev.Status = presence.EventStatus(status)
	return ev, nil
}

func (r *eventRepositoryImpl) Create(ctx context.Context, event presence.Event) (presence.Event, error) {
	q := GetQuerier(ctx, r.db)

	id := uuid.NewString()
	query := `
		INSERT INTO employee_presence (
			id, employee_id, presence_type, start_datetime, end_datetime, status, comment,
			created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())
	`
	_, err := q.Exec(ctx, query,
		id,
		event.EmployeeID,
		string(event.Type),
		event.StartAt,
		event.EndAt,
		string(event.Status),
		event.Comment,
	)
	if err != nil {
		return presence.Event{}, fmt.Errorf("insert presence event: %w", err)
	}

	return r.GetByID(ctx, id)
}

func (r *eventRepositoryImpl) GetByID(ctx context.Context, id string) (presence.Event, error) {
	q := GetQuerier(ctx, r.db)

	row := q.QueryRow(ctx, eventSelect+` WHERE ep.id = $1`, id)
	ev, err := scanEvent(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return presence.Event{}, presence.ErrEventNotFound
		}
		return presence.Event{}, err
	}
	return ev, nil
}

func (r *eventRepositoryImpl) List(ctx context.Context, filter presence.EventFilter) ([]presence.Event, error) {
	q := GetQuerier(ctx, r.db)

	query := eventSelect + ` WHERE 1=1`
	args := []interface{}{}

	if filter.EmployeeID != nil {
		args = append(args, *filter.EmployeeID)
		query += fmt.Sprintf(" AND ep.employee_id = $%d", len(args))
	}
	if filter.Type != nil {
		args = append(args, string(*filter.Type))
		query += fmt.Sprintf(" AND ep.presence_type = $%d", len(args))
	}
	if filter.Status != nil {
		args = append(args, string(*filter.Status))
		query += fmt.Sprintf(" AND ep.status = $%d", len(args))
	}
	query += " ORDER BY ep.start_datetime DESC"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectEvents(rows)
}

func (r *eventRepositoryImpl) ListOverlapping(ctx context.Context, rangeStart, rangeEnd time.Time, statuses []presence.EventStatus) ([]presence.Event, error) {
	q := GetQuerier(ctx, r.db)

	statusNames := make([]string, len(statuses))
	for i, s := range statuses {
		statusNames[i] = string(s)
	}

	// An event intersects the range when it starts in it, ends in it, or
	// fully contains it.
	query := eventSelect + `
		WHERE ep.status = ANY($3)
		  AND (
			ep.start_datetime BETWEEN $1 AND $2
			OR ep.end_datetime BETWEEN $1 AND $2
			OR (ep.start_datetime <= $1 AND ep.end_datetime >= $2)
		  )
		ORDER BY ep.start_datetime ASC
	`

	rows, err := q.Query(ctx, query, rangeStart, rangeEnd, statusNames)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectEvents(rows)
}

func (r *eventRepositoryImpl) UpdateStatus(ctx context.Context, id string, status presence.EventStatus) (presence.Event, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE employee_presence
		SET status = $2, updated_at = NOW()
		WHERE id = $1
	`
	commandTag, err := q.Exec(ctx, query, id, string(status))
	if err != nil {
		return presence.Event{}, fmt.Errorf("update presence event status: %w", err)
	}
	if commandTag.RowsAffected() != 1 {
		return presence.Event{}, presence.ErrEventNotFound
	}

	return r.GetByID(ctx, id)
}

func (r *eventRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	commandTag, err := q.Exec(ctx, `DELETE FROM employee_presence WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() != 1 {
		return presence.ErrEventNotFound
	}
	return nil
}

func collectEvents(rows pgx.Rows) ([]presence.Event, error) {
	var events []presence.Event
	for rows.Next() {
		ev, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, ev)
	}
	return events, rows.Err()
}
