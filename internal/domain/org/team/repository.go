package team

import "context"

type TeamRepository interface {
	Create(ctx context.Context, team Team) (Team, error)
	GetByID(ctx context.Context, id string) (Team, error)
	List(ctx context.Context) ([]Team, error)
	Update(ctx context.Context, req UpdateTeamRequest) error
	Delete(ctx context.Context, id string) error
}
