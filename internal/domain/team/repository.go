package team

import "context"

// Repository describes the read side of team persistence used by the
// statistics calculators.
type Repository interface {
	List(ctx context.Context) ([]Team, error)
	GetByID(ctx context.Context, teamID int64) (Team, bool, error)
}
