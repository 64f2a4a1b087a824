package player

import "context"

// Repository describes the read side of player persistence used by the
// statistics calculators.
type Repository interface {
	List(ctx context.Context) ([]Player, error)
	ListByTeam(ctx context.Context, teamID int64) ([]Player, error)
}
