package match

import "context"

// Repository describes the read side of match persistence used by the
// statistics calculators and the presentation layer.
type Repository interface {
	List(ctx context.Context) ([]Match, error)
	GetByID(ctx context.Context, matchID int64) (Match, bool, error)
	ListRefereesByMatch(ctx context.Context, matchID int64) ([]Referee, error)
}
