package substitution

import "context"

type Repository interface {
	List(ctx context.Context) ([]Substitution, error)
	ListByMatch(ctx context.Context, matchID int64) ([]Substitution, error)
}
