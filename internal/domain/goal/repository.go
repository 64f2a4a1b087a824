package goal

import "context"

type Repository interface {
	List(ctx context.Context) ([]Goal, error)
	ListByMatch(ctx context.Context, matchID int64) ([]Goal, error)
}
