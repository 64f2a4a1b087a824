package card

import "context"

type Repository interface {
	ListByMatch(ctx context.Context, matchID int64) ([]Card, error)
}
