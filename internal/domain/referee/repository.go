package referee

import "context"

type Repository interface {
	List(ctx context.Context) ([]Referee, error)
}
