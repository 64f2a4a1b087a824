package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/mkalvans/football-stats/internal/domain/referee"
	qb "github.com/mkalvans/football-stats/internal/platform/querybuilder"
)

type RefereeRepository struct {
	db *sqlx.DB
}

func NewRefereeRepository(db *sqlx.DB) *RefereeRepository {
	return &RefereeRepository{db: db}
}

func (r *RefereeRepository) List(ctx context.Context) ([]referee.Referee, error) {
	query, args, err := qb.Select("*").From("referees").
		OrderBy("id ASC").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select referees query: %w", err)
	}

	var rows []refereeTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select referees: %w", err)
	}

	items := make([]referee.Referee, 0, len(rows))
	for _, row := range rows {
		items = append(items, referee.Referee{ID: row.ID, FirstName: row.FirstName, LastName: row.LastName})
	}
	return items, nil
}
