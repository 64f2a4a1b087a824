package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/mkalvans/football-stats/internal/domain/match"
	qb "github.com/mkalvans/football-stats/internal/platform/querybuilder"
)

type MatchRepository struct {
	db *sqlx.DB
}

func NewMatchRepository(db *sqlx.DB) *MatchRepository {
	return &MatchRepository{db: db}
}

func (r *MatchRepository) List(ctx context.Context) ([]match.Match, error) {
	query, args, err := qb.Select("*").From("matches").
		OrderBy("date ASC", "id ASC").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select matches query: %w", err)
	}

	var rows []matchTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select matches: %w", err)
	}

	items := make([]match.Match, 0, len(rows))
	for _, row := range rows {
		items = append(items, matchFromRow(row))
	}
	return items, nil
}

func (r *MatchRepository) GetByID(ctx context.Context, matchID int64) (match.Match, bool, error) {
	query, args, err := qb.Select("*").From("matches").
		Where(qb.Eq("id", matchID)).
		Limit(1).
		ToSQL()
	if err != nil {
		return match.Match{}, false, fmt.Errorf("build select match by id query: %w", err)
	}

	var row matchTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return match.Match{}, false, nil
		}
		return match.Match{}, false, fmt.Errorf("select match by id: %w", err)
	}

	return matchFromRow(row), true, nil
}

func (r *MatchRepository) ListRefereesByMatch(ctx context.Context, matchID int64) ([]match.Referee, error) {
	query, args, err := qb.Select("*").From("match_referees").
		Where(qb.Eq("match_id", matchID)).
		OrderBy("is_main DESC", "id ASC").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select match referees query: %w", err)
	}

	var rows []matchRefereeTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select match referees: %w", err)
	}

	items := make([]match.Referee, 0, len(rows))
	for _, row := range rows {
		items = append(items, match.Referee{
			ID:        row.ID,
			MatchID:   row.MatchID,
			RefereeID: row.RefereeID,
			IsMain:    row.IsMain,
		})
	}
	return items, nil
}
