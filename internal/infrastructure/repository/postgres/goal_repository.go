package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/mkalvans/football-stats/internal/domain/goal"
	qb "github.com/mkalvans/football-stats/internal/platform/querybuilder"
)

type GoalRepository struct {
	db *sqlx.DB
}

func NewGoalRepository(db *sqlx.DB) *GoalRepository {
	return &GoalRepository{db: db}
}

func (r *GoalRepository) List(ctx context.Context) ([]goal.Goal, error) {
	query, args, err := qb.Select("*").From("goals").
		OrderBy("id ASC").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select goals query: %w", err)
	}

	return r.selectGoals(ctx, query, args, "select goals")
}

func (r *GoalRepository) ListByMatch(ctx context.Context, matchID int64) ([]goal.Goal, error) {
	query, args, err := qb.Select("*").From("goals").
		Where(qb.Eq("match_id", matchID)).
		OrderBy("id ASC").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select goals by match query: %w", err)
	}

	return r.selectGoals(ctx, query, args, "select goals by match")
}

func (r *GoalRepository) selectGoals(ctx context.Context, query string, args []any, op string) ([]goal.Goal, error) {
	var rows []goalTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	items := make([]goal.Goal, 0, len(rows))
	for _, row := range rows {
		items = append(items, goal.Goal{
			ID:        row.ID,
			MatchID:   row.MatchID,
			TeamID:    row.TeamID,
			ScorerID:  nullInt64ToPtr(row.ScorerID),
			Assist1ID: nullInt64ToPtr(row.Assist1ID),
			Assist2ID: nullInt64ToPtr(row.Assist2ID),
			Time:      row.Time,
			IsPenalty: row.IsPenalty,
		})
	}
	return items, nil
}
