package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/mkalvans/football-stats/internal/domain/substitution"
	qb "github.com/mkalvans/football-stats/internal/platform/querybuilder"
)

type SubstitutionRepository struct {
	db *sqlx.DB
}

func NewSubstitutionRepository(db *sqlx.DB) *SubstitutionRepository {
	return &SubstitutionRepository{db: db}
}

func (r *SubstitutionRepository) List(ctx context.Context) ([]substitution.Substitution, error) {
	query, args, err := qb.Select("*").From("substitutions").
		OrderBy("id ASC").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select substitutions query: %w", err)
	}

	return r.selectSubstitutions(ctx, query, args, "select substitutions")
}

func (r *SubstitutionRepository) ListByMatch(ctx context.Context, matchID int64) ([]substitution.Substitution, error) {
	query, args, err := qb.Select("*").From("substitutions").
		Where(qb.Eq("match_id", matchID)).
		OrderBy("id ASC").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select substitutions by match query: %w", err)
	}

	return r.selectSubstitutions(ctx, query, args, "select substitutions by match")
}

func (r *SubstitutionRepository) selectSubstitutions(ctx context.Context, query string, args []any, op string) ([]substitution.Substitution, error) {
	var rows []substitutionTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	items := make([]substitution.Substitution, 0, len(rows))
	for _, row := range rows {
		items = append(items, substitution.Substitution{
			ID:          row.ID,
			MatchID:     row.MatchID,
			TeamID:      row.TeamID,
			PlayerOutID: nullInt64ToPtr(row.PlayerOutID),
			PlayerInID:  nullInt64ToPtr(row.PlayerInID),
			Time:        row.Time,
		})
	}
	return items, nil
}
