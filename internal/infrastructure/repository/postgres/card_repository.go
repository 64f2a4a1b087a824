package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/mkalvans/football-stats/internal/domain/card"
	qb "github.com/mkalvans/football-stats/internal/platform/querybuilder"
)

type CardRepository struct {
	db *sqlx.DB
}

func NewCardRepository(db *sqlx.DB) *CardRepository {
	return &CardRepository{db: db}
}

func (r *CardRepository) ListByMatch(ctx context.Context, matchID int64) ([]card.Card, error) {
	query, args, err := qb.Select("*").From("cards").
		Where(qb.Eq("match_id", matchID)).
		OrderBy("id ASC").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select cards by match query: %w", err)
	}

	var rows []cardTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select cards by match: %w", err)
	}

	items := make([]card.Card, 0, len(rows))
	for _, row := range rows {
		items = append(items, card.Card{
			ID:       row.ID,
			MatchID:  row.MatchID,
			TeamID:   row.TeamID,
			PlayerID: nullInt64ToPtr(row.PlayerID),
			Time:     row.Time,
			IsRed:    row.IsRed,
		})
	}
	return items, nil
}
