// Package postgres implements the persistence contracts over sqlx.
package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/mkalvans/football-stats/internal/domain/card"
	"github.com/mkalvans/football-stats/internal/domain/goal"
	"github.com/mkalvans/football-stats/internal/domain/match"
	"github.com/mkalvans/football-stats/internal/domain/player"
	"github.com/mkalvans/football-stats/internal/domain/referee"
	"github.com/mkalvans/football-stats/internal/domain/substitution"
	"github.com/mkalvans/football-stats/internal/domain/team"
	qb "github.com/mkalvans/football-stats/internal/platform/querybuilder"
	"github.com/mkalvans/football-stats/internal/usecase"
)

// Store hands out one database transaction per ingested document.
type Store struct {
	db *sqlx.DB
}

func NewStore(db *sqlx.DB) *Store {
	return &Store{db: db}
}

func (s *Store) Begin(ctx context.Context) (usecase.MatchTx, error) {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	return &matchTx{tx: tx}, nil
}

type matchTx struct {
	tx *sqlx.Tx
}

func (t *matchTx) Commit() error {
	return t.tx.Commit()
}

// Rollback after Commit returns sql.ErrTxDone, which callers running it
// from a defer do not care about.
func (t *matchTx) Rollback() error {
	_ = t.tx.Rollback()
	return nil
}

func (t *matchTx) FindMatchByKey(ctx context.Context, key match.Key) (match.Match, bool, error) {
	query, args, err := qb.Select("m.id", "m.date", "m.venue", "m.spectators", "m.home_team_id", "m.away_team_id", "m.created_at").
		From("matches m JOIN teams home ON home.id = m.home_team_id JOIN teams away ON away.id = m.away_team_id").
		Where(
			qb.Expr("m.date = ?", key.Date),
			qb.Expr("m.venue = ?", key.Venue),
			qb.Expr("home.name = ?", key.HomeTeam),
			qb.Expr("away.name = ?", key.AwayTeam),
		).
		Limit(1).
		ToSQL()
	if err != nil {
		return match.Match{}, false, fmt.Errorf("build find match by key query: %w", err)
	}

	var row matchTableModel
	if err := t.tx.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return match.Match{}, false, nil
		}
		return match.Match{}, false, fmt.Errorf("find match by key: %w", err)
	}

	return matchFromRow(row), true, nil
}

func (t *matchTx) FindTeamByName(ctx context.Context, name string) (team.Team, bool, error) {
	query, args, err := qb.Select("*").From("teams").
		Where(qb.Eq("name", name)).
		Limit(1).
		ToSQL()
	if err != nil {
		return team.Team{}, false, fmt.Errorf("build find team query: %w", err)
	}

	var row teamTableModel
	if err := t.tx.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return team.Team{}, false, nil
		}
		return team.Team{}, false, fmt.Errorf("find team by name: %w", err)
	}

	return team.Team{ID: row.ID, Name: row.Name}, true, nil
}

func (t *matchTx) CreateTeam(ctx context.Context, item team.Team) (team.Team, error) {
	type insertModel struct {
		Name string `db:"name"`
	}
	query, args, err := qb.InsertModel("teams", insertModel{Name: item.Name}, "RETURNING id")
	if err != nil {
		return team.Team{}, fmt.Errorf("build insert team query: %w", err)
	}

	if err := t.tx.GetContext(ctx, &item.ID, query, args...); err != nil {
		return team.Team{}, fmt.Errorf("insert team: %w", err)
	}
	return item, nil
}

func (t *matchTx) CreatePlayer(ctx context.Context, item player.Player) (player.Player, error) {
	type insertModel struct {
		TeamID    int64  `db:"team_id"`
		Number    int    `db:"number"`
		FirstName string `db:"first_name"`
		LastName  string `db:"last_name"`
		Role      string `db:"role"`
	}
	query, args, err := qb.InsertModel("players", insertModel{
		TeamID:    item.TeamID,
		Number:    item.Number,
		FirstName: item.FirstName,
		LastName:  item.LastName,
		Role:      string(item.Role),
	}, "RETURNING id")
	if err != nil {
		return player.Player{}, fmt.Errorf("build insert player query: %w", err)
	}

	if err := t.tx.GetContext(ctx, &item.ID, query, args...); err != nil {
		return player.Player{}, fmt.Errorf("insert player: %w", err)
	}
	return item, nil
}

func (t *matchTx) FindPlayerByNumber(ctx context.Context, teamID int64, number int) (player.Player, bool, error) {
	query, args, err := qb.Select("*").From("players").
		Where(
			qb.Eq("team_id", teamID),
			qb.Eq("number", number),
		).
		Limit(1).
		ToSQL()
	if err != nil {
		return player.Player{}, false, fmt.Errorf("build find player query: %w", err)
	}

	var row playerTableModel
	if err := t.tx.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return player.Player{}, false, nil
		}
		return player.Player{}, false, fmt.Errorf("find player by number: %w", err)
	}

	return playerFromRow(row), true, nil
}

func (t *matchTx) CreateMatch(ctx context.Context, item match.Match) (match.Match, error) {
	type insertModel struct {
		Date       time.Time `db:"date"`
		Venue      string    `db:"venue"`
		Spectators int       `db:"spectators"`
		HomeTeamID int64     `db:"home_team_id"`
		AwayTeamID int64     `db:"away_team_id"`
	}
	query, args, err := qb.InsertModel("matches", insertModel{
		Date:       item.Date,
		Venue:      item.Venue,
		Spectators: item.Spectators,
		HomeTeamID: item.HomeTeamID,
		AwayTeamID: item.AwayTeamID,
	}, "RETURNING id")
	if err != nil {
		return match.Match{}, fmt.Errorf("build insert match query: %w", err)
	}

	if err := t.tx.GetContext(ctx, &item.ID, query, args...); err != nil {
		return match.Match{}, fmt.Errorf("insert match: %w", err)
	}
	return item, nil
}

func (t *matchTx) FindRefereeByName(ctx context.Context, firstName, lastName string) (referee.Referee, bool, error) {
	query, args, err := qb.Select("*").From("referees").
		Where(
			qb.Eq("first_name", firstName),
			qb.Eq("last_name", lastName),
		).
		Limit(1).
		ToSQL()
	if err != nil {
		return referee.Referee{}, false, fmt.Errorf("build find referee query: %w", err)
	}

	var row refereeTableModel
	if err := t.tx.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return referee.Referee{}, false, nil
		}
		return referee.Referee{}, false, fmt.Errorf("find referee by name: %w", err)
	}

	return referee.Referee{ID: row.ID, FirstName: row.FirstName, LastName: row.LastName}, true, nil
}

func (t *matchTx) CreateReferee(ctx context.Context, item referee.Referee) (referee.Referee, error) {
	type insertModel struct {
		FirstName string `db:"first_name"`
		LastName  string `db:"last_name"`
	}
	query, args, err := qb.InsertModel("referees", insertModel{
		FirstName: item.FirstName,
		LastName:  item.LastName,
	}, "RETURNING id")
	if err != nil {
		return referee.Referee{}, fmt.Errorf("build insert referee query: %w", err)
	}

	if err := t.tx.GetContext(ctx, &item.ID, query, args...); err != nil {
		return referee.Referee{}, fmt.Errorf("insert referee: %w", err)
	}
	return item, nil
}

func (t *matchTx) CreateMatchReferee(ctx context.Context, link match.Referee) error {
	type insertModel struct {
		MatchID   int64 `db:"match_id"`
		RefereeID int64 `db:"referee_id"`
		IsMain    bool  `db:"is_main"`
	}
	query, args, err := qb.InsertModel("match_referees", insertModel{
		MatchID:   link.MatchID,
		RefereeID: link.RefereeID,
		IsMain:    link.IsMain,
	}, "")
	if err != nil {
		return fmt.Errorf("build insert match referee query: %w", err)
	}

	if _, err := t.tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert match referee: %w", err)
	}
	return nil
}

func (t *matchTx) CreateGoal(ctx context.Context, item goal.Goal) (goal.Goal, error) {
	type insertModel struct {
		MatchID   int64         `db:"match_id"`
		TeamID    int64         `db:"team_id"`
		ScorerID  sql.NullInt64 `db:"scorer_id"`
		Assist1ID sql.NullInt64 `db:"assist1_id"`
		Assist2ID sql.NullInt64 `db:"assist2_id"`
		Time      string        `db:"time"`
		IsPenalty bool          `db:"is_penalty"`
	}
	query, args, err := qb.InsertModel("goals", insertModel{
		MatchID:   item.MatchID,
		TeamID:    item.TeamID,
		ScorerID:  ptrToNullInt64(item.ScorerID),
		Assist1ID: ptrToNullInt64(item.Assist1ID),
		Assist2ID: ptrToNullInt64(item.Assist2ID),
		Time:      item.Time,
		IsPenalty: item.IsPenalty,
	}, "RETURNING id")
	if err != nil {
		return goal.Goal{}, fmt.Errorf("build insert goal query: %w", err)
	}

	if err := t.tx.GetContext(ctx, &item.ID, query, args...); err != nil {
		return goal.Goal{}, fmt.Errorf("insert goal: %w", err)
	}
	return item, nil
}

func (t *matchTx) CreateCard(ctx context.Context, item card.Card) (card.Card, error) {
	type insertModel struct {
		MatchID  int64         `db:"match_id"`
		TeamID   int64         `db:"team_id"`
		PlayerID sql.NullInt64 `db:"player_id"`
		Time     string        `db:"time"`
		IsRed    bool          `db:"is_red"`
	}
	query, args, err := qb.InsertModel("cards", insertModel{
		MatchID:  item.MatchID,
		TeamID:   item.TeamID,
		PlayerID: ptrToNullInt64(item.PlayerID),
		Time:     item.Time,
		IsRed:    item.IsRed,
	}, "RETURNING id")
	if err != nil {
		return card.Card{}, fmt.Errorf("build insert card query: %w", err)
	}

	if err := t.tx.GetContext(ctx, &item.ID, query, args...); err != nil {
		return card.Card{}, fmt.Errorf("insert card: %w", err)
	}
	return item, nil
}

func (t *matchTx) CreateSubstitution(ctx context.Context, item substitution.Substitution) (substitution.Substitution, error) {
	type insertModel struct {
		MatchID     int64         `db:"match_id"`
		TeamID      int64         `db:"team_id"`
		PlayerOutID sql.NullInt64 `db:"player_out_id"`
		PlayerInID  sql.NullInt64 `db:"player_in_id"`
		Time        string        `db:"time"`
	}
	query, args, err := qb.InsertModel("substitutions", insertModel{
		MatchID:     item.MatchID,
		TeamID:      item.TeamID,
		PlayerOutID: ptrToNullInt64(item.PlayerOutID),
		PlayerInID:  ptrToNullInt64(item.PlayerInID),
		Time:        item.Time,
	}, "RETURNING id")
	if err != nil {
		return substitution.Substitution{}, fmt.Errorf("build insert substitution query: %w", err)
	}

	if err := t.tx.GetContext(ctx, &item.ID, query, args...); err != nil {
		return substitution.Substitution{}, fmt.Errorf("insert substitution: %w", err)
	}
	return item, nil
}

func matchFromRow(row matchTableModel) match.Match {
	return match.Match{
		ID:         row.ID,
		Date:       row.Date,
		Venue:      row.Venue,
		Spectators: row.Spectators,
		HomeTeamID: row.HomeTeamID,
		AwayTeamID: row.AwayTeamID,
	}
}

func playerFromRow(row playerTableModel) player.Player {
	return player.Player{
		ID:        row.ID,
		TeamID:    row.TeamID,
		Number:    row.Number,
		FirstName: row.FirstName,
		LastName:  row.LastName,
		Role:      player.Role(row.Role),
	}
}
