package postgres

import (
	"database/sql"
	"time"
)

type teamTableModel struct {
	ID        int64     `db:"id"`
	Name      string    `db:"name"`
	CreatedAt time.Time `db:"created_at"`
}

type playerTableModel struct {
	ID        int64     `db:"id"`
	TeamID    int64     `db:"team_id"`
	Number    int       `db:"number"`
	FirstName string    `db:"first_name"`
	LastName  string    `db:"last_name"`
	Role      string    `db:"role"`
	CreatedAt time.Time `db:"created_at"`
}

type refereeTableModel struct {
	ID        int64     `db:"id"`
	FirstName string    `db:"first_name"`
	LastName  string    `db:"last_name"`
	CreatedAt time.Time `db:"created_at"`
}

type matchTableModel struct {
	ID         int64     `db:"id"`
	Date       time.Time `db:"date"`
	Venue      string    `db:"venue"`
	Spectators int       `db:"spectators"`
	HomeTeamID int64     `db:"home_team_id"`
	AwayTeamID int64     `db:"away_team_id"`
	CreatedAt  time.Time `db:"created_at"`
}

type matchRefereeTableModel struct {
	ID        int64 `db:"id"`
	MatchID   int64 `db:"match_id"`
	RefereeID int64 `db:"referee_id"`
	IsMain    bool  `db:"is_main"`
}

type goalTableModel struct {
	ID        int64         `db:"id"`
	MatchID   int64         `db:"match_id"`
	TeamID    int64         `db:"team_id"`
	ScorerID  sql.NullInt64 `db:"scorer_id"`
	Assist1ID sql.NullInt64 `db:"assist1_id"`
	Assist2ID sql.NullInt64 `db:"assist2_id"`
	Time      string        `db:"time"`
	IsPenalty bool          `db:"is_penalty"`
}

type cardTableModel struct {
	ID       int64         `db:"id"`
	MatchID  int64         `db:"match_id"`
	TeamID   int64         `db:"team_id"`
	PlayerID sql.NullInt64 `db:"player_id"`
	Time     string        `db:"time"`
	IsRed    bool          `db:"is_red"`
}

type substitutionTableModel struct {
	ID          int64         `db:"id"`
	MatchID     int64         `db:"match_id"`
	TeamID      int64         `db:"team_id"`
	PlayerOutID sql.NullInt64 `db:"player_out_id"`
	PlayerInID  sql.NullInt64 `db:"player_in_id"`
	Time        string        `db:"time"`
}
