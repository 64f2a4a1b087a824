package usecase

import (
	"context"

	"github.com/mkalvans/football-stats/internal/domain/card"
	"github.com/mkalvans/football-stats/internal/domain/goal"
	"github.com/mkalvans/football-stats/internal/domain/match"
	"github.com/mkalvans/football-stats/internal/domain/player"
	"github.com/mkalvans/football-stats/internal/domain/referee"
	"github.com/mkalvans/football-stats/internal/domain/substitution"
	"github.com/mkalvans/football-stats/internal/domain/team"
)

// MatchStore is the transactional persistence surface the ingest side
// needs. One document maps to one MatchTx.
type MatchStore interface {
	Begin(ctx context.Context) (MatchTx, error)
}

// MatchTx is a unit of work over the normalized schema. Create methods
// return the row with its durable identifier assigned. Rollback after a
// successful Commit must be a no-op so it can sit in a defer.
type MatchTx interface {
	FindMatchByKey(ctx context.Context, key match.Key) (match.Match, bool, error)
	FindTeamByName(ctx context.Context, name string) (team.Team, bool, error)
	CreateTeam(ctx context.Context, t team.Team) (team.Team, error)
	CreatePlayer(ctx context.Context, p player.Player) (player.Player, error)
	FindPlayerByNumber(ctx context.Context, teamID int64, number int) (player.Player, bool, error)
	CreateMatch(ctx context.Context, m match.Match) (match.Match, error)
	FindRefereeByName(ctx context.Context, firstName, lastName string) (referee.Referee, bool, error)
	CreateReferee(ctx context.Context, r referee.Referee) (referee.Referee, error)
	CreateMatchReferee(ctx context.Context, link match.Referee) error
	CreateGoal(ctx context.Context, g goal.Goal) (goal.Goal, error)
	CreateCard(ctx context.Context, c card.Card) (card.Card, error)
	CreateSubstitution(ctx context.Context, s substitution.Substitution) (substitution.Substitution, error)
	Commit() error
	Rollback() error
}
