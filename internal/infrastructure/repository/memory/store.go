// Package memory holds the tournament data in process. It backs tests and
// the no-database demo mode with the same contracts the Postgres
// repositories implement.
package memory

import (
	"context"
	"sync"

	"github.com/mkalvans/football-stats/internal/domain/card"
	"github.com/mkalvans/football-stats/internal/domain/goal"
	"github.com/mkalvans/football-stats/internal/domain/match"
	"github.com/mkalvans/football-stats/internal/domain/player"
	"github.com/mkalvans/football-stats/internal/domain/referee"
	"github.com/mkalvans/football-stats/internal/domain/substitution"
	"github.com/mkalvans/football-stats/internal/domain/team"
	"github.com/mkalvans/football-stats/internal/usecase"
)

type storeData struct {
	teams         []team.Team
	players       []player.Player
	referees      []referee.Referee
	matches       []match.Match
	matchReferees []match.Referee
	goals         []goal.Goal
	cards         []card.Card
	substitutions []substitution.Substitution
	nextID        int64
}

func (d storeData) clone() storeData {
	return storeData{
		teams:         append([]team.Team(nil), d.teams...),
		players:       append([]player.Player(nil), d.players...),
		referees:      append([]referee.Referee(nil), d.referees...),
		matches:       append([]match.Match(nil), d.matches...),
		matchReferees: append([]match.Referee(nil), d.matchReferees...),
		goals:         append([]goal.Goal(nil), d.goals...),
		cards:         append([]card.Card(nil), d.cards...),
		substitutions: append([]substitution.Substitution(nil), d.substitutions...),
		nextID:        d.nextID,
	}
}

// Store keeps all rows in insertion order, which doubles as the stable
// order the statistics contracts rely on.
type Store struct {
	mu   sync.RWMutex
	data storeData
}

func NewStore() *Store {
	return &Store{data: storeData{nextID: 1}}
}

// Begin snapshots the current data. The transaction mutates its private
// copy and swaps it in on Commit, so an abandoned or rolled-back
// transaction leaves nothing behind. Ingestion is single-writer; two
// in-flight transactions would lose the first writer's rows.
func (s *Store) Begin(_ context.Context) (usecase.MatchTx, error) {
	s.mu.RLock()
	snapshot := s.data.clone()
	s.mu.RUnlock()

	return &memTx{store: s, data: snapshot}, nil
}

type memTx struct {
	store *Store
	data  storeData
	done  bool
}

func (tx *memTx) nextID() int64 {
	id := tx.data.nextID
	tx.data.nextID++
	return id
}

func (tx *memTx) Commit() error {
	if tx.done {
		return nil
	}
	tx.done = true
	tx.store.mu.Lock()
	tx.store.data = tx.data
	tx.store.mu.Unlock()
	return nil
}

func (tx *memTx) Rollback() error {
	tx.done = true
	return nil
}

func (tx *memTx) FindMatchByKey(_ context.Context, key match.Key) (match.Match, bool, error) {
	teamIDs := make(map[string]int64, 2)
	for _, t := range tx.data.teams {
		teamIDs[t.Name] = t.ID
	}

	for _, m := range tx.data.matches {
		if m.Date.Equal(key.Date) && m.Venue == key.Venue &&
			m.HomeTeamID == teamIDs[key.HomeTeam] && m.AwayTeamID == teamIDs[key.AwayTeam] {
			return m, true, nil
		}
	}
	return match.Match{}, false, nil
}

func (tx *memTx) FindTeamByName(_ context.Context, name string) (team.Team, bool, error) {
	for _, t := range tx.data.teams {
		if t.Name == name {
			return t, true, nil
		}
	}
	return team.Team{}, false, nil
}

func (tx *memTx) CreateTeam(_ context.Context, t team.Team) (team.Team, error) {
	t.ID = tx.nextID()
	tx.data.teams = append(tx.data.teams, t)
	return t, nil
}

func (tx *memTx) CreatePlayer(_ context.Context, p player.Player) (player.Player, error) {
	p.ID = tx.nextID()
	tx.data.players = append(tx.data.players, p)
	return p, nil
}

func (tx *memTx) FindPlayerByNumber(_ context.Context, teamID int64, number int) (player.Player, bool, error) {
	for _, p := range tx.data.players {
		if p.TeamID == teamID && p.Number == number {
			return p, true, nil
		}
	}
	return player.Player{}, false, nil
}

func (tx *memTx) CreateMatch(_ context.Context, m match.Match) (match.Match, error) {
	m.ID = tx.nextID()
	tx.data.matches = append(tx.data.matches, m)
	return m, nil
}

func (tx *memTx) FindRefereeByName(_ context.Context, firstName, lastName string) (referee.Referee, bool, error) {
	for _, r := range tx.data.referees {
		if r.FirstName == firstName && r.LastName == lastName {
			return r, true, nil
		}
	}
	return referee.Referee{}, false, nil
}

func (tx *memTx) CreateReferee(_ context.Context, r referee.Referee) (referee.Referee, error) {
	r.ID = tx.nextID()
	tx.data.referees = append(tx.data.referees, r)
	return r, nil
}

func (tx *memTx) CreateMatchReferee(_ context.Context, link match.Referee) error {
	link.ID = tx.nextID()
	tx.data.matchReferees = append(tx.data.matchReferees, link)
	return nil
}

func (tx *memTx) CreateGoal(_ context.Context, g goal.Goal) (goal.Goal, error) {
	g.ID = tx.nextID()
	tx.data.goals = append(tx.data.goals, g)
	return g, nil
}

func (tx *memTx) CreateCard(_ context.Context, c card.Card) (card.Card, error) {
	c.ID = tx.nextID()
	tx.data.cards = append(tx.data.cards, c)
	return c, nil
}

func (tx *memTx) CreateSubstitution(_ context.Context, s substitution.Substitution) (substitution.Substitution, error) {
	s.ID = tx.nextID()
	tx.data.substitutions = append(tx.data.substitutions, s)
	return s, nil
}
