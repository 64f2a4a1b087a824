package memory

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

// Each view narrows the Store to one domain repository interface, so a
// single Store serves both sides of the persistence contract.

// TeamView narrows a Store to the team repository contract.
type TeamView struct{ *Store }

func (s *Store) TeamRepository() TeamView { return TeamView{s} }

func (v TeamView) List(_ context.Context) ([]team.Team, error) {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return append([]team.Team(nil), v.data.teams...), nil
}

func (v TeamView) GetByID(_ context.Context, teamID int64) (team.Team, bool, error) {
	v.mu.RLock()
	defer v.mu.RUnlock()
	for _, t := range v.data.teams {
		if t.ID == teamID {
			return t, true, nil
		}
	}
	return team.Team{}, false, nil
}

// PlayerView narrows a Store to the player repository contract.
type PlayerView struct{ *Store }

func (s *Store) PlayerRepository() PlayerView { return PlayerView{s} }

func (v PlayerView) List(_ context.Context) ([]player.Player, error) {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return append([]player.Player(nil), v.data.players...), nil
}

func (v PlayerView) ListByTeam(_ context.Context, teamID int64) ([]player.Player, error) {
	v.mu.RLock()
	defer v.mu.RUnlock()
	out := make([]player.Player, 0, len(v.data.players))
	for _, p := range v.data.players {
		if p.TeamID == teamID {
			out = append(out, p)
		}
	}
	return out, nil
}

// RefereeView narrows a Store to the referee repository contract.
type RefereeView struct{ *Store }

func (s *Store) RefereeRepository() RefereeView { return RefereeView{s} }

func (v RefereeView) List(_ context.Context) ([]referee.Referee, error) {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return append([]referee.Referee(nil), v.data.referees...), nil
}

// MatchView narrows a Store to the match repository contract.
type MatchView struct{ *Store }

func (s *Store) MatchRepository() MatchView { return MatchView{s} }

func (v MatchView) List(_ context.Context) ([]match.Match, error) {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return append([]match.Match(nil), v.data.matches...), nil
}

func (v MatchView) GetByID(_ context.Context, matchID int64) (match.Match, bool, error) {
	v.mu.RLock()
	defer v.mu.RUnlock()
	for _, m := range v.data.matches {
		if m.ID == matchID {
			return m, true, nil
		}
	}
	return match.Match{}, false, nil
}

func (v MatchView) ListRefereesByMatch(_ context.Context, matchID int64) ([]match.Referee, error) {
	v.mu.RLock()
	defer v.mu.RUnlock()
	out := make([]match.Referee, 0, 3)
	for _, link := range v.data.matchReferees {
		if link.MatchID == matchID {
			out = append(out, link)
		}
	}
	return out, nil
}

// GoalView narrows a Store to the goal repository contract.
type GoalView struct{ *Store }

func (s *Store) GoalRepository() GoalView { return GoalView{s} }

func (v GoalView) List(_ context.Context) ([]goal.Goal, error) {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return append([]goal.Goal(nil), v.data.goals...), nil
}

func (v GoalView) ListByMatch(_ context.Context, matchID int64) ([]goal.Goal, error) {
	v.mu.RLock()
	defer v.mu.RUnlock()
	out := make([]goal.Goal, 0, len(v.data.goals))
	for _, g := range v.data.goals {
		if g.MatchID == matchID {
			out = append(out, g)
		}
	}
	return out, nil
}

// CardView narrows a Store to the card repository contract.
type CardView struct{ *Store }

func (s *Store) CardRepository() CardView { return CardView{s} }

func (v CardView) ListByMatch(_ context.Context, matchID int64) ([]card.Card, error) {
	v.mu.RLock()
	defer v.mu.RUnlock()
	out := make([]card.Card, 0, len(v.data.cards))
	for _, c := range v.data.cards {
		if c.MatchID == matchID {
			out = append(out, c)
		}
	}
	return out, nil
}

// SubstitutionView narrows a Store to the substitution repository contract.
type SubstitutionView struct{ *Store }

func (s *Store) SubstitutionRepository() SubstitutionView { return SubstitutionView{s} }

func (v SubstitutionView) List(_ context.Context) ([]substitution.Substitution, error) {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return append([]substitution.Substitution(nil), v.data.substitutions...), nil
}

func (v SubstitutionView) ListByMatch(_ context.Context, matchID int64) ([]substitution.Substitution, error) {
	v.mu.RLock()
	defer v.mu.RUnlock()
	out := make([]substitution.Substitution, 0, len(v.data.substitutions))
	for _, sub := range v.data.substitutions {
		if sub.MatchID == matchID {
			out = append(out, sub)
		}
	}
	return out, nil
}
