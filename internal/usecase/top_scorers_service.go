package usecase

import (
	"context"
	"fmt"
	"sort"

	"github.com/mkalvans/football-stats/internal/domain/goal"
	"github.com/mkalvans/football-stats/internal/domain/player"
	"github.com/mkalvans/football-stats/internal/domain/team"
	"github.com/mkalvans/football-stats/internal/domain/topscorers"
)

// DefaultStatsLimit caps ranked statistics results when the caller does
// not ask for a specific size.
const DefaultStatsLimit = 10

// TopScorersService ranks players by combined goal and assist counts.
type TopScorersService struct {
	goalRepo   goal.Repository
	playerRepo player.Repository
	teamRepo   team.Repository
}

func NewTopScorersService(goalRepo goal.Repository, playerRepo player.Repository, teamRepo team.Repository) *TopScorersService {
	return &TopScorersService{
		goalRepo:   goalRepo,
		playerRepo: playerRepo,
		teamRepo:   teamRepo,
	}
}

// Rank returns up to limit players ordered by goals, then assists, both
// descending. Players with no goals and no assists are left out entirely;
// a pure assister still appears. Goal rows whose player slots are null
// contribute nothing.
func (s *TopScorersService) Rank(ctx context.Context, limit int) ([]topscorers.Entry, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TopScorersService.Rank")
	defer span.End()

	if limit <= 0 {
		limit = DefaultStatsLimit
	}

	goals, err := s.goalRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list goals: %w", err)
	}
	players, err := s.playerRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list players: %w", err)
	}
	teams, err := s.teamRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list teams: %w", err)
	}

	teamNames := make(map[int64]string, len(teams))
	for _, t := range teams {
		teamNames[t.ID] = t.Name
	}

	type tally struct {
		goals   int
		assists int
	}
	tallies := make(map[int64]*tally)
	count := func(playerID *int64, goals, assists int) {
		if playerID == nil {
			return
		}
		entry := tallies[*playerID]
		if entry == nil {
			entry = &tally{}
			tallies[*playerID] = entry
		}
		entry.goals += goals
		entry.assists += assists
	}

	for _, g := range goals {
		count(g.ScorerID, 1, 0)
		count(g.Assist1ID, 0, 1)
		count(g.Assist2ID, 0, 1)
	}

	entries := make([]topscorers.Entry, 0, len(tallies))
	for _, p := range players {
		t, ok := tallies[p.ID]
		if !ok || t.goals+t.assists == 0 {
			continue
		}
		entries = append(entries, topscorers.Entry{
			PlayerID:   p.ID,
			PlayerName: p.FullName(),
			TeamName:   teamNames[p.TeamID],
			Goals:      t.goals,
			Assists:    t.assists,
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].Goals != entries[j].Goals {
			return entries[i].Goals > entries[j].Goals
		}
		return entries[i].Assists > entries[j].Assists
	})

	if len(entries) > limit {
		entries = entries[:limit]
	}
	return entries, nil
}
