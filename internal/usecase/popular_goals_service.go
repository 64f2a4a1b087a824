package usecase

import (
	"context"
	"fmt"
	"sort"

	"github.com/mkalvans/football-stats/internal/domain/goal"
	"github.com/mkalvans/football-stats/internal/domain/match"
	"github.com/mkalvans/football-stats/internal/domain/player"
	"github.com/mkalvans/football-stats/internal/domain/populargoals"
	"github.com/mkalvans/football-stats/internal/domain/team"
)

// PopularGoalsService ranks individual goals by the attendance of the
// match they were scored in.
type PopularGoalsService struct {
	goalRepo   goal.Repository
	matchRepo  match.Repository
	playerRepo player.Repository
	teamRepo   team.Repository
}

func NewPopularGoalsService(goalRepo goal.Repository, matchRepo match.Repository, playerRepo player.Repository, teamRepo team.Repository) *PopularGoalsService {
	return &PopularGoalsService{
		goalRepo:   goalRepo,
		matchRepo:  matchRepo,
		playerRepo: playerRepo,
		teamRepo:   teamRepo,
	}
}

// Rank returns up to limit goals ordered by spectator count, descending.
// Attendance ties keep stable goal listing order. Goals whose scorer slot
// is null are left out, matching the scorer-attribution the result needs.
func (s *PopularGoalsService) Rank(ctx context.Context, limit int) ([]populargoals.Entry, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PopularGoalsService.Rank")
	defer span.End()

	if limit <= 0 {
		limit = DefaultStatsLimit
	}

	goals, err := s.goalRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list goals: %w", err)
	}
	matches, err := s.matchRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list matches: %w", err)
	}
	players, err := s.playerRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list players: %w", err)
	}
	teams, err := s.teamRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list teams: %w", err)
	}

	matchByID := make(map[int64]match.Match, len(matches))
	for _, m := range matches {
		matchByID[m.ID] = m
	}
	playerByID := make(map[int64]player.Player, len(players))
	for _, p := range players {
		playerByID[p.ID] = p
	}
	teamNames := make(map[int64]string, len(teams))
	for _, t := range teams {
		teamNames[t.ID] = t.Name
	}

	entries := make([]populargoals.Entry, 0, len(goals))
	for _, g := range goals {
		if g.ScorerID == nil {
			continue
		}
		scorer, ok := playerByID[*g.ScorerID]
		if !ok {
			continue
		}
		m, ok := matchByID[g.MatchID]
		if !ok {
			continue
		}
		entries = append(entries, populargoals.Entry{
			GoalID:     g.ID,
			ScorerName: scorer.FullName(),
			TeamName:   teamNames[g.TeamID],
			Venue:      m.Venue,
			Spectators: m.Spectators,
			Time:       g.Time,
			IsPenalty:  g.IsPenalty,
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Spectators > entries[j].Spectators
	})

	if len(entries) > limit {
		entries = entries[:limit]
	}
	return entries, nil
}
