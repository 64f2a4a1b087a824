package usecase

import (
	"context"
	"fmt"

	"github.com/sourcegraph/conc/pool"

	"github.com/mkalvans/football-stats/internal/domain/populargoals"
	"github.com/mkalvans/football-stats/internal/domain/standings"
	"github.com/mkalvans/football-stats/internal/domain/substats"
	"github.com/mkalvans/football-stats/internal/domain/topscorers"
)

// StatsSnapshot bundles the four tournament statistics in one response.
type StatsSnapshot struct {
	Standings     []standings.Row      `json:"standings"`
	TopScorers    []topscorers.Entry   `json:"top_scorers"`
	Substitutions []substats.Entry     `json:"substitutions"`
	PopularGoals  []populargoals.Entry `json:"popular_goals"`
}

// StatsService fans the four calculators out concurrently. They are
// read-only and share no mutable state, so no coordination is needed
// beyond collecting results.
type StatsService struct {
	standings *StandingsService
	scorers   *TopScorersService
	subs      *SubstitutionService
	popular   *PopularGoalsService
}

func NewStatsService(standings *StandingsService, scorers *TopScorersService, subs *SubstitutionService, popular *PopularGoalsService) *StatsService {
	return &StatsService{
		standings: standings,
		scorers:   scorers,
		subs:      subs,
		popular:   popular,
	}
}

func (s *StatsService) Snapshot(ctx context.Context, limit int) (StatsSnapshot, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StatsService.Snapshot")
	defer span.End()

	var snapshot StatsSnapshot
	p := pool.New().WithErrors().WithContext(ctx)

	p.Go(func(ctx context.Context) error {
		rows, err := s.standings.Table(ctx)
		if err != nil {
			return fmt.Errorf("standings: %w", err)
		}
		snapshot.Standings = rows
		return nil
	})
	p.Go(func(ctx context.Context) error {
		entries, err := s.scorers.Rank(ctx, limit)
		if err != nil {
			return fmt.Errorf("top scorers: %w", err)
		}
		snapshot.TopScorers = entries
		return nil
	})
	p.Go(func(ctx context.Context) error {
		entries, err := s.subs.Rank(ctx, limit)
		if err != nil {
			return fmt.Errorf("substitutions: %w", err)
		}
		snapshot.Substitutions = entries
		return nil
	})
	p.Go(func(ctx context.Context) error {
		entries, err := s.popular.Rank(ctx, limit)
		if err != nil {
			return fmt.Errorf("popular goals: %w", err)
		}
		snapshot.PopularGoals = entries
		return nil
	})

	if err := p.Wait(); err != nil {
		return StatsSnapshot{}, err
	}
	return snapshot, nil
}
