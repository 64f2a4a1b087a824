package usecase

import (
	"context"
	"fmt"
	"sort"

	"github.com/mkalvans/football-stats/internal/domain/player"
	"github.com/mkalvans/football-stats/internal/domain/substats"
	"github.com/mkalvans/football-stats/internal/domain/substitution"
	"github.com/mkalvans/football-stats/internal/domain/team"
)

// SubstitutionService ranks players by how often they were taken off.
type SubstitutionService struct {
	subRepo    substitution.Repository
	playerRepo player.Repository
	teamRepo   team.Repository
}

func NewSubstitutionService(subRepo substitution.Repository, playerRepo player.Repository, teamRepo team.Repository) *SubstitutionService {
	return &SubstitutionService{
		subRepo:    subRepo,
		playerRepo: playerRepo,
		teamRepo:   teamRepo,
	}
}

// Rank returns up to limit players ordered by times substituted out,
// descending. Players never substituted do not appear; substitutions with
// a null player-out slot contribute nothing.
func (s *SubstitutionService) Rank(ctx context.Context, limit int) ([]substats.Entry, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SubstitutionService.Rank")
	defer span.End()

	if limit <= 0 {
		limit = DefaultStatsLimit
	}

	subs, err := s.subRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list substitutions: %w", err)
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

	subbedOut := make(map[int64]int)
	for _, sub := range subs {
		if sub.PlayerOutID == nil {
			continue
		}
		subbedOut[*sub.PlayerOutID]++
	}

	entries := make([]substats.Entry, 0, len(subbedOut))
	for _, p := range players {
		count := subbedOut[p.ID]
		if count == 0 {
			continue
		}
		entries = append(entries, substats.Entry{
			PlayerID:       p.ID,
			PlayerName:     p.FullName(),
			TeamName:       teamNames[p.TeamID],
			Role:           p.Role.Label(),
			TimesSubbedOut: count,
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].TimesSubbedOut > entries[j].TimesSubbedOut
	})

	if len(entries) > limit {
		entries = entries[:limit]
	}
	return entries, nil
}
