package usecase

import (
	"context"
	"fmt"
	"sort"

	"github.com/mkalvans/football-stats/internal/domain/gametime"
	"github.com/mkalvans/football-stats/internal/domain/goal"
	"github.com/mkalvans/football-stats/internal/domain/match"
	"github.com/mkalvans/football-stats/internal/domain/standings"
	"github.com/mkalvans/football-stats/internal/domain/team"
)

// Tournament point scheme. There is no draw outcome: a tie counts as a
// loss under whichever time regime the match finished in.
const (
	pointsWinRegulation  = 5
	pointsWinOvertime    = 3
	pointsLossOvertime   = 2
	pointsLossRegulation = 1
)

// StandingsService computes the tournament table from individually
// attributed goal rows. It performs read-only queries and holds no state.
type StandingsService struct {
	teamRepo  team.Repository
	matchRepo match.Repository
	goalRepo  goal.Repository
}

func NewStandingsService(teamRepo team.Repository, matchRepo match.Repository, goalRepo goal.Repository) *StandingsService {
	return &StandingsService{
		teamRepo:  teamRepo,
		matchRepo: matchRepo,
		goalRepo:  goalRepo,
	}
}

// Table returns one row per team ordered by points, then goal difference,
// both descending. Order beyond that composite key is the stable team
// listing order.
func (s *StandingsService) Table(ctx context.Context) ([]standings.Row, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StandingsService.Table")
	defer span.End()

	teams, err := s.teamRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list teams: %w", err)
	}
	matches, err := s.matchRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list matches: %w", err)
	}
	goals, err := s.goalRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list goals: %w", err)
	}

	goalsByMatch := make(map[int64][]goal.Goal)
	overtimeMatch := make(map[int64]bool)
	for _, g := range goals {
		goalsByMatch[g.MatchID] = append(goalsByMatch[g.MatchID], g)
		// A goal past regulation marks the whole match as overtime; the
		// source carries no explicit extra-time flag.
		if gametime.IsOvertime(g.Time) {
			overtimeMatch[g.MatchID] = true
		}
	}

	rows := make([]standings.Row, 0, len(teams))
	for _, t := range teams {
		row := standings.Row{TeamID: t.ID, TeamName: t.Name}

		for _, m := range matches {
			if m.HomeTeamID != t.ID && m.AwayTeamID != t.ID {
				continue
			}

			goalsFor, goalsAgainst := 0, 0
			for _, g := range goalsByMatch[m.ID] {
				if g.TeamID == t.ID {
					goalsFor++
				} else {
					goalsAgainst++
				}
			}

			row.MatchesPlayed++
			row.GoalsFor += goalsFor
			row.GoalsAgainst += goalsAgainst

			won := goalsFor > goalsAgainst
			switch {
			case won && overtimeMatch[m.ID]:
				row.WinsOvertime++
				row.Points += pointsWinOvertime
			case won:
				row.WinsRegular++
				row.Points += pointsWinRegulation
			case overtimeMatch[m.ID]:
				row.LossesOvertime++
				row.Points += pointsLossOvertime
			default:
				row.LossesRegular++
				row.Points += pointsLossRegulation
			}
		}

		row.GoalDifference = row.GoalsFor - row.GoalsAgainst
		rows = append(rows, row)
	}

	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].Points != rows[j].Points {
			return rows[i].Points > rows[j].Points
		}
		return rows[i].GoalDifference > rows[j].GoalDifference
	})

	return rows, nil
}
