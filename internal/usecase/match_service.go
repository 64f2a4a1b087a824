package usecase

import (
	"context"
	"fmt"

	"github.com/mkalvans/football-stats/internal/domain/card"
	"github.com/mkalvans/football-stats/internal/domain/goal"
	"github.com/mkalvans/football-stats/internal/domain/match"
	"github.com/mkalvans/football-stats/internal/domain/player"
	"github.com/mkalvans/football-stats/internal/domain/referee"
	"github.com/mkalvans/football-stats/internal/domain/substitution"
	"github.com/mkalvans/football-stats/internal/domain/team"
)

// unknownPlayer labels event slots whose squad number never resolved
// against the roster.
const unknownPlayer = "Unknown"

// MatchService serves match listings and per-match detail to the
// presentation layer.
type MatchService struct {
	matchRepo   match.Repository
	teamRepo    team.Repository
	playerRepo  player.Repository
	refereeRepo referee.Repository
	goalRepo    goal.Repository
	cardRepo    card.Repository
	subRepo     substitution.Repository
}

func NewMatchService(
	matchRepo match.Repository,
	teamRepo team.Repository,
	playerRepo player.Repository,
	refereeRepo referee.Repository,
	goalRepo goal.Repository,
	cardRepo card.Repository,
	subRepo substitution.Repository,
) *MatchService {
	return &MatchService{
		matchRepo:   matchRepo,
		teamRepo:    teamRepo,
		playerRepo:  playerRepo,
		refereeRepo: refereeRepo,
		goalRepo:    goalRepo,
		cardRepo:    cardRepo,
		subRepo:     subRepo,
	}
}

type MatchSummary struct {
	ID         int64  `json:"id"`
	Date       string `json:"date"`
	Venue      string `json:"venue"`
	Spectators int    `json:"spectators"`
	HomeTeam   string `json:"home_team"`
	AwayTeam   string `json:"away_team"`
	HomeGoals  int    `json:"home_goals"`
	AwayGoals  int    `json:"away_goals"`
}

type MatchGoal struct {
	Scorer    string `json:"scorer"`
	Team      string `json:"team"`
	Time      string `json:"time"`
	IsPenalty bool   `json:"is_penalty"`
	Assist1   string `json:"assist1,omitempty"`
	Assist2   string `json:"assist2,omitempty"`
}

type MatchCard struct {
	Player string `json:"player"`
	Team   string `json:"team"`
	Time   string `json:"time"`
	IsRed  bool   `json:"is_red"`
}

type MatchSubstitution struct {
	PlayerOut string `json:"player_out"`
	PlayerIn  string `json:"player_in"`
	Team      string `json:"team"`
	Time      string `json:"time"`
}

type MatchOfficial struct {
	Name   string `json:"name"`
	IsMain bool   `json:"is_main"`
}

type MatchDetail struct {
	MatchSummary
	Goals         []MatchGoal         `json:"goals"`
	Cards         []MatchCard         `json:"cards"`
	Substitutions []MatchSubstitution `json:"substitutions"`
	Officials     []MatchOfficial     `json:"officials"`
}

func (s *MatchService) List(ctx context.Context) ([]MatchSummary, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.List")
	defer span.End()

	matches, err := s.matchRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list matches: %w", err)
	}
	teamNames, err := s.teamNames(ctx)
	if err != nil {
		return nil, err
	}
	goals, err := s.goalRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list goals: %w", err)
	}

	goalsByMatchTeam := make(map[int64]map[int64]int)
	for _, g := range goals {
		if goalsByMatchTeam[g.MatchID] == nil {
			goalsByMatchTeam[g.MatchID] = make(map[int64]int)
		}
		goalsByMatchTeam[g.MatchID][g.TeamID]++
	}

	out := make([]MatchSummary, 0, len(matches))
	for _, m := range matches {
		out = append(out, MatchSummary{
			ID:         m.ID,
			Date:       m.Date.Format(match.DateLayout),
			Venue:      m.Venue,
			Spectators: m.Spectators,
			HomeTeam:   teamNames[m.HomeTeamID],
			AwayTeam:   teamNames[m.AwayTeamID],
			HomeGoals:  goalsByMatchTeam[m.ID][m.HomeTeamID],
			AwayGoals:  goalsByMatchTeam[m.ID][m.AwayTeamID],
		})
	}
	return out, nil
}

func (s *MatchService) Get(ctx context.Context, matchID int64) (MatchDetail, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.Get")
	defer span.End()

	if matchID <= 0 {
		return MatchDetail{}, fmt.Errorf("%w: match id is required", ErrInvalidInput)
	}

	m, found, err := s.matchRepo.GetByID(ctx, matchID)
	if err != nil {
		return MatchDetail{}, fmt.Errorf("get match: %w", err)
	}
	if !found {
		return MatchDetail{}, fmt.Errorf("%w: match=%d", ErrNotFound, matchID)
	}

	teamNames, err := s.teamNames(ctx)
	if err != nil {
		return MatchDetail{}, err
	}
	playerNames, err := s.playerNames(ctx)
	if err != nil {
		return MatchDetail{}, err
	}

	detail := MatchDetail{MatchSummary: MatchSummary{
		ID:         m.ID,
		Date:       m.Date.Format(match.DateLayout),
		Venue:      m.Venue,
		Spectators: m.Spectators,
		HomeTeam:   teamNames[m.HomeTeamID],
		AwayTeam:   teamNames[m.AwayTeamID],
	}}

	goals, err := s.goalRepo.ListByMatch(ctx, matchID)
	if err != nil {
		return MatchDetail{}, fmt.Errorf("list match goals: %w", err)
	}
	detail.Goals = make([]MatchGoal, 0, len(goals))
	for _, g := range goals {
		if g.TeamID == m.HomeTeamID {
			detail.HomeGoals++
		} else {
			detail.AwayGoals++
		}
		entry := MatchGoal{
			Scorer:    playerName(playerNames, g.ScorerID),
			Team:      teamNames[g.TeamID],
			Time:      g.Time,
			IsPenalty: g.IsPenalty,
		}
		if g.Assist1ID != nil {
			entry.Assist1 = playerName(playerNames, g.Assist1ID)
		}
		if g.Assist2ID != nil {
			entry.Assist2 = playerName(playerNames, g.Assist2ID)
		}
		detail.Goals = append(detail.Goals, entry)
	}

	cards, err := s.cardRepo.ListByMatch(ctx, matchID)
	if err != nil {
		return MatchDetail{}, fmt.Errorf("list match cards: %w", err)
	}
	detail.Cards = make([]MatchCard, 0, len(cards))
	for _, c := range cards {
		detail.Cards = append(detail.Cards, MatchCard{
			Player: playerName(playerNames, c.PlayerID),
			Team:   teamNames[c.TeamID],
			Time:   c.Time,
			IsRed:  c.IsRed,
		})
	}

	subs, err := s.subRepo.ListByMatch(ctx, matchID)
	if err != nil {
		return MatchDetail{}, fmt.Errorf("list match substitutions: %w", err)
	}
	detail.Substitutions = make([]MatchSubstitution, 0, len(subs))
	for _, sub := range subs {
		detail.Substitutions = append(detail.Substitutions, MatchSubstitution{
			PlayerOut: playerName(playerNames, sub.PlayerOutID),
			PlayerIn:  playerName(playerNames, sub.PlayerInID),
			Team:      teamNames[sub.TeamID],
			Time:      sub.Time,
		})
	}

	links, err := s.matchRepo.ListRefereesByMatch(ctx, matchID)
	if err != nil {
		return MatchDetail{}, fmt.Errorf("list match referees: %w", err)
	}
	refNames, err := s.refereeNames(ctx)
	if err != nil {
		return MatchDetail{}, err
	}
	detail.Officials = make([]MatchOfficial, 0, len(links))
	for _, link := range links {
		detail.Officials = append(detail.Officials, MatchOfficial{
			Name:   refNames[link.RefereeID],
			IsMain: link.IsMain,
		})
	}

	return detail, nil
}

func (s *MatchService) teamNames(ctx context.Context) (map[int64]string, error) {
	teams, err := s.teamRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list teams: %w", err)
	}
	names := make(map[int64]string, len(teams))
	for _, t := range teams {
		names[t.ID] = t.Name
	}
	return names, nil
}

func (s *MatchService) playerNames(ctx context.Context) (map[int64]string, error) {
	players, err := s.playerRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list players: %w", err)
	}
	names := make(map[int64]string, len(players))
	for _, p := range players {
		names[p.ID] = p.FullName()
	}
	return names, nil
}

func (s *MatchService) refereeNames(ctx context.Context) (map[int64]string, error) {
	referees, err := s.refereeRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list referees: %w", err)
	}
	names := make(map[int64]string, len(referees))
	for _, r := range referees {
		names[r.ID] = r.FullName()
	}
	return names, nil
}

func playerName(names map[int64]string, id *int64) string {
	if id == nil {
		return unknownPlayer
	}
	if name, ok := names[*id]; ok {
		return name
	}
	return unknownPlayer
}
