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
	"github.com/mkalvans/football-stats/internal/feed"
	"github.com/mkalvans/football-stats/internal/platform/logging"
)

// IngestService normalizes raw match documents into relational rows.
// Processing is strictly sequential: the dedup check in IngestDocument is
// only race-free when one document is ingested at a time.
type IngestService struct {
	store  MatchStore
	logger *logging.Logger
}

func NewIngestService(store MatchStore, logger *logging.Logger) *IngestService {
	if logger == nil {
		logger = logging.Default()
	}
	return &IngestService{store: store, logger: logger}
}

// IngestResult reports what one document ingestion did. Skipped means the
// match key was already present and nothing was written.
type IngestResult struct {
	MatchID int64
	Skipped bool
}

// IngestDocument writes a fully linked set of rows for one match document,
// or nothing at all. Re-ingesting a document with a known match key is a
// successful no-op.
func (s *IngestService) IngestDocument(ctx context.Context, doc feed.Document) (IngestResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.IngestService.IngestDocument")
	defer span.End()

	if err := doc.Validate(); err != nil {
		return IngestResult{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	date, err := doc.ParseDate()
	if err != nil {
		return IngestResult{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	key := match.Key{
		Date:     date,
		Venue:    doc.Venue,
		HomeTeam: doc.Teams[0].Name,
		AwayTeam: doc.Teams[1].Name,
	}

	tx, err := s.store.Begin(ctx)
	if err != nil {
		return IngestResult{}, fmt.Errorf("begin ingest tx: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	// Dedup before any team or roster rows exist for this call, so a
	// repeated document leaves no orphan rosters behind.
	if existing, found, err := tx.FindMatchByKey(ctx, key); err != nil {
		return IngestResult{}, fmt.Errorf("find match by key: %w", err)
	} else if found {
		s.logger.InfoContext(ctx, "match already ingested, skipping", "match", key.String())
		return IngestResult{MatchID: existing.ID, Skipped: true}, nil
	}

	var teams [2]team.Team
	for i, block := range doc.Teams {
		resolved, err := s.resolveTeam(ctx, tx, block)
		if err != nil {
			return IngestResult{}, err
		}
		teams[i] = resolved
	}

	m := match.Match{
		Date:       date,
		Venue:      doc.Venue,
		Spectators: *doc.Spectators,
		HomeTeamID: teams[0].ID,
		AwayTeamID: teams[1].ID,
	}
	if err := m.Validate(); err != nil {
		return IngestResult{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	m, err = tx.CreateMatch(ctx, m)
	if err != nil {
		return IngestResult{}, fmt.Errorf("create match: %w", err)
	}

	// Source list order is load-bearing: the second card a player picks up
	// within the match is the one promoted to red.
	carded := make(map[int64]bool)
	for i, block := range doc.Teams {
		if err := s.ingestTeamEvents(ctx, tx, m.ID, teams[i], block, carded); err != nil {
			return IngestResult{}, err
		}
	}

	if err := s.linkReferee(ctx, tx, m.ID, doc.MainReferee, true); err != nil {
		return IngestResult{}, err
	}
	for _, official := range doc.Assistants {
		if err := s.linkReferee(ctx, tx, m.ID, official, false); err != nil {
			return IngestResult{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		return IngestResult{}, fmt.Errorf("commit ingest tx: %w", err)
	}

	s.logger.InfoContext(ctx, "match ingested", "match", key.String(), "match_id", m.ID)
	return IngestResult{MatchID: m.ID}, nil
}

// resolveTeam reuses a team row by name or creates it together with its
// full roster. A team seen again is assumed to already carry its roster;
// players are never appended to an existing team.
func (s *IngestService) resolveTeam(ctx context.Context, tx MatchTx, block feed.TeamBlock) (team.Team, error) {
	existing, found, err := tx.FindTeamByName(ctx, block.Name)
	if err != nil {
		return team.Team{}, fmt.Errorf("find team %s: %w", block.Name, err)
	}
	if found {
		return existing, nil
	}

	created, err := tx.CreateTeam(ctx, team.Team{Name: block.Name})
	if err != nil {
		return team.Team{}, fmt.Errorf("create team %s: %w", block.Name, err)
	}

	for _, entry := range block.Roster.Players {
		p := player.Player{
			TeamID:    created.ID,
			Number:    entry.Number,
			FirstName: entry.FirstName,
			LastName:  entry.LastName,
			Role:      player.Role(entry.Role),
		}
		if _, err := tx.CreatePlayer(ctx, p); err != nil {
			return team.Team{}, fmt.Errorf("create player %s #%d: %w", block.Name, entry.Number, err)
		}
	}

	return created, nil
}

func (s *IngestService) ingestTeamEvents(ctx context.Context, tx MatchTx, matchID int64, t team.Team, block feed.TeamBlock, carded map[int64]bool) error {
	for _, event := range block.Goals.Goals {
		scorerID, err := s.resolvePlayer(ctx, tx, t, event.Number)
		if err != nil {
			return err
		}
		g := goal.Goal{
			MatchID:   matchID,
			TeamID:    t.ID,
			ScorerID:  scorerID,
			Time:      event.Time,
			IsPenalty: event.IsPenalty(),
		}
		if len(event.Assists) > 0 {
			if g.Assist1ID, err = s.resolvePlayer(ctx, tx, t, event.Assists[0].Number); err != nil {
				return err
			}
		}
		if len(event.Assists) > 1 {
			if g.Assist2ID, err = s.resolvePlayer(ctx, tx, t, event.Assists[1].Number); err != nil {
				return err
			}
		}
		if _, err := tx.CreateGoal(ctx, g); err != nil {
			return fmt.Errorf("create goal for %s: %w", t.Name, err)
		}
	}

	for _, event := range block.Cards.Cards {
		playerID, err := s.resolvePlayer(ctx, tx, t, event.Number)
		if err != nil {
			return err
		}
		c := card.Card{
			MatchID:  matchID,
			TeamID:   t.ID,
			PlayerID: playerID,
			Time:     event.Time,
		}
		if playerID != nil {
			c.IsRed = carded[*playerID]
			carded[*playerID] = true
		}
		if _, err := tx.CreateCard(ctx, c); err != nil {
			return fmt.Errorf("create card for %s: %w", t.Name, err)
		}
	}

	for _, event := range block.Substitutions.Substitutions {
		outID, err := s.resolvePlayer(ctx, tx, t, event.PlayerOut)
		if err != nil {
			return err
		}
		inID, err := s.resolvePlayer(ctx, tx, t, event.PlayerIn)
		if err != nil {
			return err
		}
		sub := substitution.Substitution{
			MatchID:     matchID,
			TeamID:      t.ID,
			PlayerOutID: outID,
			PlayerInID:  inID,
			Time:        event.Time,
		}
		if _, err := tx.CreateSubstitution(ctx, sub); err != nil {
			return fmt.Errorf("create substitution for %s: %w", t.Name, err)
		}
	}

	return nil
}

// resolvePlayer looks a squad number up on the team's roster. Unknown
// numbers yield a nil reference instead of failing the document; the
// roster data is known to be incomplete for some seasons.
func (s *IngestService) resolvePlayer(ctx context.Context, tx MatchTx, t team.Team, number int) (*int64, error) {
	p, found, err := tx.FindPlayerByNumber(ctx, t.ID, number)
	if err != nil {
		return nil, fmt.Errorf("find player %s #%d: %w", t.Name, number, err)
	}
	if !found {
		s.logger.WarnContext(ctx, "squad number not on roster", "team", t.Name, "number", number)
		return nil, nil
	}
	return &p.ID, nil
}

func (s *IngestService) linkReferee(ctx context.Context, tx MatchTx, matchID int64, official feed.Official, isMain bool) error {
	ref, found, err := tx.FindRefereeByName(ctx, official.FirstName, official.LastName)
	if err != nil {
		return fmt.Errorf("find referee %s %s: %w", official.FirstName, official.LastName, err)
	}
	if !found {
		ref, err = tx.CreateReferee(ctx, referee.Referee{
			FirstName: official.FirstName,
			LastName:  official.LastName,
		})
		if err != nil {
			return fmt.Errorf("create referee %s %s: %w", official.FirstName, official.LastName, err)
		}
	}

	if err := tx.CreateMatchReferee(ctx, match.Referee{
		MatchID:   matchID,
		RefereeID: ref.ID,
		IsMain:    isMain,
	}); err != nil {
		return fmt.Errorf("link referee %s %s: %w", official.FirstName, official.LastName, err)
	}

	return nil
}
