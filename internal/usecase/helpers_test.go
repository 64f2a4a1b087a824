package usecase_test

import (
	"fmt"
	. "github.com/mkalvans/football-stats/internal/usecase"
	"testing"

	"github.com/mkalvans/football-stats/internal/feed"
	"github.com/mkalvans/football-stats/internal/infrastructure/repository/memory"
	"github.com/mkalvans/football-stats/internal/platform/logging"
)

func testIngest(store *memory.Store) *IngestService {
	return NewIngestService(store, logging.NewNop())
}

func mustIngest(t *testing.T, svc *IngestService, doc feed.Document) IngestResult {
	t.Helper()
	result, err := svc.IngestDocument(t.Context(), doc)
	if err != nil {
		t.Fatalf("ingest document: %v", err)
	}
	return result
}

func roster(numbers ...int) feed.RosterBlock {
	players := make(feed.OneOrMany[feed.RosterPlayer], 0, len(numbers))
	for _, n := range numbers {
		role := "A"
		if n == 1 {
			role = "V"
		}
		players = append(players, feed.RosterPlayer{
			Number:    n,
			FirstName: fmt.Sprintf("First%d", n),
			LastName:  fmt.Sprintf("Last%d", n),
			Role:      role,
		})
	}
	return feed.RosterBlock{Players: players}
}

func goalAt(number int, clock string, assists ...int) feed.GoalEvent {
	refs := make(feed.OneOrMany[feed.AssistRef], 0, len(assists))
	for _, n := range assists {
		refs = append(refs, feed.AssistRef{Number: n})
	}
	return feed.GoalEvent{Number: number, Time: clock, Assists: refs}
}

// twoTeamDoc builds a minimal valid document between home and away with
// both rosters carrying squad numbers 1 and 7.
func twoTeamDoc(date, venue, home, away string, spectators int) feed.Document {
	return feed.Document{
		Date:       date,
		Venue:      venue,
		Spectators: &spectators,
		Teams: []feed.TeamBlock{
			{Name: home, Roster: roster(1, 7)},
			{Name: away, Roster: roster(1, 7)},
		},
		MainReferee: feed.Official{FirstName: "Janis", LastName: "Ozols"},
		Assistants: feed.OneOrMany[feed.Official]{
			{FirstName: "Peteris", LastName: "Kalns"},
		},
	}
}
