package usecase_test

import (
	. "github.com/mkalvans/football-stats/internal/usecase"
	"testing"

	"github.com/mkalvans/football-stats/internal/feed"
	"github.com/mkalvans/football-stats/internal/infrastructure/repository/memory"
)

func testSubstitutions(store *memory.Store) *SubstitutionService {
	return NewSubstitutionService(store.SubstitutionRepository(), store.PlayerRepository(), store.TeamRepository())
}

func withSubs(doc feed.Document, home []feed.SubstitutionEvent) feed.Document {
	doc.Teams[0].Substitutions = feed.SubstitutionsBlock{Substitutions: home}
	return doc
}

func TestSubstitutionService_RanksByTimesSubbedOut(t *testing.T) {
	store := memory.NewStore()
	svc := testIngest(store)

	mustIngest(t, svc, withSubs(
		twoTeamDoc("2009/07/01", "Daugava", "Alfa", "Beta", 100),
		[]feed.SubstitutionEvent{{PlayerOut: 7, PlayerIn: 1, Time: "46:00"}},
	))
	mustIngest(t, svc, withSubs(
		twoTeamDoc("2009/07/08", "Daugava", "Alfa", "Beta", 100),
		[]feed.SubstitutionEvent{
			{PlayerOut: 7, PlayerIn: 1, Time: "30:00"},
			{PlayerOut: 1, PlayerIn: 7, Time: "50:00"},
		},
	))

	entries, err := testSubstitutions(store).Rank(t.Context(), 0)
	if err != nil {
		t.Fatalf("rank: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 ranked players, got %d", len(entries))
	}
	if entries[0].PlayerName != "First7 Last7" || entries[0].TimesSubbedOut != 2 {
		t.Fatalf("unexpected leader: %+v", entries[0])
	}
	if entries[0].Role != "Defender" {
		t.Fatalf("role must be the human label, got %q", entries[0].Role)
	}
	if entries[1].TimesSubbedOut != 1 {
		t.Fatalf("runner-up count = %d, want 1", entries[1].TimesSubbedOut)
	}
}

func TestSubstitutionService_RoleLabel(t *testing.T) {
	store := memory.NewStore()
	svc := testIngest(store)

	// Number 1 carries the goalkeeper role in the test roster.
	mustIngest(t, svc, withSubs(
		twoTeamDoc("2009/07/01", "Daugava", "Alfa", "Beta", 100),
		[]feed.SubstitutionEvent{{PlayerOut: 1, PlayerIn: 7, Time: "46:00"}},
	))

	entries, err := testSubstitutions(store).Rank(t.Context(), 0)
	if err != nil {
		t.Fatalf("rank: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	if entries[0].Role != "Goalkeeper" {
		t.Fatalf("role = %q, want Goalkeeper", entries[0].Role)
	}
}

func TestSubstitutionService_NullPlayerOutIgnored(t *testing.T) {
	store := memory.NewStore()
	svc := testIngest(store)

	mustIngest(t, svc, withSubs(
		twoTeamDoc("2009/07/01", "Daugava", "Alfa", "Beta", 100),
		[]feed.SubstitutionEvent{{PlayerOut: 99, PlayerIn: 7, Time: "46:00"}},
	))

	entries, err := testSubstitutions(store).Rank(t.Context(), 0)
	if err != nil {
		t.Fatalf("rank: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("a substitution without an attributed player must rank nobody, got %+v", entries)
	}
}
