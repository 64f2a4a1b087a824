package match

import (
	"fmt"
	"time"
)

// DateLayout is the calendar format match dates arrive in.
const DateLayout = "2006/01/02"

// Key is the deduplication tuple for a match. Two documents with the same
// key describe the same fixture and only the first one is ingested.
type Key struct {
	Date     time.Time
	Venue    string
	HomeTeam string
	AwayTeam string
}

func (k Key) String() string {
	return fmt.Sprintf("%s %s %s vs %s", k.Date.Format(DateLayout), k.Venue, k.HomeTeam, k.AwayTeam)
}

// Match is one played fixture between two teams.
type Match struct {
	ID         int64
	Date       time.Time
	Venue      string
	Spectators int
	HomeTeamID int64
	AwayTeamID int64
}

func (m Match) Validate() error {
	if m.Date.IsZero() {
		return fmt.Errorf("match date is required")
	}
	if m.Venue == "" {
		return fmt.Errorf("match venue is required")
	}
	if m.HomeTeamID == 0 || m.AwayTeamID == 0 {
		return fmt.Errorf("match team ids are required")
	}
	if m.Spectators < 0 {
		return fmt.Errorf("match spectators cannot be negative")
	}

	return nil
}

// Referee links a match to an official. Exactly one link per match carries
// IsMain; the rest are assistants.
type Referee struct {
	ID        int64
	MatchID   int64
	RefereeID int64
	IsMain    bool
}
