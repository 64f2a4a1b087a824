// Package feed decodes raw match documents as exported by the federation's
// reporting system. Field names follow the source schema so existing match
// files load unchanged.
package feed

import (
	"fmt"
	"time"

	"github.com/mkalvans/football-stats/internal/domain/gametime"
	"github.com/mkalvans/football-stats/internal/domain/match"
)

// penaltyMarker is the literal value the source feed uses on a goal record
// that was scored from a penalty kick.
const penaltyMarker = "J"

type envelope struct {
	Match Document `json:"Spele"`
}

// Document is one match record. Every collection that may arrive as a
// single object instead of a list is decoded through OneOrMany, so nothing
// past this boundary branches on shape.
type Document struct {
	Date        string              `json:"Laiks"`
	Venue       string              `json:"Vieta"`
	Spectators  *int                `json:"Skatitaji"`
	Teams       []TeamBlock         `json:"Komanda"`
	MainReferee Official            `json:"VT"`
	Assistants  OneOrMany[Official] `json:"T"`
}

type TeamBlock struct {
	Name          string             `json:"Nosaukums"`
	Roster        RosterBlock        `json:"Speletaji"`
	Goals         GoalsBlock         `json:"Varti"`
	Cards         CardsBlock         `json:"Sodi"`
	Substitutions SubstitutionsBlock `json:"Mainas"`
}

type RosterBlock struct {
	Players OneOrMany[RosterPlayer] `json:"Speletajs"`
}

type RosterPlayer struct {
	Number    int    `json:"Nr"`
	FirstName string `json:"Vards"`
	LastName  string `json:"Uzvards"`
	Role      string `json:"Loma"`
}

type GoalsBlock struct {
	Goals OneOrMany[GoalEvent] `json:"VG"`
}

type GoalEvent struct {
	Number  int                  `json:"Nr"`
	Time    string               `json:"Laiks"`
	Kick    string               `json:"Sitiens"`
	Assists OneOrMany[AssistRef] `json:"P"`
}

// IsPenalty reports whether the goal carries the source's penalty marker.
func (g GoalEvent) IsPenalty() bool {
	return g.Kick == penaltyMarker
}

type AssistRef struct {
	Number int `json:"Nr"`
}

type CardsBlock struct {
	Cards OneOrMany[CardEvent] `json:"Sods"`
}

type CardEvent struct {
	Number int    `json:"Nr"`
	Time   string `json:"Laiks"`
}

type SubstitutionsBlock struct {
	Substitutions OneOrMany[SubstitutionEvent] `json:"Maina"`
}

type SubstitutionEvent struct {
	PlayerOut int    `json:"Nr1"`
	PlayerIn  int    `json:"Nr2"`
	Time      string `json:"Laiks"`
}

type Official struct {
	FirstName string `json:"Vards"`
	LastName  string `json:"Uzvards"`
}

// ParseDate returns the match date in the feed's fixed calendar format.
func (d Document) ParseDate() (time.Time, error) {
	return time.Parse(match.DateLayout, d.Date)
}

// Validate enforces the required keys and value shapes before any entity
// logic runs. A document that fails here is rejected whole.
func (d Document) Validate() error {
	if _, err := d.ParseDate(); err != nil {
		return fmt.Errorf("match date %q: want %s", d.Date, match.DateLayout)
	}
	if d.Venue == "" {
		return fmt.Errorf("match venue is required")
	}
	if d.Spectators == nil {
		return fmt.Errorf("spectator count is required")
	}
	if *d.Spectators < 0 {
		return fmt.Errorf("spectator count cannot be negative")
	}
	if len(d.Teams) != 2 {
		return fmt.Errorf("expected two team blocks, got %d", len(d.Teams))
	}
	if d.MainReferee.FirstName == "" || d.MainReferee.LastName == "" {
		return fmt.Errorf("main referee name is required")
	}
	for i, official := range d.Assistants {
		if official.FirstName == "" || official.LastName == "" {
			return fmt.Errorf("assistant referee %d name is required", i+1)
		}
	}

	for _, block := range d.Teams {
		if err := block.validate(); err != nil {
			return err
		}
	}

	return nil
}

func (b TeamBlock) validate() error {
	if b.Name == "" {
		return fmt.Errorf("team name is required")
	}
	if len(b.Roster.Players) == 0 {
		return fmt.Errorf("team %s has an empty roster", b.Name)
	}
	for _, p := range b.Roster.Players {
		if p.Number <= 0 {
			return fmt.Errorf("team %s roster has invalid squad number %d", b.Name, p.Number)
		}
	}
	for _, g := range b.Goals.Goals {
		if _, err := gametime.Seconds(g.Time); err != nil {
			return fmt.Errorf("team %s goal: %v", b.Name, err)
		}
	}
	for _, c := range b.Cards.Cards {
		if _, err := gametime.Seconds(c.Time); err != nil {
			return fmt.Errorf("team %s card: %v", b.Name, err)
		}
	}
	for _, s := range b.Substitutions.Substitutions {
		if _, err := gametime.Seconds(s.Time); err != nil {
			return fmt.Errorf("team %s substitution: %v", b.Name, err)
		}
	}

	return nil
}
