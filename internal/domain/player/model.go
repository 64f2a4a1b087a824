package player

import "fmt"

// Role is the three-value position code carried by the source feed.
type Role string

const (
	RoleGoalkeeper Role = "V"
	RoleDefender   Role = "A"
	RoleForward    Role = "U"
)

var roleLabels = map[Role]string{
	RoleGoalkeeper: "Goalkeeper",
	RoleDefender:   "Defender",
	RoleForward:    "Forward",
}

// Label returns the human-readable role name. Unrecognized codes pass
// through unchanged instead of failing.
func (r Role) Label() string {
	if label, ok := roleLabels[r]; ok {
		return label
	}
	return string(r)
}

// Player belongs to exactly one team. Number is unique only within that
// team and is how match events reference the player.
type Player struct {
	ID        int64
	TeamID    int64
	Number    int
	FirstName string
	LastName  string
	Role      Role
}

func (p Player) FullName() string {
	return p.FirstName + " " + p.LastName
}

func (p Player) Validate() error {
	if p.TeamID == 0 {
		return fmt.Errorf("player team id is required")
	}
	if p.Number <= 0 {
		return fmt.Errorf("player number must be greater than zero")
	}
	if p.FirstName == "" || p.LastName == "" {
		return fmt.Errorf("player name is required")
	}

	return nil
}
