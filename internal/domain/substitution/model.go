package substitution

// Substitution swaps PlayerOut for PlayerIn on one team during a match.
type Substitution struct {
	ID          int64
	MatchID     int64
	TeamID      int64
	PlayerOutID *int64
	PlayerInID  *int64
	Time        string
}
