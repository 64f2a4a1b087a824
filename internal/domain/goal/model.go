package goal

// Goal is one scored goal, individually attributed to a match and a team.
// Player references are nullable: a squad number missing from the roster
// leaves the slot empty instead of failing the document.
type Goal struct {
	ID        int64
	MatchID   int64
	TeamID    int64
	ScorerID  *int64
	Assist1ID *int64
	Assist2ID *int64
	Time      string
	IsPenalty bool
}
