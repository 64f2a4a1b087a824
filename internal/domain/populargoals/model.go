package populargoals

// Entry is one goal ranked by the attendance of the match it was scored in.
type Entry struct {
	GoalID     int64  `json:"goal_id"`
	ScorerName string `json:"scorer_name"`
	TeamName   string `json:"team_name"`
	Venue      string `json:"venue"`
	Spectators int    `json:"spectators"`
	Time       string `json:"time"`
	IsPenalty  bool   `json:"is_penalty"`
}
