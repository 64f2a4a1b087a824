package substats

// Entry ranks a player by how often they were substituted out. Role carries
// the human-readable label derived from the roster's position code.
type Entry struct {
	PlayerID       int64  `json:"player_id"`
	PlayerName     string `json:"player_name"`
	TeamName       string `json:"team_name"`
	Role           string `json:"role"`
	TimesSubbedOut int    `json:"times_subbed_out"`
}
