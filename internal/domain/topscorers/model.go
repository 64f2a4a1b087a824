package topscorers

// Entry is one ranked player in the combined goals-plus-assists table.
// Players appear as long as goals+assists is positive, even pure assisters.
type Entry struct {
	PlayerID   int64  `json:"player_id"`
	PlayerName string `json:"player_name"`
	TeamName   string `json:"team_name"`
	Goals      int    `json:"goals"`
	Assists    int    `json:"assists"`
}
