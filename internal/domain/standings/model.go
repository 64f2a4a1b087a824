package standings

// Row is one team's line in the tournament table.
//
// Point scheme: regulation win 5, overtime win 3, overtime loss 2,
// regulation loss 1. Ties count as losses under both time regimes.
type Row struct {
	TeamID         int64  `json:"team_id"`
	TeamName       string `json:"team_name"`
	Points         int    `json:"points"`
	MatchesPlayed  int    `json:"matches_played"`
	WinsRegular    int    `json:"wins_regular"`
	WinsOvertime   int    `json:"wins_overtime"`
	LossesRegular  int    `json:"losses_regular"`
	LossesOvertime int    `json:"losses_overtime"`
	GoalsFor       int    `json:"goals_for"`
	GoalsAgainst   int    `json:"goals_against"`
	GoalDifference int    `json:"goal_difference"`
}
