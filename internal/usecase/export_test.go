package usecase

// Exported aliases so the external usecase_test package can assert
// against the standings point values.
const (
	PointsWinRegulation  = pointsWinRegulation
	PointsWinOvertime    = pointsWinOvertime
	PointsLossOvertime   = pointsLossOvertime
	PointsLossRegulation = pointsLossRegulation
)
