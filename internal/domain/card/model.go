package card

// Card is a booking. IsRed is derived during ingestion: the second card for
// the same player within one match is always red, the source feed never
// states the color itself.
type Card struct {
	ID       int64
	MatchID  int64
	TeamID   int64
	PlayerID *int64
	Time     string
	IsRed    bool
}
