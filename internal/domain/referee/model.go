package referee

import "fmt"

// Referee is a match official, deduplicated globally by name pair since the
// source feed carries no official identifier.
type Referee struct {
	ID        int64
	FirstName string
	LastName  string
}

func (r Referee) FullName() string {
	return r.FirstName + " " + r.LastName
}

func (r Referee) Validate() error {
	if r.FirstName == "" || r.LastName == "" {
		return fmt.Errorf("referee name is required")
	}

	return nil
}
