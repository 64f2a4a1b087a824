package team

import "fmt"

// Team is a club participating in the tournament. Name is the surface key
// used for reuse across match documents.
type Team struct {
	ID   int64
	Name string
}

func (t Team) Validate() error {
	if t.Name == "" {
		return fmt.Errorf("team name is required")
	}

	return nil
}
