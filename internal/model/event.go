package model

import "time"

// Event records one successful mutating operation.
type Event struct {
	Seq         int
	At          time.Time
	Description string
}
