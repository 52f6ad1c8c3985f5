package domain

import "time"

// Selection is the outcome of a successful word draw.
type Selection struct {
	Category string
	Word     string
	AllPlay  bool
}

// PickRecord is one entry of the local pick history.
type PickRecord struct {
	ID       string
	Word     string
	Category string
	AllPlay  bool
	PickedAt time.Time
}
