package storage

import "time"

// SchemeInfo is the decoded form of a Scheme row
type SchemeInfo struct {
	ID        string
	Key       string
	Source    string
	Inputs    []string
	Colors    []string
	Full      bool
	Score     float64
	CreatedAt time.Time
	UpdatedAt time.Time
}
