package domain

import "time"

// Source value for schemes generated from colors given on the command line
const SourceColors = "colors"

// SchemeEntry is a generated scheme kept in the cache (domain entity)
type SchemeEntry struct {
	Colors    []string
	CreatedAt time.Time
	Full      bool
	ID        string
	Inputs    []string
	Key       string
	Score     float64
	Source    string // Image path, or SourceColors
	UpdatedAt time.Time
}

// ShortID returns the id prefix shown in listings
func (e SchemeEntry) ShortID() string {
	if len(e.ID) <= 8 {
		return e.ID
	}
	return e.ID[:8]
}
