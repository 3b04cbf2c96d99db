package application

import "xiwal/domain"

// GenerateParams contains parameters for generating a scheme
type GenerateParams struct {
	Colors      []string // Explicit candidates, appended after any sampled ones
	Full        bool
	Image       string
	NoCache     bool
	SampleCount int
	Workers     int
}

// GenerateResult contains the result of scheme generation
type GenerateResult struct {
	Cached bool
	Entry  *domain.SchemeEntry
	Key    string
}
