package cmd

import (
	"xiwal/adapters/imagemagick"
	adapterstorage "xiwal/adapters/storage"
	"xiwal/application"
	"xiwal/paths"
	"xiwal/ports"
	"xiwal/scheme"
	"xiwal/term"
)

// Container holds all dependencies for the application
type Container struct {
	// Services
	SchemeService *application.SchemeService

	// Adapters used directly by commands
	Terminal ports.TerminalWriter

	// Internal - for cleanup only
	schemeRepo ports.SchemeRepository
}

// NewContainer creates a new Container with all dependencies wired
func NewContainer(dbPath string, tuning scheme.Tuning) (*Container, error) {
	schemeRepo, err := adapterstorage.NewSQLiteRepository(dbPath)
	if err != nil {
		return nil, err
	}

	// The ImageMagick binary is looked up on first use, so a missing install
	// only fails generation from an image
	sampler := imagemagick.NewSampler("")

	schemeService, err := application.NewSchemeService(schemeRepo, sampler, tuning)
	if err != nil {
		schemeRepo.Close()
		return nil, err
	}

	return &Container{
		SchemeService: schemeService,
		Terminal:      term.NewWriter(paths.GetSequencesPath()),
		schemeRepo:    schemeRepo,
	}, nil
}

// Close closes all resources held by the container
func (c *Container) Close() error {
	if c.schemeRepo != nil {
		return c.schemeRepo.Close()
	}
	return nil
}
