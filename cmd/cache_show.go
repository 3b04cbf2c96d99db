package cmd

import (
	"context"
	"fmt"

	"xiwal/logging"
)

// CacheShowCmd prints a cached scheme
type CacheShowCmd struct {
	ID        string `arg:"" help:"Scheme id or unique id prefix"`
	Apply     bool   `help:"Apply the scheme to open terminals" short:"a"`
	Format    string `help:"Output format: hex, json or list" enum:"hex,json,list" default:"json"`
	NoPreview bool   `help:"Do not print the color preview"`
}

// Run executes the show command
func (c *CacheShowCmd) Run(container *Container) error {
	logging.Logger.Debug("Showing cached scheme", "id", c.ID)

	entry, err := container.SchemeService.GetScheme(context.Background(), c.ID)
	if err != nil {
		return fmt.Errorf("failed to get scheme %q: %w", c.ID, err)
	}

	if err := printScheme(entry, c.Format, true, c.NoPreview); err != nil {
		return err
	}

	if c.Apply {
		return applyScheme(container.Terminal, entry.Colors)
	}
	return nil
}
