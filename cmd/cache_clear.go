package cmd

import (
	"context"
	"fmt"

	"xiwal/logging"
)

// CacheClearCmd removes every cached scheme
type CacheClearCmd struct {
	Force bool `help:"Clear without confirmation" short:"f"`
}

// Run executes the clear command
func (c *CacheClearCmd) Run(container *Container) error {
	logging.Logger.Info("Executing cache clear command", "force", c.Force)

	if !c.Force && !confirm("WARNING: This will delete every cached scheme") {
		return nil
	}

	removed, err := container.SchemeService.ClearCache(context.Background())
	if err != nil {
		return fmt.Errorf("failed to clear cache: %w", err)
	}

	fmt.Printf("Removed %d schemes\n", removed)
	return nil
}
