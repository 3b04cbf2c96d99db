package cmd

import (
	"context"
	"errors"
	"fmt"

	"xiwal/domain"
	"xiwal/logging"
)

// RestoreCmd prints, and optionally re-applies, the most recent scheme
type RestoreCmd struct {
	Apply     bool   `help:"Apply the scheme to open terminals" short:"a"`
	Format    string `help:"Output format: hex, json or list" enum:"hex,json,list" default:"hex"`
	NoPreview bool   `help:"Do not print the color preview"`
}

// Run executes the restore command
func (r *RestoreCmd) Run(container *Container) error {
	logging.Logger.Info("Executing restore command", "apply", r.Apply)

	entry, err := container.SchemeService.Restore(context.Background())
	if err != nil {
		if errors.Is(err, domain.ErrSchemeNotFound) {
			return fmt.Errorf("no cached scheme to restore, run generate first")
		}
		return err
	}

	if err := printScheme(entry, r.Format, true, r.NoPreview); err != nil {
		return err
	}

	if r.Apply {
		return applyScheme(container.Terminal, entry.Colors)
	}
	return nil
}
