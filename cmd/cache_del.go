package cmd

import (
	"context"
	"fmt"

	"xiwal/logging"
)

// CacheDelCmd deletes a cached scheme
type CacheDelCmd struct {
	Force bool   `help:"Force deletion without confirmation" short:"f"`
	ID    string `arg:"" help:"Scheme id or unique id prefix"`
}

// Run executes the del command
func (c *CacheDelCmd) Run(container *Container) error {
	logging.Logger.Info("Executing cache del command", "id", c.ID, "force", c.Force)

	ctx := context.Background()
	entry, err := container.SchemeService.GetScheme(ctx, c.ID)
	if err != nil {
		return fmt.Errorf("failed to get scheme %q: %w", c.ID, err)
	}

	if !c.Force && !confirm(fmt.Sprintf("WARNING: This will delete scheme '%s' (%s)", entry.ShortID(), entry.Source)) {
		return nil
	}

	if _, err := container.SchemeService.DeleteScheme(ctx, entry.ID); err != nil {
		return err
	}

	fmt.Printf("Deleted scheme '%s'\n", entry.ShortID())
	return nil
}

// confirm prints the warning and asks for a y/N answer on stdin
func confirm(warning string) bool {
	fmt.Println(warning)
	fmt.Print("\nContinue? (y/N): ")
	var response string
	fmt.Scanln(&response)
	if response != "y" && response != "Y" {
		logging.Logger.Info("User cancelled")
		fmt.Println("Cancelled")
		return false
	}
	return true
}
