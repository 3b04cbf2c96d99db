package cmd

import (
	"context"
	"fmt"

	"xiwal/application"
	"xiwal/config"
	"xiwal/logging"
)

// GenerateCmd builds a scheme from an image and/or explicit colors
type GenerateCmd struct {
	Colors    []string `arg:"" optional:"" help:"Candidate colors as hex (#rrggbb); the first is the dominant one"`
	Apply     bool     `help:"Apply the scheme to open terminals" short:"a"`
	Count     int      `help:"Number of colors to sample from the image" short:"n" default:"8"`
	Format    string   `help:"Output format: hex, json or list" enum:"hex,json,list" default:"hex"`
	Full      bool     `help:"Also output the 240 extended colors of a 256 color palette"`
	Image     string   `help:"Image to sample colors from" short:"i" type:"existingfile"`
	NoCache   bool     `help:"Neither read nor write the scheme cache"`
	NoPreview bool     `help:"Do not print the color preview"`
	Workers   int      `help:"Goroutines used for the subset search (1 = sequential)" default:"1"`
}

// Run executes the generate command
func (g *GenerateCmd) Run(container *Container, cli *CLI) error {
	if err := g.applySettings(cli.settings); err != nil {
		return err
	}

	logging.Logger.Info("Executing generate command",
		"image", g.Image,
		"colors", g.Colors,
		"count", g.Count,
		"full", g.Full,
		"workers", g.Workers)

	result, err := container.SchemeService.Generate(context.Background(), application.GenerateParams{
		Colors:      g.Colors,
		Full:        g.Full,
		Image:       g.Image,
		NoCache:     g.NoCache,
		SampleCount: g.Count,
		Workers:     g.Workers,
	})
	if err != nil {
		return err
	}

	if err := printScheme(result.Entry, g.Format, result.Cached, g.NoPreview); err != nil {
		return err
	}

	if g.Apply {
		return applyScheme(container.Terminal, result.Entry.Colors)
	}
	return nil
}

// applySettings fills flags left at their defaults from settings.json and
// appends the configured extra colors
func (g *GenerateCmd) applySettings(settings *config.Settings) error {
	if settings != nil {
		// Apply Colors setting
		if g.Count == config.DefaultColors && settings.Colors != nil {
			g.Count = *settings.Colors
		}

		// Apply Format setting
		if g.Format == config.DefaultFormat && settings.Format != "" {
			if !validFormat(settings.Format) {
				return fmt.Errorf("invalid format in settings: %q", settings.Format)
			}
			g.Format = settings.Format
		}

		// Apply Full256 setting
		if !g.Full && settings.Full256 != nil {
			g.Full = *settings.Full256
		}

		// Apply Apply setting
		if !g.Apply && settings.Apply != nil {
			g.Apply = *settings.Apply
		}

		// Apply Workers setting
		if g.Workers == 1 && settings.Workers != nil {
			g.Workers = *settings.Workers
		}

		g.Colors = append(g.Colors, settings.ExtraColors...)
	}

	if g.Image == "" && len(g.Colors) == 0 {
		return fmt.Errorf("nothing to generate from: pass --image or colors")
	}
	return nil
}
