package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"xiwal/domain"
)

// CacheListCmd lists cached schemes
type CacheListCmd struct {
	Format string `help:"Output format: table or json" enum:"table,json" default:"table"`
	Limit  int    `help:"Maximum number of schemes to list (0 = all)" default:"0"`
}

// Run executes the list command
func (c *CacheListCmd) Run(container *Container) error {
	entries, err := container.SchemeService.ListSchemes(context.Background(), c.Limit)
	if err != nil {
		return fmt.Errorf("failed to list schemes: %w", err)
	}

	if c.Format == "json" {
		return printEntriesJSON(os.Stdout, entries)
	}
	printEntriesTable(os.Stdout, entries)
	return nil
}

func printEntriesJSON(w io.Writer, entries []domain.SchemeEntry) error {
	out := make([]schemeOutput, len(entries))
	for i, e := range entries {
		out[i] = schemeOutput{
			Colors: e.Colors,
			Full:   e.Full,
			ID:     e.ID,
			Inputs: e.Inputs,
			Score:  e.Score,
			Source: e.Source,
		}
	}
	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	fmt.Fprintln(w, string(data))
	return nil
}

func printEntriesTable(w io.Writer, entries []domain.SchemeEntry) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tSOURCE\tCOLORS\tSCORE\tLAST USED")
	for _, e := range entries {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%.4f\t%s\n",
			e.ShortID(),
			e.Source,
			len(e.Colors),
			e.Score,
			e.UpdatedAt.Local().Format("2006-01-02 15:04:05"))
	}
	tw.Flush()

	fmt.Fprintf(w, "\nTotal: %d schemes\n", len(entries))
}
