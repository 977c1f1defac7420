package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
)

func newStacksCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stacks",
		Short: "List the stacks initgen can generate",
		Args:  cobra.NoArgs,
		RunE:  runStacks,
	}
}

func runStacks(cmd *cobra.Command, _ []string) error {
	if deps == nil {
		return ErrDependencies
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(cliBorder).
		Headers("ID", "NAME", "CATEGORY", "TYPESCRIPT")
	for _, d := range deps.Catalog.All() {
		ts := "-"
		if d.TypeScript {
			ts = "yes"
		}
		t.Row(d.ID, d.Name, string(d.Category), ts)
	}

	_, _ = fmt.Fprintln(cmd.OutOrStdout(), t.String())
	return nil
}
