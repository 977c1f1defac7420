package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/PankajKumardev/initgen/pkg/version"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		// Version needs no configuration.
		PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "initgen %s\n", version.GetFullVersion())
			return err
		},
	}
}
