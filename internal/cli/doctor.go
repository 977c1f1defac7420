package cli

import (
	"errors"
	"fmt"
	"io"

	cerr "github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/PankajKumardev/initgen/internal/doctor"
	"github.com/PankajKumardev/initgen/internal/stack"
)

// ErrMissingTools is returned by doctor when a required tool is not installed.
var ErrMissingTools = errors.New("required tools are missing")

func newDoctorCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "doctor",
		Short: "Check that the tools generated projects need are installed",
		Long: `Check node, npm, npx, python3, pip and git.

Without --stack the JavaScript tools are required. With --stack only the
tools that stack runs are required; the rest are reported for information.`,
		Args: cobra.NoArgs,
		RunE: runDoctor,
	}
	cmd.Flags().String(flagStack, "", "Only require the tools this stack needs")
	_ = cmd.RegisterFlagCompletionFunc(flagStack, completeStacks)
	return cmd
}

func runDoctor(cmd *cobra.Command, _ []string) error {
	if deps == nil {
		return ErrDependencies
	}

	required := []string{"node", "npm", "npx"}
	if id := getStringFlag(cmd, flagStack); id != "" {
		d, err := deps.Catalog.Get(id)
		if err != nil {
			return cerr.WithHint(err, `Run "initgen stacks" to list the available stack ids.`)
		}
		required = doctor.Required(d)
	}

	report := deps.Doctor.Run(cmd.Context(), required)
	printDoctorReport(cmd.OutOrStdout(), report)

	if !report.OK() {
		return cerr.WithHint(ErrMissingTools, "Install the tools marked [MISS] and run initgen doctor again.")
	}
	return nil
}

func printDoctorReport(w io.Writer, report *doctor.Report) {
	for _, c := range report.Checks {
		var tag string
		switch c.Status {
		case doctor.StatusOK:
			tag = cliSuccess.Render("[ OK ]")
		case doctor.StatusMissing:
			tag = cliError.Render("[MISS]")
			if !c.Required {
				tag = cliWarn.Render("[MISS]")
			}
		default:
			tag = cliWarn.Render("[WARN]")
		}

		line := fmt.Sprintf("%s %-8s", tag, c.Tool.Name)
		if c.Version != "" {
			line += " " + c.Version
		}
		if c.Detail != "" {
			line += "  " + cliMuted.Render(c.Detail)
		}
		_, _ = fmt.Fprintln(w, line)
	}
}

// completeStacks offers catalog ids for --stack. Completion runs without
// the persistent pre-run, so the embedded catalog is loaded directly.
func completeStacks(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
	catalog, err := stack.Default()
	if deps != nil {
		catalog, err = deps.Catalog, nil
	}
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	return catalog.IDs(), cobra.ShellCompDirectiveNoFileComp
}
