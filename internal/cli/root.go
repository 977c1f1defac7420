package cli

import (
	"errors"
	"fmt"
	"io"

	cerr "github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/PankajKumardev/initgen/internal/cli/wizard"
	"github.com/PankajKumardev/initgen/pkg/version"
)

// Flag names shared between commands and the config layer.
const (
	flagConfig     = "config"
	flagLogLevel   = "log-level"
	flagStack      = "stack"
	flagName       = "name"
	flagTypeScript = "typescript"
	flagGit        = "git"
	flagYes        = "yes"
	flagDir        = "dir"
	flagAddr       = "addr"
)

var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "initgen",
		Short: "Scaffold a new project from a curated stack",
		Long: `InitGen creates a ready-to-run project for one of its supported stacks:
React, Next.js and Vue front ends, Express APIs with Prisma or Drizzle, and
Flask, FastAPI or Django back ends.

Run without arguments for the interactive setup, or pass --yes with --stack
and --name to skip the prompts.

Examples:
  initgen                                         Interactive setup
  initgen --yes --stack vite-tailwind --name web  Non-interactive
  initgen stacks                                  List stack ids`,
		Version:           version.GetVersion(),
		Args:              cobra.NoArgs,
		SilenceErrors:     true,
		SilenceUsage:      true,
		PersistentPreRunE: prepareDependencies,
		RunE:              runCreate,
	}
	cmd.SetVersionTemplate(fmt.Sprintf("initgen %s\n", version.GetFullVersion()))

	pf := cmd.PersistentFlags()
	pf.String(flagConfig, "", "Config file (default: $XDG_CONFIG_HOME/initgen/config.yaml)")
	pf.String(flagLogLevel, "warn", "Log level: debug, info, warn or error")

	f := cmd.Flags()
	f.String(flagStack, "", "Stack id (see \"initgen stacks\")")
	f.String(flagName, "", "Project name")
	f.Bool(flagTypeScript, false, "Use the TypeScript variant when the stack has one")
	f.Bool(flagGit, true, "Initialize a git repository")
	f.BoolP(flagYes, "y", false, "Skip the prompts; requires --stack and --name")
	f.String(flagDir, "", "Directory to create the project in (default: current directory)")
	_ = cmd.RegisterFlagCompletionFunc(flagStack, completeStacks)

	cmd.AddCommand(
		newStacksCmd(),
		newStatsCmd(),
		newDocsCmd(),
		newDoctorCmd(),
		newVersionCmd(),
	)
	return cmd
}

// Execute runs the root command and reports a failure on stderr.
// A cancelled setup is not a failure.
func Execute() error {
	err := rootCmd.Execute()
	return reportError(rootCmd.ErrOrStderr(), err)
}

// reportError prints err with its hints and returns it, or returns nil for
// success and cancellation.
func reportError(w io.Writer, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, wizard.ErrCancelled) {
		_, _ = fmt.Fprintln(w, cliMuted.Render("Setup cancelled."))
		return nil
	}
	_, _ = fmt.Fprintf(w, "%s %s\n", symError(), err)
	for _, hint := range cerr.GetAllHints(err) {
		_, _ = fmt.Fprintf(w, "  %s %s\n", cliMuted.Render("Hint:"), hint)
	}
	return err
}

func getStringFlag(cmd *cobra.Command, name string) string {
	val, err := cmd.Flags().GetString(name)
	if err != nil {
		return ""
	}
	return val
}

func getBoolFlag(cmd *cobra.Command, name string) bool {
	val, err := cmd.Flags().GetBool(name)
	if err != nil {
		return false
	}
	return val
}
