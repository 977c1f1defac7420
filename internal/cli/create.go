package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/glamour/styles"
	cerr "github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/PankajKumardev/initgen/internal/cli/wizard"
	"github.com/PankajKumardev/initgen/internal/core/project"
	"github.com/PankajKumardev/initgen/internal/ui"
)

var (
	// ErrMissingFlags is returned when --yes is given without --stack or --name.
	ErrMissingFlags = errors.New("--yes requires --stack and --name")
	// ErrNotInteractive is returned when prompts are needed but stdin is not a terminal.
	ErrNotInteractive = errors.New("interactive setup needs a terminal")
	// ErrDependencies is returned when a command runs before wiring.
	ErrDependencies = errors.New("dependencies not initialized")
)

// runCreate is the root command: it collects the answers, generates the
// project and prints the summary.
func runCreate(cmd *cobra.Command, _ []string) error {
	if deps == nil {
		return ErrDependencies
	}
	out := cmd.OutOrStdout()

	answers, err := collectAnswers(cmd, out)
	if err != nil {
		return err
	}

	_, _ = fmt.Fprintln(out, cliSuccess.Render("\n\U0001F528 Creating your project...\n"))

	interactive := !deps.Headless.IsHeadless() && ui.IsTerminal(out)
	var (
		reporter project.Reporter
		spinner  ui.Spinner
	)
	if interactive {
		spinner = ui.NewSpinner(deps.Theme, deps.Headless, out, "Setting up project structure...")
		reporter = &spinnerReporter{spinner: spinner}
	} else {
		reporter = &consoleReporter{w: out}
	}
	stopSpinner := func() {
		if spinner != nil {
			spinner.Stop()
		}
	}

	gen, err := project.NewGenerator(
		project.WithCatalog(deps.Catalog),
		project.WithRunner(deps.Runner),
		project.WithGit(deps.Git),
		project.WithLogger(deps.Logger),
		project.WithReporter(reporter),
		project.WithWorkDir(workDir(cmd)),
	)
	if err != nil {
		stopSpinner()
		return err
	}

	result, err := gen.Generate(cmd.Context(), answers)
	stopSpinner()
	if err != nil {
		return err
	}
	if werr := result.Err(); werr != nil {
		deps.Logger.Sugar().Warnf("project created with warnings: %v", werr)
	}

	printSummary(out, answers.ProjectName, result, interactive)
	return nil
}

func workDir(cmd *cobra.Command) string {
	if dir := getStringFlag(cmd, flagDir); dir != "" {
		return dir
	}
	if wd, err := os.Getwd(); err == nil {
		return wd
	}
	return "."
}

// collectAnswers reads the answers from flags with --yes, otherwise from the
// interactive prompts seeded with any flags given.
func collectAnswers(cmd *cobra.Command, out io.Writer) (project.Answers, error) {
	stackID := getStringFlag(cmd, flagStack)
	name := getStringFlag(cmd, flagName)

	if getBoolFlag(cmd, flagYes) {
		if stackID == "" || name == "" {
			return project.Answers{}, cerr.WithHint(ErrMissingFlags,
				`Run "initgen stacks" to list the available stack ids.`)
		}
		return project.Answers{
			Stack:       stackID,
			ProjectName: name,
			TypeScript:  getBoolFlag(cmd, flagTypeScript),
			InitGit:     getBoolFlag(cmd, flagGit),
		}, nil
	}

	if deps.Headless.IsHeadless() {
		return project.Answers{}, cerr.WithHint(ErrNotInteractive,
			"Pass --yes together with --stack and --name.")
	}

	_, _ = fmt.Fprintln(out, renderBanner())
	_, _ = fmt.Fprintln(out, cliPrimary.Bold(true).Render("\nWelcome to InitGen CLI!\n"))

	defaultName := deps.Config.DefaultProjectName
	if name != "" {
		defaultName = name
	}
	questions := wizard.DefaultQuestions(deps.Catalog, defaultName)
	if stackID != "" {
		if q := wizard.QuestionByID(questions, wizard.QuestionStack); q != nil {
			q.Default = stackID
		}
	}
	if cmd.Flags().Changed(flagTypeScript) && getBoolFlag(cmd, flagTypeScript) {
		if q := wizard.QuestionByID(questions, wizard.QuestionLanguage); q != nil {
			q.Default = wizard.LanguageTypeScript
		}
	}
	if cmd.Flags().Changed(flagGit) && !getBoolFlag(cmd, flagGit) {
		if q := wizard.QuestionByID(questions, wizard.QuestionGit); q != nil {
			q.Default = "false"
		}
	}

	res, err := deps.Prompt(questions)
	if err != nil {
		return project.Answers{}, err
	}
	return project.Answers{
		Stack:       res.Stack,
		ProjectName: res.ProjectName,
		TypeScript:  res.TypeScript,
		InitGit:     res.InitGit,
	}, nil
}

// printSummary writes the success card, warnings, next steps and tips.
func printSummary(w io.Writer, name string, result *project.Result, color bool) {
	_, _ = fmt.Fprintln(w, successCard("Project created successfully!",
		cliAccent.Render("\U0001F4C1 Project: "+name),
		cliMuted.Render("\U0001F4CD Location: "+result.ProjectPath),
	))

	if len(result.Warnings) > 0 {
		_, _ = fmt.Fprintln(w)
		_, _ = fmt.Fprintln(w, cliWarn.Bold(true).Render("Some steps need your attention:"))
		for _, warning := range result.Warnings {
			_, _ = fmt.Fprintf(w, "  %s %s\n", symWarning(), warning)
			for _, hint := range cerr.GetAllHints(warning) {
				_, _ = fmt.Fprintf(w, "    %s\n", cliMuted.Render(hint))
			}
		}
	}

	_, _ = fmt.Fprint(w, renderNextSteps(result.NextSteps, color))

	if len(result.Tips) > 0 {
		_, _ = fmt.Fprintln(w, cliMuted.Render("   \U0001F4A1 Additional commands:"))
		for _, tip := range result.Tips {
			_, _ = fmt.Fprintln(w, cliMuted.Render("   "+tip))
		}
	}

	_, _ = fmt.Fprintln(w, cliMagenta.Render("\n✨ Happy coding! ✨\n"))
}

// nextStepsMarkdown renders steps as a shell block under a heading.
func nextStepsMarkdown(steps []string) string {
	var b strings.Builder
	b.WriteString("## \U0001F680 Next steps\n\n```sh\n")
	for _, s := range steps {
		b.WriteString(s)
		b.WriteByte('\n')
	}
	b.WriteString("```\n")
	return b.String()
}

// renderNextSteps renders the steps with glamour, falling back to indented
// plain text if rendering fails.
func renderNextSteps(steps []string, color bool) string {
	if len(steps) == 0 {
		return ""
	}
	style := styles.NoTTYStyle
	if color {
		style = styles.DarkStyle
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(80),
	)
	if err == nil {
		if rendered, rerr := r.Render(nextStepsMarkdown(steps)); rerr == nil {
			return rendered
		}
	}

	var b strings.Builder
	b.WriteString("\nNext steps:\n\n")
	for _, s := range steps {
		b.WriteString("   " + s + "\n")
	}
	return b.String()
}
