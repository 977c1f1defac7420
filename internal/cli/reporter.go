package cli

import (
	"fmt"
	"io"

	"github.com/PankajKumardev/initgen/internal/core/project"
	"github.com/PankajKumardev/initgen/internal/ui"
)

// consoleReporter prints each generation event as a line.
type consoleReporter struct {
	w io.Writer
}

var _ project.Reporter = (*consoleReporter)(nil)

func (r *consoleReporter) Step(msg string) {
	_, _ = fmt.Fprintf(r.w, "  %s %s\n", symProgress(), cliMuted.Render(msg))
}

func (r *consoleReporter) Done(msg string) {
	_, _ = fmt.Fprintf(r.w, "  %s %s\n", symSuccess(), cliMuted.Render(msg))
}

func (r *consoleReporter) Warn(msg, followUp string) {
	_, _ = fmt.Fprintf(r.w, "  %s %s\n", symWarning(), cliWarn.Render(msg))
	if followUp != "" {
		_, _ = fmt.Fprintf(r.w, "    %s\n", cliMuted.Render(followUp))
	}
}

// spinnerReporter shows the current step as the spinner title and prints
// finished steps above it.
type spinnerReporter struct {
	spinner ui.Spinner
}

var _ project.Reporter = (*spinnerReporter)(nil)

func (r *spinnerReporter) Step(msg string) { r.spinner.SetTitle(msg) }

func (r *spinnerReporter) Done(msg string) {
	r.spinner.Println(fmt.Sprintf("  %s %s", symSuccess(), cliMuted.Render(msg)))
}

func (r *spinnerReporter) Warn(msg, followUp string) {
	r.spinner.Println(fmt.Sprintf("  %s %s", symWarning(), cliWarn.Render(msg)))
	if followUp != "" {
		r.spinner.Println("    " + cliMuted.Render(followUp))
	}
}
