package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/PankajKumardev/initgen/internal/downloads"
	"github.com/PankajKumardev/initgen/internal/ui"
)

var sparkBlocks = []rune("▁▂▃▄▅▆▇█")

func newStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show weekly npm downloads of initgen",
		Args:  cobra.NoArgs,
		RunE:  runStats,
	}
}

func runStats(cmd *cobra.Command, _ []string) error {
	if deps == nil {
		return ErrDependencies
	}
	out := cmd.OutOrStdout()
	width, ok := ui.TerminalWidth(out)
	if !ok {
		width = 80
	}
	renderStats(out, deps.Downloads.Fetch(cmd.Context()), width)
	return nil
}

// renderStats prints a sparkline of the trend with day labels underneath,
// followed by the weekly and monthly totals.
func renderStats(w io.Writer, s *downloads.Stats, width int) {
	p := message.NewPrinter(language.English)

	_, _ = fmt.Fprintln(w, cliPrimary.Bold(true).Render("Weekly downloads of "+s.Package))
	_, _ = fmt.Fprintln(w)

	values := s.Values()
	labels := s.Labels()

	col := 1
	for _, l := range labels {
		col = max(col, runewidth.StringWidth(l))
	}
	col++
	showLabels := col*len(values) <= width

	var spark, axis strings.Builder
	for i, v := range values {
		block := string(sparkBlock(v, values))
		if showLabels {
			spark.WriteString(runewidth.FillRight(block, col))
			axis.WriteString(runewidth.FillRight(labels[i], col))
		} else {
			spark.WriteString(block)
		}
	}
	_, _ = fmt.Fprintln(w, "  "+cliAccent.Render(strings.TrimRight(spark.String(), " ")))
	if showLabels {
		_, _ = fmt.Fprintln(w, "  "+cliMuted.Render(strings.TrimRight(axis.String(), " ")))
	}
	_, _ = fmt.Fprintln(w)

	if s.Status == downloads.StatusReady || s.Status == downloads.StatusEmpty {
		_, _ = fmt.Fprintln(w, p.Sprintf("  This week:  %d (%s)", s.Weekly, downloads.FormatCount(s.Weekly)))
		_, _ = fmt.Fprintln(w, p.Sprintf("  This month: %d (%s)", s.Monthly, downloads.FormatCount(s.Monthly)))
	}
	if msg := s.Message(); msg != "" {
		_, _ = fmt.Fprintln(w, "  "+cliMuted.Render(msg))
	}
	if overlay := s.Overlay(); overlay != "" {
		_, _ = fmt.Fprintln(w, "  "+cliWarn.Render(overlay))
	}
}

// sparkBlock scales v against the largest value in values.
func sparkBlock(v int64, values []int64) rune {
	var top int64
	for _, x := range values {
		top = max(top, x)
	}
	if top <= 0 || v <= 0 {
		return sparkBlocks[0]
	}
	idx := int(v * int64(len(sparkBlocks)-1) / top)
	return sparkBlocks[idx]
}
