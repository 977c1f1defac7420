package cli

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// CLI output styles.
var (
	cliSuccess = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#059669", Dark: "#10B981"})
	cliWarn    = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#D97706", Dark: "#F59E0B"})
	cliError   = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#DC2626", Dark: "#EF4444"})
	cliMuted   = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#9CA3AF"})
	cliPrimary = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#1D4ED8", Dark: "#60A5FA"})
	cliAccent  = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#0E7490", Dark: "#22D3EE"})
	cliMagenta = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#A21CAF", Dark: "#E879F9"})
	cliBorder  = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#D1D5DB", Dark: "#4B5563"})
)

func symSuccess() string  { return cliSuccess.Render("✓") }
func symError() string    { return cliError.Render("✗") }
func symWarning() string  { return cliWarn.Render("⚠") }
func symProgress() string { return cliMuted.Render("○") }

func cardStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(cliBorder.GetForeground()).
		Padding(0, 2)
}

// renderBanner draws the title shown before the prompts.
func renderBanner() string {
	title := lipgloss.NewStyle().
		Bold(true).
		Foreground(cliPrimary.GetForeground()).
		Render("I n i t G e n")
	subtitle := cliAccent.Render("Project Structure Generator \U0001F680")
	return cardStyle().Render(title + "\n" + subtitle)
}

// successCard renders the check mark title followed by detail lines.
func successCard(title string, details ...string) string {
	var b strings.Builder
	b.WriteString(symSuccess() + " " + cliSuccess.Bold(true).Render(title))
	if len(details) > 0 {
		b.WriteString("\n\n")
		b.WriteString(strings.Join(details, "\n"))
	}
	return cardStyle().Render(b.String())
}
