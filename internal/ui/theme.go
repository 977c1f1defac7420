// Package ui provides the terminal building blocks shared by commands: a
// color theme, TTY detection and a spinner that degrades to plain lines.
package ui

import "os"

// Colors holds the hex palette used by styles.
type Colors struct {
	Primary   string
	Secondary string
	Success   string
	Warning   string
	Error     string
	Muted     string
}

// Theme configures how components draw.
type Theme struct {
	NoColor bool
	Colors  Colors
}

// DefaultTheme returns the InitGen palette. NO_COLOR disables color.
func DefaultTheme() *Theme {
	return &Theme{
		NoColor: os.Getenv("NO_COLOR") != "",
		Colors: Colors{
			Primary:   "#2563EB",
			Secondary: "#06B6D4",
			Success:   "#10B981",
			Warning:   "#F59E0B",
			Error:     "#EF4444",
			Muted:     "#6B7280",
		},
	}
}
