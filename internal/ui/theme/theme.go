package theme

import (
	"charm.land/lipgloss/v2"
)

// Color palette — muted Bluebook look: dark surface, blue accent
var (
	Primary     = lipgloss.Color("#2563EB") // Blue
	Accent      = lipgloss.Color("#F59E0B") // Amber (review flags)
	Success     = lipgloss.Color("#16A34A") // Green
	Error       = lipgloss.Color("#DC2626") // Red
	TimerWarn   = lipgloss.Color("#D97706") // Amber, elapsed >= 2 min
	TimerDanger = lipgloss.Color("#DC2626") // Red, elapsed >= 3 min
	Text        = lipgloss.Color("#F8FAFC") // White
	TextDim     = lipgloss.Color("#94A3B8") // Slate
	BgCard      = lipgloss.Color("#1E293B") // Dark Slate
	Border      = lipgloss.Color("#334155") // Slate
)

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		Align(lipgloss.Center)

	Subtitle = lipgloss.NewStyle().
			Foreground(TextDim).
			Align(lipgloss.Center)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)
)

// Layout
var (
	Card = lipgloss.NewStyle().
		Background(BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(1, 2)
)

// States
var (
	Selected = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	Unselected = lipgloss.NewStyle().
			Foreground(Text)

	Correct = lipgloss.NewStyle().
		Foreground(Success).
		Bold(true)

	Incorrect = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)

	Marked = lipgloss.NewStyle().
		Foreground(Accent).
		Bold(true)
)
