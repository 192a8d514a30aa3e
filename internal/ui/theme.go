package ui

import "github.com/charmbracelet/lipgloss"

// Palette: chalkboard greens, paper whites, red-pen accents.
var (
	Chalk  = lipgloss.Color("#E8E6D9")
	Board  = lipgloss.Color("#2F4F3E")
	Leaf   = lipgloss.Color("#5FB878")
	Pencil = lipgloss.Color("#F2B705")
	RedPen = lipgloss.Color("#D64545")
	Ink    = lipgloss.Color("#3A7BD5")
	Dim    = lipgloss.Color("#666666")
	Bright = lipgloss.Color("#FFFFFF")

	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Leaf)

	Success = lipgloss.NewStyle().
		Foreground(Leaf)

	Error = lipgloss.NewStyle().
		Foreground(RedPen)

	Warning = lipgloss.NewStyle().
		Foreground(Pencil)

	Info = lipgloss.NewStyle().
		Foreground(Ink)

	Muted = lipgloss.NewStyle().
		Foreground(Dim)

	Accent = lipgloss.NewStyle().
		Foreground(Pencil).
		Bold(true)

	// Tag renders a subject label.
	Tag = lipgloss.NewStyle().
		Foreground(Chalk).
		Background(Board).
		Padding(0, 1)

	KeyStyle = lipgloss.NewStyle().
			Foreground(Pencil).
			Bold(true)

	ValueStyle = lipgloss.NewStyle().
			Foreground(Bright)
)

const (
	IconBook    = "📚"
	IconPlan    = "🗓 "
	IconDone    = "✅"
	IconOverdue = "🔴"
	IconRepeat  = "🔁"
	IconClock   = "⏱ "
	IconFire    = "🔥"
	IconStar    = "⭐"
	IconWarn    = "⚠️ "
	IconError   = "✗ "
	IconOk      = "✓ "
	IconArrow   = "→"
	IconDot     = "·"
)
