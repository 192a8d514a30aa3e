package ui

import (
	"fmt"
	"os"
	"strings"
)

// Puts prints a line to stdout.
func Puts(s string) {
	fmt.Println(s)
}

// Putsf prints a formatted line to stdout.
func Putsf(format string, args ...any) {
	fmt.Printf(format+"\n", args...)
}

// Warn prints a warning message.
func Warn(msg string) {
	fmt.Println(Warning.Render(IconWarn + msg))
}

// Err prints an error message to stderr.
func Err(msg string) {
	fmt.Fprintln(os.Stderr, Error.Bold(true).Render(IconError+msg))
}

// Ok prints a success message.
func Ok(msg string) {
	fmt.Println(Success.Render(IconOk + msg))
}

// Inf prints an info message.
func Inf(msg string) {
	fmt.Println(Info.Render("  " + msg))
}

// Header prints a section header.
func Header(s string) {
	fmt.Println()
	fmt.Println(Title.Render(s))
	fmt.Println(Muted.Render(Rule(s)))
}

// Rule returns an underline sized to s.
func Rule(s string) string {
	return strings.Repeat("─", len([]rune(s))+2)
}

// Tip prints a helpful tip.
func Tip(msg string) {
	fmt.Println()
	fmt.Println(Muted.Render("  tip: " + msg))
}

// Kv prints a key-value pair, padded.
func Kv(key string, value string) {
	k := KeyStyle.Render(fmt.Sprintf("  %-14s", key))
	fmt.Printf("%s %s\n", k, ValueStyle.Render(value))
}

// Greet returns a greeting for the study profile owner.
func Greet(name string) string {
	if name == "" {
		return IconBook + " Ready to study?"
	}
	return fmt.Sprintf("%s Ready to study, %s?", IconBook, name)
}

// Bar renders a fixed-width progress bar for a percentage in [0,100].
func Bar(pct float64, width int) string {
	if width <= 0 {
		return ""
	}
	filled := int(pct / 100 * float64(width))
	switch {
	case filled < 0:
		filled = 0
	case filled > width:
		filled = width
	}
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}

// Minutes formats a minute count as "1h 30m", "45m" or "2h".
func Minutes(m int) string {
	h, rem := m/60, m%60
	switch {
	case h == 0:
		return fmt.Sprintf("%dm", rem)
	case rem == 0:
		return fmt.Sprintf("%dh", h)
	default:
		return fmt.Sprintf("%dh %dm", h, rem)
	}
}
