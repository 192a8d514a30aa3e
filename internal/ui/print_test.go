package ui

import (
	"testing"
)

func TestGreet(t *testing.T) {
	tests := []struct {
		name     string
		expected string
	}{
		{"", "📚 Ready to study?"},
		{"Ada", "📚 Ready to study, Ada?"},
	}

	for _, tt := range tests {
		got := Greet(tt.name)
		if got != tt.expected {
			t.Errorf("Greet(%q) = %q, want %q", tt.name, got, tt.expected)
		}
	}
}

func TestMinutes(t *testing.T) {
	tests := []struct {
		in   int
		want string
	}{
		{0, "0m"},
		{45, "45m"},
		{60, "1h"},
		{90, "1h 30m"},
		{480, "8h"},
	}
	for _, tt := range tests {
		if got := Minutes(tt.in); got != tt.want {
			t.Errorf("Minutes(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestBar(t *testing.T) {
	tests := []struct {
		pct   float64
		width int
		want  string
	}{
		{0, 4, "░░░░"},
		{50, 4, "██░░"},
		{100, 4, "████"},
		{150, 4, "████"},
		{-10, 4, "░░░░"},
		{50, 0, ""},
	}
	for _, tt := range tests {
		if got := Bar(tt.pct, tt.width); got != tt.want {
			t.Errorf("Bar(%v, %d) = %q, want %q", tt.pct, tt.width, got, tt.want)
		}
	}
}

func TestRule(t *testing.T) {
	if got := Rule("Plan"); got != "──────" {
		t.Errorf("Rule(Plan) = %q", got)
	}
}
