package view

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Bar joins a left-aligned and a right-aligned fragment into one
// full-width line, truncating the left side when the terminal is too
// narrow.
func Bar(left, right string, width int) string {
	if width <= 0 {
		return ""
	}
	pad := width - lipgloss.Width(left) - lipgloss.Width(right)
	if pad < 0 {
		runes := []rune(left)
		keep := len(runes) + pad
		if keep < 0 {
			keep = 0
		}
		left = string(runes[:keep])
		pad = 0
	}
	return left + strings.Repeat(" ", pad) + right
}

// Header is the fixed top bar: current target on the left, activity tag on
// the right.
func Header(addr, mode string, loading, hasError bool, width int) string {
	left := "  TELEVIDEO RAI · Page " + addr
	right := "mode " + mode + "  "
	if loading {
		right = "Loading...  "
	} else if hasError {
		right = "ERROR  "
	}
	return Bar(left, right, width)
}

// Footer is the fixed bottom bar: the digit prompt wins over a transient
// status, which wins over the key help.
func Footer(pending, status string, width int) string {
	switch {
	case pending != "":
		return Bar("  Go to page: "+pending+"_", "", width)
	case status != "":
		return Bar("  "+status, "", width)
	default:
		return Bar("  [←/→] Page  [↑/↓] Sub-page  [0-9] Jump  [c] Clear cache  [q] Quit", "", width)
	}
}

// Placeholder fills the viewport with a centered one-line message, shown
// when no page has been rendered yet.
func Placeholder(cols, rows int, message string) string {
	if rows <= 0 {
		return ""
	}
	lines := make([]string, rows)
	pad := (cols - lipgloss.Width(message)) / 2
	if pad < 0 {
		pad = 0
	}
	lines[rows/2] = strings.Repeat(" ", pad) + message
	return strings.Join(lines, "\n")
}
