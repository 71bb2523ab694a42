package view

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestBar_PadsToWidth(t *testing.T) {
	got := Bar("  left", "right  ", 20)
	if lipgloss.Width(got) != 20 {
		t.Fatalf("expected width 20, got %d (%q)", lipgloss.Width(got), got)
	}
	if !strings.HasPrefix(got, "  left") || !strings.HasSuffix(got, "right  ") {
		t.Fatalf("unexpected bar layout: %q", got)
	}
}

func TestBar_TruncatesWhenNarrow(t *testing.T) {
	got := Bar("a very long left fragment", "", 10)
	if lipgloss.Width(got) != 10 {
		t.Fatalf("expected width 10, got %d (%q)", lipgloss.Width(got), got)
	}
}

func TestHeader(t *testing.T) {
	got := Header("120.2", "kitty", false, false, 60)
	if !strings.Contains(got, "Page 120.2") {
		t.Fatalf("expected page address in header: %q", got)
	}
	if !strings.Contains(got, "mode kitty") {
		t.Fatalf("expected render mode in header: %q", got)
	}

	if got := Header("100", "sixel", true, false, 60); !strings.Contains(got, "Loading...") {
		t.Fatalf("expected loading tag: %q", got)
	}
	if got := Header("100", "sixel", false, true, 60); !strings.Contains(got, "ERROR") {
		t.Fatalf("expected error tag: %q", got)
	}
}

func TestFooter_PromptWinsOverStatusAndHelp(t *testing.T) {
	if got := Footer("12", "Cache cleared", 60); !strings.Contains(got, "Go to page: 12_") {
		t.Fatalf("expected digit prompt: %q", got)
	}
	if got := Footer("", "Cache cleared", 60); !strings.Contains(got, "Cache cleared") {
		t.Fatalf("expected status line: %q", got)
	}
	if got := Footer("", "", 120); !strings.Contains(got, "[0-9] Jump") {
		t.Fatalf("expected key help: %q", got)
	}
}

func TestPlaceholder_CentersMessage(t *testing.T) {
	got := Placeholder(20, 5, "Page unavailable")
	lines := strings.Split(got, "\n")
	if len(lines) != 5 {
		t.Fatalf("expected 5 lines, got %d", len(lines))
	}
	if !strings.Contains(lines[2], "Page unavailable") {
		t.Fatalf("expected message on middle line: %q", got)
	}
	if !strings.HasPrefix(lines[2], "  ") {
		t.Fatalf("expected horizontal centering: %q", lines[2])
	}
}
