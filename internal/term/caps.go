package term

import (
	"fmt"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// RenderMode selects how page images reach the terminal, best first. It is
// detected once at startup and never changes mid-session.
type RenderMode int

const (
	ModeITerm2    RenderMode = iota // inline base64 images (iTerm2, WezTerm)
	ModeKitty                       // kitty graphics protocol
	ModeSixel                       // DEC sixel
	ModeHalfBlock                   // colored half-block cells, always available
)

func (m RenderMode) String() string {
	switch m {
	case ModeITerm2:
		return "iterm2"
	case ModeKitty:
		return "kitty"
	case ModeSixel:
		return "sixel"
	default:
		return "halfblock"
	}
}

// ParseMode maps a config override onto a RenderMode.
func ParseMode(name string) (RenderMode, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "iterm2":
		return ModeITerm2, true
	case "kitty":
		return ModeKitty, true
	case "sixel":
		return ModeSixel, true
	case "halfblock":
		return ModeHalfBlock, true
	}
	return ModeHalfBlock, false
}

// Detect probes the environment once, in decreasing fidelity order. The
// half-block fallback always succeeds, so there is no failure path.
func Detect() RenderMode {
	return detect(os.Getenv)
}

func detect(getenv func(string) string) RenderMode {
	switch {
	case supportsITerm2(getenv):
		return ModeITerm2
	case supportsKitty(getenv):
		return ModeKitty
	case supportsSixel(getenv):
		return ModeSixel
	default:
		return ModeHalfBlock
	}
}

func supportsITerm2(getenv func(string) string) bool {
	program := strings.ToLower(strings.TrimSpace(getenv("TERM_PROGRAM")))
	if strings.Contains(program, "iterm") || strings.Contains(program, "wezterm") {
		return true
	}
	return strings.Contains(strings.ToLower(getenv("LC_TERMINAL")), "iterm")
}

func supportsKitty(getenv func(string) string) bool {
	if getenv("KITTY_WINDOW_ID") != "" {
		return true
	}
	program := strings.ToLower(strings.TrimSpace(getenv("TERM_PROGRAM")))
	if strings.Contains(program, "kitty") || strings.Contains(program, "ghostty") {
		return true
	}
	term := strings.ToLower(strings.TrimSpace(getenv("TERM")))
	return strings.Contains(term, "xterm-kitty") || strings.Contains(term, "ghostty")
}

var sixelTerms = []string{"mlterm", "foot", "yaft", "contour"}

func supportsSixel(getenv func(string) string) bool {
	term := strings.ToLower(strings.TrimSpace(getenv("TERM")))
	if strings.Contains(term, "sixel") {
		return true
	}
	for _, known := range sixelTerms {
		if strings.Contains(term, known) {
			return true
		}
	}
	return false
}

// CellGeometry is the pixel size of one character cell, used for aspect
// ratio math when fitting images into cell rectangles.
type CellGeometry struct {
	Width  int
	Height int
}

// DefaultCellGeometry is the common 8x16 font cell, used when the terminal
// cannot be queried for its real metrics.
func DefaultCellGeometry() CellGeometry {
	return CellGeometry{Width: 8, Height: 16}
}

// ColorProfile reports the ANSI color depth used to degrade half-block
// output on terminals without truecolor support.
func ColorProfile() termenv.Profile {
	return termenv.EnvColorProfile()
}

// RequireTTY fails when f is not attached to a terminal; the viewer cannot
// initialize any rendering mode without one.
func RequireTTY(f *os.File) error {
	if isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()) {
		return nil
	}
	return fmt.Errorf("%s is not a terminal", f.Name())
}
