package render

import (
	"image"
	"image/color"
	"strings"
	"testing"

	"github.com/muesli/termenv"
)

func TestFrameHalfBlock_SamplesTopAndBottomPixels(t *testing.T) {
	// One cell: red over blue.
	img := image.NewRGBA(image.Rect(0, 0, 1, 2))
	img.Set(0, 0, color.RGBA{R: 255, A: 255})
	img.Set(0, 1, color.RGBA{B: 255, A: 255})

	box := Box{X: 0, Y: 0, Cols: 1, Rows: 1}
	out := frameHalfBlock(img, box, Viewport{Cols: 1, Rows: 1}, termenv.TrueColor)

	if !strings.Contains(out, upperHalfBlock) {
		t.Fatalf("expected half-block glyph in output: %q", out)
	}
	if !strings.Contains(out, "38;2;255;0;0") {
		t.Fatalf("expected red foreground from top pixel: %q", out)
	}
	if !strings.Contains(out, "48;2;0;0;255") {
		t.Fatalf("expected blue background from bottom pixel: %q", out)
	}
}

func TestFrameHalfBlock_IndentsAndPadsLetterbox(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	box := Box{X: 3, Y: 2, Cols: 4, Rows: 2}
	vp := Viewport{Cols: 10, Rows: 8}

	out := frameHalfBlock(img, box, vp, termenv.TrueColor)
	lines := strings.Split(out, "\n")
	if len(lines) != vp.Rows {
		t.Fatalf("expected %d lines, got %d", vp.Rows, len(lines))
	}
	for i := 0; i < box.Y; i++ {
		if lines[i] != "" {
			t.Fatalf("expected blank top padding on line %d", i)
		}
	}
	imageLine := stripANSI(lines[box.Y])
	if !strings.HasPrefix(imageLine, "   ") {
		t.Fatalf("expected 3-space indent, got %q", imageLine)
	}
	if got := strings.Count(imageLine, upperHalfBlock); got != box.Cols {
		t.Fatalf("expected %d glyphs per row, got %d", box.Cols, got)
	}
	for i := box.Y + box.Rows; i < vp.Rows; i++ {
		if lines[i] != "" {
			t.Fatalf("expected blank bottom padding on line %d", i)
		}
	}
}
