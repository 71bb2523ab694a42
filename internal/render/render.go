package render

import (
	"image"
	"strings"

	"github.com/muesli/termenv"
	"golang.org/x/image/draw"

	"televid/internal/televideo"
	"televid/internal/term"
)

// Viewport is the cell rectangle a frame may occupy. Rendered output never
// positions anything outside it, which keeps the chrome rows fixed.
type Viewport struct {
	Cols int
	Rows int
}

// Box is a letterboxed placement in cell units, relative to the viewport
// origin.
type Box struct {
	X    int
	Y    int
	Cols int
	Rows int
}

// Fit letterboxes an imgW x imgH pixel image into the viewport, preserving
// aspect ratio under the given cell geometry and centering the result.
func Fit(imgW, imgH int, vp Viewport, cell term.CellGeometry) Box {
	if imgW <= 0 || imgH <= 0 || vp.Cols <= 0 || vp.Rows <= 0 {
		return Box{}
	}
	if cell.Width <= 0 || cell.Height <= 0 {
		cell = term.DefaultCellGeometry()
	}

	boxW := float64(vp.Cols * cell.Width)
	boxH := float64(vp.Rows * cell.Height)
	scale := boxW / float64(imgW)
	if s := boxH / float64(imgH); s < scale {
		scale = s
	}

	cols := int(float64(imgW) * scale / float64(cell.Width))
	rows := int(float64(imgH) * scale / float64(cell.Height))
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}
	if cols > vp.Cols {
		cols = vp.Cols
	}
	if rows > vp.Rows {
		rows = vp.Rows
	}

	return Box{X: (vp.Cols - cols) / 2, Y: (vp.Rows - rows) / 2, Cols: cols, Rows: rows}
}

// Frame renders the page into the viewport using the detected mode. The
// result is exactly vp.Rows newline-separated lines; blank lines pad the
// letterbox so the chrome above and below never shifts.
func Frame(page *televideo.Page, mode term.RenderMode, vp Viewport, cell term.CellGeometry, profile termenv.Profile) string {
	if page == nil || page.Image == nil || vp.Cols <= 0 || vp.Rows <= 0 {
		return blankLines(vp.Rows)
	}

	bounds := page.Image.Bounds()
	box := Fit(bounds.Dx(), bounds.Dy(), vp, cell)

	switch mode {
	case term.ModeHalfBlock:
		return frameHalfBlock(page.Image, box, vp, profile)
	case term.ModeSixel:
		return frameEscape(sixelSequence(page.Image, box, cell), box, vp)
	case term.ModeKitty:
		return frameEscape(kittySequence(page.Raw, box), box, vp)
	default:
		return frameEscape(itermSequence(page.Raw, box), box, vp)
	}
}

// frameEscape places a self-positioning protocol sequence at the top-left
// of the letterbox and pads the remaining viewport rows. The terminal
// draws the image downward from the cursor, inside the fitted box.
func frameEscape(seq string, box Box, vp Viewport) string {
	lines := make([]string, vp.Rows)
	if box.Y >= 0 && box.Y < len(lines) {
		lines[box.Y] = strings.Repeat(" ", box.X) + seq
	}
	return strings.Join(lines, "\n")
}

func blankLines(rows int) string {
	if rows <= 0 {
		return ""
	}
	return strings.Join(make([]string, rows), "\n")
}

// scaleRGBA resamples src to exactly w x h pixels.
func scaleRGBA(src image.Image, w, h int) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.ApproxBiLinear.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Over, nil)
	return dst
}
