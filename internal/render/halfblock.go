package render

import (
	"image"
	"strings"

	"github.com/muesli/termenv"
)

const upperHalfBlock = "▀"

// frameHalfBlock reduces the image to colored half-block cells: every
// output cell covers a 1x2 pixel block, foreground colored from the upper
// pixel and background from the lower one. Colors are degraded through the
// detected termenv profile.
func frameHalfBlock(img image.Image, box Box, vp Viewport, profile termenv.Profile) string {
	scaled := scaleRGBA(img, box.Cols, box.Rows*2)
	indent := strings.Repeat(" ", box.X)

	lines := make([]string, 0, vp.Rows)
	for y := 0; y < box.Y; y++ {
		lines = append(lines, "")
	}
	for row := 0; row < box.Rows; row++ {
		var b strings.Builder
		b.WriteString(indent)
		for col := 0; col < box.Cols; col++ {
			top := scaled.RGBAAt(col, row*2)
			bottom := scaled.RGBAAt(col, row*2+1)
			cell := termenv.String(upperHalfBlock).
				Foreground(profile.FromColor(top)).
				Background(profile.FromColor(bottom))
			b.WriteString(cell.String())
		}
		lines = append(lines, b.String())
	}
	for len(lines) < vp.Rows {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}
