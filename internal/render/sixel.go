package render

import (
	"bytes"
	"image"

	"github.com/mattn/go-sixel"

	"televid/internal/term"
)

// sixelSequence scales the image to the letterbox's pixel dimensions and
// encodes it as DEC sixel data.
func sixelSequence(img image.Image, box Box, cell term.CellGeometry) string {
	if cell.Width <= 0 || cell.Height <= 0 {
		cell = term.DefaultCellGeometry()
	}
	scaled := scaleRGBA(img, box.Cols*cell.Width, box.Rows*cell.Height)

	var buf bytes.Buffer
	enc := sixel.NewEncoder(&buf)
	enc.Width = scaled.Bounds().Dx()
	enc.Height = scaled.Bounds().Dy()
	if err := enc.Encode(scaled); err != nil {
		return ""
	}
	return buf.String()
}
