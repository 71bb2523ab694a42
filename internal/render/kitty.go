package render

import (
	"encoding/base64"
	"fmt"
	"strings"
)

const kittyChunkSize = 4096

// kittySequence transmits the raw PNG through the kitty graphics protocol
// and places it over the letterbox cell area. f=100 marks PNG payloads, so
// the terminal does its own decode and no pixel re-encoding is needed.
func kittySequence(raw []byte, box Box) string {
	encoded := base64.StdEncoding.EncodeToString(raw)

	var b strings.Builder
	first := true
	for len(encoded) > 0 {
		chunk := encoded
		if len(chunk) > kittyChunkSize {
			chunk = encoded[:kittyChunkSize]
		}
		encoded = encoded[len(chunk):]

		more := 0
		if len(encoded) > 0 {
			more = 1
		}
		if first {
			fmt.Fprintf(&b, "\x1b_Ga=T,f=100,q=2,c=%d,r=%d,m=%d;%s\x1b\\", box.Cols, box.Rows, more, chunk)
			first = false
		} else {
			fmt.Fprintf(&b, "\x1b_Gm=%d;%s\x1b\\", more, chunk)
		}
	}
	return b.String()
}
