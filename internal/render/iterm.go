package render

import (
	"encoding/base64"
	"fmt"
)

// itermSequence inlines the raw PNG with the iTerm2 OSC 1337 file
// protocol, sized in cells. The terminal preserves aspect ratio inside the
// requested area, matching the letterbox fit.
func itermSequence(raw []byte, box Box) string {
	encoded := base64.StdEncoding.EncodeToString(raw)
	return fmt.Sprintf("\x1b]1337;File=inline=1;size=%d;width=%d;height=%d;preserveAspectRatio=1:%s\a",
		len(raw), box.Cols, box.Rows, encoded)
}
