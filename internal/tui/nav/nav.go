package nav

import (
	"strconv"

	"televid/internal/televideo"
)

const maxDigits = 3

// AppendDigit grows the pending page buffer. Input is ignored once three
// digits are held so the buffer never exceeds the page number width.
func AppendDigit(buffer string, digit rune) string {
	if digit < '0' || digit > '9' || len(buffer) >= maxDigits {
		return buffer
	}
	return buffer + string(digit)
}

// PopDigit drops the last buffered digit, a no-op on an empty buffer.
func PopDigit(buffer string) string {
	if buffer == "" {
		return buffer
	}
	return buffer[:len(buffer)-1]
}

// Submit parses the pending buffer into a page target. ok is false when
// the buffer is empty or the value falls outside the valid page range.
func Submit(buffer string) (televideo.PageAddress, bool) {
	page, err := strconv.Atoi(buffer)
	if err != nil {
		return televideo.PageAddress{}, false
	}
	addr := televideo.PageAddress{Page: page, Sub: 1}
	return addr, addr.Valid()
}

// StepPage moves the page by delta, clamped to the valid range, and drops
// the sub-page: arrow navigation always lands on the base page.
func StepPage(addr televideo.PageAddress, delta int) televideo.PageAddress {
	page := addr.Page + delta
	if page < televideo.MinPage {
		page = televideo.MinPage
	}
	if page > televideo.MaxPage {
		page = televideo.MaxPage
	}
	return televideo.PageAddress{Page: page, Sub: 1}
}

// StepSub moves the sub-page by delta. The service does not expose
// sub-page counts, so moving down is attempted blindly; moving up stops at
// the base page.
func StepSub(addr televideo.PageAddress, delta int) televideo.PageAddress {
	sub := addr.Sub
	if sub < 1 {
		sub = 1
	}
	sub += delta
	if sub < 1 {
		sub = 1
	}
	return televideo.PageAddress{Page: addr.Page, Sub: sub}
}
