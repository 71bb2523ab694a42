package televideo

import (
	"fmt"
	"image"
	"strconv"
	"time"
)

// Valid Televideo page numbers are three digits.
const (
	MinPage = 100
	MaxPage = 899
)

// PageAddress identifies one renderable teletext unit. Sub values of 1 or
// below address the base page, which has no sub-page suffix on the wire.
type PageAddress struct {
	Page int
	Sub  int
}

func (a PageAddress) Valid() bool {
	return a.Page >= MinPage && a.Page <= MaxPage
}

func (a PageAddress) HasSub() bool {
	return a.Sub > 1
}

func (a PageAddress) String() string {
	if a.HasSub() {
		return fmt.Sprintf("%d.%d", a.Page, a.Sub)
	}
	return strconv.Itoa(a.Page)
}

// Page is one fetched and decoded page image. Pages are replaced on
// refresh, never mutated.
type Page struct {
	Address   PageAddress
	Raw       []byte
	Image     image.Image
	FetchedAt time.Time
}
