package televideo

import "time"

// DefaultTTL matches the service's own refresh cadence.
const DefaultTTL = 5 * time.Minute

// Cache keeps decoded pages keyed by address. Expiry is lazy: entries are
// checked against the TTL on read, never swept in the background. The key
// space is small (800 pages times a handful of sub-pages), so there is no
// capacity bound either.
type Cache struct {
	ttl     time.Duration
	nowFn   func() time.Time
	entries map[PageAddress]*Page
}

func NewCache(ttl time.Duration) *Cache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Cache{
		ttl:     ttl,
		nowFn:   time.Now,
		entries: make(map[PageAddress]*Page),
	}
}

// Get returns the cached page for addr, treating expired entries as absent.
func (c *Cache) Get(addr PageAddress) (*Page, bool) {
	page, ok := c.entries[addr]
	if !ok {
		return nil, false
	}
	if c.nowFn().Sub(page.FetchedAt) >= c.ttl {
		delete(c.entries, addr)
		return nil, false
	}
	return page, true
}

// Put inserts or replaces the entry for the page's address, stamping it
// with the cache clock.
func (c *Cache) Put(page *Page) {
	page.FetchedAt = c.nowFn()
	c.entries[page.Address] = page
}

func (c *Cache) Clear() {
	c.entries = make(map[PageAddress]*Page)
}

func (c *Cache) Len() int {
	return len(c.entries)
}
