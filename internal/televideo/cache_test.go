package televideo

import (
	"testing"
	"time"
)

func fixedClock(at time.Time) func() time.Time {
	return func() time.Time { return at }
}

func TestCache_RoundTripWithinTTL(t *testing.T) {
	start := time.Date(2026, 8, 25, 12, 0, 0, 0, time.UTC)
	c := NewCache(5 * time.Minute)
	c.nowFn = fixedClock(start)

	addr := PageAddress{Page: 101, Sub: 1}
	c.Put(&Page{Address: addr})

	c.nowFn = fixedClock(start.Add(4 * time.Minute))
	page, ok := c.Get(addr)
	if !ok {
		t.Fatal("expected cache hit within TTL")
	}
	if page.Address != addr {
		t.Fatalf("unexpected page address: %v", page.Address)
	}
	if !page.FetchedAt.Equal(start) {
		t.Fatalf("expected put to stamp fetch time, got %v", page.FetchedAt)
	}
}

func TestCache_ExpiresLazilyOnRead(t *testing.T) {
	start := time.Date(2026, 8, 25, 12, 0, 0, 0, time.UTC)
	c := NewCache(5 * time.Minute)
	c.nowFn = fixedClock(start)

	addr := PageAddress{Page: 101, Sub: 1}
	c.Put(&Page{Address: addr})

	c.nowFn = fixedClock(start.Add(5 * time.Minute))
	if _, ok := c.Get(addr); ok {
		t.Fatal("expected miss after TTL elapsed")
	}
	if c.Len() != 0 {
		t.Fatalf("expected expired entry to be dropped, len=%d", c.Len())
	}
}

func TestCache_PutReplacesEntry(t *testing.T) {
	start := time.Date(2026, 8, 25, 12, 0, 0, 0, time.UTC)
	c := NewCache(5 * time.Minute)
	c.nowFn = fixedClock(start)

	addr := PageAddress{Page: 150, Sub: 1}
	c.Put(&Page{Address: addr, Raw: []byte("old")})
	c.Put(&Page{Address: addr, Raw: []byte("new")})

	if c.Len() != 1 {
		t.Fatalf("expected one entry per address, len=%d", c.Len())
	}
	page, ok := c.Get(addr)
	if !ok {
		t.Fatal("expected cache hit")
	}
	if string(page.Raw) != "new" {
		t.Fatalf("expected replaced entry, got %q", page.Raw)
	}
}

func TestCache_ClearRemovesEverything(t *testing.T) {
	c := NewCache(5 * time.Minute)
	addrs := []PageAddress{
		{Page: 100, Sub: 1},
		{Page: 100, Sub: 2},
		{Page: 205, Sub: 1},
	}
	for _, addr := range addrs {
		c.Put(&Page{Address: addr})
	}

	c.Clear()

	for _, addr := range addrs {
		if _, ok := c.Get(addr); ok {
			t.Fatalf("expected miss for %s after clear", addr)
		}
	}
}
