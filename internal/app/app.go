package app

import (
	"context"
	"fmt"

	"televid/internal/televideo"
)

type Fetcher interface {
	FetchPage(ctx context.Context, addr televideo.PageAddress) (*televideo.Page, error)
}

type Cache interface {
	Get(addr televideo.PageAddress) (*televideo.Page, bool)
	Put(page *televideo.Page)
	Clear()
}

// Service resolves the page the UI wants displayed: cache first, then a
// single blocking fetch. Keeping this as its own step means key handlers
// never touch the network directly.
type Service struct {
	fetcher Fetcher
	cache   Cache
}

func NewService(fetcher Fetcher, cache Cache) *Service {
	return &Service{fetcher: fetcher, cache: cache}
}

func (s *Service) Resolve(ctx context.Context, addr televideo.PageAddress) (*televideo.Page, error) {
	if page, ok := s.cache.Get(addr); ok {
		return page, nil
	}

	page, err := s.fetcher.FetchPage(ctx, addr)
	if err != nil {
		return nil, fmt.Errorf("resolve page %s: %w", addr, err)
	}
	s.cache.Put(page)
	return page, nil
}

func (s *Service) ClearCache() {
	s.cache.Clear()
}
