package televideo

import (
	"bytes"
	"context"
	"fmt"
	"image/png"
	"io"
	"net/http"
	"strings"
	"time"
)

const maxImageBytes = 5 * 1024 * 1024

// Client fetches page images from the Televideo web service.
type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    httpClient,
	}
}

// PageURL builds the 16:9 image locator for addr. Sub-pages append their
// index between the page number and the extension.
func (c *Client) PageURL(addr PageAddress) string {
	if addr.HasSub() {
		return fmt.Sprintf("%s/16_9_page-%d.%d.png", c.baseURL, addr.Page, addr.Sub)
	}
	return fmt.Sprintf("%s/16_9_page-%d.png", c.baseURL, addr.Page)
}

// FetchPage performs a single blocking retrieval and decode. There is no
// retry; a failure surfaces straight to the caller.
func (c *Client) FetchPage(ctx context.Context, addr PageAddress) (*Page, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.PageURL(addr), nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch page %s: %w", addr, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("page %s not found", addr)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("fetch page %s: status %d", addr, resp.StatusCode)
	}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxImageBytes))
	if err != nil {
		return nil, fmt.Errorf("read page %s: %w", addr, err)
	}

	img, err := png.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("decode page %s: %w", addr, err)
	}

	return &Page{Address: addr, Raw: raw, Image: img, FetchedAt: time.Now()}, nil
}
