package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"
)

const defaultBaseURL = "http://www.televideo.rai.it/televideo/pub/tt4web/Nazionale"

// Config holds runtime settings for the viewer.
type Config struct {
	BaseURL     string
	HTTPTimeout time.Duration
	RenderMode  string
}

func LoadFromEnv() (Config, error) {
	cfg := Config{
		BaseURL:     os.Getenv("TELEVID_BASE_URL"),
		RenderMode:  os.Getenv("TELEVID_RENDER_MODE"),
		HTTPTimeout: 10 * time.Second,
	}

	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	if raw := os.Getenv("TELEVID_HTTP_TIMEOUT"); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil {
			return Config{}, fmt.Errorf("TELEVID_HTTP_TIMEOUT must be a duration like 10s: %w", err)
		}
		cfg.HTTPTimeout = d
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.BaseURL == "" {
		return errors.New("BaseURL is required")
	}
	parsed, err := url.Parse(c.BaseURL)
	if err != nil || parsed.Host == "" {
		return fmt.Errorf("BaseURL is not a valid URL: %s", c.BaseURL)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return fmt.Errorf("BaseURL scheme must be http or https: %s", c.BaseURL)
	}
	if strings.HasSuffix(c.BaseURL, "/") {
		return fmt.Errorf("BaseURL must not end with '/': %s", c.BaseURL)
	}
	if c.HTTPTimeout <= 0 {
		return errors.New("HTTPTimeout must be positive")
	}
	switch c.RenderMode {
	case "", "iterm2", "kitty", "sixel", "halfblock":
	default:
		return fmt.Errorf("TELEVID_RENDER_MODE must be iterm2, kitty, sixel or halfblock: %s", c.RenderMode)
	}
	return nil
}
