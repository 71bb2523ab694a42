package main

import (
	"log"
	"net/http"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"televid/internal/app"
	"televid/internal/config"
	"televid/internal/televideo"
	"televid/internal/term"
	"televid/internal/tui"
)

func main() {
	cfg, err := config.LoadFromEnv()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	if err := term.RequireTTY(os.Stdout); err != nil {
		log.Fatalf("terminal error: %v", err)
	}

	mode := term.Detect()
	if forced, ok := term.ParseMode(cfg.RenderMode); cfg.RenderMode != "" && ok {
		mode = forced
	}

	client := televideo.NewClient(cfg.BaseURL, &http.Client{Timeout: cfg.HTTPTimeout})
	cache := televideo.NewCache(televideo.DefaultTTL)
	service := app.NewService(client, cache)

	model := tui.NewModel(service, mode, term.DefaultCellGeometry(), term.ColorProfile())
	program := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		log.Fatalf("tui error: %v", err)
	}
}
