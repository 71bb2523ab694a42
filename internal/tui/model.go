package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/muesli/termenv"

	"televid/internal/render"
	"televid/internal/televideo"
	"televid/internal/term"
	"televid/internal/tui/nav"
	tuitheme "televid/internal/tui/theme"
	"televid/internal/tui/view"
)

type Service interface {
	Resolve(ctx context.Context, addr televideo.PageAddress) (*televideo.Page, error)
	ClearCache()
}

type pageLoadedMsg struct {
	page *televideo.Page
}

type pageErrorMsg struct {
	addr televideo.PageAddress
	err  error
}

type clearStatusMsg struct {
	id int
}

// chromeRows is the header plus the footer; everything between is the
// image viewport.
const chromeRows = 2

type Model struct {
	service Service
	mode    term.RenderMode
	cell    term.CellGeometry
	profile termenv.Profile
	theme   tuitheme.Theme

	addr    televideo.PageAddress
	pending string
	current *televideo.Page
	loading bool
	errMsg  string

	status   string
	statusID int

	width  int
	height int

	resolveTimeout time.Duration
	statusTTL      time.Duration
}

func NewModel(service Service, mode term.RenderMode, cell term.CellGeometry, profile termenv.Profile) Model {
	return Model{
		service:        service,
		mode:           mode,
		cell:           cell,
		profile:        profile,
		theme:          tuitheme.Default(),
		addr:           televideo.PageAddress{Page: televideo.MinPage, Sub: 1},
		loading:        true,
		resolveTimeout: 15 * time.Second,
		statusTTL:      4 * time.Second,
	}
}

func (m Model) Init() tea.Cmd {
	if m.service == nil {
		return nil
	}
	return resolvePageCmd(m.service, m.addr, m.resolveTimeout)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	case pageLoadedMsg:
		if msg.page.Address != m.addr {
			// Late resolve for an address the user already left.
			return m, nil
		}
		m.loading = false
		m.errMsg = ""
		m.current = msg.page
		return m, nil
	case pageErrorMsg:
		if msg.addr != m.addr {
			return m, nil
		}
		m.loading = false
		m.errMsg = msg.err.Error()
		return m, nil
	case clearStatusMsg:
		if msg.id == m.statusID {
			m.status = ""
		}
		return m, nil
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	switch key {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "backspace":
		m.pending = nav.PopDigit(m.pending)
		return m, nil
	case "esc":
		m.pending = ""
		return m, nil
	case "enter":
		if m.pending == "" {
			return m, nil
		}
		addr, ok := nav.Submit(m.pending)
		m.pending = ""
		if !ok {
			return m.flashStatus(fmt.Sprintf("Page must be between %d and %d", televideo.MinPage, televideo.MaxPage))
		}
		m.errMsg = ""
		return m.gotoAddress(addr)
	case "left":
		return m.gotoAddress(nav.StepPage(m.addr, -1))
	case "right":
		return m.gotoAddress(nav.StepPage(m.addr, 1))
	case "up":
		return m.gotoAddress(nav.StepSub(m.addr, -1))
	case "down":
		return m.gotoAddress(nav.StepSub(m.addr, 1))
	case "c":
		if m.service == nil {
			return m, nil
		}
		m.service.ClearCache()
		m.status = "Cache cleared"
		m.statusID++
		m.loading = true
		return m, tea.Batch(
			clearStatusCmd(m.statusID, m.statusTTL),
			resolvePageCmd(m.service, m.addr, m.resolveTimeout),
		)
	}
	if len(key) == 1 && key[0] >= '0' && key[0] <= '9' {
		m.pending = nav.AppendDigit(m.pending, rune(key[0]))
		return m, nil
	}
	return m, nil
}

// gotoAddress commits a new target and schedules its resolve. The fetch
// itself runs in the returned command, never in the key handler.
func (m Model) gotoAddress(addr televideo.PageAddress) (tea.Model, tea.Cmd) {
	if m.service == nil || addr == m.addr {
		return m, nil
	}
	m.addr = addr
	m.loading = true
	m.status = ""
	return m, resolvePageCmd(m.service, addr, m.resolveTimeout)
}

func (m Model) flashStatus(status string) (tea.Model, tea.Cmd) {
	m.status = status
	m.statusID++
	return m, clearStatusCmd(m.statusID, m.statusTTL)
}

func (m Model) View() string {
	width, height := m.width, m.height
	if width <= 0 {
		width = 80
	}
	if height <= chromeRows {
		height = 24
	}
	vp := render.Viewport{Cols: width, Rows: height - chromeRows}

	var b strings.Builder
	b.WriteString(m.theme.Header.Render(view.Header(m.addr.String(), m.mode.String(), m.loading, m.errMsg != "", width)))
	b.WriteString("\n")
	b.WriteString(m.viewportView(vp))
	b.WriteString("\n")
	b.WriteString(m.footerView(width))
	return b.String()
}

func (m Model) viewportView(vp render.Viewport) string {
	if m.current == nil {
		if m.loading {
			return m.theme.Placeholder.Render(view.Placeholder(vp.Cols, vp.Rows, "Loading page "+m.addr.String()+"..."))
		}
		return m.theme.Placeholder.Render(view.Placeholder(vp.Cols, vp.Rows, "Page unavailable"))
	}
	return render.Frame(m.current, m.mode, vp, m.cell, m.profile)
}

func (m Model) footerView(width int) string {
	if m.errMsg != "" && m.pending == "" {
		return m.theme.Error.Render(view.Footer("", "Fetch failed: "+m.errMsg, width))
	}
	if m.pending != "" {
		return m.theme.Prompt.Render(view.Footer(m.pending, "", width))
	}
	return m.theme.Footer.Render(view.Footer("", m.status, width))
}

func resolvePageCmd(service Service, addr televideo.PageAddress, timeout time.Duration) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		page, err := service.Resolve(ctx, addr)
		if err != nil {
			return pageErrorMsg{addr: addr, err: err}
		}
		return pageLoadedMsg{page: page}
	}
}

func clearStatusCmd(id int, after time.Duration) tea.Cmd {
	return tea.Tick(after, func(time.Time) tea.Msg {
		return clearStatusMsg{id: id}
	})
}
