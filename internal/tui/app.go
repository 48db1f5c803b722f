package tui

import (
	"github.com/MKhiriev/go-bank-shell/internal/logger"
	"github.com/MKhiriev/go-bank-shell/models"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// RootModel is a TUI router:
// 1) keeps the active page
// 2) handles global Ctrl+C quit and the build info window
// 3) presents forms on NavigateTo and collects their FormClosed results
// 4) delegates all other messages to the active page
type RootModel struct {
	pages   map[string]tea.Model
	current string
	home    string

	buildInfo     models.AppBuildInfo
	showBuildInfo bool

	results []models.FormResult
	logger  *logger.Logger
}

// NewRootModel registers all pages and opens startPage, which is also the
// page every closed form returns to.
func NewRootModel(pages map[string]tea.Model, startPage string, buildInfo models.AppBuildInfo, log *logger.Logger) RootModel {
	return RootModel{
		pages:     pages,
		current:   startPage,
		home:      startPage,
		buildInfo: buildInfo,
		logger:    log,
	}
}

func (r RootModel) Init() tea.Cmd {
	page := r.pages[r.current]
	if page == nil {
		return nil
	}
	return page.Init()
}

func (r RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Global hotkeys for every page.
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.quit):
			return r, tea.Quit
		case key.Matches(keyMsg, keys.version) && r.current == r.home:
			r.showBuildInfo = !r.showBuildInfo
			return r, nil
		case key.Matches(keyMsg, keys.esc) && r.showBuildInfo:
			r.showBuildInfo = false
			return r, nil
		}

		if r.showBuildInfo {
			return r, nil
		}
	}

	switch m := msg.(type) {
	case NavigateTo:
		return r.navigate(m.Page)
	case FormClosed:
		r.results = append(r.results, m.Result)
		r.logger.Info().
			Str("form", string(m.Result.Handle.Kind)).
			Str("handle", m.Result.Handle.ID.String()).
			Str("outcome", string(m.Result.Outcome)).
			Dur("open_for", m.Result.ClosedAt.Sub(m.Result.Handle.OpenedAt)).
			Msg("form closed")
		return r.navigate(r.home)
	}

	page := r.pages[r.current]
	if page == nil {
		return r, nil
	}

	updated, cmd := page.Update(msg)
	r.pages[r.current] = updated
	return r, cmd
}

func (r RootModel) View() string {
	if r.showBuildInfo {
		return renderBuildInfoWindow(r.buildInfo)
	}
	page := r.pages[r.current]
	if page == nil {
		return renderPage("BANK 2025", "", "")
	}
	return page.View()
}

// Current returns the name of the active page.
func (r RootModel) Current() string {
	return r.current
}

// Results returns the completion signals of every form closed so far, in order.
func (r RootModel) Results() []models.FormResult {
	return append([]models.FormResult(nil), r.results...)
}

func (r RootModel) navigate(name string) (tea.Model, tea.Cmd) {
	next, exists := r.pages[name]
	if !exists {
		r.logger.Warn().Str("page", name).Msg("navigation to unknown page")
		return r, nil
	}

	r.showBuildInfo = false
	r.current = name

	if form, ok := next.(formPage); ok {
		handle := models.NewFormHandle(form.Kind())
		r.logger.Debug().
			Str("form", string(handle.Kind)).
			Str("handle", handle.ID.String()).
			Time("opened_at", handle.OpenedAt).
			Msg("form presented")
		return r, form.Open(handle)
	}

	return r, next.Init()
}
