package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-bank-shell/internal/app"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type landingItem struct {
	title string
	page  string
}

// LandingModel is the first page: the brand, the two entry actions and the
// security footer.
type LandingModel struct {
	items []landingItem
	idx   int
}

func NewLandingModel() *LandingModel {
	return &LandingModel{
		items: []landingItem{
			{title: "Iniciar Sesión", page: PageLogin},
			{title: "Registrarse", page: PageRegister},
		},
	}
}

func (m *LandingModel) Init() tea.Cmd {
	return nil
}

func (m *LandingModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.idx < len(m.items)-1 {
			m.idx++
		}
	case key.Matches(keyMsg, keys.enter):
		page := m.items[m.idx].page
		return m, func() tea.Msg { return NavigateTo{Page: page} }
	}

	return m, nil
}

func (m *LandingModel) View() string {
	var b strings.Builder

	b.WriteString(brandStyle.Render(app.AppName))
	b.WriteString("\n")
	b.WriteString(app.AppTagline)
	b.WriteString("\n\n")

	idColWidth := lipgloss.Width(fmt.Sprintf("%d", len(m.items))) + 2 // "<marker> <id>"
	actionColWidth := lipgloss.Width("Acción")
	for _, item := range m.items {
		if w := lipgloss.Width(item.title); w > actionColWidth {
			actionColWidth = w
		}
	}

	b.WriteString(fmt.Sprintf("%-*s │ %s\n", idColWidth, "#", "Acción"))
	b.WriteString(strings.Repeat("─", idColWidth))
	b.WriteString("─┼─")
	b.WriteString(strings.Repeat("─", actionColWidth))
	b.WriteString("\n")

	for i, item := range m.items {
		cursor := " "
		if i == m.idx {
			cursor = ">"
		}
		idCell := fmt.Sprintf("%s %d", cursor, i+1)
		b.WriteString(fmt.Sprintf("%-*s │ %s\n", idColWidth, idCell, item.title))
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render(app.MsgDataSafe))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(app.MsgEncryption))

	return renderPage("BIENVENIDO", b.String(), "enter: elegir │ ↑/↓: navegación │ v: versión")
}
