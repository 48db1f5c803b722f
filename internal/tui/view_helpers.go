package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const uiDivider = "──────────────────────────────────────────────────────"

func renderPage(title, data, hotKeys string) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n")
	b.WriteString("  ")
	b.WriteString(uiDivider)
	b.WriteString("\n\n")

	if strings.TrimSpace(data) != "" {
		lines := strings.Split(data, "\n")
		for _, line := range lines {
			b.WriteString("  ")
			b.WriteString(line)
			b.WriteString("\n")
		}
	} else {
		b.WriteString("  -\n")
	}

	b.WriteString("\n")
	b.WriteString("  ")
	b.WriteString(uiDivider)
	b.WriteString("\n")

	if strings.TrimSpace(hotKeys) != "" {
		b.WriteString("  ")
		b.WriteString(helpStyle.Render(hotKeys))
		b.WriteString("\n")
	}
	b.WriteString("  ")
	b.WriteString(helpStyle.Render("ctrl+c: salir"))

	return b.String()
}

// renderFieldTable lays labels and rendered inputs out as a two-column table.
func renderFieldTable(labels, values []string) string {
	labelWidth := lipgloss.Width("Campo")
	for _, l := range labels {
		if w := lipgloss.Width(l); w > labelWidth {
			labelWidth = w
		}
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("%-*s │ %s\n", labelWidth, "Campo", "Valor"))
	b.WriteString(strings.Repeat("─", labelWidth))
	b.WriteString("─┼─")
	b.WriteString(strings.Repeat("─", 40))
	b.WriteString("\n")

	for i, l := range labels {
		pad := labelWidth - lipgloss.Width(l)
		b.WriteString(l)
		b.WriteString(strings.Repeat(" ", pad))
		b.WriteString(" │ [")
		b.WriteString(values[i])
		b.WriteString("]\n")
	}

	return strings.TrimRight(b.String(), "\n")
}

// renderSubmit draws the primary action, faint while it is disabled.
func renderSubmit(label string, enabled, submitting bool) string {
	if submitting {
		return disabledStyle.Render("[ " + label + "... ]")
	}
	if !enabled {
		return disabledStyle.Render("[ " + label + " ]")
	}
	return buttonStyle.Render("[ " + label + " ]")
}
