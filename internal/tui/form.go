package tui

import (
	"context"
	"time"

	"github.com/MKhiriev/go-bank-shell/models"
	tea "github.com/charmbracelet/bubbletea"
)

// FormOptions are the rendering and submission settings shared by all forms.
type FormOptions struct {
	InputWidth    int
	SubmitTimeout time.Duration
}

// formPage is a page that presents a form. [RootModel] calls Open with a new
// handle every time the page is navigated to.
type formPage interface {
	tea.Model
	Kind() models.FormKind
	Open(handle models.FormHandle) tea.Cmd
}

func closeForm(handle models.FormHandle, outcome models.FormOutcome) tea.Cmd {
	return func() tea.Msg {
		return FormClosed{Result: models.NewFormResult(handle, outcome)}
	}
}

func withTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, timeout)
}
