package tui

import (
	"context"
	"strings"
	"time"

	"github.com/MKhiriev/go-bank-shell/internal/app"
	"github.com/MKhiriev/go-bank-shell/internal/service"
	"github.com/MKhiriev/go-bank-shell/internal/utils"
	"github.com/MKhiriev/go-bank-shell/internal/validators"
	"github.com/MKhiriev/go-bank-shell/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	registerFullName = iota
	registerEmail
	registerPhone
	registerPassword
	registerConfirmPassword
)

// RegisterModel is the Bubble Tea model of the registration form. It renders
// five inputs (full name, email, phone, password, password confirmation) and
// keeps the submit action disabled until all of them are non-empty.
// Submitting calls [service.ClientAuthService.Register] asynchronously;
// closing the acknowledgement closes the form with [models.OutcomeSubmitted].
type RegisterModel struct {
	ctx       context.Context
	auth      service.ClientAuthService
	legal     service.ClientLegalService
	validator *validators.FormValidator
	timeout   time.Duration

	handle     models.FormHandle
	fields     formInputs
	submitting bool
	dialog     *dialogModel
}

// NewRegisterModel creates a [RegisterModel]. The form is empty until
// [RegisterModel.Open] presents it.
func NewRegisterModel(
	ctx context.Context,
	auth service.ClientAuthService,
	legal service.ClientLegalService,
	validator *validators.FormValidator,
	opts FormOptions,
) *RegisterModel {
	return &RegisterModel{
		ctx:       ctx,
		auth:      auth,
		legal:     legal,
		validator: validator,
		timeout:   opts.SubmitTimeout,
		fields: newFormInputs(opts.InputWidth,
			inputSpec{label: "Nombre completo", placeholder: "Tu nombre completo", charLimit: 128},
			inputSpec{label: "Email", placeholder: "tu@email.com", charLimit: 254},
			inputSpec{label: "Teléfono", placeholder: "+34 600 123 456", charLimit: 32},
			inputSpec{label: "Contraseña", placeholder: "Mínimo 8 caracteres", charLimit: 256, secret: true},
			inputSpec{label: "Confirmar contraseña", placeholder: "Repite tu contraseña", charLimit: 256, secret: true},
		),
	}
}

// Kind implements formPage.
func (m *RegisterModel) Kind() models.FormKind {
	return models.FormRegistration
}

// Open implements formPage: it binds handle and discards any previous state.
func (m *RegisterModel) Open(handle models.FormHandle) tea.Cmd {
	m.handle = handle
	m.fields.reset()
	m.submitting = false
	m.dialog = nil
	return textinput.Blink
}

// Handle returns the handle of the current presentation.
func (m *RegisterModel) Handle() models.FormHandle {
	return m.handle
}

// Form returns the current field values.
func (m *RegisterModel) Form() models.RegistrationForm {
	return models.RegistrationForm{
		FullName:        m.fields.value(registerFullName),
		Email:           m.fields.value(registerEmail),
		Phone:           m.fields.value(registerPhone),
		Password:        m.fields.value(registerPassword),
		ConfirmPassword: m.fields.value(registerConfirmPassword),
	}
}

// CanSubmit reports whether the submit action is enabled.
func (m *RegisterModel) CanSubmit() bool {
	f := m.Form()
	if !validators.CanSubmitRegistration(f.FullName, f.Email, f.Phone, f.Password, f.ConfirmPassword) {
		return false
	}
	return !m.validator.Strict() || m.validator.Eligible(m.ctx, f)
}

// Init implements [tea.Model].
func (m *RegisterModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements [tea.Model]. Handled messages:
//   - ackResultMsg: ends a submission and opens the acknowledgement or error dialog.
//   - enter / esc: while a dialog is open, dismiss it.
//   - esc: cancels the form.
//   - tab/shift+tab: moves focus between inputs.
//   - enter: submits when the form is eligible, otherwise does nothing.
//   - ctrl+t/ctrl+p: terms and privacy links.
//
// All other key events are forwarded to the focused input widget.
func (m *RegisterModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if result, ok := msg.(ackResultMsg); ok {
		if result.handleID != m.handle.ID {
			return m, nil
		}
		m.submitting = false
		if result.err != nil {
			m.dialog = newErrorDialog(humanizeSubmitError(result.err))
			return m, nil
		}
		m.dialog = newAckDialog(result.ack, result.closesForm)
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if ok && m.dialog != nil {
		if key.Matches(keyMsg, keys.enter, keys.esc) {
			return m, m.dismissDialog()
		}
		return m, nil
	}

	if ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			return m, closeForm(m.handle, models.OutcomeCancelled)
		case key.Matches(keyMsg, keys.tab):
			m.fields.focusNext()
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.fields.focusPrev()
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.submitting || !m.CanSubmit() {
				return m, nil
			}
			m.submitting = true
			return m, m.cmdRegister(m.Form())
		case key.Matches(keyMsg, keys.terms):
			if m.submitting {
				return m, nil
			}
			return m, m.cmdDocument(models.DocumentTerms)
		case key.Matches(keyMsg, keys.privacy):
			if m.submitting {
				return m, nil
			}
			return m, m.cmdDocument(models.DocumentPrivacy)
		}
	}

	return m, m.fields.update(msg)
}

// View implements [tea.Model].
func (m *RegisterModel) View() string {
	var b strings.Builder
	b.WriteString("Únete a ")
	b.WriteString(app.AppName)
	b.WriteString("\n\n")
	b.WriteString(m.fields.View())
	b.WriteString("\n\n")
	b.WriteString(renderSubmit("Crear Cuenta", m.CanSubmit(), m.submitting))

	if m.validator.Strict() {
		if hint := strictHint(m.validator.Validate(m.ctx, m.Form())); hint != "" {
			b.WriteString("\n\n")
			b.WriteString(hintStyle.Render(hint))
		}
	}

	b.WriteString("\n\n")
	b.WriteString(helpStyle.Render("Al registrarte, aceptas nuestros"))
	b.WriteString("\n")
	b.WriteString(linkStyle.Render(app.TitleTerms))
	b.WriteString(helpStyle.Render(" y "))
	b.WriteString(linkStyle.Render(app.TitlePrivacy))

	page := renderPage("CREAR CUENTA", b.String(), "esc: cancelar │ tab: siguiente campo │ enter: crear cuenta │ ctrl+t: términos │ ctrl+p: privacidad")
	if m.dialog != nil {
		return page + "\n\n" + m.dialog.View()
	}
	return page
}

func (m *RegisterModel) dismissDialog() tea.Cmd {
	closes := m.dialog.closesForm
	m.dialog = nil
	if closes {
		return closeForm(m.handle, models.OutcomeSubmitted)
	}
	return nil
}

func (m *RegisterModel) cmdRegister(form models.RegistrationForm) tea.Cmd {
	ctx, timeout := m.ctx, m.timeout
	auth := m.auth
	handleID := m.handle.ID

	return func() tea.Msg {
		ctx, cancel := withTimeout(utils.WithFormHandleID(ctx, handleID), timeout)
		defer cancel()

		ack, err := auth.Register(ctx, form)
		return ackResultMsg{handleID: handleID, ack: ack, err: err, closesForm: true}
	}
}

func (m *RegisterModel) cmdDocument(doc models.LegalDocument) tea.Cmd {
	ctx, timeout := m.ctx, m.timeout
	legal := m.legal
	handleID := m.handle.ID

	return func() tea.Msg {
		ctx, cancel := withTimeout(utils.WithFormHandleID(ctx, handleID), timeout)
		defer cancel()

		ack, err := legal.Document(ctx, doc)
		return ackResultMsg{handleID: handleID, ack: ack, err: err}
	}
}
