// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"strings"
	"time"

	"github.com/MKhiriev/go-bank-shell/internal/service"
	"github.com/MKhiriev/go-bank-shell/internal/utils"
	"github.com/MKhiriev/go-bank-shell/internal/validators"
	"github.com/MKhiriev/go-bank-shell/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	loginEmail = iota
	loginPassword
)

// LoginModel is the Bubble Tea model of the login form. It renders an email
// and a masked password input and keeps the submit action disabled until
// both are non-empty. Submitting calls [service.ClientAuthService.Login]
// asynchronously and shows the returned acknowledgement; closing that
// acknowledgement closes the form with [models.OutcomeSubmitted].
type LoginModel struct {
	ctx       context.Context
	auth      service.ClientAuthService
	validator *validators.FormValidator
	timeout   time.Duration

	handle     models.FormHandle
	fields     formInputs
	submitting bool
	dialog     *dialogModel
}

// NewLoginModel creates a [LoginModel]. The form is empty until [LoginModel.Open]
// presents it.
func NewLoginModel(ctx context.Context, auth service.ClientAuthService, validator *validators.FormValidator, opts FormOptions) *LoginModel {
	return &LoginModel{
		ctx:       ctx,
		auth:      auth,
		validator: validator,
		timeout:   opts.SubmitTimeout,
		fields: newFormInputs(opts.InputWidth,
			inputSpec{label: "Email", placeholder: "tu@email.com", charLimit: 254},
			inputSpec{label: "Contraseña", placeholder: "Tu contraseña", charLimit: 256, secret: true},
		),
	}
}

// Kind implements formPage.
func (m *LoginModel) Kind() models.FormKind {
	return models.FormLogin
}

// Open implements formPage: it binds handle and discards any previous state.
func (m *LoginModel) Open(handle models.FormHandle) tea.Cmd {
	m.handle = handle
	m.fields.reset()
	m.submitting = false
	m.dialog = nil
	return textinput.Blink
}

// Handle returns the handle of the current presentation.
func (m *LoginModel) Handle() models.FormHandle {
	return m.handle
}

// Form returns the current field values.
func (m *LoginModel) Form() models.LoginForm {
	return models.LoginForm{
		Email:    m.fields.value(loginEmail),
		Password: m.fields.value(loginPassword),
	}
}

// CanSubmit reports whether the submit action is enabled.
func (m *LoginModel) CanSubmit() bool {
	form := m.Form()
	if !validators.CanSubmitLogin(form.Email, form.Password) {
		return false
	}
	return !m.validator.Strict() || m.validator.Eligible(m.ctx, form)
}

// Init implements [tea.Model].
func (m *LoginModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements [tea.Model]. Handled messages:
//   - ackResultMsg: ends a submission and opens the acknowledgement or error dialog.
//   - enter / esc: while a dialog is open, dismiss it.
//   - esc: cancels the form.
//   - tab/shift+tab: moves focus between inputs.
//   - enter: submits when the form is eligible, otherwise does nothing.
//   - ctrl+o: "forgot password" link.
//
// All other key events are forwarded to the focused input widget.
func (m *LoginModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
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
			return m, m.cmdLogin(m.Form())
		case key.Matches(keyMsg, keys.forgot):
			if m.submitting {
				return m, nil
			}
			return m, m.cmdRecoverPassword(m.fields.value(loginEmail))
		}
	}

	return m, m.fields.update(msg)
}

// View implements [tea.Model].
func (m *LoginModel) View() string {
	var b strings.Builder
	b.WriteString("Accede a tu cuenta bancaria\n\n")
	b.WriteString(m.fields.View())
	b.WriteString("\n\n")
	b.WriteString(linkStyle.Render("¿Olvidaste tu contraseña?"))
	b.WriteString("\n\n")
	b.WriteString(renderSubmit("Iniciar Sesión", m.CanSubmit(), m.submitting))

	if m.validator.Strict() {
		if hint := strictHint(m.validator.Validate(m.ctx, m.Form())); hint != "" {
			b.WriteString("\n\n")
			b.WriteString(hintStyle.Render(hint))
		}
	}

	page := renderPage("INICIAR SESIÓN", b.String(), "esc: cancelar │ tab: siguiente campo │ enter: iniciar sesión │ ctrl+o: recuperar contraseña")
	if m.dialog != nil {
		return page + "\n\n" + m.dialog.View()
	}
	return page
}

func (m *LoginModel) dismissDialog() tea.Cmd {
	closes := m.dialog.closesForm
	m.dialog = nil
	if closes {
		return closeForm(m.handle, models.OutcomeSubmitted)
	}
	return nil
}

func (m *LoginModel) cmdLogin(form models.LoginForm) tea.Cmd {
	ctx, timeout := m.ctx, m.timeout
	auth := m.auth
	handleID := m.handle.ID

	return func() tea.Msg {
		ctx, cancel := withTimeout(utils.WithFormHandleID(ctx, handleID), timeout)
		defer cancel()

		ack, err := auth.Login(ctx, form)
		return ackResultMsg{handleID: handleID, ack: ack, err: err, closesForm: true}
	}
}

func (m *LoginModel) cmdRecoverPassword(email string) tea.Cmd {
	ctx, timeout := m.ctx, m.timeout
	auth := m.auth
	handleID := m.handle.ID

	return func() tea.Msg {
		ctx, cancel := withTimeout(utils.WithFormHandleID(ctx, handleID), timeout)
		defer cancel()

		ack, err := auth.RecoverPassword(ctx, email)
		return ackResultMsg{handleID: handleID, ack: ack, err: err}
	}
}
