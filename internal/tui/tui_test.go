package tui

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/go-bank-shell/internal/app"
	"github.com/MKhiriev/go-bank-shell/internal/config"
	"github.com/MKhiriev/go-bank-shell/internal/logger"
	"github.com/MKhiriev/go-bank-shell/internal/mock"
	"github.com/MKhiriev/go-bank-shell/internal/service"
	"github.com/MKhiriev/go-bank-shell/internal/validators"
	"github.com/MKhiriev/go-bank-shell/models"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// ── helpers ───────────────────────────────────────────────────────────────────

type testHost struct {
	root  RootModel
	auth  *mock.MockClientAuthService
	legal *mock.MockClientLegalService
}

func newTestHost(t *testing.T, strict bool) *testHost {
	t.Helper()
	ctrl := gomock.NewController(t)
	auth := mock.NewMockClientAuthService(ctrl)
	legal := mock.NewMockClientLegalService(ctrl)

	ui, err := New(&service.ClientServices{
		Validator:    validators.NewFormValidator(strict),
		AuthService:  auth,
		LegalService: legal,
	}, config.ClientConfig{
		App: config.ClientApp{StrictValidation: strict, SubmitTimeout: time.Second},
		UI:  config.ClientUI{InputWidth: 40},
	}, models.NewAppBuildInfo("1.2.3", "2026-10-17", "abc123"), logger.Nop())
	require.NoError(t, err)

	return &testHost{root: ui.NewRoot(context.Background()), auth: auth, legal: legal}
}

func (h *testHost) send(t *testing.T, msg tea.Msg) tea.Cmd {
	t.Helper()
	updated, cmd := h.root.Update(msg)
	root, ok := updated.(RootModel)
	require.True(t, ok)
	h.root = root
	return cmd
}

// run executes cmd and feeds the produced message back into the router.
func (h *testHost) run(t *testing.T, cmd tea.Cmd) tea.Cmd {
	t.Helper()
	require.NotNil(t, cmd)
	return h.send(t, cmd())
}

func (h *testHost) typeText(t *testing.T, s string) {
	t.Helper()
	h.send(t, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
}

func (h *testHost) press(t *testing.T, k tea.KeyType) tea.Cmd {
	t.Helper()
	return h.send(t, tea.KeyMsg{Type: k})
}

func (h *testHost) login() *LoginModel {
	return h.root.pages[PageLogin].(*LoginModel)
}

func (h *testHost) register() *RegisterModel {
	return h.root.pages[PageRegister].(*RegisterModel)
}

func (h *testHost) fillRegistration(t *testing.T, values ...string) {
	t.Helper()
	for i, v := range values {
		if i > 0 {
			h.press(t, tea.KeyTab)
		}
		h.typeText(t, v)
	}
}

// ── landing ───────────────────────────────────────────────────────────────────

func TestLanding_View(t *testing.T) {
	h := newTestHost(t, false)

	view := h.root.View()
	assert.Contains(t, view, app.AppName)
	assert.Contains(t, view, app.AppTagline)
	assert.Contains(t, view, "Iniciar Sesión")
	assert.Contains(t, view, "Registrarse")
	assert.Contains(t, view, app.MsgEncryption)
}

func TestLanding_NavigatesToForms(t *testing.T) {
	h := newTestHost(t, false)

	cmd := h.press(t, tea.KeyEnter)
	h.run(t, cmd)
	assert.Equal(t, PageLogin, h.root.Current())

	h.run(t, h.press(t, tea.KeyEsc))
	assert.Equal(t, PageLanding, h.root.Current())

	h.press(t, tea.KeyDown)
	h.run(t, h.press(t, tea.KeyEnter))
	assert.Equal(t, PageRegister, h.root.Current())
}

func TestRoot_BuildInfoOnlyOnLanding(t *testing.T) {
	h := newTestHost(t, false)

	h.typeText(t, "v")
	assert.Contains(t, h.root.View(), "INFORMACIÓN")
	assert.Contains(t, h.root.View(), "1.2.3")

	h.press(t, tea.KeyEsc)
	assert.NotContains(t, h.root.View(), "INFORMACIÓN")

	h.send(t, NavigateTo{Page: PageLogin})
	h.typeText(t, "v")
	assert.NotContains(t, h.root.View(), "INFORMACIÓN")
	assert.Equal(t, "v", h.login().Form().Email)
}

func TestRoot_CtrlCQuits(t *testing.T) {
	h := newTestHost(t, false)
	h.send(t, NavigateTo{Page: PageRegister})

	cmd := h.press(t, tea.KeyCtrlC)
	require.NotNil(t, cmd)
	_, ok := cmd().(tea.QuitMsg)
	assert.True(t, ok)
}

func TestRoot_UnknownPageIgnored(t *testing.T) {
	h := newTestHost(t, false)
	h.send(t, NavigateTo{Page: "transfers"})
	assert.Equal(t, PageLanding, h.root.Current())
}

// ── login ─────────────────────────────────────────────────────────────────────

func TestLogin_PresentedEmptyWithNewHandle(t *testing.T) {
	h := newTestHost(t, false)

	h.send(t, NavigateTo{Page: PageLogin})
	first := h.login().Handle()
	require.False(t, first.IsZero())
	assert.Equal(t, models.FormLogin, first.Kind)

	h.typeText(t, "a@b.com")
	h.run(t, h.press(t, tea.KeyEsc))

	h.send(t, NavigateTo{Page: PageLogin})
	assert.NotEqual(t, first.ID, h.login().Handle().ID)
	assert.Equal(t, models.LoginForm{}, h.login().Form())
}

func TestLogin_SubmitGate(t *testing.T) {
	h := newTestHost(t, false)
	h.send(t, NavigateTo{Page: PageLogin})

	// email="" password="x"
	h.press(t, tea.KeyTab)
	h.typeText(t, "x")
	assert.False(t, h.login().CanSubmit())
	assert.Nil(t, h.press(t, tea.KeyEnter), "enter on an ineligible form must not submit")

	// whitespace email counts as content
	h.press(t, tea.KeyShiftTab)
	h.typeText(t, " ")
	assert.True(t, h.login().CanSubmit())
}

func TestLogin_SubmitAcknowledgeClose(t *testing.T) {
	h := newTestHost(t, false)
	h.send(t, NavigateTo{Page: PageLogin})
	handle := h.login().Handle()

	h.typeText(t, "a@b.com")
	h.press(t, tea.KeyTab)
	h.typeText(t, "secret1")
	require.True(t, h.login().CanSubmit())

	h.auth.EXPECT().
		Login(gomock.Any(), models.LoginForm{Email: "a@b.com", Password: "secret1"}).
		Return(models.Acknowledgement{Title: app.TitleLogin, Message: app.MsgLoginInDevelopment}, nil)

	submit := h.press(t, tea.KeyEnter)
	require.NotNil(t, submit)
	assert.True(t, h.login().submitting)
	assert.Nil(t, h.press(t, tea.KeyEnter), "second enter while submitting is ignored")

	h.run(t, submit)
	require.NotNil(t, h.login().dialog)
	assert.Contains(t, h.root.View(), app.MsgLoginInDevelopment)
	assert.Equal(t, PageLogin, h.root.Current())

	h.run(t, h.press(t, tea.KeyEnter))
	assert.Equal(t, PageLanding, h.root.Current())

	results := h.root.Results()
	require.Len(t, results, 1)
	assert.Equal(t, handle, results[0].Handle)
	assert.Equal(t, models.OutcomeSubmitted, results[0].Outcome)
}

func TestLogin_CancelEmitsCancelled(t *testing.T) {
	h := newTestHost(t, false)
	h.send(t, NavigateTo{Page: PageLogin})
	h.typeText(t, "a@b.com")

	h.run(t, h.press(t, tea.KeyEsc))

	results := h.root.Results()
	require.Len(t, results, 1)
	assert.Equal(t, models.OutcomeCancelled, results[0].Outcome)
	assert.Equal(t, models.FormLogin, results[0].Handle.Kind)
}

func TestLogin_ServiceErrorKeepsFormOpen(t *testing.T) {
	h := newTestHost(t, false)
	h.send(t, NavigateTo{Page: PageLogin})
	h.typeText(t, "a@b.com")
	h.press(t, tea.KeyTab)
	h.typeText(t, "secret1")

	h.auth.EXPECT().Login(gomock.Any(), gomock.Any()).
		Return(models.Acknowledgement{}, context.DeadlineExceeded)

	h.run(t, h.press(t, tea.KeyEnter))
	require.NotNil(t, h.login().dialog)
	assert.True(t, h.login().dialog.isError)
	assert.Contains(t, h.root.View(), "demasiado")

	assert.Nil(t, h.press(t, tea.KeyEsc))
	assert.Nil(t, h.login().dialog)
	assert.Equal(t, PageLogin, h.root.Current())
	assert.Equal(t, "a@b.com", h.login().Form().Email)
	assert.Empty(t, h.root.Results())
}

func TestLogin_StaleResultDropped(t *testing.T) {
	h := newTestHost(t, false)
	h.send(t, NavigateTo{Page: PageLogin})
	h.typeText(t, "a@b.com")
	h.press(t, tea.KeyTab)
	h.typeText(t, "secret1")

	h.auth.EXPECT().Login(gomock.Any(), gomock.Any()).
		Return(models.Acknowledgement{Title: app.TitleLogin, Message: app.MsgLoginInDevelopment}, nil)

	submit := h.press(t, tea.KeyEnter)
	h.run(t, h.press(t, tea.KeyEsc))
	h.send(t, NavigateTo{Page: PageLogin})

	h.run(t, submit)
	assert.Nil(t, h.login().dialog)
}

func TestLogin_ForgotPasswordKeepsFormOpen(t *testing.T) {
	h := newTestHost(t, false)
	h.send(t, NavigateTo{Page: PageLogin})

	h.auth.EXPECT().RecoverPassword(gomock.Any(), "").
		Return(models.Acknowledgement{Title: app.TitlePasswordRecovery, Message: app.MsgPasswordRecoveryInDevelopment}, nil)

	h.run(t, h.press(t, tea.KeyCtrlO))
	assert.Contains(t, h.root.View(), app.MsgPasswordRecoveryInDevelopment)

	assert.Nil(t, h.press(t, tea.KeyEnter))
	assert.Equal(t, PageLogin, h.root.Current())
	assert.Empty(t, h.root.Results())
}

func TestLogin_PasswordMasked(t *testing.T) {
	h := newTestHost(t, false)
	h.send(t, NavigateTo{Page: PageLogin})
	h.press(t, tea.KeyTab)
	h.typeText(t, "hunter2")

	assert.Equal(t, "hunter2", h.login().Form().Password)
	assert.NotContains(t, h.root.View(), "hunter2")
}

// ── registration ──────────────────────────────────────────────────────────────

func TestRegister_AllEmptyCannotSubmit(t *testing.T) {
	h := newTestHost(t, false)
	h.send(t, NavigateTo{Page: PageRegister})

	assert.Equal(t, models.RegistrationForm{}, h.register().Form())
	assert.False(t, h.register().CanSubmit())
	assert.Nil(t, h.press(t, tea.KeyEnter))
}

func TestRegister_MismatchSubmits(t *testing.T) {
	h := newTestHost(t, false)
	h.send(t, NavigateTo{Page: PageRegister})
	h.fillRegistration(t, "Jane Doe", "j@d.com", "123", "pw", "different")

	want := models.RegistrationForm{
		FullName:        "Jane Doe",
		Email:           "j@d.com",
		Phone:           "123",
		Password:        "pw",
		ConfirmPassword: "different",
	}
	require.Equal(t, want, h.register().Form())
	require.True(t, h.register().CanSubmit())
	assert.NotContains(t, h.root.View(), "Las contraseñas no coinciden")

	h.auth.EXPECT().Register(gomock.Any(), want).
		Return(models.Acknowledgement{Title: app.TitleRegistration, Message: app.MsgRegistrationInDevelopment}, nil)

	h.run(t, h.press(t, tea.KeyEnter))
	assert.Contains(t, h.root.View(), app.MsgRegistrationInDevelopment)

	h.run(t, h.press(t, tea.KeyEsc))
	results := h.root.Results()
	require.Len(t, results, 1)
	assert.Equal(t, models.FormRegistration, results[0].Handle.Kind)
	assert.Equal(t, models.OutcomeSubmitted, results[0].Outcome)
}

func TestRegister_StrictMismatchBlocked(t *testing.T) {
	h := newTestHost(t, true)
	h.send(t, NavigateTo{Page: PageRegister})
	h.fillRegistration(t, "Jane Doe", "j@d.com", "123", "pw", "different")

	assert.False(t, h.register().CanSubmit())
	assert.Contains(t, h.root.View(), "Las contraseñas no coinciden")
	assert.Nil(t, h.press(t, tea.KeyEnter))
}

func TestRegister_StrictNoHintForEmptyFields(t *testing.T) {
	h := newTestHost(t, true)
	h.send(t, NavigateTo{Page: PageRegister})

	view := h.root.View()
	assert.NotContains(t, view, "Las contraseñas no coinciden")
	assert.NotContains(t, view, "formato válido")
}

func TestRegister_LegalLinks(t *testing.T) {
	h := newTestHost(t, false)
	h.send(t, NavigateTo{Page: PageRegister})

	h.legal.EXPECT().Document(gomock.Any(), models.DocumentTerms).
		Return(models.Acknowledgement{Title: app.TitleTerms, Message: app.MsgTermsInDevelopment}, nil)
	h.legal.EXPECT().Document(gomock.Any(), models.DocumentPrivacy).
		Return(models.Acknowledgement{}, errors.New("boom"))

	h.run(t, h.press(t, tea.KeyCtrlT))
	assert.Contains(t, h.root.View(), app.MsgTermsInDevelopment)
	assert.Nil(t, h.press(t, tea.KeyEnter))

	h.run(t, h.press(t, tea.KeyCtrlP))
	require.NotNil(t, h.register().dialog)
	assert.True(t, h.register().dialog.isError)
	assert.Nil(t, h.press(t, tea.KeyEnter))

	assert.Equal(t, PageRegister, h.root.Current())
	assert.Empty(t, h.root.Results())
}

func TestRegister_FocusWraps(t *testing.T) {
	h := newTestHost(t, false)
	h.send(t, NavigateTo{Page: PageRegister})

	h.press(t, tea.KeyShiftTab)
	h.typeText(t, "pw")
	assert.Equal(t, "pw", h.register().Form().ConfirmPassword)

	h.press(t, tea.KeyTab)
	h.typeText(t, "Jane")
	assert.Equal(t, "Jane", h.register().Form().FullName)
}

// ── helpers under test ────────────────────────────────────────────────────────

func TestHumanizeSubmitError(t *testing.T) {
	assert.Empty(t, humanizeSubmitError(nil))
	assert.Equal(t, "Completa todos los campos",
		humanizeSubmitError(errors.Join(service.ErrNotEligible, validators.ErrEmptyEmail)))
	assert.Equal(t, "boom", humanizeSubmitError(errors.New("boom")))
}

func TestWithTimeout(t *testing.T) {
	ctx, cancel := withTimeout(context.Background(), 0)
	defer cancel()
	_, hasDeadline := ctx.Deadline()
	assert.False(t, hasDeadline)

	ctx2, cancel2 := withTimeout(context.Background(), time.Minute)
	defer cancel2()
	_, hasDeadline = ctx2.Deadline()
	assert.True(t, hasDeadline)
}
