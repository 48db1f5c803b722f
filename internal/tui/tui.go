package tui

import (
	"context"

	"github.com/MKhiriev/go-bank-shell/internal/config"
	"github.com/MKhiriev/go-bank-shell/internal/logger"
	"github.com/MKhiriev/go-bank-shell/internal/service"
	"github.com/MKhiriev/go-bank-shell/models"
	tea "github.com/charmbracelet/bubbletea"
)

// TUI is the presentation host of the client: the landing page and the two
// modal forms.
type TUI struct {
	services  *service.ClientServices
	cfg       config.ClientConfig
	buildInfo models.AppBuildInfo
	logger    *logger.Logger
}

func New(services *service.ClientServices, cfg config.ClientConfig, buildInfo models.AppBuildInfo, log *logger.Logger) (*TUI, error) {
	return &TUI{
		services:  services,
		cfg:       cfg,
		buildInfo: buildInfo,
		logger:    log.WithComponent("tui"),
	}, nil
}

// NewRoot builds the router with every page registered, starting on the
// landing page.
func (t *TUI) NewRoot(ctx context.Context) RootModel {
	opts := FormOptions{
		InputWidth:    t.cfg.UI.InputWidth,
		SubmitTimeout: t.cfg.App.SubmitTimeout,
	}

	pages := map[string]tea.Model{
		PageLanding:  NewLandingModel(),
		PageLogin:    NewLoginModel(ctx, t.services.AuthService, t.services.Validator, opts),
		PageRegister: NewRegisterModel(ctx, t.services.AuthService, t.services.LegalService, t.services.Validator, opts),
	}

	return NewRootModel(pages, PageLanding, t.buildInfo, t.logger)
}

// Run blocks until the user quits or ctx is done, and returns the results of
// every form closed during the session.
func (t *TUI) Run(ctx context.Context) ([]models.FormResult, error) {
	options := []tea.ProgramOption{tea.WithContext(ctx)}
	if t.cfg.UI.AltScreen {
		options = append(options, tea.WithAltScreen())
	}

	finalModel, err := tea.NewProgram(t.NewRoot(ctx), options...).Run()
	if err != nil {
		return nil, err
	}

	result, ok := finalModel.(RootModel)
	if !ok {
		return nil, tea.ErrProgramKilled
	}
	return result.Results(), nil
}
