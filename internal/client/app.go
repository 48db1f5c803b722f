package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-bank-shell/internal/logger"
	"github.com/MKhiriev/go-bank-shell/models"
)

type App struct {
	ui     UI
	logger *logger.Logger
}

var _ Client = (*App)(nil)

func NewApp(ui UI, log *logger.Logger) (*App, error) {
	if ui == nil {
		return nil, errors.New("client app requires a ui")
	}

	return &App{ui: ui, logger: log.WithComponent("app")}, nil
}

func (a *App) Run(ctx context.Context) error {
	a.logger.Info().Msg("client started")

	results, err := a.ui.Run(ctx)
	if err != nil {
		if ctx.Err() != nil {
			a.logger.Info().Err(err).Msg("client interrupted")
			return nil
		}
		return fmt.Errorf("run ui: %w", err)
	}

	submitted, cancelled := countOutcomes(results)
	a.logger.Info().
		Int("forms_closed", len(results)).
		Int("submitted", submitted).
		Int("cancelled", cancelled).
		Msg("client stopped")

	return nil
}

func countOutcomes(results []models.FormResult) (submitted, cancelled int) {
	for _, r := range results {
		switch r.Outcome {
		case models.OutcomeSubmitted:
			submitted++
		case models.OutcomeCancelled:
			cancelled++
		}
	}
	return submitted, cancelled
}
