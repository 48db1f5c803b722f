// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-bank-shell/internal/app"
	"github.com/MKhiriev/go-bank-shell/internal/logger"
	"github.com/MKhiriev/go-bank-shell/internal/utils"
	"github.com/MKhiriev/go-bank-shell/internal/validators"
	"github.com/MKhiriev/go-bank-shell/models"
)

// placeholderAuthService acknowledges submissions without contacting any
// backend. Form values are never logged.
type placeholderAuthService struct {
	validator validators.Validator
	logger    *logger.Logger
}

// NewClientAuthService returns the placeholder [ClientAuthService].
func NewClientAuthService(validator validators.Validator, log *logger.Logger) ClientAuthService {
	return &placeholderAuthService{
		validator: validator,
		logger:    log,
	}
}

func (s *placeholderAuthService) Login(ctx context.Context, form models.LoginForm) (models.Acknowledgement, error) {
	if err := ctx.Err(); err != nil {
		return models.Acknowledgement{}, err
	}

	log := s.requestLogger(ctx)
	if err := s.validator.Validate(ctx, form); err != nil {
		log.Warn().Err(err).Str("form", string(models.FormLogin)).Msg("rejected submission")
		return models.Acknowledgement{}, fmt.Errorf("%w: %w", ErrNotEligible, err)
	}

	log.Info().Str("form", string(models.FormLogin)).Msg("login submitted, feature in development")

	return models.Acknowledgement{
		Title:   app.TitleLogin,
		Message: app.MsgLoginInDevelopment,
	}, nil
}

func (s *placeholderAuthService) Register(ctx context.Context, form models.RegistrationForm) (models.Acknowledgement, error) {
	if err := ctx.Err(); err != nil {
		return models.Acknowledgement{}, err
	}

	log := s.requestLogger(ctx)
	if err := s.validator.Validate(ctx, form); err != nil {
		log.Warn().Err(err).Str("form", string(models.FormRegistration)).Msg("rejected submission")
		return models.Acknowledgement{}, fmt.Errorf("%w: %w", ErrNotEligible, err)
	}

	log.Info().Str("form", string(models.FormRegistration)).Msg("registration submitted, feature in development")

	return models.Acknowledgement{
		Title:   app.TitleRegistration,
		Message: app.MsgRegistrationInDevelopment,
	}, nil
}

func (s *placeholderAuthService) RecoverPassword(ctx context.Context, _ string) (models.Acknowledgement, error) {
	if err := ctx.Err(); err != nil {
		return models.Acknowledgement{}, err
	}

	s.requestLogger(ctx).Info().Msg("password recovery requested, feature in development")

	return models.Acknowledgement{
		Title:   app.TitlePasswordRecovery,
		Message: app.MsgPasswordRecoveryInDevelopment,
	}, nil
}

// requestLogger tags the service logger with the form handle carried by ctx.
func (s *placeholderAuthService) requestLogger(ctx context.Context) *logger.Logger {
	id, ok := utils.GetFormHandleIDFromContext(ctx)
	if !ok {
		return s.logger
	}
	return &logger.Logger{Logger: s.logger.With().Str("handle", id.String()).Logger()}
}
