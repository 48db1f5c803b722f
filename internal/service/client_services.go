package service

import (
	"github.com/MKhiriev/go-bank-shell/internal/config"
	"github.com/MKhiriev/go-bank-shell/internal/logger"
	"github.com/MKhiriev/go-bank-shell/internal/validators"
)

// ClientServices aggregates everything the UI calls into.
type ClientServices struct {
	Validator    *validators.FormValidator
	AuthService  ClientAuthService
	LegalService ClientLegalService
}

func NewClientServices(cfg config.ClientApp, log *logger.Logger) (*ClientServices, error) {
	validator := validators.NewFormValidator(cfg.StrictValidation)

	return &ClientServices{
		Validator:    validator,
		AuthService:  NewClientAuthService(validator, log.WithComponent("auth")),
		LegalService: NewClientLegalService(),
	}, nil
}
