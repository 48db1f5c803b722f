//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_services_mock.go -package=mock

package service

import (
	"context"

	"github.com/MKhiriev/go-bank-shell/models"
)

// ClientAuthService is the seam where login and registration would reach a
// real backend. From the UI's point of view every method is asynchronous: it
// is called from a tea.Cmd and its result is delivered as a message.
type ClientAuthService interface {
	// Login submits an eligible login form. Returns ErrNotEligible when the
	// form does not pass the submit gate, or the context error when ctx is
	// done before the call completes.
	Login(ctx context.Context, form models.LoginForm) (models.Acknowledgement, error)

	// Register submits an eligible registration form. Same error contract
	// as Login.
	Register(ctx context.Context, form models.RegistrationForm) (models.Acknowledgement, error)

	// RecoverPassword starts the "forgot password" flow for email. email may
	// be empty: the link is available before anything is typed.
	RecoverPassword(ctx context.Context, email string) (models.Acknowledgement, error)
}

// ClientLegalService returns the legal documents linked from the
// registration form.
type ClientLegalService interface {
	// Document returns the notice for doc, or ErrUnknownDocument.
	Document(ctx context.Context, doc models.LegalDocument) (models.Acknowledgement, error)
}
