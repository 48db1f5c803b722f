// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-bank-shell/internal/service"
	"github.com/MKhiriev/go-bank-shell/internal/validators"
)

func humanizeSubmitError(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, context.DeadlineExceeded):
		return "La operación ha tardado demasiado. Inténtalo de nuevo"
	case errors.Is(err, context.Canceled):
		return "La operación ha sido cancelada"
	case errors.Is(err, service.ErrNotEligible):
		return "Completa todos los campos"
	default:
		return err.Error()
	}
}

// strictHint names the first failing strict rule, or "" when there is none.
// Presence rules never produce a hint: an empty field only disables submit.
func strictHint(err error) string {
	switch {
	case errors.Is(err, validators.ErrInvalidEmailFormat):
		return "El email no tiene un formato válido"
	case errors.Is(err, validators.ErrPasswordsMismatch):
		return "Las contraseñas no coinciden"
	default:
		return ""
	}
}
