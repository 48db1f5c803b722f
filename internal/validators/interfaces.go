// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators decides whether the login and registration forms may be
// submitted.
//
// Two entry points are offered:
//   - CanSubmitLogin and CanSubmitRegistration are pure predicates over the
//     raw field values. The UI re-evaluates them on every key press to
//     enable or disable the submit action.
//   - Validator is the field-scoped interface used by services. It reports
//     the first failing rule as a sentinel error, so callers can match it
//     with errors.Is.
//
// By default only presence is checked: every field must be non-empty, and a
// single space counts as content. Strict mode additionally checks the email
// shape and that the two registration passwords are equal.
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
