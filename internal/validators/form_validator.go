// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"

	"github.com/MKhiriev/go-bank-shell/models"
)

// Field name constants used to restrict validation to a subset of rules.
const (
	// FieldFullName requires a non-empty full name.
	FieldFullName = "full_name"

	// FieldEmail requires a non-empty email.
	FieldEmail = "email"

	// FieldPhone requires a non-empty phone.
	FieldPhone = "phone"

	// FieldPassword requires a non-empty password.
	FieldPassword = "password"

	// FieldConfirmPassword requires a non-empty password confirmation.
	FieldConfirmPassword = "confirm_password"

	// FieldEmailFormat requires the email to look like an address.
	// Part of the default set only in strict mode.
	FieldEmailFormat = "email_format"

	// FieldPasswordsMatch requires the confirmation to repeat the password.
	// Part of the default set only in strict mode.
	FieldPasswordsMatch = "passwords_match"
)

var (
	loginFields        = []string{FieldEmail, FieldPassword}
	loginStrictFields  = []string{FieldEmailFormat}
	registrationFields = []string{FieldFullName, FieldEmail, FieldPhone, FieldPassword, FieldConfirmPassword}
	registrationStrict = []string{FieldEmailFormat, FieldPasswordsMatch}
)

// FormValidator implements [Validator] for [models.LoginForm] and
// [models.RegistrationForm], by value or by pointer.
type FormValidator struct {
	strict bool
}

// NewFormValidator constructs a FormValidator. With strict set, the default
// rule set also checks the email shape and password equality.
func NewFormValidator(strict bool) *FormValidator {
	return &FormValidator{strict: strict}
}

// Strict reports whether strict rules are part of the default set.
func (v *FormValidator) Strict() bool {
	return v.strict
}

// Validate dispatches on the dynamic type of obj. When fields is empty the
// default rule set for that form is applied. Returns the first failing rule,
// ErrUnknownField for a field the form does not have, or ErrUnsupportedType.
func (v *FormValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.LoginForm:
		return v.validateLogin(ctx, value, fields...)
	case *models.LoginForm:
		return v.validateLogin(ctx, *value, fields...)

	case models.RegistrationForm:
		return v.validateRegistration(ctx, value, fields...)
	case *models.RegistrationForm:
		return v.validateRegistration(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

// Eligible reports whether obj passes the default rule set.
func (v *FormValidator) Eligible(ctx context.Context, obj any) bool {
	return v.Validate(ctx, obj) == nil
}

func (v *FormValidator) validateLogin(_ context.Context, form models.LoginForm, fields ...string) error {
	if len(fields) == 0 {
		fields = v.defaults(loginFields, loginStrictFields)
	}

	for _, f := range fields {
		switch f {
		case FieldEmail:
			if !NonEmpty(form.Email) {
				return ErrEmptyEmail
			}
		case FieldPassword:
			if !NonEmpty(form.Password) {
				return ErrEmptyPassword
			}
		case FieldEmailFormat:
			if !EmailShape(form.Email) {
				return ErrInvalidEmailFormat
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *FormValidator) validateRegistration(_ context.Context, form models.RegistrationForm, fields ...string) error {
	if len(fields) == 0 {
		fields = v.defaults(registrationFields, registrationStrict)
	}

	for _, f := range fields {
		switch f {
		case FieldFullName:
			if !NonEmpty(form.FullName) {
				return ErrEmptyFullName
			}
		case FieldEmail:
			if !NonEmpty(form.Email) {
				return ErrEmptyEmail
			}
		case FieldPhone:
			if !NonEmpty(form.Phone) {
				return ErrEmptyPhone
			}
		case FieldPassword:
			if !NonEmpty(form.Password) {
				return ErrEmptyPassword
			}
		case FieldConfirmPassword:
			if !NonEmpty(form.ConfirmPassword) {
				return ErrEmptyConfirmPassword
			}
		case FieldEmailFormat:
			if !EmailShape(form.Email) {
				return ErrInvalidEmailFormat
			}
		case FieldPasswordsMatch:
			if !equalSecrets(form.Password, form.ConfirmPassword) {
				return ErrPasswordsMismatch
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *FormValidator) defaults(base, strict []string) []string {
	if !v.strict {
		return base
	}

	fields := make([]string, 0, len(base)+len(strict))
	fields = append(fields, base...)
	return append(fields, strict...)
}
