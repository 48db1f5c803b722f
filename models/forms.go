// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// LoginForm is the state of the login form at one moment of input.
// It is a plain value: the UI builds a fresh copy on every change and hands
// it to the validators.
type LoginForm struct {
	// Email is the address typed by the user. No format is enforced unless
	// strict validation is enabled.
	Email string `json:"email"`

	// Password is secret. It is masked on screen and must never be logged.
	Password string `json:"-"`
}

// RegistrationForm is the state of the registration form at one moment of input.
type RegistrationForm struct {
	// FullName is the display name of the future account holder.
	FullName string `json:"full_name"`

	// Email is the contact address of the future account holder.
	Email string `json:"email"`

	// Phone is kept as typed, including spaces and the "+" prefix.
	Phone string `json:"phone"`

	// Password and ConfirmPassword are secret and never logged. Their
	// equality is only checked in strict mode.
	Password        string `json:"-"`
	ConfirmPassword string `json:"-"`
}
