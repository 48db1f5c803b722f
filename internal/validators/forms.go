// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

// CanSubmitLogin reports whether the login form may be submitted: both
// fields must be non-empty.
func CanSubmitLogin(email, password string) bool {
	return NonEmpty(email) && NonEmpty(password)
}

// CanSubmitRegistration reports whether the registration form may be
// submitted: all five fields must be non-empty. Password equality is not
// part of this gate.
func CanSubmitRegistration(fullName, email, phone, password, confirmPassword string) bool {
	return NonEmpty(fullName) &&
		NonEmpty(email) &&
		NonEmpty(phone) &&
		NonEmpty(password) &&
		NonEmpty(confirmPassword)
}
