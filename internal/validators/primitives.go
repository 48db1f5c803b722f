// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "github.com/go-playground/validator/v10"

// validate is safe for concurrent use and caches parsed tags.
var validate = validator.New()

// NonEmpty reports whether s holds at least one byte.
// Whitespace is content: NonEmpty(" ") is true.
func NonEmpty(s string) bool {
	return s != ""
}

// EmailShape reports whether s looks like an email address.
func EmailShape(s string) bool {
	return validate.Var(s, "required,email") == nil
}

// equalSecrets reports whether confirm repeats password exactly.
func equalSecrets(password, confirm string) bool {
	return validate.VarWithValue(confirm, password, "eqfield") == nil
}
