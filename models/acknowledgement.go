// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Acknowledgement is the static notice shown after an action whose real
// implementation does not exist yet.
type Acknowledgement struct {
	Title   string `json:"title"`
	Message string `json:"message"`
}

// LegalDocument names one of the documents linked from the registration form.
type LegalDocument string

const (
	DocumentTerms   LegalDocument = "terms"
	DocumentPrivacy LegalDocument = "privacy"
)
