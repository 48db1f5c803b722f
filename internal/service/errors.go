package service

import "errors"

var (
	// ErrNotEligible is returned when a form reaches the submission seam
	// without passing the submit gate. It wraps the validator error.
	ErrNotEligible = errors.New("form is not eligible for submission")

	// ErrUnknownDocument is returned for a legal document that does not exist.
	ErrUnknownDocument = errors.New("unknown legal document")
)
