// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"time"

	"github.com/google/uuid"
)

// FormKind identifies which modal form is presented.
type FormKind string

const (
	FormLogin        FormKind = "login"
	FormRegistration FormKind = "registration"
)

// FormOutcome describes how a presented form was closed.
type FormOutcome string

const (
	// OutcomeSubmitted means the user submitted an eligible form and closed
	// the acknowledgement that followed.
	OutcomeSubmitted FormOutcome = "submitted"

	// OutcomeCancelled means the user dismissed the form without submitting.
	OutcomeCancelled FormOutcome = "cancelled"
)

// FormHandle identifies one presentation of a form. A new handle is issued
// every time a form is opened, so two presentations of the same form never
// share one.
type FormHandle struct {
	ID       uuid.UUID `json:"id"`
	Kind     FormKind  `json:"kind"`
	OpenedAt time.Time `json:"opened_at"`
}

// NewFormHandle issues a handle for a form of the given kind.
func NewFormHandle(kind FormKind) FormHandle {
	id, err := uuid.NewV7()
	if err != nil {
		id = uuid.New()
	}

	return FormHandle{
		ID:       id,
		Kind:     kind,
		OpenedAt: time.Now(),
	}
}

// IsZero reports whether h was never issued.
func (h FormHandle) IsZero() bool {
	return h.ID == uuid.Nil
}

// FormResult is the completion signal emitted when a presented form closes.
type FormResult struct {
	Handle   FormHandle  `json:"handle"`
	Outcome  FormOutcome `json:"outcome"`
	ClosedAt time.Time   `json:"closed_at"`
}

// NewFormResult closes handle with the given outcome.
func NewFormResult(handle FormHandle, outcome FormOutcome) FormResult {
	return FormResult{
		Handle:   handle,
		Outcome:  outcome,
		ClosedAt: time.Now(),
	}
}
