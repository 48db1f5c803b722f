// Package utils provides general-purpose helper utilities
// used across different parts of the application.
package utils

import (
	"context"

	"github.com/google/uuid"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// FormHandleIDCtxKey is the key under which the identifier of the form
// presentation that issued a request is stored.
var FormHandleIDCtxKey = contextKey("formHandleID")

// WithFormHandleID returns a copy of ctx carrying id.
func WithFormHandleID(ctx context.Context, id uuid.UUID) context.Context {
	return context.WithValue(ctx, FormHandleIDCtxKey, id)
}

// GetFormHandleIDFromContext retrieves the form handle identifier from ctx.
//
// Returns ok == false when the value is missing, has an unexpected type or is
// the zero UUID.
func GetFormHandleIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(FormHandleIDCtxKey).(uuid.UUID)
	if !ok || id == uuid.Nil {
		return uuid.Nil, false
	}
	return id, true
}
