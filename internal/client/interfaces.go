// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"

	"github.com/MKhiriev/go-bank-shell/models"
)

// Client defines the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// Run starts the client application and blocks until exit or until ctx
	// is done.
	Run(ctx context.Context) error
}

// UI is the presentation host driven by [App]. Run blocks for the whole
// interactive session and returns the completion signal of every form closed
// during it.
type UI interface {
	Run(ctx context.Context) ([]models.FormResult, error)
}
