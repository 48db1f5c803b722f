// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive client application runtime.
//
// It owns the process lifecycle around the terminal UI: it runs the
// presentation host and reports the forms closed during the session.
package client
