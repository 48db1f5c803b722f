package tui

import (
	"github.com/MKhiriev/go-bank-shell/models"
	"github.com/google/uuid"
)

// Page names known to [RootModel].
const (
	PageLanding  = "landing"
	PageLogin    = "login"
	PageRegister = "register"
)

// NavigateTo asks [RootModel] to switch the active page. Navigating to a form
// page presents that form with a fresh handle.
type NavigateTo struct {
	Page string
}

// FormClosed is the completion signal of a presented form. [RootModel]
// records it and returns to the landing page.
type FormClosed struct {
	Result models.FormResult
}

// ackResultMsg carries the outcome of a call into the submission seam back to
// the form that issued it. handleID ties it to one presentation so results
// of a closed presentation are dropped.
type ackResultMsg struct {
	handleID   uuid.UUID
	ack        models.Acknowledgement
	err        error
	closesForm bool
}
