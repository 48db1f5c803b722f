package tui

import "github.com/MKhiriev/go-bank-shell/models"

// dialogModel is the modal box shown over a form: either an acknowledgement
// or an error. closesForm marks the acknowledgement of a submission, whose
// dismissal also closes the form.
type dialogModel struct {
	title      string
	message    string
	isError    bool
	closesForm bool
}

func newAckDialog(ack models.Acknowledgement, closesForm bool) *dialogModel {
	return &dialogModel{
		title:      ack.Title,
		message:    ack.Message,
		closesForm: closesForm,
	}
}

func newErrorDialog(message string) *dialogModel {
	return &dialogModel{
		title:   "Error",
		message: message,
		isError: true,
	}
}

func (m dialogModel) View() string {
	content := titleStyle.Render(m.title) + "\n\n" + m.message + "\n\n"
	if m.isError {
		content += helpStyle.Render("enter / esc cerrar")
	} else {
		content += buttonStyle.Render("[ OK ]")
	}
	return overlayBoxStyle.Render(content)
}
