// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the user-visible texts of the BANK 2025 client.
//
// Acknowledgement titles and messages are shown in the dialog that follows an
// action whose real implementation does not exist yet. Keeping them in one
// place ensures the services and the UI use the same wording.
package app

const (
	// AppName is the brand shown on the landing page and the about window.
	AppName = "BANK 2025"

	// AppTagline is shown below the brand on the landing page.
	AppTagline = "Tu banco del futuro"

	// MsgDataSafe and MsgEncryption form the landing page security footer.
	MsgDataSafe   = "🔒 Tus datos están seguros"
	MsgEncryption = "Cifrado de 256 bits"
)

const (
	// TitleLogin is the acknowledgement title after a login submission.
	TitleLogin = "Login"

	// MsgLoginInDevelopment is shown after a login submission.
	MsgLoginInDevelopment = "Funcionalidad de login en desarrollo"

	// TitleRegistration is the acknowledgement title after a registration submission.
	TitleRegistration = "Registro"

	// MsgRegistrationInDevelopment is shown after a registration submission.
	MsgRegistrationInDevelopment = "Funcionalidad de registro en desarrollo"

	// TitlePasswordRecovery is the acknowledgement title of the
	// "forgot password" link on the login form.
	TitlePasswordRecovery = "Recuperar contraseña"

	// MsgPasswordRecoveryInDevelopment is shown by the "forgot password" link.
	MsgPasswordRecoveryInDevelopment = "Funcionalidad de recuperación de contraseña en desarrollo"

	// TitleTerms and MsgTermsInDevelopment belong to the terms link on the
	// registration form.
	TitleTerms            = "Términos y Condiciones"
	MsgTermsInDevelopment = "Los Términos y Condiciones estarán disponibles próximamente"

	// TitlePrivacy and MsgPrivacyInDevelopment belong to the privacy link on
	// the registration form.
	TitlePrivacy            = "Política de Privacidad"
	MsgPrivacyInDevelopment = "La Política de Privacidad estará disponible próximamente"
)
