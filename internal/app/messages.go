// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the user-facing message catalog shared by the
// services, the TUI pages and the CLI commands.
//
// The product is used by Spanish-speaking analysts, so every Msg* string is
// Spanish. Keeping them in one place keeps the wording consistent between
// the interactive and the non-interactive surfaces.
package app

const (
	// MsgFetchProfilesFailed is shown when the profile history could not be
	// read from the store. Rows from earlier loads are discarded.
	MsgFetchProfilesFailed = "No se pudieron cargar los perfiles. Revisa el registro de la aplicación."

	// MsgNoProfilesForTerm is shown when a search matches no profile. The
	// placeholder receives the search term as typed.
	MsgNoProfilesForTerm = "No existen registros con el perfil “%s”"

	// MsgEmptyText is shown when the caption to analyze is empty.
	MsgEmptyText = "⚠️ Por favor, escribe un texto para analizar."

	// MsgEmptyUsername is shown when the username to verify is empty.
	MsgEmptyUsername = "Ingresa un usuario válido"

	// MsgAPINotConfigured is shown when no classification service URL is
	// configured.
	MsgAPINotConfigured = "⚠️ La URL del backend no está configurada."

	// MsgModelWarmingUp is shown when the classification service is rate
	// limited or still loading its model.
	MsgModelWarmingUp = "⏳ El modelo se está cargando o recibió demasiadas solicitudes. Espera unos segundos y vuelve a intentarlo."

	// MsgClassificationFailed is the fallback when the service failed without
	// a readable message.
	MsgClassificationFailed = "Error al consultar el modelo"

	// MsgSubmissionInFlight is shown when a second analysis is requested
	// while the first is still running.
	MsgSubmissionInFlight = "Ya hay una consulta en curso. Espera el resultado."

	// MsgServiceUnreachable is shown when a collaborator cannot be reached at
	// all.
	MsgServiceUnreachable = "No se pudo conectar con el servicio. Revisa tu conexión."

	// MsgInvalidCredentials is the only text ever shown for a failed sign-in.
	MsgInvalidCredentials = "Error en el inicio de sesión. Usuario y/o contraseña incorrectos."

	// MsgEmailAlreadyRegistered is shown when sign-up finds an existing account.
	MsgEmailAlreadyRegistered = "Ya existe una cuenta con ese correo."

	// MsgWeakPassword is shown when the provider rejects the password.
	MsgWeakPassword = "La contraseña debe tener al menos 6 caracteres."

	// MsgPasswordsDoNotMatch is shown when the confirmation differs.
	MsgPasswordsDoNotMatch = "Las contraseñas no coinciden."

	// MsgInvalidEmail is shown for a malformed email address.
	MsgInvalidEmail = "Ingresa un correo válido."

	// MsgInvalidDisplayName is shown for a missing or overlong name.
	MsgInvalidDisplayName = "Ingresa tu nombre (entre 2 y 64 caracteres)."

	// MsgTooManyAttempts is shown when the identity provider throttles.
	MsgTooManyAttempts = "Demasiados intentos. Inténtalo de nuevo más tarde."

	// MsgResetEmailRequired is shown when a password reset is requested
	// without an email.
	MsgResetEmailRequired = "Por favor ingresa tu correo para recuperar tu contraseña."

	// MsgResetEmailSent confirms a password reset email; the placeholder
	// receives the address.
	MsgResetEmailSent = "✔️ Te hemos enviado un correo a %s. Revisa tu bandeja de entrada."

	// MsgResetEmailFailed is shown when the reset email could not be sent.
	MsgResetEmailFailed = "❌ No se pudo enviar el correo de recuperación."

	// MsgCodeSent confirms that a verification code was emailed.
	MsgCodeSent = "Te enviamos un código de 6 dígitos a %s."

	// MsgCodeSendFailed is shown when the verification email failed.
	MsgCodeSendFailed = "No se pudo enviar el código de verificación."

	// MsgInvalidCode is shown when the verification code is malformed or
	// rejected.
	MsgInvalidCode = "Código inválido. Revisa el correo e inténtalo de nuevo."

	// MsgRegistered confirms a successful sign-up.
	MsgRegistered = "✔️ Cuenta creada. ¡Bienvenido!"

	// MsgSessionExpired is shown on the landing page after an inactivity
	// logout.
	MsgSessionExpired = "Tu sesión se cerró por inactividad."

	// MsgSignedOut confirms a manual sign-out.
	MsgSignedOut = "Sesión cerrada."

	// MsgNotSignedIn is printed by CLI commands that need a session.
	MsgNotSignedIn = "No hay una sesión activa. Ejecuta profile-guard e inicia sesión."

	// MsgLinkCopied confirms that a map link was copied to the clipboard.
	MsgLinkCopied = "Enlace copiado al portapapeles."

	// MsgNoLinkToCopy is shown when the selected row has no map link.
	MsgNoLinkToCopy = "El registro seleccionado no tiene enlace de mapa."

	// MsgCopyFailed is shown when the clipboard is not available.
	MsgCopyFailed = "No se pudo copiar al portapapeles."

	// MsgUnexpected is the last-resort message for unclassified failures.
	MsgUnexpected = "Ocurrió un error inesperado."
)
