package i18n

// Response messages returned to the form submitter. They are independent of
// the email translation tables.

// WarningNotificationUndelivered is attached to accepted requests whose owner
// notification could not be sent. It is intentionally not localized.
const WarningNotificationUndelivered = "Email notification could not be sent"

// MsgMissingRequiredFields is returned when name or email is missing
func MsgMissingRequiredFields(lang Lang) string {
	if lang == EN {
		return "Missing required fields (name and email are required)."
	}
	return "Faltan datos requeridos (nombre y email son obligatorios)."
}

// MsgBookingSent is returned when the booking notification was delivered
func MsgBookingSent(lang Lang) string {
	if lang == EN {
		return "Booking email sent successfully."
	}
	return "Correo de reserva enviado correctamente."
}

// MsgBookingReceived is returned when the booking was accepted but the
// notification could not be delivered
func MsgBookingReceived(lang Lang) string {
	if lang == EN {
		return "Your booking request was received successfully. We will contact you soon."
	}
	return "Tu solicitud de reserva fue recibida correctamente. Te contactaremos pronto."
}

// MsgContactSent is returned when the contact notification was delivered
func MsgContactSent(lang Lang) string {
	if lang == EN {
		return "Contact message sent successfully. We will contact you soon!"
	}
	return "Mensaje de contacto enviado correctamente. ¡Pronto te contactaremos!"
}

// MsgContactReceived is returned when the contact request was accepted but
// the notification could not be delivered
func MsgContactReceived(lang Lang) string {
	if lang == EN {
		return "Your message was received successfully. We will contact you soon."
	}
	return "Tu mensaje fue recibido correctamente. Te contactaremos pronto."
}

// MsgUnexpectedError is returned for malformed bodies and internal failures
func MsgUnexpectedError(lang Lang) string {
	if lang == EN {
		return "An unexpected error occurred. Please try again."
	}
	return "Ocurrió un error inesperado. Por favor intenta nuevamente."
}

// MsgTooManyRequests is returned when the submitter exceeded the rate limit
func MsgTooManyRequests(lang Lang) string {
	if lang == EN {
		return "Too many requests. Please wait a moment and try again."
	}
	return "Demasiadas solicitudes. Por favor espera un momento e intenta nuevamente."
}
