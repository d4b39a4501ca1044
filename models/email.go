package models

import "regexp"

// InvalidEmailMessage is the message carried by the validation error
// returned for malformed email addresses.
const InvalidEmailMessage = "Correo electrónico no válido."

// emailRegex accepts local@domain.tld addresses: letters, digits and _.+-
// in the local part, letters, digits, underscore and hyphen in the first
// domain label, and at least one dot after it.
var emailRegex = regexp.MustCompile(`^[\w.+-]+@[\w-]+\.[\w.-]+$`)

// ValidateEmail returns email unchanged when it is well formed and a
// [*ValidationError] for the "email" field otherwise.
// No normalization (case folding, trimming) is applied.
func ValidateEmail(email string) (string, error) {
	if !emailRegex.MatchString(email) {
		return "", NewValidationError(FieldEmail, InvalidEmailMessage)
	}

	return email, nil
}

// IsValidEmail reports whether email passes [ValidateEmail].
func IsValidEmail(email string) bool {
	return emailRegex.MatchString(email)
}
