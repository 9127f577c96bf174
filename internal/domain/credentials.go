package domain

import "strings"

const minRegisterPasswordLength = 6

// ValidateLoginInput rejects obviously unusable credentials before any
// network call is made.
func ValidateLoginInput(email, password string) error {
	if strings.TrimSpace(email) == "" {
		return NewValidationError("email", "email is required")
	}
	if password == "" {
		return NewValidationError("password", "password is required")
	}
	return nil
}

// ValidateRegisterInput applies the login rules plus the minimum password
// length enforced at registration time.
func ValidateRegisterInput(email, password string) error {
	if err := ValidateLoginInput(email, password); err != nil {
		return err
	}
	if len(password) < minRegisterPasswordLength {
		return NewValidationError("password", "password must be at least 6 characters")
	}
	return nil
}
