package user

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Shape-only validation helpers. Uniqueness (username taken, email
// already registered) needs directory state and lives in the service.

// ValidateUsername checks length and character set. Lengths count
// runes, not bytes, so multibyte input is measured as typed.
func ValidateUsername(s string) (bool, string) {
	err := validation.Validate(s,
		validation.Required.Error("username must have at least 3 characters"),
		validation.RuneLength(3, 0).Error("username must have at least 3 characters"),
		validation.Match(usernamePattern).Error("username may only contain letters, numbers and underscore"),
	)
	if err != nil {
		return false, err.Error()
	}
	return true, "valid username"
}

// ValidateEmail checks the local@domain.tld shape (domain with at least
// one dot, TLD of two or more letters).
func ValidateEmail(s string) bool {
	return validation.Validate(s,
		validation.Required,
		validation.Match(emailPattern),
	) == nil
}

// ValidatePassword checks minimum strength: length, one uppercase
// letter, one digit. Rules run in order; the first failure wins.
func ValidatePassword(s string) (bool, string) {
	err := validation.Validate(s,
		validation.Required.Error("password must have at least 6 characters"),
		validation.RuneLength(6, 0).Error("password must have at least 6 characters"),
		validation.Match(upperPattern).Error("password must contain an uppercase letter"),
		validation.Match(digitPattern).Error("password must contain a number"),
	)
	if err != nil {
		return false, err.Error()
	}
	return true, "strong password"
}
