// Package validation contains input validators for account credentials.
package validation

import (
	"errors"
	"regexp"
	"unicode"
	"unicode/utf8"
)

const (
	minPasswordLength = 12
	maxPasswordLength = 128
	maxEmailLength    = 254
)

var (
	usernameRegex = regexp.MustCompile(`^[a-zA-Z0-9][a-zA-Z0-9_-]{1,28}[a-zA-Z0-9]$`)
	emailRegex    = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9\-]+(\.[a-zA-Z0-9\-]+)+$`)
)

// ValidatePassword enforces the password policy: 12 to 128 characters
// with at least one upper, one lower, one digit and one special
// character.
func ValidatePassword(password string) error {
	length := utf8.RuneCountInString(password)
	if length < minPasswordLength {
		return errors.New("Password must be at least 12 characters long")
	}
	if length > maxPasswordLength {
		return errors.New("Password must be at most 128 characters long")
	}

	var hasUpper, hasLower, hasDigit, hasSpecial bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		case unicode.IsPunct(r) || unicode.IsSymbol(r):
			hasSpecial = true
		}
	}

	if !hasUpper {
		return errors.New("Password must contain at least one uppercase letter")
	}
	if !hasLower {
		return errors.New("Password must contain at least one lowercase letter")
	}
	if !hasDigit {
		return errors.New("Password must contain at least one digit")
	}
	if !hasSpecial {
		return errors.New("Password must contain at least one special character")
	}
	return nil
}

// ValidateUsername allows 3 to 30 characters: letters, digits,
// underscores and dashes, starting and ending with a letter or digit.
func ValidateUsername(username string) error {
	if !usernameRegex.MatchString(username) {
		return errors.New("Username must be 3-30 characters (letters, digits, _ or -) and start and end with a letter or digit")
	}
	return nil
}

// ValidateEmail checks basic email shape and the RFC length cap.
func ValidateEmail(email string) error {
	if len(email) > maxEmailLength {
		return errors.New("Email must be at most 254 characters long")
	}
	if !emailRegex.MatchString(email) {
		return errors.New("Invalid email address")
	}
	return nil
}
