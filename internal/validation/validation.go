package validation

import (
	"regexp"
	"strings"
)

// EmailPattern is a pragmatic email check: one @, no spaces, a dot in the domain.
var EmailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

const (
	MaxTitleLength       = 200
	MaxDescriptionLength = 5000
	MinPasswordLength    = 8
)

// ValidateEmail checks if an email address is plausibly well-formed.
func ValidateEmail(email string) bool {
	if email == "" || len(email) > 254 {
		return false
	}
	return EmailPattern.MatchString(email)
}

// ValidatePassword checks the minimum password requirements for signup.
func ValidatePassword(password string) (bool, string) {
	if len(password) < MinPasswordLength {
		return false, "Password must be at least 8 characters"
	}
	return true, ""
}

// ValidateTitle checks a resource title is present and within limits.
func ValidateTitle(title string) (bool, string) {
	title = strings.TrimSpace(title)
	if title == "" {
		return false, "Title is required"
	}
	if len(title) > MaxTitleLength {
		return false, "Title is too long"
	}
	return true, ""
}

// ValidateDescription checks a resource description is present and within limits.
func ValidateDescription(description string) (bool, string) {
	description = strings.TrimSpace(description)
	if description == "" {
		return false, "Description is required"
	}
	if len(description) > MaxDescriptionLength {
		return false, "Description is too long"
	}
	return true, ""
}
