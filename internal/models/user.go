package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// User represents a registered account. Users sign up with email and
// password; accounts created through campus SSO carry the OIDC subject
// and a random local credential.
type User struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	PasswordHash string    `json:"-"`
	Sub          *string   `json:"sub,omitempty"` // OIDC subject, nil for local accounts
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// DisplayName returns the user's name, falling back to the email local part.
func (u *User) DisplayName() string {
	if u.Name != "" {
		return u.Name
	}
	return EmailLocalPart(u.Email)
}

// EmailLocalPart returns the part of an email address before the '@'.
func EmailLocalPart(email string) string {
	if i := strings.IndexByte(email, '@'); i >= 0 {
		return email[:i]
	}
	return email
}
