package domain

import "time"

// Session binds an opaque token to the identity of a single registration.
type Session struct {
	ID             string         `json:"id"`
	RegistrationID RegistrationID `json:"registrationId"`
	RegCode        string         `json:"regCode"`
	Email          string         `json:"email"`
	CreatedAt      time.Time      `json:"createdAt"`
	ExpiresAt      time.Time      `json:"expiresAt"`
}

// Expired reports whether the session is no longer valid at the given instant.
func (s Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.After(now)
}
