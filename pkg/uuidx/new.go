// Package uuidx mints the time-ordered UUIDs used as request scopes.
package uuidx

import "github.com/google/uuid"

// New returns a fresh version 7 UUID. It panics if generation fails, which
// only happens when the system entropy source is broken.
func New() uuid.UUID {
	return uuid.Must(uuid.NewV7())
}

// NewString returns a fresh version 7 UUID in string form.
func NewString() string {
	return New().String()
}
