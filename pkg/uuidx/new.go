// Package uuidx generates time-ordered (version 7) UUIDs.
package uuidx

import "github.com/google/uuid"

// New returns a new UUIDv7, panicking if generation fails.
func New() uuid.UUID {
	return uuid.Must(uuid.NewV7())
}

// NewString returns a new UUIDv7 rendered as a string.
func NewString() string {
	return New().String()
}
