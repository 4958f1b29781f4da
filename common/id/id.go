package id

import "github.com/google/uuid"

// New generates a new random conversation ID.
// IDs are UUIDv4 strings; they carry no ordering and no provider data.
func New() uuid.UUID {
	return uuid.New()
}

// Parse parses a conversation ID from its string form.
func Parse(s string) (uuid.UUID, error) {
	return uuid.Parse(s)
}
