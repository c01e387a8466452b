package utils

import (
	"github.com/google/uuid"
)

// GenerateSessionToken returns a random v4 token for an admin session.
func GenerateSessionToken() uuid.UUID {
	return uuid.New()
}
