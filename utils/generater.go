package utils

import "github.com/google/uuid"

// GenerateID returns an appointment identifier, unique within and across
// sessions.
func GenerateID() string {
	return uuid.NewString()
}
