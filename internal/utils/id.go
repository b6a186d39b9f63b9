package utils

import (
	"github.com/google/uuid"
)

// NewID generates a random identifier for a new entity
func NewID() string {
	return uuid.NewString()
}

// IsValidID reports whether s has the shape of an identifier produced by NewID
func IsValidID(s string) bool {
	_, err := uuid.Parse(s)
	return err == nil
}
