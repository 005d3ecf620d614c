package models

import "github.com/google/uuid"

// NewID returns a short random identifier.
func NewID() string {
	return uuid.NewString()[:8]
}
