// AngelaMos | 2026
// id.go

package store

import (
	"github.com/google/uuid"
)

// NewID returns a time-ordered UUIDv7. Both backends use it, so an id
// minted in demo mode has the same shape as one minted by the database path.
func NewID() string {
	return uuid.Must(uuid.NewV7()).String()
}

func ValidID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}
