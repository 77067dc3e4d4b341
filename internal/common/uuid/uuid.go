// Package uuid issues identifiers for games and Hall of Fame entries.
package uuid

import "github.com/google/uuid"

//go:generate mockgen -package=mocks -destination=mocks/mock_uuid.go github.com/KirkDiggler/kostka/internal/common/uuid UUID

// UUID issues unique string identifiers
type UUID interface {
	NewUUID() string
}

// Generator issues random (version 4) UUIDs
type Generator struct{}

// New returns a random UUID generator
func New() *Generator {
	return &Generator{}
}

// NewUUID returns a new UUID string
func (g *Generator) NewUUID() string {
	return uuid.NewString()
}
