package hall_of_fame

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/kostka/internal/repositories/hall_of_fame Repository

import (
	"context"
)

// Repository defines the interface for Hall of Fame persistence
type Repository interface {
	// AddEntry records a won game, dropping entries that fall off the list
	AddEntry(ctx context.Context, input *AddEntryInput) error

	// GetTopEntries returns the best entries in rank order
	GetTopEntries(ctx context.Context, input *GetTopEntriesInput) (*GetTopEntriesOutput, error)
}
