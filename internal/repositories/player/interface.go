package player

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/kostka/internal/repositories/player Repository

import (
	"context"

	"github.com/KirkDiggler/kostka/internal/models"
)

// Repository defines the interface for player profile persistence
type Repository interface {
	// SavePlayer persists a player
	SavePlayer(ctx context.Context, input *SavePlayerInput) error

	// GetPlayer retrieves a player by ID
	GetPlayer(ctx context.Context, input *GetPlayerInput) (*models.Player, error)

	// UpdatePlayerGame points a player at a game, or clears it with an empty game ID
	UpdatePlayerGame(ctx context.Context, input *UpdatePlayerGameInput) error

	// RecordGameResult counts a finished game on the player's record
	RecordGameResult(ctx context.Context, input *RecordGameResultInput) error
}
