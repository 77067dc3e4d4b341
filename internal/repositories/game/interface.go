package game

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/kostka/internal/repositories/game Repository

import (
	"context"

	"github.com/KirkDiggler/kostka/internal/models"
)

// Repository defines the interface for game state persistence
type Repository interface {
	// SaveGame persists a game
	SaveGame(ctx context.Context, input *SaveGameInput) error

	// GetGame retrieves a game by ID
	GetGame(ctx context.Context, input *GetGameInput) (*models.Game, error)

	// DeleteGame removes a game
	DeleteGame(ctx context.Context, input *DeleteGameInput) error

	// GetActiveGames retrieves all games still being played
	GetActiveGames(ctx context.Context, input *GetActiveGamesInput) (*GetActiveGamesOutput, error)
}
