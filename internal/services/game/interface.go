package game

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/kostka/internal/services/game Service

import (
	"context"
)

// Service owns game state and applies actions from humans and AI opponents
type Service interface {
	// CreateGame seats the owner against the AI opponents
	CreateGame(ctx context.Context, input *CreateGameInput) (*CreateGameOutput, error)

	// GetGame retrieves a game by ID
	GetGame(ctx context.Context, input *GetGameInput) (*GetGameOutput, error)

	// GetGameForPlayer retrieves the game a player is currently in
	GetGameForPlayer(ctx context.Context, input *GetGameForPlayerInput) (*GetGameForPlayerOutput, error)

	// SubmitAction applies a human player's action
	SubmitAction(ctx context.Context, input *SubmitActionInput) (*SubmitActionOutput, error)

	// PlayOpponentTurn runs AI opponents until a human is on turn or the game ends
	PlayOpponentTurn(ctx context.Context, input *PlayOpponentTurnInput) (*PlayOpponentTurnOutput, error)

	// ResumeOpponentTurns finishes AI turns left pending in stored active games
	ResumeOpponentTurns(ctx context.Context, input *ResumeOpponentTurnsInput) (*ResumeOpponentTurnsOutput, error)

	// AbandonGame discards a game and frees its owner
	AbandonGame(ctx context.Context, input *AbandonGameInput) (*AbandonGameOutput, error)

	// GetHallOfFame lists the best human wins
	GetHallOfFame(ctx context.Context, input *GetHallOfFameInput) (*GetHallOfFameOutput, error)
}
