package game

import (
	"github.com/KirkDiggler/kostka/internal/common/clock"
	"github.com/KirkDiggler/kostka/internal/common/uuid"
	"github.com/KirkDiggler/kostka/internal/dice"
	"github.com/KirkDiggler/kostka/internal/engine"
	"github.com/KirkDiggler/kostka/internal/models"
	gameRepo "github.com/KirkDiggler/kostka/internal/repositories/game"
	hallOfFameRepo "github.com/KirkDiggler/kostka/internal/repositories/hall_of_fame"
	playerRepo "github.com/KirkDiggler/kostka/internal/repositories/player"
	"github.com/KirkDiggler/kostka/internal/services/messaging"
	"github.com/KirkDiggler/kostka/internal/services/opponent"
)

// DefaultTargetScore is used when neither the caller nor the config sets one
const DefaultTargetScore = 10000

// Config holds configuration for the game service
type Config struct {
	// TargetScore is the default total needed to win
	TargetScore int

	// Repository dependencies
	GameRepo       gameRepo.Repository
	PlayerRepo     playerRepo.Repository
	HallOfFameRepo hallOfFameRepo.Repository

	// Service dependencies
	DiceRoller       dice.Roller
	OpponentService  opponent.Service
	MessagingService messaging.Service
	Clock            clock.Clock
	UUIDGenerator    uuid.UUID
}

// CreateGameInput contains parameters for creating a new game
type CreateGameInput struct {
	// OwnerID is the Discord user ID of the human player
	OwnerID string

	// OwnerName is the display name of the human player
	OwnerName string

	// ChannelID is the Discord channel the game is played in
	ChannelID string

	// TargetScore overrides the configured target when positive
	TargetScore int
}

// CreateGameOutput contains the result of creating a new game
type CreateGameOutput struct {
	Game *models.Game

	// Player is the owner's profile, including their record so far
	Player *models.Player
}

// GetGameInput contains parameters for retrieving a game
type GetGameInput struct {
	GameID string
}

// GetGameOutput contains the retrieved game
type GetGameOutput struct {
	Game *models.Game
}

// GetGameForPlayerInput contains parameters for finding a player's game
type GetGameForPlayerInput struct {
	PlayerID string
}

// GetGameForPlayerOutput contains the player's current game
type GetGameForPlayerOutput struct {
	Game *models.Game
}

// SubmitActionInput contains parameters for a human action
type SubmitActionInput struct {
	GameID   string
	PlayerID string
	Action   engine.Action
}

// SubmitActionOutput contains the result of a human action
type SubmitActionOutput struct {
	// Game is the stored state after the action
	Game *models.Game

	// Result describes what the action did
	Result *engine.Result

	// Reaction is an opponent's comment when the action busted, empty otherwise
	Reaction *OpponentLine
}

// OpponentLine is something an AI opponent says
type OpponentLine struct {
	Name string
	Line string
}

// OpponentStep is one action taken by an AI opponent
type OpponentStep struct {
	// ParticipantIndex is the seat that acted
	ParticipantIndex int

	// Result describes what the action did
	Result *engine.Result

	// Line is what the opponent said about it, nil when it kept quiet
	Line *OpponentLine
}

// PlayOpponentTurnInput contains parameters for running AI turns
type PlayOpponentTurnInput struct {
	GameID string
}

// PlayOpponentTurnOutput contains every step the opponents took
type PlayOpponentTurnOutput struct {
	Game  *models.Game
	Steps []*OpponentStep
}

// ResumeOpponentTurnsInput contains parameters for resuming pending AI turns
type ResumeOpponentTurnsInput struct{}

// ResumeOpponentTurnsOutput reports which games were moved forward
type ResumeOpponentTurnsOutput struct {
	GameIDs []string
}

// AbandonGameInput contains parameters for quitting a game
type AbandonGameInput struct {
	GameID string
}

// AbandonGameOutput contains the result of quitting a game
type AbandonGameOutput struct{}

// GetHallOfFameInput contains parameters for listing the Hall of Fame
type GetHallOfFameInput struct {
	Limit int
}

// GetHallOfFameOutput contains the ranked entries
type GetHallOfFameOutput struct {
	Entries []*models.HallOfFameEntry
}
