package game

// GameError is a custom error type for game-related errors
type GameError string

// Error implements the error interface
func (e GameError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrGameNotFound        GameError = "game not found"
	ErrGameAlreadyExists   GameError = "player already has an active game"
	ErrGameOver            GameError = "game is over"
	ErrNotYourTurn         GameError = "not your turn"
	ErrNoOpponentTurn      GameError = "current participant is not an AI opponent"
	ErrOpponentStalled     GameError = "opponent turn did not finish"
	ErrConcurrentUpdate    GameError = "game changed while the action was applied"
	ErrInvalidInput        GameError = "invalid input"
	ErrNilConfig           GameError = "config cannot be nil"
	ErrNilGameRepo         GameError = "game repository cannot be nil"
	ErrNilPlayerRepo       GameError = "player repository cannot be nil"
	ErrNilHallOfFameRepo   GameError = "hall of fame repository cannot be nil"
	ErrNilDiceRoller       GameError = "dice roller cannot be nil"
	ErrNilOpponentService  GameError = "opponent service cannot be nil"
	ErrNilMessagingService GameError = "messaging service cannot be nil"
	ErrNilClock            GameError = "clock cannot be nil"
	ErrNilUUIDGenerator    GameError = "UUID generator cannot be nil"
)
