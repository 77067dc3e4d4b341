package opponent

// GameError is a custom error type for opponent decisions
type GameError string

// Error implements the error interface
func (e GameError) Error() string {
	return string(e)
}

const (
	ErrNilGame         GameError = "game cannot be nil"
	ErrNoTurnInPlay    GameError = "game has no turn in play"
	ErrNotAnOpponent   GameError = "current participant is not an AI opponent"
	ErrUnknownOpponent GameError = "unknown opponent"
)
