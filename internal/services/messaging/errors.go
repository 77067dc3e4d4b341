package messaging

// GameError is a custom error type for messaging lookups
type GameError string

// Error implements the error interface
func (e GameError) Error() string {
	return string(e)
}

const (
	ErrNilInput         GameError = "input cannot be nil"
	ErrUnknownOpponent  GameError = "no lines for opponent"
	ErrUnknownSituation GameError = "no lines for situation"
)
