package engine

// GameError is a custom error type for rejected engine actions
type GameError string

// Error implements the error interface
func (e GameError) Error() string {
	return string(e)
}

// Every rejection leaves the submitted game untouched so the caller can retry.
const (
	ErrInvalidArgument   GameError = "invalid argument"
	ErrInvalidSelection  GameError = "invalid selection"
	ErrIllegalTransition GameError = "illegal transition"
	ErrNilConfig         GameError = "config cannot be nil"
	ErrNilDiceRoller     GameError = "dice roller cannot be nil"
)
