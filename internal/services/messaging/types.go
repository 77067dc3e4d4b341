package messaging

import (
	"github.com/KirkDiggler/kostka/internal/services/opponent"
)

// Situation is the moment of play an opponent reacts to
type Situation string

const (
	SituationTurnStart    Situation = "turn_start"
	SituationBust         Situation = "bust"
	SituationHotDice      Situation = "hot_dice"
	SituationBank         Situation = "bank"
	SituationStop         Situation = "stop"
	SituationWin          Situation = "win"
	SituationOpponentBust Situation = "opponent_bust"
)

// ErrorType is the kind of rejection shown to a player
type ErrorType string

const (
	ErrorTypeNotYourTurn      ErrorType = "not_your_turn"
	ErrorTypeNoGame           ErrorType = "no_game"
	ErrorTypeGameExists       ErrorType = "game_exists"
	ErrorTypeGameOver         ErrorType = "game_over"
	ErrorTypeInvalidSelection ErrorType = "invalid_selection"
	ErrorTypeHotDiceMustRoll  ErrorType = "hot_dice_must_roll"
	ErrorTypeMustBank         ErrorType = "must_bank"
	ErrorTypeMustRoll         ErrorType = "must_roll"
	ErrorTypeBusy             ErrorType = "busy"
	ErrorTypeUnknown          ErrorType = "unknown"
)

// Config holds configuration for the messaging service
type Config struct {
	// Seed makes line selection repeatable, zero seeds from the clock
	Seed int64
}

// GetOpponentLineInput contains parameters for getting an opponent line
type GetOpponentLineInput struct {
	// OpponentID is the personality speaking
	OpponentID opponent.Personality

	// Situation is what just happened
	Situation Situation

	// PlayerName is the participant the line is about, used by opponent_bust
	PlayerName string
}

// GetOpponentLineOutput contains the selected line
type GetOpponentLineOutput struct {
	Line string
}

// GetErrorMessageInput contains parameters for getting an error message
type GetErrorMessageInput struct {
	ErrorType ErrorType
}

// GetErrorMessageOutput contains the selected message
type GetErrorMessageOutput struct {
	Message string
}
