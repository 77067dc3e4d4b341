package engine

import (
	"github.com/KirkDiggler/kostka/internal/dice"
	"github.com/KirkDiggler/kostka/internal/models"
)

// ActionType is what a participant asks the engine to do
type ActionType string

const (
	// ActionRoll rolls every die not yet banked this turn
	ActionRoll ActionType = "roll"

	// ActionBank sets aside the selected dice of the current roll
	ActionBank ActionType = "bank"

	// ActionStop ends the turn and adds the turn score to the total
	ActionStop ActionType = "stop"
)

// Action is submitted identically by humans and AI opponents
type Action struct {
	Type ActionType

	// Indices into the current roll, only used by ActionBank
	Indices []int
}

// Roll builds a roll action
func Roll() Action {
	return Action{Type: ActionRoll}
}

// Bank builds a bank action for the given roll positions
func Bank(indices ...int) Action {
	return Action{Type: ActionBank, Indices: indices}
}

// Stop builds a stop action
func Stop() Action {
	return Action{Type: ActionStop}
}

// Config holds configuration for the engine
type Config struct {
	// DiceRoller supplies the faces for every roll
	DiceRoller dice.Roller
}

// NewGameInput contains parameters for setting up a game
type NewGameInput struct {
	// ID is the unique identifier for the game
	ID string

	// Participants in seating order, the first one rolls first
	Participants []*models.Participant

	// TargetScore is the total needed to win
	TargetScore int
}

// Result describes what an accepted action did
type Result struct {
	// Game is the state after the action; the submitted game is never modified
	Game *models.Game

	// Action is the action that was applied
	Action Action

	// Roll holds the faces of a roll action
	Roll []int

	// BankedScore is the value of a bank action
	BankedScore int

	// IsBust indicates the roll had nothing to bank and the turn score was lost
	IsBust bool

	// IsHotDice indicates all six dice were banked and the pool is back to six
	IsHotDice bool

	// TurnEnded indicates play passed on, by bust or stop
	TurnEnded bool

	// EndedTurn summarises the turn when TurnEnded is set
	EndedTurn *models.TurnRecord

	// GameOver indicates the action produced a winner
	GameOver bool
}
