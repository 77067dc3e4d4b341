package models

import "github.com/KirkDiggler/kostka/internal/dice"

// TurnPhase is the resting state of a turn between actions
type TurnPhase string

const (
	// TurnPhaseAwaitingRoll is the start of a turn, or the forced roll after Hot Dice
	TurnPhaseAwaitingRoll TurnPhase = "awaiting_roll"

	// TurnPhaseDiceRolled means scoring dice are on the table and a selection must be banked
	TurnPhaseDiceRolled TurnPhase = "dice_rolled"

	// TurnPhaseAwaitingRollOrStop follows a bank that left dice in the pool
	TurnPhaseAwaitingRollOrStop TurnPhase = "awaiting_roll_or_stop"
)

// Turn is the state of the turn in progress
type Turn struct {
	// PlayerIndex is the seat taking the turn
	PlayerIndex int

	// Phase is where the turn is waiting
	Phase TurnPhase

	// RolledDice are the faces of the last roll not yet banked
	RolledDice []int

	// BankedDiceCount is how many of the six dice are set aside this turn
	BankedDiceCount int

	// TurnScore is the points banked this turn, lost on a bust
	TurnScore int

	// IsBust is set when the last roll had nothing to bank
	IsBust bool

	// IsHotDice is set when all six dice were banked and a fresh roll is required
	IsHotDice bool

	// RollCount is the number of rolls made this turn
	RollCount int
}

// RemainingDice is the size of the next roll
func (t *Turn) RemainingDice() int {
	return dice.MaxDice - t.BankedDiceCount
}

// Clone returns a deep copy of the turn
func (t *Turn) Clone() *Turn {
	if t == nil {
		return nil
	}
	clone := *t
	if t.RolledDice != nil {
		clone.RolledDice = append([]int(nil), t.RolledDice...)
	}
	return &clone
}

// TurnRecord summarises a turn once it has ended
type TurnRecord struct {
	// PlayerIndex is the seat that took the turn
	PlayerIndex int

	// PlayerName is the display name of that seat
	PlayerName string

	// TurnScore is what was banked this turn, or what was lost on a bust
	TurnScore int

	// IsBust indicates the turn ended on a roll with nothing to bank
	IsBust bool

	// LastRoll is the roll that busted, empty when the turn was stopped
	LastRoll []int

	// RollCount is the number of rolls made during the turn
	RollCount int

	// TotalScore is the seat's total after the turn
	TotalScore int
}

// Clone returns a copy of the record
func (r *TurnRecord) Clone() *TurnRecord {
	if r == nil {
		return nil
	}
	clone := *r
	if r.LastRoll != nil {
		clone.LastRoll = append([]int(nil), r.LastRoll...)
	}
	return &clone
}
