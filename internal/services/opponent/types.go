package opponent

import (
	"github.com/KirkDiggler/kostka/internal/engine"
	"github.com/KirkDiggler/kostka/internal/models"
)

// Personality identifies a scripted AI opponent
type Personality string

const (
	// PersonalityCautious banks small turns as soon as they score
	PersonalityCautious Personality = "opatrny"

	// PersonalityBalanced plays the odds on how many dice are left
	PersonalityBalanced Personality = "vyvazeny"

	// PersonalityReckless keeps rolling until the turn is huge
	PersonalityReckless Personality = "riskar"
)

// Profile describes how a personality plays
type Profile struct {
	// ID is the personality key stored on the participant
	ID Personality

	// Name is shown at the table
	Name string

	// StopAt is the turn score at which the opponent always stops
	StopAt int

	// LowDice is the remaining dice count at which LowDiceStopAt applies, zero disables it
	LowDice int

	// LowDiceStopAt is the turn score that is enough when few dice remain
	LowDiceStopAt int
}

// DecideActionInput contains parameters for choosing an opponent's next action
type DecideActionInput struct {
	Game *models.Game
}

// DecideActionOutput contains the chosen action
type DecideActionOutput struct {
	Action engine.Action

	// Profile is the personality that decided
	Profile *Profile
}

// ListOpponentsInput contains parameters for listing opponents
type ListOpponentsInput struct{}

// ListOpponentsOutput lists every opponent in seating order
type ListOpponentsOutput struct {
	Opponents []*Profile
}
