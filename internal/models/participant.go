package models

// Participant represents a seat in a game, human or AI
type Participant struct {
	// Name is the display name of the participant
	Name string

	// PlayerID is the Discord user ID for humans, empty for AI opponents
	PlayerID string

	// OpponentID selects the AI personality, empty for humans
	OpponentID string

	// IsHuman indicates a person submits this participant's actions
	IsHuman bool

	// TotalScore only grows, and only when a turn is stopped and banked
	TotalScore int

	// TurnsTaken is the number of this participant's turns that have ended
	TurnsTaken int
}
