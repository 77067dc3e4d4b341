package models

import (
	"time"
)

// HallOfFameEntry records one won game
type HallOfFameEntry struct {
	// ID is the unique identifier for the entry
	ID string

	// GameID is the game that was won
	GameID string

	// PlayerName is the display name of the winner
	PlayerName string

	// Score is the winner's final total
	Score int

	// TargetScore is the target the game was played to
	TargetScore int

	// TurnCount is how many turns the winner needed
	TurnCount int

	// Duration is the wall time from game creation to the win
	Duration time.Duration

	// RecordedAt is when the entry was written
	RecordedAt time.Time
}
