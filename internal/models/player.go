package models

import (
	"time"
)

// Player is a Discord user who plays against the AI opponents
type Player struct {
	// ID is the Discord user ID of the player
	ID string

	// Name is the display name of the player
	Name string

	// CurrentGameID is the ID of the game the player is currently in
	CurrentGameID string

	// GamesPlayed counts finished games, won or lost
	GamesPlayed int

	// GamesWon counts games the player reached the target first
	GamesWon int

	// LastSeen is when the player last started or acted in a game
	LastSeen time.Time
}
