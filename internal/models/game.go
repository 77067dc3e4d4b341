package models

import (
	"time"
)

// GameStatus represents the current state of a game
type GameStatus string

const (
	// GameStatusActive indicates a game is in progress
	GameStatusActive GameStatus = "active"

	// GameStatusCompleted indicates a participant reached the target score
	GameStatusCompleted GameStatus = "completed"
)

// IsActive reports whether turns are still being played
func (s GameStatus) IsActive() bool {
	return s == GameStatusActive
}

// IsCompleted reports whether the game has a winner
func (s GameStatus) IsCompleted() bool {
	return s == GameStatusCompleted
}

// NoWinner is the WinnerIndex of a game nobody has won yet
const NoWinner = -1

// Game is the full state of one playthrough
type Game struct {
	// ID is the unique identifier for the game
	ID string

	// OwnerID is the Discord user ID of the human who started the game
	OwnerID string

	// ChannelID is the Discord channel where the game is being played
	ChannelID string

	// Status is the current state of the game
	Status GameStatus

	// Participants in seating order
	Participants []*Participant

	// CurrentPlayerIndex is the seat whose turn it is
	CurrentPlayerIndex int

	// TargetScore is the total needed to win
	TargetScore int

	// Turn is the turn in progress, nil once the game is over
	Turn *Turn

	// LastTurn summarises the most recently ended turn
	LastTurn *TurnRecord

	// WinnerIndex is the seat of the winner or NoWinner
	WinnerIndex int

	// TurnCount is the number of turns ended so far across all participants
	TurnCount int

	// Version is bumped by every save; a save carrying a stale version is refused
	Version int

	// CreatedAt is when the game was created
	CreatedAt time.Time

	// UpdatedAt is when the game was last updated
	UpdatedAt time.Time

	// CompletedAt is when the winner was decided
	CompletedAt *time.Time
}

// CurrentParticipant returns the participant whose turn it is
func (g *Game) CurrentParticipant() *Participant {
	if g.CurrentPlayerIndex < 0 || g.CurrentPlayerIndex >= len(g.Participants) {
		return nil
	}
	return g.Participants[g.CurrentPlayerIndex]
}

// Winner returns the winning participant, or nil
func (g *Game) Winner() *Participant {
	if g.WinnerIndex == NoWinner || g.WinnerIndex >= len(g.Participants) {
		return nil
	}
	return g.Participants[g.WinnerIndex]
}

// Clone returns a deep copy of the game
func (g *Game) Clone() *Game {
	if g == nil {
		return nil
	}

	clone := *g

	clone.Participants = make([]*Participant, len(g.Participants))
	for i, p := range g.Participants {
		cp := *p
		clone.Participants[i] = &cp
	}

	clone.Turn = g.Turn.Clone()
	clone.LastTurn = g.LastTurn.Clone()

	if g.CompletedAt != nil {
		completedAt := *g.CompletedAt
		clone.CompletedAt = &completedAt
	}

	return &clone
}
