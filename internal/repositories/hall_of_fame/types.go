package hall_of_fame

import (
	"errors"
	"sort"

	"github.com/KirkDiggler/kostka/internal/models"
)

// DefaultMaxEntries is used when a backend is configured without a size
const DefaultMaxEntries = 10

var (
	// ErrNilEntry is returned when AddEntry is called without an entry
	ErrNilEntry = errors.New("input and entry cannot be nil")

	// ErrInvalidEntry is returned when an entry is missing its ID or player name
	ErrInvalidEntry = errors.New("entry ID and player name cannot be empty")
)

// AddEntryInput contains parameters for adding a Hall of Fame entry
type AddEntryInput struct {
	Entry *models.HallOfFameEntry
}

// GetTopEntriesInput contains parameters for listing the Hall of Fame
type GetTopEntriesInput struct {
	// Limit caps the number of entries; zero or negative means all kept entries
	Limit int
}

// GetTopEntriesOutput contains the ranked entries
type GetTopEntriesOutput struct {
	Entries []*models.HallOfFameEntry
}

func validateEntry(input *AddEntryInput) error {
	if input == nil || input.Entry == nil {
		return ErrNilEntry
	}

	if input.Entry.ID == "" || input.Entry.PlayerName == "" {
		return ErrInvalidEntry
	}

	return nil
}

// less orders entries by fewest turns, then shortest duration, then highest score.
// Older entries win remaining ties.
func less(a, b *models.HallOfFameEntry) bool {
	if a.TurnCount != b.TurnCount {
		return a.TurnCount < b.TurnCount
	}
	if a.Duration != b.Duration {
		return a.Duration < b.Duration
	}
	if a.Score != b.Score {
		return a.Score > b.Score
	}
	return a.RecordedAt.Before(b.RecordedAt)
}

// rank sorts entries in place
func rank(entries []*models.HallOfFameEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return less(entries[i], entries[j])
	})
}
