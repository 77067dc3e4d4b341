package dice

//go:generate mockgen -package=mocks -destination=mocks/mock_roller.go github.com/KirkDiggler/kostka/internal/dice Roller

import (
	"fmt"
	"math/rand"
	"sync"
	"time"
)

const (
	// Sides is the number of faces on every die in the game
	Sides = 6

	// MaxDice is the size of the full dice pool
	MaxDice = 6
)

// DiceError is a custom error type for dice errors
type DiceError string

// Error implements the error interface
func (e DiceError) Error() string {
	return string(e)
}

// ErrInvalidArgument is returned when asked for a dice count outside [1, MaxDice]
const ErrInvalidArgument DiceError = "invalid argument"

// Roller provides dice rolling functionality
type Roller interface {
	// RollDice returns count independent faces in [1, Sides]
	RollDice(count int) ([]int, error)
}

// Config for dice roller
type Config struct {
	// Optional seed for testing
	Seed int64
}

// DefaultRoller rolls dice from a seeded math/rand source
type DefaultRoller struct {
	mu     sync.Mutex
	random *rand.Rand
}

// New creates a new dice roller
func New(cfg *Config) *DefaultRoller {
	var seed int64
	if cfg != nil && cfg.Seed != 0 {
		seed = cfg.Seed
	} else {
		seed = time.Now().UnixNano()
	}

	return &DefaultRoller{
		random: rand.New(rand.NewSource(seed)),
	}
}

// RollDice rolls count six-sided dice.
// An out of range count is an orchestration bug and is rejected rather than clamped.
func (r *DefaultRoller) RollDice(count int) ([]int, error) {
	if count < 1 || count > MaxDice {
		return nil, fmt.Errorf("%w: dice count %d outside [1, %d]", ErrInvalidArgument, count, MaxDice)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	faces := make([]int, count)
	for i := range faces {
		faces[i] = r.random.Intn(Sides) + 1
	}

	return faces, nil
}
