package messaging

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"time"
)

// service implements the Service interface
type service struct {
	mu   sync.Mutex
	rand *rand.Rand
}

// New creates a new messaging service
func New(cfg *Config) *service {
	seed := time.Now().UnixNano()
	if cfg != nil && cfg.Seed != 0 {
		seed = cfg.Seed
	}

	return &service{
		rand: rand.New(rand.NewSource(seed)),
	}
}

// pick returns a random message
func (s *service) pick(messages []string) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return messages[s.rand.Intn(len(messages))]
}

// GetOpponentLine returns what an opponent says in a situation
func (s *service) GetOpponentLine(ctx context.Context, input *GetOpponentLineInput) (*GetOpponentLineOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	situations, ok := opponentLines[input.OpponentID]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownOpponent, input.OpponentID)
	}

	lines, ok := situations[input.Situation]
	if !ok || len(lines) == 0 {
		return nil, fmt.Errorf("%w: %q", ErrUnknownSituation, input.Situation)
	}

	line := s.pick(lines)
	if input.Situation == SituationOpponentBust {
		line = fmt.Sprintf(line, input.PlayerName)
	}

	return &GetOpponentLineOutput{
		Line: line,
	}, nil
}

// GetErrorMessage returns a user-friendly error message
func (s *service) GetErrorMessage(ctx context.Context, input *GetErrorMessageInput) (*GetErrorMessageOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	messages, ok := errorMessages[input.ErrorType]
	if !ok {
		messages = errorMessages[ErrorTypeUnknown]
	}

	return &GetErrorMessageOutput{
		Message: s.pick(messages),
	}, nil
}
