package opponent

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/kostka/internal/services/opponent Service

import "context"

// Service decides actions for AI opponents
type Service interface {
	// ListOpponents returns the opponents a new game is seated with
	ListOpponents(ctx context.Context, input *ListOpponentsInput) (*ListOpponentsOutput, error)

	// DecideAction picks the next action for the AI whose turn it is
	DecideAction(ctx context.Context, input *DecideActionInput) (*DecideActionOutput, error)
}
