package messaging

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/kostka/internal/services/messaging Service

import "context"

// Service is the interface for the messaging service
type Service interface {
	// GetOpponentLine returns what an AI opponent says in a situation
	GetOpponentLine(ctx context.Context, input *GetOpponentLineInput) (*GetOpponentLineOutput, error)

	// GetErrorMessage returns a user-friendly error message
	GetErrorMessage(ctx context.Context, input *GetErrorMessageInput) (*GetErrorMessageOutput, error)
}
