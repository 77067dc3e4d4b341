package discord

import (
	"context"
	"errors"
	"log"

	"github.com/KirkDiggler/kostka/internal/engine"
	"github.com/KirkDiggler/kostka/internal/models"
	"github.com/KirkDiggler/kostka/internal/services/game"
	"github.com/KirkDiggler/kostka/internal/services/messaging"
	"github.com/bwmarrin/discordgo"
)

// errorTypeFor classifies a service or engine rejection. The game, when known,
// tells apart the illegal transitions.
func errorTypeFor(err error, g *models.Game) messaging.ErrorType {
	switch {
	case errors.Is(err, game.ErrNotYourTurn):
		return messaging.ErrorTypeNotYourTurn
	case errors.Is(err, game.ErrGameNotFound):
		return messaging.ErrorTypeNoGame
	case errors.Is(err, game.ErrGameAlreadyExists):
		return messaging.ErrorTypeGameExists
	case errors.Is(err, game.ErrGameOver):
		return messaging.ErrorTypeGameOver
	case errors.Is(err, game.ErrConcurrentUpdate):
		return messaging.ErrorTypeBusy
	case errors.Is(err, engine.ErrInvalidSelection):
		return messaging.ErrorTypeInvalidSelection
	case errors.Is(err, engine.ErrIllegalTransition):
		return illegalTransitionType(g)
	}
	return messaging.ErrorTypeUnknown
}

func illegalTransitionType(g *models.Game) messaging.ErrorType {
	if g == nil {
		return messaging.ErrorTypeUnknown
	}

	if g.Status.IsCompleted() || g.Turn == nil {
		return messaging.ErrorTypeGameOver
	}

	switch g.Turn.Phase {
	case models.TurnPhaseAwaitingRoll:
		if g.Turn.IsHotDice {
			return messaging.ErrorTypeHotDiceMustRoll
		}
		return messaging.ErrorTypeMustRoll
	case models.TurnPhaseDiceRolled:
		return messaging.ErrorTypeMustBank
	}

	return messaging.ErrorTypeUnknown
}

// respondWithServiceError shows a player-facing explanation of err
func respondWithServiceError(s *discordgo.Session, i *discordgo.InteractionCreate, messagingService messaging.Service, err error, g *models.Game) error {
	errorType := errorTypeFor(err, g)
	if errorType == messaging.ErrorTypeUnknown {
		log.Printf("Unexpected error: %v", err)
	}

	output, msgErr := messagingService.GetErrorMessage(context.Background(), &messaging.GetErrorMessageInput{
		ErrorType: errorType,
	})
	if msgErr != nil {
		log.Printf("Error getting error message: %v", msgErr)
		return RespondWithError(s, i, err.Error())
	}

	return RespondWithEphemeralMessage(s, i, output.Message)
}
