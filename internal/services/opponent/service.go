package opponent

import (
	"context"
	"fmt"

	"github.com/KirkDiggler/kostka/internal/engine"
	"github.com/KirkDiggler/kostka/internal/models"
	"github.com/KirkDiggler/kostka/internal/scoring"
)

// seating is the order opponents join a game
var seating = []*Profile{
	{
		ID:     PersonalityCautious,
		Name:   "Opatrný Olda",
		StopAt: 300,
	},
	{
		ID:            PersonalityBalanced,
		Name:          "Vyvážená Věra",
		StopAt:        500,
		LowDice:       2,
		LowDiceStopAt: 350,
	},
	{
		ID:     PersonalityReckless,
		Name:   "Riskující Radek",
		StopAt: 1000,
	},
}

// GetProfile returns the profile for a personality
func GetProfile(id Personality) (*Profile, error) {
	for _, profile := range seating {
		if profile.ID == id {
			return profile, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownOpponent, id)
}

// service implements the Service interface
type service struct{}

// New creates a new opponent service
func New() *service {
	return &service{}
}

// ListOpponents returns copies of the seated profiles
func (s *service) ListOpponents(ctx context.Context, input *ListOpponentsInput) (*ListOpponentsOutput, error) {
	opponents := make([]*Profile, 0, len(seating))
	for _, profile := range seating {
		p := *profile
		opponents = append(opponents, &p)
	}

	return &ListOpponentsOutput{
		Opponents: opponents,
	}, nil
}

// DecideAction picks the next action for the current AI participant
func (s *service) DecideAction(ctx context.Context, input *DecideActionInput) (*DecideActionOutput, error) {
	if input == nil || input.Game == nil {
		return nil, ErrNilGame
	}

	game := input.Game
	if game.Turn == nil || !game.Status.IsActive() {
		return nil, ErrNoTurnInPlay
	}

	participant := game.CurrentParticipant()
	if participant == nil || participant.IsHuman {
		return nil, ErrNotAnOpponent
	}

	profile, err := GetProfile(Personality(participant.OpponentID))
	if err != nil {
		return nil, err
	}

	return &DecideActionOutput{
		Action:  decide(profile, game, participant),
		Profile: profile,
	}, nil
}

func decide(profile *Profile, game *models.Game, participant *models.Participant) engine.Action {
	turn := game.Turn

	switch turn.Phase {
	case models.TurnPhaseDiceRolled:
		// banking everything that scores is always a legal selection
		return engine.Bank(scoring.ScoringIndices(turn.RolledDice)...)
	case models.TurnPhaseAwaitingRollOrStop:
		if shouldStop(profile, game, participant) {
			return engine.Stop()
		}
	}

	return engine.Roll()
}

func shouldStop(profile *Profile, game *models.Game, participant *models.Participant) bool {
	turn := game.Turn

	if participant.TotalScore+turn.TurnScore >= game.TargetScore {
		return true
	}

	if turn.TurnScore >= profile.StopAt {
		return true
	}

	return profile.LowDice > 0 &&
		turn.RemainingDice() <= profile.LowDice &&
		turn.TurnScore >= profile.LowDiceStopAt
}
