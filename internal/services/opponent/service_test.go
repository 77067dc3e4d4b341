package opponent

import (
	"context"
	"testing"

	"github.com/KirkDiggler/kostka/internal/engine"
	"github.com/KirkDiggler/kostka/internal/models"
	"github.com/stretchr/testify/suite"
)

type OpponentServiceTestSuite struct {
	suite.Suite
	service *service
	ctx     context.Context
}

func (s *OpponentServiceTestSuite) SetupTest() {
	s.service = New()
	s.ctx = context.Background()
}

func TestOpponentServiceTestSuite(t *testing.T) {
	suite.Run(t, new(OpponentServiceTestSuite))
}

// gameFor seats a human and one AI with the given personality; the AI is on turn
func (s *OpponentServiceTestSuite) gameFor(personality Personality, turn *models.Turn, total int) *models.Game {
	turn.PlayerIndex = 1
	return &models.Game{
		ID:     "game-1",
		Status: models.GameStatusActive,
		Participants: []*models.Participant{
			{Name: "Human", PlayerID: "user-1", IsHuman: true},
			{Name: "AI", OpponentID: string(personality), TotalScore: total},
		},
		CurrentPlayerIndex: 1,
		TargetScore:        10000,
		Turn:               turn,
		WinnerIndex:        models.NoWinner,
	}
}

func (s *OpponentServiceTestSuite) decide(game *models.Game) engine.Action {
	output, err := s.service.DecideAction(s.ctx, &DecideActionInput{Game: game})
	s.Require().NoError(err)
	return output.Action
}

func (s *OpponentServiceTestSuite) TestListOpponents() {
	output, err := s.service.ListOpponents(s.ctx, &ListOpponentsInput{})
	s.Require().NoError(err)
	s.Require().Len(output.Opponents, 3)
	s.Equal(PersonalityCautious, output.Opponents[0].ID)
	s.Equal(PersonalityBalanced, output.Opponents[1].ID)
	s.Equal(PersonalityReckless, output.Opponents[2].ID)

	// callers get copies
	output.Opponents[0].StopAt = 1
	profile, err := GetProfile(PersonalityCautious)
	s.Require().NoError(err)
	s.Equal(300, profile.StopAt)
}

func (s *OpponentServiceTestSuite) TestDecideAction_RollsAtTurnStart() {
	game := s.gameFor(PersonalityCautious, &models.Turn{Phase: models.TurnPhaseAwaitingRoll}, 0)
	s.Equal(engine.Roll(), s.decide(game))
}

func (s *OpponentServiceTestSuite) TestDecideAction_RollsAfterHotDice() {
	game := s.gameFor(PersonalityCautious, &models.Turn{
		Phase:     models.TurnPhaseAwaitingRoll,
		TurnScore: 1500,
		IsHotDice: true,
	}, 0)
	s.Equal(engine.Roll(), s.decide(game))
}

func (s *OpponentServiceTestSuite) TestDecideAction_BanksEveryScoringDie() {
	game := s.gameFor(PersonalityReckless, &models.Turn{
		Phase:      models.TurnPhaseDiceRolled,
		RolledDice: []int{2, 1, 3, 5, 3, 3},
	}, 0)

	action := s.decide(game)
	s.Equal(engine.ActionBank, action.Type)
	s.ElementsMatch([]int{1, 2, 3, 4, 5}, action.Indices)
}

func (s *OpponentServiceTestSuite) TestDecideAction_CautiousStopsAt300() {
	game := s.gameFor(PersonalityCautious, &models.Turn{
		Phase:           models.TurnPhaseAwaitingRollOrStop,
		BankedDiceCount: 2,
		TurnScore:       300,
	}, 0)
	s.Equal(engine.Stop(), s.decide(game))

	game.Turn.TurnScore = 250
	s.Equal(engine.Roll(), s.decide(game))
}

func (s *OpponentServiceTestSuite) TestDecideAction_BalancedWatchesRemainingDice() {
	game := s.gameFor(PersonalityBalanced, &models.Turn{
		Phase:           models.TurnPhaseAwaitingRollOrStop,
		BankedDiceCount: 3,
		TurnScore:       400,
	}, 0)
	s.Equal(engine.Roll(), s.decide(game))

	game.Turn.BankedDiceCount = 4
	s.Equal(engine.Stop(), s.decide(game))

	game.Turn.TurnScore = 300
	s.Equal(engine.Roll(), s.decide(game))

	game.Turn.BankedDiceCount = 1
	game.Turn.TurnScore = 500
	s.Equal(engine.Stop(), s.decide(game))
}

func (s *OpponentServiceTestSuite) TestDecideAction_RecklessStopsAt1000() {
	game := s.gameFor(PersonalityReckless, &models.Turn{
		Phase:           models.TurnPhaseAwaitingRollOrStop,
		BankedDiceCount: 5,
		TurnScore:       950,
	}, 0)
	s.Equal(engine.Roll(), s.decide(game))

	game.Turn.TurnScore = 1000
	s.Equal(engine.Stop(), s.decide(game))
}

func (s *OpponentServiceTestSuite) TestDecideAction_StopsWhenTurnWins() {
	game := s.gameFor(PersonalityReckless, &models.Turn{
		Phase:           models.TurnPhaseAwaitingRollOrStop,
		BankedDiceCount: 1,
		TurnScore:       100,
	}, 9900)
	s.Equal(engine.Stop(), s.decide(game))
}

func (s *OpponentServiceTestSuite) TestDecideAction_Rejections() {
	_, err := s.service.DecideAction(s.ctx, nil)
	s.ErrorIs(err, ErrNilGame)

	game := s.gameFor(PersonalityCautious, &models.Turn{Phase: models.TurnPhaseAwaitingRoll}, 0)
	game.Turn = nil
	_, err = s.service.DecideAction(s.ctx, &DecideActionInput{Game: game})
	s.ErrorIs(err, ErrNoTurnInPlay)

	game = s.gameFor(PersonalityCautious, &models.Turn{Phase: models.TurnPhaseAwaitingRoll}, 0)
	game.CurrentPlayerIndex = 0
	_, err = s.service.DecideAction(s.ctx, &DecideActionInput{Game: game})
	s.ErrorIs(err, ErrNotAnOpponent)

	game = s.gameFor("nobody", &models.Turn{Phase: models.TurnPhaseAwaitingRoll}, 0)
	_, err = s.service.DecideAction(s.ctx, &DecideActionInput{Game: game})
	s.ErrorIs(err, ErrUnknownOpponent)
}
