package game

import (
	"context"
	"errors"
	"testing"
	"time"

	clockMocks "github.com/KirkDiggler/kostka/internal/common/clock/mocks"
	uuidMocks "github.com/KirkDiggler/kostka/internal/common/uuid/mocks"
	diceMocks "github.com/KirkDiggler/kostka/internal/dice/mocks"
	"github.com/KirkDiggler/kostka/internal/engine"
	"github.com/KirkDiggler/kostka/internal/models"
	gameRepo "github.com/KirkDiggler/kostka/internal/repositories/game"
	gameMocks "github.com/KirkDiggler/kostka/internal/repositories/game/mocks"
	hallOfFameRepo "github.com/KirkDiggler/kostka/internal/repositories/hall_of_fame"
	hallOfFameMocks "github.com/KirkDiggler/kostka/internal/repositories/hall_of_fame/mocks"
	playerRepo "github.com/KirkDiggler/kostka/internal/repositories/player"
	playerMocks "github.com/KirkDiggler/kostka/internal/repositories/player/mocks"
	"github.com/KirkDiggler/kostka/internal/services/messaging"
	messagingMocks "github.com/KirkDiggler/kostka/internal/services/messaging/mocks"
	"github.com/KirkDiggler/kostka/internal/services/opponent"
	opponentMocks "github.com/KirkDiggler/kostka/internal/services/opponent/mocks"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type GameServiceTestSuite struct {
	suite.Suite
	mockCtrl           *gomock.Controller
	mockGameRepo       *gameMocks.MockRepository
	mockPlayerRepo     *playerMocks.MockRepository
	mockHallOfFameRepo *hallOfFameMocks.MockRepository
	mockDiceRoller     *diceMocks.MockRoller
	mockOpponent       *opponentMocks.MockService
	mockMessaging      *messagingMocks.MockService
	mockClock          *clockMocks.MockClock
	mockUUID           *uuidMocks.MockUUID
	gameService        Service
	ctx                context.Context

	// Test data
	testTime       time.Time
	testGameID     string
	testChannelID  string
	testPlayerID   string
	testPlayerName string
}

func (s *GameServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockGameRepo = gameMocks.NewMockRepository(s.mockCtrl)
	s.mockPlayerRepo = playerMocks.NewMockRepository(s.mockCtrl)
	s.mockHallOfFameRepo = hallOfFameMocks.NewMockRepository(s.mockCtrl)
	s.mockDiceRoller = diceMocks.NewMockRoller(s.mockCtrl)
	s.mockOpponent = opponentMocks.NewMockService(s.mockCtrl)
	s.mockMessaging = messagingMocks.NewMockService(s.mockCtrl)
	s.mockClock = clockMocks.NewMockClock(s.mockCtrl)
	s.mockUUID = uuidMocks.NewMockUUID(s.mockCtrl)

	s.ctx = context.Background()

	s.testTime = time.Date(2025, 4, 19, 12, 0, 0, 0, time.UTC)
	s.testGameID = "test-game-id"
	s.testChannelID = "test-channel-id"
	s.testPlayerID = "test-player-id"
	s.testPlayerName = "Test Player"

	svc, err := New(s.config())
	s.Require().NoError(err)
	s.gameService = svc
}

func (s *GameServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestGameServiceSuite(t *testing.T) {
	suite.Run(t, new(GameServiceTestSuite))
}

func (s *GameServiceTestSuite) config() *Config {
	return &Config{
		TargetScore:      10000,
		GameRepo:         s.mockGameRepo,
		PlayerRepo:       s.mockPlayerRepo,
		HallOfFameRepo:   s.mockHallOfFameRepo,
		DiceRoller:       s.mockDiceRoller,
		OpponentService:  s.mockOpponent,
		MessagingService: s.mockMessaging,
		Clock:            s.mockClock,
		UUIDGenerator:    s.mockUUID,
	}
}

// newGame seats the test player against one cautious opponent
func (s *GameServiceTestSuite) newGame() *models.Game {
	game, err := engine.NewGame(&engine.NewGameInput{
		ID: s.testGameID,
		Participants: []*models.Participant{
			{Name: s.testPlayerName, PlayerID: s.testPlayerID, IsHuman: true},
			{Name: "Opatrný Olda", OpponentID: string(opponent.PersonalityCautious)},
		},
		TargetScore: 10000,
	})
	s.Require().NoError(err)

	game.OwnerID = s.testPlayerID
	game.ChannelID = s.testChannelID
	game.CreatedAt = s.testTime.Add(-30 * time.Minute)
	game.UpdatedAt = game.CreatedAt
	return game
}

func (s *GameServiceTestSuite) expectGetGame(game *models.Game) {
	s.mockGameRepo.EXPECT().
		GetGame(gomock.Any(), &gameRepo.GetGameInput{GameID: game.ID}).
		Return(game, nil)
}

// expectSaveGame captures the stored game
func (s *GameServiceTestSuite) expectSaveGame() *models.Game {
	saved := &models.Game{}
	s.mockGameRepo.EXPECT().
		SaveGame(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input *gameRepo.SaveGameInput) error {
			*saved = *input.Game
			return nil
		})
	return saved
}

func (s *GameServiceTestSuite) TestNew_Validation() {
	_, err := New(nil)
	s.ErrorIs(err, ErrNilConfig)

	tests := []struct {
		name   string
		mutate func(cfg *Config)
		want   error
	}{
		{"game repo", func(cfg *Config) { cfg.GameRepo = nil }, ErrNilGameRepo},
		{"player repo", func(cfg *Config) { cfg.PlayerRepo = nil }, ErrNilPlayerRepo},
		{"hall of fame repo", func(cfg *Config) { cfg.HallOfFameRepo = nil }, ErrNilHallOfFameRepo},
		{"dice roller", func(cfg *Config) { cfg.DiceRoller = nil }, ErrNilDiceRoller},
		{"opponent service", func(cfg *Config) { cfg.OpponentService = nil }, ErrNilOpponentService},
		{"messaging service", func(cfg *Config) { cfg.MessagingService = nil }, ErrNilMessagingService},
		{"clock", func(cfg *Config) { cfg.Clock = nil }, ErrNilClock},
		{"uuid", func(cfg *Config) { cfg.UUIDGenerator = nil }, ErrNilUUIDGenerator},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			cfg := s.config()
			tt.mutate(cfg)
			_, err := New(cfg)
			s.ErrorIs(err, tt.want)
		})
	}
}

func (s *GameServiceTestSuite) TestCreateGame_NewPlayer() {
	s.mockPlayerRepo.EXPECT().
		GetPlayer(gomock.Any(), &playerRepo.GetPlayerInput{PlayerID: s.testPlayerID}).
		Return(nil, playerRepo.ErrPlayerNotFound)
	s.mockOpponent.EXPECT().
		ListOpponents(gomock.Any(), gomock.Any()).
		Return(&opponent.ListOpponentsOutput{Opponents: []*opponent.Profile{
			{ID: opponent.PersonalityCautious, Name: "Opatrný Olda"},
			{ID: opponent.PersonalityBalanced, Name: "Vyvážená Věra"},
			{ID: opponent.PersonalityReckless, Name: "Riskující Radek"},
		}}, nil)
	s.mockUUID.EXPECT().NewUUID().Return(s.testGameID)
	s.mockClock.EXPECT().Now().Return(s.testTime)
	saved := s.expectSaveGame()
	s.mockPlayerRepo.EXPECT().
		SavePlayer(gomock.Any(), &playerRepo.SavePlayerInput{Player: &models.Player{
			ID:            s.testPlayerID,
			Name:          s.testPlayerName,
			CurrentGameID: s.testGameID,
			LastSeen:      s.testTime,
		}}).
		Return(nil)

	output, err := s.gameService.CreateGame(s.ctx, &CreateGameInput{
		OwnerID:   s.testPlayerID,
		OwnerName: s.testPlayerName,
		ChannelID: s.testChannelID,
	})
	s.Require().NoError(err)

	game := output.Game
	s.Equal(s.testGameID, game.ID)
	s.Equal(s.testPlayerID, game.OwnerID)
	s.Equal(s.testChannelID, game.ChannelID)
	s.Equal(10000, game.TargetScore)
	s.Equal(s.testTime, game.CreatedAt)
	s.Require().Len(game.Participants, 4)
	s.True(game.Participants[0].IsHuman)
	s.Equal(s.testPlayerName, game.Participants[0].Name)
	s.Equal(string(opponent.PersonalityReckless), game.Participants[3].OpponentID)
	s.Equal(0, game.CurrentPlayerIndex)
	s.Equal(models.TurnPhaseAwaitingRoll, game.Turn.Phase)
	s.Equal(s.testGameID, saved.ID)
}

func (s *GameServiceTestSuite) TestCreateGame_CustomTarget() {
	s.mockPlayerRepo.EXPECT().GetPlayer(gomock.Any(), gomock.Any()).Return(&models.Player{ID: s.testPlayerID}, nil)
	s.mockOpponent.EXPECT().ListOpponents(gomock.Any(), gomock.Any()).Return(&opponent.ListOpponentsOutput{
		Opponents: []*opponent.Profile{{ID: opponent.PersonalityCautious, Name: "Opatrný Olda"}},
	}, nil)
	s.mockUUID.EXPECT().NewUUID().Return(s.testGameID)
	s.mockClock.EXPECT().Now().Return(s.testTime)
	s.expectSaveGame()
	s.mockPlayerRepo.EXPECT().SavePlayer(gomock.Any(), gomock.Any()).Return(nil)

	output, err := s.gameService.CreateGame(s.ctx, &CreateGameInput{
		OwnerID:     s.testPlayerID,
		OwnerName:   s.testPlayerName,
		TargetScore: 2000,
	})
	s.Require().NoError(err)
	s.Equal(2000, output.Game.TargetScore)
}

func (s *GameServiceTestSuite) TestCreateGame_ActiveGameExists() {
	existing := s.newGame()
	s.mockPlayerRepo.EXPECT().
		GetPlayer(gomock.Any(), gomock.Any()).
		Return(&models.Player{ID: s.testPlayerID, CurrentGameID: existing.ID}, nil)
	s.expectGetGame(existing)

	output, err := s.gameService.CreateGame(s.ctx, &CreateGameInput{
		OwnerID:   s.testPlayerID,
		OwnerName: s.testPlayerName,
	})
	s.ErrorIs(err, ErrGameAlreadyExists)
	s.Nil(output)
}

func (s *GameServiceTestSuite) TestCreateGame_CompletedGameIsReplaced() {
	existing := s.newGame()
	existing.Status = models.GameStatusCompleted
	existing.Turn = nil

	s.mockPlayerRepo.EXPECT().
		GetPlayer(gomock.Any(), gomock.Any()).
		Return(&models.Player{ID: s.testPlayerID, CurrentGameID: existing.ID}, nil)
	s.expectGetGame(existing)
	s.mockOpponent.EXPECT().ListOpponents(gomock.Any(), gomock.Any()).Return(&opponent.ListOpponentsOutput{
		Opponents: []*opponent.Profile{{ID: opponent.PersonalityCautious, Name: "Opatrný Olda"}},
	}, nil)
	s.mockUUID.EXPECT().NewUUID().Return("new-game-id")
	s.mockClock.EXPECT().Now().Return(s.testTime)
	s.expectSaveGame()
	s.mockPlayerRepo.EXPECT().SavePlayer(gomock.Any(), gomock.Any()).Return(nil)

	output, err := s.gameService.CreateGame(s.ctx, &CreateGameInput{
		OwnerID:   s.testPlayerID,
		OwnerName: s.testPlayerName,
	})
	s.Require().NoError(err)
	s.Equal("new-game-id", output.Game.ID)
}

func (s *GameServiceTestSuite) TestCreateGame_InvalidInput() {
	_, err := s.gameService.CreateGame(s.ctx, &CreateGameInput{OwnerID: s.testPlayerID})
	s.ErrorIs(err, ErrInvalidInput)
}

func (s *GameServiceTestSuite) TestGetGame_NotFound() {
	s.mockGameRepo.EXPECT().GetGame(gomock.Any(), gomock.Any()).Return(nil, gameRepo.ErrGameNotFound)

	_, err := s.gameService.GetGame(s.ctx, &GetGameInput{GameID: "missing"})
	s.ErrorIs(err, ErrGameNotFound)
}

func (s *GameServiceTestSuite) TestGetGameForPlayer() {
	game := s.newGame()
	s.mockPlayerRepo.EXPECT().
		GetPlayer(gomock.Any(), gomock.Any()).
		Return(&models.Player{ID: s.testPlayerID, CurrentGameID: game.ID}, nil)
	s.expectGetGame(game)

	output, err := s.gameService.GetGameForPlayer(s.ctx, &GetGameForPlayerInput{PlayerID: s.testPlayerID})
	s.Require().NoError(err)
	s.Equal(game.ID, output.Game.ID)
}

func (s *GameServiceTestSuite) TestGetGameForPlayer_NoGame() {
	s.mockPlayerRepo.EXPECT().GetPlayer(gomock.Any(), gomock.Any()).Return(nil, playerRepo.ErrPlayerNotFound)
	_, err := s.gameService.GetGameForPlayer(s.ctx, &GetGameForPlayerInput{PlayerID: s.testPlayerID})
	s.ErrorIs(err, ErrGameNotFound)

	s.mockPlayerRepo.EXPECT().GetPlayer(gomock.Any(), gomock.Any()).Return(&models.Player{ID: s.testPlayerID}, nil)
	_, err = s.gameService.GetGameForPlayer(s.ctx, &GetGameForPlayerInput{PlayerID: s.testPlayerID})
	s.ErrorIs(err, ErrGameNotFound)
}

func (s *GameServiceTestSuite) TestSubmitAction_Roll() {
	game := s.newGame()
	s.expectGetGame(game)
	s.mockDiceRoller.EXPECT().RollDice(6).Return([]int{1, 5, 2, 3, 4, 6}, nil)
	s.mockClock.EXPECT().Now().Return(s.testTime)
	saved := s.expectSaveGame()

	output, err := s.gameService.SubmitAction(s.ctx, &SubmitActionInput{
		GameID:   game.ID,
		PlayerID: s.testPlayerID,
		Action:   engine.Roll(),
	})
	s.Require().NoError(err)
	s.Equal([]int{1, 5, 2, 3, 4, 6}, output.Result.Roll)
	s.Equal(models.TurnPhaseDiceRolled, output.Game.Turn.Phase)
	s.Equal(models.TurnPhaseDiceRolled, saved.Turn.Phase)
	s.Equal(s.testTime, saved.UpdatedAt)
	s.Nil(output.Reaction)

	// the loaded game was not modified
	s.Equal(models.TurnPhaseAwaitingRoll, game.Turn.Phase)
}

func (s *GameServiceTestSuite) TestSubmitAction_RejectedActionIsNotSaved() {
	game := s.newGame()
	s.expectGetGame(game)

	_, err := s.gameService.SubmitAction(s.ctx, &SubmitActionInput{
		GameID:   game.ID,
		PlayerID: s.testPlayerID,
		Action:   engine.Stop(),
	})
	s.ErrorIs(err, engine.ErrIllegalTransition)
}

func (s *GameServiceTestSuite) TestSubmitAction_NotYourTurn() {
	game := s.newGame()
	s.expectGetGame(game)

	_, err := s.gameService.SubmitAction(s.ctx, &SubmitActionInput{
		GameID:   game.ID,
		PlayerID: "someone-else",
		Action:   engine.Roll(),
	})
	s.ErrorIs(err, ErrNotYourTurn)

	game = s.newGame()
	game.CurrentPlayerIndex = 1
	game.Turn.PlayerIndex = 1
	s.expectGetGame(game)

	_, err = s.gameService.SubmitAction(s.ctx, &SubmitActionInput{
		GameID:   game.ID,
		PlayerID: s.testPlayerID,
		Action:   engine.Roll(),
	})
	s.ErrorIs(err, ErrNotYourTurn)
}

func (s *GameServiceTestSuite) TestSubmitAction_GameOver() {
	game := s.newGame()
	game.Status = models.GameStatusCompleted
	game.Turn = nil
	s.expectGetGame(game)

	_, err := s.gameService.SubmitAction(s.ctx, &SubmitActionInput{
		GameID:   game.ID,
		PlayerID: s.testPlayerID,
		Action:   engine.Roll(),
	})
	s.ErrorIs(err, ErrGameOver)
}

func (s *GameServiceTestSuite) TestSubmitAction_BustGetsReaction() {
	game := s.newGame()
	game.Turn.Phase = models.TurnPhaseAwaitingRollOrStop
	game.Turn.BankedDiceCount = 3
	game.Turn.TurnScore = 400
	game.Turn.RollCount = 1

	s.expectGetGame(game)
	s.mockDiceRoller.EXPECT().RollDice(3).Return([]int{2, 3, 4}, nil)
	s.mockClock.EXPECT().Now().Return(s.testTime)
	s.expectSaveGame()
	s.mockMessaging.EXPECT().
		GetOpponentLine(gomock.Any(), &messaging.GetOpponentLineInput{
			OpponentID: opponent.PersonalityCautious,
			Situation:  messaging.SituationOpponentBust,
			PlayerName: s.testPlayerName,
		}).
		Return(&messaging.GetOpponentLineOutput{Line: "That's what greed gets you, Test Player."}, nil)

	output, err := s.gameService.SubmitAction(s.ctx, &SubmitActionInput{
		GameID:   game.ID,
		PlayerID: s.testPlayerID,
		Action:   engine.Roll(),
	})
	s.Require().NoError(err)
	s.True(output.Result.IsBust)
	s.Equal(1, output.Game.CurrentPlayerIndex)
	s.Equal(0, output.Game.Participants[0].TotalScore)
	s.Require().NotNil(output.Reaction)
	s.Equal("Opatrný Olda", output.Reaction.Name)
}

func (s *GameServiceTestSuite) TestSubmitAction_ConcurrentUpdate() {
	game := s.newGame()
	s.expectGetGame(game)
	s.mockDiceRoller.EXPECT().RollDice(6).Return([]int{1, 1, 2, 3, 4, 6}, nil)
	s.mockClock.EXPECT().Now().Return(s.testTime)
	s.mockGameRepo.EXPECT().SaveGame(gomock.Any(), gomock.Any()).Return(gameRepo.ErrVersionConflict)

	output, err := s.gameService.SubmitAction(s.ctx, &SubmitActionInput{
		GameID:   game.ID,
		PlayerID: s.testPlayerID,
		Action:   engine.Roll(),
	})
	s.ErrorIs(err, ErrConcurrentUpdate)
	s.Nil(output)
}

func (s *GameServiceTestSuite) TestSubmitAction_RefusedWinningSaveRecordsNothing() {
	game := s.newGame()
	game.Participants[0].TotalScore = 9800
	game.Turn.Phase = models.TurnPhaseAwaitingRollOrStop
	game.Turn.BankedDiceCount = 2
	game.Turn.TurnScore = 300

	s.expectGetGame(game)
	s.mockClock.EXPECT().Now().Return(s.testTime)
	s.mockGameRepo.EXPECT().SaveGame(gomock.Any(), gomock.Any()).Return(gameRepo.ErrVersionConflict)
	s.mockHallOfFameRepo.EXPECT().AddEntry(gomock.Any(), gomock.Any()).Times(0)
	s.mockPlayerRepo.EXPECT().RecordGameResult(gomock.Any(), gomock.Any()).Times(0)

	output, err := s.gameService.SubmitAction(s.ctx, &SubmitActionInput{
		GameID:   game.ID,
		PlayerID: s.testPlayerID,
		Action:   engine.Stop(),
	})
	s.ErrorIs(err, ErrConcurrentUpdate)
	s.Nil(output)
}

func (s *GameServiceTestSuite) TestPlayOpponentTurn_RefusedWinningSaveRecordsNothing() {
	game := s.newGame()
	game.CurrentPlayerIndex = 1
	game.Turn.PlayerIndex = 1
	game.Turn.Phase = models.TurnPhaseAwaitingRollOrStop
	game.Turn.BankedDiceCount = 3
	game.Turn.TurnScore = 500
	game.Participants[1].TotalScore = 9600
	s.expectGetGame(game)

	s.mockOpponent.EXPECT().DecideAction(gomock.Any(), gomock.Any()).
		Return(&opponent.DecideActionOutput{Action: engine.Stop()}, nil)
	s.mockMessaging.EXPECT().GetOpponentLine(gomock.Any(), gomock.Any()).
		Return(&messaging.GetOpponentLineOutput{Line: "Slow and steady."}, nil)
	s.mockClock.EXPECT().Now().Return(s.testTime)
	s.mockGameRepo.EXPECT().SaveGame(gomock.Any(), gomock.Any()).Return(gameRepo.ErrVersionConflict)
	s.mockPlayerRepo.EXPECT().RecordGameResult(gomock.Any(), gomock.Any()).Times(0)

	output, err := s.gameService.PlayOpponentTurn(s.ctx, &PlayOpponentTurnInput{GameID: game.ID})
	s.ErrorIs(err, ErrConcurrentUpdate)
	s.Nil(output)
}

func (s *GameServiceTestSuite) TestSubmitAction_WinRecordsHallOfFame() {
	game := s.newGame()
	game.Participants[0].TotalScore = 9800
	game.Participants[0].TurnsTaken = 11
	game.Turn.Phase = models.TurnPhaseAwaitingRollOrStop
	game.Turn.BankedDiceCount = 2
	game.Turn.TurnScore = 300

	s.expectGetGame(game)
	s.mockClock.EXPECT().Now().Return(s.testTime)
	s.mockUUID.EXPECT().NewUUID().Return("entry-id")
	s.mockHallOfFameRepo.EXPECT().
		AddEntry(gomock.Any(), &hallOfFameRepo.AddEntryInput{Entry: &models.HallOfFameEntry{
			ID:          "entry-id",
			GameID:      s.testGameID,
			PlayerName:  s.testPlayerName,
			Score:       10100,
			TargetScore: 10000,
			TurnCount:   12,
			Duration:    30 * time.Minute,
			RecordedAt:  s.testTime,
		}}).
		Return(nil)
	s.mockPlayerRepo.EXPECT().
		RecordGameResult(gomock.Any(), &playerRepo.RecordGameResultInput{PlayerID: s.testPlayerID, Won: true}).
		Return(nil)
	saved := s.expectSaveGame()

	output, err := s.gameService.SubmitAction(s.ctx, &SubmitActionInput{
		GameID:   game.ID,
		PlayerID: s.testPlayerID,
		Action:   engine.Stop(),
	})
	s.Require().NoError(err)
	s.True(output.Result.GameOver)
	s.True(saved.Status.IsCompleted())
	s.Require().NotNil(saved.CompletedAt)
	s.Equal(s.testTime, *saved.CompletedAt)
	s.Equal(0, saved.WinnerIndex)
}

func (s *GameServiceTestSuite) TestSubmitAction_HallOfFameFailureDoesNotLoseTheWin() {
	game := s.newGame()
	game.Participants[0].TotalScore = 9800
	game.Turn.Phase = models.TurnPhaseAwaitingRollOrStop
	game.Turn.BankedDiceCount = 2
	game.Turn.TurnScore = 300

	s.expectGetGame(game)
	s.mockClock.EXPECT().Now().Return(s.testTime)
	s.mockUUID.EXPECT().NewUUID().Return("entry-id")
	s.mockHallOfFameRepo.EXPECT().AddEntry(gomock.Any(), gomock.Any()).Return(errors.New("redis down"))
	s.mockPlayerRepo.EXPECT().RecordGameResult(gomock.Any(), gomock.Any()).Return(errors.New("redis down"))
	saved := s.expectSaveGame()

	_, err := s.gameService.SubmitAction(s.ctx, &SubmitActionInput{
		GameID:   game.ID,
		PlayerID: s.testPlayerID,
		Action:   engine.Stop(),
	})
	s.Require().NoError(err)
	s.True(saved.Status.IsCompleted())
}

func (s *GameServiceTestSuite) TestPlayOpponentTurn() {
	game := s.newGame()
	game.CurrentPlayerIndex = 1
	game.Turn.PlayerIndex = 1
	s.expectGetGame(game)

	gomock.InOrder(
		s.mockOpponent.EXPECT().DecideAction(gomock.Any(), gomock.Any()).
			Return(&opponent.DecideActionOutput{Action: engine.Roll()}, nil),
		s.mockOpponent.EXPECT().DecideAction(gomock.Any(), gomock.Any()).
			Return(&opponent.DecideActionOutput{Action: engine.Bank(0, 1)}, nil),
		s.mockOpponent.EXPECT().DecideAction(gomock.Any(), gomock.Any()).
			Return(&opponent.DecideActionOutput{Action: engine.Stop()}, nil),
	)
	s.mockDiceRoller.EXPECT().RollDice(6).Return([]int{1, 5, 2, 3, 4, 6}, nil)

	for _, situation := range []messaging.Situation{
		messaging.SituationTurnStart,
		messaging.SituationBank,
		messaging.SituationStop,
	} {
		s.mockMessaging.EXPECT().
			GetOpponentLine(gomock.Any(), &messaging.GetOpponentLineInput{
				OpponentID: opponent.PersonalityCautious,
				Situation:  situation,
			}).
			Return(&messaging.GetOpponentLineOutput{Line: string(situation)}, nil)
	}

	s.mockClock.EXPECT().Now().Return(s.testTime)
	saved := s.expectSaveGame()

	output, err := s.gameService.PlayOpponentTurn(s.ctx, &PlayOpponentTurnInput{GameID: game.ID})
	s.Require().NoError(err)
	s.Require().Len(output.Steps, 3)
	s.Equal(1, output.Steps[0].ParticipantIndex)
	s.Equal("turn_start", output.Steps[0].Line.Line)
	s.Equal(150, output.Steps[1].Result.BankedScore)
	s.True(output.Steps[2].Result.TurnEnded)

	s.Equal(0, output.Game.CurrentPlayerIndex)
	s.Equal(150, output.Game.Participants[1].TotalScore)
	s.Equal(0, saved.CurrentPlayerIndex)
}

func (s *GameServiceTestSuite) TestPlayOpponentTurn_OpponentWinCountsAsLoss() {
	game := s.newGame()
	game.CurrentPlayerIndex = 1
	game.Turn.PlayerIndex = 1
	game.Turn.Phase = models.TurnPhaseAwaitingRollOrStop
	game.Turn.BankedDiceCount = 3
	game.Turn.TurnScore = 500
	game.Participants[1].TotalScore = 9600
	s.expectGetGame(game)

	s.mockOpponent.EXPECT().DecideAction(gomock.Any(), gomock.Any()).
		Return(&opponent.DecideActionOutput{Action: engine.Stop()}, nil)
	s.mockMessaging.EXPECT().
		GetOpponentLine(gomock.Any(), &messaging.GetOpponentLineInput{
			OpponentID: opponent.PersonalityCautious,
			Situation:  messaging.SituationWin,
		}).
		Return(&messaging.GetOpponentLineOutput{Line: "Slow and steady."}, nil)
	s.mockClock.EXPECT().Now().Return(s.testTime)
	s.mockPlayerRepo.EXPECT().
		RecordGameResult(gomock.Any(), &playerRepo.RecordGameResultInput{PlayerID: s.testPlayerID, Won: false}).
		Return(nil)
	saved := s.expectSaveGame()

	output, err := s.gameService.PlayOpponentTurn(s.ctx, &PlayOpponentTurnInput{GameID: game.ID})
	s.Require().NoError(err)
	s.Require().Len(output.Steps, 1)
	s.True(output.Steps[0].Result.GameOver)
	s.Equal(1, saved.WinnerIndex)
	s.Equal(10100, saved.Participants[1].TotalScore)
}

func (s *GameServiceTestSuite) TestPlayOpponentTurn_MissingLineKeepsPlaying() {
	game := s.newGame()
	game.CurrentPlayerIndex = 1
	game.Turn.PlayerIndex = 1
	s.expectGetGame(game)

	s.mockOpponent.EXPECT().DecideAction(gomock.Any(), gomock.Any()).
		Return(&opponent.DecideActionOutput{Action: engine.Roll()}, nil)
	s.mockDiceRoller.EXPECT().RollDice(6).Return([]int{2, 2, 3, 3, 4, 6}, nil)
	s.mockMessaging.EXPECT().GetOpponentLine(gomock.Any(), gomock.Any()).
		Return(nil, messaging.ErrUnknownOpponent)
	s.mockClock.EXPECT().Now().Return(s.testTime)
	s.expectSaveGame()

	output, err := s.gameService.PlayOpponentTurn(s.ctx, &PlayOpponentTurnInput{GameID: game.ID})
	s.Require().NoError(err)
	s.Require().Len(output.Steps, 1)
	s.True(output.Steps[0].Result.IsBust)
	s.Nil(output.Steps[0].Line)
	s.Equal(0, output.Game.CurrentPlayerIndex)
}

func (s *GameServiceTestSuite) TestPlayOpponentTurn_HumanOnTurn() {
	game := s.newGame()
	s.expectGetGame(game)

	_, err := s.gameService.PlayOpponentTurn(s.ctx, &PlayOpponentTurnInput{GameID: game.ID})
	s.ErrorIs(err, ErrNoOpponentTurn)
}

func (s *GameServiceTestSuite) TestPlayOpponentTurn_DecisionFailure() {
	game := s.newGame()
	game.CurrentPlayerIndex = 1
	game.Turn.PlayerIndex = 1
	s.expectGetGame(game)

	s.mockOpponent.EXPECT().DecideAction(gomock.Any(), gomock.Any()).
		Return(nil, opponent.ErrUnknownOpponent)

	_, err := s.gameService.PlayOpponentTurn(s.ctx, &PlayOpponentTurnInput{GameID: game.ID})
	s.ErrorIs(err, opponent.ErrUnknownOpponent)
}

func (s *GameServiceTestSuite) TestResumeOpponentTurns() {
	humanTurn := s.newGame()
	humanTurn.ID = "human-turn"

	waiting := s.newGame()
	waiting.ID = "waiting"
	waiting.CurrentPlayerIndex = 1
	waiting.Turn.PlayerIndex = 1

	broken := s.newGame()
	broken.ID = "broken"
	broken.CurrentPlayerIndex = 1
	broken.Turn.PlayerIndex = 1

	s.mockGameRepo.EXPECT().
		GetActiveGames(gomock.Any(), gomock.Any()).
		Return(&gameRepo.GetActiveGamesOutput{Games: []*models.Game{humanTurn, waiting, broken}}, nil)

	// waiting: the opponent rolls a bust and hands the turn back
	s.expectGetGame(waiting)
	s.mockOpponent.EXPECT().DecideAction(gomock.Any(), gomock.Any()).
		Return(&opponent.DecideActionOutput{Action: engine.Roll()}, nil)
	s.mockDiceRoller.EXPECT().RollDice(6).Return([]int{2, 2, 3, 3, 4, 6}, nil)
	s.mockMessaging.EXPECT().GetOpponentLine(gomock.Any(), gomock.Any()).
		Return(&messaging.GetOpponentLineOutput{Line: "Typical."}, nil)
	s.mockClock.EXPECT().Now().Return(s.testTime)
	s.expectSaveGame()

	// broken: the stored game vanished
	s.mockGameRepo.EXPECT().
		GetGame(gomock.Any(), &gameRepo.GetGameInput{GameID: "broken"}).
		Return(nil, gameRepo.ErrGameNotFound)

	output, err := s.gameService.ResumeOpponentTurns(s.ctx, &ResumeOpponentTurnsInput{})
	s.Require().NoError(err)
	s.Equal([]string{"waiting"}, output.GameIDs)
}

func (s *GameServiceTestSuite) TestAbandonGame() {
	game := s.newGame()
	s.expectGetGame(game)
	s.mockGameRepo.EXPECT().DeleteGame(gomock.Any(), &gameRepo.DeleteGameInput{GameID: game.ID}).Return(nil)
	s.mockPlayerRepo.EXPECT().
		UpdatePlayerGame(gomock.Any(), &playerRepo.UpdatePlayerGameInput{PlayerID: s.testPlayerID}).
		Return(nil)

	_, err := s.gameService.AbandonGame(s.ctx, &AbandonGameInput{GameID: game.ID})
	s.Require().NoError(err)
}

func (s *GameServiceTestSuite) TestAbandonGame_NotFound() {
	s.mockGameRepo.EXPECT().GetGame(gomock.Any(), gomock.Any()).Return(nil, gameRepo.ErrGameNotFound)

	_, err := s.gameService.AbandonGame(s.ctx, &AbandonGameInput{GameID: "missing"})
	s.ErrorIs(err, ErrGameNotFound)
}

func (s *GameServiceTestSuite) TestGetHallOfFame() {
	entries := []*models.HallOfFameEntry{{ID: "a", PlayerName: "Petr", TurnCount: 9}}
	s.mockHallOfFameRepo.EXPECT().
		GetTopEntries(gomock.Any(), &hallOfFameRepo.GetTopEntriesInput{Limit: 5}).
		Return(&hallOfFameRepo.GetTopEntriesOutput{Entries: entries}, nil)

	output, err := s.gameService.GetHallOfFame(s.ctx, &GetHallOfFameInput{Limit: 5})
	s.Require().NoError(err)
	s.Equal(entries, output.Entries)
}
