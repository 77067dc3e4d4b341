package game

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/KirkDiggler/kostka/internal/common/clock"
	"github.com/KirkDiggler/kostka/internal/common/uuid"
	"github.com/KirkDiggler/kostka/internal/engine"
	"github.com/KirkDiggler/kostka/internal/models"
	gameRepo "github.com/KirkDiggler/kostka/internal/repositories/game"
	hallOfFameRepo "github.com/KirkDiggler/kostka/internal/repositories/hall_of_fame"
	playerRepo "github.com/KirkDiggler/kostka/internal/repositories/player"
	"github.com/KirkDiggler/kostka/internal/services/messaging"
	"github.com/KirkDiggler/kostka/internal/services/opponent"
)

// maxOpponentSteps bounds a single PlayOpponentTurn call
const maxOpponentSteps = 1000

// service implements the Service interface
type service struct {
	targetScore      int
	engine           *engine.Engine
	gameRepo         gameRepo.Repository
	playerRepo       playerRepo.Repository
	hallOfFameRepo   hallOfFameRepo.Repository
	opponentService  opponent.Service
	messagingService messaging.Service
	clock            clock.Clock
	uuidGenerator    uuid.UUID
}

// New creates a new game service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.GameRepo == nil {
		return nil, ErrNilGameRepo
	}

	if cfg.PlayerRepo == nil {
		return nil, ErrNilPlayerRepo
	}

	if cfg.HallOfFameRepo == nil {
		return nil, ErrNilHallOfFameRepo
	}

	if cfg.DiceRoller == nil {
		return nil, ErrNilDiceRoller
	}

	if cfg.OpponentService == nil {
		return nil, ErrNilOpponentService
	}

	if cfg.MessagingService == nil {
		return nil, ErrNilMessagingService
	}

	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	if cfg.UUIDGenerator == nil {
		return nil, ErrNilUUIDGenerator
	}

	eng, err := engine.New(&engine.Config{
		DiceRoller: cfg.DiceRoller,
	})
	if err != nil {
		return nil, err
	}

	targetScore := cfg.TargetScore
	if targetScore <= 0 {
		targetScore = DefaultTargetScore
	}

	return &service{
		targetScore:      targetScore,
		engine:           eng,
		gameRepo:         cfg.GameRepo,
		playerRepo:       cfg.PlayerRepo,
		hallOfFameRepo:   cfg.HallOfFameRepo,
		opponentService:  cfg.OpponentService,
		messagingService: cfg.MessagingService,
		clock:            cfg.Clock,
		uuidGenerator:    cfg.UUIDGenerator,
	}, nil
}

// CreateGame seats the owner first, followed by every AI opponent
func (s *service) CreateGame(ctx context.Context, input *CreateGameInput) (*CreateGameOutput, error) {
	if input == nil || input.OwnerID == "" || input.OwnerName == "" {
		return nil, fmt.Errorf("%w: owner ID and name are required", ErrInvalidInput)
	}

	player, err := s.playerRepo.GetPlayer(ctx, &playerRepo.GetPlayerInput{
		PlayerID: input.OwnerID,
	})
	if err != nil {
		if !errors.Is(err, playerRepo.ErrPlayerNotFound) {
			return nil, fmt.Errorf("failed to get player: %w", err)
		}
		player = &models.Player{
			ID: input.OwnerID,
		}
	}

	if player.CurrentGameID != "" {
		existing, err := s.gameRepo.GetGame(ctx, &gameRepo.GetGameInput{
			GameID: player.CurrentGameID,
		})
		if err != nil && !errors.Is(err, gameRepo.ErrGameNotFound) {
			return nil, fmt.Errorf("failed to get current game: %w", err)
		}
		if err == nil && existing.Status.IsActive() {
			return nil, ErrGameAlreadyExists
		}
	}

	opponents, err := s.opponentService.ListOpponents(ctx, &opponent.ListOpponentsInput{})
	if err != nil {
		return nil, fmt.Errorf("failed to list opponents: %w", err)
	}

	participants := []*models.Participant{
		{
			Name:     input.OwnerName,
			PlayerID: input.OwnerID,
			IsHuman:  true,
		},
	}
	for _, profile := range opponents.Opponents {
		participants = append(participants, &models.Participant{
			Name:       profile.Name,
			OpponentID: string(profile.ID),
		})
	}

	targetScore := input.TargetScore
	if targetScore <= 0 {
		targetScore = s.targetScore
	}

	game, err := engine.NewGame(&engine.NewGameInput{
		ID:           s.uuidGenerator.NewUUID(),
		Participants: participants,
		TargetScore:  targetScore,
	})
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()
	game.OwnerID = input.OwnerID
	game.ChannelID = input.ChannelID
	game.CreatedAt = now
	game.UpdatedAt = now

	if err := s.gameRepo.SaveGame(ctx, &gameRepo.SaveGameInput{Game: game}); err != nil {
		return nil, fmt.Errorf("failed to save game: %w", err)
	}

	player.Name = input.OwnerName
	player.CurrentGameID = game.ID
	player.LastSeen = now
	if err := s.playerRepo.SavePlayer(ctx, &playerRepo.SavePlayerInput{Player: player}); err != nil {
		return nil, fmt.Errorf("failed to save player: %w", err)
	}

	log.Printf("Created game %s for %s (target %d)", game.ID, input.OwnerName, targetScore)

	return &CreateGameOutput{
		Game:   game,
		Player: player,
	}, nil
}

// GetGame retrieves a game by ID
func (s *service) GetGame(ctx context.Context, input *GetGameInput) (*GetGameOutput, error) {
	if input == nil || input.GameID == "" {
		return nil, fmt.Errorf("%w: game ID is required", ErrInvalidInput)
	}

	game, err := s.loadGame(ctx, input.GameID)
	if err != nil {
		return nil, err
	}

	return &GetGameOutput{
		Game: game,
	}, nil
}

// GetGameForPlayer retrieves the game a player is pointed at
func (s *service) GetGameForPlayer(ctx context.Context, input *GetGameForPlayerInput) (*GetGameForPlayerOutput, error) {
	if input == nil || input.PlayerID == "" {
		return nil, fmt.Errorf("%w: player ID is required", ErrInvalidInput)
	}

	player, err := s.playerRepo.GetPlayer(ctx, &playerRepo.GetPlayerInput{
		PlayerID: input.PlayerID,
	})
	if err != nil {
		if errors.Is(err, playerRepo.ErrPlayerNotFound) {
			return nil, ErrGameNotFound
		}
		return nil, fmt.Errorf("failed to get player: %w", err)
	}

	if player.CurrentGameID == "" {
		return nil, ErrGameNotFound
	}

	game, err := s.loadGame(ctx, player.CurrentGameID)
	if err != nil {
		return nil, err
	}

	return &GetGameForPlayerOutput{
		Game: game,
	}, nil
}

// SubmitAction applies a human action; the stored game only changes when the engine accepts it
func (s *service) SubmitAction(ctx context.Context, input *SubmitActionInput) (*SubmitActionOutput, error) {
	if input == nil || input.GameID == "" || input.PlayerID == "" {
		return nil, fmt.Errorf("%w: game ID and player ID are required", ErrInvalidInput)
	}

	game, err := s.loadGame(ctx, input.GameID)
	if err != nil {
		return nil, err
	}

	if game.Status.IsCompleted() {
		return nil, ErrGameOver
	}

	current := game.CurrentParticipant()
	if current == nil || !current.IsHuman || current.PlayerID != input.PlayerID {
		return nil, ErrNotYourTurn
	}

	result, err := s.engine.AdvanceTurn(game, input.Action)
	if err != nil {
		return nil, err
	}

	updated, err := s.commit(ctx, result.Game)
	if err != nil {
		return nil, err
	}

	output := &SubmitActionOutput{
		Game:   updated,
		Result: result,
	}

	if result.IsBust {
		output.Reaction = s.reactToBust(ctx, updated, current.Name)
	}

	return output, nil
}

// PlayOpponentTurn lets AI opponents act until a human is on turn or someone wins
func (s *service) PlayOpponentTurn(ctx context.Context, input *PlayOpponentTurnInput) (*PlayOpponentTurnOutput, error) {
	if input == nil || input.GameID == "" {
		return nil, fmt.Errorf("%w: game ID is required", ErrInvalidInput)
	}

	game, err := s.loadGame(ctx, input.GameID)
	if err != nil {
		return nil, err
	}

	if game.Status.IsCompleted() {
		return nil, ErrGameOver
	}

	current := game.CurrentParticipant()
	if current == nil || current.IsHuman {
		return nil, ErrNoOpponentTurn
	}

	steps := make([]*OpponentStep, 0)
	for game.Status.IsActive() && !game.CurrentParticipant().IsHuman {
		if len(steps) >= maxOpponentSteps {
			return nil, ErrOpponentStalled
		}

		seat := game.CurrentPlayerIndex
		participant := game.CurrentParticipant()
		firstRoll := game.Turn.RollCount == 0

		decision, err := s.opponentService.DecideAction(ctx, &opponent.DecideActionInput{
			Game: game,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to decide action for %s: %w", participant.Name, err)
		}

		result, err := s.engine.AdvanceTurn(game, decision.Action)
		if err != nil {
			return nil, fmt.Errorf("opponent %s submitted a rejected action: %w", participant.Name, err)
		}

		steps = append(steps, &OpponentStep{
			ParticipantIndex: seat,
			Result:           result,
			Line:             s.opponentLine(ctx, participant, situationFor(result, firstRoll), ""),
		})

		game = result.Game
	}

	updated, err := s.commit(ctx, game)
	if err != nil {
		return nil, err
	}

	return &PlayOpponentTurnOutput{
		Game:  updated,
		Steps: steps,
	}, nil
}

// ResumeOpponentTurns plays every stored game that is waiting on an AI opponent.
// A game that fails is logged and skipped.
func (s *service) ResumeOpponentTurns(ctx context.Context, input *ResumeOpponentTurnsInput) (*ResumeOpponentTurnsOutput, error) {
	active, err := s.gameRepo.GetActiveGames(ctx, &gameRepo.GetActiveGamesInput{})
	if err != nil {
		return nil, fmt.Errorf("failed to get active games: %w", err)
	}

	output := &ResumeOpponentTurnsOutput{
		GameIDs: make([]string, 0),
	}

	for _, game := range active.Games {
		current := game.CurrentParticipant()
		if !game.Status.IsActive() || current == nil || current.IsHuman {
			continue
		}

		if _, err := s.PlayOpponentTurn(ctx, &PlayOpponentTurnInput{GameID: game.ID}); err != nil {
			log.Printf("Error resuming opponents in game %s: %v", game.ID, err)
			continue
		}

		output.GameIDs = append(output.GameIDs, game.ID)
	}

	return output, nil
}

// AbandonGame deletes a game and clears its owner's pointer
func (s *service) AbandonGame(ctx context.Context, input *AbandonGameInput) (*AbandonGameOutput, error) {
	if input == nil || input.GameID == "" {
		return nil, fmt.Errorf("%w: game ID is required", ErrInvalidInput)
	}

	game, err := s.loadGame(ctx, input.GameID)
	if err != nil {
		return nil, err
	}

	if err := s.gameRepo.DeleteGame(ctx, &gameRepo.DeleteGameInput{GameID: game.ID}); err != nil {
		if errors.Is(err, gameRepo.ErrGameNotFound) {
			return nil, ErrGameNotFound
		}
		return nil, fmt.Errorf("failed to delete game: %w", err)
	}

	if game.OwnerID != "" {
		err := s.playerRepo.UpdatePlayerGame(ctx, &playerRepo.UpdatePlayerGameInput{
			PlayerID: game.OwnerID,
		})
		if err != nil && !errors.Is(err, playerRepo.ErrPlayerNotFound) {
			return nil, fmt.Errorf("failed to clear player game: %w", err)
		}
	}

	log.Printf("Abandoned game %s", game.ID)

	return &AbandonGameOutput{}, nil
}

// GetHallOfFame lists the best human wins
func (s *service) GetHallOfFame(ctx context.Context, input *GetHallOfFameInput) (*GetHallOfFameOutput, error) {
	if input == nil {
		return nil, fmt.Errorf("%w: input cannot be nil", ErrInvalidInput)
	}

	output, err := s.hallOfFameRepo.GetTopEntries(ctx, &hallOfFameRepo.GetTopEntriesInput{
		Limit: input.Limit,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get hall of fame: %w", err)
	}

	return &GetHallOfFameOutput{
		Entries: output.Entries,
	}, nil
}

func (s *service) loadGame(ctx context.Context, gameID string) (*models.Game, error) {
	game, err := s.gameRepo.GetGame(ctx, &gameRepo.GetGameInput{
		GameID: gameID,
	})
	if err != nil {
		if errors.Is(err, gameRepo.ErrGameNotFound) {
			return nil, ErrGameNotFound
		}
		return nil, fmt.Errorf("failed to get game: %w", err)
	}
	return game, nil
}

// commit stamps and stores a game. A game that just finished is then counted
// on the owner's record and, for a human win, in the Hall of Fame.
func (s *service) commit(ctx context.Context, game *models.Game) (*models.Game, error) {
	now := s.clock.Now()
	game.UpdatedAt = now

	justFinished := game.Status.IsCompleted() && game.CompletedAt == nil
	if justFinished {
		game.CompletedAt = &now
	}

	if err := s.gameRepo.SaveGame(ctx, &gameRepo.SaveGameInput{Game: game}); err != nil {
		if errors.Is(err, gameRepo.ErrVersionConflict) {
			return nil, ErrConcurrentUpdate
		}
		return nil, fmt.Errorf("failed to save game: %w", err)
	}

	// only the save that won the version check records the result
	if justFinished {
		s.recordWin(ctx, game, now)
		s.recordOwnerResult(ctx, game)
	}

	return game, nil
}

func (s *service) recordWin(ctx context.Context, game *models.Game, now time.Time) {
	winner := game.Winner()
	if winner == nil {
		return
	}

	log.Printf("Game %s won by %s with %d", game.ID, winner.Name, winner.TotalScore)

	if !winner.IsHuman {
		return
	}

	err := s.hallOfFameRepo.AddEntry(ctx, &hallOfFameRepo.AddEntryInput{
		Entry: &models.HallOfFameEntry{
			ID:          s.uuidGenerator.NewUUID(),
			GameID:      game.ID,
			PlayerName:  winner.Name,
			Score:       winner.TotalScore,
			TargetScore: game.TargetScore,
			TurnCount:   winner.TurnsTaken,
			Duration:    now.Sub(game.CreatedAt),
			RecordedAt:  now,
		},
	})
	if err != nil {
		log.Printf("Error recording hall of fame entry for game %s: %v", game.ID, err)
	}
}

// recordOwnerResult counts the finished game on the owner's profile
func (s *service) recordOwnerResult(ctx context.Context, game *models.Game) {
	if game.OwnerID == "" {
		return
	}

	winner := game.Winner()
	err := s.playerRepo.RecordGameResult(ctx, &playerRepo.RecordGameResultInput{
		PlayerID: game.OwnerID,
		Won:      winner != nil && winner.IsHuman && winner.PlayerID == game.OwnerID,
	})
	if err != nil {
		log.Printf("Error recording result of game %s for %s: %v", game.ID, game.OwnerID, err)
	}
}

// reactToBust has the next opponent comment on a human bust
func (s *service) reactToBust(ctx context.Context, game *models.Game, playerName string) *OpponentLine {
	next := game.CurrentParticipant()
	if next == nil || next.IsHuman {
		return nil
	}
	return s.opponentLine(ctx, next, messaging.SituationOpponentBust, playerName)
}

func (s *service) opponentLine(ctx context.Context, participant *models.Participant, situation messaging.Situation, playerName string) *OpponentLine {
	if situation == "" {
		return nil
	}

	output, err := s.messagingService.GetOpponentLine(ctx, &messaging.GetOpponentLineInput{
		OpponentID: opponent.Personality(participant.OpponentID),
		Situation:  situation,
		PlayerName: playerName,
	})
	if err != nil {
		log.Printf("Error getting %s line for %s: %v", situation, participant.Name, err)
		return nil
	}

	return &OpponentLine{
		Name: participant.Name,
		Line: output.Line,
	}
}

// situationFor picks what an opponent comments on; quiet rolls return an empty situation
func situationFor(result *engine.Result, firstRoll bool) messaging.Situation {
	switch result.Action.Type {
	case engine.ActionRoll:
		if result.IsBust {
			return messaging.SituationBust
		}
		if firstRoll {
			return messaging.SituationTurnStart
		}
	case engine.ActionBank:
		if result.IsHotDice {
			return messaging.SituationHotDice
		}
		return messaging.SituationBank
	case engine.ActionStop:
		if result.GameOver {
			return messaging.SituationWin
		}
		return messaging.SituationStop
	}
	return ""
}
