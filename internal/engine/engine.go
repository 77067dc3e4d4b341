// Package engine runs the turn state machine of the dice game.
//
// A turn moves through
//
//	awaiting_roll -> dice_rolled -> awaiting_roll_or_stop -> ...
//
// A roll with nothing to bank busts and passes play on. Banking the sixth
// die of a turn is Hot Dice: the pool goes back to six and the participant
// must roll again before stopping. All operations are synchronous and work on
// a copy of the submitted game.
package engine

import (
	"fmt"

	"github.com/KirkDiggler/kostka/internal/dice"
	"github.com/KirkDiggler/kostka/internal/models"
	"github.com/KirkDiggler/kostka/internal/scoring"
)

const minParticipants = 2

// Engine applies actions to games
type Engine struct {
	roller dice.Roller
}

// New creates a new engine
func New(cfg *Config) (*Engine, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.DiceRoller == nil {
		return nil, ErrNilDiceRoller
	}

	return &Engine{
		roller: cfg.DiceRoller,
	}, nil
}

// NewGame sets up a game with the first participant waiting to roll
func NewGame(input *NewGameInput) (*models.Game, error) {
	if input == nil {
		return nil, fmt.Errorf("%w: input cannot be nil", ErrInvalidArgument)
	}

	if input.TargetScore <= 0 {
		return nil, fmt.Errorf("%w: target score must be positive, got %d", ErrInvalidArgument, input.TargetScore)
	}

	if len(input.Participants) < minParticipants {
		return nil, fmt.Errorf("%w: need at least %d participants, got %d", ErrInvalidArgument, minParticipants, len(input.Participants))
	}

	participants := make([]*models.Participant, len(input.Participants))
	for i, p := range input.Participants {
		if p == nil || p.Name == "" {
			return nil, fmt.Errorf("%w: participant %d has no name", ErrInvalidArgument, i)
		}
		cp := *p
		cp.TotalScore = 0
		cp.TurnsTaken = 0
		participants[i] = &cp
	}

	return &models.Game{
		ID:                 input.ID,
		Status:             models.GameStatusActive,
		Participants:       participants,
		CurrentPlayerIndex: 0,
		TargetScore:        input.TargetScore,
		Turn:               newTurn(0),
		WinnerIndex:        models.NoWinner,
	}, nil
}

// AvailableActions lists the actions the current participant may submit
func AvailableActions(game *models.Game) []ActionType {
	if game == nil || !game.Status.IsActive() || game.Turn == nil {
		return nil
	}

	switch game.Turn.Phase {
	case models.TurnPhaseAwaitingRoll:
		return []ActionType{ActionRoll}
	case models.TurnPhaseDiceRolled:
		return []ActionType{ActionBank}
	case models.TurnPhaseAwaitingRollOrStop:
		return []ActionType{ActionRoll, ActionStop}
	}

	return nil
}

// AdvanceTurn applies an action for the current participant. On error the
// returned result is nil and the submitted game is unchanged.
func (e *Engine) AdvanceTurn(game *models.Game, action Action) (*Result, error) {
	if game == nil {
		return nil, fmt.Errorf("%w: game cannot be nil", ErrInvalidArgument)
	}

	if !game.Status.IsActive() || game.Turn == nil {
		return nil, fmt.Errorf("%w: game is over", ErrIllegalTransition)
	}

	next := game.Clone()
	result := &Result{
		Game:   next,
		Action: action,
	}

	var err error
	switch action.Type {
	case ActionRoll:
		err = e.roll(next, result)
	case ActionBank:
		err = bank(next, action.Indices, result)
	case ActionStop:
		err = stop(next, result)
	default:
		err = fmt.Errorf("%w: unknown action %q", ErrIllegalTransition, action.Type)
	}

	if err != nil {
		return nil, err
	}

	return result, nil
}

func (e *Engine) roll(game *models.Game, result *Result) error {
	turn := game.Turn
	if turn.Phase != models.TurnPhaseAwaitingRoll && turn.Phase != models.TurnPhaseAwaitingRollOrStop {
		return fmt.Errorf("%w: bank a selection before rolling again", ErrIllegalTransition)
	}

	faces, err := e.roller.RollDice(turn.RemainingDice())
	if err != nil {
		return fmt.Errorf("failed to roll dice: %w", err)
	}

	turn.RolledDice = faces
	turn.RollCount++
	turn.IsHotDice = false
	result.Roll = append([]int(nil), faces...)

	if !scoring.HasScoringDice(faces) {
		turn.IsBust = true
		result.IsBust = true
		endTurn(game, result)
		advance(game)
		return nil
	}

	turn.Phase = models.TurnPhaseDiceRolled
	return nil
}

func bank(game *models.Game, indices []int, result *Result) error {
	turn := game.Turn
	if turn.Phase != models.TurnPhaseDiceRolled {
		return fmt.Errorf("%w: roll before banking", ErrIllegalTransition)
	}

	selection, remaining, err := selectDice(turn.RolledDice, indices)
	if err != nil {
		return err
	}

	if !scoring.IsValidSelection(selection) {
		return fmt.Errorf("%w: %v does not score, 2s 3s 4s and 6s need three of a kind", ErrInvalidSelection, selection)
	}

	score := scoring.CalculateScore(selection)
	turn.TurnScore += score
	turn.BankedDiceCount += len(selection)
	turn.RolledDice = remaining
	result.BankedScore = score

	if turn.BankedDiceCount == dice.MaxDice {
		turn.BankedDiceCount = 0
		turn.RolledDice = nil
		turn.IsHotDice = true
		turn.Phase = models.TurnPhaseAwaitingRoll
		result.IsHotDice = true
		return nil
	}

	turn.Phase = models.TurnPhaseAwaitingRollOrStop
	return nil
}

// selectDice splits the roll into the selected faces and the rest
func selectDice(rolled []int, indices []int) ([]int, []int, error) {
	if len(indices) == 0 {
		return nil, nil, fmt.Errorf("%w: no dice selected", ErrInvalidSelection)
	}

	if len(indices) > len(rolled) {
		return nil, nil, fmt.Errorf("%w: %d dice selected but only %d rolled", ErrInvalidSelection, len(indices), len(rolled))
	}

	picked := make([]bool, len(rolled))
	selection := make([]int, 0, len(indices))
	for _, idx := range indices {
		if idx < 0 || idx >= len(rolled) {
			return nil, nil, fmt.Errorf("%w: die %d is not in the current roll", ErrInvalidSelection, idx)
		}
		if picked[idx] {
			return nil, nil, fmt.Errorf("%w: die %d selected twice", ErrInvalidSelection, idx)
		}
		picked[idx] = true
		selection = append(selection, rolled[idx])
	}

	remaining := make([]int, 0, len(rolled)-len(selection))
	for i, face := range rolled {
		if !picked[i] {
			remaining = append(remaining, face)
		}
	}

	return selection, remaining, nil
}

func stop(game *models.Game, result *Result) error {
	turn := game.Turn
	if turn.Phase != models.TurnPhaseAwaitingRollOrStop {
		if turn.IsHotDice {
			return fmt.Errorf("%w: hot dice, roll all six again before stopping", ErrIllegalTransition)
		}
		return fmt.Errorf("%w: bank a selection before stopping", ErrIllegalTransition)
	}

	participant := game.Participants[turn.PlayerIndex]
	participant.TotalScore += turn.TurnScore
	endTurn(game, result)

	if participant.TotalScore >= game.TargetScore {
		game.WinnerIndex = turn.PlayerIndex
		game.Status = models.GameStatusCompleted
		game.Turn = nil
		result.GameOver = true
		return nil
	}

	advance(game)
	return nil
}

// endTurn records the turn that just finished on the game and the result
func endTurn(game *models.Game, result *Result) {
	turn := game.Turn
	participant := game.Participants[turn.PlayerIndex]
	participant.TurnsTaken++
	game.TurnCount++

	record := &models.TurnRecord{
		PlayerIndex: turn.PlayerIndex,
		PlayerName:  participant.Name,
		TurnScore:   turn.TurnScore,
		IsBust:      turn.IsBust,
		LastRoll:    append([]int(nil), result.Roll...),
		RollCount:   turn.RollCount,
		TotalScore:  participant.TotalScore,
	}

	game.LastTurn = record
	result.TurnEnded = true
	result.EndedTurn = record.Clone()
}

// advance hands a fresh turn to the next seat
func advance(game *models.Game) {
	game.CurrentPlayerIndex = (game.Turn.PlayerIndex + 1) % len(game.Participants)
	game.Turn = newTurn(game.CurrentPlayerIndex)
}

func newTurn(playerIndex int) *models.Turn {
	return &models.Turn{
		PlayerIndex: playerIndex,
		Phase:       models.TurnPhaseAwaitingRoll,
	}
}
