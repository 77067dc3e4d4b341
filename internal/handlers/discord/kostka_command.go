package discord

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/KirkDiggler/kostka/internal/services/game"
	"github.com/KirkDiggler/kostka/internal/services/messaging"
	"github.com/bwmarrin/discordgo"
)

const minTargetScore = 500

// KostkaCommand handles the /kostka command
type KostkaCommand struct {
	BaseCommand
	gameService      game.Service
	messagingService messaging.Service
	hallOfFameSize   int
}

// NewKostkaCommand creates a new kostka command handler
func NewKostkaCommand(gameService game.Service, messagingService messaging.Service, hallOfFameSize int) *KostkaCommand {
	minTarget := float64(minTargetScore)

	return &KostkaCommand{
		BaseCommand: BaseCommand{
			Name:        "kostka",
			Description: "Dice game against three AI opponents",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "start",
					Description: "Start a new game",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionInteger,
							Name:        "target",
							Description: "Score needed to win",
							MinValue:    &minTarget,
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "status",
					Description: "Show your current game",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "halloffame",
					Description: "Show the fastest wins",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "quit",
					Description: "Abandon your current game",
				},
			},
		},
		gameService:      gameService,
		messagingService: messagingService,
		hallOfFameSize:   hallOfFameSize,
	}
}

// Handle processes a Discord interaction for the kostka command
func (c *KostkaCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	if i.Type != discordgo.InteractionApplicationCommand {
		return nil
	}

	data := i.ApplicationCommandData()
	if data.Name != c.Name || len(data.Options) == 0 {
		return nil
	}

	userID, username := interactionUser(i)
	if userID == "" {
		return RespondWithError(s, i, "Could not tell who you are.")
	}

	subcommand := data.Options[0]
	switch subcommand.Name {
	case "start":
		return c.handleStart(s, i, subcommand.Options, userID, username)
	case "status":
		return c.handleStatus(s, i, userID)
	case "halloffame":
		return c.handleHallOfFame(s, i)
	case "quit":
		return c.handleQuit(s, i, userID)
	default:
		return errors.New("unknown subcommand")
	}
}

// handleStart creates a game and posts its board
func (c *KostkaCommand) handleStart(s *discordgo.Session, i *discordgo.InteractionCreate, options []*discordgo.ApplicationCommandInteractionDataOption, userID, username string) error {
	ctx := context.Background()

	targetScore := 0
	for _, option := range options {
		if option.Name == "target" {
			targetScore = int(option.IntValue())
		}
	}

	output, err := c.gameService.CreateGame(ctx, &game.CreateGameInput{
		OwnerID:     userID,
		OwnerName:   username,
		ChannelID:   i.ChannelID,
		TargetScore: targetScore,
	})
	if err != nil {
		return respondWithServiceError(s, i, c.messagingService, err, nil)
	}

	events := []string{fmt.Sprintf("**%s** sits down against the table. Roll to begin!", username)}
	if record := describeRecord(output.Player); record != "" {
		events = append(events, record)
	}
	return RespondWithBoard(s, i, renderBoard(output.Game, events), renderComponents(output.Game))
}

// handleStatus reposts the board of the player's game
func (c *KostkaCommand) handleStatus(s *discordgo.Session, i *discordgo.InteractionCreate, userID string) error {
	ctx := context.Background()

	output, err := c.gameService.GetGameForPlayer(ctx, &game.GetGameForPlayerInput{
		PlayerID: userID,
	})
	if err != nil {
		return respondWithServiceError(s, i, c.messagingService, err, nil)
	}

	// resumes opponents left mid-turn by an earlier failure
	current, events := playOpponents(ctx, c.gameService, output.Game)

	return RespondWithBoard(s, i, renderBoard(current, events), renderComponents(current))
}

// handleHallOfFame shows the ranked wins
func (c *KostkaCommand) handleHallOfFame(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	output, err := c.gameService.GetHallOfFame(context.Background(), &game.GetHallOfFameInput{
		Limit: c.hallOfFameSize,
	})
	if err != nil {
		log.Printf("Error getting hall of fame: %v", err)
		return RespondWithError(s, i, "Could not load the Hall of Fame.")
	}

	return RespondWithEmbed(s, i, renderHallOfFame(output.Entries))
}

// handleQuit abandons the player's game
func (c *KostkaCommand) handleQuit(s *discordgo.Session, i *discordgo.InteractionCreate, userID string) error {
	ctx := context.Background()

	current, err := c.gameService.GetGameForPlayer(ctx, &game.GetGameForPlayerInput{
		PlayerID: userID,
	})
	if err != nil {
		return respondWithServiceError(s, i, c.messagingService, err, nil)
	}

	if _, err := c.gameService.AbandonGame(ctx, &game.AbandonGameInput{
		GameID: current.Game.ID,
	}); err != nil {
		return respondWithServiceError(s, i, c.messagingService, err, current.Game)
	}

	return RespondWithEphemeralMessage(s, i, "Game abandoned. Use `/kostka start` for a fresh one.")
}
