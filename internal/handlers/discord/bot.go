package discord

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/KirkDiggler/kostka/internal/engine"
	"github.com/KirkDiggler/kostka/internal/models"
	"github.com/KirkDiggler/kostka/internal/services/game"
	"github.com/KirkDiggler/kostka/internal/services/messaging"
	"github.com/bwmarrin/discordgo"
)

// Bot represents the Discord bot instance
type Bot struct {
	session          *discordgo.Session
	commands         map[string]CommandHandler
	commandIDs       map[string]string // Maps command name to command ID
	gameService      game.Service
	messagingService messaging.Service
	config           *Config
}

// Config holds the configuration for the bot
type Config struct {
	// Discord bot token
	Token string

	// Application ID for the bot
	ApplicationID string

	// Optional guild ID for development (server-specific commands)
	GuildID string

	// HallOfFameSize is how many entries /kostka halloffame shows
	HallOfFameSize int

	// Services
	GameService      game.Service
	MessagingService messaging.Service
}

// New creates a new Discord bot
func New(cfg *Config) (*Bot, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Token == "" {
		return nil, errors.New("token cannot be empty")
	}

	if cfg.GameService == nil {
		return nil, errors.New("game service cannot be nil")
	}

	if cfg.MessagingService == nil {
		return nil, errors.New("messaging service cannot be nil")
	}

	session, err := discordgo.New("Bot " + cfg.Token)
	if err != nil {
		return nil, fmt.Errorf("failed to create Discord session: %w", err)
	}

	bot := &Bot{
		session:          session,
		commands:         make(map[string]CommandHandler),
		commandIDs:       make(map[string]string),
		gameService:      cfg.GameService,
		messagingService: cfg.MessagingService,
		config:           cfg,
	}

	session.AddHandler(bot.handleInteraction)

	return bot, nil
}

// Start opens the Discord connection and registers commands
func (b *Bot) Start() error {
	if err := b.session.Open(); err != nil {
		return fmt.Errorf("failed to open Discord connection: %w", err)
	}

	kostkaCmd := NewKostkaCommand(b.gameService, b.messagingService, b.config.HallOfFameSize)
	if err := b.RegisterCommand(kostkaCmd); err != nil {
		return fmt.Errorf("failed to register kostka command: %w", err)
	}

	log.Println("Bot is now running. Press CTRL-C to exit.")
	return nil
}

// Stop removes the registered commands and closes the connection
func (b *Bot) Stop() error {
	appID := b.applicationID()

	for cmdName, cmdID := range b.commandIDs {
		if err := b.session.ApplicationCommandDelete(appID, b.config.GuildID, cmdID); err != nil {
			log.Printf("Failed to delete command %s (ID: %s): %v", cmdName, cmdID, err)
		} else {
			log.Printf("Successfully deleted command %s (ID: %s)", cmdName, cmdID)
		}
	}

	return b.session.Close()
}

func (b *Bot) applicationID() string {
	if b.config.ApplicationID != "" {
		return b.config.ApplicationID
	}
	// Fall back to session user ID if application ID is not provided
	return b.session.State.User.ID
}

// RegisterCommand registers a command with Discord, for one guild when GuildID is set
func (b *Bot) RegisterCommand(cmd CommandHandler) error {
	if b.config.GuildID != "" {
		log.Printf("Registering command %s for guild %s", cmd.GetName(), b.config.GuildID)
	} else {
		log.Printf("Registering command %s globally", cmd.GetName())
	}

	createdCmd, err := b.session.ApplicationCommandCreate(b.applicationID(), b.config.GuildID, cmd.GetCommand())
	if err != nil {
		return fmt.Errorf("failed to create command %s: %w", cmd.GetName(), err)
	}

	b.commands[cmd.GetName()] = cmd
	b.commandIDs[cmd.GetName()] = createdCmd.ID
	log.Printf("Registered command: %s with ID: %s", cmd.GetName(), createdCmd.ID)

	return nil
}

// handleInteraction handles Discord interactions
func (b *Bot) handleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		if h, ok := b.commands[i.ApplicationCommandData().Name]; ok {
			if err := h.Handle(s, i); err != nil {
				log.Printf("Error handling command %s: %v", i.ApplicationCommandData().Name, err)
			}
		}
	case discordgo.InteractionMessageComponent:
		if err := b.handleComponentInteraction(s, i); err != nil {
			log.Printf("Error handling component interaction: %v", err)
		}
	}
}

// handleComponentInteraction turns a button or select menu into a game action
func (b *Bot) handleComponentInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	data := i.MessageComponentData()
	name, gameID := parseComponentID(data.CustomID)

	var action engine.Action
	switch name {
	case ButtonRoll:
		action = engine.Roll()
	case ButtonStop:
		action = engine.Stop()
	case SelectBank:
		indices, err := parseBankValues(data.Values)
		if err != nil {
			return RespondWithError(s, i, err.Error())
		}
		action = engine.Bank(indices...)
	default:
		return RespondWithError(s, i, fmt.Sprintf("Unknown button: %s", data.CustomID))
	}

	userID, _ := interactionUser(i)
	if userID == "" || gameID == "" {
		return RespondWithError(s, i, "This button is not attached to a game.")
	}

	return b.playAction(s, i, gameID, userID, action)
}

// playAction submits the human action, lets the opponents answer, and redraws the board
func (b *Bot) playAction(s *discordgo.Session, i *discordgo.InteractionCreate, gameID, userID string, action engine.Action) error {
	ctx := context.Background()

	submitted, err := b.gameService.SubmitAction(ctx, &game.SubmitActionInput{
		GameID:   gameID,
		PlayerID: userID,
		Action:   action,
	})
	if err != nil {
		return respondWithServiceError(s, i, b.messagingService, err, b.currentGame(ctx, gameID))
	}

	events := describeSubmit(participantName(submitted.Game, userID), submitted)
	current, opponentEvents := playOpponents(ctx, b.gameService, submitted.Game)
	events = append(events, opponentEvents...)

	return UpdateBoard(s, i, renderBoard(current, events), renderComponents(current))
}

// playOpponents runs the AI turns when one is due and narrates them
func playOpponents(ctx context.Context, gameService game.Service, g *models.Game) (*models.Game, []string) {
	next := g.CurrentParticipant()
	if !g.Status.IsActive() || next == nil || next.IsHuman {
		return g, nil
	}

	played, err := gameService.PlayOpponentTurn(ctx, &game.PlayOpponentTurnInput{
		GameID: g.ID,
	})
	if err != nil {
		log.Printf("Error playing opponent turn for game %s: %v", g.ID, err)
		return g, []string{"⚠️ The opponents got stuck, use `/kostka status` to retry."}
	}

	return played.Game, describeOpponents(played.Game, played.Steps)
}

func participantName(g *models.Game, playerID string) string {
	for _, participant := range g.Participants {
		if participant.PlayerID == playerID {
			return participant.Name
		}
	}
	return "You"
}

// currentGame loads a game for error classification, nil when it cannot
func (b *Bot) currentGame(ctx context.Context, gameID string) *models.Game {
	output, err := b.gameService.GetGame(ctx, &game.GetGameInput{GameID: gameID})
	if err != nil {
		return nil
	}
	return output.Game
}
