package main

import (
	"context"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/KirkDiggler/kostka/internal/common/clock"
	"github.com/KirkDiggler/kostka/internal/common/uuid"
	"github.com/KirkDiggler/kostka/internal/config"
	"github.com/KirkDiggler/kostka/internal/dice"
	"github.com/KirkDiggler/kostka/internal/handlers/discord"
	"github.com/KirkDiggler/kostka/internal/repositories/game"
	"github.com/KirkDiggler/kostka/internal/repositories/hall_of_fame"
	"github.com/KirkDiggler/kostka/internal/repositories/player"
	gameService "github.com/KirkDiggler/kostka/internal/services/game"
	"github.com/KirkDiggler/kostka/internal/services/messaging"
	"github.com/KirkDiggler/kostka/internal/services/opponent"
	"github.com/redis/go-redis/v9"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize Redis client
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       0,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := redisClient.Ping(ctx).Err(); err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}

	// Initialize repositories
	gameRepo, err := game.NewRedis(&game.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		log.Fatalf("Failed to create game repository: %v", err)
	}

	playerRepo, err := player.NewRedis(&player.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		log.Fatalf("Failed to create player repository: %v", err)
	}

	hallOfFameRepo, hallOfFameCloser, err := newHallOfFameRepo(cfg, redisClient)
	if err != nil {
		log.Fatalf("Failed to create hall of fame repository: %v", err)
	}

	messagingSvc := messaging.New(&messaging.Config{})

	gameSvc, err := gameService.New(&gameService.Config{
		TargetScore:      cfg.TargetScore,
		GameRepo:         gameRepo,
		PlayerRepo:       playerRepo,
		HallOfFameRepo:   hallOfFameRepo,
		DiceRoller:       dice.New(&dice.Config{Seed: cfg.DiceSeed}),
		OpponentService:  opponent.New(),
		MessagingService: messagingSvc,
		Clock:            clock.New(),
		UUIDGenerator:    uuid.New(),
	})
	if err != nil {
		log.Fatalf("Failed to create game service: %v", err)
	}

	resumed, err := gameSvc.ResumeOpponentTurns(context.Background(), &gameService.ResumeOpponentTurnsInput{})
	if err != nil {
		log.Printf("Error resuming opponent turns: %v", err)
	} else if len(resumed.GameIDs) > 0 {
		log.Printf("Resumed opponent turns in %d games", len(resumed.GameIDs))
	}

	bot, err := discord.New(&discord.Config{
		Token:            cfg.DiscordToken,
		ApplicationID:    cfg.ApplicationID,
		GuildID:          cfg.GuildID,
		HallOfFameSize:   cfg.HallOfFameSize,
		GameService:      gameSvc,
		MessagingService: messagingSvc,
	})
	if err != nil {
		log.Fatalf("Failed to create Discord bot: %v", err)
	}

	if err := bot.Start(); err != nil {
		log.Fatalf("Failed to start Discord bot: %v", err)
	}

	// Wait for interrupt signal to gracefully shutdown
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	if err := bot.Stop(); err != nil {
		log.Printf("Error stopping bot: %v", err)
	}

	if err := hallOfFameCloser.Close(); err != nil {
		log.Printf("Error closing hall of fame repository: %v", err)
	}

	if err := redisClient.Close(); err != nil {
		log.Printf("Error closing Redis client: %v", err)
	}

	log.Println("Bot has been shut down")
}

// newHallOfFameRepo picks the configured Hall of Fame backend. The closer
// releases what the backend owns; the shared Redis client is closed by main.
func newHallOfFameRepo(cfg *config.Config, redisClient *redis.Client) (hall_of_fame.Repository, io.Closer, error) {
	if cfg.HallOfFameBackend == config.BackendSQLite {
		log.Printf("Hall of Fame stored in SQLite at %s", cfg.SQLitePath)
		repo, err := hall_of_fame.NewSQLite(&hall_of_fame.SQLiteConfig{
			Path:       cfg.SQLitePath,
			MaxEntries: cfg.HallOfFameSize,
		})
		if err != nil {
			return nil, nil, err
		}
		return repo, repo, nil
	}

	repo, err := hall_of_fame.NewRedis(&hall_of_fame.Config{
		RedisClient: redisClient,
		MaxEntries:  cfg.HallOfFameSize,
	})
	if err != nil {
		return nil, nil, err
	}
	return repo, sharedClient{}, nil
}

// sharedClient is the closer of a backend that only borrows the Redis client
type sharedClient struct{}

func (sharedClient) Close() error { return nil }
