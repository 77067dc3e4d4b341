package player

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/KirkDiggler/kostka/internal/models"
	"github.com/redis/go-redis/v9"
)

// Each player is a hash so counters can be bumped without a read.
const playerKeyPrefix = "kostka:player:"

const (
	fieldName          = "name"
	fieldCurrentGameID = "current_game_id"
	fieldGamesPlayed   = "games_played"
	fieldGamesWon      = "games_won"
	fieldLastSeen      = "last_seen"
)

// ErrPlayerNotFound is returned when a player is not found
var ErrPlayerNotFound = errors.New("player not found")

// Config holds configuration for the Redis player repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis hashes
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed player repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisRepository{
		client: cfg.RedisClient,
	}, nil
}

func playerKey(playerID string) string {
	return playerKeyPrefix + playerID
}

// SavePlayer writes every field of the profile
func (r *redisRepository) SavePlayer(ctx context.Context, input *SavePlayerInput) error {
	if input == nil || input.Player == nil {
		return errors.New("input and player cannot be nil")
	}

	p := input.Player
	if p.ID == "" {
		return errors.New("player ID cannot be empty")
	}

	err := r.client.HSet(ctx, playerKey(p.ID),
		fieldName, p.Name,
		fieldCurrentGameID, p.CurrentGameID,
		fieldGamesPlayed, p.GamesPlayed,
		fieldGamesWon, p.GamesWon,
		fieldLastSeen, p.LastSeen.UTC().Format(time.RFC3339Nano),
	).Err()
	if err != nil {
		return fmt.Errorf("failed to save player: %w", err)
	}

	return nil
}

// GetPlayer retrieves a player by ID from Redis
func (r *redisRepository) GetPlayer(ctx context.Context, input *GetPlayerInput) (*models.Player, error) {
	if input == nil || input.PlayerID == "" {
		return nil, errors.New("input and player ID cannot be empty")
	}

	fields, err := r.client.HGetAll(ctx, playerKey(input.PlayerID)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get player: %w", err)
	}

	// HGETALL on a missing key is an empty map, not redis.Nil
	if len(fields) == 0 {
		return nil, ErrPlayerNotFound
	}

	return decodePlayer(input.PlayerID, fields)
}

func decodePlayer(playerID string, fields map[string]string) (*models.Player, error) {
	player := &models.Player{
		ID:            playerID,
		Name:          fields[fieldName],
		CurrentGameID: fields[fieldCurrentGameID],
	}

	var err error
	if player.GamesPlayed, err = intField(fields, fieldGamesPlayed); err != nil {
		return nil, err
	}
	if player.GamesWon, err = intField(fields, fieldGamesWon); err != nil {
		return nil, err
	}

	if raw := fields[fieldLastSeen]; raw != "" {
		lastSeen, err := time.Parse(time.RFC3339Nano, raw)
		if err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", fieldLastSeen, err)
		}
		player.LastSeen = lastSeen
	}

	return player, nil
}

func intField(fields map[string]string, name string) (int, error) {
	raw, ok := fields[name]
	if !ok || raw == "" {
		return 0, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("failed to parse %s: %w", name, err)
	}
	return value, nil
}

// UpdatePlayerGame sets only the current game field of an existing player
func (r *redisRepository) UpdatePlayerGame(ctx context.Context, input *UpdatePlayerGameInput) error {
	if input == nil || input.PlayerID == "" {
		return errors.New("input and player ID cannot be empty")
	}

	return r.updateExisting(ctx, input.PlayerID, func(pipe redis.Pipeliner, key string) {
		pipe.HSet(ctx, key, fieldCurrentGameID, input.GameID)
	})
}

// RecordGameResult bumps the played and won counters
func (r *redisRepository) RecordGameResult(ctx context.Context, input *RecordGameResultInput) error {
	if input == nil || input.PlayerID == "" {
		return errors.New("input and player ID cannot be empty")
	}

	return r.updateExisting(ctx, input.PlayerID, func(pipe redis.Pipeliner, key string) {
		pipe.HIncrBy(ctx, key, fieldGamesPlayed, 1)
		if input.Won {
			pipe.HIncrBy(ctx, key, fieldGamesWon, 1)
		}
	})
}

// updateExisting runs the queued writes in a transaction that aborts if the
// player is deleted or created concurrently
func (r *redisRepository) updateExisting(ctx context.Context, playerID string, queue func(pipe redis.Pipeliner, key string)) error {
	key := playerKey(playerID)

	err := r.client.Watch(ctx, func(tx *redis.Tx) error {
		exists, err := tx.Exists(ctx, key).Result()
		if err != nil {
			return fmt.Errorf("failed to check player: %w", err)
		}
		if exists == 0 {
			return ErrPlayerNotFound
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			queue(pipe, key)
			return nil
		})
		return err
	}, key)
	if err != nil {
		if errors.Is(err, ErrPlayerNotFound) {
			return ErrPlayerNotFound
		}
		return fmt.Errorf("failed to update player: %w", err)
	}

	return nil
}
