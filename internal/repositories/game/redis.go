package game

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/KirkDiggler/kostka/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	gameKeyPrefix  = "kostka:game:"
	activeGamesKey = "kostka:active_games"

	// Finished games linger so the final board can still be shown
	completedGameTTL = 24 * time.Hour
)

var (
	// ErrGameNotFound is returned when a game is not found
	ErrGameNotFound = errors.New("game not found")

	// ErrVersionConflict is returned when the stored game moved on since it was read
	ErrVersionConflict = errors.New("game was changed by another action")
)

// Config holds configuration for the Redis game repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository stores each game as a JSON blob and tracks unfinished games in a set
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed game repository
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

func gameKey(gameID string) string {
	return gameKeyPrefix + gameID
}

// storedVersion reads only the version of a stored game, 0 when there is none
func storedVersion(ctx context.Context, tx *redis.Tx, key string) (int, error) {
	raw, err := tx.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}

	var head struct {
		Version int
	}
	if err := json.Unmarshal(raw, &head); err != nil {
		return 0, fmt.Errorf("failed to unmarshal stored game: %w", err)
	}
	return head.Version, nil
}

// SaveGame stores the game if nobody saved it since it was loaded. On success
// the game's Version is advanced to the stored one.
func (r *redisRepository) SaveGame(ctx context.Context, input *SaveGameInput) error {
	if input == nil || input.Game == nil {
		return errors.New("input and game cannot be nil")
	}

	game := input.Game
	if game.ID == "" {
		return errors.New("game ID cannot be empty")
	}

	key := gameKey(game.ID)
	next := *game
	next.Version = game.Version + 1

	gameJSON, err := json.Marshal(&next)
	if err != nil {
		return fmt.Errorf("failed to marshal game: %w", err)
	}

	err = r.client.Watch(ctx, func(tx *redis.Tx) error {
		current, err := storedVersion(ctx, tx, key)
		if err != nil {
			return err
		}
		if current != game.Version {
			return ErrVersionConflict
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			if game.Status.IsActive() {
				pipe.Set(ctx, key, gameJSON, 0)
				pipe.SAdd(ctx, activeGamesKey, game.ID)
			} else {
				pipe.Set(ctx, key, gameJSON, completedGameTTL)
				pipe.SRem(ctx, activeGamesKey, game.ID)
			}
			return nil
		})
		return err
	}, key)

	switch {
	case err == nil:
		game.Version = next.Version
		return nil
	case errors.Is(err, ErrVersionConflict), errors.Is(err, redis.TxFailedErr):
		return ErrVersionConflict
	default:
		return fmt.Errorf("failed to save game: %w", err)
	}
}

// GetGame retrieves a game by ID from Redis
func (r *redisRepository) GetGame(ctx context.Context, input *GetGameInput) (*models.Game, error) {
	if input == nil || input.GameID == "" {
		return nil, errors.New("input and game ID cannot be empty")
	}

	gameJSON, err := r.client.Get(ctx, gameKey(input.GameID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrGameNotFound
		}
		return nil, fmt.Errorf("failed to get game: %w", err)
	}

	return decodeGame(input.GameID, gameJSON)
}

func decodeGame(gameID string, gameJSON []byte) (*models.Game, error) {
	var game models.Game
	if err := json.Unmarshal(gameJSON, &game); err != nil {
		return nil, fmt.Errorf("failed to unmarshal game %s: %w", gameID, err)
	}
	return &game, nil
}

// DeleteGame removes a game and its active marker
func (r *redisRepository) DeleteGame(ctx context.Context, input *DeleteGameInput) error {
	if input == nil || input.GameID == "" {
		return errors.New("input and game ID cannot be empty")
	}

	var deleted *redis.IntCmd
	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		deleted = pipe.Del(ctx, gameKey(input.GameID))
		pipe.SRem(ctx, activeGamesKey, input.GameID)
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to delete game: %w", err)
	}

	if deleted.Val() == 0 {
		return ErrGameNotFound
	}

	return nil
}

// GetActiveGames loads every game in the active set. Stale members whose game
// is gone are pruned from the set.
func (r *redisRepository) GetActiveGames(ctx context.Context, input *GetActiveGamesInput) (*GetActiveGamesOutput, error) {
	gameIDs, err := r.client.SMembers(ctx, activeGamesKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get active game IDs: %w", err)
	}

	output := &GetActiveGamesOutput{
		Games: make([]*models.Game, 0, len(gameIDs)),
	}
	if len(gameIDs) == 0 {
		return output, nil
	}

	keys := make([]string, len(gameIDs))
	for i, gameID := range gameIDs {
		keys[i] = gameKey(gameID)
	}

	// MGET answers nil for keys that expired or were deleted
	values, err := r.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get active games: %w", err)
	}

	var stale []any
	for i, value := range values {
		raw, ok := value.(string)
		if !ok {
			stale = append(stale, gameIDs[i])
			continue
		}

		game, err := decodeGame(gameIDs[i], []byte(raw))
		if err != nil {
			return nil, err
		}
		output.Games = append(output.Games, game)
	}

	if len(stale) > 0 {
		if err := r.client.SRem(ctx, activeGamesKey, stale...).Err(); err != nil {
			return nil, fmt.Errorf("failed to prune active games: %w", err)
		}
	}

	return output, nil
}
