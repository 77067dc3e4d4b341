package hall_of_fame

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/KirkDiggler/kostka/internal/models"
	"github.com/redis/go-redis/v9"
)

// Key for the sorted set holding serialized entries, scored by record time
const hallOfFameKey = "kostka:hall_of_fame"

// Config holds configuration for the Redis Hall of Fame repository
type Config struct {
	// Redis client
	RedisClient *redis.Client

	// MaxEntries is how many entries are kept
	MaxEntries int
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client     *redis.Client
	maxEntries int
}

// NewRedis creates a new Redis-backed Hall of Fame repository
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

	maxEntries := cfg.MaxEntries
	if maxEntries <= 0 {
		maxEntries = DefaultMaxEntries
	}

	return &redisRepository{
		client:     cfg.RedisClient,
		maxEntries: maxEntries,
	}, nil
}

// AddEntry stores an entry and removes whatever no longer makes the list
func (r *redisRepository) AddEntry(ctx context.Context, input *AddEntryInput) error {
	if err := validateEntry(input); err != nil {
		return err
	}

	entry := input.Entry
	if entry.RecordedAt.IsZero() {
		entry.RecordedAt = time.Now()
	}

	entryJSON, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("failed to marshal hall of fame entry: %w", err)
	}

	if err := r.client.ZAdd(ctx, hallOfFameKey, redis.Z{
		Score:  float64(entry.RecordedAt.UnixNano()),
		Member: string(entryJSON),
	}).Err(); err != nil {
		return fmt.Errorf("failed to add hall of fame entry: %w", err)
	}

	return r.trim(ctx)
}

// trim drops every member ranked below maxEntries
func (r *redisRepository) trim(ctx context.Context) error {
	members, entries, err := r.load(ctx)
	if err != nil {
		return err
	}

	if len(entries) <= r.maxEntries {
		return nil
	}

	byEntry := make(map[*models.HallOfFameEntry]string, len(entries))
	for i, entry := range entries {
		byEntry[entry] = members[i]
	}

	rank(entries)

	dropped := make([]interface{}, 0, len(entries)-r.maxEntries)
	for _, entry := range entries[r.maxEntries:] {
		dropped = append(dropped, byEntry[entry])
	}

	if err := r.client.ZRem(ctx, hallOfFameKey, dropped...).Err(); err != nil {
		return fmt.Errorf("failed to trim hall of fame: %w", err)
	}

	return nil
}

// load reads every raw member together with its decoded entry
func (r *redisRepository) load(ctx context.Context) ([]string, []*models.HallOfFameEntry, error) {
	members, err := r.client.ZRange(ctx, hallOfFameKey, 0, -1).Result()
	if err != nil && !errors.Is(err, redis.Nil) {
		return nil, nil, fmt.Errorf("failed to get hall of fame: %w", err)
	}

	entries := make([]*models.HallOfFameEntry, 0, len(members))
	for _, member := range members {
		var entry models.HallOfFameEntry
		if err := json.Unmarshal([]byte(member), &entry); err != nil {
			return nil, nil, fmt.Errorf("failed to unmarshal hall of fame entry: %w", err)
		}
		entries = append(entries, &entry)
	}

	return members, entries, nil
}

// GetTopEntries returns the ranked entries
func (r *redisRepository) GetTopEntries(ctx context.Context, input *GetTopEntriesInput) (*GetTopEntriesOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	_, entries, err := r.load(ctx)
	if err != nil {
		return nil, err
	}

	rank(entries)

	if input.Limit > 0 && len(entries) > input.Limit {
		entries = entries[:input.Limit]
	}

	return &GetTopEntriesOutput{
		Entries: entries,
	}, nil
}
