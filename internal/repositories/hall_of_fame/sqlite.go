package hall_of_fame

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/KirkDiggler/kostka/internal/models"
	_ "modernc.org/sqlite"
)

// rankOrder mirrors less for the SQL backend
const rankOrder = "turn_count ASC, duration_ns ASC, score DESC, recorded_at ASC"

// SQLiteConfig holds configuration for the SQLite Hall of Fame repository
type SQLiteConfig struct {
	// Path is the database file, or ":memory:"
	Path string

	// MaxEntries is how many entries are kept
	MaxEntries int
}

// sqliteRepository implements the Repository interface using SQLite
type sqliteRepository struct {
	db         *sql.DB
	maxEntries int
}

// NewSQLite opens (or creates) the database and runs migrations
func NewSQLite(cfg *SQLiteConfig) (*sqliteRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Path == "" {
		return nil, errors.New("sqlite path cannot be empty")
	}

	db, err := sql.Open("sqlite", cfg.Path)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	// each :memory: connection is its own database
	if cfg.Path == ":memory:" {
		db.SetMaxOpenConns(1)
	} else if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL: %w", err)
	}

	maxEntries := cfg.MaxEntries
	if maxEntries <= 0 {
		maxEntries = DefaultMaxEntries
	}

	r := &sqliteRepository{
		db:         db,
		maxEntries: maxEntries,
	}
	if err := r.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return r, nil
}

func (r *sqliteRepository) migrate() error {
	_, err := r.db.Exec(`
		CREATE TABLE IF NOT EXISTS hall_of_fame (
			id           TEXT PRIMARY KEY,
			game_id      TEXT NOT NULL,
			player_name  TEXT NOT NULL,
			score        INTEGER NOT NULL,
			target_score INTEGER NOT NULL,
			turn_count   INTEGER NOT NULL,
			duration_ns  INTEGER NOT NULL,
			recorded_at  INTEGER NOT NULL
		);
	`)
	return err
}

// Close releases the database
func (r *sqliteRepository) Close() error {
	return r.db.Close()
}

// AddEntry inserts an entry and deletes everything ranked below maxEntries
func (r *sqliteRepository) AddEntry(ctx context.Context, input *AddEntryInput) error {
	if err := validateEntry(input); err != nil {
		return err
	}

	entry := input.Entry
	if entry.RecordedAt.IsZero() {
		entry.RecordedAt = time.Now()
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO hall_of_fame (id, game_id, player_name, score, target_score, turn_count, duration_ns, recorded_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		entry.ID, entry.GameID, entry.PlayerName, entry.Score, entry.TargetScore,
		entry.TurnCount, entry.Duration.Nanoseconds(), entry.RecordedAt.UnixNano(),
	); err != nil {
		return fmt.Errorf("failed to add hall of fame entry: %w", err)
	}

	if _, err := tx.ExecContext(ctx,
		`DELETE FROM hall_of_fame WHERE id NOT IN (
			SELECT id FROM hall_of_fame ORDER BY `+rankOrder+` LIMIT ?
		)`,
		r.maxEntries,
	); err != nil {
		return fmt.Errorf("failed to trim hall of fame: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit hall of fame entry: %w", err)
	}

	return nil
}

// GetTopEntries returns the ranked entries
func (r *sqliteRepository) GetTopEntries(ctx context.Context, input *GetTopEntriesInput) (*GetTopEntriesOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	limit := input.Limit
	if limit <= 0 {
		limit = -1
	}

	rows, err := r.db.QueryContext(ctx,
		`SELECT id, game_id, player_name, score, target_score, turn_count, duration_ns, recorded_at
		 FROM hall_of_fame ORDER BY `+rankOrder+` LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get hall of fame: %w", err)
	}
	defer rows.Close()

	entries := make([]*models.HallOfFameEntry, 0)
	for rows.Next() {
		var (
			entry      models.HallOfFameEntry
			durationNS int64
			recordedAt int64
		)
		if err := rows.Scan(&entry.ID, &entry.GameID, &entry.PlayerName, &entry.Score,
			&entry.TargetScore, &entry.TurnCount, &durationNS, &recordedAt); err != nil {
			return nil, fmt.Errorf("failed to scan hall of fame entry: %w", err)
		}
		entry.Duration = time.Duration(durationNS)
		entry.RecordedAt = time.Unix(0, recordedAt)
		entries = append(entries, &entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read hall of fame: %w", err)
	}

	return &GetTopEntriesOutput{
		Entries: entries,
	}, nil
}
