package vocabstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"subvocab/internal/config"
	"subvocab/internal/services"
)

// Store manages vocabulary persistence backed by SQLite.
type Store struct {
	db                *sql.DB
	path              string
	defaultDifficulty int
}

const (
	sqliteBusyCode          = 5
	busyRetryAttempts       = 5
	busyRetryInitialBackoff = 10 * time.Millisecond
	busyRetryMaxBackoff     = 200 * time.Millisecond
)

// Open initializes or connects to the vocabulary database.
func Open(cfg *config.Config) (*Store, error) {
	if err := cfg.EnsureDirectories(); err != nil {
		return nil, fmt.Errorf("ensure directories: %w", err)
	}

	dbPath := cfg.DatabasePath()
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA foreign_keys = ON",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	store := &Store{db: db, path: dbPath, defaultDifficulty: cfg.Vocabulary.DefaultDifficulty}
	if err := store.initSchema(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}

	return store, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

func ensureContext(ctx context.Context) context.Context {
	if ctx != nil {
		return ctx
	}
	return context.Background()
}

func isSQLiteBusy(err error) bool {
	if err == nil {
		return false
	}
	var coder interface{ Code() int }
	if errors.As(err, &coder) && coder.Code() == sqliteBusyCode {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "SQLITE_BUSY") || strings.Contains(msg, "database is locked")
}

func retryOnBusy(ctx context.Context, op func() error) error {
	delay := busyRetryInitialBackoff
	var lastErr error
	for attempt := 0; attempt < busyRetryAttempts; attempt++ {
		lastErr = op()
		if lastErr == nil {
			return nil
		}
		if !isSQLiteBusy(lastErr) || attempt == busyRetryAttempts-1 {
			break
		}
		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return ctx.Err()
		}
		if next := delay * 2; next <= busyRetryMaxBackoff {
			delay = next
		}
	}
	return lastErr
}

// AlreadyProcessed reports whether any vocabulary has been saved for the
// video. Used as the fast path that skips network work on repeat runs.
func (s *Store) AlreadyProcessed(ctx context.Context, videoID string) (bool, error) {
	ctx = ensureContext(ctx)
	var count int
	err := s.db.QueryRowContext(ctx,
		"SELECT COUNT(1) FROM occurrences WHERE video_id = ?", videoID,
	).Scan(&count)
	if err != nil {
		return false, services.Wrap(services.ErrPersistence, "store", "already-processed", "count occurrences", err)
	}
	return count > 0, nil
}

// SaveBatch records a processed video and its enriched words in a single
// transaction. Words already known from earlier videos are reused; only a new
// occurrence row is added for them. The video row is upserted so re-running
// with a fresher transcript updates the cached text.
func (s *Store) SaveBatch(ctx context.Context, video Video, entries []Entry) error {
	ctx = ensureContext(ctx)
	if strings.TrimSpace(video.ID) == "" {
		return services.Wrap(services.ErrPersistence, "store", "save", "video id required", nil)
	}

	now := time.Now().UTC().Format(time.RFC3339Nano)

	return retryOnBusy(ctx, func() error {
		tx, err := s.db.BeginTx(ctx, nil)
		if err != nil {
			return services.Wrap(services.ErrPersistence, "store", "save", "begin tx", err)
		}
		defer func() { _ = tx.Rollback() }()

		if _, err := tx.ExecContext(ctx, `
			INSERT INTO videos (id, title, subtitle_text, created_at)
			VALUES (?, ?, ?, ?)
			ON CONFLICT(id) DO UPDATE SET
				title = excluded.title,
				subtitle_text = excluded.subtitle_text`,
			video.ID, nullableString(video.Title), nullableString(video.SubtitleText), now,
		); err != nil {
			return services.Wrap(services.ErrPersistence, "store", "save", "upsert video", err)
		}

		for _, entry := range entries {
			word := strings.ToLower(strings.TrimSpace(entry.Word))
			if word == "" {
				continue
			}

			// INSERT OR IGNORE plus SELECT closes the race with concurrent
			// writers without needing an upfront existence check.
			if _, err := tx.ExecContext(ctx, `
				INSERT OR IGNORE INTO vocabulary_words (word, definition, difficulty, added_at)
				VALUES (?, ?, ?, ?)`,
				word, nullableString(entry.Definition), s.defaultDifficulty, now,
			); err != nil {
				return services.Wrap(services.ErrPersistence, "store", "save", fmt.Sprintf("insert word %q", word), err)
			}

			var wordID int64
			if err := tx.QueryRowContext(ctx,
				"SELECT id FROM vocabulary_words WHERE word = ?", word,
			).Scan(&wordID); err != nil {
				return services.Wrap(services.ErrPersistence, "store", "save", fmt.Sprintf("lookup word %q", word), err)
			}

			if _, err := tx.ExecContext(ctx, `
				INSERT INTO occurrences (word_id, video_id, original_sentence, translated_sentence, created_at)
				VALUES (?, ?, ?, ?, ?)`,
				wordID, video.ID, nullableString(entry.OriginalSentence), nullableString(entry.TranslatedSentence), now,
			); err != nil {
				return services.Wrap(services.ErrPersistence, "store", "save", fmt.Sprintf("insert occurrence for %q", word), err)
			}
		}

		if err := tx.Commit(); err != nil {
			return services.Wrap(services.ErrPersistence, "store", "save", "commit", err)
		}
		return nil
	})
}

func nullableString(value string) any {
	if value == "" {
		return nil
	}
	return value
}

func parseTimeString(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, errors.New("empty")
	}
	if t, err := time.Parse(time.RFC3339Nano, value); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02 15:04:05", value)
}
