package vocabstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"subvocab/internal/services"
)

// ErrWordNotFound indicates a lookup by word text matched nothing.
var ErrWordNotFound = errors.New("word not found")

const wordColumns = "id, word, definition, difficulty, added_at"

func scanWord(scanner interface{ Scan(dest ...any) error }) (Word, error) {
	var (
		word       Word
		definition sql.NullString
		addedRaw   sql.NullString
	)
	if err := scanner.Scan(&word.ID, &word.Word, &definition, &word.Difficulty, &addedRaw); err != nil {
		return Word{}, err
	}
	word.Definition = definition.String
	if added, err := parseTimeString(addedRaw.String); err == nil {
		word.AddedAt = added
	}
	return word, nil
}

// ListWords returns every vocabulary word ordered alphabetically.
func (s *Store) ListWords(ctx context.Context) ([]Word, error) {
	ctx = ensureContext(ctx)
	rows, err := s.db.QueryContext(ctx,
		"SELECT "+wordColumns+" FROM vocabulary_words ORDER BY word")
	if err != nil {
		return nil, services.Wrap(services.ErrPersistence, "store", "list-words", "query", err)
	}
	defer rows.Close()

	var result []Word
	for rows.Next() {
		word, err := scanWord(rows)
		if err != nil {
			return nil, services.Wrap(services.ErrPersistence, "store", "list-words", "scan", err)
		}
		result = append(result, word)
	}
	if err := rows.Err(); err != nil {
		return nil, services.Wrap(services.ErrPersistence, "store", "list-words", "iterate", err)
	}
	return result, nil
}

// GetWord looks up one vocabulary word by its text.
func (s *Store) GetWord(ctx context.Context, text string) (Word, error) {
	ctx = ensureContext(ctx)
	row := s.db.QueryRowContext(ctx,
		"SELECT "+wordColumns+" FROM vocabulary_words WHERE word = ?", text)
	word, err := scanWord(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Word{}, fmt.Errorf("%w: %s", ErrWordNotFound, text)
	}
	if err != nil {
		return Word{}, services.Wrap(services.ErrPersistence, "store", "get-word", "scan", err)
	}
	return word, nil
}

// WordsForVideo returns the words saved for one video, alphabetically.
func (s *Store) WordsForVideo(ctx context.Context, videoID string) ([]Word, error) {
	ctx = ensureContext(ctx)
	rows, err := s.db.QueryContext(ctx, `
		SELECT DISTINCT w.id, w.word, w.definition, w.difficulty, w.added_at
		FROM vocabulary_words w
		JOIN occurrences o ON o.word_id = w.id
		WHERE o.video_id = ?
		ORDER BY w.word`, videoID)
	if err != nil {
		return nil, services.Wrap(services.ErrPersistence, "store", "words-for-video", "query", err)
	}
	defer rows.Close()

	var result []Word
	for rows.Next() {
		word, err := scanWord(rows)
		if err != nil {
			return nil, services.Wrap(services.ErrPersistence, "store", "words-for-video", "scan", err)
		}
		result = append(result, word)
	}
	if err := rows.Err(); err != nil {
		return nil, services.Wrap(services.ErrPersistence, "store", "words-for-video", "iterate", err)
	}
	return result, nil
}

// OccurrencesForWord returns every recorded occurrence of a word with its
// source video title, newest first.
func (s *Store) OccurrencesForWord(ctx context.Context, text string) ([]Occurrence, error) {
	ctx = ensureContext(ctx)
	word, err := s.GetWord(ctx, text)
	if err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT o.id, o.word_id, o.video_id, COALESCE(v.title, ''), o.original_sentence, o.translated_sentence, o.created_at
		FROM occurrences o
		LEFT JOIN videos v ON v.id = o.video_id
		WHERE o.word_id = ?
		ORDER BY o.created_at DESC, o.id DESC`, word.ID)
	if err != nil {
		return nil, services.Wrap(services.ErrPersistence, "store", "occurrences", "query", err)
	}
	defer rows.Close()

	var result []Occurrence
	for rows.Next() {
		var (
			occ        Occurrence
			original   sql.NullString
			translated sql.NullString
			createdRaw sql.NullString
		)
		if err := rows.Scan(&occ.ID, &occ.WordID, &occ.VideoID, &occ.VideoTitle, &original, &translated, &createdRaw); err != nil {
			return nil, services.Wrap(services.ErrPersistence, "store", "occurrences", "scan", err)
		}
		occ.OriginalSentence = original.String
		occ.TranslatedSentence = translated.String
		if created, err := parseTimeString(createdRaw.String); err == nil {
			occ.CreatedAt = created
		}
		result = append(result, occ)
	}
	if err := rows.Err(); err != nil {
		return nil, services.Wrap(services.ErrPersistence, "store", "occurrences", "iterate", err)
	}
	return result, nil
}

// SetDifficulty updates a word's difficulty rating (0-4).
func (s *Store) SetDifficulty(ctx context.Context, text string, difficulty int) error {
	ctx = ensureContext(ctx)
	if difficulty < 0 || difficulty > 4 {
		return fmt.Errorf("difficulty must be between 0 and 4, got %d", difficulty)
	}
	res, err := s.db.ExecContext(ctx,
		"UPDATE vocabulary_words SET difficulty = ? WHERE word = ?", difficulty, text)
	if err != nil {
		return services.Wrap(services.ErrPersistence, "store", "set-difficulty", "update", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return services.Wrap(services.ErrPersistence, "store", "set-difficulty", "rows affected", err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: %s", ErrWordNotFound, text)
	}
	return nil
}

// DeleteWord removes a word and all of its occurrences. The occurrence rows
// are deleted explicitly rather than relying on cascade behavior.
func (s *Store) DeleteWord(ctx context.Context, text string) error {
	ctx = ensureContext(ctx)
	word, err := s.GetWord(ctx, text)
	if err != nil {
		return err
	}

	return retryOnBusy(ctx, func() error {
		tx, err := s.db.BeginTx(ctx, nil)
		if err != nil {
			return services.Wrap(services.ErrPersistence, "store", "delete-word", "begin tx", err)
		}
		defer func() { _ = tx.Rollback() }()

		if _, err := tx.ExecContext(ctx, "DELETE FROM occurrences WHERE word_id = ?", word.ID); err != nil {
			return services.Wrap(services.ErrPersistence, "store", "delete-word", "delete occurrences", err)
		}
		if _, err := tx.ExecContext(ctx, "DELETE FROM vocabulary_words WHERE id = ?", word.ID); err != nil {
			return services.Wrap(services.ErrPersistence, "store", "delete-word", "delete word", err)
		}
		if err := tx.Commit(); err != nil {
			return services.Wrap(services.ErrPersistence, "store", "delete-word", "commit", err)
		}
		return nil
	})
}

// Video returns the stored record for a processed video.
func (s *Store) Video(ctx context.Context, videoID string) (Video, error) {
	ctx = ensureContext(ctx)
	var (
		video      Video
		title      sql.NullString
		subtitle   sql.NullString
		createdRaw sql.NullString
	)
	err := s.db.QueryRowContext(ctx,
		"SELECT id, title, subtitle_text, created_at FROM videos WHERE id = ?", videoID,
	).Scan(&video.ID, &title, &subtitle, &createdRaw)
	if errors.Is(err, sql.ErrNoRows) {
		return Video{}, fmt.Errorf("video not found: %s", videoID)
	}
	if err != nil {
		return Video{}, services.Wrap(services.ErrPersistence, "store", "get-video", "scan", err)
	}
	video.Title = title.String
	video.SubtitleText = subtitle.String
	if created, err := parseTimeString(createdRaw.String); err == nil {
		video.CreatedAt = created
	}
	return video, nil
}

// Stats reports row counts for status output.
func (s *Store) Stats(ctx context.Context) (Stats, error) {
	ctx = ensureContext(ctx)
	var stats Stats
	queries := []struct {
		query string
		dest  *int
	}{
		{"SELECT COUNT(1) FROM videos", &stats.Videos},
		{"SELECT COUNT(1) FROM vocabulary_words", &stats.Words},
		{"SELECT COUNT(1) FROM occurrences", &stats.Occurrences},
	}
	for _, q := range queries {
		if err := s.db.QueryRowContext(ctx, q.query).Scan(q.dest); err != nil {
			return Stats{}, services.Wrap(services.ErrPersistence, "store", "stats", "count", err)
		}
	}
	return stats, nil
}
