package sqlite

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Akkumon/HealBit/internal/logger"
	"github.com/Akkumon/HealBit/internal/models"
	"github.com/Akkumon/HealBit/internal/storage"
)

const entryColumns = `id, date, mood, transcript, transcript_confidence, emotions,
	duration_seconds, audio, has_audio, processing_complete, created_at, updated_at`

// SaveEntry upserts the entry record and its audio payload in one
// transaction: the entry write is issued first, then the blob write under the
// same key. Either both land or neither does.
func (s *Store) SaveEntry(entry models.JournalEntry) error {
	if err := entry.Validate(); err != nil {
		return fmt.Errorf("invalid entry: %w", err)
	}

	emotionsJSON, err := json.Marshal(entry.Emotions)
	if err != nil {
		return fmt.Errorf("failed to marshal emotions: %w", err)
	}

	now := time.Now().UTC()
	createdAt := entry.CreatedAt
	if createdAt.IsZero() {
		createdAt = now
	}

	hasAudio := entry.HasAudio || len(entry.Audio) > 0

	tx, err := s.db.Begin()
	if err != nil {
		return storage.WrapIO("save entry", err)
	}
	defer tx.Rollback()

	// New writes always use the blob-store generation; the embedded audio
	// column stays NULL and only ever carries pre-migration rows.
	_, err = tx.Exec(`
		INSERT OR REPLACE INTO journal_entries (
			id, date, mood, transcript, transcript_confidence, emotions,
			duration_seconds, audio, has_audio, processing_complete, created_at, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, NULL, ?, ?, ?, ?)`,
		entry.ID, entry.Date.UTC().Format(time.RFC3339), string(entry.Mood),
		entry.Transcript, entry.TranscriptConfidence, string(emotionsJSON),
		entry.DurationSec, hasAudio, entry.ProcessingComplete,
		createdAt.Format(time.RFC3339), now.Format(time.RFC3339),
	)
	if err != nil {
		return storage.WrapIO("save entry", err)
	}

	if len(entry.Audio) > 0 {
		_, err = tx.Exec(`
			INSERT OR REPLACE INTO audio_blobs (id, data, created_at_ms)
			VALUES (?, ?, ?)`,
			entry.ID, entry.Audio, now.UnixMilli(),
		)
		if err != nil {
			return storage.WrapIO("save audio", err)
		}
	} else if !hasAudio {
		// An upsert that drops the audio claim retires any blob stored
		// under this id; entry and blob always move together.
		if _, err := tx.Exec(`DELETE FROM audio_blobs WHERE id = ?`, entry.ID); err != nil {
			return storage.WrapIO("delete audio", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return storage.WrapIO("save entry", err)
	}
	return nil
}

// GetEntry returns the entry with the given id, or nil when absent. Audio is
// resolved from whichever schema generation holds it: the legacy embedded
// column or the blob store.
func (s *Store) GetEntry(id string) (*models.JournalEntry, error) {
	row := s.db.QueryRow(`SELECT `+entryColumns+` FROM journal_entries WHERE id = ?`, id)

	entry, err := scanEntry(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, storage.WrapIO("get entry", err)
	}

	if entry.HasAudio && !entry.EmbeddedAudio {
		audio, err := s.GetAudio(id)
		if err != nil {
			return nil, err
		}
		if audio == nil {
			// Discoverable partial state: the entry claims audio but the
			// blob is gone. Surface the record anyway.
			logger.Warn("entry has has_audio set but no blob", "id", id)
		}
		entry.Audio = audio
	}

	return entry, nil
}

// GetAllEntries returns every entry, unordered. Audio payloads are not
// resolved; callers working with a single entry use GetEntry.
func (s *Store) GetAllEntries() ([]models.JournalEntry, error) {
	return s.queryEntries(`SELECT ` + entryColumns + ` FROM journal_entries`)
}

// GetEntriesByMood returns entries with the given mood, via the mood index.
func (s *Store) GetEntriesByMood(mood models.Mood) ([]models.JournalEntry, error) {
	return s.queryEntries(`SELECT `+entryColumns+` FROM journal_entries WHERE mood = ?`, string(mood))
}

// GetEntriesByDateRange returns entries with start <= date < end, via the
// date index. Dates are stored as UTC RFC3339 strings, which order
// lexicographically.
func (s *Store) GetEntriesByDateRange(start, end time.Time) ([]models.JournalEntry, error) {
	return s.queryEntries(
		`SELECT `+entryColumns+` FROM journal_entries WHERE date >= ? AND date < ?`,
		start.UTC().Format(time.RFC3339), end.UTC().Format(time.RFC3339),
	)
}

// UpdateTranscript replaces the transcript of an existing entry. A manual
// edit is an explicit override, so confidence is forced to 1.0.
func (s *Store) UpdateTranscript(id, transcript string) error {
	res, err := s.db.Exec(`
		UPDATE journal_entries
		SET transcript = ?, transcript_confidence = 1.0, updated_at = ?
		WHERE id = ?`,
		transcript, time.Now().UTC().Format(time.RFC3339), id,
	)
	if err != nil {
		return storage.WrapIO("update transcript", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return storage.WrapIO("update transcript", err)
	}
	if n == 0 {
		return fmt.Errorf("entry with id %s not found", id)
	}
	return nil
}

// DeleteEntry removes the entry and its blob. Absence in either store is not
// an error, so a second delete of the same id succeeds.
func (s *Store) DeleteEntry(id string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return storage.WrapIO("delete entry", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM journal_entries WHERE id = ?`, id); err != nil {
		return storage.WrapIO("delete entry", err)
	}
	if _, err := tx.Exec(`DELETE FROM audio_blobs WHERE id = ?`, id); err != nil {
		return storage.WrapIO("delete audio", err)
	}

	if err := tx.Commit(); err != nil {
		return storage.WrapIO("delete entry", err)
	}
	return nil
}

// ClearAllEntries empties both the entry store and the blob store.
func (s *Store) ClearAllEntries() error {
	tx, err := s.db.Begin()
	if err != nil {
		return storage.WrapIO("clear entries", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM journal_entries`); err != nil {
		return storage.WrapIO("clear entries", err)
	}
	if _, err := tx.Exec(`DELETE FROM audio_blobs`); err != nil {
		return storage.WrapIO("clear audio", err)
	}

	if err := tx.Commit(); err != nil {
		return storage.WrapIO("clear entries", err)
	}
	return nil
}

func (s *Store) queryEntries(query string, args ...any) ([]models.JournalEntry, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, storage.WrapIO("query entries", err)
	}
	defer rows.Close()

	var entries []models.JournalEntry
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			return nil, storage.WrapIO("scan entry", err)
		}
		entries = append(entries, *entry)
	}
	if err := rows.Err(); err != nil {
		return nil, storage.WrapIO("query entries", err)
	}

	return entries, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEntry(row rowScanner) (*models.JournalEntry, error) {
	var e models.JournalEntry
	var date, mood, emotionsJSON, createdAt, updatedAt string
	var audio []byte

	err := row.Scan(
		&e.ID, &date, &mood, &e.Transcript, &e.TranscriptConfidence, &emotionsJSON,
		&e.DurationSec, &audio, &e.HasAudio, &e.ProcessingComplete, &createdAt, &updatedAt,
	)
	if err != nil {
		return nil, err
	}

	// Moods outside the enumeration are kept as-is on read; aggregation
	// skips them rather than failing.
	e.Mood = models.Mood(mood)

	if e.Date, err = time.Parse(time.RFC3339, date); err != nil {
		return nil, fmt.Errorf("invalid date for entry %s: %w", e.ID, err)
	}
	if e.CreatedAt, err = time.Parse(time.RFC3339, createdAt); err != nil {
		return nil, fmt.Errorf("invalid created_at for entry %s: %w", e.ID, err)
	}
	if e.UpdatedAt, err = time.Parse(time.RFC3339, updatedAt); err != nil {
		return nil, fmt.Errorf("invalid updated_at for entry %s: %w", e.ID, err)
	}

	if emotionsJSON != "" {
		if err := json.Unmarshal([]byte(emotionsJSON), &e.Emotions); err != nil {
			return nil, fmt.Errorf("invalid emotions for entry %s: %w", e.ID, err)
		}
	}

	if len(audio) > 0 {
		// First-generation row: payload embedded in the entry itself.
		e.Audio = audio
		e.EmbeddedAudio = true
		e.HasAudio = true
	}

	return &e, nil
}
