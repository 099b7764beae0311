package sqlite

import (
	"database/sql"
	"errors"

	"github.com/Akkumon/HealBit/internal/storage"
)

// GetAudio returns the blob-store payload for the given entry id, or nil when
// no blob exists.
func (s *Store) GetAudio(id string) ([]byte, error) {
	var data []byte
	err := s.db.QueryRow(`SELECT data FROM audio_blobs WHERE id = ?`, id).Scan(&data)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, storage.WrapIO("get audio", err)
	}
	return data, nil
}

// ListAudioIDs returns the ids of every stored blob. Used by diagnostics to
// find blobs whose owning entry is gone.
func (s *Store) ListAudioIDs() ([]string, error) {
	rows, err := s.db.Query(`SELECT id FROM audio_blobs`)
	if err != nil {
		return nil, storage.WrapIO("list audio", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, storage.WrapIO("list audio", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, storage.WrapIO("list audio", err)
	}

	return ids, nil
}
