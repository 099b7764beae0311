package sqlite

import (
	"database/sql"
	"errors"

	"github.com/Akkumon/HealBit/internal/storage"
)

// GetSetting returns the value for a settings key, or "" when unset.
func (s *Store) GetSetting(key string) (string, error) {
	var value string
	err := s.db.QueryRow(`SELECT value FROM settings WHERE key = ?`, key).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", nil
		}
		return "", storage.WrapIO("get setting", err)
	}
	return value, nil
}

func (s *Store) SetSetting(key, value string) error {
	_, err := s.db.Exec(`INSERT OR REPLACE INTO settings (key, value) VALUES (?, ?)`, key, value)
	return storage.WrapIO("set setting", err)
}

// DeleteSetting removes a key. Deleting an absent key succeeds.
func (s *Store) DeleteSetting(key string) error {
	_, err := s.db.Exec(`DELETE FROM settings WHERE key = ?`, key)
	return storage.WrapIO("delete setting", err)
}

// ListSettings returns every stored key-value pair.
func (s *Store) ListSettings() (map[string]string, error) {
	rows, err := s.db.Query(`SELECT key, value FROM settings`)
	if err != nil {
		return nil, storage.WrapIO("list settings", err)
	}
	defer rows.Close()

	settings := make(map[string]string)
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return nil, storage.WrapIO("list settings", err)
		}
		settings[key] = value
	}
	if err := rows.Err(); err != nil {
		return nil, storage.WrapIO("list settings", err)
	}

	return settings, nil
}
