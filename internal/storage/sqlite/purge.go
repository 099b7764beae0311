package sqlite

import (
	"github.com/Akkumon/HealBit/internal/constants"
	"github.com/Akkumon/HealBit/internal/storage"
)

// Purge irreversibly deletes every row in the application's namespace: all
// entries, all audio blobs, every namespaced setting, and the profile. Each
// area is deleted independently so a failure partway leaves prior areas
// cleared; the error reports exactly which area failed, and re-running the
// purge is safe (deletion is idempotent per key).
func (s *Store) Purge() error {
	steps := []struct {
		name string
		stmt string
		args []any
	}{
		{"entries", `DELETE FROM journal_entries`, nil},
		{"audio", `DELETE FROM audio_blobs`, nil},
		{"settings", `DELETE FROM settings WHERE key LIKE ?`, []any{constants.SettingsPrefix + "%"}},
		{"profile", `DELETE FROM user_profile`, nil},
	}

	var completed []string
	for _, step := range steps {
		if _, err := s.db.Exec(step.stmt, step.args...); err != nil {
			if len(completed) == 0 {
				return storage.WrapIO("purge "+step.name, err)
			}
			return &storage.PartialWriteError{Completed: completed, Failed: step.name, Err: err}
		}
		completed = append(completed, step.name)
	}

	return nil
}
