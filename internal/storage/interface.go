package storage

import (
	"time"

	"github.com/Akkumon/HealBit/internal/models"
)

// Provider is the single authority over the local database: connection
// lifecycle, schema upgrades, and every read/write against the entry store,
// the audio blob store, the settings area, and the profile row.
//
// Lookups for absent keys return nil results, not errors. All other failures
// surface as the typed errors in this package.
type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Entries. SaveEntry upserts the entry record and, when the entry
	// carries an audio payload, writes the blob under the same id in the
	// same transaction. GetEntry resolves the blob back into the entry.
	SaveEntry(entry models.JournalEntry) error
	GetEntry(id string) (*models.JournalEntry, error)
	GetAllEntries() ([]models.JournalEntry, error)
	GetEntriesByMood(mood models.Mood) ([]models.JournalEntry, error)
	GetEntriesByDateRange(start, end time.Time) ([]models.JournalEntry, error)
	UpdateTranscript(id, transcript string) error
	DeleteEntry(id string) error
	ClearAllEntries() error

	// Audio blobs. Lifecycle is bound to the owning entry; these exist for
	// the gateway's own composition and for reconciliation checks.
	GetAudio(id string) ([]byte, error)
	ListAudioIDs() ([]string, error)

	// Profile
	GetProfile() (*models.UserProfile, error)
	SaveProfile(profile models.UserProfile) error

	// Settings
	SettingsStore

	// Purge removes every row in the application's namespace across all
	// stores. Irreversible.
	Purge() error

	// Utils
	GetConfigPath() string
}

// SettingsStore is the flat string-keyed settings area, namespaced by the
// healbit- prefix. Injected explicitly wherever last-mood/name/session
// handoff values are needed.
type SettingsStore interface {
	GetSetting(key string) (string, error)
	SetSetting(key, value string) error
	DeleteSetting(key string) error
	ListSettings() (map[string]string, error)
}
