// Package export serializes the full dataset to a portable JSON document and
// reads such documents back in.
package export

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/Akkumon/HealBit/internal/constants"
	"github.com/Akkumon/HealBit/internal/models"
	"github.com/Akkumon/HealBit/internal/storage"
)

// Mode selects how much of the dataset an export carries.
type Mode string

const (
	ModeFull         Mode = "full"
	ModeEntriesOnly  Mode = "entries-only"
	ModeMetadataOnly Mode = "metadata-only"
)

// ParseMode validates a mode string.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModeFull, ModeEntriesOnly, ModeMetadataOnly:
		return Mode(s), nil
	}
	return "", fmt.Errorf("invalid export mode: %q (expected full, entries-only, or metadata-only)", s)
}

// Document is the versioned export file format. Audio payloads never travel
// with it; entries keep their hasAudio flag so an import can tell what was
// lost.
type Document struct {
	Version    string                `json:"version"`
	ExportDate time.Time             `json:"exportDate"`
	Profile    *models.UserProfile   `json:"profile"`
	Entries    []models.JournalEntry `json:"entries"`
	Metadata   Metadata              `json:"metadata"`
}

// Metadata summarizes the dataset regardless of mode. Counts and date range
// always describe the full set, even when the entry array is omitted.
type Metadata struct {
	TotalEntries int    `json:"totalEntries"`
	DateRange    string `json:"dateRange"`
	ExportType   Mode   `json:"exportType"`
}

// Service composes exports and imports over the storage gateway.
type Service struct {
	store storage.Provider
}

func NewService(store storage.Provider) *Service {
	return &Service{store: store}
}

// Export builds the document for the given mode.
func (s *Service) Export(mode Mode, now time.Time) (*Document, error) {
	entries, err := s.store.GetAllEntries()
	if err != nil {
		return nil, fmt.Errorf("failed to read entries for export: %w", err)
	}
	if entries == nil {
		// The document's entries field is always an array, never null.
		entries = []models.JournalEntry{}
	}

	sort.Slice(entries, func(i, j int) bool { return entries[i].Date.Before(entries[j].Date) })

	dateRange := "No entries"
	if len(entries) > 0 {
		dateRange = fmt.Sprintf("%s to %s",
			entries[0].Date.Format(constants.DateFormat),
			entries[len(entries)-1].Date.Format(constants.DateFormat))
	}

	doc := &Document{
		Version:    constants.ExportVersion,
		ExportDate: now,
		Entries:    entries,
		Metadata: Metadata{
			TotalEntries: len(entries),
			DateRange:    dateRange,
			ExportType:   mode,
		},
	}

	if mode != ModeEntriesOnly {
		profile, err := s.store.GetProfile()
		if err != nil {
			return nil, fmt.Errorf("failed to read profile for export: %w", err)
		}
		doc.Profile = profile
	}

	if mode == ModeMetadataOnly {
		doc.Entries = []models.JournalEntry{}
	}

	return doc, nil
}

// WriteFile marshals the document into dir as healbit-backup-YYYY-MM-DD.json
// and returns the written path.
func (s *Service) WriteFile(doc *Document, dir string) (string, error) {
	if err := os.MkdirAll(dir, 0700); err != nil {
		return "", fmt.Errorf("failed to create export directory: %w", err)
	}

	name := fmt.Sprintf("%s%s%s",
		constants.ExportFilePrefix,
		doc.ExportDate.Format(constants.DateFormat),
		constants.ExportFileSuffix)
	path := filepath.Join(dir, name)

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal export: %w", err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return "", fmt.Errorf("failed to write export file: %w", err)
	}

	return path, nil
}

// ReadFile parses a previously exported document.
func ReadFile(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read export file: %w", err)
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse export file: %w", err)
	}
	if doc.Version == "" {
		return nil, fmt.Errorf("export file has no version field")
	}

	return &doc, nil
}

// Import loads a document's profile and entries into the stores, upserting by
// id, and returns the number of entries imported.
func (s *Service) Import(doc *Document) (int, error) {
	if doc.Profile != nil {
		if err := s.store.SaveProfile(*doc.Profile); err != nil {
			return 0, fmt.Errorf("failed to import profile: %w", err)
		}
	}

	imported := 0
	for _, entry := range doc.Entries {
		// Exports never carry audio, so an imported entry cannot recreate
		// its blob; drop the claim rather than fabricate a dangling one.
		entry.HasAudio = len(entry.Audio) > 0
		if err := s.store.SaveEntry(entry); err != nil {
			return imported, fmt.Errorf("failed to import entry %s: %w", entry.ID, err)
		}
		imported++
	}

	return imported, nil
}

// Purge irreversibly deletes all locally persisted application data.
func (s *Service) Purge() error {
	return s.store.Purge()
}
