package export

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/Akkumon/HealBit/internal/models"
	"github.com/Akkumon/HealBit/internal/storage/sqlite"
)

func setupTestService(t *testing.T) (*Service, *sqlite.Store) {
	t.Helper()

	store := sqlite.NewStore(filepath.Join(t.TempDir(), "test.db"))
	if err := store.Init(); err != nil {
		t.Fatalf("failed to initialize test store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	return NewService(store), store
}

func seedEntries(t *testing.T, store *sqlite.Store) {
	t.Helper()

	dates := []time.Time{
		time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC),
		time.Date(2025, 6, 3, 9, 0, 0, 0, time.UTC),
		time.Date(2025, 6, 5, 9, 0, 0, 0, time.UTC),
	}
	moods := []models.Mood{models.MoodJoy, models.MoodSadness, models.MoodCalm}

	for i, date := range dates {
		entry := models.JournalEntry{
			ID:         "entry-" + string(rune('a'+i)),
			Date:       date,
			Mood:       moods[i],
			Transcript: "reflection",
		}
		if i == 0 {
			entry.Audio = []byte("audio-payload")
		}
		if err := store.SaveEntry(entry); err != nil {
			t.Fatalf("failed to seed entry: %v", err)
		}
	}

	profile := models.UserProfile{Name: "Ada", JoinDate: dates[0], TotalEntries: 3}
	if err := store.SaveProfile(profile); err != nil {
		t.Fatalf("failed to seed profile: %v", err)
	}
}

func TestExport_Full(t *testing.T) {
	svc, store := setupTestService(t)
	seedEntries(t, store)

	now := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)
	doc, err := svc.Export(ModeFull, now)
	if err != nil {
		t.Fatalf("Export failed: %v", err)
	}

	if doc.Version != "1.0.0" {
		t.Errorf("expected version 1.0.0, got %q", doc.Version)
	}
	if len(doc.Entries) != 3 {
		t.Errorf("expected 3 entries, got %d", len(doc.Entries))
	}
	if doc.Profile == nil || doc.Profile.Name != "Ada" {
		t.Errorf("expected profile in full export, got %+v", doc.Profile)
	}
	if doc.Metadata.TotalEntries != 3 {
		t.Errorf("expected metadata count 3, got %d", doc.Metadata.TotalEntries)
	}
	if doc.Metadata.DateRange != "2025-06-01 to 2025-06-05" {
		t.Errorf("unexpected date range: %q", doc.Metadata.DateRange)
	}

	// Entries are ordered by date ascending.
	for i := 1; i < len(doc.Entries); i++ {
		if doc.Entries[i].Date.Before(doc.Entries[i-1].Date) {
			t.Error("entries not sorted by date")
		}
	}
}

func TestExport_EntriesOnlyOmitsProfile(t *testing.T) {
	svc, store := setupTestService(t)
	seedEntries(t, store)

	doc, err := svc.Export(ModeEntriesOnly, time.Now())
	if err != nil {
		t.Fatalf("Export failed: %v", err)
	}
	if doc.Profile != nil {
		t.Errorf("expected no profile in entries-only export, got %+v", doc.Profile)
	}
	if len(doc.Entries) != 3 {
		t.Errorf("expected 3 entries, got %d", len(doc.Entries))
	}
}

func TestExport_MetadataOnly(t *testing.T) {
	svc, store := setupTestService(t)
	seedEntries(t, store)

	doc, err := svc.Export(ModeMetadataOnly, time.Now())
	if err != nil {
		t.Fatalf("Export failed: %v", err)
	}
	if len(doc.Entries) != 0 {
		t.Errorf("expected no entries in metadata-only export, got %d", len(doc.Entries))
	}
	// Metadata still describes the full dataset.
	if doc.Metadata.TotalEntries != 3 {
		t.Errorf("expected metadata count 3, got %d", doc.Metadata.TotalEntries)
	}
	if doc.Metadata.DateRange != "2025-06-01 to 2025-06-05" {
		t.Errorf("unexpected date range: %q", doc.Metadata.DateRange)
	}
}

func TestExport_EmptyDataset(t *testing.T) {
	svc, _ := setupTestService(t)

	doc, err := svc.Export(ModeFull, time.Now())
	if err != nil {
		t.Fatalf("Export failed: %v", err)
	}
	if doc.Metadata.DateRange != "No entries" {
		t.Errorf("expected 'No entries' range, got %q", doc.Metadata.DateRange)
	}
	if doc.Metadata.TotalEntries != 0 {
		t.Errorf("expected 0 total entries, got %d", doc.Metadata.TotalEntries)
	}
	if doc.Entries == nil {
		t.Error("expected empty entries array, got nil")
	}

	data, err := json.Marshal(doc)
	if err != nil {
		t.Fatalf("failed to marshal document: %v", err)
	}
	if !strings.Contains(string(data), `"entries":[]`) {
		t.Errorf("empty export must serialize entries as an array, got: %s", data)
	}
}

func TestWriteFile_NamesAndExcludesAudio(t *testing.T) {
	svc, store := setupTestService(t)
	seedEntries(t, store)

	now := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)
	doc, err := svc.Export(ModeFull, now)
	if err != nil {
		t.Fatalf("Export failed: %v", err)
	}

	dir := t.TempDir()
	path, err := svc.WriteFile(doc, dir)
	if err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	if filepath.Base(path) != "healbit-backup-2025-06-10.json" {
		t.Errorf("unexpected export filename: %s", filepath.Base(path))
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read export file: %v", err)
	}
	if strings.Contains(string(data), "audio-payload") {
		t.Error("audio payload leaked into export file")
	}

	var parsed map[string]any
	if err := json.Unmarshal(data, &parsed); err != nil {
		t.Fatalf("export file is not valid JSON: %v", err)
	}
}

func TestImport_RoundTrip(t *testing.T) {
	svc, store := setupTestService(t)
	seedEntries(t, store)

	doc, err := svc.Export(ModeFull, time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("Export failed: %v", err)
	}
	path, err := svc.WriteFile(doc, t.TempDir())
	if err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	// Fresh database on the receiving side.
	destSvc, destStore := setupTestService(t)

	read, err := ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	imported, err := destSvc.Import(read)
	if err != nil {
		t.Fatalf("Import failed: %v", err)
	}
	if imported != 3 {
		t.Errorf("expected 3 entries imported, got %d", imported)
	}

	entries, err := destStore.GetAllEntries()
	if err != nil {
		t.Fatalf("GetAllEntries failed: %v", err)
	}
	if len(entries) != 3 {
		t.Errorf("expected 3 entries after import, got %d", len(entries))
	}

	// The audio blob never traveled, so the imported entry must not claim it.
	got, err := destStore.GetEntry("entry-a")
	if err != nil {
		t.Fatalf("GetEntry failed: %v", err)
	}
	if got.HasAudio {
		t.Error("imported entry claims audio that was never exported")
	}

	profile, err := destStore.GetProfile()
	if err != nil {
		t.Fatalf("GetProfile failed: %v", err)
	}
	if profile == nil || profile.Name != "Ada" {
		t.Errorf("profile not imported: %+v", profile)
	}
}

func TestImport_OverExistingDataDropsStaleBlobs(t *testing.T) {
	svc, store := setupTestService(t)
	seedEntries(t, store)

	doc, err := svc.Export(ModeFull, time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("Export failed: %v", err)
	}

	// Importing the backup into the same database upserts every entry
	// without audio; the previously stored blob must not linger.
	if _, err := svc.Import(doc); err != nil {
		t.Fatalf("Import failed: %v", err)
	}

	ids, err := store.ListAudioIDs()
	if err != nil {
		t.Fatalf("ListAudioIDs failed: %v", err)
	}
	if len(ids) != 0 {
		t.Errorf("expected no blobs after audio-less reimport, got %v", ids)
	}

	got, err := store.GetEntry("entry-a")
	if err != nil {
		t.Fatalf("GetEntry failed: %v", err)
	}
	if got.HasAudio || got.AudioSource() != models.AudioNone {
		t.Errorf("reimported entry still claims audio: %+v", got)
	}
}

func TestReadFile_RejectsUnversioned(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(path, []byte(`{"entries": []}`), 0600); err != nil {
		t.Fatalf("failed to write test file: %v", err)
	}

	if _, err := ReadFile(path); err == nil {
		t.Error("expected error for export file without version")
	}
}

func TestParseMode(t *testing.T) {
	for _, valid := range []string{"full", "entries-only", "metadata-only"} {
		if _, err := ParseMode(valid); err != nil {
			t.Errorf("expected %q to parse, got %v", valid, err)
		}
	}
	if _, err := ParseMode("partial"); err == nil {
		t.Error("expected error for unknown mode")
	}
}

func TestPurgeDelegates(t *testing.T) {
	svc, store := setupTestService(t)
	seedEntries(t, store)

	if err := svc.Purge(); err != nil {
		t.Fatalf("Purge failed: %v", err)
	}

	entries, err := store.GetAllEntries()
	if err != nil {
		t.Fatalf("GetAllEntries failed: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("expected all entries purged, got %d", len(entries))
	}
}
