package system

import (
	"fmt"

	"github.com/Akkumon/HealBit/internal/cli"
	"github.com/Akkumon/HealBit/internal/models"
	"github.com/Akkumon/HealBit/internal/storage/sqlite"
)

type DoctorCmd struct{}

// Run performs health checks: storage accessibility, schema version, entry
// integrity, and cross-store reconciliation (entries claiming audio that has
// no blob, and blobs whose owning entry is gone).
func (c *DoctorCmd) Run(ctx *cli.Context) error {
	fmt.Println("Running healbit diagnostics...")

	entries, err := ctx.Store.GetAllEntries()
	if err != nil {
		fmt.Printf("  ✗ storage: %v\n", err)
		return err
	}
	fmt.Printf("  ✓ storage accessible (%d entries)\n", len(entries))

	if store, ok := ctx.Store.(*sqlite.Store); ok {
		version, err := store.SchemaVersion()
		if err != nil {
			fmt.Printf("  ✗ schema version: %v\n", err)
		} else {
			fmt.Printf("  ✓ schema version %d\n", version)
		}
	}

	invalid := 0
	for _, e := range entries {
		if e.ID == "" || e.Date.IsZero() || !e.Mood.Valid() {
			invalid++
		}
	}
	if invalid > 0 {
		fmt.Printf("  ! %d entries with missing id/date or unrecognized mood (skipped by analytics)\n", invalid)
	} else {
		fmt.Println("  ✓ all entries well-formed")
	}

	entryIDs := make(map[string]models.JournalEntry, len(entries))
	for _, e := range entries {
		entryIDs[e.ID] = e
	}

	blobIDs, err := ctx.Store.ListAudioIDs()
	if err != nil {
		return err
	}

	orphanedBlobs := 0
	for _, id := range blobIDs {
		if _, ok := entryIDs[id]; !ok {
			orphanedBlobs++
		}
	}

	blobSet := make(map[string]bool, len(blobIDs))
	for _, id := range blobIDs {
		blobSet[id] = true
	}
	missingBlobs := 0
	for _, e := range entries {
		if e.HasAudio && !e.EmbeddedAudio && !blobSet[e.ID] {
			missingBlobs++
		}
	}

	if orphanedBlobs == 0 && missingBlobs == 0 {
		fmt.Println("  ✓ entry and audio stores consistent")
	} else {
		if orphanedBlobs > 0 {
			fmt.Printf("  ! %d audio blobs with no owning entry\n", orphanedBlobs)
		}
		if missingBlobs > 0 {
			fmt.Printf("  ! %d entries claiming audio with no stored blob\n", missingBlobs)
		}
	}

	if len(entries) > 0 {
		sorted := make([]models.JournalEntry, len(entries))
		copy(sorted, entries)
		cli.SortByDate(sorted)
		fmt.Printf("  ✓ date range %s to %s\n",
			cli.FormatDay(sorted[0].Date), cli.FormatDay(sorted[len(sorted)-1].Date))
	}

	return nil
}
