package entries

import (
	"fmt"
	"strings"
	"time"

	"github.com/Akkumon/HealBit/internal/cli"
	"github.com/Akkumon/HealBit/internal/constants"
	"github.com/Akkumon/HealBit/internal/models"
)

type ListCmd struct {
	Mood    string `short:"m" help:"Filter by mood."`
	Since   string `help:"Only show entries on or after this date (YYYY-MM-DD)."`
	Until   string `help:"Only show entries before this date (YYYY-MM-DD)."`
	ShowIDs bool   `help:"Show entry IDs." name:"show-ids"`
}

func (c *ListCmd) Validate() error {
	if c.Mood != "" {
		if _, err := models.ParseMood(c.Mood); err != nil {
			return err
		}
	}
	for _, d := range []string{c.Since, c.Until} {
		if d == "" {
			continue
		}
		if _, err := time.ParseInLocation(constants.DateFormat, d, time.Local); err != nil {
			return fmt.Errorf("invalid date format (expected YYYY-MM-DD): %w", err)
		}
	}
	return nil
}

func (c *ListCmd) Run(ctx *cli.Context) error {
	var (
		entries []models.JournalEntry
		err     error
	)

	switch {
	case c.Mood != "":
		mood, _ := models.ParseMood(c.Mood)
		entries, err = ctx.Store.GetEntriesByMood(mood)
	case c.Since != "" || c.Until != "":
		start := time.Time{}
		if c.Since != "" {
			start, _ = time.ParseInLocation(constants.DateFormat, c.Since, time.Local)
		}
		end := time.Now().AddDate(0, 0, 1)
		if c.Until != "" {
			end, _ = time.ParseInLocation(constants.DateFormat, c.Until, time.Local)
		}
		entries, err = ctx.Store.GetEntriesByDateRange(start, end)
	default:
		entries, err = ctx.Store.GetAllEntries()
	}
	if err != nil {
		return fmt.Errorf("failed to get entries: %w", err)
	}

	if len(entries) == 0 {
		fmt.Println("No reflections found")
		return nil
	}

	cli.SortByDate(entries)

	fmt.Println("Reflections:")
	for _, e := range entries {
		idStr := ""
		if c.ShowIDs {
			idStr = fmt.Sprintf(" (ID: %s)", e.ID)
		}

		audio := ""
		if e.AudioSource() != models.AudioNone {
			audio = fmt.Sprintf(", %ds audio", e.DurationSec)
		}

		fmt.Printf("  %s [%s]%s%s\n", cli.FormatDay(e.Date), e.Mood, idStr, audio)
		if e.Transcript != "" {
			fmt.Printf("      %s\n", truncate(e.Transcript, 70))
		}
		if len(e.Emotions) > 0 {
			fmt.Printf("      tags: %s\n", strings.Join(e.Emotions, ", "))
		}
	}

	return nil
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
