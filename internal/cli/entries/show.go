package entries

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/Akkumon/HealBit/internal/cli"
	"github.com/Akkumon/HealBit/internal/models"
)

type ShowCmd struct {
	ID         string `arg:"" help:"Entry ID."`
	AudioOut   string `help:"Write the entry's audio payload to this file."`
	Transcript bool   `help:"Print the full transcript only."`
}

func (c *ShowCmd) Run(ctx *cli.Context) error {
	entry, err := ctx.Store.GetEntry(c.ID)
	if err != nil {
		return err
	}
	if entry == nil {
		fmt.Printf("No reflection found with ID %s\n", c.ID)
		return nil
	}

	if c.Transcript {
		fmt.Println(entry.Transcript)
		return nil
	}

	fmt.Printf("Reflection %s\n", entry.ID)
	fmt.Printf("  Date:       %s\n", entry.Date.Local().Format(time.RFC1123))
	fmt.Printf("  Mood:       %s\n", entry.Mood)
	if len(entry.Emotions) > 0 {
		fmt.Printf("  Tags:       %s\n", strings.Join(entry.Emotions, ", "))
	}
	if entry.Transcript != "" {
		fmt.Printf("  Transcript: %s (%.0f%% confidence)\n", entry.Transcript, entry.TranscriptConfidence*100)
	}

	switch entry.AudioSource() {
	case models.AudioEmbedded:
		fmt.Printf("  Audio:      %d bytes (embedded, %ds)\n", len(entry.Audio), entry.DurationSec)
	case models.AudioStored:
		if len(entry.Audio) == 0 {
			fmt.Println("  Audio:      missing (recorded but blob not found)")
		} else {
			fmt.Printf("  Audio:      %d bytes (%ds)\n", len(entry.Audio), entry.DurationSec)
		}
	default:
		fmt.Println("  Audio:      none")
	}

	if c.AudioOut != "" {
		if len(entry.Audio) == 0 {
			return fmt.Errorf("entry %s has no audio payload to write", entry.ID)
		}
		if err := os.WriteFile(c.AudioOut, entry.Audio, 0600); err != nil {
			return fmt.Errorf("failed to write audio file: %w", err)
		}
		fmt.Printf("Wrote audio to %s\n", c.AudioOut)
	}

	return nil
}
