package entries

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Akkumon/HealBit/internal/cli"
	"github.com/Akkumon/HealBit/internal/constants"
	"github.com/Akkumon/HealBit/internal/models"
)

type AddCmd struct {
	Mood       string  `arg:"" help:"Mood for this reflection (joy|calm|hope|neutral|sadness|anger)."`
	Transcript string  `short:"t" help:"Transcript text for the reflection."`
	Confidence float64 `short:"c" help:"Transcription confidence in [0,1]. Derived from duration when omitted." default:"-1"`
	Emotions   string  `short:"e" help:"Comma-separated emotion tags from the tag taxonomy."`
	Duration   int     `short:"d" help:"Recording duration in seconds." default:"0"`
	Audio      string  `short:"a" help:"Path to an audio file to store with the entry." type:"existingfile"`
	Date       string  `help:"Entry date (YYYY-MM-DD). Defaults to now."`
}

func (c *AddCmd) Validate() error {
	if _, err := models.ParseMood(c.Mood); err != nil {
		return err
	}
	if c.Duration < 0 {
		return fmt.Errorf("duration must be non-negative")
	}
	if c.Confidence != -1 && (c.Confidence < 0 || c.Confidence > 1) {
		return fmt.Errorf("confidence must be in [0,1]")
	}
	if c.Date != "" {
		if _, err := time.ParseInLocation(constants.DateFormat, c.Date, time.Local); err != nil {
			return fmt.Errorf("invalid date format (expected YYYY-MM-DD): %w", err)
		}
	}
	return nil
}

func (c *AddCmd) Run(ctx *cli.Context) error {
	mood, _ := models.ParseMood(c.Mood)

	date := time.Now()
	if c.Date != "" {
		date, _ = time.ParseInLocation(constants.DateFormat, c.Date, time.Local)
	}

	var tags []string
	if c.Emotions != "" {
		for _, tag := range strings.Split(c.Emotions, ",") {
			tag = strings.TrimSpace(strings.ToLower(tag))
			if tag == "" {
				continue
			}
			if !models.IsKnownTag(tag) {
				return fmt.Errorf("unknown emotion tag: %q", tag)
			}
			tags = append(tags, tag)
		}
	}

	confidence := c.Confidence
	if confidence == -1 {
		confidence = transcriptionConfidence(c.Duration)
	}

	entry := models.JournalEntry{
		ID:                   uuid.New().String(),
		Date:                 date,
		Mood:                 mood,
		Transcript:           c.Transcript,
		TranscriptConfidence: confidence,
		Emotions:             tags,
		DurationSec:          c.Duration,
		ProcessingComplete:   true,
	}

	if c.Audio != "" {
		audio, err := os.ReadFile(c.Audio)
		if err != nil {
			return fmt.Errorf("failed to read audio file: %w", err)
		}
		entry.Audio = audio
		entry.HasAudio = true
	}

	if err := ctx.Store.SaveEntry(entry); err != nil {
		return err
	}

	// Session handoff values for the follow-up screens.
	if err := ctx.Store.SetSetting(constants.SettingLastMood, string(mood)); err != nil {
		return err
	}
	if len(tags) > 0 {
		tagsJSON, err := json.Marshal(tags)
		if err != nil {
			return fmt.Errorf("failed to marshal session emotions: %w", err)
		}
		if err := ctx.Store.SetSetting(constants.SettingSessionEmotions, string(tagsJSON)); err != nil {
			return err
		}
	}

	ctx.RefreshProfileCounters()

	fmt.Printf("Saved reflection: %s (ID: %s)\n", mood, entry.ID)
	return nil
}

// transcriptionConfidence mirrors the mock transcriber: longer recordings are
// assumed better transcribed, capped below certainty.
func transcriptionConfidence(durationSec int) float64 {
	confidence := 0.7 + float64(durationSec)/60*0.25
	if confidence > 0.95 {
		confidence = 0.95
	}
	return confidence
}
