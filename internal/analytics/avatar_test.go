package analytics

import (
	"math"
	"testing"
	"time"

	"github.com/Akkumon/HealBit/internal/models"
)

func floatEquals(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestComputeEvolution_Empty(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	got := ComputeEvolution(nil, now)
	want := DefaultEvolution()

	if got != want {
		t.Errorf("expected default evolution %+v, got %+v", want, got)
	}
}

func TestComputeEvolution_ComplexitySaturates(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	var entries []models.JournalEntry
	for i := 0; i < 25; i++ {
		entries = append(entries, entryOn(now.AddDate(0, 0, -i), models.MoodJoy))
	}

	got := ComputeEvolution(entries, now)
	if !floatEquals(got.Complexity, 0.5) {
		t.Errorf("expected complexity 0.5 at 25 entries, got %f", got.Complexity)
	}
	if !floatEquals(got.EmotionalState, 1.0) {
		t.Errorf("expected emotional state 1.0 for all-joy history, got %f", got.EmotionalState)
	}

	for i := 25; i < 80; i++ {
		entries = append(entries, entryOn(now.AddDate(0, 0, -i), models.MoodJoy))
	}

	got = ComputeEvolution(entries, now)
	if got.Complexity != 1.0 {
		t.Errorf("expected complexity capped at 1.0 for 80 entries, got %f", got.Complexity)
	}
}

func TestComputeEvolution_OpennessTracksWindowShift(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	entries := []models.JournalEntry{
		// Recent week: joy (1.0). Prior week: sadness (0.3).
		entryOn(now.AddDate(0, 0, -1), models.MoodJoy),
		entryOn(now.AddDate(0, 0, -9), models.MoodSadness),
	}

	got := ComputeEvolution(entries, now)
	if !floatEquals(got.Openness, 0.5+(1.0-0.3)) && got.Openness != 1.0 {
		t.Errorf("expected openness clamped to 1.0, got %f", got.Openness)
	}
	if got.Openness != 1.0 {
		t.Errorf("expected openness clamped to 1.0, got %f", got.Openness)
	}
}

func TestComputeEvolution_OpennessDefaultsWithoutPrior(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	entries := []models.JournalEntry{
		entryOn(now.AddDate(0, 0, -1), models.MoodJoy),
	}

	got := ComputeEvolution(entries, now)
	if !floatEquals(got.Openness, 0.5) {
		t.Errorf("expected baseline openness 0.5 without prior window, got %f", got.Openness)
	}
}

func TestComputeEvolution_Glow(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	var entries []models.JournalEntry
	for i := 0; i < 3; i++ {
		entries = append(entries, entryOn(now.AddDate(0, 0, -i-1), models.MoodCalm))
	}
	// Old entry outside the glow window.
	entries = append(entries, entryOn(now.AddDate(0, 0, -20), models.MoodCalm))

	got := ComputeEvolution(entries, now)
	if !floatEquals(got.GlowIntensity, 3.0/7.0) {
		t.Errorf("expected glow 3/7, got %f", got.GlowIntensity)
	}

	// Daily entries saturate the glow.
	entries = entries[:0]
	for i := 0; i < 10; i++ {
		entries = append(entries, entryOn(now.Add(-time.Duration(i)*12*time.Hour), models.MoodCalm))
	}
	got = ComputeEvolution(entries, now)
	if got.GlowIntensity != 1.0 {
		t.Errorf("expected saturated glow 1.0, got %f", got.GlowIntensity)
	}
}

func TestMoodFrequency(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	entries := []models.JournalEntry{
		entryOn(now, models.MoodJoy),
		entryOn(now.AddDate(0, 0, -1), models.MoodJoy),
		entryOn(now.AddDate(0, 0, -2), models.MoodSadness),
		{ID: "bad", Date: now, Mood: models.Mood("furious")},
	}

	freq := MoodFrequency(entries)

	if freq[models.MoodJoy] != 2 {
		t.Errorf("expected 2 joy entries, got %d", freq[models.MoodJoy])
	}
	if freq[models.MoodSadness] != 1 {
		t.Errorf("expected 1 sadness entry, got %d", freq[models.MoodSadness])
	}

	total := 0
	for _, n := range freq {
		total += n
	}
	if total != 3 {
		t.Errorf("expected histogram total 3 with invalid mood skipped, got %d", total)
	}
}
