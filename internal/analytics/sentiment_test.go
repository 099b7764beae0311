package analytics

import (
	"testing"
	"time"

	"github.com/Akkumon/HealBit/internal/models"
)

// pickFirst makes message selection deterministic in tests.
func pickFirst(n int) int { return 0 }

func TestSentimentTrend_Empty(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	got := SentimentTrend(nil, now, pickFirst)

	if got.Score != 3 {
		t.Errorf("expected neutral score 3, got %d", got.Score)
	}
	if got.Trend != TrendStable {
		t.Errorf("expected stable trend, got %s", got.Trend)
	}
	if got.WeeklyAverage != 3 {
		t.Errorf("expected weekly average 3, got %f", got.WeeklyAverage)
	}
	if got.Message != "Your journey begins with the first step" {
		t.Errorf("unexpected empty-state message: %q", got.Message)
	}
}

func TestSentimentTrend_Improving(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	entries := []models.JournalEntry{
		// Recent week: joy (5) and calm (4), average 4.5.
		entryOn(now.AddDate(0, 0, -1), models.MoodJoy),
		entryOn(now.AddDate(0, 0, -3), models.MoodCalm),
		// Prior week: sadness (2) and neutral (3), average 2.5.
		entryOn(now.AddDate(0, 0, -9), models.MoodSadness),
		entryOn(now.AddDate(0, 0, -11), models.MoodNeutral),
	}

	got := SentimentTrend(entries, now, pickFirst)

	if got.Trend != TrendImproving {
		t.Errorf("expected improving trend, got %s", got.Trend)
	}
	if got.WeeklyAverage != 4.5 {
		t.Errorf("expected weekly average 4.5, got %f", got.WeeklyAverage)
	}
	if got.Score != 5 {
		t.Errorf("expected rounded score 5, got %d", got.Score)
	}
	if got.Message != trendMessages[TrendImproving][0] {
		t.Errorf("message not drawn from improving pool: %q", got.Message)
	}
}

func TestSentimentTrend_Declining(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	entries := []models.JournalEntry{
		entryOn(now.AddDate(0, 0, -1), models.MoodAnger),
		entryOn(now.AddDate(0, 0, -2), models.MoodSadness),
		entryOn(now.AddDate(0, 0, -9), models.MoodJoy),
		entryOn(now.AddDate(0, 0, -10), models.MoodCalm),
	}

	got := SentimentTrend(entries, now, pickFirst)

	if got.Trend != TrendDeclining {
		t.Errorf("expected declining trend, got %s", got.Trend)
	}
	if got.Message != trendMessages[TrendDeclining][0] {
		t.Errorf("message not drawn from declining pool: %q", got.Message)
	}
}

func TestSentimentTrend_SmallShiftStaysStable(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	entries := []models.JournalEntry{
		// Recent week average 3, prior week average 3: no shift.
		entryOn(now.AddDate(0, 0, -1), models.MoodNeutral),
		entryOn(now.AddDate(0, 0, -9), models.MoodNeutral),
	}

	got := SentimentTrend(entries, now, pickFirst)

	if got.Trend != TrendStable {
		t.Errorf("expected stable trend for small shift, got %s", got.Trend)
	}
}

func TestSentimentTrend_NoPriorWindowIsStable(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	entries := []models.JournalEntry{
		entryOn(now.AddDate(0, 0, -1), models.MoodJoy),
		entryOn(now.AddDate(0, 0, -2), models.MoodJoy),
	}

	got := SentimentTrend(entries, now, pickFirst)

	// Without a prior week there is nothing to compare against.
	if got.Trend != TrendStable {
		t.Errorf("expected stable trend without prior window, got %s", got.Trend)
	}
	if got.WeeklyAverage != 5 {
		t.Errorf("expected weekly average 5, got %f", got.WeeklyAverage)
	}
}

func TestSentimentTrend_OnlyOldEntries(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	entries := []models.JournalEntry{
		entryOn(now.AddDate(0, 0, -30), models.MoodAnger),
	}

	got := SentimentTrend(entries, now, pickFirst)

	// Entries outside both windows fall back to the neutral weekly default.
	if got.WeeklyAverage != 3 {
		t.Errorf("expected default weekly average 3, got %f", got.WeeklyAverage)
	}
	if got.Trend != TrendStable {
		t.Errorf("expected stable trend, got %s", got.Trend)
	}
}

func TestSentimentTrend_SkipsInvalidMoods(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	entries := []models.JournalEntry{
		entryOn(now.AddDate(0, 0, -1), models.MoodJoy),
		{ID: "bad", Date: now.AddDate(0, 0, -2), Mood: models.Mood("ecstatic")},
	}

	got := SentimentTrend(entries, now, pickFirst)

	if got.WeeklyAverage != 5 {
		t.Errorf("expected unknown mood to be skipped, weekly average 5, got %f", got.WeeklyAverage)
	}
}
