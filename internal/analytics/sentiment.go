package analytics

import (
	"math"
	"math/rand"
	"time"

	"github.com/Akkumon/HealBit/internal/constants"
	"github.com/Akkumon/HealBit/internal/models"
)

// Trend classifies the direction of the sentiment comparison between the two
// trailing windows.
type Trend string

const (
	TrendImproving Trend = "improving"
	TrendStable    Trend = "stable"
	TrendDeclining Trend = "declining"
)

// trendThreshold is the minimum window-mean difference treated as a real
// shift rather than noise.
const trendThreshold = 0.3

// SentimentData is the derived weekly sentiment summary.
type SentimentData struct {
	Score         int     `json:"score"` // 1-5
	Trend         Trend   `json:"trend"`
	WeeklyAverage float64 `json:"weeklyAverage"`
	Message       string  `json:"message"`
}

var trendMessages = map[Trend][]string{
	TrendImproving: {
		"Your skies are clearing beautifully",
		"Sunshine is breaking through the clouds",
		"What a wonderful shift in your weather",
	},
	TrendStable: {
		"Steady as she goes through your emotional weather",
		"Finding your rhythm in the gentle seasons",
		"Consistent and growing, day by day",
	},
	TrendDeclining: {
		"Weathering the storm together, you're not alone",
		"Even storms pass, and you're so brave",
		"Gentle rains help things grow too",
	},
}

const firstStepMessage = "Your journey begins with the first step"

// SentimentTrend compares the last seven days of entries against the seven
// days before them. pick selects the user-facing message from the trend's
// pool; pass nil for a random choice, or a fixed function in tests.
func SentimentTrend(entries []models.JournalEntry, now time.Time, pick func(n int) int) SentimentData {
	if pick == nil {
		pick = rand.Intn
	}

	if len(entries) == 0 {
		return SentimentData{
			Score:         3,
			Trend:         TrendStable,
			WeeklyAverage: 3,
			Message:       firstStepMessage,
		}
	}

	recent, prior := splitTrendWindows(entries, now)

	weeklyAverage := 3.0
	if avg, ok := meanScale(recent); ok {
		weeklyAverage = avg
	}

	trend := TrendStable
	if priorAvg, ok := meanScale(prior); ok {
		diff := weeklyAverage - priorAvg
		switch {
		case diff > trendThreshold:
			trend = TrendImproving
		case diff < -trendThreshold:
			trend = TrendDeclining
		}
	}

	pool := trendMessages[trend]

	return SentimentData{
		Score:         int(math.Round(weeklyAverage)),
		Trend:         trend,
		WeeklyAverage: weeklyAverage,
		Message:       pool[pick(len(pool))],
	}
}

// splitTrendWindows partitions entries into the trailing window ending at now
// and the window of equal width preceding it. Entries older than both
// windows are discarded.
func splitTrendWindows(entries []models.JournalEntry, now time.Time) (recent, prior []models.JournalEntry) {
	windowStart := now.AddDate(0, 0, -constants.TrendWindowDays)
	priorStart := now.AddDate(0, 0, -2*constants.TrendWindowDays)

	for _, e := range entries {
		switch {
		case !e.Date.Before(windowStart):
			recent = append(recent, e)
		case !e.Date.Before(priorStart):
			prior = append(prior, e)
		}
	}
	return recent, prior
}
