// Package analytics derives presentation metrics from the full entry history.
// Every function is a pure reduction over its inputs: the current time is
// always an explicit parameter and nothing is cached between calls.
package analytics

import "github.com/Akkumon/HealBit/internal/models"

// moodScale maps moods onto the 1-5 sentiment ordinal. calm and hope share a
// score deliberately; they differ in texture, not valence.
var moodScale = map[models.Mood]int{
	models.MoodAnger:   1,
	models.MoodSadness: 2,
	models.MoodNeutral: 3,
	models.MoodCalm:    4,
	models.MoodHope:    4,
	models.MoodJoy:     5,
}

// moodValue maps moods onto the 0-1 emotional-state axis used by the avatar.
var moodValue = map[models.Mood]float64{
	models.MoodAnger:   0.1,
	models.MoodSadness: 0.3,
	models.MoodNeutral: 0.5,
	models.MoodCalm:    0.7,
	models.MoodHope:    0.8,
	models.MoodJoy:     1.0,
}

// MoodScale returns the 1-5 ordinal for a mood, and false for moods outside
// the enumeration (which aggregation skips).
func MoodScale(mood models.Mood) (int, bool) {
	score, ok := moodScale[mood]
	return score, ok
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// meanScale averages the 1-5 ordinal over entries with a recognized mood.
// Returns false when no entry contributes.
func meanScale(entries []models.JournalEntry) (float64, bool) {
	sum, n := 0, 0
	for _, e := range entries {
		if score, ok := moodScale[e.Mood]; ok {
			sum += score
			n++
		}
	}
	if n == 0 {
		return 0, false
	}
	return float64(sum) / float64(n), true
}

// meanValue averages the 0-1 mood value over entries with a recognized mood.
func meanValue(entries []models.JournalEntry) (float64, bool) {
	sum, n := 0.0, 0
	for _, e := range entries {
		if v, ok := moodValue[e.Mood]; ok {
			sum += v
			n++
		}
	}
	if n == 0 {
		return 0, false
	}
	return sum / float64(n), true
}
