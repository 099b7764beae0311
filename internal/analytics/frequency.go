package analytics

import "github.com/Akkumon/HealBit/internal/models"

// MoodFrequency builds a histogram of mood occurrences. Entries whose mood
// falls outside the enumeration are skipped, so the histogram total equals
// the count of entries with a valid mood.
func MoodFrequency(entries []models.JournalEntry) map[models.Mood]int {
	frequency := make(map[models.Mood]int)
	for _, e := range entries {
		if e.Mood.Valid() {
			frequency[e.Mood]++
		}
	}
	return frequency
}
