package analytics

import (
	"sort"
	"time"

	"github.com/Akkumon/HealBit/internal/models"
)

// DailyStreak counts consecutive calendar days with at least one entry,
// ending at the most recent entry day. The streak is live only while it can
// still be extended without a gap: when the most recent entry day is today or
// yesterday relative to now. Anything older reports 0.
//
// Calendar days are evaluated in now's location; time-of-day is discarded.
func DailyStreak(entries []models.JournalEntry, now time.Time) int {
	if len(entries) == 0 {
		return 0
	}

	loc := now.Location()
	seen := make(map[time.Time]bool, len(entries))
	var days []time.Time
	for _, e := range entries {
		day := dayOf(e.Date.In(loc))
		if !seen[day] {
			seen[day] = true
			days = append(days, day)
		}
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })

	today := dayOf(now)
	yesterday := today.AddDate(0, 0, -1)

	last := days[len(days)-1]
	if last.Before(yesterday) {
		return 0
	}

	streak := 1
	for i := len(days) - 1; i > 0; i-- {
		if days[i-1].Equal(days[i].AddDate(0, 0, -1)) {
			streak++
			continue
		}
		break
	}

	return streak
}

func dayOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
