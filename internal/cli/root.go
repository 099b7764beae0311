package cli

import (
	"sort"
	"time"

	"github.com/Akkumon/HealBit/internal/analytics"
	"github.com/Akkumon/HealBit/internal/constants"
	"github.com/Akkumon/HealBit/internal/logger"
	"github.com/Akkumon/HealBit/internal/models"
	"github.com/Akkumon/HealBit/internal/storage"
)

type Context struct {
	Store storage.Provider
}

// RefreshProfileCounters recomputes the cached total/streak counters on the
// profile after an entry write. The entry store stays the source of truth;
// a failure here is logged, not surfaced, because the save itself succeeded.
func (c *Context) RefreshProfileCounters() {
	entries, err := c.Store.GetAllEntries()
	if err != nil {
		logger.Warn("Failed to read entries for profile counters", "error", err)
		return
	}

	profile, err := c.Store.GetProfile()
	if err != nil {
		logger.Warn("Failed to read profile for counter refresh", "error", err)
		return
	}
	if profile == nil {
		profile = &models.UserProfile{JoinDate: time.Now().UTC()}
	}

	profile.TotalEntries = len(entries)
	profile.CurrentStreak = analytics.DailyStreak(entries, time.Now())

	if err := c.Store.SaveProfile(*profile); err != nil {
		logger.Warn("Failed to save refreshed profile counters", "error", err)
	}
}

// SortByDate orders entries chronologically in place. The storage layer
// returns entries unordered; ordering is the caller's concern.
func SortByDate(entries []models.JournalEntry) {
	sort.Slice(entries, func(i, j int) bool { return entries[i].Date.Before(entries[j].Date) })
}

// FormatDay renders a timestamp as a local calendar day.
func FormatDay(t time.Time) string {
	return t.Local().Format(constants.DateFormat)
}
