package analytics

import (
	"time"

	"github.com/Akkumon/HealBit/internal/constants"
	"github.com/Akkumon/HealBit/internal/models"
)

// AvatarEvolution is the four-dimensional summary of the journaling history
// the avatar renderer consumes. All dimensions live in [0,1]. It is
// recomputed in full on every request and never persisted.
type AvatarEvolution struct {
	Complexity     float64 `json:"complexity"`     // saturating growth with total entries
	EmotionalState float64 `json:"emotionalState"` // mean mood value over all entries
	Openness       float64 `json:"openness"`       // recent-vs-prior window shift
	GlowIntensity  float64 `json:"glowIntensity"`  // 7-day activity density
}

// DefaultEvolution is the resting state before any entry exists. The glow
// baseline keeps a fresh avatar from rendering fully dark.
func DefaultEvolution() AvatarEvolution {
	return AvatarEvolution{
		Complexity:     0,
		EmotionalState: 0.5,
		Openness:       0.5,
		GlowIntensity:  0.3,
	}
}

// ComputeEvolution folds the full entry history into the avatar vector.
func ComputeEvolution(entries []models.JournalEntry, now time.Time) AvatarEvolution {
	if len(entries) == 0 {
		return DefaultEvolution()
	}

	evolution := AvatarEvolution{
		Complexity:     clamp01(float64(len(entries)) / constants.MaxEntriesForFullComplexity),
		EmotionalState: 0.5,
		Openness:       0.5,
	}

	if avg, ok := meanValue(entries); ok {
		evolution.EmotionalState = avg
	}

	recent, prior := splitTrendWindows(entries, now)

	recentAvg, recentOK := meanValue(recent)
	priorAvg, priorOK := meanValue(prior)
	if recentOK && priorOK {
		evolution.Openness = clamp01(0.5 + (recentAvg - priorAvg))
	}

	evolution.GlowIntensity = clamp01(float64(len(recent)) / constants.TrendWindowDays)

	return evolution
}
