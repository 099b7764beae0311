package models

import (
	"fmt"
	"time"
)

// Mood is the closed set of moods a reflection can carry.
type Mood string

const (
	MoodJoy     Mood = "joy"
	MoodCalm    Mood = "calm"
	MoodHope    Mood = "hope"
	MoodNeutral Mood = "neutral"
	MoodSadness Mood = "sadness"
	MoodAnger   Mood = "anger"
)

// AllMoods lists every valid mood value.
var AllMoods = []Mood{MoodJoy, MoodCalm, MoodHope, MoodNeutral, MoodSadness, MoodAnger}

// Valid reports whether m is one of the six enumerated moods.
func (m Mood) Valid() bool {
	switch m {
	case MoodJoy, MoodCalm, MoodHope, MoodNeutral, MoodSadness, MoodAnger:
		return true
	}
	return false
}

// ParseMood converts a string into a Mood, rejecting anything outside the enumeration.
func ParseMood(s string) (Mood, error) {
	m := Mood(s)
	if !m.Valid() {
		return "", fmt.Errorf("invalid mood: %q", s)
	}
	return m, nil
}

// AudioSource identifies where an entry's audio payload lives. The schema
// evolved from embedding the payload in the entry row to referencing a row in
// the audio blob store, so both generations must be resolvable on read.
type AudioSource int

const (
	AudioNone AudioSource = iota
	AudioEmbedded
	AudioStored
)

// JournalEntry is one recorded voice reflection.
type JournalEntry struct {
	ID                   string    `json:"id"`
	Date                 time.Time `json:"date"`
	Mood                 Mood      `json:"mood"`
	Transcript           string    `json:"transcript,omitempty"`
	TranscriptConfidence float64   `json:"transcriptConfidence"`
	Emotions             []string  `json:"emotions,omitempty"`
	DurationSec          int       `json:"duration"`
	HasAudio             bool      `json:"hasAudio"`
	ProcessingComplete   bool      `json:"processingComplete"`
	CreatedAt            time.Time `json:"createdAt"`
	UpdatedAt            time.Time `json:"updatedAt"`

	// Audio is the resolved payload. It is populated either from the legacy
	// embedded column or by a blob-store lookup; it never round-trips
	// through JSON exports.
	Audio []byte `json:"-"`

	// EmbeddedAudio marks rows from the first schema generation, where the
	// payload lives in the entry row itself rather than the blob store.
	EmbeddedAudio bool `json:"-"`
}

// AudioSource reports which representation the entry's audio uses. Callers
// never branch on the schema generation directly; this accessor is the only
// place the old-format/new-format distinction exists.
func (e *JournalEntry) AudioSource() AudioSource {
	switch {
	case e.EmbeddedAudio && len(e.Audio) > 0:
		return AudioEmbedded
	case e.HasAudio:
		return AudioStored
	default:
		return AudioNone
	}
}

// Validate checks the invariants the write path must uphold.
func (e *JournalEntry) Validate() error {
	if e.ID == "" {
		return fmt.Errorf("entry id must not be empty")
	}
	if e.Date.IsZero() {
		return fmt.Errorf("entry date must be set")
	}
	if !e.Mood.Valid() {
		return fmt.Errorf("invalid mood: %q", e.Mood)
	}
	if e.DurationSec < 0 {
		return fmt.Errorf("duration must be non-negative, got %d", e.DurationSec)
	}
	if e.TranscriptConfidence < 0 || e.TranscriptConfidence > 1 {
		return fmt.Errorf("transcript confidence must be in [0,1], got %v", e.TranscriptConfidence)
	}
	for _, tag := range e.Emotions {
		if !IsKnownTag(tag) {
			return fmt.Errorf("unknown emotion tag: %q", tag)
		}
	}
	return nil
}
