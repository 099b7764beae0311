package models

import "time"

// UserProfile is the per-device singleton profile. TotalEntries and
// CurrentStreak are cached counters for display only; the entry store is the
// source of truth and the counters are recomputed after entry writes.
type UserProfile struct {
	Name          string    `json:"name,omitempty"`
	AvatarStyle   string    `json:"avatarStyle,omitempty"`
	JoinDate      time.Time `json:"joinDate"`
	TotalEntries  int       `json:"totalEntries"`
	CurrentStreak int       `json:"currentStreak"`
	UpdatedAt     time.Time `json:"updatedAt"`
}
