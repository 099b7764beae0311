package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Akkumon/HealBit/internal/models"
	"github.com/Akkumon/HealBit/internal/storage"
)

// GetProfile returns the singleton profile, or nil when none has been saved.
func (s *Store) GetProfile() (*models.UserProfile, error) {
	row := s.db.QueryRow(`
		SELECT name, avatar_style, join_date, total_entries, current_streak, updated_at
		FROM user_profile WHERE id = 1`)

	var p models.UserProfile
	var joinDate, updatedAt string

	err := row.Scan(&p.Name, &p.AvatarStyle, &joinDate, &p.TotalEntries, &p.CurrentStreak, &updatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, storage.WrapIO("get profile", err)
	}

	if p.JoinDate, err = time.Parse(time.RFC3339, joinDate); err != nil {
		return nil, fmt.Errorf("invalid join date in profile: %w", err)
	}
	if p.UpdatedAt, err = time.Parse(time.RFC3339, updatedAt); err != nil {
		return nil, fmt.Errorf("invalid updated_at in profile: %w", err)
	}

	return &p, nil
}

// SaveProfile upserts the singleton profile row.
func (s *Store) SaveProfile(profile models.UserProfile) error {
	joinDate := profile.JoinDate
	if joinDate.IsZero() {
		joinDate = time.Now().UTC()
	}

	_, err := s.db.Exec(`
		INSERT OR REPLACE INTO user_profile (id, name, avatar_style, join_date, total_entries, current_streak, updated_at)
		VALUES (1, ?, ?, ?, ?, ?, ?)`,
		profile.Name, profile.AvatarStyle, joinDate.Format(time.RFC3339),
		profile.TotalEntries, profile.CurrentStreak, time.Now().UTC().Format(time.RFC3339),
	)
	return storage.WrapIO("save profile", err)
}
