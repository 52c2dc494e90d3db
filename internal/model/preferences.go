package model

import "time"

// Default working hours applied when a user has no stored preferences.
const (
	DefaultWorkStart      = MinuteOfDay(9 * 60)
	DefaultWorkEnd        = MinuteOfDay(17 * 60)
	DefaultDailyWorkHours = 6
)

// UserPreferences holds per-user scheduling settings. DailyWorkHours is
// advisory only and not enforced as a hard cap by the scheduler.
type UserPreferences struct {
	ID             uint        `gorm:"primaryKey" json:"id"`
	UserID         uint        `gorm:"uniqueIndex" json:"user_id"`
	WorkStart      MinuteOfDay `gorm:"type:text" json:"work_start"`
	WorkEnd        MinuteOfDay `gorm:"type:text" json:"work_end"`
	DailyWorkHours int         `gorm:"default:6" json:"daily_work_hours"`
	CreatedAt      time.Time   `json:"created_at"`
	UpdatedAt      time.Time   `json:"updated_at"`
}

// DefaultPreferences returns the lazily created settings for a user.
func DefaultPreferences(userID uint) UserPreferences {
	return UserPreferences{
		UserID:         userID,
		WorkStart:      DefaultWorkStart,
		WorkEnd:        DefaultWorkEnd,
		DailyWorkHours: DefaultDailyWorkHours,
	}
}
