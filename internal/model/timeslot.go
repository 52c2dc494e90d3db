package model

import (
	"fmt"
	"time"
)

// TimeSlot marks a recurring unavailable window on selected weekdays,
// such as a lunch break or a standing commute.
type TimeSlot struct {
	ID        uint        `gorm:"primaryKey" json:"id"`
	UserID    uint        `gorm:"index" json:"user_id"`
	Name      string      `json:"name"`
	StartTime MinuteOfDay `gorm:"type:text" json:"start_time"`
	EndTime   MinuteOfDay `gorm:"type:text" json:"end_time"`
	Weekdays  WeekdaySet  `gorm:"type:text" json:"weekdays"`
	IsActive  bool        `gorm:"default:true" json:"is_active"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
}

// Validate rejects malformed slots at save time.
func (s TimeSlot) Validate() error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}
	if s.EndTime <= s.StartTime {
		return fmt.Errorf("end time must be after start time")
	}
	return s.Weekdays.Validate()
}

// CoversInstant reports whether the slot blocks the given instant.
func (s TimeSlot) CoversInstant(t time.Time) bool {
	if !s.IsActive || !s.Weekdays.Contains(Weekday(t)) {
		return false
	}
	m := MinuteWithin(t)
	return m >= s.StartTime && m < s.EndTime
}
