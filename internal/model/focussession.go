package model

import "time"

// Focus session kinds.
const (
	FocusWork  = "work"
	FocusBreak = "break"
)

// FocusSession tracks a timed work or break interval, optionally tied to
// a task. DurationMinutes is filled in when the session ends.
type FocusSession struct {
	ID              uint       `gorm:"primaryKey" json:"id"`
	UserID          uint       `gorm:"index" json:"user_id"`
	TaskID          *uint      `gorm:"index" json:"task_id"`
	Kind            string     `gorm:"default:work" json:"kind"`
	StartTime       time.Time  `json:"start_time"`
	EndTime         *time.Time `json:"end_time"`
	DurationMinutes *int       `json:"duration_minutes"`
}

// End closes the session at the given instant and computes its duration.
func (s *FocusSession) End(at time.Time) {
	s.EndTime = &at
	minutes := int(at.Sub(s.StartTime).Minutes())
	s.DurationMinutes = &minutes
}
