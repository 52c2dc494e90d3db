package model

import "time"

// CalendarTask is an ephemeral placement of a task on the calendar,
// produced by schedule regeneration. A task appears at most once per
// calendar date. Regeneration replaces all placements wholesale.
type CalendarTask struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	UserID         uint      `gorm:"index" json:"user_id"`
	TaskID         uint      `gorm:"index:idx_task_per_date,unique" json:"task_id"`
	CalendarDate   time.Time `gorm:"index:idx_task_per_date,unique" json:"calendar_date"`
	ScheduledStart time.Time `json:"scheduled_start"`
	ScheduledEnd   time.Time `json:"scheduled_end"`
	CreatedAt      time.Time `json:"created_at"`
}
