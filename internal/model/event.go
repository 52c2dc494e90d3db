package model

import (
	"fmt"
	"time"
)

// Recurrence kinds. Custom has no expansion rule; it stores intent only
// and generates no occurrences.
const (
	RecurrenceNone    = "none"
	RecurrenceDaily   = "daily"
	RecurrenceWeekly  = "weekly"
	RecurrenceMonthly = "monthly"
	RecurrenceYearly  = "yearly"
	RecurrenceCustom  = "custom"
)

// Event is a calendar event, either a one-off or the definition of a
// recurring series. For recurring events StartTime/EndTime anchor the
// time of day and, for monthly/yearly kinds, the day of month and month.
type Event struct {
	ID                 uint       `gorm:"primaryKey" json:"id"`
	UserID             uint       `gorm:"index" json:"user_id"`
	Title              string     `json:"title"`
	Description        string     `json:"description"`
	StartTime          time.Time  `gorm:"index" json:"start_time"`
	EndTime            time.Time  `json:"end_time"`
	IsRecurring        bool       `gorm:"default:false" json:"is_recurring"`
	RecurrenceType     string     `gorm:"default:none" json:"recurrence_type"`
	RecurrenceInterval int        `gorm:"default:1" json:"recurrence_interval"`
	Weekdays           WeekdaySet `gorm:"type:text" json:"weekdays"`
	EndDate            *time.Time `json:"end_date"`
	MaxOccurrences     *int       `json:"max_occurrences"`
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          time.Time  `json:"updated_at"`
}

// Validate rejects configuration errors at save time so the expander never
// has to tolerate them.
func (e Event) Validate() error {
	if e.Title == "" {
		return fmt.Errorf("title is required")
	}
	if !e.EndTime.After(e.StartTime) {
		return fmt.Errorf("end time must be after start time")
	}
	if !e.IsRecurring {
		return nil
	}
	switch e.RecurrenceType {
	case RecurrenceNone, RecurrenceDaily, RecurrenceWeekly, RecurrenceMonthly, RecurrenceYearly, RecurrenceCustom:
	default:
		return fmt.Errorf("unknown recurrence type %q", e.RecurrenceType)
	}
	// Occurrences inherit the anchor's time of day on a single date, so a
	// series crossing midnight would expand to inverted instances.
	if e.StartTime.Year() != e.EndTime.Year() || e.StartTime.YearDay() != e.EndTime.YearDay() {
		return fmt.Errorf("recurring events must start and end on the same day")
	}
	if e.RecurrenceInterval < 1 {
		return fmt.Errorf("recurrence interval must be positive")
	}
	if err := e.Weekdays.Validate(); err != nil {
		return err
	}
	if e.MaxOccurrences != nil && *e.MaxOccurrences < 1 {
		return fmt.Errorf("max occurrences must be positive")
	}
	if e.EndDate != nil && e.EndDate.Before(e.StartTime) {
		return fmt.Errorf("end date is before the first occurrence")
	}
	return nil
}

// EventInstance is one concrete occurrence of an event within a queried
// range. Instances are derived on the fly and never persisted.
type EventInstance struct {
	EventID     uint      `json:"event_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Start       time.Time `json:"start"`
	End         time.Time `json:"end"`
	Generated   bool      `json:"generated"`
}
