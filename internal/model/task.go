package model

import "time"

// Task statuses.
const (
	StatusTodo       = "todo"
	StatusInProgress = "in_progress"
	StatusBlocked    = "blocked"
	StatusDone       = "done"
	StatusCancelled  = "cancelled"
)

// Task represents a single item in the planner. Priority runs 1 (critical)
// through 5 (minimal). The scheduler only reads tasks; it never mutates them.
type Task struct {
	ID              uint       `gorm:"primaryKey" json:"id"`
	UserID          uint       `gorm:"index" json:"user_id"`
	ProjectID       *uint      `gorm:"index" json:"project_id"`
	Title           string     `json:"title"`
	Description     string     `json:"description"`
	Status          string     `gorm:"default:todo" json:"status"`
	Priority        int        `gorm:"default:3" json:"priority"`
	DueAt           *time.Time `json:"due_at"`
	EstimateMinutes *int       `json:"estimate_minutes"`
	Tags            []Tag      `gorm:"many2many:task_tags" json:"tags,omitempty"`
	CompletedAt     *time.Time `json:"completed_at"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

// IsOpen reports whether the task still needs work.
func (t Task) IsOpen() bool {
	return t.Status == StatusTodo || t.Status == StatusInProgress
}
