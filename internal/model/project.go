package model

import "time"

// Project groups tasks. Priority is an ordering hint (lower = more important),
// not required to be unique across projects.
type Project struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	UserID      uint      `gorm:"index" json:"user_id"`
	Name        string    `gorm:"index:idx_user_project_name,unique" json:"name"`
	Slug        string    `gorm:"uniqueIndex" json:"slug"`
	Description string    `json:"description"`
	Color       string    `gorm:"default:#0ea5e9" json:"color"`
	Priority    int       `gorm:"default:3" json:"priority"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	Tasks       []Task    `gorm:"foreignKey:ProjectID" json:"-"`
}
