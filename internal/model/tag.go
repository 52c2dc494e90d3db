package model

import "time"

// Tag labels tasks across projects.
type Tag struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"uniqueIndex" json:"name"`
	Color     string    `gorm:"default:#64748b" json:"color"`
	CreatedAt time.Time `json:"created_at"`
}
