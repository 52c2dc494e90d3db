package model

import "time"

// User identifies the owner of every other record. Authentication itself
// lives outside this application; requests arrive with a resolved username.
type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Username  string    `gorm:"uniqueIndex" json:"username"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
