package model

import "time"

// Session is the persisted form of a browser session in the SQL store.
type Session struct {
	ID        string    `gorm:"primaryKey;size:36"`
	Token     string    `gorm:"not null"`
	LoggedIn  bool      `gorm:"not null;default:false"`
	ExpiresAt time.Time `gorm:"index;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
