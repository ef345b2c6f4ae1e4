// Package models contains data structures for the application's domain models.
package models

import "time"

// User represents a registered user of the film catalog.
type User struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Email    string `gorm:"not null" json:"email"`
	Login    string `gorm:"not null;index" json:"login"`
	Name     string `json:"name"`
	Birthday Date   `json:"birthday"`

	// Friends holds the ids of this user's friends. It is resolved from the
	// friendship edge table at query time, never persisted on the row.
	Friends []uint `gorm:"-" json:"friends"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

// TableName specifies the table name for GORM
func (User) TableName() string {
	return "users"
}
