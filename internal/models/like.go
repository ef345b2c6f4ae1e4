package models

import "time"

// Like records that a user liked a film.
// The combination of FilmID and UserID must be unique.
type Like struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	FilmID    uint      `gorm:"not null;uniqueIndex:idx_film_user" json:"film_id"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_film_user" json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName specifies the table name for GORM
func (Like) TableName() string {
	return "likes"
}
