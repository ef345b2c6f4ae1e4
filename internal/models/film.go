package models

import "time"

// Film represents a film in the catalog with its MPA rating and genres.
type Film struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	Name        string  `gorm:"not null" json:"name"`
	Description string  `gorm:"size:200" json:"description"`
	ReleaseDate Date    `gorm:"column:release_date" json:"releaseDate"`
	Duration    int     `gorm:"not null" json:"duration"`
	Rate        int     `json:"rate"`
	MpaID       uint    `gorm:"column:mpa_id" json:"-"`
	Mpa         Mpa     `gorm:"foreignKey:MpaID" json:"mpa"`
	Genres      []Genre `gorm:"many2many:film_genres" json:"genres"`

	// Likes holds the ids of users who liked this film, resolved from the
	// likes edge table at query time.
	Likes []uint `gorm:"-" json:"likes"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

// TableName specifies the table name for GORM
func (Film) TableName() string {
	return "films"
}

// LikeCount returns the number of distinct users who liked the film.
func (f *Film) LikeCount() int {
	return len(f.Likes)
}
