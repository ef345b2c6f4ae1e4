package database

import (
	"filmorate/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ReferenceMpas is the fixed MPA rating table.
var ReferenceMpas = []models.Mpa{
	{ID: 1, Name: "G"},
	{ID: 2, Name: "PG"},
	{ID: 3, Name: "PG-13"},
	{ID: 4, Name: "R"},
	{ID: 5, Name: "NC-17"},
}

// ReferenceGenres is the fixed genre table.
var ReferenceGenres = []models.Genre{
	{ID: 1, Name: "Comedy"},
	{ID: 2, Name: "Drama"},
	{ID: 3, Name: "Cartoon"},
	{ID: 4, Name: "Thriller"},
	{ID: 5, Name: "Documentary"},
	{ID: 6, Name: "Action"},
}

// SeedReferenceData inserts the static mpas and genres rows. Existing rows
// are left untouched, so the seed is safe to run on every startup.
func SeedReferenceData(db *gorm.DB) error {
	if err := db.Clauses(clause.OnConflict{DoNothing: true}).
		Create(&ReferenceMpas).Error; err != nil {
		return err
	}
	return db.Clauses(clause.OnConflict{DoNothing: true}).
		Create(&ReferenceGenres).Error
}
