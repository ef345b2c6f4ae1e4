// Package validation holds the pure entity validation rules that run before
// every create and update.
package validation

import (
	"fmt"
	"strings"

	"filmorate/internal/models"
)

const maxDescriptionLen = 200

// EarliestReleaseDate is the date of the first public film screening.
// Films cannot be released before it.
var EarliestReleaseDate = models.NewDate(1895, 12, 28)

// ValidateFilm checks a candidate film against the catalog rules. Rules are
// checked in order and the first failure wins.
func ValidateFilm(film *models.Film) error {
	if strings.TrimSpace(film.Name) == "" {
		return models.NewFieldValidationError(models.KindEmptyField,
			"Film name cannot be empty")
	}
	if len([]rune(film.Description)) > maxDescriptionLen {
		return models.NewFieldValidationError(models.KindFieldTooLong,
			fmt.Sprintf("Film description length cannot be more than %d characters", maxDescriptionLen))
	}
	if film.ReleaseDate.IsZero() || film.ReleaseDate.Before(EarliestReleaseDate.Time) {
		return models.NewFieldValidationError(models.KindInvalidDate,
			"Film release date cannot be before 1895-12-28")
	}
	if film.Duration <= 0 {
		return models.NewFieldValidationError(models.KindInvalidValue,
			"Film duration must be positive")
	}
	return nil
}
