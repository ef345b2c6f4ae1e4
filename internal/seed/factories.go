// Package seed provides helpers to create demo data for the application
// database. These helpers are intended for development and testing only.
package seed

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"filmorate/internal/database"
	"filmorate/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"gorm.io/gorm"
)

// Factory builds domain entities and persists them to the database.
// It is a thin helper used by the seeder and tests.
type Factory struct {
	db   *gorm.DB
	opts Options
	rng  *rand.Rand
}

// NewFactory creates a new Factory bound to the provided Gorm DB.
func NewFactory(db *gorm.DB, opts Options) *Factory {
	seed := opts.RandSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	gofakeit.Seed(seed)
	return &Factory{db: db, opts: opts, rng: rand.New(rand.NewSource(seed))}
}

// BuildUser constructs a user without persisting it.
func (f *Factory) BuildUser(overrides ...func(*models.User)) *models.User {
	first := gofakeit.FirstName()
	last := gofakeit.LastName()
	login := strings.ToLower(fmt.Sprintf("%s_%s%d", first, last, f.rng.Intn(1000)))

	// birthday between 13 and 70 years ago
	age := 13 + f.rng.Intn(57)
	birthday := time.Now().AddDate(-age, 0, -f.rng.Intn(365))

	user := &models.User{
		Email:    strings.ToLower(fmt.Sprintf("%s.%s%d@%s", first, last, f.rng.Intn(1000), gofakeit.DomainName())),
		Login:    login,
		Name:     first + " " + last,
		Birthday: models.DateOf(birthday),
	}

	for _, override := range overrides {
		override(user)
	}
	return user
}

// CreateUser persists a generated user.
func (f *Factory) CreateUser(overrides ...func(*models.User)) (*models.User, error) {
	user := f.BuildUser(overrides...)
	if err := f.db.Create(user).Error; err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return user, nil
}

// BuildFilm constructs a film without persisting it. Genres and MPA are
// picked from the reference tables.
func (f *Factory) BuildFilm(overrides ...func(*models.Film)) *models.Film {
	title := strings.TrimSuffix(gofakeit.Sentence(2+f.rng.Intn(3)), ".")

	// release date between 1950 and last year
	year := 1950 + f.rng.Intn(time.Now().Year()-1951)
	release := models.NewDate(year, time.Month(1+f.rng.Intn(12)), 1+f.rng.Intn(28))

	film := &models.Film{
		Name:        title,
		Description: truncateRunes(gofakeit.Paragraph(1, 2, 8, " "), 200),
		ReleaseDate: release,
		Duration:    60 + f.rng.Intn(120),
		MpaID:       uint(1 + f.rng.Intn(len(database.ReferenceMpas))),
	}

	// up to three distinct genres
	for _, idx := range f.rng.Perm(len(database.ReferenceGenres))[:f.rng.Intn(4)] {
		film.Genres = append(film.Genres, database.ReferenceGenres[idx])
	}

	for _, override := range overrides {
		override(film)
	}
	return film
}

// truncateRunes limits a generated string to max runes so it fits the
// film description column.
func truncateRunes(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
