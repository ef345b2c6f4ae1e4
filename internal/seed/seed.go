package seed

import (
	"fmt"
	"log"

	"filmorate/internal/models"

	"gorm.io/gorm"
)

// Options configuration for the seeder
type Options struct {
	NumUsers    int
	NumFilms    int
	ShouldClean bool
	// RandSeed fixes the random source; zero means time-based.
	RandSeed int64
}

// Seed populates the database with demo users, films, likes and
// friendships. Reference data (genres, MPA ratings) is assumed to be
// migrated already.
func Seed(db *gorm.DB, opts Options) error {
	log.Printf("🌱 Starting database seeding with %d users and %d films...", opts.NumUsers, opts.NumFilms)

	if opts.ShouldClean {
		if err := clearData(db); err != nil {
			log.Println("⚠️  Warning: Could not clear all existing data, but continuing anyway...")
		}
	}

	f := NewFactory(db, opts)

	users, err := f.createUsers(opts.NumUsers)
	if err != nil {
		return fmt.Errorf("failed to create users: %w", err)
	}
	log.Printf("✓ %d demo users created", len(users))

	films, err := f.createFilms(opts.NumFilms)
	if err != nil {
		return fmt.Errorf("failed to create films: %w", err)
	}
	log.Printf("✓ %d demo films created", len(films))

	friendships, err := f.createFriendships(users)
	if err != nil {
		return fmt.Errorf("failed to create friendships: %w", err)
	}
	log.Printf("✓ %d friendships created", friendships)

	likes, err := f.createLikes(users, films)
	if err != nil {
		return fmt.Errorf("failed to create likes: %w", err)
	}
	log.Printf("✓ %d likes created", likes)

	log.Println("✨ Seeding complete")
	return nil
}

// clearData removes previously seeded rows. Reference tables stay.
func clearData(db *gorm.DB) error {
	tables := []string{"likes", "film_genres", "friendship", "films", "users"}
	for _, table := range tables {
		if err := db.Exec("DELETE FROM " + table).Error; err != nil {
			return fmt.Errorf("failed to clear %s: %w", table, err)
		}
	}
	return nil
}

func (f *Factory) createUsers(count int) ([]models.User, error) {
	users := make([]models.User, 0, count)
	for i := 0; i < count; i++ {
		user, err := f.CreateUser()
		if err != nil {
			return nil, err
		}
		users = append(users, *user)
	}
	return users, nil
}

func (f *Factory) createFilms(count int) ([]models.Film, error) {
	films := make([]models.Film, 0, count)
	for i := 0; i < count; i++ {
		film := f.BuildFilm()
		// skip upserting the referenced Mpa and Genre rows, only
		// write the film and its join rows
		if err := f.db.Omit("Mpa", "Genres.*").Create(film).Error; err != nil {
			return nil, fmt.Errorf("failed to create film: %w", err)
		}
		films = append(films, *film)
	}
	return films, nil
}

// createFriendships links each user with a handful of random others,
// inserting both directions of every edge.
func (f *Factory) createFriendships(users []models.User) (int, error) {
	created := 0
	for _, user := range users {
		targets := f.rng.Perm(len(users))
		wanted := 1 + f.rng.Intn(4)
		for _, idx := range targets {
			if wanted == 0 {
				break
			}
			friend := users[idx]
			if friend.ID == user.ID || friend.ID < user.ID {
				continue
			}
			edges := []models.Friendship{
				{UserID: user.ID, FriendID: friend.ID},
				{UserID: friend.ID, FriendID: user.ID},
			}
			if err := f.db.Create(&edges).Error; err != nil {
				return created, fmt.Errorf("failed to create friendship: %w", err)
			}
			created++
			wanted--
		}
	}
	return created, nil
}

// createLikes has each user like a random subset of films.
func (f *Factory) createLikes(users []models.User, films []models.Film) (int, error) {
	if len(films) == 0 {
		return 0, nil
	}
	created := 0
	for _, user := range users {
		count := f.rng.Intn(len(films) + 1)
		for _, idx := range f.rng.Perm(len(films))[:count] {
			like := models.Like{FilmID: films[idx].ID, UserID: user.ID}
			if err := f.db.Create(&like).Error; err != nil {
				return created, fmt.Errorf("failed to create like: %w", err)
			}
			created++
		}
	}
	return created, nil
}
