package repository

import (
	"context"
	"errors"
	"sort"

	"filmorate/internal/models"

	"gorm.io/gorm"
)

// FilmRepository defines the interface for film data operations.
// AddLike and RemoveLike are raw edge mutations with no existence or
// duplicate checks; the service layer guards them.
type FilmRepository interface {
	List(ctx context.Context) ([]models.Film, error)
	GetByID(ctx context.Context, id uint) (*models.Film, error)
	Create(ctx context.Context, film *models.Film) error
	Update(ctx context.Context, film *models.Film) error
	AddLike(ctx context.Context, filmID, userID uint) error
	RemoveLike(ctx context.Context, filmID, userID uint) error
	HasLike(ctx context.Context, filmID, userID uint) (bool, error)
	GetPopular(ctx context.Context, count int) ([]models.Film, error)
}

// filmRepository implements FilmRepository
type filmRepository struct {
	db *gorm.DB
}

// NewFilmRepository creates a new film repository
func NewFilmRepository(db *gorm.DB) FilmRepository {
	return &filmRepository{db: db}
}

func genresByID(db *gorm.DB) *gorm.DB {
	return db.Order("genres.id")
}

func (r *filmRepository) List(ctx context.Context) ([]models.Film, error) {
	var films []models.Film
	if err := r.db.WithContext(ctx).
		Preload("Mpa").
		Preload("Genres", genresByID).
		Order("id").
		Find(&films).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	if err := r.attachLikes(ctx, films); err != nil {
		return nil, err
	}
	return films, nil
}

func (r *filmRepository) GetByID(ctx context.Context, id uint) (*models.Film, error) {
	var film models.Film
	if err := r.db.WithContext(ctx).
		Preload("Mpa").
		Preload("Genres", genresByID).
		First(&film, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Film", id)
		}
		return nil, models.NewInternalError(err)
	}
	likes, err := r.likeUserIDs(ctx, film.ID)
	if err != nil {
		return nil, err
	}
	film.Likes = likes
	return &film, nil
}

func (r *filmRepository) Create(ctx context.Context, film *models.Film) error {
	// Film row and genre links are written in one transaction so a failed
	// link insert never leaves an orphaned film.
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Mpa", "Genres").Create(film).Error; err != nil {
			return err
		}
		return insertGenreLinks(tx, film.ID, film.Genres)
	})
	if err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *filmRepository) Update(ctx context.Context, film *models.Film) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&models.Film{}).
			Where("id = ?", film.ID).
			Updates(map[string]interface{}{
				"name":         film.Name,
				"description":  film.Description,
				"release_date": film.ReleaseDate,
				"duration":     film.Duration,
				"rate":         film.Rate,
				"mpa_id":       film.MpaID,
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return models.NewNotFoundError("Film", film.ID)
		}

		// Genre links are fully rewritten on update.
		if err := tx.Exec("DELETE FROM film_genres WHERE film_id = ?", film.ID).Error; err != nil {
			return err
		}
		return insertGenreLinks(tx, film.ID, film.Genres)
	})
	if err != nil {
		var appErr *models.AppError
		if errors.As(err, &appErr) {
			return appErr
		}
		return models.NewInternalError(err)
	}
	return nil
}

func insertGenreLinks(tx *gorm.DB, filmID uint, genres []models.Genre) error {
	for _, genre := range genres {
		if err := tx.Exec(
			"INSERT INTO film_genres (film_id, genre_id) VALUES (?, ?)",
			filmID, genre.ID,
		).Error; err != nil {
			return err
		}
	}
	return nil
}

func (r *filmRepository) AddLike(ctx context.Context, filmID, userID uint) error {
	if err := r.db.WithContext(ctx).
		Create(&models.Like{FilmID: filmID, UserID: userID}).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *filmRepository) RemoveLike(ctx context.Context, filmID, userID uint) error {
	if err := r.db.WithContext(ctx).
		Where("film_id = ? AND user_id = ?", filmID, userID).
		Delete(&models.Like{}).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *filmRepository) HasLike(ctx context.Context, filmID, userID uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Like{}).
		Where("film_id = ? AND user_id = ?", filmID, userID).
		Count(&count).Error; err != nil {
		return false, models.NewInternalError(err)
	}
	return count > 0, nil
}

func (r *filmRepository) GetPopular(ctx context.Context, count int) ([]models.Film, error) {
	// like_count is a SELECT alias; the secondary id sort keeps ties in
	// insertion order.
	var films []models.Film
	if err := r.db.WithContext(ctx).
		Model(&models.Film{}).
		Select("films.*, (SELECT COUNT(*) FROM likes WHERE likes.film_id = films.id) AS like_count").
		Order("like_count DESC, films.id ASC").
		Limit(count).
		Preload("Mpa").
		Preload("Genres", genresByID).
		Find(&films).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	if err := r.attachLikes(ctx, films); err != nil {
		return nil, err
	}
	return films, nil
}

func (r *filmRepository) likeUserIDs(ctx context.Context, filmID uint) ([]uint, error) {
	userIDs := []uint{}
	err := r.db.WithContext(ctx).
		Model(&models.Like{}).
		Where("film_id = ?", filmID).
		Order("user_id").
		Pluck("user_id", &userIDs).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return userIDs, nil
}

// attachLikes resolves liking-user ids for a batch of films in one query.
func (r *filmRepository) attachLikes(ctx context.Context, films []models.Film) error {
	if len(films) == 0 {
		return nil
	}
	ids := make([]uint, 0, len(films))
	for i := range films {
		films[i].Likes = []uint{}
		ids = append(ids, films[i].ID)
	}

	var likes []models.Like
	if err := r.db.WithContext(ctx).
		Where("film_id IN ?", ids).
		Find(&likes).Error; err != nil {
		return models.NewInternalError(err)
	}

	byFilm := make(map[uint][]uint, len(films))
	for _, like := range likes {
		byFilm[like.FilmID] = append(byFilm[like.FilmID], like.UserID)
	}
	for i := range films {
		if userIDs, ok := byFilm[films[i].ID]; ok {
			sort.Slice(userIDs, func(a, b int) bool { return userIDs[a] < userIDs[b] })
			films[i].Likes = userIDs
		}
	}
	return nil
}
