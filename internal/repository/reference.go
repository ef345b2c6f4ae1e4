package repository

import (
	"context"
	"errors"

	"filmorate/internal/models"

	"gorm.io/gorm"
)

// GenreRepository is the read-only lookup over the genres reference table.
type GenreRepository interface {
	List(ctx context.Context) ([]models.Genre, error)
	GetByID(ctx context.Context, id uint) (*models.Genre, error)
}

// MpaRepository is the read-only lookup over the mpas reference table.
type MpaRepository interface {
	List(ctx context.Context) ([]models.Mpa, error)
	GetByID(ctx context.Context, id uint) (*models.Mpa, error)
}

type genreRepository struct {
	db *gorm.DB
}

// NewGenreRepository creates a new genre repository
func NewGenreRepository(db *gorm.DB) GenreRepository {
	return &genreRepository{db: db}
}

func (r *genreRepository) List(ctx context.Context) ([]models.Genre, error) {
	var genres []models.Genre
	if err := r.db.WithContext(ctx).Order("id").Find(&genres).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return genres, nil
}

func (r *genreRepository) GetByID(ctx context.Context, id uint) (*models.Genre, error) {
	var genre models.Genre
	if err := r.db.WithContext(ctx).First(&genre, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Genre", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &genre, nil
}

type mpaRepository struct {
	db *gorm.DB
}

// NewMpaRepository creates a new MPA rating repository
func NewMpaRepository(db *gorm.DB) MpaRepository {
	return &mpaRepository{db: db}
}

func (r *mpaRepository) List(ctx context.Context) ([]models.Mpa, error) {
	var mpas []models.Mpa
	if err := r.db.WithContext(ctx).Order("id").Find(&mpas).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return mpas, nil
}

func (r *mpaRepository) GetByID(ctx context.Context, id uint) (*models.Mpa, error) {
	var mpa models.Mpa
	if err := r.db.WithContext(ctx).First(&mpa, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Mpa", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &mpa, nil
}
