package service

import (
	"context"

	"filmorate/internal/models"
	"filmorate/internal/repository"
)

// GenreService exposes the read-only genre reference data.
type GenreService struct {
	genreRepo repository.GenreRepository
}

// NewGenreService returns a new GenreService.
func NewGenreService(genreRepo repository.GenreRepository) *GenreService {
	return &GenreService{genreRepo: genreRepo}
}

// ListGenres returns all genres ordered by id.
func (s *GenreService) ListGenres(ctx context.Context) ([]models.Genre, error) {
	return s.genreRepo.List(ctx)
}

// GetGenreByID returns a single genre.
func (s *GenreService) GetGenreByID(ctx context.Context, id uint) (*models.Genre, error) {
	return s.genreRepo.GetByID(ctx, id)
}

// MpaService exposes the read-only MPA rating reference data.
type MpaService struct {
	mpaRepo repository.MpaRepository
}

// NewMpaService returns a new MpaService.
func NewMpaService(mpaRepo repository.MpaRepository) *MpaService {
	return &MpaService{mpaRepo: mpaRepo}
}

// ListMpas returns all MPA ratings ordered by id.
func (s *MpaService) ListMpas(ctx context.Context) ([]models.Mpa, error) {
	return s.mpaRepo.List(ctx)
}

// GetMpaByID returns a single MPA rating.
func (s *MpaService) GetMpaByID(ctx context.Context, id uint) (*models.Mpa, error) {
	return s.mpaRepo.GetByID(ctx, id)
}
