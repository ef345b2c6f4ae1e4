// Package service implements the business rules on top of the repositories:
// entity validation, existence and duplicate guards, popularity ranking and
// friendship graph queries.
package service

import (
	"context"
	"fmt"
	"sort"

	"filmorate/internal/models"
	"filmorate/internal/repository"
	"filmorate/internal/validation"
)

// FilmService provides film catalog and like business logic.
type FilmService struct {
	filmRepo  repository.FilmRepository
	userRepo  repository.UserRepository
	genreRepo repository.GenreRepository
	mpaRepo   repository.MpaRepository
}

// NewFilmService returns a new FilmService.
func NewFilmService(
	filmRepo repository.FilmRepository,
	userRepo repository.UserRepository,
	genreRepo repository.GenreRepository,
	mpaRepo repository.MpaRepository,
) *FilmService {
	return &FilmService{
		filmRepo:  filmRepo,
		userRepo:  userRepo,
		genreRepo: genreRepo,
		mpaRepo:   mpaRepo,
	}
}

// ListFilms returns all films.
func (s *FilmService) ListFilms(ctx context.Context) ([]models.Film, error) {
	return s.filmRepo.List(ctx)
}

// GetFilmByID returns a single film.
func (s *FilmService) GetFilmByID(ctx context.Context, id uint) (*models.Film, error) {
	return s.filmRepo.GetByID(ctx, id)
}

// CreateFilm validates the candidate, resolves its MPA rating and genre
// references and persists it. The returned film carries the assigned id and
// the resolved reference names.
func (s *FilmService) CreateFilm(ctx context.Context, film *models.Film) (*models.Film, error) {
	if err := validation.ValidateFilm(film); err != nil {
		return nil, err
	}
	if err := s.resolveReferences(ctx, film); err != nil {
		return nil, err
	}
	if err := s.filmRepo.Create(ctx, film); err != nil {
		return nil, err
	}
	return s.filmRepo.GetByID(ctx, film.ID)
}

// UpdateFilm validates the candidate and replaces the stored record keyed by
// its id. Fails with NotFound if the id is absent.
func (s *FilmService) UpdateFilm(ctx context.Context, film *models.Film) (*models.Film, error) {
	if err := validation.ValidateFilm(film); err != nil {
		return nil, err
	}
	if _, err := s.filmRepo.GetByID(ctx, film.ID); err != nil {
		return nil, err
	}
	if err := s.resolveReferences(ctx, film); err != nil {
		return nil, err
	}
	if err := s.filmRepo.Update(ctx, film); err != nil {
		return nil, err
	}
	return s.filmRepo.GetByID(ctx, film.ID)
}

// AddLike records that a user liked a film. Both entities must exist and the
// like must not already be present.
func (s *FilmService) AddLike(ctx context.Context, filmID, userID uint) error {
	if err := s.checkFilmAndUser(ctx, filmID, userID); err != nil {
		return err
	}
	liked, err := s.filmRepo.HasLike(ctx, filmID, userID)
	if err != nil {
		return err
	}
	if liked {
		return models.NewAlreadyExistsError(
			fmt.Sprintf("user %d already liked film %d", userID, filmID))
	}
	return s.filmRepo.AddLike(ctx, filmID, userID)
}

// RemoveLike removes a user's like from a film. Both entities must exist and
// the like must be present.
func (s *FilmService) RemoveLike(ctx context.Context, filmID, userID uint) error {
	if err := s.checkFilmAndUser(ctx, filmID, userID); err != nil {
		return err
	}
	liked, err := s.filmRepo.HasLike(ctx, filmID, userID)
	if err != nil {
		return err
	}
	if !liked {
		return models.NewNotFoundMessage(
			fmt.Sprintf("no like from user %d on film %d", userID, filmID))
	}
	return s.filmRepo.RemoveLike(ctx, filmID, userID)
}

// GetPopular returns up to count films ordered by like count descending,
// insertion order on ties. A count larger than the catalog is clamped.
func (s *FilmService) GetPopular(ctx context.Context, count int) ([]models.Film, error) {
	if count <= 0 {
		return nil, models.NewFieldValidationError(models.KindInvalidValue,
			fmt.Sprintf("film count must be positive, got %d", count))
	}
	return s.filmRepo.GetPopular(ctx, count)
}

func (s *FilmService) checkFilmAndUser(ctx context.Context, filmID, userID uint) error {
	if _, err := s.filmRepo.GetByID(ctx, filmID); err != nil {
		return err
	}
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return err
	}
	return nil
}

// resolveReferences checks the film's MPA rating and genre ids against the
// reference tables and replaces them with full records. Duplicate genres are
// collapsed and the set is ordered by id.
func (s *FilmService) resolveReferences(ctx context.Context, film *models.Film) error {
	if film.Mpa.ID == 0 {
		return models.NewFieldValidationError(models.KindInvalidValue,
			"Film MPA rating is required")
	}
	mpa, err := s.mpaRepo.GetByID(ctx, film.Mpa.ID)
	if err != nil {
		return err
	}
	film.MpaID = mpa.ID
	film.Mpa = *mpa

	seen := make(map[uint]struct{}, len(film.Genres))
	ids := make([]uint, 0, len(film.Genres))
	for _, genre := range film.Genres {
		if _, ok := seen[genre.ID]; ok {
			continue
		}
		seen[genre.ID] = struct{}{}
		ids = append(ids, genre.ID)
	}
	sort.Slice(ids, func(a, b int) bool { return ids[a] < ids[b] })

	genres := make([]models.Genre, 0, len(ids))
	for _, id := range ids {
		genre, err := s.genreRepo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		genres = append(genres, *genre)
	}
	film.Genres = genres
	return nil
}
