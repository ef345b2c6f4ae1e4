package server

import (
	"filmorate/internal/middleware"
	"filmorate/internal/models"

	"github.com/gofiber/fiber/v2"
)

// ListFilms handles GET /films
func (s *Server) ListFilms(c *fiber.Ctx) error {
	films, err := s.filmService.ListFilms(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(films)
}

// GetFilm handles GET /films/:id
func (s *Server) GetFilm(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	film, err := s.filmService.GetFilmByID(c.Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(film)
}

// CreateFilm handles POST /films
func (s *Server) CreateFilm(c *fiber.Ctx) error {
	var film models.Film
	if err := c.BodyParser(&film); err != nil {
		return respondError(c, models.NewValidationError("Invalid request body"))
	}

	created, err := s.filmService.CreateFilm(c.Context(), &film)
	if err != nil {
		return respondError(c, err)
	}

	middleware.Logger.InfoContext(c.Context(), "film created",
		"film_id", created.ID, "name", created.Name)
	return c.Status(fiber.StatusCreated).JSON(created)
}

// UpdateFilm handles PUT /films
func (s *Server) UpdateFilm(c *fiber.Ctx) error {
	var film models.Film
	if err := c.BodyParser(&film); err != nil {
		return respondError(c, models.NewValidationError("Invalid request body"))
	}
	if film.ID == 0 {
		return respondError(c, models.NewValidationError("Film id is required"))
	}

	updated, err := s.filmService.UpdateFilm(c.Context(), &film)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(updated)
}

// GetPopularFilms handles GET /films/popular?count=N
func (s *Server) GetPopularFilms(c *fiber.Ctx) error {
	count := c.QueryInt("count", 10)

	films, err := s.filmService.GetPopular(c.Context(), count)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(films)
}

// AddLike handles PUT /films/:id/like/:userId
func (s *Server) AddLike(c *fiber.Ctx) error {
	filmID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	userID, err := s.parseID(c, "userId")
	if err != nil {
		return nil
	}

	if err := s.filmService.AddLike(c.Context(), filmID, userID); err != nil {
		return respondError(c, err)
	}

	middleware.Logger.InfoContext(c.Context(), "like added",
		"film_id", filmID, "user_id", userID)
	return c.JSON(fiber.Map{"message": "Like added"})
}

// RemoveLike handles DELETE /films/:id/like/:userId
func (s *Server) RemoveLike(c *fiber.Ctx) error {
	filmID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	userID, err := s.parseID(c, "userId")
	if err != nil {
		return nil
	}

	if err := s.filmService.RemoveLike(c.Context(), filmID, userID); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Like removed"})
}
