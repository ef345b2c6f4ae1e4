package server

import (
	"github.com/gofiber/fiber/v2"
)

// ListGenres handles GET /genres
func (s *Server) ListGenres(c *fiber.Ctx) error {
	genres, err := s.genreService.ListGenres(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(genres)
}

// GetGenre handles GET /genres/:id
func (s *Server) GetGenre(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	genre, err := s.genreService.GetGenreByID(c.Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(genre)
}

// ListMpas handles GET /mpa
func (s *Server) ListMpas(c *fiber.Ctx) error {
	mpas, err := s.mpaService.ListMpas(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(mpas)
}

// GetMpa handles GET /mpa/:id
func (s *Server) GetMpa(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	mpa, err := s.mpaService.GetMpaByID(c.Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(mpa)
}
