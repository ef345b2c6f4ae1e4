package server

import (
	"errors"
	"strconv"
	"strings"
	"unicode"

	"filmorate/internal/models"

	"github.com/gofiber/fiber/v2"
)

// errResponseWritten signals that the handler already wrote an error
// response and the caller should just return nil.
var errResponseWritten = errors.New("response written")

// parseID reads a positive integer path parameter. On failure it writes a
// 400 response and returns errResponseWritten.
func (s *Server) parseID(c *fiber.Ctx, param string) (uint, error) {
	raw := c.Params(param)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		appErr := models.NewValidationError(
			"Invalid " + humanizeParam(param) + ": must be a positive integer")
		models.RespondWithError(c, fiber.StatusBadRequest, appErr)
		return 0, errResponseWritten
	}
	return uint(id), nil
}

// respondError maps a service error to its HTTP status and writes it.
func respondError(c *fiber.Ctx, err error) error {
	models.RespondWithError(c, models.StatusForError(err), err)
	return nil
}

// humanizeParam turns a route parameter name like "friendId" into
// "friend id" for error messages.
func humanizeParam(param string) string {
	words := splitCamel(param)
	return strings.ToLower(strings.Join(words, " "))
}

func splitCamel(s string) []string {
	var words []string
	start := 0
	for i, r := range s {
		if i > 0 && unicode.IsUpper(r) {
			words = append(words, s[start:i])
			start = i
		}
	}
	words = append(words, s[start:])
	return words
}
