package server

import (
	"filmorate/internal/middleware"
	"filmorate/internal/models"

	"github.com/gofiber/fiber/v2"
)

// ListUsers handles GET /users
func (s *Server) ListUsers(c *fiber.Ctx) error {
	users, err := s.userService.ListUsers(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(users)
}

// GetUser handles GET /users/:id
func (s *Server) GetUser(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	user, err := s.userService.GetUserByID(c.Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(user)
}

// CreateUser handles POST /users
func (s *Server) CreateUser(c *fiber.Ctx) error {
	var user models.User
	if err := c.BodyParser(&user); err != nil {
		return respondError(c, models.NewValidationError("Invalid request body"))
	}

	created, err := s.userService.CreateUser(c.Context(), &user)
	if err != nil {
		return respondError(c, err)
	}

	middleware.Logger.InfoContext(c.Context(), "user created",
		"user_id", created.ID, "login", created.Login)
	return c.Status(fiber.StatusCreated).JSON(created)
}

// UpdateUser handles PUT /users
func (s *Server) UpdateUser(c *fiber.Ctx) error {
	var user models.User
	if err := c.BodyParser(&user); err != nil {
		return respondError(c, models.NewValidationError("Invalid request body"))
	}
	if user.ID == 0 {
		return respondError(c, models.NewValidationError("User id is required"))
	}

	updated, err := s.userService.UpdateUser(c.Context(), &user)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(updated)
}

// AddFriend handles PUT /users/:id/friends/:friendId
func (s *Server) AddFriend(c *fiber.Ctx) error {
	userID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	friendID, err := s.parseID(c, "friendId")
	if err != nil {
		return nil
	}

	if err := s.userService.AddFriend(c.Context(), userID, friendID); err != nil {
		return respondError(c, err)
	}

	middleware.Logger.InfoContext(c.Context(), "friend added",
		"user_id", userID, "friend_id", friendID)
	return c.JSON(fiber.Map{"message": "Friend added"})
}

// RemoveFriend handles DELETE /users/:id/friends/:friendId
func (s *Server) RemoveFriend(c *fiber.Ctx) error {
	userID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	friendID, err := s.parseID(c, "friendId")
	if err != nil {
		return nil
	}

	if err := s.userService.RemoveFriend(c.Context(), userID, friendID); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Friend removed"})
}

// GetFriends handles GET /users/:id/friends
func (s *Server) GetFriends(c *fiber.Ctx) error {
	userID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	friends, err := s.userService.GetFriends(c.Context(), userID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(friends)
}

// GetCommonFriends handles GET /users/:id/friends/common/:otherId
func (s *Server) GetCommonFriends(c *fiber.Ctx) error {
	userID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	otherID, err := s.parseID(c, "otherId")
	if err != nil {
		return nil
	}

	common, err := s.userService.GetCommonFriends(c.Context(), userID, otherID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(common)
}
