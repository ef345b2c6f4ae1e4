package validation

import (
	"strings"
	"time"

	"filmorate/internal/models"
)

// ValidateUser checks a candidate user. Rules are checked in order and the
// first failure wins. On success the user is normalized: a blank display name
// defaults to the login.
func ValidateUser(user *models.User) error {
	if strings.TrimSpace(user.Email) == "" {
		return models.NewFieldValidationError(models.KindEmptyField,
			"User email cannot be empty")
	}
	if !strings.Contains(user.Email, "@") {
		return models.NewFieldValidationError(models.KindInvalidValue,
			"User email must contain the @ symbol")
	}
	if strings.TrimSpace(user.Login) == "" {
		return models.NewFieldValidationError(models.KindEmptyField,
			"User login cannot be empty")
	}
	if strings.ContainsAny(user.Login, " \t") {
		return models.NewFieldValidationError(models.KindInvalidValue,
			"User login cannot contain spaces")
	}
	if user.Birthday.After(time.Now()) {
		return models.NewFieldValidationError(models.KindInvalidDate,
			"User birthday cannot be in the future")
	}

	NormalizeUser(user)
	return nil
}

// NormalizeUser applies post-validation defaults: a blank display name is
// replaced with the login.
func NormalizeUser(user *models.User) {
	if strings.TrimSpace(user.Name) == "" {
		user.Name = user.Login
	}
}
