package validation

import (
	"testing"
	"time"

	"filmorate/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validUser() *models.User {
	return &models.User{
		Email:    "mail@mail.ru",
		Login:    "dolore",
		Name:     "Nick Name",
		Birthday: models.NewDate(1946, time.August, 20),
	}
}

func TestValidateUser(t *testing.T) {
	tests := []struct {
		name         string
		mutate       func(*models.User)
		expectedKind models.ValidationKind
	}{
		{
			name:   "valid user passes",
			mutate: func(u *models.User) {},
		},
		{
			name:         "empty email",
			mutate:       func(u *models.User) { u.Email = "" },
			expectedKind: models.KindEmptyField,
		},
		{
			name:         "email without at sign",
			mutate:       func(u *models.User) { u.Email = "mail.ru" },
			expectedKind: models.KindInvalidValue,
		},
		{
			name:         "empty login",
			mutate:       func(u *models.User) { u.Login = "" },
			expectedKind: models.KindEmptyField,
		},
		{
			name:         "login with inner space",
			mutate:       func(u *models.User) { u.Login = "dolore ullamco" },
			expectedKind: models.KindInvalidValue,
		},
		{
			name:         "login with tab",
			mutate:       func(u *models.User) { u.Login = "dolore\tullamco" },
			expectedKind: models.KindInvalidValue,
		},
		{
			name: "birthday in the future",
			mutate: func(u *models.User) {
				u.Birthday = models.DateOf(time.Now().AddDate(1, 0, 0))
			},
			expectedKind: models.KindInvalidDate,
		},
		{
			name:   "unset birthday passes",
			mutate: func(u *models.User) { u.Birthday = models.Date{} },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user := validUser()
			tt.mutate(user)
			err := ValidateUser(user)

			if tt.expectedKind == "" {
				assert.NoError(t, err)
				return
			}
			var appErr *models.AppError
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, models.CodeValidation, appErr.Code)
			assert.Equal(t, tt.expectedKind, appErr.Kind)
		})
	}
}

func TestValidateUser_BlankNameDefaultsToLogin(t *testing.T) {
	user := validUser()
	user.Name = ""
	require.NoError(t, ValidateUser(user))
	assert.Equal(t, "dolore", user.Name)

	user = validUser()
	user.Name = "   "
	require.NoError(t, ValidateUser(user))
	assert.Equal(t, "dolore", user.Name)

	// an explicit name is kept
	user = validUser()
	require.NoError(t, ValidateUser(user))
	assert.Equal(t, "Nick Name", user.Name)
}
