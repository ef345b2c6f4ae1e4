package service

import (
	"context"
	"testing"
	"time"

	"filmorate/internal/database"
	"filmorate/internal/models"
	"filmorate/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestFilmService() (*FilmService, repository.UserRepository) {
	userRepo := repository.NewMemoryUserRepository()
	return NewFilmService(
		repository.NewMemoryFilmRepository(),
		userRepo,
		repository.NewMemoryGenreRepository(database.ReferenceGenres),
		repository.NewMemoryMpaRepository(database.ReferenceMpas),
	), userRepo
}

func testFilm(name string) *models.Film {
	return &models.Film{
		Name:        name,
		Description: "adipisicing",
		ReleaseDate: models.NewDate(1967, time.March, 25),
		Duration:    100,
		Mpa:         models.Mpa{ID: 1},
	}
}

func createTestUser(t *testing.T, repo repository.UserRepository) *models.User {
	t.Helper()
	user := &models.User{
		Email:    "mail@mail.ru",
		Login:    "dolore",
		Name:     "Nick Name",
		Birthday: models.NewDate(1946, time.August, 20),
	}
	require.NoError(t, repo.Create(context.Background(), user))
	return user
}

func TestCreateFilm_AssignsIDAndResolvesReferences(t *testing.T) {
	svc, _ := newTestFilmService()
	ctx := context.Background()

	film := testFilm("nisi eiusmod")
	film.Mpa = models.Mpa{ID: 3}
	film.Genres = []models.Genre{{ID: 2}, {ID: 1}, {ID: 2}}

	created, err := svc.CreateFilm(ctx, film)
	require.NoError(t, err)

	assert.Equal(t, uint(1), created.ID)
	assert.Equal(t, "PG-13", created.Mpa.Name)
	// duplicates collapsed, ordered by id, names resolved
	require.Len(t, created.Genres, 2)
	assert.Equal(t, "Comedy", created.Genres[0].Name)
	assert.Equal(t, "Drama", created.Genres[1].Name)
	assert.Empty(t, created.Likes)
}

func TestCreateFilm_ValidationRejected(t *testing.T) {
	svc, _ := newTestFilmService()

	film := testFilm("")
	_, err := svc.CreateFilm(context.Background(), film)

	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, models.CodeValidation, appErr.Code)

	films, err := svc.ListFilms(context.Background())
	require.NoError(t, err)
	assert.Empty(t, films)
}

func TestCreateFilm_MissingMpa(t *testing.T) {
	svc, _ := newTestFilmService()

	film := testFilm("nisi eiusmod")
	film.Mpa = models.Mpa{}
	_, err := svc.CreateFilm(context.Background(), film)

	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, models.CodeValidation, appErr.Code)
}

func TestCreateFilm_UnknownReferences(t *testing.T) {
	svc, _ := newTestFilmService()
	ctx := context.Background()

	film := testFilm("nisi eiusmod")
	film.Mpa = models.Mpa{ID: 999}
	_, err := svc.CreateFilm(ctx, film)
	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, models.CodeNotFound, appErr.Code)

	film = testFilm("nisi eiusmod")
	film.Genres = []models.Genre{{ID: 999}}
	_, err = svc.CreateFilm(ctx, film)
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, models.CodeNotFound, appErr.Code)
}

func TestUpdateFilm(t *testing.T) {
	svc, _ := newTestFilmService()
	ctx := context.Background()

	created, err := svc.CreateFilm(ctx, testFilm("nisi eiusmod"))
	require.NoError(t, err)

	update := testFilm("Film Updated")
	update.ID = created.ID
	update.Description = "New film update decription"
	update.Duration = 190

	updated, err := svc.UpdateFilm(ctx, update)
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "Film Updated", updated.Name)
	assert.Equal(t, 190, updated.Duration)
}

func TestUpdateFilm_UnknownID(t *testing.T) {
	svc, _ := newTestFilmService()

	update := testFilm("Film Updated")
	update.ID = 9999
	_, err := svc.UpdateFilm(context.Background(), update)

	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, models.CodeNotFound, appErr.Code)
}

func TestLikes(t *testing.T) {
	svc, userRepo := newTestFilmService()
	ctx := context.Background()

	film, err := svc.CreateFilm(ctx, testFilm("nisi eiusmod"))
	require.NoError(t, err)
	user := createTestUser(t, userRepo)

	require.NoError(t, svc.AddLike(ctx, film.ID, user.ID))

	got, err := svc.GetFilmByID(ctx, film.ID)
	require.NoError(t, err)
	assert.Equal(t, []uint{user.ID}, got.Likes)

	// liking twice is a conflict
	err = svc.AddLike(ctx, film.ID, user.ID)
	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, models.CodeAlreadyExists, appErr.Code)

	require.NoError(t, svc.RemoveLike(ctx, film.ID, user.ID))

	// removing an absent like is not found
	err = svc.RemoveLike(ctx, film.ID, user.ID)
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, models.CodeNotFound, appErr.Code)
}

func TestAddLike_MissingEntities(t *testing.T) {
	svc, userRepo := newTestFilmService()
	ctx := context.Background()

	film, err := svc.CreateFilm(ctx, testFilm("nisi eiusmod"))
	require.NoError(t, err)
	user := createTestUser(t, userRepo)

	var appErr *models.AppError
	err = svc.AddLike(ctx, 9999, user.ID)
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, models.CodeNotFound, appErr.Code)

	err = svc.AddLike(ctx, film.ID, 9999)
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, models.CodeNotFound, appErr.Code)
}

func TestGetPopular(t *testing.T) {
	svc, userRepo := newTestFilmService()
	ctx := context.Background()

	var films []*models.Film
	for _, name := range []string{"first", "second", "third"} {
		film, err := svc.CreateFilm(ctx, testFilm(name))
		require.NoError(t, err)
		films = append(films, film)
	}

	var users []*models.User
	for i := 0; i < 3; i++ {
		user := &models.User{
			Email:    "mail@mail.ru",
			Login:    "dolore",
			Birthday: models.NewDate(1946, time.August, 20),
		}
		require.NoError(t, userRepo.Create(ctx, user))
		users = append(users, user)
	}

	// second gets two likes, third gets one, first gets none
	require.NoError(t, svc.AddLike(ctx, films[1].ID, users[0].ID))
	require.NoError(t, svc.AddLike(ctx, films[1].ID, users[1].ID))
	require.NoError(t, svc.AddLike(ctx, films[2].ID, users[2].ID))

	popular, err := svc.GetPopular(ctx, 10)
	require.NoError(t, err)
	require.Len(t, popular, 3)
	assert.Equal(t, "second", popular[0].Name)
	assert.Equal(t, "third", popular[1].Name)
	assert.Equal(t, "first", popular[2].Name)

	// count caps the result
	popular, err = svc.GetPopular(ctx, 1)
	require.NoError(t, err)
	require.Len(t, popular, 1)
	assert.Equal(t, "second", popular[0].Name)
}

func TestGetPopular_TiesKeepInsertionOrder(t *testing.T) {
	svc, _ := newTestFilmService()
	ctx := context.Background()

	for _, name := range []string{"first", "second", "third"} {
		_, err := svc.CreateFilm(ctx, testFilm(name))
		require.NoError(t, err)
	}

	popular, err := svc.GetPopular(ctx, 3)
	require.NoError(t, err)
	require.Len(t, popular, 3)
	assert.Equal(t, "first", popular[0].Name)
	assert.Equal(t, "second", popular[1].Name)
	assert.Equal(t, "third", popular[2].Name)
}

func TestPopularity_SurvivesLikeRemoval(t *testing.T) {
	svc, userRepo := newTestFilmService()
	ctx := context.Background()

	film := testFilm("Up")
	film.ReleaseDate = models.NewDate(2009, time.May, 29)
	film.Duration = 96
	created, err := svc.CreateFilm(ctx, film)
	require.NoError(t, err)
	require.Equal(t, uint(1), created.ID)

	first := createTestUser(t, userRepo)
	second := &models.User{
		Email:    "other@mail.ru",
		Login:    "other",
		Birthday: models.NewDate(1950, time.January, 1),
	}
	require.NoError(t, userRepo.Create(ctx, second))

	require.NoError(t, svc.AddLike(ctx, created.ID, first.ID))
	require.NoError(t, svc.AddLike(ctx, created.ID, second.ID))

	popular, err := svc.GetPopular(ctx, 1)
	require.NoError(t, err)
	require.Len(t, popular, 1)
	assert.Equal(t, created.ID, popular[0].ID)

	// still the top film after losing one like
	require.NoError(t, svc.RemoveLike(ctx, created.ID, first.ID))
	popular, err = svc.GetPopular(ctx, 1)
	require.NoError(t, err)
	require.Len(t, popular, 1)
	assert.Equal(t, created.ID, popular[0].ID)
	assert.Equal(t, []uint{second.ID}, popular[0].Likes)
}

func TestGetPopular_RejectsNonPositiveCount(t *testing.T) {
	svc, _ := newTestFilmService()

	for _, count := range []int{0, -1} {
		_, err := svc.GetPopular(context.Background(), count)
		var appErr *models.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, models.CodeValidation, appErr.Code)
	}
}
