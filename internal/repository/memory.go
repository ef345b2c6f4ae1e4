package repository

import (
	"context"
	"sort"
	"sync"

	"filmorate/internal/models"
)

// The in-memory repositories back the same interfaces as the gorm ones with
// plain maps behind a mutex. They exist so the service layer can run in tests
// without a database; ids are assigned from a strictly increasing counter and
// never reused.

type memoryUserRepository struct {
	mu      sync.Mutex
	users   map[uint]models.User
	order   []uint
	friends map[uint]map[uint]struct{}
	nextID  uint
}

// NewMemoryUserRepository creates a map-backed UserRepository.
func NewMemoryUserRepository() UserRepository {
	return &memoryUserRepository{
		users:   make(map[uint]models.User),
		friends: make(map[uint]map[uint]struct{}),
		nextID:  1,
	}
}

func (r *memoryUserRepository) List(_ context.Context) ([]models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	users := make([]models.User, 0, len(r.order))
	for _, id := range r.order {
		users = append(users, r.snapshotUser(id))
	}
	return users, nil
}

func (r *memoryUserRepository) GetByID(_ context.Context, id uint) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[id]; !ok {
		return nil, models.NewNotFoundError("User", id)
	}
	user := r.snapshotUser(id)
	return &user, nil
}

func (r *memoryUserRepository) GetByIDs(_ context.Context, ids []uint) ([]models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	sorted := append([]uint(nil), ids...)
	sort.Slice(sorted, func(a, b int) bool { return sorted[a] < sorted[b] })
	users := make([]models.User, 0, len(sorted))
	for _, id := range sorted {
		if _, ok := r.users[id]; ok {
			users = append(users, r.snapshotUser(id))
		}
	}
	return users, nil
}

func (r *memoryUserRepository) Create(_ context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	user.ID = r.nextID
	r.nextID++
	user.Friends = []uint{}
	r.users[user.ID] = *user
	r.order = append(r.order, user.ID)
	return nil
}

func (r *memoryUserRepository) Update(_ context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[user.ID]; !ok {
		return models.NewNotFoundError("User", user.ID)
	}
	r.users[user.ID] = *user
	return nil
}

func (r *memoryUserRepository) AddFriend(_ context.Context, userID, friendID uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.edgeSet(userID)[friendID] = struct{}{}
	r.edgeSet(friendID)[userID] = struct{}{}
	return nil
}

func (r *memoryUserRepository) RemoveFriend(_ context.Context, userID, friendID uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.edgeSet(userID), friendID)
	delete(r.edgeSet(friendID), userID)
	return nil
}

func (r *memoryUserRepository) GetFriendIDs(_ context.Context, userID uint) ([]uint, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.friendIDsLocked(userID), nil
}

func (r *memoryUserRepository) edgeSet(userID uint) map[uint]struct{} {
	set, ok := r.friends[userID]
	if !ok {
		set = make(map[uint]struct{})
		r.friends[userID] = set
	}
	return set
}

func (r *memoryUserRepository) friendIDsLocked(userID uint) []uint {
	ids := make([]uint, 0, len(r.friends[userID]))
	for id := range r.friends[userID] {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(a, b int) bool { return ids[a] < ids[b] })
	return ids
}

func (r *memoryUserRepository) snapshotUser(id uint) models.User {
	user := r.users[id]
	user.Friends = r.friendIDsLocked(id)
	return user
}

type memoryFilmRepository struct {
	mu     sync.Mutex
	films  map[uint]models.Film
	order  []uint
	likes  map[uint]map[uint]struct{}
	nextID uint
}

// NewMemoryFilmRepository creates a map-backed FilmRepository.
func NewMemoryFilmRepository() FilmRepository {
	return &memoryFilmRepository{
		films:  make(map[uint]models.Film),
		likes:  make(map[uint]map[uint]struct{}),
		nextID: 1,
	}
}

func (r *memoryFilmRepository) List(_ context.Context) ([]models.Film, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.filmsLocked(), nil
}

func (r *memoryFilmRepository) GetByID(_ context.Context, id uint) (*models.Film, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.films[id]; !ok {
		return nil, models.NewNotFoundError("Film", id)
	}
	film := r.snapshotFilm(id)
	return &film, nil
}

func (r *memoryFilmRepository) Create(_ context.Context, film *models.Film) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	film.ID = r.nextID
	r.nextID++
	film.Likes = []uint{}
	r.films[film.ID] = *film
	r.order = append(r.order, film.ID)
	return nil
}

func (r *memoryFilmRepository) Update(_ context.Context, film *models.Film) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.films[film.ID]; !ok {
		return models.NewNotFoundError("Film", film.ID)
	}
	r.films[film.ID] = *film
	return nil
}

func (r *memoryFilmRepository) AddLike(_ context.Context, filmID, userID uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	set, ok := r.likes[filmID]
	if !ok {
		set = make(map[uint]struct{})
		r.likes[filmID] = set
	}
	set[userID] = struct{}{}
	return nil
}

func (r *memoryFilmRepository) RemoveLike(_ context.Context, filmID, userID uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.likes[filmID], userID)
	return nil
}

func (r *memoryFilmRepository) HasLike(_ context.Context, filmID, userID uint) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.likes[filmID][userID]
	return ok, nil
}

func (r *memoryFilmRepository) GetPopular(_ context.Context, count int) ([]models.Film, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	films := r.filmsLocked()
	// Stable sort keeps insertion order on equal like counts.
	sort.SliceStable(films, func(a, b int) bool {
		return films[a].LikeCount() > films[b].LikeCount()
	})
	if count > len(films) {
		count = len(films)
	}
	return films[:count], nil
}

func (r *memoryFilmRepository) filmsLocked() []models.Film {
	films := make([]models.Film, 0, len(r.order))
	for _, id := range r.order {
		films = append(films, r.snapshotFilm(id))
	}
	return films
}

func (r *memoryFilmRepository) snapshotFilm(id uint) models.Film {
	film := r.films[id]
	userIDs := make([]uint, 0, len(r.likes[id]))
	for userID := range r.likes[id] {
		userIDs = append(userIDs, userID)
	}
	sort.Slice(userIDs, func(a, b int) bool { return userIDs[a] < userIDs[b] })
	film.Likes = userIDs
	film.Genres = append([]models.Genre(nil), film.Genres...)
	return film
}

type memoryGenreRepository struct {
	genres []models.Genre
}

// NewMemoryGenreRepository creates a read-only in-memory GenreRepository.
func NewMemoryGenreRepository(genres []models.Genre) GenreRepository {
	return &memoryGenreRepository{genres: append([]models.Genre(nil), genres...)}
}

func (r *memoryGenreRepository) List(_ context.Context) ([]models.Genre, error) {
	return append([]models.Genre(nil), r.genres...), nil
}

func (r *memoryGenreRepository) GetByID(_ context.Context, id uint) (*models.Genre, error) {
	for _, genre := range r.genres {
		if genre.ID == id {
			g := genre
			return &g, nil
		}
	}
	return nil, models.NewNotFoundError("Genre", id)
}

type memoryMpaRepository struct {
	mpas []models.Mpa
}

// NewMemoryMpaRepository creates a read-only in-memory MpaRepository.
func NewMemoryMpaRepository(mpas []models.Mpa) MpaRepository {
	return &memoryMpaRepository{mpas: append([]models.Mpa(nil), mpas...)}
}

func (r *memoryMpaRepository) List(_ context.Context) ([]models.Mpa, error) {
	return append([]models.Mpa(nil), r.mpas...), nil
}

func (r *memoryMpaRepository) GetByID(_ context.Context, id uint) (*models.Mpa, error) {
	for _, mpa := range r.mpas {
		if mpa.ID == id {
			m := mpa
			return &m, nil
		}
	}
	return nil, models.NewNotFoundError("Mpa", id)
}
