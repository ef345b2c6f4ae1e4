// Package server contains the HTTP handlers and route setup for the
// film catalog API.
package server

import (
	"context"
	"fmt"
	"time"

	"filmorate/internal/config"
	"filmorate/internal/database"
	"filmorate/internal/middleware"
	"filmorate/internal/repository"
	"filmorate/internal/service"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/monitor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Server holds all dependencies and provides handlers
type Server struct {
	config         *config.Config
	db             *gorm.DB
	redis          *redis.Client
	promMiddleware *fiberprometheus.FiberPrometheus

	filmService  *service.FilmService
	userService  *service.UserService
	genreService *service.GenreService
	mpaService   *service.MpaService
}

// NewServer creates a new server instance with all dependencies
func NewServer(cfg *config.Config) (*Server, error) {
	db, err := database.Connect(cfg)
	if err != nil {
		return nil, fmt.Errorf("database connection failed: %w", err)
	}

	var redisClient *redis.Client
	if cfg.RedisURL != "" {
		redisClient = redis.NewClient(&redis.Options{Addr: cfg.RedisURL})
	}

	return NewServerWithDeps(cfg, db, redisClient), nil
}

// NewServerWithDeps creates a Server using an already-established database
// connection. Use this in tests or when a bootstrap layer owns the DB.
func NewServerWithDeps(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) *Server {
	srv := NewServerWithRepositories(cfg,
		repository.NewFilmRepository(db),
		repository.NewUserRepository(db),
		repository.NewGenreRepository(db),
		repository.NewMpaRepository(db),
		redisClient,
	)
	srv.db = db
	return srv
}

// NewServerWithRepositories wires a Server on top of arbitrary repository
// implementations. Tests use this with the in-memory repositories.
func NewServerWithRepositories(
	cfg *config.Config,
	filmRepo repository.FilmRepository,
	userRepo repository.UserRepository,
	genreRepo repository.GenreRepository,
	mpaRepo repository.MpaRepository,
	redisClient *redis.Client,
) *Server {
	return &Server{
		config:         cfg,
		redis:          redisClient,
		promMiddleware: middleware.InitMetrics("filmorate-api"),
		filmService:    service.NewFilmService(filmRepo, userRepo, genreRepo, mpaRepo),
		userService:    service.NewUserService(userRepo),
		genreService:   service.NewGenreService(genreRepo),
		mpaService:     service.NewMpaService(mpaRepo),
	}
}

// SetupMiddleware configures middleware for the Fiber app
func (s *Server) SetupMiddleware(app *fiber.App) {
	// Panic recovery
	app.Use(recover.New())

	// Request ID for tracing
	app.Use(requestid.New())

	// Propagate the request ID into the request context for logging
	app.Use(middleware.ContextMiddleware())

	// Prometheus metrics
	if s.promMiddleware != nil {
		app.Use(middleware.MetricsMiddleware(s.promMiddleware))
	}

	// Structured logging (after requestid and context middleware)
	app.Use(middleware.StructuredLogger())

	app.Use(cors.New())

	// Global rate limiting (100 requests per minute per IP)
	app.Use(limiter.New(limiter.Config{
		Max:        100,
		Expiration: 1 * time.Minute,
		Next: func(c *fiber.Ctx) bool {
			return c.Method() == fiber.MethodOptions
		},
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"error": "Too many requests, please try again later.",
			})
		},
	}))
}

// SetupRoutes configures all routes for the application
func (s *Server) SetupRoutes(app *fiber.App) {
	// Health checks
	app.Get("/health/live", s.LivenessCheck)
	app.Get("/health/ready", s.ReadinessCheck)

	// Metrics endpoint for Prometheus
	if s.promMiddleware != nil {
		s.promMiddleware.RegisterAt(app, "/metrics")
	}
	app.Get("/metrics/dashboard", monitor.New(monitor.Config{
		Title: "Filmorate Metrics Dashboard",
	}))

	// Film routes. /films/popular must be registered before /films/:id.
	films := app.Group("/films")
	films.Get("/", s.ListFilms)
	films.Post("/", middleware.RateLimit(
		s.redis, 30, time.Minute, "create_film"), s.CreateFilm)
	films.Put("/", s.UpdateFilm)
	films.Get("/popular", s.GetPopularFilms)
	films.Get("/:id", s.GetFilm)
	films.Put("/:id/like/:userId", s.AddLike)
	films.Delete("/:id/like/:userId", s.RemoveLike)

	// User routes. Specific /:id/friends routes before generic /:id.
	users := app.Group("/users")
	users.Get("/", s.ListUsers)
	users.Post("/", middleware.RateLimit(
		s.redis, 30, time.Minute, "create_user"), s.CreateUser)
	users.Put("/", s.UpdateUser)
	users.Get("/:id/friends/common/:otherId", s.GetCommonFriends)
	users.Get("/:id/friends", s.GetFriends)
	users.Put("/:id/friends/:friendId", s.AddFriend)
	users.Delete("/:id/friends/:friendId", s.RemoveFriend)
	users.Get("/:id", s.GetUser)

	// Reference data lookups
	genres := app.Group("/genres")
	genres.Get("/", s.ListGenres)
	genres.Get("/:id", s.GetGenre)

	mpa := app.Group("/mpa")
	mpa.Get("/", s.ListMpas)
	mpa.Get("/:id", s.GetMpa)
}

// LivenessCheck handles GET /health/live
func (s *Server) LivenessCheck(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

// ReadinessCheck handles GET /health/ready
func (s *Server) ReadinessCheck(c *fiber.Ctx) error {
	if s.db != nil {
		sqlDB, err := s.db.DB()
		if err != nil || sqlDB.PingContext(c.Context()) != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
				"status": "database unavailable",
			})
		}
	}
	return c.JSON(fiber.Map{"status": "ready"})
}

// Shutdown releases server resources.
func (s *Server) Shutdown(_ context.Context) error {
	if s.redis != nil {
		if err := s.redis.Close(); err != nil {
			return err
		}
	}
	if s.db != nil {
		sqlDB, err := s.db.DB()
		if err != nil {
			return err
		}
		return sqlDB.Close()
	}
	return nil
}
