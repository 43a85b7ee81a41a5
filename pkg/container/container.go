package container

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"filmrate-backend/internal/config"
	infraCache "filmrate-backend/internal/infrastructure/cache"
	"filmrate-backend/internal/infrastructure/database"
	"filmrate-backend/pkg/cache"

	"filmrate-backend/internal/domains/director"
	directorHandler "filmrate-backend/internal/domains/director/handler"
	directorRepo "filmrate-backend/internal/domains/director/repository"
	directorService "filmrate-backend/internal/domains/director/service"
	"filmrate-backend/internal/domains/feed"
	feedRepo "filmrate-backend/internal/domains/feed/repository"
	"filmrate-backend/internal/domains/film"
	filmHandler "filmrate-backend/internal/domains/film/handler"
	filmRepo "filmrate-backend/internal/domains/film/repository"
	filmService "filmrate-backend/internal/domains/film/service"
	"filmrate-backend/internal/domains/genre"
	genreHandler "filmrate-backend/internal/domains/genre/handler"
	genreRepo "filmrate-backend/internal/domains/genre/repository"
	genreService "filmrate-backend/internal/domains/genre/service"
	"filmrate-backend/internal/domains/mpa"
	mpaHandler "filmrate-backend/internal/domains/mpa/handler"
	mpaRepo "filmrate-backend/internal/domains/mpa/repository"
	mpaService "filmrate-backend/internal/domains/mpa/service"
	"filmrate-backend/internal/domains/review"
	reviewHandler "filmrate-backend/internal/domains/review/handler"
	reviewRepo "filmrate-backend/internal/domains/review/repository"
	reviewService "filmrate-backend/internal/domains/review/service"
	"filmrate-backend/internal/domains/user"
	userHandler "filmrate-backend/internal/domains/user/handler"
	userRepo "filmrate-backend/internal/domains/user/repository"
	userService "filmrate-backend/internal/domains/user/service"
)

// Container holds the full dependency graph. Everything in it is a
// singleton built once at startup, in dependency order: config,
// infrastructure, repositories, services, handlers.
type Container struct {
	Config *config.Config
	DB     *database.PostgresDB
	Cache  cache.Cache

	UserRepo     user.Repository
	FilmRepo     film.Repository
	MpaRepo      mpa.Repository
	GenreRepo    genre.Repository
	DirectorRepo director.Repository
	ReviewRepo   review.Repository
	FeedRepo     feed.Repository

	UserService     user.Service
	FilmService     film.Service
	MpaService      mpa.Service
	GenreService    genre.Service
	DirectorService director.Service
	ReviewService   review.Service

	UserHandler     *userHandler.UserHandler
	FilmHandler     *filmHandler.FilmHandler
	MpaHandler      *mpaHandler.MpaHandler
	GenreHandler    *genreHandler.GenreHandler
	DirectorHandler *directorHandler.DirectorHandler
	ReviewHandler   *reviewHandler.ReviewHandler
}

func NewContainer(ctx context.Context) (*Container, error) {
	c := &Container{}

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg

	c.DB = database.NewPostgresDB(&cfg.Database)
	if err := c.DB.Connect(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	c.Cache = infraCache.NewRedisCache(cfg.Redis.Host, cfg.Redis.Password, cfg.Redis.DB)
	if err := c.Cache.Ping(ctx); err != nil {
		// The cache is an optimization for the reference tables; the app
		// still serves from Postgres without it.
		log.Warn().Err(err).Msg("redis unavailable, continuing without cache warm-up")
	}

	pool := c.DB.Pool
	c.UserRepo = userRepo.NewPostgresRepository(pool)
	c.FilmRepo = filmRepo.NewPostgresRepository(pool)
	c.MpaRepo = mpaRepo.NewPostgresRepository(pool, c.Cache)
	c.GenreRepo = genreRepo.NewPostgresRepository(pool, c.Cache)
	c.DirectorRepo = directorRepo.NewPostgresRepository(pool, c.Cache)
	c.ReviewRepo = reviewRepo.NewPostgresRepository(pool)
	c.FeedRepo = feedRepo.NewPostgresRepository(pool)

	c.UserService = userService.NewUserService(c.UserRepo, c.FeedRepo)
	c.FilmService = filmService.NewFilmService(c.FilmRepo)
	c.MpaService = mpaService.NewMpaService(c.MpaRepo)
	c.GenreService = genreService.NewGenreService(c.GenreRepo)
	c.DirectorService = directorService.NewDirectorService(c.DirectorRepo)
	c.ReviewService = reviewService.NewReviewService(c.ReviewRepo)

	c.UserHandler = userHandler.NewUserHandler(c.UserService)
	c.FilmHandler = filmHandler.NewFilmHandler(c.FilmService)
	c.MpaHandler = mpaHandler.NewMpaHandler(c.MpaService)
	c.GenreHandler = genreHandler.NewGenreHandler(c.GenreService)
	c.DirectorHandler = directorHandler.NewDirectorHandler(c.DirectorService)
	c.ReviewHandler = reviewHandler.NewReviewHandler(c.ReviewService)

	log.Info().Msg("dependency container initialized")
	return c, nil
}

// Cleanup releases infrastructure resources in reverse order of creation.
func (c *Container) Cleanup() {
	if closer, ok := c.Cache.(interface{ Close() error }); ok {
		if err := closer.Close(); err != nil {
			log.Error().Err(err).Msg("failed to close redis client")
		}
	}
	if c.DB != nil {
		c.DB.Close()
	}
	log.Info().Msg("container cleanup complete")
}
