package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"filmrate-backend/internal/shared/middleware"
	"filmrate-backend/pkg/container"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.CORS(),
	)

	router.GET("/health", healthCheckHandler(c))

	setupFilmRoutes(router, c)
	setupUserRoutes(router, c)
	setupReferenceRoutes(router, c)
	setupDirectorRoutes(router, c)
	setupReviewRoutes(router, c)

	return router
}

func setupFilmRoutes(r *gin.Engine, c *container.Container) {
	films := r.Group("/films")
	{
		films.GET("", c.FilmHandler.GetAll)
		films.POST("", c.FilmHandler.Create)
		films.PUT("", c.FilmHandler.Update)

		// Static segments must register before the :id wildcard.
		films.GET("/popular", c.FilmHandler.GetPopular)
		films.GET("/common", c.FilmHandler.GetCommon)
		films.GET("/search", c.FilmHandler.Search)
		films.GET("/director/:directorId", c.FilmHandler.GetByDirector)

		films.GET("/:id", c.FilmHandler.GetByID)
		films.DELETE("/:id", c.FilmHandler.Delete)
		films.PUT("/:id/like/:userId", c.FilmHandler.AddLike)
		films.DELETE("/:id/like/:userId", c.FilmHandler.RemoveLike)
	}
}

func setupUserRoutes(r *gin.Engine, c *container.Container) {
	users := r.Group("/users")
	{
		users.GET("", c.UserHandler.GetAll)
		users.POST("", c.UserHandler.Create)
		users.PUT("", c.UserHandler.Update)
		users.GET("/:id", c.UserHandler.GetByID)
		users.DELETE("/:id", c.UserHandler.Delete)

		users.PUT("/:id/friends/:friendId", c.UserHandler.AddFriend)
		users.PUT("/:id/friends/:friendId/confirm", c.UserHandler.ConfirmFriend)
		users.DELETE("/:id/friends/:friendId", c.UserHandler.RemoveFriend)
		users.GET("/:id/friends", c.UserHandler.GetFriends)
		users.GET("/:id/friends/common/:otherId", c.UserHandler.GetCommonFriends)

		users.GET("/:id/feed", c.UserHandler.GetFeed)
		users.GET("/:id/recommendations", c.FilmHandler.Recommendations)
	}
}

func setupReferenceRoutes(r *gin.Engine, c *container.Container) {
	mpa := r.Group("/mpa")
	{
		mpa.GET("", c.MpaHandler.GetAll)
		mpa.GET("/:id", c.MpaHandler.GetByID)
	}

	genres := r.Group("/genres")
	{
		genres.GET("", c.GenreHandler.GetAll)
		genres.GET("/:id", c.GenreHandler.GetByID)
	}
}

func setupDirectorRoutes(r *gin.Engine, c *container.Container) {
	directors := r.Group("/directors")
	{
		directors.GET("", c.DirectorHandler.GetAll)
		directors.GET("/:id", c.DirectorHandler.GetByID)
		directors.POST("", c.DirectorHandler.Create)
		directors.PUT("", c.DirectorHandler.Update)
		directors.DELETE("/:id", c.DirectorHandler.Delete)
	}
}

func setupReviewRoutes(r *gin.Engine, c *container.Container) {
	reviews := r.Group("/reviews")
	{
		reviews.GET("", c.ReviewHandler.GetByFilm)
		reviews.POST("", c.ReviewHandler.Create)
		reviews.PUT("", c.ReviewHandler.Update)
		reviews.GET("/:id", c.ReviewHandler.GetByID)
		reviews.DELETE("/:id", c.ReviewHandler.Delete)

		reviews.PUT("/:id/like/:userId", c.ReviewHandler.AddLike)
		reviews.PUT("/:id/dislike/:userId", c.ReviewHandler.AddDislike)
		reviews.DELETE("/:id/like/:userId", c.ReviewHandler.RemoveLike)
		reviews.DELETE("/:id/dislike/:userId", c.ReviewHandler.RemoveDislike)
	}
}

// healthCheckHandler reports server, database and cache status.
func healthCheckHandler(c *container.Container) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		checkCtx, cancel := context.WithTimeout(ctx.Request.Context(), 2*time.Second)
		defer cancel()

		status := http.StatusOK
		overall := "ok"
		dbStatus := "up"
		if err := c.DB.HealthCheck(checkCtx); err != nil {
			dbStatus = "down"
			overall = "degraded"
			status = http.StatusServiceUnavailable
		}

		cacheStatus := "up"
		if err := c.Cache.Ping(checkCtx); err != nil {
			cacheStatus = "down"
		}

		ctx.JSON(status, gin.H{
			"status":   overall,
			"database": dbStatus,
			"cache":    cacheStatus,
			"version":  c.Config.App.Version,
		})
	}
}
