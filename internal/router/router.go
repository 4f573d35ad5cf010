package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/user/kinohub/internal/handler"
	"github.com/user/kinohub/internal/middleware"
)

// RegisterRoutes 注册所有路由
func RegisterRoutes(r *gin.Engine, h *handler.Handler) {
	// 健康检查
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")

	// ==================== 认证 ====================
	auth := api.Group("/auth")
	{
		auth.POST("/register", h.Register)
		auth.POST("/login", h.Login)
	}

	// ==================== 电影 ====================
	movies := api.Group("/movies")
	{
		movies.GET("", h.ListMovies)
		movies.GET("/most-popular", h.MostPopularMovies)
		movies.GET("/by-slug/:slug", h.MovieBySlug)
		movies.GET("/by-actor/:actorId", h.MoviesByActor)
		movies.POST("/by-genres", h.MoviesByGenres)
		movies.PUT("/update-count-opened", h.UpdateCountOpened)

		// 管理接口
		admin := movies.Group("")
		admin.Use(middleware.RequireAuth(h.Config.AppSecret))
		admin.Use(middleware.RequireAdmin())
		{
			admin.GET("/:id", h.MovieByID)
			admin.POST("", h.CreateMovie)
			admin.PUT("/:id", h.UpdateMovie)
			admin.DELETE("/:id", h.DeleteMovie)
		}
	}

	// ==================== 类型 ====================
	genres := api.Group("/genres")
	{
		genres.GET("", h.ListGenres)
		genres.GET("/by-slug/:slug", h.GenreBySlug)

		admin := genres.Group("")
		admin.Use(middleware.RequireAuth(h.Config.AppSecret))
		admin.Use(middleware.RequireAdmin())
		{
			admin.GET("/:id", h.GenreByID)
			admin.POST("", h.CreateGenre)
			admin.PUT("/:id", h.UpdateGenre)
			admin.DELETE("/:id", h.DeleteGenre)
		}
	}

	// ==================== 演员 ====================
	actors := api.Group("/actors")
	{
		actors.GET("", h.ListActors)
		actors.GET("/by-slug/:slug", h.ActorBySlug)

		admin := actors.Group("")
		admin.Use(middleware.RequireAuth(h.Config.AppSecret))
		admin.Use(middleware.RequireAdmin())
		{
			admin.GET("/:id", h.ActorByID)
			admin.POST("", h.CreateActor)
			admin.PUT("/:id", h.UpdateActor)
			admin.DELETE("/:id", h.DeleteActor)
		}
	}

	// ==================== 评分（需要登录）====================
	ratings := api.Group("/ratings")
	ratings.Use(middleware.RequireAuth(h.Config.AppSecret))
	{
		ratings.GET("/:movieId", h.RatingByMovie)
		ratings.POST("", h.SetRating)
	}

	// ==================== 用户中心（需要登录）====================
	users := api.Group("/users")
	users.Use(middleware.RequireAuth(h.Config.AppSecret))
	{
		users.GET("/profile", h.Profile)
		users.GET("/profile/favorites", h.ListFavorites)
		users.PUT("/profile/favorites", h.ToggleFavorite)
	}
}
