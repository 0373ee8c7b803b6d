package router

import (
	"cineMatch/internal/rest"

	"github.com/labstack/echo/v4"
)

func SetupUserRoutes(api *echo.Group, handler *rest.UserHandler, authRequired echo.MiddlewareFunc, adminOnly echo.MiddlewareFunc) {
	auth := api.Group("/auth")
	auth.POST("/register", handler.Register)
	auth.POST("/login", handler.Login)
	auth.POST("/logout", handler.Logout, authRequired)

	profile := api.Group("/profile", authRequired)
	profile.GET("", handler.GetProfile)
	profile.PUT("", handler.UpdateProfile)
	profile.PUT("/password", handler.ChangePassword)

	users := api.Group("/users", authRequired, adminOnly)
	users.GET("", handler.GetAllUsers)
	users.GET("/:id", handler.GetUserByID)
}

func SetupMovieRoutes(api *echo.Group, handler *rest.MovieHandler, authRequired echo.MiddlewareFunc, adminOnly echo.MiddlewareFunc) {
	movies := api.Group("/movies")

	movies.GET("", handler.GetMovies)
	movies.GET("/:id", handler.GetMovieByID)
	movies.POST("", handler.CreateMovie, authRequired, adminOnly)
	movies.PUT("/:id", handler.UpdateMovie, authRequired, adminOnly)
	movies.DELETE("/:id", handler.DeleteMovie, authRequired, adminOnly)

	api.GET("/genres", handler.GetGenres)
}

func SetupRatingRoutes(api *echo.Group, handler *rest.RatingHandler, authRequired echo.MiddlewareFunc) {
	ratings := api.Group("/ratings", authRequired)

	ratings.GET("", handler.GetMyRatings)
	ratings.POST("", handler.AddRating)
	ratings.PUT("/:movie_id", handler.UpdateRating)
	ratings.DELETE("/:movie_id", handler.DeleteRating)
}

func SetupRecommendationRoutes(api *echo.Group, handler *rest.RecommendationHandler, authRequired echo.MiddlewareFunc) {
	reco := api.Group("/recommendations")

	reco.GET("", handler.Collaborative, authRequired)
	reco.GET("/hybrid", handler.Hybrid, authRequired)
	reco.GET("/content/:movie_id", handler.ContentBased)
	reco.GET("/popular", handler.Popular)
	reco.GET("/genre/:genre", handler.ByGenre)
}
