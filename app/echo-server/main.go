package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"cineMatch/app/echo-server/router"
	"cineMatch/business/movie"
	"cineMatch/business/rating"
	"cineMatch/business/recommender"
	userService "cineMatch/business/user"
	"cineMatch/internal/middleware"
	psqlRepo "cineMatch/internal/repository/postgres"
	redisRepo "cineMatch/internal/repository/redis"
	"cineMatch/internal/rest"
	"cineMatch/pkg/config"
	"cineMatch/pkg/database"
	redisdb "cineMatch/pkg/database/redis"
	"cineMatch/pkg/logger"
	"cineMatch/pkg/metrics"
	"cineMatch/pkg/utils"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger.Init(cfg.App.Environment)
	logger.Info("Starting CineMatch", "version", cfg.App.Version)

	utils.InitJWT(cfg.JWT.SecretKey)
	metrics.Init()

	db, err := database.InitPostgres(cfg)
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}

	logger.Info("Database connected successfully")

	redisClient, err := redisdb.NewRedisClient(cfg)
	if err != nil {
		logger.Fatal("Failed to connect to Redis", "error", err)
	}
	defer func() {
		if err := redisdb.CloseRedisClient(redisClient); err != nil {
			logger.Error("Failed to close Redis client", "error", err)
		}
	}()

	// Init validate
	validate := validator.New()

	// Init repo
	userRepo := psqlRepo.NewUserRepository(db)
	movieRepo := psqlRepo.NewMovieRepository(db)
	ratingRepo := psqlRepo.NewRatingRepository(db)
	genreRepo := psqlRepo.NewGenreRepository(db)
	sessionRepo := redisRepo.NewSessionRepository(redisClient)

	// Init service
	recommenderService := recommender.NewRecommenderService(movieRepo, userRepo, ratingRepo)
	usrService := userService.NewUserService(userRepo, sessionRepo, validate)
	movieService := movie.NewMovieService(movieRepo, genreRepo)
	ratingService := rating.NewRatingService(ratingRepo, movieRepo, recommenderService)

	// Build the first snapshot before serving traffic
	startupCtx, cancelStartup := context.WithTimeout(context.Background(), 30*time.Second)
	if err := recommenderService.Refresh(startupCtx); err != nil {
		cancelStartup()
		logger.Fatal("Failed to build initial snapshot", "error", err)
	}
	cancelStartup()

	// Init handler
	userHandler := rest.NewUserHandler(usrService)
	movieHandler := rest.NewMovieHandler(movieService)
	ratingHandler := rest.NewRatingHandler(ratingService, recommenderService)
	recommendationHandler := rest.NewRecommendationHandler(recommenderService)

	// Init echo
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// HTTP error handler
	e.HTTPErrorHandler = middleware.ErrorHandler

	// Global middleware
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: []string{"http://localhost:3000", "http://localhost:8080"},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodPatch},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
	}))

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]interface{}{
			"status":  "ok",
			"app":     cfg.App.Name,
			"version": cfg.App.Version,
		})
	})
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// Auth middleware
	authRequired := middleware.AuthMiddlewareWithSession(sessionRepo)
	adminOnly := middleware.AdminOnly()

	// Setup routes
	api := e.Group("/api/v1")
	router.SetupUserRoutes(api, userHandler, authRequired, adminOnly)
	router.SetupMovieRoutes(api, movieHandler, authRequired, adminOnly)
	router.SetupRatingRoutes(api, ratingHandler, authRequired)
	router.SetupRecommendationRoutes(api, recommendationHandler, authRequired)

	// Goroutine server
	go func() {
		addr := fmt.Sprintf(":%s", cfg.Server.Port)
		logger.Info("Server starting", "address", addr)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", "error", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		logger.Error("Server shutdown error", "error", err)
	}

	logger.Info("Server stopped")
}
