package rest

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"cineMatch/business/recommender"
	"cineMatch/domain"
	"cineMatch/pkg/logger"
	"cineMatch/pkg/metrics"

	"github.com/AMFarhan21/fres"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type (
	RecommendationHandler struct {
		validate *validator.Validate
		recSvc   RecommendationService
	}

	RecommendationService interface {
		Collaborative(ctx context.Context, userID uint, n int) ([]domain.CollaborativeRecommendation, error)
		ContentBased(ctx context.Context, movieID uint, n int) ([]domain.ContentRecommendation, error)
		Hybrid(ctx context.Context, userID uint, movieID *uint, n int) ([]domain.HybridRecommendation, error)
		Popular(ctx context.Context, n int) ([]domain.PopularMovie, error)
		ByGenre(ctx context.Context, genre string, n int) ([]domain.GenreMovie, error)
	}

	RecommendationQuery struct {
		N       int   `query:"n"`
		MovieID *uint `query:"movie_id"`
	}
)

func NewRecommendationHandler(svc RecommendationService) *RecommendationHandler {
	return &RecommendationHandler{
		validate: validator.New(),
		recSvc:   svc,
	}
}

func (h *RecommendationHandler) respondError(c echo.Context, strategy string, err error) error {
	if errors.Is(err, recommender.ErrNotReady) {
		return c.JSON(http.StatusServiceUnavailable, ResponseError{Message: err.Error()})
	}
	logger.Error("Failed to build recommendations", "strategy", strategy, "error", err)
	return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
}

// GET /api/v1/recommendations?n=5
func (h *RecommendationHandler) Collaborative(c echo.Context) error {
	userID, ok := c.Get("user_id").(uint)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ResponseError{Message: "unauthorized"})
	}

	var q RecommendationQuery
	if err := c.Bind(&q); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	start := time.Now()
	recs, err := h.recSvc.Collaborative(c.Request().Context(), userID, q.N)
	if err != nil {
		return h.respondError(c, "collaborative", err)
	}
	metrics.RecommendLatency.WithLabelValues("collaborative").Observe(time.Since(start).Seconds())
	metrics.RecommendRequests.WithLabelValues("collaborative").Inc()

	return c.JSON(http.StatusOK, fres.Response.StatusOK(recs))
}

// GET /api/v1/recommendations/content/:movie_id?n=5
func (h *RecommendationHandler) ContentBased(c echo.Context) error {
	var movieID uint
	if _, err := fmt.Sscan(c.Param("movie_id"), &movieID); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "invalid movie ID"})
	}

	var q RecommendationQuery
	if err := c.Bind(&q); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	start := time.Now()
	recs, err := h.recSvc.ContentBased(c.Request().Context(), movieID, q.N)
	if err != nil {
		return h.respondError(c, "content", err)
	}
	metrics.RecommendLatency.WithLabelValues("content").Observe(time.Since(start).Seconds())
	metrics.RecommendRequests.WithLabelValues("content").Inc()

	return c.JSON(http.StatusOK, fres.Response.StatusOK(recs))
}

// GET /api/v1/recommendations/hybrid?movie_id=3&n=5
func (h *RecommendationHandler) Hybrid(c echo.Context) error {
	userID, ok := c.Get("user_id").(uint)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ResponseError{Message: "unauthorized"})
	}

	var q RecommendationQuery
	if err := c.Bind(&q); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	start := time.Now()
	recs, err := h.recSvc.Hybrid(c.Request().Context(), userID, q.MovieID, q.N)
	if err != nil {
		return h.respondError(c, "hybrid", err)
	}
	metrics.RecommendLatency.WithLabelValues("hybrid").Observe(time.Since(start).Seconds())
	metrics.RecommendRequests.WithLabelValues("hybrid").Inc()

	return c.JSON(http.StatusOK, fres.Response.StatusOK(recs))
}

// GET /api/v1/recommendations/popular?n=10
func (h *RecommendationHandler) Popular(c echo.Context) error {
	var q RecommendationQuery
	if err := c.Bind(&q); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	start := time.Now()
	movies, err := h.recSvc.Popular(c.Request().Context(), q.N)
	if err != nil {
		return h.respondError(c, "popular", err)
	}
	metrics.RecommendLatency.WithLabelValues("popular").Observe(time.Since(start).Seconds())
	metrics.RecommendRequests.WithLabelValues("popular").Inc()

	return c.JSON(http.StatusOK, fres.Response.StatusOK(movies))
}

// GET /api/v1/recommendations/genre/:genre?n=10
func (h *RecommendationHandler) ByGenre(c echo.Context) error {
	genre := c.Param("genre")
	if genre == "" {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "genre is required"})
	}

	var q RecommendationQuery
	if err := c.Bind(&q); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	start := time.Now()
	movies, err := h.recSvc.ByGenre(c.Request().Context(), genre, q.N)
	if err != nil {
		return h.respondError(c, "genre", err)
	}
	metrics.RecommendLatency.WithLabelValues("genre").Observe(time.Since(start).Seconds())
	metrics.RecommendRequests.WithLabelValues("genre").Inc()

	return c.JSON(http.StatusOK, fres.Response.StatusOK(movies))
}
