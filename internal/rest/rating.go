package rest

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"cineMatch/business/recommender"
	"cineMatch/domain"
	"cineMatch/pkg/logger"

	"github.com/AMFarhan21/fres"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type (
	RatingHandler struct {
		validate      *validator.Validate
		ratingService RatingService
		historyLister RatingHistoryLister
		timeout       time.Duration
	}

	RatingService interface {
		AddRating(ctx context.Context, userID, movieID uint, value float64, review string) error
		UpdateRating(ctx context.Context, userID, movieID uint, value float64, review string) error
		DeleteRating(ctx context.Context, userID, movieID uint) error
	}

	// RatingHistoryLister reads a user's rating history from the in-memory
	// snapshot rather than hitting the database on every request.
	RatingHistoryLister interface {
		UserRatings(ctx context.Context, userID uint) ([]domain.UserRating, error)
	}

	RatingRequest struct {
		MovieID uint    `json:"movie_id" validate:"required"`
		Rating  float64 `json:"rating" validate:"required,gte=1,lte=5"`
		Review  string  `json:"review,omitempty"`
	}

	RatingUpdateRequest struct {
		Rating float64 `json:"rating" validate:"required,gte=1,lte=5"`
		Review string  `json:"review,omitempty"`
	}
)

func NewRatingHandler(svc RatingService, lister RatingHistoryLister) *RatingHandler {
	return &RatingHandler{
		validate:      validator.New(),
		ratingService: svc,
		historyLister: lister,
		timeout:       10 * time.Second,
	}
}

// GetMyRatings handles listing the authenticated user's rating history
func (h *RatingHandler) GetMyRatings(c echo.Context) error {
	userID, ok := c.Get("user_id").(uint)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ResponseError{Message: "unauthorized"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	ratings, err := h.historyLister.UserRatings(ctx, userID)
	if err != nil {
		if errors.Is(err, recommender.ErrNotReady) {
			return c.JSON(http.StatusServiceUnavailable, ResponseError{Message: err.Error()})
		}
		logger.Error("Failed to get user ratings", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(ratings))
}

// AddRating handles submitting a new rating for a movie
func (h *RatingHandler) AddRating(c echo.Context) error {
	userID, ok := c.Get("user_id").(uint)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ResponseError{Message: "unauthorized"})
	}

	var req RatingRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}
	if err := h.validate.Struct(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	if err := h.ratingService.AddRating(ctx, userID, req.MovieID, req.Rating, req.Review); err != nil {
		if strings.Contains(err.Error(), "not found") {
			return c.JSON(http.StatusNotFound, ResponseError{Message: err.Error()})
		}
		logger.Error("Failed to add rating", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusCreated, fres.Response.StatusCreated("rating recorded"))
}

// UpdateRating handles changing an existing rating
func (h *RatingHandler) UpdateRating(c echo.Context) error {
	userID, ok := c.Get("user_id").(uint)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ResponseError{Message: "unauthorized"})
	}

	var movieID uint
	if _, err := fmt.Sscan(c.Param("movie_id"), &movieID); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "invalid movie ID"})
	}

	var req RatingUpdateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}
	if err := h.validate.Struct(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	if err := h.ratingService.UpdateRating(ctx, userID, movieID, req.Rating, req.Review); err != nil {
		if strings.Contains(err.Error(), "not found") {
			return c.JSON(http.StatusNotFound, ResponseError{Message: err.Error()})
		}
		logger.Error("Failed to update rating", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK("rating updated"))
}

// DeleteRating handles removing a rating
func (h *RatingHandler) DeleteRating(c echo.Context) error {
	userID, ok := c.Get("user_id").(uint)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ResponseError{Message: "unauthorized"})
	}

	var movieID uint
	if _, err := fmt.Sscan(c.Param("movie_id"), &movieID); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "invalid movie ID"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	if err := h.ratingService.DeleteRating(ctx, userID, movieID); err != nil {
		if strings.Contains(err.Error(), "not found") {
			return c.JSON(http.StatusNotFound, ResponseError{Message: err.Error()})
		}
		logger.Error("Failed to delete rating", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "Rating deleted successfully",
	})
}
