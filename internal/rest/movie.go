package rest

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"cineMatch/domain"
	"cineMatch/pkg/logger"

	"github.com/AMFarhan21/fres"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"gorm.io/datatypes"
)

type (
	MovieHandler struct {
		validate     *validator.Validate
		movieService MovieService
		timeout      time.Duration
	}

	MovieService interface {
		GetMovies(ctx context.Context, genre, search string) ([]domain.Movie, error)
		GetMovieByID(ctx context.Context, id uint) (domain.Movie, error)
		GetGenres(ctx context.Context) ([]domain.Genre, error)
		CreateMovie(ctx context.Context, movie *domain.Movie) (*domain.Movie, error)
		UpdateMovie(ctx context.Context, movie *domain.Movie) (*domain.Movie, error)
		DeleteMovie(ctx context.Context, id uint) error
	}

	MovieListQuery struct {
		Genre  string `query:"genre"`
		Search string `query:"search"`
	}

	MovieRequest struct {
		Title       string   `json:"title" validate:"required"`
		Genre       string   `json:"genre" validate:"required"`
		Year        int      `json:"year" validate:"required,gte=1888"`
		Rating      *float64 `json:"rating" validate:"omitempty,gte=0,lte=5"`
		Description string   `json:"description,omitempty"`
		Director    string   `json:"director,omitempty"`
		Cast        []string `json:"cast,omitempty"`
		PosterURL   string   `json:"poster_url,omitempty"`
		TrailerURL  string   `json:"trailer_url,omitempty"`
	}
)

func NewMovieHandler(svc MovieService) *MovieHandler {
	return &MovieHandler{
		validate:     validator.New(),
		movieService: svc,
		timeout:      10 * time.Second,
	}
}

// GetMovies handles listing the catalog, optionally filtered by genre or title search
func (h *MovieHandler) GetMovies(c echo.Context) error {
	var q MovieListQuery
	if err := c.Bind(&q); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	movies, err := h.movieService.GetMovies(ctx, q.Genre, q.Search)
	if err != nil {
		logger.Error("Failed to get movies", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(movies))
}

func (h *MovieHandler) GetMovieByID(c echo.Context) error {
	var movieID uint
	if _, err := fmt.Sscan(c.Param("id"), &movieID); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "invalid movie ID"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	movie, err := h.movieService.GetMovieByID(ctx, movieID)
	if err != nil {
		if strings.Contains(err.Error(), "not found") {
			return c.JSON(http.StatusNotFound, ResponseError{Message: err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(movie))
}

func (h *MovieHandler) GetGenres(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	genres, err := h.movieService.GetGenres(ctx)
	if err != nil {
		logger.Error("Failed to get genres", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(genres))
}

// CreateMovie handles adding a movie to the catalog (admin only)
func (h *MovieHandler) CreateMovie(c echo.Context) error {
	var req MovieRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}
	if err := h.validate.Struct(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	movie, err := req.toMovie()
	if err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	created, err := h.movieService.CreateMovie(ctx, movie)
	if err != nil {
		logger.Error("Failed to create movie", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusCreated, fres.Response.StatusCreated(created))
}

// UpdateMovie handles updating a catalog entry (admin only)
func (h *MovieHandler) UpdateMovie(c echo.Context) error {
	var movieID uint
	if _, err := fmt.Sscan(c.Param("id"), &movieID); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "invalid movie ID"})
	}

	var req MovieRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}
	if err := h.validate.Struct(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	movie, err := req.toMovie()
	if err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}
	movie.ID = movieID

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	updated, err := h.movieService.UpdateMovie(ctx, movie)
	if err != nil {
		if strings.Contains(err.Error(), "not found") {
			return c.JSON(http.StatusNotFound, ResponseError{Message: err.Error()})
		}
		logger.Error("Failed to update movie", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(updated))
}

// DeleteMovie handles removing a catalog entry (admin only)
func (h *MovieHandler) DeleteMovie(c echo.Context) error {
	var movieID uint
	if _, err := fmt.Sscan(c.Param("id"), &movieID); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "invalid movie ID"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	if err := h.movieService.DeleteMovie(ctx, movieID); err != nil {
		if strings.Contains(err.Error(), "not found") {
			return c.JSON(http.StatusNotFound, ResponseError{Message: err.Error()})
		}
		logger.Error("Failed to delete movie", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "Movie deleted successfully",
	})
}

func (r *MovieRequest) toMovie() (*domain.Movie, error) {
	movie := &domain.Movie{
		Title:       r.Title,
		Genre:       r.Genre,
		Year:        r.Year,
		Rating:      r.Rating,
		Description: r.Description,
		Director:    r.Director,
		PosterURL:   r.PosterURL,
		TrailerURL:  r.TrailerURL,
	}

	if len(r.Cast) > 0 {
		castJSON, err := json.Marshal(r.Cast)
		if err != nil {
			return nil, fmt.Errorf("failed to encode cast: %w", err)
		}
		movie.Cast = datatypes.JSON(castJSON)
	}

	return movie, nil
}
