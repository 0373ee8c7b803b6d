package rating

import (
	"context"
	"errors"
	"fmt"

	"cineMatch/domain"
	"cineMatch/pkg/logger"
	"cineMatch/pkg/metrics"
)

// RatingRepository contract interface
type RatingRepository interface {
	Upsert(ctx context.Context, rating *domain.Rating) error
	FindByUserAndMovie(ctx context.Context, userID, movieID uint) (domain.Rating, error)
	Delete(ctx context.Context, userID, movieID uint) error
}

type MovieRepository interface {
	FindByID(ctx context.Context, id uint) (domain.Movie, error)
}

// Refresher rebuilds the recommendation snapshot. Every successful rating
// mutation triggers it so the next query reflects the change.
type Refresher interface {
	Refresh(ctx context.Context) error
}

type ratingService struct {
	ratingRepo RatingRepository
	movieRepo  MovieRepository
	refresher  Refresher
}

func NewRatingService(
	ratingRepo RatingRepository,
	movieRepo MovieRepository,
	refresher Refresher,
) *ratingService {
	return &ratingService{
		ratingRepo: ratingRepo,
		movieRepo:  movieRepo,
		refresher:  refresher,
	}
}

func (s *ratingService) AddRating(ctx context.Context, userID, movieID uint, value float64, review string) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	if value < 1 || value > 5 {
		return errors.New("rating must be between 1 and 5")
	}

	if _, err := s.movieRepo.FindByID(ctx, movieID); err != nil {
		logger.Error("movie not found", err)
		return errors.New("movie not found")
	}

	rating := domain.Rating{
		UserID:  userID,
		MovieID: movieID,
		Rating:  value,
		Review:  review,
	}

	if err := s.ratingRepo.Upsert(ctx, &rating); err != nil {
		logger.Error("failed to save rating", err)
		return fmt.Errorf("failed to save rating: %w", err)
	}

	metrics.RatingMutationsTotal.WithLabelValues("add").Inc()

	return s.refresh(ctx)
}

func (s *ratingService) UpdateRating(ctx context.Context, userID, movieID uint, value float64, review string) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	if value < 1 || value > 5 {
		return errors.New("rating must be between 1 and 5")
	}

	existing, err := s.ratingRepo.FindByUserAndMovie(ctx, userID, movieID)
	if err != nil {
		logger.Error("rating not found", err)
		return errors.New("rating not found")
	}

	existing.Rating = value
	existing.Review = review

	if err := s.ratingRepo.Upsert(ctx, &existing); err != nil {
		logger.Error("failed to update rating", err)
		return fmt.Errorf("failed to update rating: %w", err)
	}

	metrics.RatingMutationsTotal.WithLabelValues("update").Inc()

	return s.refresh(ctx)
}

func (s *ratingService) DeleteRating(ctx context.Context, userID, movieID uint) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	if _, err := s.ratingRepo.FindByUserAndMovie(ctx, userID, movieID); err != nil {
		logger.Error("rating not found", err)
		return errors.New("rating not found")
	}

	if err := s.ratingRepo.Delete(ctx, userID, movieID); err != nil {
		logger.Error("failed to delete rating", err)
		return fmt.Errorf("failed to delete rating: %w", err)
	}

	metrics.RatingMutationsTotal.WithLabelValues("delete").Inc()

	return s.refresh(ctx)
}

func (s *ratingService) refresh(ctx context.Context) error {
	if s.refresher == nil {
		return nil
	}
	if err := s.refresher.Refresh(ctx); err != nil {
		logger.Error("failed to refresh recommendation snapshot", err)
		return fmt.Errorf("failed to refresh recommendations: %w", err)
	}
	return nil
}
