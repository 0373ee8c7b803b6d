package recommender

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"cineMatch/domain"
	"cineMatch/pkg/logger"
)

// ErrNotReady is returned when a query arrives before the first successful
// Refresh. It signals an engine problem, not an empty result: not-found
// conditions always come back as empty lists.
var ErrNotReady = errors.New("recommendation snapshot not ready")

// ---- Repository interfaces ----

type MovieRepository interface {
	FindAll(ctx context.Context) ([]domain.Movie, error)
}

type UserRepository interface {
	FindAll(ctx context.Context) ([]domain.User, error)
}

type RatingRepository interface {
	FindAll(ctx context.Context) ([]domain.Rating, error)
}

// ---- Usecase / Service ----

// RecommenderService owns the current snapshot. Refresh builds a complete
// replacement off to the side and swaps one pointer, so in-flight readers
// always see either the old or the new snapshot in full.
type RecommenderService struct {
	movieRepo  MovieRepository
	userRepo   UserRepository
	ratingRepo RatingRepository

	current atomic.Pointer[Snapshot]
}

func NewRecommenderService(
	movieRepo MovieRepository,
	userRepo UserRepository,
	ratingRepo RatingRepository,
) *RecommenderService {
	return &RecommenderService{
		movieRepo:  movieRepo,
		userRepo:   userRepo,
		ratingRepo: ratingRepo,
	}
}

// Refresh reloads the catalog and rebuilds every derived structure. It must
// be called after any rating mutation for subsequent queries to reflect it.
func (s *RecommenderService) Refresh(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	movies, err := s.movieRepo.FindAll(ctx)
	if err != nil {
		return fmt.Errorf("load movies: %w", err)
	}
	users, err := s.userRepo.FindAll(ctx)
	if err != nil {
		return fmt.Errorf("load users: %w", err)
	}
	ratings, err := s.ratingRepo.FindAll(ctx)
	if err != nil {
		return fmt.Errorf("load ratings: %w", err)
	}

	start := time.Now()
	snap := buildSnapshot(movies, users, ratings)
	s.current.Store(snap)

	elapsed := time.Since(start)
	SnapshotRefreshTotal.Inc()
	SnapshotRefreshDuration.Observe(elapsed.Seconds())
	SnapshotMovies.Set(float64(len(snap.movies)))
	SnapshotRatedUsers.Set(float64(len(snap.matrix.userIDs)))

	logger.Info("recommender_refresh",
		"movies", len(snap.movies),
		"users", len(users),
		"ratings", len(ratings),
		"rated_users", len(snap.matrix.userIDs),
		"duration_ms", elapsed.Milliseconds(),
	)

	return nil
}

func (s *RecommenderService) snapshot() (*Snapshot, error) {
	snap := s.current.Load()
	if snap == nil {
		return nil, ErrNotReady
	}
	return snap, nil
}

func (s *RecommenderService) Collaborative(ctx context.Context, userID uint, n int) ([]domain.CollaborativeRecommendation, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}
	snap, err := s.snapshot()
	if err != nil {
		return nil, err
	}
	if n <= 0 {
		n = 5
	}
	return snap.collaborative(userID, n), nil
}

func (s *RecommenderService) ContentBased(ctx context.Context, movieID uint, n int) ([]domain.ContentRecommendation, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}
	snap, err := s.snapshot()
	if err != nil {
		return nil, err
	}
	if n <= 0 {
		n = 5
	}
	return snap.contentBased(movieID, n), nil
}

// Hybrid blends collaborative and content scores; movieID may be nil, in
// which case the collaborative ranking is returned as-is.
func (s *RecommenderService) Hybrid(ctx context.Context, userID uint, movieID *uint, n int) ([]domain.HybridRecommendation, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}
	snap, err := s.snapshot()
	if err != nil {
		return nil, err
	}
	if n <= 0 {
		n = 5
	}
	return snap.hybrid(userID, movieID, n), nil
}

func (s *RecommenderService) Popular(ctx context.Context, n int) ([]domain.PopularMovie, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}
	snap, err := s.snapshot()
	if err != nil {
		return nil, err
	}
	if n <= 0 {
		n = 10
	}
	return snap.popular(n), nil
}

func (s *RecommenderService) ByGenre(ctx context.Context, genre string, n int) ([]domain.GenreMovie, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}
	snap, err := s.snapshot()
	if err != nil {
		return nil, err
	}
	if n <= 0 {
		n = 10
	}
	return snap.byGenre(genre, n), nil
}

func (s *RecommenderService) UserRatings(ctx context.Context, userID uint) ([]domain.UserRating, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}
	snap, err := s.snapshot()
	if err != nil {
		return nil, err
	}
	return snap.userRatings(userID), nil
}
