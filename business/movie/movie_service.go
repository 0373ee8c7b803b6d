package movie

import (
	"context"
	"errors"
	"fmt"

	"cineMatch/domain"
	"cineMatch/pkg/logger"
)

// MovieRepository contract interface
type MovieRepository interface {
	Create(ctx context.Context, movie *domain.Movie) error
	FindByID(ctx context.Context, id uint) (domain.Movie, error)
	FindAll(ctx context.Context) ([]domain.Movie, error)
	FindByGenre(ctx context.Context, genre string) ([]domain.Movie, error)
	Search(ctx context.Context, query string) ([]domain.Movie, error)
	Update(ctx context.Context, movie *domain.Movie) error
	Delete(ctx context.Context, id uint) error
}

type GenreRepository interface {
	FindAll(ctx context.Context) ([]domain.Genre, error)
}

type movieService struct {
	movieRepo MovieRepository
	genreRepo GenreRepository
}

func NewMovieService(movieRepo MovieRepository, genreRepo GenreRepository) *movieService {
	return &movieService{
		movieRepo: movieRepo,
		genreRepo: genreRepo,
	}
}

// GetMovies lists the catalog, optionally filtered on genre or a title
// search. Both filters empty means the whole catalog.
func (s *movieService) GetMovies(ctx context.Context, genre, search string) ([]domain.Movie, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	if search != "" {
		movies, err := s.movieRepo.Search(ctx, search)
		if err != nil {
			logger.Error("Failed to search movies", err)
			return nil, err
		}
		return movies, nil
	}

	if genre != "" {
		movies, err := s.movieRepo.FindByGenre(ctx, genre)
		if err != nil {
			logger.Error("Failed to find movies by genre", err)
			return nil, err
		}
		return movies, nil
	}

	movies, err := s.movieRepo.FindAll(ctx)
	if err != nil {
		logger.Error("Failed to find all movies", err)
		return nil, err
	}
	return movies, nil
}

func (s *movieService) GetMovieByID(ctx context.Context, id uint) (domain.Movie, error) {
	if err := ctx.Err(); err != nil {
		return domain.Movie{}, fmt.Errorf("context error: %w", err)
	}

	if id == 0 {
		return domain.Movie{}, errors.New("invalid movie id")
	}

	movie, err := s.movieRepo.FindByID(ctx, id)
	if err != nil {
		logger.Error("Failed to find movie", err)
		return domain.Movie{}, err
	}

	return movie, nil
}

func (s *movieService) GetGenres(ctx context.Context) ([]domain.Genre, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	genres, err := s.genreRepo.FindAll(ctx)
	if err != nil {
		logger.Error("Failed to find genres", err)
		return nil, err
	}
	return genres, nil
}

func (s *movieService) CreateMovie(ctx context.Context, movie *domain.Movie) (*domain.Movie, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	if movie.Title == "" {
		return nil, errors.New("title is required")
	}
	if movie.Genre == "" {
		return nil, errors.New("genre is required")
	}

	if err := s.movieRepo.Create(ctx, movie); err != nil {
		logger.Error("failed to create movie", err)
		return nil, fmt.Errorf("failed to create movie: %w", err)
	}

	logger.Info("movie created successfully", "movie_id", movie.ID)
	return movie, nil
}

func (s *movieService) UpdateMovie(ctx context.Context, movie *domain.Movie) (*domain.Movie, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	if movie.ID == 0 {
		return nil, errors.New("movie ID is required")
	}

	// Verify movie exists
	if _, err := s.movieRepo.FindByID(ctx, movie.ID); err != nil {
		logger.Error("movie not found", err)
		return nil, errors.New("movie not found")
	}

	if err := s.movieRepo.Update(ctx, movie); err != nil {
		logger.Error("failed to update movie", err)
		return nil, fmt.Errorf("failed to update movie: %w", err)
	}

	updated, err := s.movieRepo.FindByID(ctx, movie.ID)
	if err != nil {
		logger.Error("failed to fetch updated movie", err)
		return nil, fmt.Errorf("failed to fetch updated movie: %w", err)
	}

	return &updated, nil
}

func (s *movieService) DeleteMovie(ctx context.Context, id uint) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	if id == 0 {
		return errors.New("invalid movie id")
	}

	if _, err := s.movieRepo.FindByID(ctx, id); err != nil {
		logger.Error("movie not found", err)
		return errors.New("movie not found")
	}

	if err := s.movieRepo.Delete(ctx, id); err != nil {
		logger.Error("failed to delete movie", err)
		return fmt.Errorf("failed to delete movie: %w", err)
	}

	logger.Info("movie deleted successfully", "movie_id", id)
	return nil
}
