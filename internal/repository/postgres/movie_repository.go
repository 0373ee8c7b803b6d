package postgres

import (
	"context"
	"errors"
	"fmt"

	"cineMatch/domain"

	"gorm.io/gorm"
)

type MovieRepository struct {
	DB *gorm.DB
}

func NewMovieRepository(db *gorm.DB) *MovieRepository {
	return &MovieRepository{
		DB: db,
	}
}

func (r *MovieRepository) Create(ctx context.Context, movie *domain.Movie) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	if err := r.DB.WithContext(ctx).Create(movie).Error; err != nil {
		return fmt.Errorf("failed to create movie: %w", err)
	}

	return nil
}

func (r *MovieRepository) FindByID(ctx context.Context, id uint) (domain.Movie, error) {
	if err := ctx.Err(); err != nil {
		return domain.Movie{}, fmt.Errorf("context error: %w", err)
	}

	var movie domain.Movie

	err := r.DB.WithContext(ctx).First(&movie, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Movie{}, errors.New("movie not found")
		}
		return domain.Movie{}, fmt.Errorf("failed to find movie: %w", err)
	}

	return movie, nil
}

func (r *MovieRepository) FindAll(ctx context.Context) ([]domain.Movie, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var movies []domain.Movie
	if err := r.DB.WithContext(ctx).Order("id ASC").Find(&movies).Error; err != nil {
		return nil, fmt.Errorf("failed to find movies: %w", err)
	}

	return movies, nil
}

func (r *MovieRepository) FindByGenre(ctx context.Context, genre string) ([]domain.Movie, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var movies []domain.Movie
	if err := r.DB.WithContext(ctx).
		Where("genre = ?", genre).
		Order("rating DESC NULLS LAST").
		Find(&movies).Error; err != nil {
		return nil, fmt.Errorf("failed to find movies by genre: %w", err)
	}

	return movies, nil
}

func (r *MovieRepository) Search(ctx context.Context, query string) ([]domain.Movie, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var movies []domain.Movie
	if err := r.DB.WithContext(ctx).
		Where("title ILIKE ?", "%"+query+"%").
		Order("id ASC").
		Find(&movies).Error; err != nil {
		return nil, fmt.Errorf("failed to search movies: %w", err)
	}

	return movies, nil
}

func (r *MovieRepository) Update(ctx context.Context, movie *domain.Movie) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	updateData := map[string]interface{}{
		"title":       movie.Title,
		"genre":       movie.Genre,
		"year":        movie.Year,
		"rating":      movie.Rating,
		"description": movie.Description,
		"director":    movie.Director,
		"movie_cast":  movie.Cast,
		"poster_url":  movie.PosterURL,
		"trailer_url": movie.TrailerURL,
	}

	result := r.DB.WithContext(ctx).Model(&domain.Movie{}).Where("id = ?", movie.ID).Updates(updateData)
	if result.Error != nil {
		return fmt.Errorf("failed to update movie: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.New("movie not found or already deleted")
	}

	return nil
}

func (r *MovieRepository) Delete(ctx context.Context, id uint) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	result := r.DB.WithContext(ctx).Delete(&domain.Movie{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete movie: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.New("movie not found or already deleted")
	}

	return nil
}
