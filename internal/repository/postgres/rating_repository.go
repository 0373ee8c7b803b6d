package postgres

import (
	"context"
	"errors"
	"fmt"

	"cineMatch/domain"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type RatingRepository struct {
	DB *gorm.DB
}

func NewRatingRepository(db *gorm.DB) *RatingRepository {
	return &RatingRepository{DB: db}
}

// Upsert writes a rating, replacing any existing row for the same
// (user, movie) pair so the uniqueness invariant holds at the DB level.
func (r *RatingRepository) Upsert(ctx context.Context, rating *domain.Rating) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	if err := r.DB.WithContext(ctx).Clauses(
		clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "movie_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"rating", "review", "updated_at"}),
		},
	).Create(rating).Error; err != nil {
		return fmt.Errorf("failed to upsert rating: %w", err)
	}

	return nil
}

func (r *RatingRepository) FindByUserAndMovie(ctx context.Context, userID, movieID uint) (domain.Rating, error) {
	if err := ctx.Err(); err != nil {
		return domain.Rating{}, fmt.Errorf("context error: %w", err)
	}

	var rating domain.Rating
	err := r.DB.WithContext(ctx).
		Where("user_id = ? AND movie_id = ?", userID, movieID).
		First(&rating).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Rating{}, errors.New("rating not found")
		}
		return domain.Rating{}, fmt.Errorf("failed to find rating: %w", err)
	}

	return rating, nil
}

func (r *RatingRepository) FindByUser(ctx context.Context, userID uint) ([]domain.Rating, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var ratings []domain.Rating
	if err := r.DB.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("rating DESC").
		Find(&ratings).Error; err != nil {
		return nil, fmt.Errorf("failed to find ratings: %w", err)
	}

	return ratings, nil
}

func (r *RatingRepository) FindAll(ctx context.Context) ([]domain.Rating, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var ratings []domain.Rating
	if err := r.DB.WithContext(ctx).Order("id ASC").Find(&ratings).Error; err != nil {
		return nil, fmt.Errorf("failed to find ratings: %w", err)
	}

	return ratings, nil
}

func (r *RatingRepository) Delete(ctx context.Context, userID, movieID uint) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	result := r.DB.WithContext(ctx).
		Where("user_id = ? AND movie_id = ?", userID, movieID).
		Delete(&domain.Rating{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete rating: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.New("rating not found or already deleted")
	}

	return nil
}
