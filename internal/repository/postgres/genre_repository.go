package postgres

import (
	"context"
	"errors"
	"fmt"

	"cineMatch/domain"

	"gorm.io/gorm"
)

type GenreRepository struct {
	DB *gorm.DB
}

func NewGenreRepository(db *gorm.DB) *GenreRepository {
	return &GenreRepository{
		DB: db,
	}
}

func (r *GenreRepository) Create(ctx context.Context, genre *domain.Genre) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	if err := r.DB.WithContext(ctx).Create(genre).Error; err != nil {
		return fmt.Errorf("failed to create genre: %w", err)
	}

	return nil
}

func (r *GenreRepository) FindAll(ctx context.Context) ([]domain.Genre, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var genres []domain.Genre
	if err := r.DB.WithContext(ctx).Order("name ASC").Find(&genres).Error; err != nil {
		return nil, fmt.Errorf("failed to find genres: %w", err)
	}

	return genres, nil
}

func (r *GenreRepository) FindByName(ctx context.Context, name string) (domain.Genre, error) {
	if err := ctx.Err(); err != nil {
		return domain.Genre{}, fmt.Errorf("context error: %w", err)
	}

	var genre domain.Genre
	err := r.DB.WithContext(ctx).Where("name = ?", name).First(&genre).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Genre{}, errors.New("genre not found")
		}
		return domain.Genre{}, fmt.Errorf("failed to find genre: %w", err)
	}

	return genre, nil
}
