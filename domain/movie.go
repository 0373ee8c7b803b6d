package domain

import (
	"time"

	"gorm.io/datatypes"
)

// CREATE TABLE public.movies (
//     id          BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
//     title       TEXT NOT NULL,
//     genre       TEXT NOT NULL,
//     year        INT NOT NULL,
//     rating      NUMERIC,          -- overall rating, nullable
//     description TEXT,
//     director    TEXT,
//     movie_cast  JSONB,
//     poster_url  TEXT,
//     trailer_url TEXT,
//     created_at  TIMESTAMPTZ DEFAULT NOW(),
//     updated_at  TIMESTAMPTZ
// );

type Movie struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	Title       string         `gorm:"column:title;type:text;not null;index" json:"title"`
	Genre       string         `gorm:"column:genre;type:text;not null;index" json:"genre"`
	Year        int            `gorm:"column:year;not null" json:"year"`
	Rating      *float64       `gorm:"column:rating;type:numeric" json:"rating"` // overall rating, absent until enough data
	Description string         `gorm:"column:description;type:text" json:"description"`
	Director    string         `gorm:"column:director;type:text" json:"director"`
	Cast        datatypes.JSON `gorm:"column:movie_cast;type:jsonb" json:"cast"`
	PosterURL   string         `gorm:"column:poster_url;type:text" json:"poster_url"`
	TrailerURL  string         `gorm:"column:trailer_url;type:text" json:"trailer_url"`
	CreatedAt   time.Time      `gorm:"column:created_at" json:"created_at"`
	UpdatedAt   time.Time      `gorm:"column:updated_at" json:"updated_at"`
}

func (Movie) TableName() string {
	return "movies"
}

// OverallRating returns the catalog rating with a missing value read as 0.
func (m Movie) OverallRating() float64 {
	if m.Rating == nil {
		return 0
	}
	return *m.Rating
}
