package domain

import "time"

// One explicit rating per (user, movie) pair; the pair is unique at the DB
// level. A missing row means "unknown preference", never a zero rating.
type Rating struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"column:user_id;not null;uniqueIndex:idx_user_movie" json:"user_id"`
	MovieID   uint      `gorm:"column:movie_id;not null;uniqueIndex:idx_user_movie" json:"movie_id"`
	Rating    float64   `gorm:"column:rating;not null" json:"rating"` // 1..5
	Review    string    `gorm:"column:review;type:text" json:"review"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Rating) TableName() string {
	return "ratings"
}
