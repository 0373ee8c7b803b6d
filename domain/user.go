package domain

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	ID             uint           `gorm:"primaryKey" json:"id"`
	Username       string         `gorm:"column:username;unique;not null" json:"username"`
	Password       string         `gorm:"column:password;not null" json:"-"`
	Name           string         `gorm:"column:name;not null" json:"name"`
	Email          string         `gorm:"column:email;unique" json:"email"`
	Age            int            `gorm:"column:age" json:"age"`
	PreferredGenre string         `gorm:"column:preferred_genre" json:"preferred_genre"`
	Role           string         `gorm:"column:role;default:user" json:"role"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`
}

func (User) TableName() string {
	return "users"
}
