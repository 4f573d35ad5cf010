package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User 用户模型
type User struct {
	ID           string    `json:"id" db:"id" gorm:"type:uuid;primaryKey"`
	Email        string    `json:"email" db:"email" gorm:"uniqueIndex"`
	PasswordHash string    `json:"-" db:"password_hash"`
	IsAdmin      bool      `json:"is_admin" db:"is_admin" gorm:"default:false"`
	Favorites    []Movie   `json:"favorites,omitempty" gorm:"many2many:user_favorites"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"-" db:"updated_at"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}

// Rating 用户评分，(user_id, movie_id) 唯一
type Rating struct {
	ID        string    `json:"id" db:"id" gorm:"type:uuid;primaryKey"`
	UserID    string    `json:"user_id" db:"user_id" gorm:"type:uuid;uniqueIndex:idx_user_movie_rating"`
	MovieID   string    `json:"movie_id" db:"movie_id" gorm:"type:uuid;uniqueIndex:idx_user_movie_rating"`
	Value     float64   `json:"value" db:"value"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"-" db:"updated_at"`
}

func (r *Rating) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}
