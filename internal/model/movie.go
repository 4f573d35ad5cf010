package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Movie 电影模型
type Movie struct {
	ID             string    `json:"id" db:"id" gorm:"type:uuid;primaryKey"`
	Title          string    `json:"title" db:"title"`
	Slug           string    `json:"slug" db:"slug" gorm:"uniqueIndex"`
	Poster         string    `json:"poster" db:"poster"`
	BigPoster      string    `json:"big_poster" db:"big_poster"`
	VideoURL       string    `json:"video_url" db:"video_url"`
	CountOpened    int64     `json:"count_opened" db:"count_opened" gorm:"default:0;index"`
	Rating         float64   `json:"rating" db:"rating" gorm:"default:0"`
	IsSendTelegram bool      `json:"is_send_telegram" db:"is_send_telegram" gorm:"default:false"`
	Genres         []Genre   `json:"genres" gorm:"many2many:movie_genres"`
	Actors         []Actor   `json:"actors" gorm:"many2many:movie_actors"`
	CreatedAt      time.Time `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time `json:"-" db:"updated_at"`
}

func (m *Movie) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}

// MoviePatch 电影更新请求体（管理后台整体提交）
type MoviePatch struct {
	Title          string   `json:"title" binding:"required"`
	Slug           string   `json:"slug" binding:"required"`
	Poster         string   `json:"poster"`
	BigPoster      string   `json:"big_poster"`
	VideoURL       string   `json:"video_url"`
	GenreIDs       []string `json:"genre_ids"`
	ActorIDs       []string `json:"actor_ids"`
	IsSendTelegram bool     `json:"is_send_telegram"`
}

// Genre 电影类型
type Genre struct {
	ID          string    `json:"id" db:"id" gorm:"type:uuid;primaryKey"`
	Name        string    `json:"name" db:"name"`
	Slug        string    `json:"slug" db:"slug" gorm:"uniqueIndex"`
	Description string    `json:"description" db:"description"`
	Icon        string    `json:"icon" db:"icon"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"-" db:"updated_at"`
}

func (g *Genre) BeforeCreate(tx *gorm.DB) error {
	if g.ID == "" {
		g.ID = uuid.NewString()
	}
	return nil
}

// GenrePatch 类型更新请求体
type GenrePatch struct {
	Name        string `json:"name" binding:"required"`
	Slug        string `json:"slug" binding:"required"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

// Actor 演员
type Actor struct {
	ID        string    `json:"id" db:"id" gorm:"type:uuid;primaryKey"`
	Name      string    `json:"name" db:"name"`
	Slug      string    `json:"slug" db:"slug" gorm:"uniqueIndex"`
	Photo     string    `json:"photo" db:"photo"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"-" db:"updated_at"`
}

func (a *Actor) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}

// ActorPatch 演员更新请求体
type ActorPatch struct {
	Name  string `json:"name" binding:"required"`
	Slug  string `json:"slug" binding:"required"`
	Photo string `json:"photo"`
}
