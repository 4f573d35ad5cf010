package repository

import (
	"errors"
	"time"

	"github.com/user/kinohub/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type RatingRepository struct {
	db *gorm.DB
}

func NewRatingRepository(db *gorm.DB) *RatingRepository {
	return &RatingRepository{db: db}
}

// Upsert 写入用户评分，同一 (user_id, movie_id) 只保留一条
func (r *RatingRepository) Upsert(userID, movieID string, value float64) error {
	rating := &model.Rating{
		UserID:  userID,
		MovieID: movieID,
		Value:   value,
	}
	return r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "movie_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"value":      value,
			"updated_at": time.Now(),
		}),
	}).Create(rating).Error
}

// AverageByMovie 计算电影的平均评分，无评分时为 0
func (r *RatingRepository) AverageByMovie(movieID string) (float64, error) {
	var avg float64
	err := r.db.Model(&model.Rating{}).
		Where("movie_id = ?", movieID).
		Select("COALESCE(AVG(value), 0)").
		Scan(&avg).Error
	return avg, err
}

// ValueByUserMovie 查询用户对某电影的评分，未评分返回 0
func (r *RatingRepository) ValueByUserMovie(userID, movieID string) (float64, error) {
	var rating model.Rating
	err := r.db.Where("user_id = ? AND movie_id = ?", userID, movieID).First(&rating).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return rating.Value, nil
}
