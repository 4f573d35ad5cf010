package service

import "github.com/user/kinohub/internal/model"

// RatingStore 评分存储契约
type RatingStore interface {
	Upsert(userID, movieID string, value float64) error
	AverageByMovie(movieID string) (float64, error)
	ValueByUserMovie(userID, movieID string) (float64, error)
}

// RatingService 评分聚合服务：写入用户评分后重算平均值并回写电影
type RatingService struct {
	store  RatingStore
	movies *MovieService
}

func NewRatingService(store RatingStore, movies *MovieService) *RatingService {
	return &RatingService{store: store, movies: movies}
}

// SetRating 写入/覆盖用户评分，返回带最新平均分的电影
func (s *RatingService) SetRating(userID, movieID string, value float64) (*model.Movie, error) {
	if err := s.store.Upsert(userID, movieID, value); err != nil {
		return nil, err
	}

	avg, err := s.store.AverageByMovie(movieID)
	if err != nil {
		return nil, err
	}

	return s.movies.UpdateRating(movieID, avg)
}

// GetByUserMovie 查询用户对某电影的评分，未评分返回 0
func (s *RatingService) GetByUserMovie(userID, movieID string) (float64, error) {
	return s.store.ValueByUserMovie(userID, movieID)
}
