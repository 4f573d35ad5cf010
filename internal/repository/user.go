package repository

import (
	"errors"

	"github.com/user/kinohub/internal/model"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create 创建用户
func (r *UserRepository) Create(email, password string) (*model.User, error) {
	// 密码哈希
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Email:        email,
		PasswordHash: string(hash),
	}

	if err := r.db.Create(user).Error; err != nil {
		return nil, err
	}

	return user, nil
}

// FindByEmail 根据邮箱查找用户
func (r *UserRepository) FindByEmail(email string) (*model.User, error) {
	var user model.User
	err := r.db.Where("email = ?", email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// FindByID 根据 ID 查找用户
func (r *UserRepository) FindByID(id string) (*model.User, error) {
	var user model.User
	err := r.db.Where("id = ?", id).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// CheckPassword 验证密码
func (r *UserRepository) CheckPassword(user *model.User, password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password))
	return err == nil
}

// IsFavorite 检查电影是否已收藏
func (r *UserRepository) IsFavorite(userID, movieID string) (bool, error) {
	var count int64
	err := r.db.Table("user_favorites").
		Where("user_id = ? AND movie_id = ?", userID, movieID).
		Count(&count).Error
	return count > 0, err
}

// ToggleFavorite 收藏/取消收藏电影，返回操作后是否处于收藏状态
// 只写关联表，引用不存在的电影不落任何行
func (r *UserRepository) ToggleFavorite(userID, movieID string) (bool, error) {
	favorited, err := r.IsFavorite(userID, movieID)
	if err != nil {
		return false, err
	}

	if favorited {
		err := r.db.Exec("DELETE FROM user_favorites WHERE user_id = ? AND movie_id = ?", userID, movieID).Error
		return false, err
	}

	res := r.db.Exec(
		"INSERT INTO user_favorites (user_id, movie_id) SELECT ?, id FROM movies WHERE id = ?",
		userID, movieID,
	)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// ListFavorites 获取用户收藏的电影列表，附带类型和演员
func (r *UserRepository) ListFavorites(userID string) ([]model.Movie, error) {
	var movies []model.Movie
	err := r.db.
		Joins("JOIN user_favorites uf ON uf.movie_id = movies.id").
		Where("uf.user_id = ?", userID).
		Preload("Genres").Preload("Actors").
		Order("movies.created_at DESC").
		Find(&movies).Error
	if err != nil {
		return nil, err
	}
	return movies, nil
}
