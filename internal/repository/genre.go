package repository

import (
	"errors"

	"github.com/user/kinohub/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type GenreRepository struct {
	db *gorm.DB
}

func NewGenreRepository(db *gorm.DB) *GenreRepository {
	return &GenreRepository{db: db}
}

// FindAll 获取类型列表，search 非空时按名称/slug/描述模糊匹配
func (r *GenreRepository) FindAll(search string) ([]model.Genre, error) {
	var genres []model.Genre
	q := r.db.Order("created_at DESC")
	if search != "" {
		like := "%" + search + "%"
		q = q.Where("name ILIKE ? OR slug ILIKE ? OR description ILIKE ?", like, like, like)
	}
	if err := q.Find(&genres).Error; err != nil {
		return nil, err
	}
	return genres, nil
}

// FindBySlug 根据 slug 查找类型
func (r *GenreRepository) FindBySlug(slug string) (*model.Genre, error) {
	var genre model.Genre
	err := r.db.Where("slug = ?", slug).First(&genre).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &genre, nil
}

// FindByID 根据 ID 查找类型
func (r *GenreRepository) FindByID(id string) (*model.Genre, error) {
	var genre model.Genre
	err := r.db.Where("id = ?", id).First(&genre).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &genre, nil
}

// Create 创建空白类型记录
func (r *GenreRepository) Create() (*model.Genre, error) {
	genre := &model.Genre{}
	if err := r.db.Create(genre).Error; err != nil {
		return nil, err
	}
	return genre, nil
}

// UpdateByID 整体更新类型
func (r *GenreRepository) UpdateByID(id string, patch *model.GenrePatch) (*model.Genre, error) {
	var genre model.Genre
	res := r.db.Model(&genre).
		Clauses(clause.Returning{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"name":        patch.Name,
			"slug":        patch.Slug,
			"description": patch.Description,
			"icon":        patch.Icon,
		})
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, nil
	}
	return &genre, nil
}

// DeleteByID 删除类型并返回删除前快照
func (r *GenreRepository) DeleteByID(id string) (*model.Genre, error) {
	var genre model.Genre
	res := r.db.Clauses(clause.Returning{}).Where("id = ?", id).Delete(&genre)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, nil
	}
	return &genre, nil
}
