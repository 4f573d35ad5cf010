package repository

import (
	"errors"

	"github.com/user/kinohub/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ActorRepository struct {
	db *gorm.DB
}

func NewActorRepository(db *gorm.DB) *ActorRepository {
	return &ActorRepository{db: db}
}

// FindAll 获取演员列表，search 非空时按姓名/slug 模糊匹配
func (r *ActorRepository) FindAll(search string) ([]model.Actor, error) {
	var actors []model.Actor
	q := r.db.Order("created_at DESC")
	if search != "" {
		like := "%" + search + "%"
		q = q.Where("name ILIKE ? OR slug ILIKE ?", like, like)
	}
	if err := q.Find(&actors).Error; err != nil {
		return nil, err
	}
	return actors, nil
}

// FindBySlug 根据 slug 查找演员
func (r *ActorRepository) FindBySlug(slug string) (*model.Actor, error) {
	var actor model.Actor
	err := r.db.Where("slug = ?", slug).First(&actor).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &actor, nil
}

// FindByID 根据 ID 查找演员
func (r *ActorRepository) FindByID(id string) (*model.Actor, error) {
	var actor model.Actor
	err := r.db.Where("id = ?", id).First(&actor).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &actor, nil
}

// Create 创建空白演员记录
func (r *ActorRepository) Create() (*model.Actor, error) {
	actor := &model.Actor{}
	if err := r.db.Create(actor).Error; err != nil {
		return nil, err
	}
	return actor, nil
}

// UpdateByID 整体更新演员
func (r *ActorRepository) UpdateByID(id string, patch *model.ActorPatch) (*model.Actor, error) {
	var actor model.Actor
	res := r.db.Model(&actor).
		Clauses(clause.Returning{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"name":  patch.Name,
			"slug":  patch.Slug,
			"photo": patch.Photo,
		})
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, nil
	}
	return &actor, nil
}

// DeleteByID 删除演员并返回删除前快照
func (r *ActorRepository) DeleteByID(id string) (*model.Actor, error) {
	var actor model.Actor
	res := r.db.Clauses(clause.Returning{}).Where("id = ?", id).Delete(&actor)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, nil
	}
	return &actor, nil
}
