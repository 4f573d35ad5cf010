package repository

import (
	"errors"

	"github.com/user/kinohub/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type MovieRepository struct {
	db *gorm.DB
}

func NewMovieRepository(db *gorm.DB) *MovieRepository {
	return &MovieRepository{db: db}
}

// FindAll 获取电影列表，最新在前，附带类型和演员
// search 非空时按标题不区分大小写模糊匹配
func (r *MovieRepository) FindAll(search string) ([]model.Movie, error) {
	var movies []model.Movie
	q := r.db.Preload("Genres").Preload("Actors").Order("created_at DESC")
	if search != "" {
		q = q.Where("title ILIKE ?", "%"+search+"%")
	}
	if err := q.Find(&movies).Error; err != nil {
		return nil, err
	}
	return movies, nil
}

// FindBySlug 根据 slug 查找电影，附带类型和演员
func (r *MovieRepository) FindBySlug(slug string) (*model.Movie, error) {
	var movie model.Movie
	err := r.db.Preload("Genres").Preload("Actors").Where("slug = ?", slug).First(&movie).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &movie, nil
}

// FindByActor 查找某演员参演的电影（不展开关联）
func (r *MovieRepository) FindByActor(actorID string) ([]model.Movie, error) {
	var movies []model.Movie
	err := r.db.
		Joins("JOIN movie_actors ma ON ma.movie_id = movies.id").
		Where("ma.actor_id = ?", actorID).
		Order("movies.created_at DESC").
		Find(&movies).Error
	if err != nil {
		return nil, err
	}
	return movies, nil
}

// FindByGenres 查找类型交集非空的所有电影，附带类型和演员
func (r *MovieRepository) FindByGenres(genreIDs []string) ([]model.Movie, error) {
	var movies []model.Movie
	err := r.db.
		Distinct("movies.*").
		Joins("JOIN movie_genres mg ON mg.movie_id = movies.id").
		Where("mg.genre_id IN ?", genreIDs).
		Preload("Genres").Preload("Actors").
		Order("movies.created_at DESC").
		Find(&movies).Error
	if err != nil {
		return nil, err
	}
	return movies, nil
}

// FindPopular 获取有播放记录的电影，按播放次数倒序，附带类型
func (r *MovieRepository) FindPopular() ([]model.Movie, error) {
	var movies []model.Movie
	err := r.db.Preload("Genres").
		Where("count_opened > 0").
		Order("count_opened DESC").
		Find(&movies).Error
	if err != nil {
		return nil, err
	}
	return movies, nil
}

// IncrementCountOpened 播放计数 +1，单条 UPDATE ... RETURNING，并发安全
func (r *MovieRepository) IncrementCountOpened(slug string) (*model.Movie, error) {
	var movie model.Movie
	res := r.db.Model(&movie).
		Clauses(clause.Returning{}).
		Where("slug = ?", slug).
		UpdateColumn("count_opened", gorm.Expr("count_opened + 1"))
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, nil
	}
	return &movie, nil
}

// UpdateRating 覆盖写评分字段（聚合结果由评分服务计算）
func (r *MovieRepository) UpdateRating(id string, rating float64) (*model.Movie, error) {
	var movie model.Movie
	res := r.db.Model(&movie).
		Clauses(clause.Returning{}).
		Where("id = ?", id).
		Update("rating", rating)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, nil
	}
	return &movie, nil
}

// FindByID 根据 ID 查找电影（不展开关联）
func (r *MovieRepository) FindByID(id string) (*model.Movie, error) {
	var movie model.Movie
	err := r.db.Where("id = ?", id).First(&movie).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &movie, nil
}

// Create 创建空白电影记录，后续通过更新接口填充
func (r *MovieRepository) Create() (*model.Movie, error) {
	movie := &model.Movie{}
	if err := r.db.Create(movie).Error; err != nil {
		return nil, err
	}
	return movie, nil
}

// UpdateByID 整体更新电影，整个更新在单个事务中提交或回滚：
// 标量字段（含通知标志）走单条 UPDATE ... RETURNING，
// 类型/演员只重建关联表行，引用不存在的 ID 直接忽略，绝不反向创建被引用记录
func (r *MovieRepository) UpdateByID(id string, patch *model.MoviePatch) (*model.Movie, error) {
	var movie model.Movie
	err := r.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&movie).
			Clauses(clause.Returning{}).
			Where("id = ?", id).
			Updates(map[string]interface{}{
				"title":            patch.Title,
				"slug":             patch.Slug,
				"poster":           patch.Poster,
				"big_poster":       patch.BigPoster,
				"video_url":        patch.VideoURL,
				"is_send_telegram": patch.IsSendTelegram,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}

		if err := replaceRefs(tx, "movie_genres", "genre_id", "genres", id, patch.GenreIDs); err != nil {
			return err
		}
		return replaceRefs(tx, "movie_actors", "actor_id", "actors", id, patch.ActorIDs)
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return r.FindByID(id)
}

// replaceRefs 重建电影与类型/演员的关联行
// 只写关联表，且只引用目标表里已存在的记录（弱引用，坏 ID 静默丢弃）
func replaceRefs(tx *gorm.DB, joinTable, refColumn, refTable, movieID string, refIDs []string) error {
	if err := tx.Exec("DELETE FROM "+joinTable+" WHERE movie_id = ?", movieID).Error; err != nil {
		return err
	}
	if len(refIDs) == 0 {
		return nil
	}
	return tx.Exec(
		"INSERT INTO "+joinTable+" (movie_id, "+refColumn+") SELECT ?, id FROM "+refTable+" WHERE id IN ?",
		movieID, refIDs,
	).Error
}

// DeleteByID 删除电影并返回删除前快照，指向它的关联行在同一事务内清掉
func (r *MovieRepository) DeleteByID(id string) (*model.Movie, error) {
	var movie model.Movie
	err := r.db.Transaction(func(tx *gorm.DB) error {
		for _, joinTable := range []string{"movie_genres", "movie_actors", "user_favorites"} {
			if err := tx.Exec("DELETE FROM "+joinTable+" WHERE movie_id = ?", id).Error; err != nil {
				return err
			}
		}

		res := tx.Clauses(clause.Returning{}).Where("id = ?", id).Delete(&movie)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &movie, nil
}
