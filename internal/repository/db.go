package repository

import (
	"fmt"

	"github.com/user/kinohub/internal/model"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// InitDB 初始化数据库连接
func InitDB(databaseURL string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(databaseURL), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("无法连接数据库: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}

	// 测试连接
	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("数据库 ping 失败: %w", err)
	}

	// 设置连接池
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)

	// 同步表结构
	if err := db.AutoMigrate(
		&model.Movie{},
		&model.Genre{},
		&model.Actor{},
		&model.User{},
		&model.Rating{},
	); err != nil {
		return nil, fmt.Errorf("表结构迁移失败: %w", err)
	}

	return db, nil
}

// Repositories 仓库集合
type Repositories struct {
	DB     *gorm.DB
	Movie  *MovieRepository
	Genre  *GenreRepository
	Actor  *ActorRepository
	User   *UserRepository
	Rating *RatingRepository
}

// NewRepositories 创建仓库集合
func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		DB:     db,
		Movie:  NewMovieRepository(db),
		Genre:  NewGenreRepository(db),
		Actor:  NewActorRepository(db),
		User:   NewUserRepository(db),
		Rating: NewRatingRepository(db),
	}
}
