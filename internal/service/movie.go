package service

import (
	"errors"
	"fmt"

	"github.com/user/kinohub/internal/config"
	"github.com/user/kinohub/internal/model"
	"golang.org/x/sync/singleflight"
)

var (
	// ErrNotFound 按 ID/slug 查找无记录
	ErrNotFound = errors.New("record not found")
	// ErrGateway 通知网关调用失败
	ErrGateway = errors.New("notification gateway failure")
)

// MovieStore 电影实体存储契约，由 repository 层实现
type MovieStore interface {
	FindAll(search string) ([]model.Movie, error)
	FindBySlug(slug string) (*model.Movie, error)
	FindByActor(actorID string) ([]model.Movie, error)
	FindByGenres(genreIDs []string) ([]model.Movie, error)
	FindPopular() ([]model.Movie, error)
	IncrementCountOpened(slug string) (*model.Movie, error)
	UpdateRating(id string, rating float64) (*model.Movie, error)
	FindByID(id string) (*model.Movie, error)
	Create() (*model.Movie, error)
	UpdateByID(id string, patch *model.MoviePatch) (*model.Movie, error)
	DeleteByID(id string) (*model.Movie, error)
}

// MessageButton 消息附带的单个跳转按钮
type MessageButton struct {
	Label string
	URL   string
}

// MessageOptions 发送消息的附加选项
type MessageOptions struct {
	Button *MessageButton
}

// Notifier 通知网关契约
type Notifier interface {
	SendPhoto(photoURL string) error
	SendMessage(text string, opts MessageOptions) error
}

// MovieService 电影生命周期服务
type MovieService struct {
	store    MovieStore
	notifier Notifier
	tg       config.TelegramConfig
	group    singleflight.Group
}

func NewMovieService(store MovieStore, notifier Notifier, tg config.TelegramConfig) *MovieService {
	return &MovieService{
		store:    store,
		notifier: notifier,
		tg:       tg,
	}
}

// List 获取电影列表，search 非空时按标题模糊过滤
func (s *MovieService) List(search string) ([]model.Movie, error) {
	return s.store.FindAll(search)
}

// BySlug 根据 slug 获取电影，无记录时返回 ErrNotFound
func (s *MovieService) BySlug(slug string) (*model.Movie, error) {
	movie, err := s.store.FindBySlug(slug)
	if err != nil {
		return nil, err
	}
	if movie == nil {
		return nil, ErrNotFound
	}
	return movie, nil
}

// ByActor 获取某演员参演的电影，空结果不算错误
func (s *MovieService) ByActor(actorID string) ([]model.Movie, error) {
	return s.store.FindByActor(actorID)
}

// ByGenres 获取类型交集非空的电影列表
func (s *MovieService) ByGenres(genreIDs []string) ([]model.Movie, error) {
	return s.store.FindByGenres(genreIDs)
}

// MostPopular 获取有播放记录的电影，按播放次数倒序
func (s *MovieService) MostPopular() ([]model.Movie, error) {
	return s.store.FindPopular()
}

// IncrementCountOpened 播放计数 +1，返回更新后的记录
// 计数在存储层单条语句完成，服务层不做读改写
func (s *MovieService) IncrementCountOpened(slug string) (*model.Movie, error) {
	movie, err := s.store.IncrementCountOpened(slug)
	if err != nil {
		return nil, err
	}
	if movie == nil {
		return nil, ErrNotFound
	}
	return movie, nil
}

// UpdateRating 覆盖写评分字段，聚合在评分服务完成
func (s *MovieService) UpdateRating(id string, rating float64) (*model.Movie, error) {
	movie, err := s.store.UpdateRating(id, rating)
	if err != nil {
		return nil, err
	}
	if movie == nil {
		return nil, ErrNotFound
	}
	return movie, nil
}

// ByID 管理后台按 ID 获取电影
func (s *MovieService) ByID(id string) (*model.Movie, error) {
	movie, err := s.store.FindByID(id)
	if err != nil {
		return nil, err
	}
	if movie == nil {
		return nil, ErrNotFound
	}
	return movie, nil
}

// Create 创建空白电影，只返回新记录 ID
func (s *MovieService) Create() (string, error) {
	movie, err := s.store.Create()
	if err != nil {
		return "", err
	}
	return movie.ID, nil
}

// Update 整体更新电影
// 请求里通知标志为 false 时先同步发送 Telegram 通知，成功后把标志置 true 一并落库；
// 网关失败则中止更新，记录与标志保持原状
func (s *MovieService) Update(id string, patch *model.MoviePatch) (*model.Movie, error) {
	if !patch.IsSendTelegram {
		if err := s.notify(id, patch); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrGateway, err)
		}
		patch.IsSendTelegram = true
	}

	movie, err := s.store.UpdateByID(id, patch)
	if err != nil {
		return nil, err
	}
	if movie == nil {
		return nil, ErrNotFound
	}
	return movie, nil
}

// Delete 删除电影，返回删除前快照
func (s *MovieService) Delete(id string) (*model.Movie, error) {
	movie, err := s.store.DeleteByID(id)
	if err != nil {
		return nil, err
	}
	if movie == nil {
		return nil, ErrNotFound
	}
	return movie, nil
}

// notify 发送上新通知，singleflight 按电影 ID 合并并发的重复发送
func (s *MovieService) notify(id string, patch *model.MoviePatch) error {
	_, err, _ := s.group.Do(id, func() (interface{}, error) {
		return nil, s.sendSequence(patch)
	})
	return err
}

func (s *MovieService) sendSequence(patch *model.MoviePatch) error {
	if !s.tg.DisableMediaSend {
		if err := s.notifier.SendPhoto(patch.Poster); err != nil {
			return err
		}
	}
	// 固定占位海报，地址可配置
	if err := s.notifier.SendPhoto(s.tg.FallbackPoster); err != nil {
		return err
	}

	text := fmt.Sprintf("<b>%s</b>", patch.Title)
	return s.notifier.SendMessage(text, MessageOptions{
		Button: &MessageButton{
			Label: s.tg.ButtonLabel,
			URL:   s.tg.ButtonURL,
		},
	})
}
