package handler

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/user/kinohub/internal/config"
	"github.com/user/kinohub/internal/repository"
	"github.com/user/kinohub/internal/service"
	"github.com/user/kinohub/internal/utils"
)

// Handler HTTP 处理器
type Handler struct {
	Repos   *repository.Repositories
	Config  *config.Config
	Movies  *service.MovieService
	Ratings *service.RatingService
}

// NewHandler 创建处理器
func NewHandler(repos *repository.Repositories, cfg *config.Config) *Handler {
	// 创建 Telegram 通知网关
	notifier := service.NewTelegramService(cfg.Telegram)

	// 创建电影生命周期服务
	movies := service.NewMovieService(repos.Movie, notifier, cfg.Telegram)

	// 创建评分聚合服务
	ratings := service.NewRatingService(repos.Rating, movies)

	return &Handler{
		Repos:   repos,
		Config:  cfg,
		Movies:  movies,
		Ratings: ratings,
	}
}

// respondError 将服务层错误映射为统一响应
func (h *Handler) respondError(c *gin.Context, err error, notFoundMsg string) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		utils.NotFound(c, notFoundMsg)
	case errors.Is(err, service.ErrGateway):
		utils.BadGateway(c, "通知发送失败，更新已中止")
	default:
		utils.InternalServerError(c, "")
	}
}

// respondBindError 将请求绑定错误映射为 400
func respondBindError(c *gin.Context, err error) {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		utils.BadRequest(c, "参数校验失败: "+verrs.Error())
		return
	}
	utils.BadRequest(c, "请求格式错误")
}
