package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/user/kinohub/internal/middleware"
	"github.com/user/kinohub/internal/utils"
)

// Profile 当前用户资料
func (h *Handler) Profile(c *gin.Context) {
	user, err := h.Repos.User.FindByID(middleware.GetUserID(c))
	if err != nil {
		utils.InternalServerError(c, "")
		return
	}
	if user == nil {
		utils.NotFound(c, "用户不存在")
		return
	}
	utils.Success(c, user)
}

// ToggleFavorite 收藏/取消收藏电影
func (h *Handler) ToggleFavorite(c *gin.Context) {
	var req struct {
		MovieID string `json:"movieId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	favorited, err := h.Repos.User.ToggleFavorite(middleware.GetUserID(c), req.MovieID)
	if err != nil {
		utils.InternalServerError(c, "")
		return
	}
	utils.Success(c, gin.H{"favorited": favorited})
}

// ListFavorites 当前用户收藏的电影列表
func (h *Handler) ListFavorites(c *gin.Context) {
	movies, err := h.Repos.User.ListFavorites(middleware.GetUserID(c))
	if err != nil {
		utils.InternalServerError(c, "")
		return
	}
	utils.Success(c, movies)
}

// RatingByMovie 当前用户对某电影的评分
func (h *Handler) RatingByMovie(c *gin.Context) {
	value, err := h.Ratings.GetByUserMovie(middleware.GetUserID(c), c.Param("movieId"))
	if err != nil {
		utils.InternalServerError(c, "")
		return
	}
	utils.Success(c, gin.H{"value": value})
}

// SetRating 提交评分并回写电影平均分
func (h *Handler) SetRating(c *gin.Context) {
	var req struct {
		MovieID string  `json:"movieId" binding:"required"`
		Value   float64 `json:"value" binding:"required,min=1,max=5"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	movie, err := h.Ratings.SetRating(middleware.GetUserID(c), req.MovieID, req.Value)
	if err != nil {
		h.respondError(c, err, "电影不存在")
		return
	}
	utils.Success(c, movie)
}
