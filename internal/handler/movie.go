package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/user/kinohub/internal/model"
	"github.com/user/kinohub/internal/utils"
)

// ListMovies 电影列表，支持 searchTerm 标题模糊过滤
func (h *Handler) ListMovies(c *gin.Context) {
	movies, err := h.Movies.List(c.Query("searchTerm"))
	if err != nil {
		h.respondError(c, err, "")
		return
	}
	utils.Success(c, movies)
}

// MovieBySlug 根据 slug 获取电影
func (h *Handler) MovieBySlug(c *gin.Context) {
	movie, err := h.Movies.BySlug(c.Param("slug"))
	if err != nil {
		h.respondError(c, err, "电影不存在")
		return
	}
	utils.Success(c, movie)
}

// MoviesByActor 获取某演员参演的电影
func (h *Handler) MoviesByActor(c *gin.Context) {
	movies, err := h.Movies.ByActor(c.Param("actorId"))
	if err != nil {
		h.respondError(c, err, "")
		return
	}
	utils.Success(c, movies)
}

// MoviesByGenres 按类型集合筛选电影
func (h *Handler) MoviesByGenres(c *gin.Context) {
	var req struct {
		GenreIDs []string `json:"genreIds" binding:"required,min=1"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	movies, err := h.Movies.ByGenres(req.GenreIDs)
	if err != nil {
		h.respondError(c, err, "")
		return
	}
	utils.Success(c, movies)
}

// MostPopularMovies 热门电影
func (h *Handler) MostPopularMovies(c *gin.Context) {
	movies, err := h.Movies.MostPopular()
	if err != nil {
		h.respondError(c, err, "")
		return
	}
	utils.Success(c, movies)
}

// UpdateCountOpened 播放计数 +1
func (h *Handler) UpdateCountOpened(c *gin.Context) {
	var req struct {
		Slug string `json:"slug" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	movie, err := h.Movies.IncrementCountOpened(req.Slug)
	if err != nil {
		h.respondError(c, err, "电影不存在")
		return
	}
	utils.Success(c, movie)
}

// MovieByID 管理后台按 ID 获取电影
func (h *Handler) MovieByID(c *gin.Context) {
	movie, err := h.Movies.ByID(c.Param("id"))
	if err != nil {
		h.respondError(c, err, "电影不存在")
		return
	}
	utils.Success(c, movie)
}

// CreateMovie 创建空白电影，返回新记录 ID
func (h *Handler) CreateMovie(c *gin.Context) {
	id, err := h.Movies.Create()
	if err != nil {
		h.respondError(c, err, "")
		return
	}
	utils.Success(c, gin.H{"id": id})
}

// UpdateMovie 整体更新电影，必要时触发上新通知
func (h *Handler) UpdateMovie(c *gin.Context) {
	var patch model.MoviePatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		respondBindError(c, err)
		return
	}

	movie, err := h.Movies.Update(c.Param("id"), &patch)
	if err != nil {
		h.respondError(c, err, "电影不存在")
		return
	}
	utils.Success(c, movie)
}

// DeleteMovie 删除电影，返回删除前快照
func (h *Handler) DeleteMovie(c *gin.Context) {
	movie, err := h.Movies.Delete(c.Param("id"))
	if err != nil {
		h.respondError(c, err, "电影不存在")
		return
	}
	utils.Success(c, movie)
}
