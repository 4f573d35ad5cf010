package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/user/kinohub/internal/model"
	"github.com/user/kinohub/internal/utils"
)

// ListGenres 类型列表，支持 searchTerm 模糊过滤
func (h *Handler) ListGenres(c *gin.Context) {
	genres, err := h.Repos.Genre.FindAll(c.Query("searchTerm"))
	if err != nil {
		utils.InternalServerError(c, "")
		return
	}
	utils.Success(c, genres)
}

// GenreBySlug 根据 slug 获取类型
func (h *Handler) GenreBySlug(c *gin.Context) {
	genre, err := h.Repos.Genre.FindBySlug(c.Param("slug"))
	if err != nil {
		utils.InternalServerError(c, "")
		return
	}
	if genre == nil {
		utils.NotFound(c, "类型不存在")
		return
	}
	utils.Success(c, genre)
}

// GenreByID 管理后台按 ID 获取类型
func (h *Handler) GenreByID(c *gin.Context) {
	genre, err := h.Repos.Genre.FindByID(c.Param("id"))
	if err != nil {
		utils.InternalServerError(c, "")
		return
	}
	if genre == nil {
		utils.NotFound(c, "类型不存在")
		return
	}
	utils.Success(c, genre)
}

// CreateGenre 创建空白类型，返回新记录 ID
func (h *Handler) CreateGenre(c *gin.Context) {
	genre, err := h.Repos.Genre.Create()
	if err != nil {
		utils.InternalServerError(c, "")
		return
	}
	utils.Success(c, gin.H{"id": genre.ID})
}

// UpdateGenre 整体更新类型
func (h *Handler) UpdateGenre(c *gin.Context) {
	var patch model.GenrePatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		respondBindError(c, err)
		return
	}

	genre, err := h.Repos.Genre.UpdateByID(c.Param("id"), &patch)
	if err != nil {
		utils.InternalServerError(c, "")
		return
	}
	if genre == nil {
		utils.NotFound(c, "类型不存在")
		return
	}
	utils.Success(c, genre)
}

// DeleteGenre 删除类型，返回删除前快照
func (h *Handler) DeleteGenre(c *gin.Context) {
	genre, err := h.Repos.Genre.DeleteByID(c.Param("id"))
	if err != nil {
		utils.InternalServerError(c, "")
		return
	}
	if genre == nil {
		utils.NotFound(c, "类型不存在")
		return
	}
	utils.Success(c, genre)
}
