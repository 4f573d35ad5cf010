package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/user/kinohub/internal/model"
	"github.com/user/kinohub/internal/utils"
)

// ListActors 演员列表，支持 searchTerm 模糊过滤
func (h *Handler) ListActors(c *gin.Context) {
	actors, err := h.Repos.Actor.FindAll(c.Query("searchTerm"))
	if err != nil {
		utils.InternalServerError(c, "")
		return
	}
	utils.Success(c, actors)
}

// ActorBySlug 根据 slug 获取演员
func (h *Handler) ActorBySlug(c *gin.Context) {
	actor, err := h.Repos.Actor.FindBySlug(c.Param("slug"))
	if err != nil {
		utils.InternalServerError(c, "")
		return
	}
	if actor == nil {
		utils.NotFound(c, "演员不存在")
		return
	}
	utils.Success(c, actor)
}

// ActorByID 管理后台按 ID 获取演员
func (h *Handler) ActorByID(c *gin.Context) {
	actor, err := h.Repos.Actor.FindByID(c.Param("id"))
	if err != nil {
		utils.InternalServerError(c, "")
		return
	}
	if actor == nil {
		utils.NotFound(c, "演员不存在")
		return
	}
	utils.Success(c, actor)
}

// CreateActor 创建空白演员，返回新记录 ID
func (h *Handler) CreateActor(c *gin.Context) {
	actor, err := h.Repos.Actor.Create()
	if err != nil {
		utils.InternalServerError(c, "")
		return
	}
	utils.Success(c, gin.H{"id": actor.ID})
}

// UpdateActor 整体更新演员
func (h *Handler) UpdateActor(c *gin.Context) {
	var patch model.ActorPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		respondBindError(c, err)
		return
	}

	actor, err := h.Repos.Actor.UpdateByID(c.Param("id"), &patch)
	if err != nil {
		utils.InternalServerError(c, "")
		return
	}
	if actor == nil {
		utils.NotFound(c, "演员不存在")
		return
	}
	utils.Success(c, actor)
}

// DeleteActor 删除演员，返回删除前快照
func (h *Handler) DeleteActor(c *gin.Context) {
	actor, err := h.Repos.Actor.DeleteByID(c.Param("id"))
	if err != nil {
		utils.InternalServerError(c, "")
		return
	}
	if actor == nil {
		utils.NotFound(c, "演员不存在")
		return
	}
	utils.Success(c, actor)
}
