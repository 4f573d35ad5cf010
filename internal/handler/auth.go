package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/user/kinohub/internal/middleware"
	"github.com/user/kinohub/internal/utils"
)

type authRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

// Register 用户注册
func (h *Handler) Register(c *gin.Context) {
	var req authRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	// 邮箱查重
	existing, err := h.Repos.User.FindByEmail(req.Email)
	if err != nil {
		utils.InternalServerError(c, "")
		return
	}
	if existing != nil {
		utils.BadRequest(c, "该邮箱已注册")
		return
	}

	user, err := h.Repos.User.Create(req.Email, req.Password)
	if err != nil {
		utils.InternalServerError(c, "")
		return
	}

	token, err := middleware.GenerateToken(user.ID, user.Email, user.IsAdmin, h.Config.AppSecret, h.Config.JWTExpiry)
	if err != nil {
		utils.InternalServerError(c, "")
		return
	}

	utils.Success(c, gin.H{"user": user, "access_token": token})
}

// Login 用户登录
func (h *Handler) Login(c *gin.Context) {
	var req authRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	user, err := h.Repos.User.FindByEmail(req.Email)
	if err != nil {
		utils.InternalServerError(c, "")
		return
	}
	if user == nil || !h.Repos.User.CheckPassword(user, req.Password) {
		utils.Unauthorized(c, "邮箱或密码错误")
		return
	}

	token, err := middleware.GenerateToken(user.ID, user.Email, user.IsAdmin, h.Config.AppSecret, h.Config.JWTExpiry)
	if err != nil {
		utils.InternalServerError(c, "")
		return
	}

	utils.Success(c, gin.H{"user": user, "access_token": token})
}
