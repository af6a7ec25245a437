package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"stylehub_dev_v1_202601/internal/api/dto"
	"stylehub_dev_v1_202601/internal/middleware"
	"stylehub_dev_v1_202601/internal/service"
)

type AuthController struct {
	authService *service.AuthService
}

func NewAuthController(authService *service.AuthService) *AuthController {
	return &AuthController{authService: authService}
}

// Login 用户登录
// @Summary 邮箱密码登录，成功返回 Token 对
// @Tags Auth
// @Accept json
// @Param body body dto.LoginRequest true "登录参数"
// @Success 200 {object} dto.LoginResponse
// @Failure 401 {object} map[string]interface{}
// @Router /api/auth/login [post]
func (ctrl *AuthController) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": 400, "message": err.Error()})
		return
	}

	resp, err := ctrl.authService.Login(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) || errors.Is(err, service.ErrUserDisabled) {
			// 统一 401，不暴露具体原因
			c.JSON(http.StatusUnauthorized, gin.H{"code": 401, "message": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"code": 500, "message": "登录失败: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"code":    0,
		"message": "success",
		"data":    resp,
	})
}

// Logout 退出登录
// @Summary 退出登录（Token 无状态，端点只为客户端契约存在）
// @Tags Auth
// @Success 200 {object} map[string]interface{}
// @Router /api/auth/logout [post]
func (ctrl *AuthController) Logout(c *gin.Context) {
	// JWT 无服务端会话可销毁，客户端丢弃 Token 即完成登出
	c.JSON(http.StatusOK, gin.H{
		"code":    0,
		"message": "已退出登录",
	})
}

// RefreshToken 刷新 Token
// @Summary 用 Refresh Token 换新 Token 对
// @Tags Auth
// @Accept json
// @Param body body dto.RefreshTokenRequest true "刷新参数"
// @Success 200 {object} dto.RefreshTokenResponse
// @Router /api/auth/refresh [post]
func (ctrl *AuthController) RefreshToken(c *gin.Context) {
	var req dto.RefreshTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": 400, "message": err.Error()})
		return
	}

	resp, err := ctrl.authService.RefreshToken(c.Request.Context(), &req)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"code": 401, "message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"code":    0,
		"message": "success",
		"data":    resp,
	})
}

// Me 当前用户信息
// @Summary 获取当前登录用户信息
// @Tags Auth
// @Security BearerAuth
// @Success 200 {object} dto.UserInfo
// @Router /api/auth/me [get]
func (ctrl *AuthController) Me(c *gin.Context) {
	userID := middleware.GetUserID(c)
	if userID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"code": 401, "message": "未登录"})
		return
	}

	info, err := ctrl.authService.GetUserInfo(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"code": 401, "message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"code":    0,
		"message": "success",
		"data":    info,
	})
}
