package handler

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/stevehanper/beetime-backend/internal/dto"
	"github.com/stevehanper/beetime-backend/internal/service"
	"github.com/stevehanper/beetime-backend/pkg/redis"
	"github.com/stevehanper/beetime-backend/pkg/response"
)

// AuthHandler 认证模块 HTTP 处理器
type AuthHandler struct {
	authSvc service.AuthService
	rdb     *redis.Client // 登出黑名单用，可为 nil（降级）
}

// NewAuthHandler 创建 AuthHandler
func NewAuthHandler(authSvc service.AuthService) *AuthHandler {
	return &AuthHandler{authSvc: authSvc}
}

// WithRedis 注入 Redis 客户端（登出黑名单）
func (h *AuthHandler) WithRedis(rdb *redis.Client) *AuthHandler {
	h.rdb = rdb
	return h
}

// Signup 本地注册
// POST /api/v1/auth/signup
func (h *AuthHandler) Signup(c *gin.Context) {
	var req dto.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	result, err := h.authSvc.Signup(c.Request.Context(), &req)
	if err != nil {
		h.handleAuthError(c, err)
		return
	}

	response.Created(c, result)
}

// Login 本地登录
// POST /api/v1/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	result, err := h.authSvc.Login(c.Request.Context(), &req)
	if err != nil {
		h.handleAuthError(c, err)
		return
	}

	response.OK(c, result)
}

// GoogleAuth Google 登录/注册
// POST /api/v1/auth/google
func (h *AuthHandler) GoogleAuth(c *gin.Context) {
	var req dto.GoogleAuthRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	result, err := h.authSvc.GoogleAuth(c.Request.Context(), &req)
	if err != nil {
		h.handleAuthError(c, err)
		return
	}

	response.OK(c, result)
}

// UpdateUserInfo 补全资料（Google 注册后）
// PUT /api/v1/auth/update-user-info
// 目标用户取自认证上下文，而非请求体
func (h *AuthHandler) UpdateUserInfo(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateUserInfoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	result, err := h.authSvc.CompleteProfile(c.Request.Context(), userID, &req)
	if err != nil {
		h.handleAuthError(c, err)
		return
	}

	response.OK(c, result)
}

// GetCurrentUser 当前用户信息
// GET /api/v1/auth/me
func (h *AuthHandler) GetCurrentUser(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	result, err := h.authSvc.GetCurrentUser(c.Request.Context(), userID)
	if err != nil {
		h.handleAuthError(c, err)
		return
	}

	response.OK(c, result)
}

// Logout 登出：Token JTI 加入黑名单直至自然过期
// POST /api/v1/auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	if h.rdb == nil {
		// Redis 不可用时降级为无状态登出
		response.OK(c, nil)
		return
	}

	jti := c.GetString("token_jti")
	expiresAt, _ := c.Get("token_expires_at")
	exp, ok := expiresAt.(time.Time)
	if jti == "" || !ok {
		response.OK(c, nil)
		return
	}

	if err := h.rdb.BlacklistToken(c.Request.Context(), jti, time.Until(exp)); err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, nil)
}

// handleAuthError 统一处理认证模块业务错误
func (h *AuthHandler) handleAuthError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrEmailExists):
		response.Conflict(c, 11002, "邮箱已被注册")
	case errors.Is(err, service.ErrLocationNotFound):
		response.BadRequest(c, 16001, "工作地点不存在")
	case errors.Is(err, service.ErrInvalidCredentials):
		response.BadRequest(c, 11001, "邮箱或密码错误")
	case errors.Is(err, service.ErrInvalidGoogleToken):
		response.BadRequest(c, 11003, "Google 凭证无效")
	case errors.Is(err, service.ErrUserNotFound):
		response.NotFound(c, 11004, "用户不存在")
	default:
		response.InternalError(c)
	}
}
