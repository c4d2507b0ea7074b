package dto

// ── 认证模块 DTO ──

// SignupRequest 本地注册请求
type SignupRequest struct {
	Name       string `json:"name"        binding:"required,min=2,max=100"`
	Email      string `json:"email"       binding:"required,email"`
	Password   string `json:"password"    binding:"required,min=6,max=72"`
	LocationID string `json:"location_id" binding:"required,uuid"`
}

// LoginRequest 本地登录请求
type LoginRequest struct {
	Email    string `json:"email"    binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// GoogleAuthRequest Google 登录/注册请求
// Credential 为 Google 签发的 ID Token 原文
type GoogleAuthRequest struct {
	Credential string `json:"credential" binding:"required"`
}

// UpdateUserInfoRequest 补全资料请求（Google 注册后）
// 目标用户取自认证上下文，请求体不携带 user_id
type UpdateUserInfoRequest struct {
	Name       string `json:"name"        binding:"required,min=2,max=100"`
	LocationID string `json:"location_id" binding:"required,uuid"`
}
