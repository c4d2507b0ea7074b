package dto

// ── 认证模块响应 ──

// UserResponse 用户公开信息（不含密码哈希）
type UserResponse struct {
	ID                string  `json:"id"`
	Email             string  `json:"email"`
	Name              string  `json:"name"`
	LocationID        *string `json:"location_id"`
	IsProfileComplete bool    `json:"is_profile_complete"`
}

// TokenResponse 登录/注册成功响应
type TokenResponse struct {
	Token     string       `json:"token"`
	ExpiresIn int          `json:"expires_in"` // Token 有效期（秒）
	User      UserResponse `json:"user"`
}

// GoogleAuthResponse Google 登录/注册响应
// RequiresProfileComplete=true 时前端跳转补全资料页
type GoogleAuthResponse struct {
	Token                   string       `json:"token"`
	ExpiresIn               int          `json:"expires_in"`
	User                    UserResponse `json:"user"`
	RequiresProfileComplete bool         `json:"requires_profile_complete"`
}
