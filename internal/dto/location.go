package dto

// ── 地点模块 DTO ──

// LocationResponse 工作地点信息（注册页地点选择用）
type LocationResponse struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Branch  *string `json:"branch,omitempty"`
	Company string  `json:"company"`
	Address string  `json:"address"`
}
