package handler

import "github.com/stevehanper/beetime-backend/internal/service"

// Handler 所有 Handler 的聚合入口
type Handler struct {
	Auth      *AuthHandler
	Location  *LocationHandler
	TimeEntry *TimeEntryHandler
}

// NewHandler 创建 Handler 聚合
func NewHandler(svc *service.Service) *Handler {
	return &Handler{
		Auth:      NewAuthHandler(svc.Auth),
		Location:  NewLocationHandler(svc.Location),
		TimeEntry: NewTimeEntryHandler(svc.TimeEntry, svc.Export),
	}
}
