package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/stevehanper/beetime-backend/internal/service"
	"github.com/stevehanper/beetime-backend/pkg/response"
)

// LocationHandler 工作地点模块 HTTP 处理器
type LocationHandler struct {
	locationSvc service.LocationService
}

// NewLocationHandler 创建 LocationHandler
func NewLocationHandler(locationSvc service.LocationService) *LocationHandler {
	return &LocationHandler{locationSvc: locationSvc}
}

// ListLocations 获取工作地点列表（公开，注册页地点选择用）
// GET /api/v1/locations
func (h *LocationHandler) ListLocations(c *gin.Context) {
	locations, err := h.locationSvc.List(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, gin.H{"list": locations})
}
