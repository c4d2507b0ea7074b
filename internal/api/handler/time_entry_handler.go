package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/stevehanper/beetime-backend/internal/dto"
	"github.com/stevehanper/beetime-backend/internal/service"
	"github.com/stevehanper/beetime-backend/pkg/response"
)

// TimeEntryHandler 考勤模块 HTTP 处理器
type TimeEntryHandler struct {
	timeEntrySvc service.TimeEntryService
	exportSvc    service.ExportService
}

// NewTimeEntryHandler 创建 TimeEntryHandler
func NewTimeEntryHandler(timeEntrySvc service.TimeEntryService, exportSvc service.ExportService) *TimeEntryHandler {
	return &TimeEntryHandler{timeEntrySvc: timeEntrySvc, exportSvc: exportSvc}
}

// CreateTimeEntry 上班打卡
// POST /api/v1/time-entries
func (h *TimeEntryHandler) CreateTimeEntry(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	entry, err := h.timeEntrySvc.ClockIn(c.Request.Context(), userID)
	if err != nil {
		h.handleTimeEntryError(c, err)
		return
	}

	response.Created(c, entry)
}

// ListTimeEntries 查询本人全部考勤记录
// GET /api/v1/time-entries
func (h *TimeEntryHandler) ListTimeEntries(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	entries, err := h.timeEntrySvc.List(c.Request.Context(), userID)
	if err != nil {
		h.handleTimeEntryError(c, err)
		return
	}

	response.OK(c, gin.H{"list": entries})
}

// UpdateTimeEntry 部分更新考勤记录
// PATCH /api/v1/time-entries/:id
func (h *TimeEntryHandler) UpdateTimeEntry(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "考勤记录ID不能为空")
		return
	}

	var req dto.UpdateTimeEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	entry, err := h.timeEntrySvc.Update(c.Request.Context(), userID, id, &req)
	if err != nil {
		h.handleTimeEntryError(c, err)
		return
	}

	response.OK(c, entry)
}

// ExportTimesheet 导出本人考勤表为 Excel
// GET /api/v1/time-entries/export
func (h *TimeEntryHandler) ExportTimesheet(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	buf, filename, err := h.exportSvc.ExportTimesheet(c.Request.Context(), userID)
	if err != nil {
		h.handleTimeEntryError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		buf.Bytes())
}

// ExportCalendar 导出本人考勤为 iCalendar 订阅源
// GET /api/v1/time-entries/calendar
func (h *TimeEntryHandler) ExportCalendar(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	content, err := h.exportSvc.ExportCalendar(c.Request.Context(), userID)
	if err != nil {
		h.handleTimeEntryError(c, err)
		return
	}

	c.Data(http.StatusOK, "text/calendar; charset=utf-8", []byte(content))
}

// handleTimeEntryError 统一处理考勤模块业务错误
func (h *TimeEntryHandler) handleTimeEntryError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrTimeEntryNotFound):
		response.NotFound(c, 17001, "考勤记录不存在")
	case errors.Is(err, service.ErrOpenEntryExists):
		response.Conflict(c, 17002, "已有进行中的考勤记录")
	case errors.Is(err, service.ErrNoLocationAssigned):
		response.BadRequest(c, 17003, "尚未分配工作地点")
	case errors.Is(err, service.ErrNoOpenBreak):
		response.BadRequest(c, 17004, "没有进行中的休息")
	case errors.Is(err, service.ErrExportNoEntries):
		response.NotFound(c, 17005, "暂无考勤记录可导出")
	case errors.Is(err, service.ErrUserNotFound):
		response.NotFound(c, 11004, "用户不存在")
	default:
		response.InternalError(c)
	}
}
