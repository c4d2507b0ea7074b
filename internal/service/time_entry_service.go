package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/stevehanper/beetime-backend/internal/dto"
	"github.com/stevehanper/beetime-backend/internal/model"
	"github.com/stevehanper/beetime-backend/internal/repository"
	"github.com/stevehanper/beetime-backend/pkg/timezone"
)

// ── 考勤模块业务错误 ──

var (
	ErrTimeEntryNotFound  = errors.New("考勤记录不存在")
	ErrOpenEntryExists    = errors.New("已有进行中的考勤记录")
	ErrNoLocationAssigned = errors.New("尚未分配工作地点")
	ErrNoOpenBreak        = errors.New("没有进行中的休息")
)

// TimeEntryService 考勤业务接口
// 所有操作以认证上下文的 userID 为准，非本人记录按不存在处理
type TimeEntryService interface {
	// ClockIn 上班打卡。当前已有未下班记录时拒绝
	ClockIn(ctx context.Context, userID string) (*dto.TimeEntryResponse, error)
	// List 按日期升序返回用户全部考勤记录（含休息），时间为 NSW 展示时间
	List(ctx context.Context, userID string) ([]dto.TimeEntryResponse, error)
	// Update 部分更新：date/clock_in/clock_out 覆盖对应字段，
	// break_start 新开一条休息，break_end 结束最近一条进行中的休息
	Update(ctx context.Context, userID, recordID string, req *dto.UpdateTimeEntryRequest) (*dto.TimeEntryResponse, error)
}

type timeEntryService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewTimeEntryService 创建 TimeEntryService 实例
func NewTimeEntryService(repo *repository.Repository, logger *zap.Logger) TimeEntryService {
	return &timeEntryService{repo: repo, logger: logger}
}

// ────────────────────── ClockIn ──────────────────────

func (s *timeEntryService) ClockIn(ctx context.Context, userID string) (*dto.TimeEntryResponse, error) {
	// 1. 打卡地点取用户当前分配的工作地点
	user, err := s.repo.User.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		s.logger.Error("查询用户失败", zap.Error(err))
		return nil, err
	}
	if user.LocationID == nil {
		return nil, ErrNoLocationAssigned
	}

	// 2. 同一用户同时只允许一条未下班记录
	if _, err := s.repo.TimeRecord.GetOpenByUser(ctx, userID); err == nil {
		return nil, ErrOpenEntryExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		s.logger.Error("查询进行中考勤记录失败", zap.Error(err))
		return nil, err
	}

	// 3. date 与 clock_in 均取当前时刻（UTC 存储）
	now := time.Now().UTC().Truncate(time.Second)
	record := &model.TimeRecord{
		UserID:     userID,
		LocationID: *user.LocationID,
		Date:       now,
		ClockIn:    now,
	}

	if err := s.repo.TimeRecord.Create(ctx, record); err != nil {
		s.logger.Error("创建考勤记录失败", zap.Error(err))
		return nil, err
	}

	s.logger.Info("上班打卡",
		zap.String("user_id", userID),
		zap.String("time_record_id", record.TimeRecordID),
	)

	resp := timeEntryResponse(record)
	return &resp, nil
}

// ────────────────────── List ──────────────────────

func (s *timeEntryService) List(ctx context.Context, userID string) ([]dto.TimeEntryResponse, error) {
	records, err := s.repo.TimeRecord.ListByUser(ctx, userID)
	if err != nil {
		s.logger.Error("查询考勤记录失败", zap.Error(err))
		return nil, err
	}

	result := make([]dto.TimeEntryResponse, 0, len(records))
	for i := range records {
		result = append(result, timeEntryResponse(&records[i]))
	}
	return result, nil
}

// ────────────────────── Update ──────────────────────

func (s *timeEntryService) Update(ctx context.Context, userID, recordID string, req *dto.UpdateTimeEntryRequest) (*dto.TimeEntryResponse, error) {
	// 归属校验在查询条件中完成：非本人记录返回 ErrTimeEntryNotFound
	record, err := s.repo.TimeRecord.GetByIDForUser(ctx, recordID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTimeEntryNotFound
		}
		s.logger.Error("查询考勤记录失败", zap.Error(err))
		return nil, err
	}

	// 标量字段覆盖（入参为 NSW 墙上时间，换算回 UTC 存储）
	changed := false
	if req.Date != nil {
		record.Date = parseNSW(*req.Date)
		changed = true
	}
	if req.ClockIn != nil {
		record.ClockIn = parseNSW(*req.ClockIn)
		changed = true
	}
	if req.ClockOut != nil {
		t := parseNSW(*req.ClockOut)
		record.ClockOut = &t
		changed = true
	}
	if changed {
		if err := s.repo.TimeRecord.Update(ctx, record); err != nil {
			s.logger.Error("更新考勤记录失败", zap.Error(err))
			return nil, err
		}
	}

	// break_start 新开一条休息
	if req.BreakStart != nil {
		br := &model.Break{
			TimeRecordID: record.TimeRecordID,
			StartTime:    parseNSW(*req.BreakStart),
		}
		if err := s.repo.TimeRecord.CreateBreak(ctx, br); err != nil {
			s.logger.Error("创建休息记录失败", zap.Error(err))
			return nil, err
		}
	}

	// break_end 结束最近一条进行中的休息
	if req.BreakEnd != nil {
		br, err := s.repo.TimeRecord.GetOpenBreak(ctx, record.TimeRecordID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrNoOpenBreak
			}
			s.logger.Error("查询进行中休息失败", zap.Error(err))
			return nil, err
		}
		t := parseNSW(*req.BreakEnd)
		br.EndTime = &t
		if err := s.repo.TimeRecord.UpdateBreak(ctx, br); err != nil {
			s.logger.Error("更新休息记录失败", zap.Error(err))
			return nil, err
		}
	}

	// 重新加载，返回含最新休息列表的完整记录
	record, err = s.repo.TimeRecord.GetByIDForUser(ctx, recordID, userID)
	if err != nil {
		s.logger.Error("重新加载考勤记录失败", zap.Error(err))
		return nil, err
	}

	resp := timeEntryResponse(record)
	return &resp, nil
}

// ── NSW 时间转换辅助 ──

// parseNSW 将请求中的 NSW 墙上时间换算为 UTC 存储时间。
// 格式已由 binding 校验，此处解析不会失败
func parseNSW(s string) time.Time {
	wall, _ := time.Parse(dto.NSWTimeLayout, s)
	return timezone.FromNSWTime(wall)
}

// formatNSW 将 UTC 存储时间格式化为 NSW 展示时间
func formatNSW(t time.Time) string {
	return timezone.ToNSWTime(t).Format(dto.NSWTimeLayout)
}

// timeEntryResponse 考勤记录投影，所有时间戳转为 NSW 展示时间
func timeEntryResponse(record *model.TimeRecord) dto.TimeEntryResponse {
	breaks := make([]dto.BreakResponse, 0, len(record.Breaks))
	for _, br := range record.Breaks {
		item := dto.BreakResponse{
			ID:        br.BreakID,
			StartTime: formatNSW(br.StartTime),
		}
		if br.EndTime != nil {
			end := formatNSW(*br.EndTime)
			item.EndTime = &end
		}
		breaks = append(breaks, item)
	}

	resp := dto.TimeEntryResponse{
		ID:         record.TimeRecordID,
		LocationID: record.LocationID,
		Date:       formatNSW(record.Date),
		ClockIn:    formatNSW(record.ClockIn),
		Breaks:     breaks,
	}
	if record.ClockOut != nil {
		out := formatNSW(*record.ClockOut)
		resp.ClockOut = &out
	}
	return resp
}
