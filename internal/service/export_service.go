package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/stevehanper/beetime-backend/internal/model"
	"github.com/stevehanper/beetime-backend/internal/repository"
	"github.com/stevehanper/beetime-backend/pkg/timezone"
)

// ── 导出模块业务错误 ──

var ErrExportNoEntries = errors.New("暂无考勤记录可导出")

// ExportService 导出业务接口
//
// 设计说明：
//   - ExportTimesheet 导出当前用户全部考勤为 Excel (.xlsx)，
//     以 bytes.Buffer 返回，由 Handler 层设置响应头后写入 Response
//   - ExportCalendar 将已下班的考勤记录序列化为 iCalendar (RFC 5545)，
//     供日历客户端订阅
type ExportService interface {
	ExportTimesheet(ctx context.Context, userID string) (*bytes.Buffer, string, error)
	ExportCalendar(ctx context.Context, userID string) (string, error)
}

type exportService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewExportService 创建 ExportService 实例
func NewExportService(repo *repository.Repository, logger *zap.Logger) ExportService {
	return &exportService{repo: repo, logger: logger}
}

// ═══════════════════════════════════════════════════════════
// ExportTimesheet — 导出考勤表为 Excel
// ═══════════════════════════════════════════════════════════
//
// 输出格式：
//   - 单 Sheet "考勤记录"
//   - 列：日期 / 工作地点 / 上班 / 下班 / 休息时长 / 工时
//   - 时间以 NSW 墙上时间呈现；未下班记录的下班与工时留空

func (s *exportService) ExportTimesheet(ctx context.Context, userID string) (*bytes.Buffer, string, error) {
	records, err := s.repo.TimeRecord.ListByUser(ctx, userID)
	if err != nil {
		s.logger.Error("查询考勤记录失败", zap.Error(err))
		return nil, "", err
	}
	if len(records) == 0 {
		return nil, "", ErrExportNoEntries
	}

	locationNames, err := s.locationNames(ctx)
	if err != nil {
		return nil, "", err
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "考勤记录"
	f.SetSheetName("Sheet1", sheet)

	headers := []string{"日期", "工作地点", "上班", "下班", "休息时长", "工时"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, h)
	}

	for row, record := range records {
		breakTotal := breakDuration(&record)

		values := []interface{}{
			timezone.ToNSWTime(record.Date).Format("2006-01-02"),
			locationNames[record.LocationID],
			timezone.ToNSWTime(record.ClockIn).Format("15:04"),
			"", // 下班
			formatDuration(breakTotal),
			"", // 工时
		}
		if record.ClockOut != nil {
			values[3] = timezone.ToNSWTime(*record.ClockOut).Format("15:04")
			values[5] = formatDuration(record.ClockOut.Sub(record.ClockIn) - breakTotal)
		}

		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			f.SetCellValue(sheet, cell, v)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		s.logger.Error("生成 Excel 文件失败", zap.Error(err))
		return nil, "", err
	}

	filename := fmt.Sprintf("timesheet_%s.xlsx", timezone.ToNSWTime(time.Now()).Format("20060102"))
	return buf, filename, nil
}

// ═══════════════════════════════════════════════════════════
// ExportCalendar — 考勤记录导出为 iCalendar
// ═══════════════════════════════════════════════════════════

func (s *exportService) ExportCalendar(ctx context.Context, userID string) (string, error) {
	records, err := s.repo.TimeRecord.ListByUser(ctx, userID)
	if err != nil {
		s.logger.Error("查询考勤记录失败", zap.Error(err))
		return "", err
	}

	locationNames, err := s.locationNames(ctx)
	if err != nil {
		return "", err
	}

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//beetime//attendance//EN")

	now := time.Now().UTC()
	for _, record := range records {
		// 进行中的记录没有结束时间，不生成日历事件
		if record.ClockOut == nil {
			continue
		}

		evt := cal.AddEvent(record.TimeRecordID + "@beetime")
		evt.SetCreatedTime(record.CreatedAt)
		evt.SetDtStampTime(now)
		evt.SetStartAt(record.ClockIn)
		evt.SetEndAt(*record.ClockOut)
		evt.SetSummary("上班 · " + locationNames[record.LocationID])
		evt.SetLocation(locationNames[record.LocationID])
	}

	return cal.Serialize(), nil
}

// ── 辅助 ──

// locationNames 地点 ID → 展示名（含分店）
func (s *exportService) locationNames(ctx context.Context) (map[string]string, error) {
	locations, err := s.repo.Location.List(ctx)
	if err != nil {
		s.logger.Error("查询工作地点列表失败", zap.Error(err))
		return nil, err
	}
	names := make(map[string]string, len(locations))
	for _, loc := range locations {
		name := loc.Name
		if loc.Branch != nil && *loc.Branch != "" {
			name += " (" + *loc.Branch + ")"
		}
		names[loc.LocationID] = name
	}
	return names, nil
}

// breakDuration 累计一条记录下所有已结束休息的时长
func breakDuration(record *model.TimeRecord) time.Duration {
	var total time.Duration
	for _, br := range record.Breaks {
		if br.EndTime != nil {
			total += br.EndTime.Sub(br.StartTime)
		}
	}
	return total
}

// formatDuration 时长格式化为 "7h30m" 样式，零时长显示 "0m"
func formatDuration(d time.Duration) string {
	if d <= 0 {
		return "0m"
	}
	h := int(d.Hours())
	m := int(d.Minutes()) % 60
	if h == 0 {
		return fmt.Sprintf("%dm", m)
	}
	return fmt.Sprintf("%dh%02dm", h, m)
}
