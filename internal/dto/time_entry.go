package dto

// ── 考勤模块 DTO ──

// NSWTimeLayout 考勤接口时间戳的统一格式（NSW 墙上时间，无时区后缀）
const NSWTimeLayout = "2006-01-02T15:04:05"

// UpdateTimeEntryRequest 考勤记录部分更新请求
// 任意字段子集均可提交；时间均为 NSW 墙上时间
type UpdateTimeEntryRequest struct {
	Date       *string `json:"date"        binding:"omitempty,datetime=2006-01-02T15:04:05"`
	ClockIn    *string `json:"clock_in"    binding:"omitempty,datetime=2006-01-02T15:04:05"`
	BreakStart *string `json:"break_start" binding:"omitempty,datetime=2006-01-02T15:04:05"`
	BreakEnd   *string `json:"break_end"   binding:"omitempty,datetime=2006-01-02T15:04:05"`
	ClockOut   *string `json:"clock_out"   binding:"omitempty,datetime=2006-01-02T15:04:05"`
}

// BreakResponse 休息记录响应（NSW 时间）
type BreakResponse struct {
	ID        string  `json:"id"`
	StartTime string  `json:"start_time"`
	EndTime   *string `json:"end_time"`
}

// TimeEntryResponse 考勤记录响应（NSW 时间）
type TimeEntryResponse struct {
	ID         string          `json:"id"`
	LocationID string          `json:"location_id"`
	Date       string          `json:"date"`
	ClockIn    string          `json:"clock_in"`
	ClockOut   *string         `json:"clock_out"`
	Breaks     []BreakResponse `json:"breaks"`
}
