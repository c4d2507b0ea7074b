package model

import "time"

// TimeRecord 考勤记录表 — 对应 time_records
// 一条记录对应一次上班会话；ClockOut 为空表示会话进行中。
// 所有时间戳以 UTC 存储，展示时转换为 NSW 时间。
type TimeRecord struct {
	TimeRecordID string     `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"time_record_id"`
	UserID       string     `gorm:"type:uuid;not null;index:idx_time_records_user_date" json:"user_id"`
	LocationID   string     `gorm:"type:uuid;not null"                             json:"location_id"`
	Date         time.Time  `gorm:"not null"                                       json:"date"`
	ClockIn      time.Time  `gorm:"not null"                                       json:"clock_in"`
	ClockOut     *time.Time `json:"clock_out"`
	BaseModel

	// 关联
	Breaks []Break `gorm:"foreignKey:TimeRecordID;references:TimeRecordID" json:"breaks"`
}

// TableName 指定表名
func (TimeRecord) TableName() string { return "time_records" }

// Break 休息记录表 — 对应 breaks，归属于唯一一条 TimeRecord
type Break struct {
	BreakID      string     `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"break_id"`
	TimeRecordID string     `gorm:"type:uuid;not null;index"                       json:"time_record_id"`
	StartTime    time.Time  `gorm:"not null"                                       json:"start_time"`
	EndTime      *time.Time `json:"end_time"`
	BaseModel
}

// TableName 指定表名
func (Break) TableName() string { return "breaks" }
