package model

import "time"

// LocationUser 地点分配历史表 — 对应 location_users
// 只追加账本：每次分配（注册、补全资料、调动）写入一条，创建后不再修改。
// 结束时间由下一条记录的 StartDate 隐含，末条记录表示当前分配。
type LocationUser struct {
	LocationUserID string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"location_user_id"`
	UserID         string    `gorm:"type:uuid;not null;index:idx_location_users_user" json:"user_id"`
	LocationID     string    `gorm:"type:uuid;not null"                             json:"location_id"`
	StartDate      time.Time `gorm:"not null"                                       json:"start_date"`
	BaseModel

	// 关联
	Location *Location `gorm:"foreignKey:LocationID;references:LocationID" json:"location,omitempty"`
}

// TableName 指定表名
func (LocationUser) TableName() string { return "location_users" }
