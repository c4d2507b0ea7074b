package model

// Location 工作地点表 — 对应 locations
// 地点为迁移脚本预置的只读参考数据，运行时不提供增删改
type Location struct {
	LocationID string  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"location_id"`
	Name       string  `gorm:"type:varchar(100);not null"                     json:"name"`
	Branch     *string `gorm:"type:varchar(100)"                              json:"branch,omitempty"`
	Company    string  `gorm:"type:varchar(100);not null"                     json:"company"`
	Address    string  `gorm:"type:varchar(300);not null"                     json:"address"`
	BaseModel
}

// TableName 指定表名
func (Location) TableName() string { return "locations" }
