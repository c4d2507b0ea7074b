package model

// 用户角色
const RoleEmployee = "EMPLOYEE"

// User 用户表 — 对应 users
// PasswordHash 为空表示 Google 登录账号（无本地密码）；
// IsProfileComplete=false 表示 Google 注册后尚未补全姓名与工作地点
type User struct {
	UserID            string  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"user_id"`
	Email             string  `gorm:"type:varchar(255);not null;uniqueIndex"         json:"email"`
	PasswordHash      *string `gorm:"type:varchar(255)"                              json:"-"`
	Name              string  `gorm:"type:varchar(100);not null"                     json:"name"`
	Role              string  `gorm:"type:varchar(20);not null;default:'EMPLOYEE'"   json:"role"`
	LocationID        *string `gorm:"type:uuid"                                      json:"location_id"`
	IsProfileComplete bool    `gorm:"not null;default:false"                         json:"is_profile_complete"`
	BaseModel

	// 关联
	Location *Location `gorm:"foreignKey:LocationID;references:LocationID" json:"location,omitempty"`
}

// TableName 指定表名
func (User) TableName() string { return "users" }
