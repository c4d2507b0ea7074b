package repository

import "gorm.io/gorm"

// Repository 所有 Repository 的聚合入口
type Repository struct {
	User       UserRepository
	Location   LocationRepository
	TimeRecord TimeRecordRepository
}

// NewRepository 创建 Repository 聚合
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		User:       NewUserRepo(db),
		Location:   NewLocationRepo(db),
		TimeRecord: NewTimeRecordRepo(db),
	}
}
