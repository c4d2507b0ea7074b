package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/stevehanper/beetime-backend/internal/model"
)

// TimeRecordRepository 考勤记录数据访问接口
// 所有按 ID 的读写都以 user_id 作为查询条件的一部分：
// 非本人记录与不存在的记录同样返回 ErrRecordNotFound
type TimeRecordRepository interface {
	Create(ctx context.Context, record *model.TimeRecord) error
	ListByUser(ctx context.Context, userID string) ([]model.TimeRecord, error)
	GetByIDForUser(ctx context.Context, id, userID string) (*model.TimeRecord, error)
	// GetOpenByUser 查询用户当前未下班的记录（clock_out IS NULL）
	GetOpenByUser(ctx context.Context, userID string) (*model.TimeRecord, error)
	Update(ctx context.Context, record *model.TimeRecord) error
	CreateBreak(ctx context.Context, br *model.Break) error
	UpdateBreak(ctx context.Context, br *model.Break) error
	// GetOpenBreak 查询记录下最近一条未结束的休息
	GetOpenBreak(ctx context.Context, timeRecordID string) (*model.Break, error)
}

type timeRecordRepo struct {
	db *gorm.DB
}

// NewTimeRecordRepo 创建 TimeRecordRepository 实例
func NewTimeRecordRepo(db *gorm.DB) TimeRecordRepository {
	return &timeRecordRepo{db: db}
}

func (r *timeRecordRepo) Create(ctx context.Context, record *model.TimeRecord) error {
	return r.db.WithContext(ctx).Create(record).Error
}

func (r *timeRecordRepo) ListByUser(ctx context.Context, userID string) ([]model.TimeRecord, error) {
	var records []model.TimeRecord
	err := r.db.WithContext(ctx).
		Preload("Breaks", func(db *gorm.DB) *gorm.DB {
			return db.Order("start_time ASC")
		}).
		Where("user_id = ?", userID).
		Order("date ASC").
		Find(&records).Error
	return records, err
}

func (r *timeRecordRepo) GetByIDForUser(ctx context.Context, id, userID string) (*model.TimeRecord, error) {
	var record model.TimeRecord
	err := r.db.WithContext(ctx).
		Preload("Breaks").
		Where("time_record_id = ? AND user_id = ?", id, userID).
		First(&record).Error
	if err != nil {
		return nil, err
	}
	return &record, nil
}

func (r *timeRecordRepo) GetOpenByUser(ctx context.Context, userID string) (*model.TimeRecord, error) {
	var record model.TimeRecord
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND clock_out IS NULL", userID).
		Order("clock_in DESC").
		First(&record).Error
	if err != nil {
		return nil, err
	}
	return &record, nil
}

func (r *timeRecordRepo) Update(ctx context.Context, record *model.TimeRecord) error {
	// 只更新标量字段，休息记录由 CreateBreak/UpdateBreak 单独维护
	return r.db.WithContext(ctx).Omit("Breaks").Save(record).Error
}

func (r *timeRecordRepo) CreateBreak(ctx context.Context, br *model.Break) error {
	return r.db.WithContext(ctx).Create(br).Error
}

func (r *timeRecordRepo) UpdateBreak(ctx context.Context, br *model.Break) error {
	return r.db.WithContext(ctx).Save(br).Error
}

func (r *timeRecordRepo) GetOpenBreak(ctx context.Context, timeRecordID string) (*model.Break, error) {
	var br model.Break
	err := r.db.WithContext(ctx).
		Where("time_record_id = ? AND end_time IS NULL", timeRecordID).
		Order("start_time DESC").
		First(&br).Error
	if err != nil {
		return nil, err
	}
	return &br, nil
}
