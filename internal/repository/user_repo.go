package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/stevehanper/beetime-backend/internal/model"
)

// UserRepository 用户数据访问接口
type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	GetByID(ctx context.Context, id string) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	// CreateWithHistory 在单个事务中创建用户与地点分配历史。
	// 任一写入失败则整体回滚，不会残留无历史的用户。
	CreateWithHistory(ctx context.Context, user *model.User, startDate time.Time) error
	// CompleteProfileWithHistory 在单个事务中保存用户资料并追加地点分配历史
	CompleteProfileWithHistory(ctx context.Context, user *model.User, startDate time.Time) error
}

// userRepo UserRepository 的 GORM 实现
type userRepo struct {
	db *gorm.DB
}

// NewUserRepo 创建 UserRepository 实例
func NewUserRepo(db *gorm.DB) UserRepository {
	return &userRepo{db: db}
}

func (r *userRepo) Create(ctx context.Context, user *model.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *userRepo) GetByID(ctx context.Context, id string) (*model.User, error) {
	var user model.User
	err := r.db.WithContext(ctx).
		Where("user_id = ?", id).
		First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepo) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	err := r.db.WithContext(ctx).
		Where("email = ?", email).
		First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepo) CreateWithHistory(ctx context.Context, user *model.User, startDate time.Time) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			return err
		}
		history := model.LocationUser{
			UserID:     user.UserID,
			LocationID: *user.LocationID,
			StartDate:  startDate,
		}
		return tx.Create(&history).Error
	})
}

func (r *userRepo) CompleteProfileWithHistory(ctx context.Context, user *model.User, startDate time.Time) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(user).Error; err != nil {
			return err
		}
		history := model.LocationUser{
			UserID:     user.UserID,
			LocationID: *user.LocationID,
			StartDate:  startDate,
		}
		return tx.Create(&history).Error
	})
}
