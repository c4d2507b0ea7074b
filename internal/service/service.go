package service

import (
	"go.uber.org/zap"

	"github.com/stevehanper/beetime-backend/internal/repository"
	"github.com/stevehanper/beetime-backend/pkg/jwt"
)

// Service 所有 Service 的聚合入口
type Service struct {
	Auth      AuthService
	Location  LocationService
	TimeEntry TimeEntryService
	Export    ExportService
}

// NewService 创建 Service 聚合
func NewService(
	repo *repository.Repository,
	jwtMgr *jwt.Manager,
	verifier GoogleVerifier,
	logger *zap.Logger,
) *Service {
	return &Service{
		Auth:      NewAuthService(repo, jwtMgr, verifier, logger),
		Location:  NewLocationService(repo, logger),
		TimeEntry: NewTimeEntryService(repo, logger),
		Export:    NewExportService(repo, logger),
	}
}
