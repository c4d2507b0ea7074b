package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/stevehanper/beetime-backend/internal/dto"
	"github.com/stevehanper/beetime-backend/internal/repository"
)

// LocationService 工作地点业务接口
// 地点为迁移脚本预置的只读数据，仅提供列表查询（注册页地点选择用）
type LocationService interface {
	List(ctx context.Context) ([]dto.LocationResponse, error)
}

type locationService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewLocationService 创建 LocationService 实例
func NewLocationService(repo *repository.Repository, logger *zap.Logger) LocationService {
	return &locationService{repo: repo, logger: logger}
}

func (s *locationService) List(ctx context.Context) ([]dto.LocationResponse, error) {
	locations, err := s.repo.Location.List(ctx)
	if err != nil {
		s.logger.Error("查询工作地点列表失败", zap.Error(err))
		return nil, err
	}

	result := make([]dto.LocationResponse, 0, len(locations))
	for _, loc := range locations {
		result = append(result, dto.LocationResponse{
			ID:      loc.LocationID,
			Name:    loc.Name,
			Branch:  loc.Branch,
			Company: loc.Company,
			Address: loc.Address,
		})
	}
	return result, nil
}
