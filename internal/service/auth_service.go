package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/stevehanper/beetime-backend/internal/dto"
	"github.com/stevehanper/beetime-backend/internal/model"
	"github.com/stevehanper/beetime-backend/internal/repository"
	"github.com/stevehanper/beetime-backend/pkg/jwt"
)

// ── 认证模块业务错误 ──

var (
	ErrEmailExists        = errors.New("邮箱已被注册")
	ErrLocationNotFound   = errors.New("工作地点不存在")
	ErrInvalidCredentials = errors.New("邮箱或密码错误")
	ErrInvalidGoogleToken = errors.New("Google 凭证无效")
	ErrUserNotFound       = errors.New("用户不存在")
)

// AuthService 认证业务接口
type AuthService interface {
	Signup(ctx context.Context, req *dto.SignupRequest) (*dto.TokenResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error)
	GoogleAuth(ctx context.Context, req *dto.GoogleAuthRequest) (*dto.GoogleAuthResponse, error)
	// CompleteProfile 补全资料：目标用户为认证上下文中的 userID，
	// 不信任请求体携带的用户标识
	CompleteProfile(ctx context.Context, userID string, req *dto.UpdateUserInfoRequest) (*dto.TokenResponse, error)
	GetCurrentUser(ctx context.Context, userID string) (*dto.UserResponse, error)
}

type authService struct {
	repo     *repository.Repository
	jwtMgr   *jwt.Manager
	verifier GoogleVerifier
	logger   *zap.Logger
}

// NewAuthService 创建 AuthService 实例
func NewAuthService(
	repo *repository.Repository,
	jwtMgr *jwt.Manager,
	verifier GoogleVerifier,
	logger *zap.Logger,
) AuthService {
	return &authService{
		repo:     repo,
		jwtMgr:   jwtMgr,
		verifier: verifier,
		logger:   logger,
	}
}

// ────────────────────── Signup ──────────────────────

func (s *authService) Signup(ctx context.Context, req *dto.SignupRequest) (*dto.TokenResponse, error) {
	// 1. 邮箱唯一性检查
	if _, err := s.repo.User.GetByEmail(ctx, req.Email); err == nil {
		return nil, ErrEmailExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		s.logger.Error("查询用户失败", zap.Error(err))
		return nil, err
	}

	// 2. 工作地点存在性检查
	if _, err := s.repo.Location.GetByID(ctx, req.LocationID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrLocationNotFound
		}
		s.logger.Error("查询工作地点失败", zap.Error(err))
		return nil, err
	}

	// 3. 哈希密码，事务内创建用户 + 地点分配历史
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		s.logger.Error("密码哈希失败", zap.Error(err))
		return nil, err
	}

	hashStr := string(hash)
	locationID := req.LocationID
	user := &model.User{
		Email:             req.Email,
		PasswordHash:      &hashStr,
		Name:              req.Name,
		Role:              model.RoleEmployee,
		LocationID:        &locationID,
		IsProfileComplete: true,
	}

	if err := s.repo.User.CreateWithHistory(ctx, user, time.Now().UTC()); err != nil {
		s.logger.Error("创建用户失败", zap.Error(err))
		return nil, err
	}

	s.logger.Info("用户注册成功",
		zap.String("user_id", user.UserID),
		zap.String("location_id", locationID),
	)

	// 4. 签发 Token
	return s.tokenResponse(user)
}

// ────────────────────── Login ──────────────────────

func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error) {
	// 1. 查询用户。用户不存在、Google 专属账号（无密码）、密码错误
	//    统一返回 ErrInvalidCredentials，避免账号枚举
	user, err := s.repo.User.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		s.logger.Error("查询用户失败", zap.Error(err))
		return nil, err
	}

	if user.PasswordHash == nil {
		return nil, ErrInvalidCredentials
	}

	// 2. 验证密码 (bcrypt)
	if err := bcrypt.CompareHashAndPassword([]byte(*user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	// 3. 签发 Token
	return s.tokenResponse(user)
}

// ────────────────────── GoogleAuth ──────────────────────

func (s *authService) GoogleAuth(ctx context.Context, req *dto.GoogleAuthRequest) (*dto.GoogleAuthResponse, error) {
	// 1. 验证 Google ID Token（含 audience 校验与邮箱存在性）
	identity, err := s.verifier.Verify(ctx, req.Credential)
	if err != nil {
		s.logger.Warn("Google 凭证验证失败", zap.Error(err))
		return nil, ErrInvalidGoogleToken
	}

	// 2. 按验证后的邮箱查找用户，不存在则创建待补全账号
	user, err := s.repo.User.GetByEmail(ctx, identity.Email)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			s.logger.Error("查询用户失败", zap.Error(err))
			return nil, err
		}

		user = &model.User{
			Email:             identity.Email,
			Name:              identity.Name,
			Role:              model.RoleEmployee,
			IsProfileComplete: false,
		}
		if err := s.repo.User.Create(ctx, user); err != nil {
			s.logger.Error("创建 Google 用户失败", zap.Error(err))
			return nil, err
		}
		s.logger.Info("Google 用户注册成功", zap.String("user_id", user.UserID))
	}

	// 3. 签发 Token，附带是否需要补全资料
	token, err := s.jwtMgr.GenerateToken(user.UserID, user.Role)
	if err != nil {
		s.logger.Error("生成 Token 失败", zap.Error(err))
		return nil, err
	}

	return &dto.GoogleAuthResponse{
		Token:                   token,
		ExpiresIn:               int(s.jwtMgr.TokenTTL().Seconds()),
		User:                    userResponse(user),
		RequiresProfileComplete: !user.IsProfileComplete,
	}, nil
}

// ────────────────────── CompleteProfile ──────────────────────

func (s *authService) CompleteProfile(ctx context.Context, userID string, req *dto.UpdateUserInfoRequest) (*dto.TokenResponse, error) {
	user, err := s.repo.User.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		s.logger.Error("查询用户失败", zap.Error(err))
		return nil, err
	}

	if _, err := s.repo.Location.GetByID(ctx, req.LocationID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrLocationNotFound
		}
		s.logger.Error("查询工作地点失败", zap.Error(err))
		return nil, err
	}

	// 事务内更新资料 + 追加地点分配历史
	locationID := req.LocationID
	user.Name = req.Name
	user.LocationID = &locationID
	user.IsProfileComplete = true

	if err := s.repo.User.CompleteProfileWithHistory(ctx, user, time.Now().UTC()); err != nil {
		s.logger.Error("更新用户资料失败", zap.Error(err))
		return nil, err
	}

	s.logger.Info("用户资料补全成功",
		zap.String("user_id", user.UserID),
		zap.String("location_id", locationID),
	)

	return s.tokenResponse(user)
}

// ────────────────────── GetCurrentUser ──────────────────────

func (s *authService) GetCurrentUser(ctx context.Context, userID string) (*dto.UserResponse, error) {
	user, err := s.repo.User.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	resp := userResponse(user)
	return &resp, nil
}

// ── 响应构造 ──

func (s *authService) tokenResponse(user *model.User) (*dto.TokenResponse, error) {
	token, err := s.jwtMgr.GenerateToken(user.UserID, user.Role)
	if err != nil {
		s.logger.Error("生成 Token 失败", zap.Error(err))
		return nil, err
	}
	return &dto.TokenResponse{
		Token:     token,
		ExpiresIn: int(s.jwtMgr.TokenTTL().Seconds()),
		User:      userResponse(user),
	}, nil
}

// userResponse 用户公开投影，密码哈希永不进入响应
func userResponse(user *model.User) dto.UserResponse {
	return dto.UserResponse{
		ID:                user.UserID,
		Email:             user.Email,
		Name:              user.Name,
		LocationID:        user.LocationID,
		IsProfileComplete: user.IsProfileComplete,
	}
}
