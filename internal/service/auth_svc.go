package service

import (
	"context"
	"errors"
	"time"

	"golang.org/x/crypto/bcrypt"

	"stylehub_dev_v1_202601/internal/api/dto"
	"stylehub_dev_v1_202601/internal/middleware"
	"stylehub_dev_v1_202601/internal/model"
	"stylehub_dev_v1_202601/internal/repository"
)

// ==================== 凭证校验 ====================

// CredentialVerifier 凭证校验接口
// 把"怎么比对密码"和"登录流程"拆开：生产路径永远走 bcrypt，
// 明文实现只存在于测试代码里，防止演示逻辑被误当成真实鉴权
type CredentialVerifier interface {
	Verify(stored, plain string) error
}

// BcryptVerifier bcrypt 哈希比对（默认实现）
type BcryptVerifier struct{}

func (BcryptVerifier) Verify(stored, plain string) error {
	return bcrypt.CompareHashAndPassword([]byte(stored), []byte(plain))
}

// PlainTextVerifier 明文比对，仅限测试使用，严禁接到生产配置上
type PlainTextVerifier struct{}

func (PlainTextVerifier) Verify(stored, plain string) error {
	if stored != plain {
		return errors.New("password mismatch")
	}
	return nil
}

// ==================== AuthService 认证服务 ====================

// AuthService 认证服务
type AuthService struct {
	userRepo repository.UserRepository
	verifier CredentialVerifier
}

// NewAuthService 创建认证服务
func NewAuthService(userRepo repository.UserRepository, verifier CredentialVerifier) *AuthService {
	if verifier == nil {
		verifier = BcryptVerifier{}
	}
	return &AuthService{
		userRepo: userRepo,
		verifier: verifier,
	}
}

// ==================== 认证相关 ====================

// Login 用户登录
func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	// 查找用户
	user, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}

	// 检查状态
	if !user.IsActive {
		return nil, ErrUserDisabled
	}

	// 验证密码
	if err := s.verifier.Verify(user.Password, req.Password); err != nil {
		return nil, ErrInvalidCredentials
	}

	// 生成 Token
	accessToken, refreshToken, err := middleware.GenerateTokenPair(user.ID, user.Email, user.Role)
	if err != nil {
		return nil, err
	}

	cfg := middleware.GetJWTConfig()
	return &dto.LoginResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresAt:    time.Now().Add(cfg.AccessTokenTTL),
		User:         s.toUserInfo(user),
	}, nil
}

// RefreshToken 刷新 Token
func (s *AuthService) RefreshToken(ctx context.Context, req *dto.RefreshTokenRequest) (*dto.RefreshTokenResponse, error) {
	// 解析 Refresh Token
	claims, err := middleware.ParseToken(req.RefreshToken)
	if err != nil {
		return nil, ErrInvalidToken
	}

	// 验证是否为 Refresh Token
	if claims.Subject != "refresh" {
		return nil, ErrInvalidToken
	}

	// 获取用户信息（确保用户仍然有效）
	user, err := s.userRepo.GetByID(ctx, claims.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil || !user.IsActive {
		return nil, ErrUserDisabled
	}

	// 生成新 Token
	accessToken, refreshToken, err := middleware.GenerateTokenPair(user.ID, user.Email, user.Role)
	if err != nil {
		return nil, err
	}

	cfg := middleware.GetJWTConfig()
	return &dto.RefreshTokenResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresAt:    time.Now().Add(cfg.AccessTokenTTL),
	}, nil
}

// GetUserInfo 获取当前用户信息
func (s *AuthService) GetUserInfo(ctx context.Context, userID int64) (*dto.UserInfo, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidToken
	}
	return s.toUserInfo(user), nil
}

// ==================== 内部辅助 ====================

func (s *AuthService) toUserInfo(user *model.SysUser) *dto.UserInfo {
	return &dto.UserInfo{
		ID:    user.ID,
		Email: user.Email,
		Name:  user.Name,
		Role:  user.Role,
	}
}
