package service

import (
	"context"
	"time"

	"github.com/openmusic/server/internal/domain"
	"github.com/openmusic/server/internal/repository"
	"github.com/openmusic/server/pkg/jwt"
)

// CredentialVerifier 凭证校验接口
type CredentialVerifier interface {
	VerifyCredentials(ctx context.Context, username, password string) (string, error)
}

// AuthService 认证服务，负责令牌的签发、刷新与撤销
type AuthService struct {
	authRepo    repository.AuthRepository
	credentials CredentialVerifier
	tokens      *jwt.Manager
}

// NewAuthService 创建认证服务
func NewAuthService(authRepo repository.AuthRepository, credentials CredentialVerifier, tokens *jwt.Manager) *AuthService {
	return &AuthService{
		authRepo:    authRepo,
		credentials: credentials,
		tokens:      tokens,
	}
}

// Login 用户登录，签发访问令牌与刷新令牌
func (s *AuthService) Login(ctx context.Context, username, password string) (*domain.TokenPair, error) {
	userID, err := s.credentials.VerifyCredentials(ctx, username, password)
	if err != nil {
		return nil, err
	}

	accessToken, err := s.tokens.GenerateToken(userID)
	if err != nil {
		return nil, err
	}
	refreshToken, err := s.tokens.GenerateRefreshToken(userID)
	if err != nil {
		return nil, err
	}

	record := &domain.RefreshToken{
		Token:     refreshToken,
		UserID:    userID,
		CreatedAt: time.Now(),
	}
	if err := s.authRepo.Store(ctx, record); err != nil {
		return nil, err
	}

	return &domain.TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

// Refresh 用刷新令牌换取新的访问令牌。
// 刷新令牌必须同时通过签名校验和存储校验。
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (string, error) {
	exists, err := s.authRepo.Exists(ctx, refreshToken)
	if err != nil {
		return "", err
	}
	if !exists {
		return "", domain.ErrRefreshTokenInvalid
	}

	claims, err := s.tokens.ValidateRefreshToken(refreshToken)
	if err != nil {
		return "", domain.ErrRefreshTokenInvalid
	}

	return s.tokens.GenerateToken(claims.UserID)
}

// Logout 撤销刷新令牌
func (s *AuthService) Logout(ctx context.Context, refreshToken string) error {
	return s.authRepo.Delete(ctx, refreshToken)
}
