package service

import (
	"context"
	"errors"

	"github.com/openmusic/server/internal/domain"
	"github.com/openmusic/server/internal/repository"
	"github.com/openmusic/server/pkg/crypto"
	"github.com/openmusic/server/pkg/id"
)

// UserService 用户服务
type UserService struct {
	userRepo repository.UserRepository
	hasher   *crypto.PasswordHasher
}

// NewUserService 创建用户服务
func NewUserService(userRepo repository.UserRepository, hasher *crypto.PasswordHasher) *UserService {
	return &UserService{userRepo: userRepo, hasher: hasher}
}

// Register 注册新用户（用户名重复时拒绝）
func (s *UserService) Register(ctx context.Context, username, password, fullname string) (string, error) {
	user := &domain.User{
		ID:       id.New("user"),
		Username: username,
		Password: password,
		Fullname: fullname,
	}
	if err := user.Validate(); err != nil {
		return "", err
	}

	taken, err := s.userRepo.UsernameExists(ctx, username)
	if err != nil {
		return "", err
	}
	if taken {
		return "", domain.ErrUsernameTaken
	}

	hashed, err := s.hasher.Hash(password)
	if err != nil {
		return "", err
	}
	user.Password = hashed

	if err := s.userRepo.Create(ctx, user); err != nil {
		return "", err
	}
	return user.ID, nil
}

// GetUser 获取用户信息
func (s *UserService) GetUser(ctx context.Context, userID string) (*domain.User, error) {
	return s.userRepo.GetByID(ctx, userID)
}

// VerifyUserExists 校验用户是否存在
func (s *UserService) VerifyUserExists(ctx context.Context, userID string) error {
	ok, err := s.userRepo.Exists(ctx, userID)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrUserNotFound
	}
	return nil
}

// VerifyCredentials 校验用户名密码，成功时返回用户 ID
func (s *UserService) VerifyCredentials(ctx context.Context, username, password string) (string, error) {
	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", domain.ErrInvalidCredentials
		}
		return "", err
	}

	match, err := s.hasher.Verify(password, user.Password)
	if err != nil {
		return "", err
	}
	if !match {
		return "", domain.ErrInvalidCredentials
	}
	return user.ID, nil
}
