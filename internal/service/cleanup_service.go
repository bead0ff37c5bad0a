package service

import (
	"context"
	"time"

	"github.com/openmusic/server/internal/repository"
	"github.com/openmusic/server/pkg/logger"
)

// CleanupService 过期刷新令牌清理服务
type CleanupService struct {
	authRepo repository.AuthRepository
	ttl      time.Duration
	log      logger.Logger
}

// NewCleanupService 创建清理服务
func NewCleanupService(authRepo repository.AuthRepository, ttl time.Duration, log logger.Logger) *CleanupService {
	return &CleanupService{
		authRepo: authRepo,
		ttl:      ttl,
		log:      log,
	}
}

// PruneExpiredTokens 删除超过刷新有效期的令牌记录
func (s *CleanupService) PruneExpiredTokens(ctx context.Context) error {
	cutoff := time.Now().Add(-s.ttl)

	deleted, err := s.authRepo.DeleteCreatedBefore(ctx, cutoff)
	if err != nil {
		s.log.Error("failed to prune expired refresh tokens", logger.Error(err))
		return err
	}

	if deleted > 0 {
		s.log.Info("pruned expired refresh tokens",
			logger.Int64("deleted", deleted),
			logger.String("cutoff", cutoff.Format(time.RFC3339)),
		)
	}
	return nil
}
