package cron

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/openmusic/server/internal/service"
	"github.com/openmusic/server/pkg/logger"
)

// CronManager 定时任务管理器
type CronManager struct {
	cron           *cron.Cron
	cleanupService *service.CleanupService
	schedule       string
	log            logger.Logger
}

// NewCronManager 创建定时任务管理器
func NewCronManager(cleanupService *service.CleanupService, schedule string, log logger.Logger) *CronManager {
	return &CronManager{
		cron:           cron.New(cron.WithLocation(time.Local)),
		cleanupService: cleanupService,
		schedule:       schedule,
		log:            log,
	}
}

// Start 启动定时任务
func (m *CronManager) Start() error {
	// Cron格式: 分 时 日 月 周
	_, err := m.cron.AddFunc(m.schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
		defer cancel()

		startTime := time.Now()
		if err := m.cleanupService.PruneExpiredTokens(ctx); err != nil {
			m.log.Error("scheduled token cleanup failed", logger.Error(err))
			return
		}
		m.log.Info("scheduled token cleanup completed",
			logger.Duration("duration", time.Since(startTime)),
		)
	})
	if err != nil {
		return err
	}

	m.cron.Start()
	m.log.Info("cron manager started", logger.String("schedule", m.schedule))
	return nil
}

// Stop 停止定时任务
func (m *CronManager) Stop() {
	ctx := m.cron.Stop()
	<-ctx.Done() // 等待所有任务完成
	m.log.Info("cron manager stopped")
}

// RunCleanupNow 立即执行清理任务（用于测试或手动触发）
func (m *CronManager) RunCleanupNow(ctx context.Context) error {
	return m.cleanupService.PruneExpiredTokens(ctx)
}
