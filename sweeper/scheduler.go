// Package sweeper 负责路线缓存的后台清理：
// 释放崩溃节点遗留的生成锁，并把过期的预览标记为待重算。
package sweeper

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
	db "github.com/merrydance/routeplan/db/sqlc"
	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"
)

const (
	// 生成锁超过该时长未完成视为持有者已崩溃
	DefaultLockStaleness = 2 * time.Minute
	// 单次清理的执行超时
	sweepTimeout = 30 * time.Second
)

// Scheduler 缓存清理调度器
type Scheduler struct {
	cron          *cron.Cron
	store         db.Store
	lockStaleness time.Duration
}

// NewScheduler 创建缓存清理调度器
func NewScheduler(store db.Store, lockStaleness time.Duration) *Scheduler {
	if lockStaleness <= 0 {
		lockStaleness = DefaultLockStaleness
	}
	return &Scheduler{
		cron:          cron.New(cron.WithSeconds()),
		store:         store,
		lockStaleness: lockStaleness,
	}
}

// Start 启动调度器（每30秒执行一次）
func (s *Scheduler) Start() error {
	_, err := s.cron.AddFunc("*/30 * * * * *", func() {
		ctx, cancel := context.WithTimeout(context.Background(), sweepTimeout)
		defer cancel()

		if err := s.Sweep(ctx); err != nil {
			log.Error().Err(err).Msg("failed to sweep route caches")
		}
	})
	if err != nil {
		return err
	}

	s.cron.Start()
	log.Info().Msg("route cache sweeper started (every 30s)")
	return nil
}

// Stop 停止调度器
func (s *Scheduler) Stop() {
	s.cron.Stop()
	log.Info().Msg("route cache sweeper stopped")
}

// Sweep 执行一轮清理：先释放过期生成锁，再标记过期预览
func (s *Scheduler) Sweep(ctx context.Context) error {
	staleBefore := time.Now().Add(-s.lockStaleness)
	released, err := s.store.ReleaseStaleGenerationLocks(ctx, pgtype.Timestamptz{Time: staleBefore, Valid: true})
	if err != nil {
		return err
	}
	if released > 0 {
		log.Warn().Int64("released", released).Msg("released stale generation locks")
	}

	expired, err := s.store.FlagExpiredRouteCaches(ctx)
	if err != nil {
		return err
	}
	if expired > 0 {
		log.Info().Int64("expired", expired).Msg("flagged expired route caches")
	}
	return nil
}
