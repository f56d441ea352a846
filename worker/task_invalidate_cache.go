package worker

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/hibiken/asynq"
	"github.com/merrydance/routeplan/websocket"
	"github.com/rs/zerolog/log"
)

const (
	TaskInvalidateRouteCache = "route_cache:invalidate"
)

// PayloadInvalidateRouteCache 路线缓存失效任务载荷
type PayloadInvalidateRouteCache struct {
	// CourierID 为 0 时对所有骑手的缓存打失效标记（任务池发生全局变化）
	CourierID int64 `json:"courier_id"`
	// Reason 失效原因，用于排查
	Reason string `json:"reason"`
}

// DistributeTaskInvalidateRouteCache 分发路线缓存失效任务
func (d *RedisTaskDistributor) DistributeTaskInvalidateRouteCache(
	ctx context.Context,
	payload *PayloadInvalidateRouteCache,
	opts ...asynq.Option,
) error {
	jsonPayload, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal payload: %w", err)
	}

	task := asynq.NewTask(TaskInvalidateRouteCache, jsonPayload, opts...)
	info, err := d.client.EnqueueContext(ctx, task)
	if err != nil {
		return fmt.Errorf("enqueue task: %w", err)
	}

	log.Info().
		Str("type", task.Type()).
		Str("queue", info.Queue).
		Int64("courier_id", payload.CourierID).
		Str("reason", payload.Reason).
		Msg("enqueued route cache invalidation task")

	return nil
}

// ProcessTaskInvalidateRouteCache 处理路线缓存失效任务
func (p *RedisTaskProcessor) ProcessTaskInvalidateRouteCache(ctx context.Context, task *asynq.Task) error {
	var payload PayloadInvalidateRouteCache
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		return fmt.Errorf("unmarshal payload: %w", asynq.SkipRetry)
	}

	if payload.CourierID == 0 {
		affected, err := p.store.InvalidateAllRouteCaches(ctx)
		if err != nil {
			return fmt.Errorf("invalidate all route caches: %w", err)
		}
		log.Info().
			Int64("affected", affected).
			Str("reason", payload.Reason).
			Msg("invalidated all route caches")
	} else {
		if err := p.store.InvalidateRouteCache(ctx, payload.CourierID); err != nil {
			return fmt.Errorf("invalidate route cache: %w", err)
		}
		log.Info().
			Int64("courier_id", payload.CourierID).
			Str("reason", payload.Reason).
			Msg("invalidated route cache")
	}

	// 通知在线骑手预览已过期，建议重新生成
	if p.redisClient != nil {
		data, _ := json.Marshal(map[string]string{"reason": payload.Reason})
		msg := websocket.Message{
			Type:      websocket.MessageTypeCacheStale,
			Data:      data,
			Timestamp: time.Now(),
		}
		if err := websocket.PublishCourierPush(ctx, p.redisClient, payload.CourierID, msg); err != nil {
			// 推送失败不影响失效本身
			log.Warn().Err(err).Msg("publish cache stale push failed")
		}
	}

	return nil
}
