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
	TaskNotifyEarnings = "earnings:credit"
)

// PayloadNotifyEarnings 收入入账推送任务载荷
type PayloadNotifyEarnings struct {
	CourierID int64 `json:"courier_id"`
	RouteID   int64 `json:"route_id"`
	TaskID    int64 `json:"task_id"`
	Amount    int64 `json:"amount"` // 单位：分
}

// DistributeTaskNotifyEarnings 分发收入入账推送任务
func (d *RedisTaskDistributor) DistributeTaskNotifyEarnings(
	ctx context.Context,
	payload *PayloadNotifyEarnings,
	opts ...asynq.Option,
) error {
	jsonPayload, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal payload: %w", err)
	}

	task := asynq.NewTask(TaskNotifyEarnings, jsonPayload, opts...)
	info, err := d.client.EnqueueContext(ctx, task)
	if err != nil {
		return fmt.Errorf("enqueue task: %w", err)
	}

	log.Info().
		Str("type", task.Type()).
		Str("queue", info.Queue).
		Int64("courier_id", payload.CourierID).
		Int64("amount", payload.Amount).
		Msg("enqueued earnings notification task")

	return nil
}

// ProcessTaskNotifyEarnings 处理收入入账推送任务
func (p *RedisTaskProcessor) ProcessTaskNotifyEarnings(ctx context.Context, task *asynq.Task) error {
	var payload PayloadNotifyEarnings
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		return fmt.Errorf("unmarshal payload: %w", asynq.SkipRetry)
	}

	if p.redisClient == nil {
		return nil
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal push data: %w", err)
	}

	msg := websocket.Message{
		Type:      websocket.MessageTypeEarnings,
		Data:      data,
		Timestamp: time.Now(),
	}
	if err := websocket.PublishCourierPush(ctx, p.redisClient, payload.CourierID, msg); err != nil {
		return fmt.Errorf("publish earnings push: %w", err)
	}

	log.Info().
		Int64("courier_id", payload.CourierID).
		Int64("task_id", payload.TaskID).
		Int64("amount", payload.Amount).
		Msg("pushed earnings notification")

	return nil
}
