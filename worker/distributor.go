package worker

import (
	"context"

	"github.com/hibiken/asynq"
)

// TaskDistributor 任务分发接口
type TaskDistributor interface {
	// DistributeTaskInvalidateRouteCache 分发路线缓存失效任务
	DistributeTaskInvalidateRouteCache(
		ctx context.Context,
		payload *PayloadInvalidateRouteCache,
		opts ...asynq.Option,
	) error

	// DistributeTaskNotifyEarnings 分发收入入账推送任务
	DistributeTaskNotifyEarnings(
		ctx context.Context,
		payload *PayloadNotifyEarnings,
		opts ...asynq.Option,
	) error

	Close() error
}

type RedisTaskDistributor struct {
	client *asynq.Client
}

func NewRedisTaskDistributor(redisOpt asynq.RedisClientOpt) TaskDistributor {
	client := asynq.NewClient(redisOpt)
	return &RedisTaskDistributor{
		client: client,
	}
}

func (d *RedisTaskDistributor) Close() error {
	return d.client.Close()
}
