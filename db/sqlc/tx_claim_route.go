package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
)

// ==================== 骑手接单事务 ====================

var (
	// ErrRouteInProgress 骑手已有进行中的路线
	ErrRouteInProgress = errors.New("已有进行中的路线，请先完成或放弃")
	// ErrTaskUnavailable 路线中的某个任务已被其他骑手抢走
	ErrTaskUnavailable = errors.New("部分订单已被其他骑手接走，请重新生成路线")
)

// ClaimStop describes one stop of the route being claimed
type ClaimStop struct {
	Kind             string
	TaskID           int64 // 0 for break stops
	Longitude        float64
	Latitude         float64
	Address          string
	Earning          int64
	EstimatedArrival time.Time
	HandlingMinutes  int32
}

// ClaimRouteTxParams contains the input parameters for claiming a planned route
type ClaimRouteTxParams struct {
	CourierID               int64
	StartLongitude          float64
	StartLatitude           float64
	TargetMinutes           int32
	EstimatedMinutes        int32
	EstimatedDistanceMeters int32
	EstimatedEarnings       int64
	Stops                   []ClaimStop
}

// ClaimRouteTxResult contains the result of the claim route transaction
type ClaimRouteTxResult struct {
	Route        CourierRoute
	Stops        []RouteStop
	ClaimedTasks []DeliveryTask
}

// ClaimRouteTx claims every task of a planned route atomically:
// 1. Verify the courier has no active route
// 2. Claim each task with a conditional update; any conflict aborts the whole claim
// 3. Create the route and its stops
func (store *SQLStore) ClaimRouteTx(ctx context.Context, arg ClaimRouteTxParams) (ClaimRouteTxResult, error) {
	var result ClaimRouteTxResult

	err := store.execTx(ctx, func(q *Queries) error {
		// 1. 骑手同一时刻只允许一条进行中的路线
		_, err := q.GetActiveRouteByCourier(ctx, arg.CourierID)
		if err == nil {
			return ErrRouteInProgress
		}
		if !errors.Is(err, ErrRecordNotFound) {
			return fmt.Errorf("get active route: %w", err)
		}

		// 2. 逐个认领任务，条件更新失败说明任务已被抢走，整单回滚
		for _, stop := range arg.Stops {
			if stop.Kind != StopKindPickup {
				continue
			}
			task, err := q.ClaimDeliveryTask(ctx, ClaimDeliveryTaskParams{
				ID:        stop.TaskID,
				ClaimedBy: pgtype.Int8{Int64: arg.CourierID, Valid: true},
			})
			if err != nil {
				if errors.Is(err, ErrRecordNotFound) {
					return fmt.Errorf("%w: 任务 %d", ErrTaskUnavailable, stop.TaskID)
				}
				return fmt.Errorf("claim task %d: %w", stop.TaskID, err)
			}
			result.ClaimedTasks = append(result.ClaimedTasks, task)
		}

		// 3. 创建路线
		result.Route, err = q.CreateCourierRoute(ctx, CreateCourierRouteParams{
			CourierID:               arg.CourierID,
			StartLongitude:          arg.StartLongitude,
			StartLatitude:           arg.StartLatitude,
			TargetMinutes:           arg.TargetMinutes,
			EstimatedMinutes:        arg.EstimatedMinutes,
			EstimatedDistanceMeters: arg.EstimatedDistanceMeters,
			EstimatedEarnings:       arg.EstimatedEarnings,
		})
		if err != nil {
			return fmt.Errorf("create route: %w", err)
		}

		// 4. 按计划顺序写入站点
		for i, stop := range arg.Stops {
			taskID := pgtype.Int8{}
			if stop.TaskID > 0 {
				taskID = pgtype.Int8{Int64: stop.TaskID, Valid: true}
			}
			created, err := q.CreateRouteStop(ctx, CreateRouteStopParams{
				RouteID:          result.Route.ID,
				Seq:              int32(i),
				Kind:             stop.Kind,
				TaskID:           taskID,
				Longitude:        stop.Longitude,
				Latitude:         stop.Latitude,
				Address:          stop.Address,
				Earning:          stop.Earning,
				EstimatedArrival: pgtype.Timestamptz{Time: stop.EstimatedArrival, Valid: !stop.EstimatedArrival.IsZero()},
				HandlingMinutes:  stop.HandlingMinutes,
			})
			if err != nil {
				return fmt.Errorf("create stop %d: %w", i, err)
			}
			result.Stops = append(result.Stops, created)
		}

		return nil
	})

	return result, err
}
