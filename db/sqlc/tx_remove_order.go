package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/merrydance/routeplan/algorithm"
)

// ==================== 订单移出路线事务 ====================

// ErrTaskNotInRoute 任务不在该路线中
var ErrTaskNotInRoute = errors.New("该订单不在当前路线中")

// RemoveOrderTxParams contains the input parameters for removing an order
type RemoveOrderTxParams struct {
	RouteID         int64
	CourierID       int64
	TaskID          int64
	Now             time.Time
	EstimateMinutes TravelEstimateFunc
}

// RemoveOrderTxResult contains the result of the remove order transaction
type RemoveOrderTxResult struct {
	Route          CourierRoute
	Stops          []RouteStop
	ReleasedTask   bool
	RouteCompleted bool
}

// RemoveOrderTx removes an order from an active route, e.g. after a merchant
// cancellation. Both stops of the task are deleted regardless of status, the
// claim is released when the task was not yet delivered, the sequence is
// renumbered and the route force-completes when no delivery work remains.
func (store *SQLStore) RemoveOrderTx(ctx context.Context, arg RemoveOrderTxParams) (RemoveOrderTxResult, error) {
	var result RemoveOrderTxResult

	err := store.execTx(ctx, func(q *Queries) error {
		route, err := lockActiveRoute(ctx, q, arg.RouteID, arg.CourierID)
		if err != nil {
			return err
		}
		result.Route = route

		stops, err := q.ListRouteStops(ctx, route.ID)
		if err != nil {
			return fmt.Errorf("list stops: %w", err)
		}

		var removed []RouteStop
		var kept []RouteStop
		for _, s := range stops {
			if s.TaskID.Valid && s.TaskID.Int64 == arg.TaskID {
				removed = append(removed, s)
			} else {
				kept = append(kept, s)
			}
		}
		if len(removed) == 0 {
			return ErrTaskNotInRoute
		}

		for _, s := range removed {
			if err := q.DeleteRouteStop(ctx, s.ID); err != nil {
				return fmt.Errorf("delete stop %d: %w", s.ID, err)
			}
		}

		// 未送达的任务放回池子
		task, err := q.GetDeliveryTaskForUpdate(ctx, arg.TaskID)
		if err != nil {
			return fmt.Errorf("get task: %w", err)
		}
		if task.Status == TaskStatusClaimed {
			if _, err := q.ReleaseDeliveryTask(ctx, arg.TaskID); err != nil {
				return fmt.Errorf("release task: %w", err)
			}
			result.ReleasedTask = true
		}

		// 剩余站点重新编号
		for i, s := range kept {
			if s.Seq != int32(i) {
				if _, err := q.UpdateRouteStopSeq(ctx, UpdateRouteStopSeqParams{ID: s.ID, Seq: int32(i)}); err != nil {
					return fmt.Errorf("update seq for stop %d: %w", s.ID, err)
				}
				kept[i].Seq = int32(i)
			}
		}

		// 预估值按剩余站点重算，移掉的订单不再计入
		if _, err := q.UpdateRouteEstimates(ctx, recalcRouteEstimates(route, kept, arg.EstimateMinutes)); err != nil {
			return fmt.Errorf("update estimates: %w", err)
		}

		var completedStops int32
		nextSeq := int32(-1)
		openWork := false
		for _, s := range kept {
			if s.Status == StopStatusCompleted {
				completedStops++
			}
			if s.Status == StopStatusPending || s.Status == StopStatusArrived {
				if nextSeq < 0 {
					nextSeq = s.Seq
				}
				if s.Kind != StopKindBreak {
					openWork = true
				}
			}
		}

		if !openWork {
			// 剩下的只有休息站时一并跳过，结束的路线不留未了站点
			for i, s := range kept {
				if s.Kind == StopKindBreak && (s.Status == StopStatusPending || s.Status == StopStatusArrived) {
					skipped, err := q.SkipRouteStop(ctx, s.ID)
					if err != nil {
						return fmt.Errorf("skip trailing break: %w", err)
					}
					kept[i] = skipped
				}
			}
			result.Route, err = q.CompleteCourierRoute(ctx, route.ID)
			if err != nil {
				return fmt.Errorf("complete route: %w", err)
			}
			result.RouteCompleted = true
			result.Stops = kept
			return nil
		}

		result.Route, err = q.UpdateRouteCursor(ctx, UpdateRouteCursorParams{
			ID:               route.ID,
			CurrentStopIndex: nextSeq,
			CompletedStops:   completedStops,
		})
		if err != nil {
			return fmt.Errorf("update cursor: %w", err)
		}

		curLng, curLat := currentPosition(route, kept)
		if err := recalcPendingArrivals(ctx, q, kept, curLng, curLat, arg.Now, arg.EstimateMinutes); err != nil {
			return err
		}
		result.Stops = kept
		return nil
	})

	return result, err
}

// recalcRouteEstimates 沿剩余站点从路线起点重走一遍：
// 预计收入取所有未跳过的送达站，用时和里程按站点顺序累加。
// 没有行程估算函数时保留原预计用时。
func recalcRouteEstimates(route CourierRoute, stops []RouteStop, estimate TravelEstimateFunc) UpdateRouteEstimatesParams {
	params := UpdateRouteEstimatesParams{
		ID:               route.ID,
		EstimatedMinutes: route.EstimatedMinutes,
	}

	var minutes int32
	var meters int32
	curLng, curLat := route.StartLongitude, route.StartLatitude
	for _, s := range stops {
		if s.Status == StopStatusSkipped {
			continue
		}
		if s.Kind == StopKindDelivery {
			params.EstimatedEarnings += s.Earning
		}
		if estimate != nil {
			minutes += int32(estimate(curLng, curLat, s.Longitude, s.Latitude))
		}
		minutes += s.HandlingMinutes
		meters += int32(algorithm.HaversineDistance(
			algorithm.Location{Longitude: curLng, Latitude: curLat},
			algorithm.Location{Longitude: s.Longitude, Latitude: s.Latitude},
		))
		curLng, curLat = s.Longitude, s.Latitude
	}

	params.EstimatedDistanceMeters = meters
	if estimate != nil {
		params.EstimatedMinutes = minutes
	}
	return params
}
