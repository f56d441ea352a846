package db

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// ==================== 带不下了：延后取货事务 ====================

// ErrNothingCarried 骑手当前没有已取未送的订单，延后取货没有意义
var ErrNothingCarried = errors.New("当前没有已取的订单，无法延后取货")

// PostponePickupTxParams contains the input parameters for postponing a pickup
type PostponePickupTxParams struct {
	RouteID         int64
	CourierID       int64
	StopID          int64
	Now             time.Time
	EstimateMinutes TravelEstimateFunc
}

// PostponePickupTxResult contains the result of the postpone transaction
type PostponePickupTxResult struct {
	Route CourierRoute
	Stops []RouteStop
}

// PostponePickupTx handles a courier reporting that the bag is full at a
// pickup stop. The pickup and its paired delivery are reinserted right after
// the next pending delivery of an already-carried order, so one drop-off
// frees space before the courier returns for the pickup. The sequence is
// renumbered and the remaining ETAs recalculated. Requires at least one
// picked-up order awaiting delivery, otherwise postponing cannot free space.
func (store *SQLStore) PostponePickupTx(ctx context.Context, arg PostponePickupTxParams) (PostponePickupTxResult, error) {
	var result PostponePickupTxResult

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

		var target *RouteStop
		for i := range stops {
			if stops[i].ID == arg.StopID {
				target = &stops[i]
				break
			}
		}
		if target == nil {
			return ErrStopNotInRoute
		}
		if target.Kind != StopKindPickup || (target.Status != StopStatusPending && target.Status != StopStatusArrived) {
			return fmt.Errorf("%w: 仅能延后未完成的取货站点", ErrInvalidStopAction)
		}

		// 必须有已取未送的订单，否则先送货腾不出空间
		picked := map[int64]bool{}
		for _, s := range stops {
			if s.Kind == StopKindPickup && s.Status == StopStatusCompleted && s.TaskID.Valid {
				picked[s.TaskID.Int64] = true
			}
		}
		carrying := false
		for _, s := range stops {
			if s.Kind == StopKindDelivery && s.Status == StopStatusPending && s.TaskID.Valid && picked[s.TaskID.Int64] {
				carrying = true
				break
			}
		}
		if !carrying {
			return ErrNothingCarried
		}

		// 取货及其配对送达从原位取出，其余站点保持相对顺序
		var kept, moved []RouteStop
		for _, s := range stops {
			if s.ID == target.ID {
				moved = append(moved, s)
				continue
			}
			if s.Kind == StopKindDelivery && s.TaskID.Valid && target.TaskID.Valid &&
				s.TaskID.Int64 == target.TaskID.Int64 && s.Status == StopStatusPending {
				moved = append(moved, s)
				continue
			}
			kept = append(kept, s)
		}

		// 插回到第一个在携订单的送达站之后：送掉一单腾出空间再折返取货
		insertAfter := len(kept) - 1
		for i, s := range kept {
			if s.Kind == StopKindDelivery && s.Status == StopStatusPending && s.TaskID.Valid && picked[s.TaskID.Int64] {
				insertAfter = i
				break
			}
		}
		reordered := make([]RouteStop, 0, len(stops))
		reordered = append(reordered, kept[:insertAfter+1]...)
		reordered = append(reordered, moved...)
		reordered = append(reordered, kept[insertAfter+1:]...)

		for i, s := range reordered {
			if s.Seq == int32(i) {
				continue
			}
			if _, err := q.UpdateRouteStopSeq(ctx, UpdateRouteStopSeqParams{ID: s.ID, Seq: int32(i)}); err != nil {
				return fmt.Errorf("update seq for stop %d: %w", s.ID, err)
			}
			reordered[i].Seq = int32(i)
		}

		// 被延后的到达状态回退为待处理
		if target.Status == StopStatusArrived {
			// 到达记录作废，重新排队
			if _, err := q.db.Exec(ctx, resetStopToPending, target.ID); err != nil {
				return fmt.Errorf("reset stop: %w", err)
			}
		}

		stops, err = q.ListRouteStops(ctx, route.ID)
		if err != nil {
			return fmt.Errorf("reload stops: %w", err)
		}

		nextSeq := int32(0)
		for _, s := range stops {
			if s.Status == StopStatusPending || s.Status == StopStatusArrived {
				nextSeq = s.Seq
				break
			}
		}
		result.Route, err = q.UpdateRouteCursor(ctx, UpdateRouteCursorParams{
			ID:               route.ID,
			CurrentStopIndex: nextSeq,
			CompletedStops:   route.CompletedStops,
		})
		if err != nil {
			return fmt.Errorf("update cursor: %w", err)
		}

		curLng, curLat := currentPosition(route, stops)
		if err := recalcPendingArrivals(ctx, q, stops, curLng, curLat, arg.Now, arg.EstimateMinutes); err != nil {
			return err
		}
		result.Stops = stops
		return nil
	})

	return result, err
}

const resetStopToPending = `UPDATE route_stops
SET status = 'pending',
    actual_arrival = NULL
WHERE id = $1`
