package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
)

// ==================== 路线进度事务 ====================

var (
	// ErrNotRouteOwner 操作者不是路线所属骑手
	ErrNotRouteOwner = errors.New("无权操作该路线")
	// ErrRouteNotActive 路线已结束
	ErrRouteNotActive = errors.New("路线已结束")
	// ErrStopNotInRoute 站点不属于该路线
	ErrStopNotInRoute = errors.New("站点不属于该路线")
	// ErrInvalidStopAction 当前站点状态不允许该操作
	ErrInvalidStopAction = errors.New("当前站点状态不允许该操作")
)

// 进度上报动作
const (
	StopActionArrived   = "arrived"
	StopActionCompleted = "completed"
	StopActionSkipped   = "skipped"
)

// TravelEstimateFunc estimates riding minutes between two coordinates.
// Injected by the caller so the db layer stays free of map dependencies.
type TravelEstimateFunc func(fromLng, fromLat, toLng, toLat float64) int

// RouteProgressTxParams contains the input parameters for a progress update
type RouteProgressTxParams struct {
	RouteID         int64
	CourierID       int64
	StopID          int64
	Action          string
	Now             time.Time
	EstimateMinutes TravelEstimateFunc
}

// RouteProgressTxResult contains the result of the progress transaction
type RouteProgressTxResult struct {
	Route          CourierRoute
	Stop           RouteStop
	Stops          []RouteStop
	EarningsDelta  int64
	RouteCompleted bool
	// NoChange 表示重复上报，事务未做任何修改
	NoChange bool
}

// RouteProgressTx applies a courier's progress report to one stop:
// arrived marks the stop and recalculates the remaining ETAs, completed
// closes the stop (delivering the task and accruing earnings for delivery
// stops), skipped drops the stop and releases its task. Repeated reports
// of the same state are accepted without changes.
func (store *SQLStore) RouteProgressTx(ctx context.Context, arg RouteProgressTxParams) (RouteProgressTxResult, error) {
	var result RouteProgressTxResult

	err := store.execTx(ctx, func(q *Queries) error {
		route, err := lockActiveRoute(ctx, q, arg.RouteID, arg.CourierID)
		if err != nil {
			return err
		}
		result.Route = route

		stop, err := q.GetRouteStop(ctx, arg.StopID)
		if err != nil {
			return fmt.Errorf("get stop: %w", err)
		}
		if stop.RouteID != route.ID {
			return ErrStopNotInRoute
		}
		result.Stop = stop

		switch arg.Action {
		case StopActionArrived:
			return store.applyArrived(ctx, q, arg, &result)
		case StopActionCompleted:
			return store.applyCompleted(ctx, q, arg, &result)
		case StopActionSkipped:
			return store.applySkipped(ctx, q, arg, &result)
		default:
			return fmt.Errorf("%w: %s", ErrInvalidStopAction, arg.Action)
		}
	})

	return result, err
}

func (store *SQLStore) applyArrived(ctx context.Context, q *Queries, arg RouteProgressTxParams, result *RouteProgressTxResult) error {
	stop := result.Stop

	// 重复上报到达按无变化处理
	if stop.Status == StopStatusArrived || stop.Status == StopStatusCompleted {
		result.NoChange = true
		return store.loadStops(ctx, q, result)
	}
	if stop.Status != StopStatusPending {
		return fmt.Errorf("%w: %s", ErrInvalidStopAction, stop.Status)
	}

	updated, err := q.MarkRouteStopArrived(ctx, MarkRouteStopArrivedParams{
		ID:            stop.ID,
		ActualArrival: pgtype.Timestamptz{Time: arg.Now, Valid: true},
	})
	if err != nil {
		return fmt.Errorf("mark arrived: %w", err)
	}
	result.Stop = updated

	// 以实际到达时间为基准重算后续站点的预计到达
	if err := store.loadStops(ctx, q, result); err != nil {
		return err
	}
	from := arg.Now.Add(time.Duration(updated.HandlingMinutes) * time.Minute)
	return recalcPendingArrivals(ctx, q, result.Stops, updated.Longitude, updated.Latitude, from, arg.EstimateMinutes)
}

func (store *SQLStore) applyCompleted(ctx context.Context, q *Queries, arg RouteProgressTxParams, result *RouteProgressTxResult) error {
	stop := result.Stop

	if stop.Status == StopStatusCompleted {
		result.NoChange = true
		return store.loadStops(ctx, q, result)
	}
	if stop.Status != StopStatusArrived {
		return fmt.Errorf("%w: 需要先上报到达", ErrInvalidStopAction)
	}

	handling := stop.HandlingMinutes
	if stop.ActualArrival.Valid {
		if actual := int32(arg.Now.Sub(stop.ActualArrival.Time).Minutes()); actual > 0 {
			handling = actual
		}
	}
	updated, err := q.CompleteRouteStop(ctx, CompleteRouteStopParams{
		ID:              stop.ID,
		CompletedAt:     pgtype.Timestamptz{Time: arg.Now, Valid: true},
		HandlingMinutes: handling,
	})
	if err != nil {
		return fmt.Errorf("complete stop: %w", err)
	}
	result.Stop = updated

	// 送达站点结算：任务置为已送达，路线累计实收
	if updated.Kind == StopKindDelivery && updated.TaskID.Valid {
		if _, err := q.MarkDeliveryTaskDelivered(ctx, updated.TaskID.Int64); err != nil {
			return fmt.Errorf("mark delivered: %w", err)
		}
		result.Route, err = q.AddRouteEarnings(ctx, AddRouteEarningsParams{
			ID:     result.Route.ID,
			Amount: updated.Earning,
		})
		if err != nil {
			return fmt.Errorf("add earnings: %w", err)
		}
		result.EarningsDelta = updated.Earning
	}

	if err := store.loadStops(ctx, q, result); err != nil {
		return err
	}
	return store.advanceRoute(ctx, q, result)
}

func (store *SQLStore) applySkipped(ctx context.Context, q *Queries, arg RouteProgressTxParams, result *RouteProgressTxResult) error {
	stop := result.Stop

	if stop.Status == StopStatusSkipped {
		result.NoChange = true
		return store.loadStops(ctx, q, result)
	}
	if stop.Status == StopStatusCompleted {
		return fmt.Errorf("%w: 站点已完成", ErrInvalidStopAction)
	}

	updated, err := q.SkipRouteStop(ctx, stop.ID)
	if err != nil {
		return fmt.Errorf("skip stop: %w", err)
	}
	result.Stop = updated

	// 跳过带任务的站点要把任务放回池子，取货被跳过时对应的送达站点一并跳过
	if updated.TaskID.Valid {
		if _, err := q.ReleaseDeliveryTask(ctx, updated.TaskID.Int64); err != nil && !errors.Is(err, ErrRecordNotFound) {
			return fmt.Errorf("release task: %w", err)
		}
		if updated.Kind == StopKindPickup {
			stops, err := q.ListRouteStops(ctx, result.Route.ID)
			if err != nil {
				return fmt.Errorf("list stops: %w", err)
			}
			for _, s := range stops {
				if s.Kind == StopKindDelivery && s.TaskID.Valid && s.TaskID.Int64 == updated.TaskID.Int64 && s.Status == StopStatusPending {
					if _, err := q.SkipRouteStop(ctx, s.ID); err != nil {
						return fmt.Errorf("skip paired delivery: %w", err)
					}
				}
			}
		}
	}

	if err := store.loadStops(ctx, q, result); err != nil {
		return err
	}
	return store.advanceRoute(ctx, q, result)
}

// advanceRoute moves the route cursor past terminal stops and closes the
// route when no open delivery work remains.
func (store *SQLStore) advanceRoute(ctx context.Context, q *Queries, result *RouteProgressTxResult) error {
	var completedStops int32
	nextSeq := int32(-1)
	openWork := false
	for _, s := range result.Stops {
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
		// 剩下的只有休息站时一并跳过，结束的路线每个站点都要有终态
		for i, s := range result.Stops {
			if s.Kind == StopKindBreak && (s.Status == StopStatusPending || s.Status == StopStatusArrived) {
				skipped, err := q.SkipRouteStop(ctx, s.ID)
				if err != nil {
					return fmt.Errorf("skip trailing break: %w", err)
				}
				result.Stops[i] = skipped
			}
		}
		route, err := q.CompleteCourierRoute(ctx, result.Route.ID)
		if err != nil {
			return fmt.Errorf("complete route: %w", err)
		}
		result.Route = route
		result.RouteCompleted = true
		return nil
	}

	route, err := q.UpdateRouteCursor(ctx, UpdateRouteCursorParams{
		ID:               result.Route.ID,
		CurrentStopIndex: nextSeq,
		CompletedStops:   completedStops,
	})
	if err != nil {
		return fmt.Errorf("update cursor: %w", err)
	}
	result.Route = route
	return nil
}

func (store *SQLStore) loadStops(ctx context.Context, q *Queries, result *RouteProgressTxResult) error {
	stops, err := q.ListRouteStops(ctx, result.Route.ID)
	if err != nil {
		return fmt.Errorf("list stops: %w", err)
	}
	result.Stops = stops
	return nil
}

// lockActiveRoute locks the route row and verifies ownership and status.
func lockActiveRoute(ctx context.Context, q *Queries, routeID, courierID int64) (CourierRoute, error) {
	route, err := q.GetCourierRouteForUpdate(ctx, routeID)
	if err != nil {
		return CourierRoute{}, fmt.Errorf("get route for update: %w", err)
	}
	if route.CourierID != courierID {
		return CourierRoute{}, ErrNotRouteOwner
	}
	if route.Status != RouteStatusActive {
		return CourierRoute{}, ErrRouteNotActive
	}
	return route, nil
}

// currentPosition returns the courier's presumed position on the route:
// the most recently completed stop, or the route start before any progress.
func currentPosition(route CourierRoute, stops []RouteStop) (lng, lat float64) {
	lng, lat = route.StartLongitude, route.StartLatitude
	var latest time.Time
	for _, s := range stops {
		if s.Status != StopStatusCompleted || !s.CompletedAt.Valid {
			continue
		}
		if s.CompletedAt.Time.After(latest) {
			latest = s.CompletedAt.Time
			lng, lat = s.Longitude, s.Latitude
		}
	}
	return lng, lat
}

// recalcPendingArrivals rewrites estimated_arrival for every pending stop,
// walking the remaining path from the given position and time. Completed and
// skipped stops are never touched.
func recalcPendingArrivals(ctx context.Context, q *Queries, stops []RouteStop, fromLng, fromLat float64, fromTime time.Time, estimate TravelEstimateFunc) error {
	if estimate == nil {
		return nil
	}
	cursorLng, cursorLat := fromLng, fromLat
	cursorTime := fromTime
	for i, s := range stops {
		if s.Status != StopStatusPending {
			continue
		}
		travel := estimate(cursorLng, cursorLat, s.Longitude, s.Latitude)
		arrival := cursorTime.Add(time.Duration(travel) * time.Minute)
		updated, err := q.UpdateRouteStopEstimatedArrival(ctx, UpdateRouteStopEstimatedArrivalParams{
			ID:               s.ID,
			EstimatedArrival: pgtype.Timestamptz{Time: arrival, Valid: true},
		})
		if err != nil {
			return fmt.Errorf("update eta for stop %d: %w", s.ID, err)
		}
		stops[i] = updated
		cursorLng, cursorLat = s.Longitude, s.Latitude
		cursorTime = arrival.Add(time.Duration(s.HandlingMinutes) * time.Minute)
	}
	return nil
}
