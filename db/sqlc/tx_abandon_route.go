package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgtype"
)

// ==================== 放弃路线事务 ====================

// AbandonRouteTxParams contains the input parameters for abandoning a route
type AbandonRouteTxParams struct {
	RouteID   int64
	CourierID int64
	Reason    string
}

// AbandonRouteTxResult contains the result of the abandon route transaction
type AbandonRouteTxResult struct {
	Route           CourierRoute
	ReleasedTaskIDs []int64
}

// AbandonRouteTx terminates an active route. Every undelivered task goes
// back to the pool, unfinished stops are marked skipped and the already
// accrued earnings stay untouched.
func (store *SQLStore) AbandonRouteTx(ctx context.Context, arg AbandonRouteTxParams) (AbandonRouteTxResult, error) {
	var result AbandonRouteTxResult

	err := store.execTx(ctx, func(q *Queries) error {
		route, err := lockActiveRoute(ctx, q, arg.RouteID, arg.CourierID)
		if err != nil {
			return err
		}

		stops, err := q.ListRouteStops(ctx, route.ID)
		if err != nil {
			return fmt.Errorf("list stops: %w", err)
		}

		released := map[int64]bool{}
		for _, s := range stops {
			if s.Status == StopStatusPending || s.Status == StopStatusArrived {
				if _, err := q.SkipRouteStop(ctx, s.ID); err != nil {
					return fmt.Errorf("skip stop %d: %w", s.ID, err)
				}
			}
			if !s.TaskID.Valid || released[s.TaskID.Int64] {
				continue
			}
			// 送达站点已完成的任务保持已送达，不回收
			if s.Kind == StopKindDelivery && s.Status == StopStatusCompleted {
				continue
			}
			if s.Kind != StopKindDelivery {
				continue
			}
			if _, err := q.ReleaseDeliveryTask(ctx, s.TaskID.Int64); err != nil {
				if errors.Is(err, ErrRecordNotFound) {
					continue
				}
				return fmt.Errorf("release task %d: %w", s.TaskID.Int64, err)
			}
			released[s.TaskID.Int64] = true
			result.ReleasedTaskIDs = append(result.ReleasedTaskIDs, s.TaskID.Int64)
		}

		reason := pgtype.Text{String: arg.Reason, Valid: arg.Reason != ""}
		result.Route, err = q.AbandonCourierRoute(ctx, AbandonCourierRouteParams{
			ID:            route.ID,
			AbandonReason: reason,
		})
		if err != nil {
			return fmt.Errorf("abandon route: %w", err)
		}
		return nil
	})

	return result, err
}
