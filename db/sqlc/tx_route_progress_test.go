package db

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// 测试用直线估算：固定 5 分钟
func flatEstimate(fromLng, fromLat, toLng, toLat float64) int {
	return 5
}

func TestRouteProgressTxArrivedRecalculatesETAs(t *testing.T) {
	courier, claimed := createClaimedRoute(t, 2)
	now := time.Now()

	result, err := testStore.RouteProgressTx(context.Background(), RouteProgressTxParams{
		RouteID:         claimed.Route.ID,
		CourierID:       courier.ID,
		StopID:          claimed.Stops[0].ID,
		Action:          StopActionArrived,
		Now:             now,
		EstimateMinutes: flatEstimate,
	})
	require.NoError(t, err)
	require.False(t, result.NoChange)
	require.Equal(t, StopStatusArrived, result.Stop.Status)
	require.True(t, result.Stop.ActualArrival.Valid)

	// 后续待处理站点的预计到达全部基于实际到达时间重算
	for _, s := range result.Stops {
		if s.Status != StopStatusPending {
			continue
		}
		require.True(t, s.EstimatedArrival.Valid)
		require.True(t, s.EstimatedArrival.Time.After(now))
	}

	// 重复上报到达为幂等操作
	again, err := testStore.RouteProgressTx(context.Background(), RouteProgressTxParams{
		RouteID:         claimed.Route.ID,
		CourierID:       courier.ID,
		StopID:          claimed.Stops[0].ID,
		Action:          StopActionArrived,
		Now:             now.Add(time.Minute),
		EstimateMinutes: flatEstimate,
	})
	require.NoError(t, err)
	require.True(t, again.NoChange)
}

func TestRouteProgressTxCompleteDeliveryAccruesEarnings(t *testing.T) {
	courier, claimed := createClaimedRoute(t, 1)
	now := time.Now()

	// 依次完成取货和送达两个站点
	for _, stop := range claimed.Stops {
		arrived, err := testStore.RouteProgressTx(context.Background(), RouteProgressTxParams{
			RouteID:         claimed.Route.ID,
			CourierID:       courier.ID,
			StopID:          stop.ID,
			Action:          StopActionArrived,
			Now:             now,
			EstimateMinutes: flatEstimate,
		})
		require.NoError(t, err)
		require.Equal(t, StopStatusArrived, arrived.Stop.Status)

		now = now.Add(3 * time.Minute)
		completed, err := testStore.RouteProgressTx(context.Background(), RouteProgressTxParams{
			RouteID:         claimed.Route.ID,
			CourierID:       courier.ID,
			StopID:          stop.ID,
			Action:          StopActionCompleted,
			Now:             now,
			EstimateMinutes: flatEstimate,
		})
		require.NoError(t, err)
		require.Equal(t, StopStatusCompleted, completed.Stop.Status)

		if stop.Kind == StopKindDelivery {
			require.Equal(t, stop.Earning, completed.EarningsDelta)
			require.Equal(t, stop.Earning, completed.Route.ActualEarnings)
			// 最后一单送达后路线自动完成
			require.True(t, completed.RouteCompleted)
			require.Equal(t, RouteStatusCompleted, completed.Route.Status)

			task, err := testStore.GetDeliveryTask(context.Background(), stop.TaskID.Int64)
			require.NoError(t, err)
			require.Equal(t, TaskStatusDelivered, task.Status)
		}
	}
}

func TestRouteProgressTxCompleteRequiresArrival(t *testing.T) {
	courier, claimed := createClaimedRoute(t, 1)

	_, err := testStore.RouteProgressTx(context.Background(), RouteProgressTxParams{
		RouteID:   claimed.Route.ID,
		CourierID: courier.ID,
		StopID:    claimed.Stops[0].ID,
		Action:    StopActionCompleted,
		Now:       time.Now(),
	})
	require.ErrorIs(t, err, ErrInvalidStopAction)
}

func TestRouteProgressTxRejectsForeignCourier(t *testing.T) {
	_, claimed := createClaimedRoute(t, 1)
	stranger := createRandomCourier(t)

	_, err := testStore.RouteProgressTx(context.Background(), RouteProgressTxParams{
		RouteID:   claimed.Route.ID,
		CourierID: stranger.ID,
		StopID:    claimed.Stops[0].ID,
		Action:    StopActionArrived,
		Now:       time.Now(),
	})
	require.ErrorIs(t, err, ErrNotRouteOwner)
}

func TestRouteProgressTxCompletionSkipsTrailingBreak(t *testing.T) {
	courier := createRandomCourier(t)
	task := createRandomDeliveryTask(t)

	arg := claimParamsForTasks(courier, []DeliveryTask{task})
	arg.Stops = append(arg.Stops, ClaimStop{
		Kind:             StopKindBreak,
		Longitude:        116.405,
		Latitude:         39.916,
		Address:          "原地休息",
		EstimatedArrival: time.Now().Add(30 * time.Minute),
		HandlingMinutes:  30,
	})
	claimed, err := testStore.ClaimRouteTx(context.Background(), arg)
	require.NoError(t, err)

	now := time.Now()
	var last RouteProgressTxResult
	for _, stop := range claimed.Stops[:2] {
		for _, action := range []string{StopActionArrived, StopActionCompleted} {
			last, err = testStore.RouteProgressTx(context.Background(), RouteProgressTxParams{
				RouteID:         claimed.Route.ID,
				CourierID:       courier.ID,
				StopID:          stop.ID,
				Action:          action,
				Now:             now,
				EstimateMinutes: flatEstimate,
			})
			require.NoError(t, err)
			now = now.Add(2 * time.Minute)
		}
	}

	// 送完最后一单路线结束，挂在末尾的休息站被跳过而不是留在待处理
	require.True(t, last.RouteCompleted)
	require.Equal(t, RouteStatusCompleted, last.Route.Status)
	for _, s := range last.Stops {
		if s.Kind == StopKindBreak {
			require.Equal(t, StopStatusSkipped, s.Status)
		} else {
			require.Equal(t, StopStatusCompleted, s.Status)
		}
	}
}

func TestRemoveOrderTxForceCompletesRoute(t *testing.T) {
	courier, claimed := createClaimedRoute(t, 1)
	taskID := claimed.ClaimedTasks[0].ID

	result, err := testStore.RemoveOrderTx(context.Background(), RemoveOrderTxParams{
		RouteID:         claimed.Route.ID,
		CourierID:       courier.ID,
		TaskID:          taskID,
		Now:             time.Now(),
		EstimateMinutes: flatEstimate,
	})
	require.NoError(t, err)
	require.True(t, result.ReleasedTask)
	require.True(t, result.RouteCompleted)
	require.Equal(t, RouteStatusCompleted, result.Route.Status)
	require.Empty(t, result.Stops)

	// 任务放回池子
	task, err := testStore.GetDeliveryTask(context.Background(), taskID)
	require.NoError(t, err)
	require.Equal(t, TaskStatusAvailable, task.Status)
}

func TestAbandonRouteTxReleasesUndeliveredTasks(t *testing.T) {
	courier, claimed := createClaimedRoute(t, 2)

	result, err := testStore.AbandonRouteTx(context.Background(), AbandonRouteTxParams{
		RouteID:   claimed.Route.ID,
		CourierID: courier.ID,
		Reason:    "车辆故障",
	})
	require.NoError(t, err)
	require.Equal(t, RouteStatusAbandoned, result.Route.Status)
	require.True(t, result.Route.AbandonReason.Valid)
	require.Len(t, result.ReleasedTaskIDs, 2)

	for _, taskID := range result.ReleasedTaskIDs {
		task, err := testStore.GetDeliveryTask(context.Background(), taskID)
		require.NoError(t, err)
		require.Equal(t, TaskStatusAvailable, task.Status)
		require.False(t, task.ClaimedBy.Valid)
	}

	stops, err := testStore.ListRouteStops(context.Background(), claimed.Route.ID)
	require.NoError(t, err)
	for _, s := range stops {
		require.Equal(t, StopStatusSkipped, s.Status)
	}
}
