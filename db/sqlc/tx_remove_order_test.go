package db

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestRemoveOrderTxRecalculatesEstimates(t *testing.T) {
	courier, claimed := createClaimedRoute(t, 2)
	removed := claimed.ClaimedTasks[1]

	result, err := testStore.RemoveOrderTx(context.Background(), RemoveOrderTxParams{
		RouteID:         claimed.Route.ID,
		CourierID:       courier.ID,
		TaskID:          removed.ID,
		Now:             time.Now(),
		EstimateMinutes: flatEstimate,
	})
	require.NoError(t, err)
	require.True(t, result.ReleasedTask)
	require.False(t, result.RouteCompleted)
	require.Len(t, result.Stops, 2)

	// 预计收入恰好减去被移除订单的配送费
	require.Equal(t, claimed.Route.EstimatedEarnings-removed.CourierEarning, result.Route.EstimatedEarnings)

	// 用时和里程按剩余站点重走：起点→取货→送达，每段 5 分钟加操作时长
	require.Equal(t, int32(5+3+5+4), result.Route.EstimatedMinutes)
	require.Greater(t, result.Route.EstimatedDistanceMeters, int32(0))
}

func TestRemoveOrderTxSkipsTrailingBreak(t *testing.T) {
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

	// 唯一订单被移除后只剩休息站，路线结束且休息站被跳过
	result, err := testStore.RemoveOrderTx(context.Background(), RemoveOrderTxParams{
		RouteID:         claimed.Route.ID,
		CourierID:       courier.ID,
		TaskID:          task.ID,
		Now:             time.Now(),
		EstimateMinutes: flatEstimate,
	})
	require.NoError(t, err)
	require.True(t, result.RouteCompleted)
	require.Equal(t, RouteStatusCompleted, result.Route.Status)
	require.Len(t, result.Stops, 1)
	require.Equal(t, StopKindBreak, result.Stops[0].Kind)
	require.Equal(t, StopStatusSkipped, result.Stops[0].Status)
}
