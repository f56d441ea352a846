package db

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/require"
)

func staleBefore(d time.Duration) pgtype.Timestamptz {
	return pgtype.Timestamptz{Time: time.Now().Add(-d), Valid: true}
}

func TestRouteCacheGenerationLock(t *testing.T) {
	courier := createRandomCourier(t)
	ctx := context.Background()

	err := testStore.EnsureRouteCacheEntry(ctx, courier.ID)
	require.NoError(t, err)

	entry, err := testStore.GetRouteCacheEntry(ctx, courier.ID)
	require.NoError(t, err)
	require.True(t, entry.NeedsRevalidation)
	require.False(t, entry.IsGenerating)

	// 拿到生成锁，版本号递增
	acquired, err := testStore.AcquireRouteGeneration(ctx, AcquireRouteGenerationParams{
		CourierID:   courier.ID,
		Version:     entry.Version,
		StaleBefore: staleBefore(2 * time.Minute),
	})
	require.NoError(t, err)
	require.True(t, acquired.IsGenerating)
	require.Equal(t, entry.Version+1, acquired.Version)

	// 持锁期间其他节点用旧版本号抢不到锁
	_, err = testStore.AcquireRouteGeneration(ctx, AcquireRouteGenerationParams{
		CourierID:   courier.ID,
		Version:     entry.Version,
		StaleBefore: staleBefore(2 * time.Minute),
	})
	require.ErrorIs(t, err, ErrRecordNotFound)

	// 用当前版本号也抢不到：锁未过期
	_, err = testStore.AcquireRouteGeneration(ctx, AcquireRouteGenerationParams{
		CourierID:   courier.ID,
		Version:     acquired.Version,
		StaleBefore: staleBefore(2 * time.Minute),
	})
	require.ErrorIs(t, err, ErrRecordNotFound)

	// 写入生成结果并释放锁
	completed, err := testStore.CompleteRouteGeneration(ctx, CompleteRouteGenerationParams{
		CourierID:          courier.ID,
		Version:            acquired.Version,
		VehicleType:        "ebike",
		IncludeBreak:       true,
		StartLongitude:     116.404,
		StartLatitude:      39.915,
		Algorithm:          "greedy-cluster",
		Previews:           []byte(`[]`),
		AvailableTaskCount: 7,
		ExpiresAt:          pgtype.Timestamptz{Time: time.Now().Add(3 * time.Minute), Valid: true},
	})
	require.NoError(t, err)
	require.False(t, completed.IsGenerating)
	require.False(t, completed.NeedsRevalidation)
	require.True(t, completed.GeneratedAt.Valid)
}

func TestRouteCacheStaleLockTakeover(t *testing.T) {
	courier := createRandomCourier(t)
	ctx := context.Background()

	require.NoError(t, testStore.EnsureRouteCacheEntry(ctx, courier.ID))
	entry, err := testStore.GetRouteCacheEntry(ctx, courier.ID)
	require.NoError(t, err)

	acquired, err := testStore.AcquireRouteGeneration(ctx, AcquireRouteGenerationParams{
		CourierID:   courier.ID,
		Version:     entry.Version,
		StaleBefore: staleBefore(2 * time.Minute),
	})
	require.NoError(t, err)

	// 把锁的开始时间当作未来的过期判定点，模拟持锁节点宕机后的接管
	takeover, err := testStore.AcquireRouteGeneration(ctx, AcquireRouteGenerationParams{
		CourierID:   courier.ID,
		Version:     acquired.Version,
		StaleBefore: pgtype.Timestamptz{Time: time.Now().Add(time.Minute), Valid: true},
	})
	require.NoError(t, err)
	require.Equal(t, acquired.Version+1, takeover.Version)

	// 原持锁者用旧版本号写结果必然失败
	_, err = testStore.CompleteRouteGeneration(ctx, CompleteRouteGenerationParams{
		CourierID: courier.ID,
		Version:   acquired.Version,
		Previews:  []byte(`[]`),
	})
	require.ErrorIs(t, err, ErrRecordNotFound)
}

func TestInvalidateRouteCacheBumpsVersion(t *testing.T) {
	courier := createRandomCourier(t)
	ctx := context.Background()

	require.NoError(t, testStore.EnsureRouteCacheEntry(ctx, courier.ID))
	entry, err := testStore.GetRouteCacheEntry(ctx, courier.ID)
	require.NoError(t, err)

	require.NoError(t, testStore.InvalidateRouteCache(ctx, courier.ID))

	after, err := testStore.GetRouteCacheEntry(ctx, courier.ID)
	require.NoError(t, err)
	require.True(t, after.NeedsRevalidation)
	require.Equal(t, entry.Version+1, after.Version)
}
