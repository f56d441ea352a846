package routegen

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/merrydance/routeplan/algorithm"
	mockdb "github.com/merrydance/routeplan/db/mock"
	db "github.com/merrydance/routeplan/db/sqlc"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testCourierID = int64(42)

func testConfig() Config {
	cfg := DefaultConfig()
	cfg.PollInterval = 5 * time.Millisecond
	cfg.PollTimeout = 100 * time.Millisecond
	return cfg
}

func testRequest() GenerateRequest {
	return GenerateRequest{
		CourierID:   testCourierID,
		VehicleType: "ebike",
		Start:       algorithm.Location{Longitude: 116.404, Latitude: 39.915},
	}
}

func freshCacheEntry(t *testing.T, req GenerateRequest) db.RouteCacheEntry {
	previews := []algorithm.RoutePreview{
		{BucketMinutes: 60, OrderCount: 2, EstimatedMinutes: 55, EstimatedEarnings: 1200, Algorithm: "greedy-cluster"},
	}
	payload, err := json.Marshal(previews)
	require.NoError(t, err)

	return db.RouteCacheEntry{
		CourierID:          req.CourierID,
		VehicleType:        req.VehicleType,
		IncludeBreak:       req.IncludeBreak,
		Algorithm:          "greedy-cluster",
		StartLongitude:     req.Start.Longitude,
		StartLatitude:      req.Start.Latitude,
		Previews:           payload,
		AvailableTaskCount: 7,
		GeneratedAt:        pgtype.Timestamptz{Time: time.Now(), Valid: true},
		ExpiresAt:          pgtype.Timestamptz{Time: time.Now().Add(2 * time.Minute), Valid: true},
		Version:            3,
	}
}

func staleCacheEntry(req GenerateRequest) db.RouteCacheEntry {
	return db.RouteCacheEntry{
		CourierID:         req.CourierID,
		NeedsRevalidation: true,
		Version:           3,
	}
}

func availableTask(id int64) db.DeliveryTask {
	return db.DeliveryTask{
		ID:                id,
		PickupLongitude:   116.404,
		PickupLatitude:    39.915,
		DeliveryLongitude: 116.412,
		DeliveryLatitude:  39.921,
		SizeClass:         "small",
		CourierEarning:    500,
		Deadline:          time.Now().Add(2 * time.Hour),
		CreatedAt:         time.Now(),
		Status:            db.TaskStatusAvailable,
	}
}

func TestDefaultConfigWithinOperatingRanges(t *testing.T) {
	cfg := DefaultConfig()

	// 缓冲系数过大等于虚报时长，档位会装不满
	require.GreaterOrEqual(t, cfg.BufferFactor, 0.08)
	require.LessOrEqual(t, cfg.BufferFactor, 0.15)
	// 等待他人生成和锁过期都是分钟量级
	require.GreaterOrEqual(t, cfg.PollTimeout, time.Minute)
	require.GreaterOrEqual(t, cfg.LockStaleness, time.Minute)
}

func TestGenerateReturnsFreshCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mockdb.NewMockStore(ctrl)
	req := testRequest()
	entry := freshCacheEntry(t, req)

	store.EXPECT().EnsureRouteCacheEntry(gomock.Any(), testCourierID).Return(nil)
	store.EXPECT().GetRouteCacheEntry(gomock.Any(), testCourierID).Return(entry, nil)

	service := NewService(store, nil, testConfig())
	result, err := service.Generate(context.Background(), req)
	require.NoError(t, err)
	require.True(t, result.FromCache)
	require.Len(t, result.Previews, 1)
	require.Equal(t, 7, result.AvailableTaskCount)
}

func TestGenerateAcquiresLockAndStoresResult(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mockdb.NewMockStore(ctrl)
	req := testRequest()
	entry := staleCacheEntry(req)

	store.EXPECT().EnsureRouteCacheEntry(gomock.Any(), testCourierID).Return(nil)
	store.EXPECT().GetRouteCacheEntry(gomock.Any(), testCourierID).Return(entry, nil)
	store.EXPECT().
		AcquireRouteGeneration(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, arg db.AcquireRouteGenerationParams) (db.RouteCacheEntry, error) {
			require.Equal(t, entry.Version, arg.Version)
			acquired := entry
			acquired.IsGenerating = true
			acquired.Version = entry.Version + 1
			return acquired, nil
		})
	store.EXPECT().
		ListAvailableDeliveryTasks(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, arg db.ListAvailableDeliveryTasksParams) ([]db.DeliveryTask, error) {
			// 电动车四种规格都装得下
			require.Equal(t, []string{"small", "medium", "large", "extra_large"}, arg.SizeClasses)
			return []db.DeliveryTask{availableTask(1), availableTask(2)}, nil
		})
	store.EXPECT().
		CompleteRouteGeneration(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, arg db.CompleteRouteGenerationParams) (db.RouteCacheEntry, error) {
			require.Equal(t, entry.Version+1, arg.Version)
			require.Equal(t, req.VehicleType, arg.VehicleType)
			require.NotEmpty(t, arg.Previews)
			completed := entry
			completed.GeneratedAt = pgtype.Timestamptz{Time: time.Now(), Valid: true}
			return completed, nil
		})

	service := NewService(store, nil, testConfig())
	result, err := service.Generate(context.Background(), req)
	require.NoError(t, err)
	require.False(t, result.FromCache)
	require.Equal(t, 2, result.AvailableTaskCount)
	require.NotEmpty(t, result.Previews)
	require.True(t, result.ExpiresAt.After(time.Now()))
}

func TestGenerateFiltersCandidatesByVehicle(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mockdb.NewMockStore(ctrl)
	req := testRequest()
	req.VehicleType = "walk"
	entry := staleCacheEntry(req)

	store.EXPECT().EnsureRouteCacheEntry(gomock.Any(), testCourierID).Return(nil)
	store.EXPECT().GetRouteCacheEntry(gomock.Any(), testCourierID).Return(entry, nil)
	acquired := entry
	acquired.IsGenerating = true
	acquired.Version = entry.Version + 1
	store.EXPECT().AcquireRouteGeneration(gomock.Any(), gomock.Any()).Return(acquired, nil)
	store.EXPECT().
		ListAvailableDeliveryTasks(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, arg db.ListAvailableDeliveryTasksParams) ([]db.DeliveryTask, error) {
			// 步行骑手大件禁携，查询就不该把大件捞出来
			require.Equal(t, []string{"small", "medium"}, arg.SizeClasses)
			return []db.DeliveryTask{availableTask(1)}, nil
		})
	store.EXPECT().
		CompleteRouteGeneration(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, arg db.CompleteRouteGenerationParams) (db.RouteCacheEntry, error) {
			completed := entry
			completed.GeneratedAt = pgtype.Timestamptz{Time: time.Now(), Valid: true}
			return completed, nil
		})

	service := NewService(store, nil, testConfig())
	_, err := service.Generate(context.Background(), req)
	require.NoError(t, err)
}

func TestOptimalRequestNeverFallsBackToGreedy(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mockdb.NewMockStore(ctrl)
	req := testRequest()
	req.Algorithm = "optimal"
	entry := staleCacheEntry(req)

	cfg := testConfig()
	// 节点预算小到搜索必然中断，每个档位都应无路线而不是换贪心顶包
	cfg.Planner.MaxSearchNodes = 1

	store.EXPECT().EnsureRouteCacheEntry(gomock.Any(), testCourierID).Return(nil)
	store.EXPECT().GetRouteCacheEntry(gomock.Any(), testCourierID).Return(entry, nil)
	acquired := entry
	acquired.IsGenerating = true
	acquired.Version = entry.Version + 1
	store.EXPECT().AcquireRouteGeneration(gomock.Any(), gomock.Any()).Return(acquired, nil)
	store.EXPECT().
		ListAvailableDeliveryTasks(gomock.Any(), gomock.Any()).
		Return([]db.DeliveryTask{availableTask(1), availableTask(2)}, nil)
	store.EXPECT().
		CompleteRouteGeneration(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, arg db.CompleteRouteGenerationParams) (db.RouteCacheEntry, error) {
			require.Equal(t, "branch-and-bound", arg.Algorithm)
			var previews []algorithm.RoutePreview
			require.NoError(t, json.Unmarshal(arg.Previews, &previews))
			require.Empty(t, previews)
			completed := entry
			completed.GeneratedAt = pgtype.Timestamptz{Time: time.Now(), Valid: true}
			return completed, nil
		})

	service := NewService(store, nil, cfg)
	result, err := service.Generate(context.Background(), req)
	require.NoError(t, err)
	require.Empty(t, result.Previews)
}

func TestCacheMatchRequiresSameAlgorithm(t *testing.T) {
	service := NewService(nil, nil, testConfig())
	req := testRequest()
	entry := freshCacheEntry(t, req)

	require.True(t, service.cacheMatches(entry, req))

	optimalReq := req
	optimalReq.Algorithm = "optimal"
	require.False(t, service.cacheMatches(entry, optimalReq))

	entry.Algorithm = "branch-and-bound"
	require.True(t, service.cacheMatches(entry, optimalReq))
	require.False(t, service.cacheMatches(entry, req))
}

func TestGenerateWaitsForConcurrentGeneration(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mockdb.NewMockStore(ctrl)
	req := testRequest()
	stale := staleCacheEntry(req)
	stale.IsGenerating = true
	stale.GenerationStartedAt = pgtype.Timestamptz{Time: time.Now(), Valid: true}
	fresh := freshCacheEntry(t, req)

	store.EXPECT().EnsureRouteCacheEntry(gomock.Any(), testCourierID).Return(nil)
	// 第一轮：他人持锁，抢锁失败；第二轮：结果已就绪，直接复用
	gomock.InOrder(
		store.EXPECT().GetRouteCacheEntry(gomock.Any(), testCourierID).Return(stale, nil),
		store.EXPECT().AcquireRouteGeneration(gomock.Any(), gomock.Any()).Return(db.RouteCacheEntry{}, db.ErrRecordNotFound),
		store.EXPECT().GetRouteCacheEntry(gomock.Any(), testCourierID).Return(fresh, nil),
	)

	service := NewService(store, nil, testConfig())
	result, err := service.Generate(context.Background(), req)
	require.NoError(t, err)
	require.True(t, result.FromCache)
}

func TestGenerateTimesOutWaitingForLock(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mockdb.NewMockStore(ctrl)
	req := testRequest()
	stale := staleCacheEntry(req)
	stale.IsGenerating = true
	stale.GenerationStartedAt = pgtype.Timestamptz{Time: time.Now(), Valid: true}

	store.EXPECT().EnsureRouteCacheEntry(gomock.Any(), testCourierID).Return(nil)
	store.EXPECT().GetRouteCacheEntry(gomock.Any(), testCourierID).Return(stale, nil).AnyTimes()
	store.EXPECT().
		AcquireRouteGeneration(gomock.Any(), gomock.Any()).
		Return(db.RouteCacheEntry{}, db.ErrRecordNotFound).
		AnyTimes()

	service := NewService(store, nil, testConfig())
	_, err := service.Generate(context.Background(), req)
	require.ErrorIs(t, err, ErrGenerationTimeout)
}

func TestGenerateReleasesLockOnFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mockdb.NewMockStore(ctrl)
	req := testRequest()
	entry := staleCacheEntry(req)

	store.EXPECT().EnsureRouteCacheEntry(gomock.Any(), testCourierID).Return(nil)
	store.EXPECT().GetRouteCacheEntry(gomock.Any(), testCourierID).Return(entry, nil)
	acquired := entry
	acquired.IsGenerating = true
	acquired.Version = entry.Version + 1
	store.EXPECT().AcquireRouteGeneration(gomock.Any(), gomock.Any()).Return(acquired, nil)
	store.EXPECT().
		ListAvailableDeliveryTasks(gomock.Any(), gomock.Any()).
		Return(nil, context.DeadlineExceeded)
	// 失败时必须释放锁
	store.EXPECT().
		ReleaseRouteGeneration(gomock.Any(), db.ReleaseRouteGenerationParams{
			CourierID: testCourierID,
			Version:   acquired.Version,
		}).
		Return(nil)

	service := NewService(store, nil, testConfig())
	_, err := service.Generate(context.Background(), req)
	require.Error(t, err)
}
