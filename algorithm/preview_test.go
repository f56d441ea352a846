package algorithm

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func testPreviewRequest(tasks []CandidateTask, buckets []int) PreviewRequest {
	return PreviewRequest{
		Start:         testOrigin,
		Tasks:         tasks,
		Vehicle:       ProfileForVehicle(VehicleBike),
		BucketMinutes: buckets,
		BufferFactor:  0.1,
		Now:           time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC),
	}
}

func TestBuildPreviewsWithinTargetDuration(t *testing.T) {
	var tasks []CandidateTask
	for i := int64(1); i <= 8; i++ {
		pickup := offsetLoc(testOrigin, 0.01*float64(i%3), 0.008*float64(i%4))
		delivery := offsetLoc(testOrigin, -0.015*float64(i%4), 0.01*float64(i%2))
		tasks = append(tasks, testTask(i, pickup, delivery, 200*i))
	}

	req := testPreviewRequest(tasks, []int{60, 120, 240, 480})
	previews, err := BuildPreviews(context.Background(), newTestGreedy(), req)
	require.NoError(t, err)
	require.NotEmpty(t, previews)

	for _, p := range previews {
		require.LessOrEqual(t, p.EstimatedMinutes, p.BucketMinutes,
			"%d 分钟档位的预估时长超过目标", p.BucketMinutes)
		require.Positive(t, p.OrderCount)
		require.Positive(t, p.EstimatedEarnings)
	}
}

func TestBuildPreviewsInsertsBreakAtMidpoint(t *testing.T) {
	store := offsetLoc(testOrigin, 0.01, 0)
	tasks := []CandidateTask{
		testTask(1, store, offsetLoc(testOrigin, 0.02, 0), 500),
		testTask(2, store, offsetLoc(testOrigin, 0.03, 0), 400),
	}

	req := testPreviewRequest(tasks, []int{240})
	req.IncludeBreak = true
	req.BreakMinutes = 30

	previews, err := BuildPreviews(context.Background(), newTestGreedy(), req)
	require.NoError(t, err)
	require.Len(t, previews, 1)

	preview := previews[0]
	require.True(t, preview.IncludesBreak)
	require.LessOrEqual(t, preview.EstimatedMinutes, 240)

	// 恰好一个休息停靠点，位于中点
	breakCount := 0
	breakIdx := -1
	for i, s := range preview.Stops {
		if s.Kind == StopBreak {
			breakCount++
			breakIdx = i
		}
	}
	require.Equal(t, 1, breakCount)
	require.Equal(t, (len(preview.Stops)-1)/2, breakIdx)

	// 休息之后的每个停靠点到达时间都整体后移休息时长
	for i := breakIdx + 1; i < len(preview.Stops); i++ {
		require.GreaterOrEqual(t,
			preview.Stops[i].EstimatedArrivalMin,
			preview.Stops[breakIdx].EstimatedArrivalMin+30)
	}
}

func TestBuildPreviewsNoBreakUnderFourStops(t *testing.T) {
	store := offsetLoc(testOrigin, 0.01, 0)
	tasks := []CandidateTask{
		testTask(1, store, offsetLoc(testOrigin, 0.02, 0), 500),
	}

	req := testPreviewRequest(tasks, []int{120})
	req.IncludeBreak = true
	req.BreakMinutes = 30

	previews, err := BuildPreviews(context.Background(), newTestGreedy(), req)
	require.NoError(t, err)
	require.Len(t, previews, 1)
	require.False(t, previews[0].IncludesBreak)
	for _, s := range previews[0].Stops {
		require.NotEqual(t, StopBreak, s.Kind)
	}
}

func TestCollapseDominatedBuckets(t *testing.T) {
	// 两个档位装下同一批任务，较慢的档位应采用较快档位的方案
	fast := RoutePreview{
		BucketMinutes:           120,
		OrderCount:              2,
		EstimatedMinutes:        80,
		EstimatedDistanceMeters: 5000,
		EstimatedEarnings:       900,
		Stops: []PreviewStop{
			{Kind: StopPickup, TaskID: 1},
			{Kind: StopPickup, TaskID: 2},
			{Kind: StopDelivery, TaskID: 1},
			{Kind: StopDelivery, TaskID: 2},
		},
	}
	slow := RoutePreview{
		BucketMinutes:           240,
		OrderCount:              2,
		EstimatedMinutes:        95,
		EstimatedDistanceMeters: 6200,
		EstimatedEarnings:       900,
		Stops: []PreviewStop{
			{Kind: StopPickup, TaskID: 2},
			{Kind: StopPickup, TaskID: 1},
			{Kind: StopDelivery, TaskID: 2},
			{Kind: StopDelivery, TaskID: 1},
		},
	}
	other := RoutePreview{
		BucketMinutes:     60,
		OrderCount:        1,
		EstimatedMinutes:  40,
		EstimatedEarnings: 400,
		Stops: []PreviewStop{
			{Kind: StopPickup, TaskID: 3},
			{Kind: StopDelivery, TaskID: 3},
		},
	}

	previews := []RoutePreview{other, fast, slow}
	collapseDominatedBuckets(previews)

	// slow 被 fast 的方案替换，但档位标签保留
	require.Equal(t, 240, previews[2].BucketMinutes)
	require.Equal(t, 80, previews[2].EstimatedMinutes)
	require.Equal(t, 5000, previews[2].EstimatedDistanceMeters)
	require.Equal(t, fast.Stops, previews[2].Stops)

	// 不同任务集合不受影响
	require.Equal(t, 40, previews[0].EstimatedMinutes)
}
