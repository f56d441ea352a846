package algorithm

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHaversineDistance(t *testing.T) {
	// 测试：北京天安门到王府井（约1.7km）
	tiananmen := Location{Longitude: 116.397128, Latitude: 39.916527}
	wangfujing := Location{Longitude: 116.417199, Latitude: 39.917718}

	distance := HaversineDistance(tiananmen, wangfujing)
	require.InDelta(t, 1700, distance, 200)

	// 同一点距离为 0
	d0 := HaversineDistance(tiananmen, tiananmen)
	require.Equal(t, 0, d0)
}

func TestEstimateTime(t *testing.T) {
	// 1km 约 3分钟
	time1km := EstimateTime(1000)
	require.InDelta(t, 3, time1km, 1)

	// 5km 约 15分钟
	time5km := EstimateTime(5000)
	require.InDelta(t, 15, time5km, 2)

	// 0距离
	time0 := EstimateTime(0)
	require.Equal(t, 0, time0)
}

func TestIsValidCoordinate(t *testing.T) {
	require.True(t, IsValidCoordinate(Location{Longitude: 116.4, Latitude: 39.9}))
	require.False(t, IsValidCoordinate(Location{}))
	require.False(t, IsValidCoordinate(Location{Longitude: 181, Latitude: 39.9}))
	require.False(t, IsValidCoordinate(Location{Longitude: 116.4, Latitude: -91}))
}

func TestNormalizeLocation(t *testing.T) {
	region := OperatingRegion{
		Center:       Location{Longitude: 116.404, Latitude: 39.915},
		RadiusMeters: 20000,
	}

	// 区域内坐标原样返回
	inside := Location{Longitude: 116.41, Latitude: 39.92}
	require.Equal(t, inside, NormalizeLocation(inside, region))

	// (0,0) 被替换为区域中心
	require.Equal(t, region.Center, NormalizeLocation(Location{}, region))

	// 越区坐标被替换为区域中心
	faraway := Location{Longitude: 121.47, Latitude: 31.23} // 上海
	require.Equal(t, region.Center, NormalizeLocation(faraway, region))

	// 未配置半径时不做越区限制
	open := OperatingRegion{Center: region.Center}
	require.Equal(t, faraway, NormalizeLocation(faraway, open))
}

func TestCenterPoint(t *testing.T) {
	locations := []Location{
		{Longitude: 116.0, Latitude: 39.0},
		{Longitude: 117.0, Latitude: 40.0},
	}
	center := CenterPoint(locations)
	require.InDelta(t, 116.5, center.Longitude, 0.01)
	require.InDelta(t, 39.5, center.Latitude, 0.01)

	// 空列表
	empty := CenterPoint([]Location{})
	require.Equal(t, Location{}, empty)

	// 单点
	single := CenterPoint(locations[:1])
	require.Equal(t, locations[0], single)
}

func TestVehicleCapacity(t *testing.T) {
	bike := ProfileForVehicle(VehicleBike)
	require.Equal(t, 6, bike.MaxItems)

	carried := map[SizeClass]int{}
	require.True(t, bike.CanAddTask(carried, SizeSmall))
	require.False(t, bike.CanAddTask(carried, SizeExtraLarge))

	// large 限额 1
	carried[SizeLarge] = 1
	require.False(t, bike.CanAddTask(carried, SizeLarge))

	// 总量限制
	carried = map[SizeClass]int{SizeSmall: 6}
	require.False(t, bike.CanAddTask(carried, SizeSmall))

	// 步行不可携带 large
	walk := ProfileForVehicle(VehicleWalk)
	require.NotContains(t, walk.CompatibleSizeClasses(), SizeLarge)
	require.Contains(t, bike.CompatibleSizeClasses(), SizeLarge)

	// 未知车型按自行车处理
	require.Equal(t, bike.MaxItems, ProfileForVehicle("hoverboard").MaxItems)
}
