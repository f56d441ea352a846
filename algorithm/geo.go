package algorithm

import (
	"math"

	"github.com/rs/zerolog/log"
)

const (
	// 地球半径（米）
	earthRadius = 6371000

	// 平均骑行速度（米/秒）- 约 20km/h
	avgRidingSpeed = 5.5
)

// HaversineDistance 计算两点间的球面距离（米）
// 使用 Haversine 公式
func HaversineDistance(loc1, loc2 Location) int {
	lat1 := toRadians(loc1.Latitude)
	lat2 := toRadians(loc2.Latitude)
	deltaLat := toRadians(loc2.Latitude - loc1.Latitude)
	deltaLng := toRadians(loc2.Longitude - loc1.Longitude)

	a := math.Sin(deltaLat/2)*math.Sin(deltaLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(deltaLng/2)*math.Sin(deltaLng/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return int(earthRadius * c)
}

// EstimateTime 估算骑行时间（分钟）
func EstimateTime(distanceMeters int) int {
	if distanceMeters <= 0 {
		return 0
	}
	seconds := float64(distanceMeters) / avgRidingSpeed
	return int(math.Ceil(seconds / 60))
}

// toRadians 角度转弧度
func toRadians(degrees float64) float64 {
	return degrees * math.Pi / 180
}

// OperatingRegion 运营区域，超出区域的坐标会被替换为中心点
type OperatingRegion struct {
	Center       Location
	RadiusMeters int
}

// Contains 判断坐标是否落在运营区域内
func (r OperatingRegion) Contains(loc Location) bool {
	if r.RadiusMeters <= 0 {
		return true
	}
	return HaversineDistance(r.Center, loc) <= r.RadiusMeters
}

// IsValidCoordinate 拒绝 (0,0) 与超出取值范围的坐标
func IsValidCoordinate(loc Location) bool {
	if loc.Longitude == 0 && loc.Latitude == 0 {
		return false
	}
	if loc.Longitude < -180 || loc.Longitude > 180 {
		return false
	}
	if loc.Latitude < -90 || loc.Latitude > 90 {
		return false
	}
	return true
}

// NormalizeLocation 校验坐标；非法或越区时替换为区域中心点并记录日志
// 替换属于降级策略，输入数据不会被静默丢弃
func NormalizeLocation(loc Location, region OperatingRegion) Location {
	if IsValidCoordinate(loc) && region.Contains(loc) {
		return loc
	}

	log.Warn().
		Float64("longitude", loc.Longitude).
		Float64("latitude", loc.Latitude).
		Float64("center_longitude", region.Center.Longitude).
		Float64("center_latitude", region.Center.Latitude).
		Msg("坐标非法或超出运营区域，已替换为区域中心点")

	return region.Center
}

// CenterPoint 计算多个点的中心点
func CenterPoint(locations []Location) Location {
	if len(locations) == 0 {
		return Location{}
	}
	if len(locations) == 1 {
		return locations[0]
	}

	var sumLat, sumLng float64
	for _, loc := range locations {
		sumLat += loc.Latitude
		sumLng += loc.Longitude
	}

	n := float64(len(locations))
	return Location{
		Longitude: sumLng / n,
		Latitude:  sumLat / n,
	}
}
