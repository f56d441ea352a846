package maps

import (
	"context"

	"github.com/merrydance/routeplan/algorithm"
	"github.com/rs/zerolog/log"
)

// RouteEstimator 基于腾讯地图的行程估算器
// 地图服务不可用或出错时退化为直线估算，路线生成不因地图故障失败
type RouteEstimator struct {
	client   TencentMapClientInterface
	fallback algorithm.HaversineEstimator
}

// NewRouteEstimator 创建地图行程估算器
func NewRouteEstimator(client TencentMapClientInterface) *RouteEstimator {
	return &RouteEstimator{client: client}
}

// EstimateTravel 返回两点间距离（米）与行程时间（分钟）
func (e *RouteEstimator) EstimateTravel(ctx context.Context, from, to algorithm.Location) (int, int) {
	if e.client == nil {
		return e.fallback.EstimateTravel(ctx, from, to)
	}

	result, err := e.client.GetBicyclingRoute(ctx,
		Location{Lat: from.Latitude, Lng: from.Longitude},
		Location{Lat: to.Latitude, Lng: to.Longitude},
	)
	if err != nil {
		log.Warn().Err(err).Msg("地图路线查询失败，退化为直线估算")
		return e.fallback.EstimateTravel(ctx, from, to)
	}

	minutes := (result.Duration + 59) / 60
	return result.Distance, minutes
}
