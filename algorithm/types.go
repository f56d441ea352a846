// Package algorithm 提供接送路线构建、路径优化等算法
// 该包独立于业务逻辑，便于测试和升级
package algorithm

import (
	"context"
	"time"
)

// Location 地理位置
type Location struct {
	Longitude float64 `json:"longitude"`
	Latitude  float64 `json:"latitude"`
}

// SizeClass 货物规格（序数：small < medium < large < extra_large）
type SizeClass string

const (
	SizeSmall      SizeClass = "small"
	SizeMedium     SizeClass = "medium"
	SizeLarge      SizeClass = "large"
	SizeExtraLarge SizeClass = "extra_large"
)

// sizeOrdinal 规格序数，用于比较车型兼容性
var sizeOrdinal = map[SizeClass]int{
	SizeSmall:      0,
	SizeMedium:     1,
	SizeLarge:      2,
	SizeExtraLarge: 3,
}

// Ordinal 返回规格序数，未知规格返回 -1
func (s SizeClass) Ordinal() int {
	if v, ok := sizeOrdinal[s]; ok {
		return v
	}
	return -1
}

// CandidateTask 候选配送任务（取货+送货一体）
type CandidateTask struct {
	ID               int64     `json:"id"`
	PickupLocation   Location  `json:"pickup_location"`
	DeliveryLocation Location  `json:"delivery_location"`
	SizeClass        SizeClass `json:"size_class"`
	OrderValue       int64     `json:"order_value"` // 订单金额（分）
	Earning          int64     `json:"earning"`     // 骑手可得收益（分）
	Deadline         time.Time `json:"deadline"`    // 最晚送达时间
	CreatedAt        time.Time `json:"created_at"`
}

// StopKind 停靠点类型
type StopKind string

const (
	StopPickup   StopKind = "pickup"
	StopDelivery StopKind = "delivery"
	StopBreak    StopKind = "break"
)

// PlannedStop 规划出的停靠点，ArrivalOffsetMin 为未加预留系数的累计分钟数
type PlannedStop struct {
	Kind             StopKind `json:"kind"`
	TaskID           int64    `json:"task_id,omitempty"` // break 停靠点为 0
	Location         Location `json:"location"`
	ArrivalOffsetMin int      `json:"arrival_offset_min"`
	Earning          int64    `json:"earning,omitempty"` // 仅送货停靠点携带
}

// PlannedRoute 单个时长档位的规划结果（未做预览格式化）
type PlannedRoute struct {
	Stops          []PlannedStop `json:"stops"`
	TaskCount      int           `json:"task_count"`
	RawMinutes     int           `json:"raw_minutes"` // 未加预留系数的累计用时
	DistanceMeters int           `json:"distance_meters"`
	TotalEarnings  int64         `json:"total_earnings"`
}

// PlanInput 路线规划输入
type PlanInput struct {
	Start         Location        `json:"start"`
	Tasks         []CandidateTask `json:"tasks"`
	Vehicle       VehicleProfile  `json:"vehicle"`
	BudgetMinutes int             `json:"budget_minutes"` // 已扣除休息并除以(1+buffer)后的预算
	BufferFactor  float64         `json:"buffer_factor"`  // 用于把模拟时刻换算为真实时刻做时限校验
	Now           time.Time       `json:"now"`
}

// PlannerConfig 规划器配置
type PlannerConfig struct {
	ClusterRadiusMeters int `json:"cluster_radius_meters"` // 同一“商家”聚类半径
	PickupHandlingMin   int `json:"pickup_handling_min"`   // 单任务取货操作时间（分钟）
	DeliveryHandlingMin int `json:"delivery_handling_min"` // 单任务交付操作时间（分钟）
	MaxOptimalTasks     int `json:"max_optimal_tasks"`     // 精确求解的最大候选数
	MaxSearchNodes      int `json:"max_search_nodes"`      // 精确求解的节点上限
}

// DefaultPlannerConfig 默认规划器配置
func DefaultPlannerConfig() PlannerConfig {
	return PlannerConfig{
		ClusterRadiusMeters: 75,
		PickupHandlingMin:   3,
		DeliveryHandlingMin: 4,
		MaxOptimalTasks:     8,
		MaxSearchNodes:      2_000_000,
	}
}

// RoutePlanner 路线规划算法接口
// 贪心与精确求解实现可互换，输出格式一致
type RoutePlanner interface {
	// Plan 在给定时间预算内构建一条路线；无可行路线时返回 nil
	Plan(ctx context.Context, input PlanInput) (*PlannedRoute, error)

	// Name 返回算法名称
	Name() string
}

// TravelEstimator 两点间行程估算接口
// 外部路由服务实现可覆盖默认的直线估算
type TravelEstimator interface {
	// EstimateTravel 返回两点间距离（米）与行程时间（分钟）
	EstimateTravel(ctx context.Context, from, to Location) (meters int, minutes int)
}

// HaversineEstimator 基于球面距离与平均骑行速度的默认估算器
type HaversineEstimator struct{}

// EstimateTravel 直线距离 + 平均速度估算
func (HaversineEstimator) EstimateTravel(_ context.Context, from, to Location) (int, int) {
	meters := HaversineDistance(from, to)
	return meters, EstimateTime(meters)
}
