package db

// 路线状态
const (
	RouteStatusActive    = "active"
	RouteStatusCompleted = "completed"
	RouteStatusAbandoned = "abandoned"
)

// 站点类型
const (
	StopKindPickup   = "pickup"
	StopKindDelivery = "delivery"
	StopKindBreak    = "break"
)

// 站点状态
const (
	StopStatusPending   = "pending"
	StopStatusArrived   = "arrived"
	StopStatusCompleted = "completed"
	StopStatusSkipped   = "skipped"
)

// 任务状态
const (
	TaskStatusAvailable = "available"
	TaskStatusClaimed   = "claimed"
	TaskStatusDelivered = "delivered"
)
