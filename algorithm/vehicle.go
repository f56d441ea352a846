package algorithm

// VehicleType 车型
type VehicleType string

const (
	VehicleWalk  VehicleType = "walk"
	VehicleBike  VehicleType = "bike"
	VehicleEbike VehicleType = "ebike"
	VehicleCar   VehicleType = "car"
)

// 规格限额：Forbidden 表示不可携带，Unlimited 表示仅受总容量约束
const (
	Forbidden = 0
	Unlimited = -1
)

// VehicleProfile 车型运力档案
type VehicleProfile struct {
	Type     VehicleType       `json:"type"`
	MaxItems int               `json:"max_items"` // 同时在携任务数上限
	Allowed  map[SizeClass]int `json:"allowed"`   // 每个规格的限额
}

// vehicleProfiles 车型兼容表
// 限额仅约束单规格数量，总量仍受 MaxItems 约束
var vehicleProfiles = map[VehicleType]VehicleProfile{
	VehicleWalk: {
		Type:     VehicleWalk,
		MaxItems: 4,
		Allowed: map[SizeClass]int{
			SizeSmall:      Unlimited,
			SizeMedium:     2,
			SizeLarge:      Forbidden,
			SizeExtraLarge: Forbidden,
		},
	},
	VehicleBike: {
		Type:     VehicleBike,
		MaxItems: 6,
		Allowed: map[SizeClass]int{
			SizeSmall:      Unlimited,
			SizeMedium:     Unlimited,
			SizeLarge:      1,
			SizeExtraLarge: Forbidden,
		},
	},
	VehicleEbike: {
		Type:     VehicleEbike,
		MaxItems: 8,
		Allowed: map[SizeClass]int{
			SizeSmall:      Unlimited,
			SizeMedium:     Unlimited,
			SizeLarge:      2,
			SizeExtraLarge: 1,
		},
	},
	VehicleCar: {
		Type:     VehicleCar,
		MaxItems: 12,
		Allowed: map[SizeClass]int{
			SizeSmall:      Unlimited,
			SizeMedium:     Unlimited,
			SizeLarge:      Unlimited,
			SizeExtraLarge: Unlimited,
		},
	},
}

// ProfileForVehicle 返回车型档案；未知车型按自行车处理
func ProfileForVehicle(vt VehicleType) VehicleProfile {
	if p, ok := vehicleProfiles[vt]; ok {
		return p
	}
	return vehicleProfiles[VehicleBike]
}

// IsKnownVehicle 判断车型是否合法
func IsKnownVehicle(vt VehicleType) bool {
	_, ok := vehicleProfiles[vt]
	return ok
}

// CompatibleSizeClasses 返回车型可携带的规格列表，供任务池查询使用
func (p VehicleProfile) CompatibleSizeClasses() []SizeClass {
	classes := make([]SizeClass, 0, len(p.Allowed))
	for _, s := range []SizeClass{SizeSmall, SizeMedium, SizeLarge, SizeExtraLarge} {
		if p.Allowed[s] != Forbidden {
			classes = append(classes, s)
		}
	}
	return classes
}

// CanAddTask 判断在当前携带情况下是否还能装下一个指定规格的任务
// carried 为当前在携任务按规格统计的数量
func (p VehicleProfile) CanAddTask(carried map[SizeClass]int, class SizeClass) bool {
	total := 0
	for _, n := range carried {
		total += n
	}
	if total >= p.MaxItems {
		return false
	}

	limit, ok := p.Allowed[class]
	if !ok || limit == Forbidden {
		return false
	}
	if limit == Unlimited {
		return true
	}
	return carried[class] < limit
}
