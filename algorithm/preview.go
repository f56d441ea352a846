package algorithm

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strings"
	"time"
)

// PreviewStop 预览中的停靠点，时间为加入预留系数后的分钟偏移
type PreviewStop struct {
	Kind                StopKind `json:"kind"`
	TaskID              int64    `json:"task_id,omitempty"`
	Location            Location `json:"location"`
	EstimatedArrivalMin int      `json:"estimated_arrival_min"`
	Earning             int64    `json:"earning,omitempty"`
}

// RoutePreview 单个时长档位的路线预览（不落库，短期有效）
type RoutePreview struct {
	BucketMinutes           int           `json:"bucket_minutes"`
	Stops                   []PreviewStop `json:"stops"`
	OrderCount              int           `json:"order_count"`
	EstimatedMinutes        int           `json:"estimated_minutes"`
	EstimatedDistanceMeters int           `json:"estimated_distance_meters"`
	EstimatedEarnings       int64         `json:"estimated_earnings"`
	IncludesBreak           bool          `json:"includes_break"`
	BreakMinutes            int           `json:"break_minutes,omitempty"`
	Algorithm               string        `json:"algorithm"`
}

// PreviewRequest 预览生成请求
type PreviewRequest struct {
	Start         Location
	Tasks         []CandidateTask
	Vehicle       VehicleProfile
	BucketMinutes []int // 目标时长档位（分钟）
	IncludeBreak  bool
	BreakMinutes  int
	BufferFactor  float64
	Now           time.Time
}

// BuildPreviews 为每个时长档位构建预览
// 档位内无可行路线时跳过该档位；免休息模式下会合并雷同档位
func BuildPreviews(ctx context.Context, planner RoutePlanner, req PreviewRequest) ([]RoutePreview, error) {
	previews := make([]RoutePreview, 0, len(req.BucketMinutes))

	for _, bucket := range req.BucketMinutes {
		breakMin := 0
		if req.IncludeBreak {
			breakMin = req.BreakMinutes
		}

		budget := int(float64(bucket-breakMin) / (1 + req.BufferFactor))
		if budget <= 0 {
			continue
		}

		plan, err := planner.Plan(ctx, PlanInput{
			Start:         req.Start,
			Tasks:         req.Tasks,
			Vehicle:       req.Vehicle,
			BudgetMinutes: budget,
			BufferFactor:  req.BufferFactor,
			Now:           req.Now,
		})
		if err != nil {
			return nil, fmt.Errorf("构建 %d 分钟档位失败: %w", bucket, err)
		}
		if plan == nil || plan.TaskCount == 0 {
			continue
		}

		previews = append(previews, assemblePreview(plan, bucket, req, planner.Name()))
	}

	if !req.IncludeBreak {
		collapseDominatedBuckets(previews)
	}
	return previews, nil
}

// assemblePreview 把原始规划结果转换为预览：放大时间偏移并按需插入休息
func assemblePreview(plan *PlannedRoute, bucket int, req PreviewRequest, algorithm string) RoutePreview {
	scale := 1 + req.BufferFactor

	stops := make([]PreviewStop, 0, len(plan.Stops)+1)
	for _, s := range plan.Stops {
		stops = append(stops, PreviewStop{
			Kind:                s.Kind,
			TaskID:              s.TaskID,
			Location:            s.Location,
			EstimatedArrivalMin: int(math.Round(float64(s.ArrivalOffsetMin) * scale)),
			Earning:             s.Earning,
		})
	}

	estimated := int(math.Ceil(float64(plan.RawMinutes) * scale))

	includesBreak := false
	breakMin := 0
	// 休息插入在中点停靠位，至少 4 个停靠点才有意义
	if req.IncludeBreak && len(stops) >= 4 {
		mid := len(stops) / 2
		breakStop := PreviewStop{
			Kind:                StopBreak,
			Location:            stops[mid-1].Location,
			EstimatedArrivalMin: stops[mid].EstimatedArrivalMin,
		}
		for i := mid; i < len(stops); i++ {
			stops[i].EstimatedArrivalMin += req.BreakMinutes
		}
		stops = append(stops[:mid], append([]PreviewStop{breakStop}, stops[mid:]...)...)
		estimated += req.BreakMinutes
		includesBreak = true
		breakMin = req.BreakMinutes
	}

	return RoutePreview{
		BucketMinutes:           bucket,
		Stops:                   stops,
		OrderCount:              plan.TaskCount,
		EstimatedMinutes:        estimated,
		EstimatedDistanceMeters: plan.DistanceMeters,
		EstimatedEarnings:       plan.TotalEarnings,
		IncludesBreak:           includesBreak,
		BreakMinutes:            breakMin,
		Algorithm:               algorithm,
	}
}

// collapseDominatedBuckets 合并“任务集合相同但用时更长”的档位
// 多个档位装下同一批任务时，统一采用其中最省时的方案，
// 避免给骑手呈现看似不同、实则更差的选项。
// 用时也相同时保留档位较小者的方案（平局规则，见 DESIGN.md）
func collapseDominatedBuckets(previews []RoutePreview) {
	best := make(map[string]int) // 任务集合指纹 -> 最优预览下标

	for i := range previews {
		key := taskSetKey(previews[i])
		j, ok := best[key]
		if !ok {
			best[key] = i
			continue
		}

		if previews[i].EstimatedMinutes < previews[j].EstimatedMinutes ||
			(previews[i].EstimatedMinutes == previews[j].EstimatedMinutes &&
				previews[i].BucketMinutes < previews[j].BucketMinutes) {
			best[key] = i
		}
	}

	for i := range previews {
		j := best[taskSetKey(previews[i])]
		if j == i {
			continue
		}
		winner := previews[j]
		previews[i].Stops = winner.Stops
		previews[i].EstimatedMinutes = winner.EstimatedMinutes
		previews[i].EstimatedDistanceMeters = winner.EstimatedDistanceMeters
		previews[i].EstimatedEarnings = winner.EstimatedEarnings
	}
}

// taskSetKey 任务集合指纹，与停靠顺序无关
func taskSetKey(p RoutePreview) string {
	ids := make([]int64, 0, p.OrderCount)
	for _, s := range p.Stops {
		if s.Kind == StopPickup {
			ids = append(ids, s.TaskID)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	var sb strings.Builder
	for _, id := range ids {
		fmt.Fprintf(&sb, "%d,", id)
	}
	return sb.String()
}
