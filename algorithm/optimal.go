package algorithm

import (
	"context"
	"errors"
	"math"
	"sort"
	"time"
)

// ErrSearchBudgetExceeded 搜索超出节点预算，结果不可信时整体放弃
var ErrSearchBudgetExceeded = errors.New("搜索节点数超过上限")

// OptimalPlanner 分支限界精确规划器
// 在容量、时限与时间预算约束下枚举取送交错序列，最大化收益
// 与贪心规划器输出同一格式，可按配置互换
type OptimalPlanner struct {
	estimator TravelEstimator
	config    PlannerConfig
}

// NewOptimalPlanner 创建精确规划器
func NewOptimalPlanner(estimator TravelEstimator, config PlannerConfig) *OptimalPlanner {
	if estimator == nil {
		estimator = HaversineEstimator{}
	}
	return &OptimalPlanner{estimator: estimator, config: config}
}

func (p *OptimalPlanner) Name() string {
	return "branch-and-bound"
}

// searchState 深度优先搜索的可变状态
type searchState struct {
	pos           Location
	last          int // 当前所在站点编号：0 为起点，取货为 1+2i，送达为 2+2i
	minutes       int
	meters        int
	picked        uint32
	delivered     uint32
	carriedBySize map[SizeClass]int
	carriedCount  int
	earnings      int64
	stops         []PlannedStop
}

type searchContext struct {
	ctx      context.Context
	input    PlanInput
	tasks    []CandidateTask
	nodes    int
	maxNodes int

	// seen 记录每个 (已取, 已送, 所在站点) 状态的最短已用时间。
	// 收益由已送集合唯一决定，用时不更短的重复状态整支剪掉。
	seen map[uint64]int

	bestEarnings int64
	bestMinutes  int
	bestMeters   int
	bestStops    []PlannedStop
	bestCount    int
}

// Plan 求解收益最大的路线；搜索中断或无可行解时返回 nil
// 要么跑完整个搜索，要么不给结果，绝不返回可能错误的部分解
func (p *OptimalPlanner) Plan(ctx context.Context, input PlanInput) (*PlannedRoute, error) {
	if len(input.Tasks) == 0 || input.BudgetMinutes <= 0 {
		return nil, nil
	}

	tasks := p.preselect(ctx, input)
	if len(tasks) == 0 {
		return nil, nil
	}

	maxNodes := p.config.MaxSearchNodes
	if maxNodes <= 0 {
		maxNodes = 2_000_000
	}

	sc := &searchContext{
		ctx:      ctx,
		input:    input,
		tasks:    tasks,
		maxNodes: maxNodes,
		seen:     make(map[uint64]int),
	}
	state := &searchState{
		pos:           input.Start,
		carriedBySize: make(map[SizeClass]int),
	}

	if err := p.search(sc, state); err != nil {
		if errors.Is(err, ErrSearchBudgetExceeded) {
			return nil, nil
		}
		return nil, err
	}

	if sc.bestCount == 0 {
		return nil, nil
	}

	return &PlannedRoute{
		Stops:          sc.bestStops,
		TaskCount:      sc.bestCount,
		RawMinutes:     sc.bestMinutes,
		DistanceMeters: sc.bestMeters,
		TotalEarnings:  sc.bestEarnings,
	}, nil
}

// preselect 裁剪候选集：剔除车型不可携带与时限明显不可达的任务，
// 再按单位耗时收益截取前 MaxOptimalTasks 个，保证搜索规模可控
func (p *OptimalPlanner) preselect(ctx context.Context, input PlanInput) []CandidateTask {
	maxTasks := p.config.MaxOptimalTasks
	if maxTasks <= 0 {
		maxTasks = 8
	}
	if maxTasks > 8 {
		// 状态数约为 3^n * (2n+1)，n=8 时连同展开在默认节点预算内必然跑完
		maxTasks = 8
	}

	type scored struct {
		task  CandidateTask
		ratio float64
	}
	var candidates []scored
	for _, t := range input.Tasks {
		if limit, ok := input.Vehicle.Allowed[t.SizeClass]; !ok || limit == Forbidden {
			continue
		}
		_, toPickup := p.estimator.EstimateTravel(ctx, input.Start, t.PickupLocation)
		_, toDrop := p.estimator.EstimateTravel(ctx, t.PickupLocation, t.DeliveryLocation)
		serviceMin := toPickup + p.config.PickupHandlingMin + toDrop + p.config.DeliveryHandlingMin
		if serviceMin > input.BudgetMinutes {
			continue
		}
		denom := float64(serviceMin)
		if denom < 1 {
			denom = 1
		}
		candidates = append(candidates, scored{task: t, ratio: float64(t.Earning) / denom})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].ratio != candidates[j].ratio {
			return candidates[i].ratio > candidates[j].ratio
		}
		return candidates[i].task.ID < candidates[j].task.ID
	})
	if len(candidates) > maxTasks {
		candidates = candidates[:maxTasks]
	}

	tasks := make([]CandidateTask, len(candidates))
	for i, c := range candidates {
		tasks[i] = c.task
	}
	// 搜索展开按任务ID排序，保证结果可复现
	sort.Slice(tasks, func(i, j int) bool { return tasks[i].ID < tasks[j].ID })
	return tasks
}

// search 深度优先展开；所有已取任务均送达的状态才是合法解
func (p *OptimalPlanner) search(sc *searchContext, state *searchState) error {
	sc.nodes++
	if sc.nodes > sc.maxNodes {
		return ErrSearchBudgetExceeded
	}
	if sc.nodes%4096 == 0 {
		if err := sc.ctx.Err(); err != nil {
			return err
		}
	}

	// 状态剪枝：同一 (已取, 已送, 所在站点) 状态用时不更短则不再展开
	key := uint64(state.picked) | uint64(state.delivered)<<20 | uint64(state.last)<<40
	if best, ok := sc.seen[key]; ok && best <= state.minutes {
		return nil
	}
	sc.seen[key] = state.minutes

	// 上界剪枝：当前收益加上所有未送达任务的收益仍不超过已知最优则回头
	remaining := int64(0)
	for i, t := range sc.tasks {
		if state.delivered&(1<<uint(i)) == 0 {
			remaining += t.Earning
		}
	}
	if state.earnings+remaining < sc.bestEarnings {
		return nil
	}

	// 合法解：背包为空
	if state.picked == state.delivered && state.earnings > 0 {
		if state.earnings > sc.bestEarnings ||
			(state.earnings == sc.bestEarnings && state.minutes < sc.bestMinutes) {
			sc.bestEarnings = state.earnings
			sc.bestMinutes = state.minutes
			sc.bestMeters = state.meters
			sc.bestStops = append([]PlannedStop(nil), state.stops...)
			sc.bestCount = popcount(state.delivered)
		}
	}

	// 先尝试送货（按任务ID升序），再尝试取货
	for i := range sc.tasks {
		bit := uint32(1) << uint(i)
		if state.picked&bit == 0 || state.delivered&bit != 0 {
			continue
		}
		if err := p.tryDeliver(sc, state, i); err != nil {
			return err
		}
	}

	for i := range sc.tasks {
		bit := uint32(1) << uint(i)
		if state.picked&bit != 0 {
			continue
		}
		if err := p.tryPickup(sc, state, i); err != nil {
			return err
		}
	}

	return nil
}

func (p *OptimalPlanner) tryDeliver(sc *searchContext, state *searchState, i int) error {
	task := sc.tasks[i]
	meters, travelMin := p.estimator.EstimateTravel(sc.ctx, state.pos, task.DeliveryLocation)

	arrival := state.minutes + travelMin
	if arrival > sc.input.BudgetMinutes {
		return nil
	}
	if !p.meetsDeadline(task, arrival, sc.input) {
		return nil
	}

	saved := *state
	savedStops := state.stops
	savedCarried := state.carriedBySize[task.SizeClass]

	state.pos = task.DeliveryLocation
	state.last = 2 + 2*i
	state.minutes = arrival + p.config.DeliveryHandlingMin
	state.meters += meters
	state.delivered |= 1 << uint(i)
	state.carriedBySize[task.SizeClass] = savedCarried - 1
	state.carriedCount--
	state.earnings += task.Earning
	state.stops = append(savedStops, PlannedStop{
		Kind:             StopDelivery,
		TaskID:           task.ID,
		Location:         task.DeliveryLocation,
		ArrivalOffsetMin: arrival,
		Earning:          task.Earning,
	})

	err := p.search(sc, state)

	state.pos = saved.pos
	state.last = saved.last
	state.minutes = saved.minutes
	state.meters = saved.meters
	state.delivered = saved.delivered
	state.carriedBySize[task.SizeClass] = savedCarried
	state.carriedCount = saved.carriedCount
	state.earnings = saved.earnings
	state.stops = savedStops
	return err
}

func (p *OptimalPlanner) tryPickup(sc *searchContext, state *searchState, i int) error {
	task := sc.tasks[i]
	if !sc.input.Vehicle.CanAddTask(state.carriedBySize, task.SizeClass) {
		return nil
	}

	meters, travelMin := p.estimator.EstimateTravel(sc.ctx, state.pos, task.PickupLocation)
	arrival := state.minutes + travelMin
	if arrival+p.config.PickupHandlingMin > sc.input.BudgetMinutes {
		return nil
	}

	saved := *state
	savedStops := state.stops
	savedCarried := state.carriedBySize[task.SizeClass]

	state.pos = task.PickupLocation
	state.last = 1 + 2*i
	state.minutes = arrival + p.config.PickupHandlingMin
	state.meters += meters
	state.picked |= 1 << uint(i)
	state.carriedBySize[task.SizeClass] = savedCarried + 1
	state.carriedCount++
	state.stops = append(savedStops, PlannedStop{
		Kind:             StopPickup,
		TaskID:           task.ID,
		Location:         task.PickupLocation,
		ArrivalOffsetMin: arrival,
	})

	err := p.search(sc, state)

	state.pos = saved.pos
	state.last = saved.last
	state.minutes = saved.minutes
	state.meters = saved.meters
	state.picked = saved.picked
	state.carriedBySize[task.SizeClass] = savedCarried
	state.carriedCount = saved.carriedCount
	state.stops = savedStops
	return err
}

func (p *OptimalPlanner) meetsDeadline(task CandidateTask, arrivalMin int, input PlanInput) bool {
	if task.Deadline.IsZero() {
		return true
	}
	now := input.Now
	if now.IsZero() {
		now = time.Now()
	}
	scaled := float64(arrivalMin) * (1 + input.BufferFactor)
	eta := now.Add(time.Duration(math.Ceil(scaled)) * time.Minute)
	return !eta.After(task.Deadline)
}

func popcount(v uint32) int {
	n := 0
	for v != 0 {
		v &= v - 1
		n++
	}
	return n
}
