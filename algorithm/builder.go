package algorithm

import (
	"context"
	"math"
	"sort"
	"time"
)

// GreedyPlanner 商家聚类贪心规划器
// 按“商家”聚类取货点，按效率分排序访问，送货时就近优先
type GreedyPlanner struct {
	estimator TravelEstimator
	config    PlannerConfig
}

// NewGreedyPlanner 创建贪心规划器
func NewGreedyPlanner(estimator TravelEstimator, config PlannerConfig) *GreedyPlanner {
	if estimator == nil {
		estimator = HaversineEstimator{}
	}
	return &GreedyPlanner{estimator: estimator, config: config}
}

func (p *GreedyPlanner) Name() string {
	return "greedy-cluster"
}

// storeCluster 同一取货点（约数十米内）的任务聚类
type storeCluster struct {
	anchor Location
	tasks  []CandidateTask
}

// minTaskID 聚类内最小任务ID，用于确定性排序
func (c *storeCluster) minTaskID() int64 {
	id := c.tasks[0].ID
	for _, t := range c.tasks[1:] {
		if t.ID < id {
			id = t.ID
		}
	}
	return id
}

// planState 模拟执行状态，时间与距离为未加预留系数的累计值
type planState struct {
	pos           Location
	minutes       int
	meters        int
	stops         []PlannedStop
	carried       []CandidateTask
	carriedBySize map[SizeClass]int
	earnings      int64
	taskCount     int
}

// Plan 在预算内构建一条路线；无任务可安排时返回 nil
func (p *GreedyPlanner) Plan(ctx context.Context, input PlanInput) (*PlannedRoute, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(input.Tasks) == 0 || input.BudgetMinutes <= 0 {
		return nil, nil
	}

	clusters := p.clusterByPickup(input.Tasks)

	state := &planState{
		pos:           input.Start,
		carriedBySize: make(map[SizeClass]int),
	}

	for len(clusters) > 0 {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		// 以当前位置重新排序剩余聚类
		p.rankClusters(ctx, state.pos, clusters)

		// 依次尝试聚类，允许裁剪任务数；一个都放不下的聚类直接跳过
		committed := false
		for i := 0; i < len(clusters); i++ {
			if p.commitCluster(ctx, state, clusters[i], input) {
				clusters = append(clusters[:i], clusters[i+1:]...)
				committed = true
				break
			}
		}
		if !committed {
			break
		}

		// 取货后就近送货，直到背包清空或回头取货更划算
		for len(state.carried) > 0 {
			idx, travelMin, _ := p.nearestCarried(ctx, state)
			if idx < 0 {
				break
			}

			if p.resumePickupIsBetter(ctx, state, clusters, travelMin, input) {
				break
			}
			p.deliverCarried(ctx, state, idx)
		}
	}

	// 收尾：送完仍在携带的任务
	for len(state.carried) > 0 {
		idx, _, _ := p.nearestCarried(ctx, state)
		if idx < 0 {
			break
		}
		p.deliverCarried(ctx, state, idx)
	}

	if state.taskCount == 0 {
		return nil, nil
	}

	return &PlannedRoute{
		Stops:          state.stops,
		TaskCount:      state.taskCount,
		RawMinutes:     state.minutes,
		DistanceMeters: state.meters,
		TotalEarnings:  state.earnings,
	}, nil
}

// clusterByPickup 将取货点相近（cluster 半径内）的任务并为同一“商家”
func (p *GreedyPlanner) clusterByPickup(tasks []CandidateTask) []*storeCluster {
	sorted := make([]CandidateTask, len(tasks))
	copy(sorted, tasks)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].ID < sorted[j].ID })

	radius := p.config.ClusterRadiusMeters
	if radius <= 0 {
		radius = 75
	}

	var clusters []*storeCluster
	for _, task := range sorted {
		placed := false
		for _, c := range clusters {
			if HaversineDistance(c.anchor, task.PickupLocation) <= radius {
				c.tasks = append(c.tasks, task)
				placed = true
				break
			}
		}
		if !placed {
			clusters = append(clusters, &storeCluster{
				anchor: task.PickupLocation,
				tasks:  []CandidateTask{task},
			})
		}
	}
	return clusters
}

// rankClusters 按效率分降序排序：收益合计 / (到达耗时 + 操作与送货耗时估算)
func (p *GreedyPlanner) rankClusters(ctx context.Context, from Location, clusters []*storeCluster) {
	type ranked struct {
		score float64
		minID int64
	}
	scores := make(map[*storeCluster]ranked, len(clusters))

	for _, c := range clusters {
		_, travelMin := p.estimator.EstimateTravel(ctx, from, c.anchor)

		var earnings int64
		handlingMin := 0
		for _, t := range c.tasks {
			earnings += t.Earning
			_, dm := p.estimator.EstimateTravel(ctx, c.anchor, t.DeliveryLocation)
			handlingMin += p.config.PickupHandlingMin + dm + p.config.DeliveryHandlingMin
		}

		denom := float64(travelMin + handlingMin)
		if denom < 1 {
			denom = 1
		}
		scores[c] = ranked{score: float64(earnings) / denom, minID: c.minTaskID()}
	}

	sort.SliceStable(clusters, func(i, j int) bool {
		a, b := scores[clusters[i]], scores[clusters[j]]
		if a.score != b.score {
			return a.score > b.score
		}
		return a.minID < b.minID
	})
}

// eligibleClusterTasks 按“先到先得、收益优先”排序聚类任务并按容量截断
// 单独看就赶不上时限的任务直接剔除，避免拖垮整个聚类
func (p *GreedyPlanner) eligibleClusterTasks(ctx context.Context, state *planState, c *storeCluster, travelMin int, input PlanInput) []CandidateTask {
	vehicle := input.Vehicle

	sorted := make([]CandidateTask, 0, len(c.tasks))
	for _, t := range c.tasks {
		_, dropMin := p.estimator.EstimateTravel(ctx, c.anchor, t.DeliveryLocation)
		earliest := state.minutes + travelMin + p.config.PickupHandlingMin + dropMin
		if p.meetsDeadline(t, earliest, input) {
			sorted = append(sorted, t)
		}
	}
	sort.Slice(sorted, func(i, j int) bool {
		if !sorted[i].CreatedAt.Equal(sorted[j].CreatedAt) {
			return sorted[i].CreatedAt.Before(sorted[j].CreatedAt)
		}
		if sorted[i].Earning != sorted[j].Earning {
			return sorted[i].Earning > sorted[j].Earning
		}
		return sorted[i].ID < sorted[j].ID
	})

	carried := make(map[SizeClass]int, len(state.carriedBySize))
	for k, v := range state.carriedBySize {
		carried[k] = v
	}

	var eligible []CandidateTask
	for _, t := range sorted {
		if vehicle.CanAddTask(carried, t.SizeClass) {
			carried[t.SizeClass]++
			eligible = append(eligible, t)
		}
	}
	return eligible
}

// commitCluster 尝试把聚类并入路线；超预算时裁剪任务数重试，0 个可行则放弃
func (p *GreedyPlanner) commitCluster(ctx context.Context, state *planState, c *storeCluster, input PlanInput) bool {
	travelMeters, travelMin := p.estimator.EstimateTravel(ctx, state.pos, c.anchor)

	eligible := p.eligibleClusterTasks(ctx, state, c, travelMin, input)
	if len(eligible) == 0 {
		return false
	}

	for k := len(eligible); k > 0; k-- {
		take := eligible[:k]
		if !p.fitsWithinBudget(ctx, state, c.anchor, travelMin, take, input) {
			continue
		}

		// 落实取货：整个聚类只付一次路上成本
		state.pos = c.anchor
		state.minutes += travelMin
		state.meters += travelMeters
		for _, t := range take {
			state.stops = append(state.stops, PlannedStop{
				Kind:             StopPickup,
				TaskID:           t.ID,
				Location:         c.anchor,
				ArrivalOffsetMin: state.minutes,
			})
			state.minutes += p.config.PickupHandlingMin
			state.carried = append(state.carried, t)
			state.carriedBySize[t.SizeClass]++
			state.taskCount++
		}
		return true
	}
	return false
}

// fitsWithinBudget 模拟“取走 take 后送完所有在携任务”的总耗时与时限
// 只有整体可收尾的取货才允许落实，避免收尾阶段超预算
func (p *GreedyPlanner) fitsWithinBudget(ctx context.Context, state *planState, anchor Location, travelMin int, take []CandidateTask, input PlanInput) bool {
	minutes := state.minutes + travelMin + len(take)*p.config.PickupHandlingMin
	if minutes > input.BudgetMinutes {
		return false
	}

	pending := make([]CandidateTask, 0, len(state.carried)+len(take))
	pending = append(pending, state.carried...)
	pending = append(pending, take...)

	pos := anchor
	for len(pending) > 0 {
		best := -1
		bestMin := 0
		for i, t := range pending {
			_, m := p.estimator.EstimateTravel(ctx, pos, t.DeliveryLocation)
			if best == -1 || m < bestMin || (m == bestMin && t.ID < pending[best].ID) {
				best, bestMin = i, m
			}
		}

		minutes += bestMin
		if minutes > input.BudgetMinutes {
			return false
		}
		if !p.meetsDeadline(pending[best], minutes, input) {
			return false
		}
		minutes += p.config.DeliveryHandlingMin

		pos = pending[best].DeliveryLocation
		pending = append(pending[:best], pending[best+1:]...)
	}

	return minutes <= input.BudgetMinutes
}

// meetsDeadline 校验按真实（加预留后的）时刻送达不超过任务时限
func (p *GreedyPlanner) meetsDeadline(task CandidateTask, arrivalMin int, input PlanInput) bool {
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

// nearestCarried 就近送货选择，耗时相同时取较小任务ID保证确定性
func (p *GreedyPlanner) nearestCarried(ctx context.Context, state *planState) (idx, travelMin, travelMeters int) {
	idx = -1
	for i, t := range state.carried {
		meters, m := p.estimator.EstimateTravel(ctx, state.pos, t.DeliveryLocation)
		if idx == -1 || m < travelMin || (m == travelMin && t.ID < state.carried[idx].ID) {
			idx, travelMin, travelMeters = i, m, meters
		}
	}
	return idx, travelMin, travelMeters
}

// deliverCarried 落实一次送货
func (p *GreedyPlanner) deliverCarried(ctx context.Context, state *planState, idx int) {
	task := state.carried[idx]
	meters, travelMin := p.estimator.EstimateTravel(ctx, state.pos, task.DeliveryLocation)

	state.pos = task.DeliveryLocation
	state.minutes += travelMin
	state.meters += meters
	state.stops = append(state.stops, PlannedStop{
		Kind:             StopDelivery,
		TaskID:           task.ID,
		Location:         task.DeliveryLocation,
		ArrivalOffsetMin: state.minutes,
		Earning:          task.Earning,
	})
	state.minutes += p.config.DeliveryHandlingMin
	state.earnings += task.Earning

	state.carried = append(state.carried[:idx], state.carried[idx+1:]...)
	state.carriedBySize[task.SizeClass]--
}

// resumePickupIsBetter 判断回头取货是否比继续送货更省时
// 仅当仍有容量且存在更近的可行聚类时成立
func (p *GreedyPlanner) resumePickupIsBetter(ctx context.Context, state *planState, clusters []*storeCluster, deliveryMin int, input PlanInput) bool {
	if len(clusters) == 0 {
		return false
	}

	carriedTotal := 0
	for _, n := range state.carriedBySize {
		carriedTotal += n
	}
	if carriedTotal >= input.Vehicle.MaxItems {
		return false
	}

	for _, c := range clusters {
		_, travelMin := p.estimator.EstimateTravel(ctx, state.pos, c.anchor)
		if travelMin < deliveryMin {
			return true
		}
	}
	return false
}
