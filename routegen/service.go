// Package routegen 负责路线预览的生成与缓存协调。
// 同一骑手的生成请求通过数据库乐观锁去重：一个节点生成，其余节点轮询等待结果。
package routegen

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/merrydance/routeplan/algorithm"
	db "github.com/merrydance/routeplan/db/sqlc"
	"github.com/rs/zerolog/log"
)

var (
	// ErrGenerationTimeout 等待其他节点生成结果超时
	ErrGenerationTimeout = errors.New("路线生成超时，请稍后重试")
	// ErrPreviewExpired 缓存的路线预览已过期或失效
	ErrPreviewExpired = errors.New("路线预览已过期，请重新生成")
	// ErrPreviewNotFound 没有缓存的预览或档位不存在
	ErrPreviewNotFound = errors.New("未找到该时长档位的路线，请先生成路线")
)

// 起点在该距离内视为同一位置，避免骑手轻微移动导致缓存失效
const startFuzzMeters = 100

// Config 生成服务配置
type Config struct {
	Algorithm     string        // greedy / optimal
	BufferFactor  float64       // 时间预算缓冲系数
	BreakMinutes  int           // 休息时长（分钟）
	BucketMinutes []int         // 预览时长档位
	PreviewTTL    time.Duration // 预览有效期
	PollInterval  time.Duration // 等待其他节点时的轮询间隔
	PollTimeout   time.Duration // 等待其他节点的最长时间
	LockStaleness time.Duration // 生成锁过期阈值
	MaxCandidates int32         // 单次生成拉取的最大候选任务数
	Planner       algorithm.PlannerConfig
	Region        algorithm.OperatingRegion
}

// DefaultConfig 默认生成配置
func DefaultConfig() Config {
	return Config{
		Algorithm:     "greedy",
		BufferFactor:  0.12,
		BreakMinutes:  30,
		BucketMinutes: []int{30, 60, 120, 240},
		PreviewTTL:    3 * time.Minute,
		PollInterval:  200 * time.Millisecond,
		PollTimeout:   2 * time.Minute,
		LockStaleness: 2 * time.Minute,
		MaxCandidates: 200,
		Planner:       algorithm.DefaultPlannerConfig(),
	}
}

// Service 路线生成服务
type Service struct {
	store     db.Store
	estimator algorithm.TravelEstimator
	config    Config
}

// NewService 创建生成服务
func NewService(store db.Store, estimator algorithm.TravelEstimator, config Config) *Service {
	if estimator == nil {
		estimator = algorithm.HaversineEstimator{}
	}
	if len(config.BucketMinutes) == 0 {
		config.BucketMinutes = DefaultConfig().BucketMinutes
	}
	if config.Planner == (algorithm.PlannerConfig{}) {
		config.Planner = algorithm.DefaultPlannerConfig()
	}
	return &Service{
		store:     store,
		estimator: estimator,
		config:    config,
	}
}

// GenerateRequest 生成请求
type GenerateRequest struct {
	CourierID    int64
	VehicleType  string
	Start        algorithm.Location
	IncludeBreak bool
	// Algorithm 指定本次使用的算法（greedy / optimal），为空时用配置默认
	Algorithm string
	// Force 跳过缓存强制重新生成
	Force bool
}

// GenerateResult 生成结果
type GenerateResult struct {
	Previews           []algorithm.RoutePreview `json:"previews"`
	AvailableTaskCount int                      `json:"available_task_count"`
	GeneratedAt        time.Time                `json:"generated_at"`
	ExpiresAt          time.Time                `json:"expires_at"`
	FromCache          bool                     `json:"from_cache"`
}

// Generate 返回骑手的路线预览：缓存有效时直接返回，
// 否则尝试获取生成锁；拿不到锁说明其他请求正在生成，轮询等待其结果。
func (s *Service) Generate(ctx context.Context, req GenerateRequest) (*GenerateResult, error) {
	if err := s.store.EnsureRouteCacheEntry(ctx, req.CourierID); err != nil {
		return nil, fmt.Errorf("ensure cache entry: %w", err)
	}

	deadline := time.Now().Add(s.config.PollTimeout)
	for {
		entry, err := s.store.GetRouteCacheEntry(ctx, req.CourierID)
		if err != nil {
			return nil, fmt.Errorf("get cache entry: %w", err)
		}

		if !req.Force && s.cacheMatches(entry, req) {
			result, err := decodeCachedResult(entry)
			if err == nil {
				cacheHits.Inc()
				return result, nil
			}
			log.Warn().Err(err).Int64("courier_id", req.CourierID).Msg("缓存内容损坏，重新生成")
		}

		cacheMisses.Inc()

		staleBefore := time.Now().Add(-s.config.LockStaleness)
		acquired, err := s.store.AcquireRouteGeneration(ctx, db.AcquireRouteGenerationParams{
			CourierID:   req.CourierID,
			Version:     entry.Version,
			StaleBefore: pgtype.Timestamptz{Time: staleBefore, Valid: true},
		})
		if err != nil {
			if !errors.Is(err, db.ErrRecordNotFound) {
				return nil, fmt.Errorf("acquire generation lock: %w", err)
			}
			// 其他节点持有锁或版本已变，等一拍再看
			generationWaits.Inc()
			if time.Now().After(deadline) {
				return nil, ErrGenerationTimeout
			}
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(s.config.PollInterval):
			}
			continue
		}

		if entry.IsGenerating {
			// 条件更新穿过了 is_generating=true，说明原持锁者已超时
			lockTakeovers.Inc()
			log.Warn().Int64("courier_id", req.CourierID).Msg("接管过期的生成锁")
		}

		result, err := s.generateAndStore(ctx, req, acquired.Version)
		if err != nil {
			// 生成失败释放锁，不留下半成品
			releaseErr := s.store.ReleaseRouteGeneration(context.WithoutCancel(ctx), db.ReleaseRouteGenerationParams{
				CourierID: req.CourierID,
				Version:   acquired.Version,
			})
			if releaseErr != nil {
				log.Error().Err(releaseErr).Int64("courier_id", req.CourierID).Msg("release generation lock failed")
			}
			return nil, err
		}
		if result == nil {
			// 写结果时版本已变（期间发生失效），重新走一轮
			if time.Now().After(deadline) {
				return nil, ErrGenerationTimeout
			}
			continue
		}
		return result, nil
	}
}

// generateAndStore 执行生成并以版本校验写回缓存。
// 版本校验失败返回 (nil, nil)，表示结果已过时被丢弃。
func (s *Service) generateAndStore(ctx context.Context, req GenerateRequest, version int64) (*GenerateResult, error) {
	started := time.Now()

	vehicle := algorithm.ProfileForVehicle(algorithm.VehicleType(req.VehicleType))
	tasks, err := s.loadCandidates(ctx, vehicle)
	if err != nil {
		return nil, err
	}

	start := algorithm.NormalizeLocation(req.Start, s.config.Region)
	planner := s.planner(req.Algorithm)
	previews, err := algorithm.BuildPreviews(ctx, planner, algorithm.PreviewRequest{
		Start:         start,
		Tasks:         tasks,
		Vehicle:       vehicle,
		BucketMinutes: s.config.BucketMinutes,
		IncludeBreak:  req.IncludeBreak,
		BreakMinutes:  s.config.BreakMinutes,
		BufferFactor:  s.config.BufferFactor,
		Now:           started,
	})
	if err != nil {
		return nil, fmt.Errorf("build previews: %w", err)
	}

	payload, err := json.Marshal(previews)
	if err != nil {
		return nil, fmt.Errorf("marshal previews: %w", err)
	}

	expiresAt := time.Now().Add(s.config.PreviewTTL)
	completed, err := s.store.CompleteRouteGeneration(ctx, db.CompleteRouteGenerationParams{
		CourierID:          req.CourierID,
		Version:            version,
		VehicleType:        req.VehicleType,
		IncludeBreak:       req.IncludeBreak,
		StartLongitude:     start.Longitude,
		StartLatitude:      start.Latitude,
		Algorithm:          planner.Name(),
		Previews:           payload,
		AvailableTaskCount: int32(len(tasks)),
		ExpiresAt:          pgtype.Timestamptz{Time: expiresAt, Valid: true},
	})
	if err != nil {
		if errors.Is(err, db.ErrRecordNotFound) {
			// 生成期间缓存被失效，结果作废
			log.Info().Int64("courier_id", req.CourierID).Msg("生成结果因版本变化被丢弃")
			return nil, nil
		}
		return nil, fmt.Errorf("complete generation: %w", err)
	}

	generationDuration.Observe(time.Since(started).Seconds())
	log.Info().
		Int64("courier_id", req.CourierID).
		Int("previews", len(previews)).
		Int("candidates", len(tasks)).
		Dur("elapsed", time.Since(started)).
		Msg("generated route previews")

	return &GenerateResult{
		Previews:           previews,
		AvailableTaskCount: len(tasks),
		GeneratedAt:        completed.GeneratedAt.Time,
		ExpiresAt:          expiresAt,
	}, nil
}

// CachedPreview 返回缓存中指定时长档位的预览，供接单时使用。
// 预览过期或已失效时返回 ErrPreviewExpired，接单必须基于新鲜的预览。
func (s *Service) CachedPreview(ctx context.Context, courierID int64, bucketMinutes int) (*algorithm.RoutePreview, error) {
	entry, err := s.store.GetRouteCacheEntry(ctx, courierID)
	if err != nil {
		if errors.Is(err, db.ErrRecordNotFound) {
			return nil, ErrPreviewNotFound
		}
		return nil, fmt.Errorf("get cache entry: %w", err)
	}

	if entry.NeedsRevalidation || entry.Previews == nil {
		return nil, ErrPreviewExpired
	}
	if !entry.ExpiresAt.Valid || !entry.ExpiresAt.Time.After(time.Now()) {
		return nil, ErrPreviewExpired
	}

	var previews []algorithm.RoutePreview
	if err := json.Unmarshal(entry.Previews, &previews); err != nil {
		return nil, fmt.Errorf("unmarshal cached previews: %w", err)
	}

	for i := range previews {
		if previews[i].BucketMinutes == bucketMinutes {
			return &previews[i], nil
		}
	}
	return nil, ErrPreviewNotFound
}

// HandlingMinutes 返回站点类型对应的操作时长（分钟）
func (s *Service) HandlingMinutes(kind algorithm.StopKind) int {
	switch kind {
	case algorithm.StopPickup:
		return s.config.Planner.PickupHandlingMin
	case algorithm.StopDelivery:
		return s.config.Planner.DeliveryHandlingMin
	default:
		return 0
	}
}

// cacheMatches 判断缓存条目是否可直接复用：
// 未失效、未过期，且算法、车型、休息偏好一致，起点在容差范围内。
func (s *Service) cacheMatches(entry db.RouteCacheEntry, req GenerateRequest) bool {
	if entry.NeedsRevalidation || entry.Previews == nil {
		return false
	}
	if !entry.ExpiresAt.Valid || !entry.ExpiresAt.Time.After(time.Now()) {
		return false
	}
	if entry.VehicleType != req.VehicleType || entry.IncludeBreak != req.IncludeBreak {
		return false
	}
	// 贪心缓存不能冒充精确解，反之亦然
	if entry.Algorithm != s.planner(req.Algorithm).Name() {
		return false
	}
	cachedStart := algorithm.Location{Longitude: entry.StartLongitude, Latitude: entry.StartLatitude}
	start := algorithm.NormalizeLocation(req.Start, s.config.Region)
	return algorithm.HaversineDistance(cachedStart, start) <= startFuzzMeters
}

func decodeCachedResult(entry db.RouteCacheEntry) (*GenerateResult, error) {
	var previews []algorithm.RoutePreview
	if err := json.Unmarshal(entry.Previews, &previews); err != nil {
		return nil, fmt.Errorf("unmarshal cached previews: %w", err)
	}
	return &GenerateResult{
		Previews:           previews,
		AvailableTaskCount: int(entry.AvailableTaskCount),
		GeneratedAt:        entry.GeneratedAt.Time,
		ExpiresAt:          entry.ExpiresAt.Time,
		FromCache:          true,
	}, nil
}

// loadCandidates 拉取车型装得下的可接任务并转换为规划候选
func (s *Service) loadCandidates(ctx context.Context, vehicle algorithm.VehicleProfile) ([]algorithm.CandidateTask, error) {
	limit := s.config.MaxCandidates
	if limit <= 0 {
		limit = 200
	}
	classes := vehicle.CompatibleSizeClasses()
	sizeClasses := make([]string, len(classes))
	for i, c := range classes {
		sizeClasses[i] = string(c)
	}
	rows, err := s.store.ListAvailableDeliveryTasks(ctx, db.ListAvailableDeliveryTasksParams{
		SizeClasses: sizeClasses,
		LimitCount:  limit,
	})
	if err != nil {
		return nil, fmt.Errorf("list available tasks: %w", err)
	}

	tasks := make([]algorithm.CandidateTask, 0, len(rows))
	for _, row := range rows {
		tasks = append(tasks, algorithm.CandidateTask{
			ID: row.ID,
			PickupLocation: algorithm.NormalizeLocation(algorithm.Location{
				Longitude: row.PickupLongitude,
				Latitude:  row.PickupLatitude,
			}, s.config.Region),
			DeliveryLocation: algorithm.NormalizeLocation(algorithm.Location{
				Longitude: row.DeliveryLongitude,
				Latitude:  row.DeliveryLatitude,
			}, s.config.Region),
			SizeClass:  algorithm.SizeClass(row.SizeClass),
			OrderValue: row.OrderValue,
			Earning:    row.CourierEarning,
			Deadline:   row.Deadline,
			CreatedAt:  row.CreatedAt,
		})
	}
	return tasks, nil
}

// planner 按请求或配置选择算法。
// 精确求解被选中时就只跑精确求解：搜索中断或无解的档位不给路线，
// 绝不悄悄换成贪心结果冒充精确解。
func (s *Service) planner(override string) algorithm.RoutePlanner {
	name := s.config.Algorithm
	if override != "" {
		name = override
	}
	if name == "optimal" {
		return algorithm.NewOptimalPlanner(s.estimator, s.config.Planner)
	}
	return algorithm.NewGreedyPlanner(s.estimator, s.config.Planner)
}

// EstimateFunc 返回给 db 事务层使用的行程估算函数
func (s *Service) EstimateFunc(ctx context.Context) db.TravelEstimateFunc {
	return func(fromLng, fromLat, toLng, toLat float64) int {
		_, minutes := s.estimator.EstimateTravel(ctx,
			algorithm.Location{Longitude: fromLng, Latitude: fromLat},
			algorithm.Location{Longitude: toLng, Latitude: toLat},
		)
		return minutes
	}
}
