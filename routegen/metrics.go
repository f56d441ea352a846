package routegen

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	cacheHits = promauto.NewCounter(prometheus.CounterOpts{
		Name: "routeplan_cache_hits_total",
		Help: "命中有效路线缓存的次数",
	})

	cacheMisses = promauto.NewCounter(prometheus.CounterOpts{
		Name: "routeplan_cache_misses_total",
		Help: "缓存失效或参数不匹配触发重新生成的次数",
	})

	generationWaits = promauto.NewCounter(prometheus.CounterOpts{
		Name: "routeplan_generation_waits_total",
		Help: "等待其他节点生成结果的次数",
	})

	lockTakeovers = promauto.NewCounter(prometheus.CounterOpts{
		Name: "routeplan_lock_takeovers_total",
		Help: "接管过期生成锁的次数",
	})

	generationDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "routeplan_generation_duration_seconds",
		Help:    "路线生成耗时",
		Buckets: prometheus.DefBuckets,
	})
)
