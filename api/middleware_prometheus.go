package api

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// HTTP 请求计数器
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	// HTTP 请求延迟直方图
	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"method", "path"},
	)

	// 活跃请求数
	httpRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "http_requests_in_flight",
			Help: "Number of HTTP requests currently being processed",
		},
	)

	// WebSocket 在线骑手数
	wsCouriersOnline = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "websocket_couriers_online",
			Help: "Number of couriers with an active WebSocket connection",
		},
	)

	// 业务指标
	routesClaimedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "routes_claimed_total",
			Help: "Total number of routes claimed by couriers",
		},
	)

	routesEndedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "routes_ended_total",
			Help: "Total number of routes ended",
		},
		[]string{"outcome"}, // completed, abandoned
	)
)

// PrometheusMiddleware 记录 HTTP 请求指标
func PrometheusMiddleware() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		// 跳过 /metrics 和健康检查端点
		path := ctx.FullPath()
		if path == "/metrics" || path == "/health" || path == "/ready" {
			ctx.Next()
			return
		}

		// 如果路径为空（404），使用实际路径
		if path == "" {
			path = ctx.Request.URL.Path
		}

		httpRequestsInFlight.Inc()
		start := time.Now()

		ctx.Next()

		httpRequestsInFlight.Dec()
		duration := time.Since(start).Seconds()
		status := strconv.Itoa(ctx.Writer.Status())

		httpRequestsTotal.WithLabelValues(ctx.Request.Method, path, status).Inc()
		httpRequestDuration.WithLabelValues(ctx.Request.Method, path).Observe(duration)
	}
}

// MetricsHandler 返回 Prometheus 指标处理器
func MetricsHandler() gin.HandlerFunc {
	h := promhttp.Handler()
	return func(ctx *gin.Context) {
		h.ServeHTTP(ctx.Writer, ctx.Request)
	}
}

// UpdateWSMetrics 更新 WebSocket 在线骑手数（应该定期调用）
func UpdateWSMetrics(couriers int) {
	wsCouriersOnline.Set(float64(couriers))
}

// RecordRouteClaimed 记录路线被领取
func RecordRouteClaimed() {
	routesClaimedTotal.Inc()
}

// RecordRouteEnded 记录路线结束
func RecordRouteEnded(outcome string) {
	routesEndedTotal.WithLabelValues(outcome).Inc()
}
