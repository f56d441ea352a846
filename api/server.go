package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgconn"
	db "github.com/merrydance/routeplan/db/sqlc"
	"github.com/merrydance/routeplan/routegen"
	"github.com/merrydance/routeplan/token"
	"github.com/merrydance/routeplan/util"
	"github.com/merrydance/routeplan/websocket"
	"github.com/merrydance/routeplan/worker"
	"github.com/rs/zerolog/log"
)

// MessageResponse 通用消息响应
type MessageResponse struct {
	Message string `json:"message" example:"ok"`
}

// Server serves HTTP requests for the route planning service.
type Server struct {
	config          util.Config
	store           db.Store
	tokenMaker      token.Maker
	routeGen        *routegen.Service
	taskDistributor worker.TaskDistributor
	wsHub           *websocket.Hub           // WebSocket连接管理（骑手实时推送）
	wsPubSub        *websocket.PubSubManager // Redis Pub/Sub管理（跨进程推送）
	router          *gin.Engine
}

// NewServer creates a new HTTP server and set up routing.
func NewServer(config util.Config, store db.Store, routeGen *routegen.Service, taskDistributor worker.TaskDistributor) (*Server, error) {
	tokenMaker, err := token.NewPasetoMaker(config.TokenSymmetricKey)
	if err != nil {
		return nil, fmt.Errorf("cannot create token maker: %w", err)
	}

	// 创建WebSocket Hub（骑手路线变更与收入推送）
	wsHub := websocket.NewHub(context.Background())
	go wsHub.Run()

	// 创建Redis Pub/Sub管理器（用于跨进程推送）
	var wsPubSub *websocket.PubSubManager
	if config.RedisAddress != "" {
		wsPubSub, err = websocket.NewPubSubManager(config.RedisAddress, config.RedisPassword, wsHub)
		if err != nil {
			log.Warn().Err(err).Msg("failed to create PubSub manager, WebSocket push will be disabled")
		} else {
			wsPubSub.Start()
			log.Info().Msg("WebSocket PubSub manager started")
		}
	}

	server := &Server{
		config:          config,
		store:           store,
		tokenMaker:      tokenMaker,
		routeGen:        routeGen,
		taskDistributor: taskDistributor,
		wsHub:           wsHub,
		wsPubSub:        wsPubSub,
	}

	server.setupRouter()
	return server, nil
}

// GetWebSocketHub returns the WebSocket hub for external access
func (server *Server) GetWebSocketHub() *websocket.Hub {
	return server.wsHub
}

func (server *Server) setupRouter() {
	if server.config.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.Default()

	// 注册自定义验证器
	registerCustomValidators()

	// 跨域资源共享中间件
	router.Use(CORSMiddleware(server.config.AllowedOrigins))

	// 安全响应头中间件
	router.Use(SecurityHeadersMiddleware())

	// 请求追踪中间件（生成 X-Request-ID）
	router.Use(RequestTracingMiddleware())
	router.Use(RequestLoggingMiddleware())

	// Prometheus 指标中间件
	router.Use(PrometheusMiddleware())

	// 速率限制中间件
	rateLimiter := NewRateLimiter(DefaultRateLimiterConfig())
	router.Use(rateLimiter.Middleware())

	// 全局超时中间件：防止慢查询导致goroutine泄漏
	router.Use(TimeoutMiddleware(30 * time.Second))

	// Prometheus 指标端点（供监控系统抓取）
	router.GET("/metrics", MetricsHandler())

	// 健康检查端点（供 Nginx/K8s 使用，无需认证）
	router.GET("/health", server.healthCheck)
	router.GET("/ready", server.readinessCheck)

	// API v1
	v1 := router.Group("/v1")

	// 运力池录入（调度系统回调，无需骑手身份）
	// TODO: 接入调度系统后改为服务间鉴权
	v1.POST("/tasks", server.createDeliveryTask)

	// 需要认证的路由
	authGroup := v1.Group("")
	authGroup.Use(authMiddleware(server.tokenMaker))

	// 骑手账户路由
	courierGroup := authGroup.Group("/couriers")
	{
		courierGroup.POST("/register", server.registerCourier)
		courierGroup.GET("/me", server.getCurrentCourier)
		courierGroup.POST("/online", server.goOnline)
		courierGroup.POST("/offline", server.goOffline)
		courierGroup.PATCH("/vehicle", server.updateVehicle)
	}

	// 任务池查询
	authGroup.GET("/tasks/available", server.listAvailableTasks)

	// 路线生成与生命周期路由
	routesGroup := authGroup.Group("/routes")
	{
		routesGroup.POST("/generate", server.generateRoutes)
		routesGroup.POST("/claim", server.claimRoute)
		routesGroup.GET("/active", server.getActiveRoute)
		routesGroup.POST("/:id/stops/:stop_id/progress", server.reportStopProgress)
		routesGroup.POST("/:id/stops/:stop_id/postpone", server.postponePickup)
		routesGroup.POST("/:id/orders/:task_id/remove", server.removeOrder)
		routesGroup.POST("/:id/abandon", server.abandonRoute)
	}

	// WebSocket路由（骑手实时通知）
	authGroup.GET("/ws", server.handleWebSocket)

	server.router = router
}

// Start runs the HTTP server on a specific address.
func (server *Server) Start(address string) error {
	return server.router.Run(address)
}

// GetRouter returns the gin router for creating http.Server
func (server *Server) GetRouter() *gin.Engine {
	return server.router
}

// healthCheck 健康检查 - 基础存活检查
// GET /health
func (server *Server) healthCheck(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"service": "routeplan-api",
	})
}

// readinessCheck 就绪检查 - 检查依赖服务
// GET /ready
func (server *Server) readinessCheck(ctx *gin.Context) {
	// 检查数据库连接
	if err := server.store.Ping(ctx); err != nil {
		ctx.JSON(http.StatusServiceUnavailable, gin.H{
			"status": "not ready",
			"error":  "database connection failed",
		})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"status":   "ready",
		"service":  "routeplan-api",
		"database": "connected",
	})
}

// ErrorResponse represents an API error response
type ErrorResponse struct {
	Error string `json:"error" example:"error message"`
}

// errorResponse creates an error response.
// For 4xx client errors: returns the actual error message
// For 5xx server errors: use internalError() instead to avoid leaking details
func errorResponse(err error) gin.H {
	return gin.H{"error": err.Error()}
}

// internalError logs the actual error and returns a safe generic message.
// Use this for 5xx errors to prevent leaking internal implementation details.
func internalError(ctx *gin.Context, err error) gin.H {
	// Attach to gin context so RequestLoggingMiddleware can include it
	_ = ctx.Error(err)

	evt := log.Error().
		Err(err).
		Str("request_id", GetRequestID(ctx)).
		Str("path", ctx.Request.URL.Path).
		Str("method", ctx.Request.Method)

	// If it's a Postgres error, log structured fields for faster debugging
	if pgErr, ok := err.(*pgconn.PgError); ok {
		evt = evt.
			Str("sqlstate", pgErr.Code).
			Str("pg_message", pgErr.Message).
			Str("pg_detail", pgErr.Detail).
			Str("pg_constraint", pgErr.ConstraintName)
	}

	evt.Msg("internal error")

	return gin.H{"error": "internal server error"}
}
