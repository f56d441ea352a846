package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/hibiken/asynq"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/merrydance/routeplan/algorithm"
	"github.com/merrydance/routeplan/api"
	db "github.com/merrydance/routeplan/db/sqlc"
	"github.com/merrydance/routeplan/maps"
	"github.com/merrydance/routeplan/routegen"
	"github.com/merrydance/routeplan/sweeper"
	"github.com/merrydance/routeplan/util"
	"github.com/merrydance/routeplan/worker"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

// @title           RoutePlan API
// @version         1.0
// @description     骑手路线规划服务 API 文档。按时长档位生成接单路线预览，
// @description     支持整线原子领取与路线执行全流程（到达、完成、跳过、延后取货、剔除订单、放弃路线）。
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.email  support@merrydance.com

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host      localhost:8080
// @BasePath  /v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Enter the token with the `Bearer: ` prefix, e.g. "Bearer abcde12345".

var interruptSignals = []os.Signal{
	os.Interrupt,
	syscall.SIGTERM,
	syscall.SIGINT,
}

func main() {
	config, err := util.LoadConfig(".")
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load config")
	}

	if config.Environment == "development" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}

	ctx, stop := signal.NotifyContext(context.Background(), interruptSignals...)
	defer stop()

	poolConfig, err := pgxpool.ParseConfig(config.DBSource)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot parse db config")
	}

	// 连接池参数（根据生产环境调整）
	poolConfig.MaxConns = 25
	poolConfig.MinConns = 5
	poolConfig.MaxConnLifetime = 1 * time.Hour
	poolConfig.MaxConnIdleTime = 30 * time.Minute
	poolConfig.HealthCheckPeriod = 1 * time.Minute

	connPool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot connect to db")
	}

	if err := connPool.Ping(ctx); err != nil {
		log.Fatal().Err(err).Msg("cannot ping database")
	}

	runDBMigration(config.MigrationURL, config.DBSource)

	store := db.NewStore(connPool)

	if config.RedisAddress == "" {
		log.Fatal().Msg("REDIS_ADDRESS is not configured")
	}

	redisOpt := asynq.RedisClientOpt{
		Addr:     config.RedisAddress,
		Password: config.RedisPassword,
	}

	routeGen := newRouteGenService(config, store)

	waitGroup, ctx := errgroup.WithContext(ctx)

	taskDistributor := runTaskProcessor(ctx, waitGroup, redisOpt, store)
	runSweeper(ctx, waitGroup, config, store)
	runGinServer(ctx, waitGroup, config, store, routeGen, taskDistributor)

	err = waitGroup.Wait()
	if err != nil {
		log.Fatal().Err(err).Msg("error from wait group")
	}
}

// newRouteGenService 组装路线生成服务。
// 配置了腾讯地图Key时用真实骑行路线估算，否则退化为直线估算。
func newRouteGenService(config util.Config, store db.Store) *routegen.Service {
	var estimator algorithm.TravelEstimator
	if config.TencentMapKey != "" {
		estimator = maps.NewRouteEstimator(maps.NewTencentMapClient(config.TencentMapKey))
		log.Info().Msg("tencent map estimator enabled")
	} else {
		log.Warn().Msg("TENCENT_MAP_KEY not configured, falling back to straight-line travel estimates")
	}

	genConfig := routegen.DefaultConfig()
	if config.RouteAlgorithm != "" {
		genConfig.Algorithm = config.RouteAlgorithm
	}
	if config.RouteBufferFactor > 0 {
		genConfig.BufferFactor = config.RouteBufferFactor
	}
	if config.RouteBreakMinutes > 0 {
		genConfig.BreakMinutes = config.RouteBreakMinutes
	}
	if config.RoutePreviewTTL > 0 {
		genConfig.PreviewTTL = config.RoutePreviewTTL
	}
	if config.RouteGenPollInterval > 0 {
		genConfig.PollInterval = config.RouteGenPollInterval
	}
	if config.RouteGenPollTimeout > 0 {
		genConfig.PollTimeout = config.RouteGenPollTimeout
	}
	if config.RouteGenLockStaleness > 0 {
		genConfig.LockStaleness = config.RouteGenLockStaleness
	}
	genConfig.Region = algorithm.OperatingRegion{
		Center: algorithm.Location{
			Longitude: config.RegionCenterLongitude,
			Latitude:  config.RegionCenterLatitude,
		},
		RadiusMeters: config.RegionRadiusMeters,
	}

	return routegen.NewService(store, estimator, genConfig)
}

func runDBMigration(migrationURL string, dbSource string) {
	migration, err := migrate.New(migrationURL, dbSource)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot create new migrate instance")
	}

	if err = migration.Up(); err != nil && err != migrate.ErrNoChange {
		log.Fatal().Err(err).Msg("failed to run migrate up")
	}

	log.Info().Msg("db migrated successfully")
}

func runTaskProcessor(
	ctx context.Context,
	waitGroup *errgroup.Group,
	redisOpt asynq.RedisClientOpt,
	store db.Store,
) worker.TaskDistributor {
	taskDistributor := worker.NewRedisTaskDistributor(redisOpt)

	taskProcessor := worker.NewRedisTaskProcessor(redisOpt, store)
	log.Info().Msg("start task processor")

	waitGroup.Go(func() error {
		return taskProcessor.Start()
	})

	waitGroup.Go(func() error {
		<-ctx.Done()
		log.Info().Msg("graceful shutdown task processor")
		taskProcessor.Shutdown()
		log.Info().Msg("task processor is stopped")
		return nil
	})

	return taskDistributor
}

// runSweeper starts the route cache maintenance scheduler
func runSweeper(
	ctx context.Context,
	waitGroup *errgroup.Group,
	config util.Config,
	store db.Store,
) {
	scheduler := sweeper.NewScheduler(store, config.RouteGenLockStaleness)

	if err := scheduler.Start(); err != nil {
		log.Error().Err(err).Msg("failed to start route cache sweeper")
		return
	}

	waitGroup.Go(func() error {
		<-ctx.Done()
		log.Info().Msg("graceful shutdown route cache sweeper")
		scheduler.Stop()
		return nil
	})
}

// runGinServer starts the Gin HTTP server
func runGinServer(
	ctx context.Context,
	waitGroup *errgroup.Group,
	config util.Config,
	store db.Store,
	routeGen *routegen.Service,
	taskDistributor worker.TaskDistributor,
) {
	server, err := api.NewServer(config, store, routeGen, taskDistributor)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot create server")
	}

	httpServer := &http.Server{
		Addr:    config.HTTPServerAddress,
		Handler: server.GetRouter(),
		// Avoid slowloris and stuck connections under pressure.
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       60 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	waitGroup.Go(func() error {
		log.Info().Msgf("start HTTP server at %s", config.HTTPServerAddress)
		err = httpServer.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Error().Err(err).Msg("HTTP server failed to serve")
			return err
		}
		return nil
	})

	waitGroup.Go(func() error {
		<-ctx.Done()
		log.Info().Msg("graceful shutdown HTTP server")

		// 给予10秒时间完成正在处理的请求
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("HTTP server forced to shutdown")
			return err
		}

		log.Info().Msg("HTTP server is stopped")
		return nil
	})
}
