package util

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config stores all configuration of the application.
// The values are read by viper from a config file or environment variable.
type Config struct {
	Environment          string        `mapstructure:"ENVIRONMENT"`
	AllowedOrigins       []string      `mapstructure:"ALLOWED_ORIGINS"`
	DBSource             string        `mapstructure:"DB_SOURCE"`
	MigrationURL         string        `mapstructure:"MIGRATION_URL"`
	RedisAddress         string        `mapstructure:"REDIS_ADDRESS"`
	RedisPassword        string        `mapstructure:"REDIS_PASSWORD"`
	HTTPServerAddress    string        `mapstructure:"HTTP_SERVER_ADDRESS"`
	TokenSymmetricKey    string        `mapstructure:"TOKEN_SYMMETRIC_KEY"`
	AccessTokenDuration  time.Duration `mapstructure:"ACCESS_TOKEN_DURATION"`
	RefreshTokenDuration time.Duration `mapstructure:"REFRESH_TOKEN_DURATION"`

	// 腾讯地图配置（真实骑行时间估算，未配置时退化为直线估算）
	TencentMapKey string `mapstructure:"TENCENT_MAP_KEY"`

	// 运营区域配置：超出区域或非法坐标会被替换为区域中心点
	RegionCenterLongitude float64 `mapstructure:"REGION_CENTER_LONGITUDE"`
	RegionCenterLatitude  float64 `mapstructure:"REGION_CENTER_LATITUDE"`
	RegionRadiusMeters    int     `mapstructure:"REGION_RADIUS_METERS"`

	// 路线生成配置
	RouteAlgorithm        string        `mapstructure:"ROUTE_ALGORITHM"`          // greedy / optimal
	RouteBufferFactor     float64       `mapstructure:"ROUTE_BUFFER_FACTOR"`      // 时间预留系数（约0.08-0.15）
	RouteBreakMinutes     int           `mapstructure:"ROUTE_BREAK_MINUTES"`      // 休息时长（分钟）
	RoutePreviewTTL       time.Duration `mapstructure:"ROUTE_PREVIEW_TTL"`        // 预览有效期
	RouteGenPollInterval  time.Duration `mapstructure:"ROUTE_GEN_POLL_INTERVAL"`  // 等待他人生成的轮询间隔
	RouteGenPollTimeout   time.Duration `mapstructure:"ROUTE_GEN_POLL_TIMEOUT"`   // 轮询上限
	RouteGenLockStaleness time.Duration `mapstructure:"ROUTE_GEN_LOCK_STALENESS"` // 生成锁过期时间
}

// LoadConfig reads configuration from file or environment variables.
func LoadConfig(path string) (config Config, err error) {
	viper.AddConfigPath(path)
	viper.SetConfigName("app")
	viper.SetConfigType("env")

	viper.AutomaticEnv()

	err = viper.ReadInConfig()
	if err != nil {
		return
	}

	err = viper.Unmarshal(&config)
	if err != nil {
		return
	}

	// Normalize common quoted values from .env (e.g. REDIS_PASSWORD="...")
	config.RedisPassword = trimOptionalQuotes(config.RedisPassword)
	return
}

func trimOptionalQuotes(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "\"")
	s = strings.TrimSuffix(s, "\"")
	s = strings.TrimPrefix(s, "'")
	s = strings.TrimSuffix(s, "'")
	return s
}
