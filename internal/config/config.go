package config

import (
	"net"
	"strconv"
	"time"
)

// Config es la configuración raíz de la API.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Redis    RedisConfig    `yaml:"redis"`
	Log      LogConfig      `yaml:"log"`
	Auth     AuthConfig     `yaml:"auth"`
	Insights InsightsConfig `yaml:"insights"`
}

type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// DatabaseConfig: DSN vacío = store en memoria (dev).
type DatabaseConfig struct {
	DSN         string `yaml:"dsn"          env:"DATABASE_DSN"`
	SkipMigrate bool   `yaml:"skip_migrate" env:"DATABASE_SKIP_MIGRATE"`
}

// RedisConfig: Addr vacío = sin cache de reportes.
type RedisConfig struct {
	Addr      string        `yaml:"addr"       env:"REDIS_ADDR"`
	Password  string        `yaml:"password"   env:"REDIS_PASSWORD"`
	DB        int           `yaml:"db"         env:"REDIS_DB"         env-default:"0"`
	ReportTTL time.Duration `yaml:"report_ttl" env:"REDIS_REPORT_TTL" env-default:"60s"`
}

type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
	App    string `yaml:"app"    env:"APP_NAME"   env-default:"tinytally-api"`
}

// AuthConfig: StaticTokens ("token=user,token2=user2") se prueba primero y
// VerifyURL después; pueden convivir. Ambos vacíos = modo dev
// (header X-Debug-User-ID).
type AuthConfig struct {
	StaticTokens  string        `yaml:"static_tokens"  env:"AUTH_STATIC_TOKENS"`
	VerifyURL     string        `yaml:"verify_url"     env:"AUTH_VERIFY_URL"`
	VerifyAPIKey  string        `yaml:"verify_api_key" env:"AUTH_VERIFY_API_KEY"`
	VerifyTimeout time.Duration `yaml:"verify_timeout" env:"AUTH_VERIFY_TIMEOUT" env-default:"5s"`
}

type InsightsConfig struct {
	Timezone           string        `yaml:"timezone"             env:"INSIGHTS_TIMEZONE"              env-default:"Local"`
	DefaultDays        int           `yaml:"default_days"         env:"INSIGHTS_DEFAULT_DAYS"          env-default:"7"`
	MaxDays            int           `yaml:"max_days"             env:"INSIGHTS_MAX_DAYS"              env-default:"90"`
	WetDiaperThreshold int           `yaml:"wet_diaper_threshold" env:"INSIGHTS_WET_DIAPER_THRESHOLD"  env-default:"6"`
	SideLookback       time.Duration `yaml:"side_lookback"        env:"INSIGHTS_SIDE_LOOKBACK"         env-default:"72h"`
}

func (s ServerConfig) Addr() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}
