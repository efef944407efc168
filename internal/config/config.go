package config

import "time"

// Config is the root application configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	Redis     RedisConfig     `yaml:"redis"`
	Board     BoardConfig     `yaml:"board"`
	Log       LogConfig       `yaml:"log"`
	CORS      CORSConfig      `yaml:"cors"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PATCH,DELETE,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Content-Type,X-Request-Id"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"false"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
	// LockTimeout is passed to PostgreSQL as lock_timeout. Zero leaves the
	// server default (wait forever).
	LockTimeout time.Duration `yaml:"lock_timeout" env:"DATABASE_LOCK_TIMEOUT" env-default:"0s"`
}

// RedisConfig holds the topic-list cache settings. An empty Addr disables
// the cache.
type RedisConfig struct {
	Addr      string        `yaml:"addr"       env:"REDIS_ADDR"`
	Password  string        `yaml:"password"   env:"REDIS_PASSWORD"`
	DB        int           `yaml:"db"         env:"REDIS_DB"         env-default:"0"`
	KeyPrefix string        `yaml:"key_prefix" env:"REDIS_KEY_PREFIX" env-default:"threadboard:"`
	TTL       time.Duration `yaml:"ttl"        env:"REDIS_TTL"        env-default:"30s"`
}

// BoardConfig holds the per-topic rules enforced by the board service.
type BoardConfig struct {
	CapacityLimit      int    `yaml:"capacity_limit"       env:"BOARD_CAPACITY_LIMIT"       env-default:"50"`
	MaxBodyLength      int    `yaml:"max_body_length"      env:"BOARD_MAX_BODY_LENGTH"      env-default:"200"`
	MaxTitleLength     int    `yaml:"max_title_length"     env:"BOARD_MAX_TITLE_LENGTH"     env-default:"80"`
	MaxSummaryLength   int    `yaml:"max_summary_length"   env:"BOARD_MAX_SUMMARY_LENGTH"   env-default:"500"`
	LimitNotice        string `yaml:"limit_notice"         env:"BOARD_LIMIT_NOTICE"         env-default:"This thread has reached its post limit. Please start a new thread."`
	MaxPageSize        int    `yaml:"max_page_size"        env:"BOARD_MAX_PAGE_SIZE"        env-default:"10"`
	DefaultPageSize    int    `yaml:"default_page_size"    env:"BOARD_DEFAULT_PAGE_SIZE"    env-default:"10"`
	ReconcileOnStart   bool   `yaml:"reconcile_on_start"   env:"BOARD_RECONCILE_ON_START"   env-default:"true"`
	PurgeRetentionDays int    `yaml:"purge_retention_days" env:"BOARD_PURGE_RETENTION_DAYS" env-default:"30"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// RateLimitConfig holds per-IP request limits for the REST API.
type RateLimitConfig struct {
	RequestsPerMinute int           `yaml:"requests_per_minute" env:"RATE_LIMIT_RPM"     env-default:"120"`
	CleanupInterval   time.Duration `yaml:"cleanup_interval"    env:"RATE_LIMIT_CLEANUP" env-default:"5m"`
}

// CacheEnabled reports whether a Redis address is configured.
func (c RedisConfig) CacheEnabled() bool {
	return c.Addr != ""
}
