package config

import (
	"strings"
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server        ServerConfig        `yaml:"server"`
	CORS          CORSConfig          `yaml:"cors"`
	RateLimit     RateLimitConfig     `yaml:"rate_limit"`
	Database      DatabaseConfig      `yaml:"database"`
	Journal       JournalConfig       `yaml:"journal"`
	USDA          USDAConfig          `yaml:"usda"`
	OpenFoodFacts OpenFoodFactsConfig `yaml:"openfoodfacts"`
	Retry         RetryConfig         `yaml:"retry"`
	Log           LogConfig           `yaml:"log"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"60s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// CORSConfig holds CORS settings for browser clients.
type CORSConfig struct {
	AllowedOrigins string `yaml:"allowed_origins" env:"CORS_ALLOWED_ORIGINS" env-default:"*"`
	AllowedMethods string `yaml:"allowed_methods" env:"CORS_ALLOWED_METHODS" env-default:"GET,POST,DELETE,OPTIONS"`
	AllowedHeaders string `yaml:"allowed_headers" env:"CORS_ALLOWED_HEADERS" env-default:"Content-Type,X-Request-Id"`
	MaxAge         int    `yaml:"max_age"         env:"CORS_MAX_AGE"         env-default:"86400"`
}

// RateLimitConfig limits requests that reach the food-data providers.
// Zero disables the limiter.
type RateLimitConfig struct {
	FoodsPerMinute  int           `yaml:"foods_per_minute" env:"RATE_LIMIT_FOODS_PER_MINUTE" env-default:"60"`
	CleanupInterval time.Duration `yaml:"cleanup_interval" env:"RATE_LIMIT_CLEANUP_INTERVAL" env-default:"1m"`
}

// DatabaseConfig holds PostgreSQL connection settings.
// An empty DSN disables the PostgreSQL journal; the SQLite store is used alone.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"10"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"1"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
	ConnectTimeout  time.Duration `yaml:"connect_timeout"    env:"DATABASE_CONNECT_TIMEOUT"    env-default:"5s"`
	AutoMigrate     bool          `yaml:"auto_migrate"       env:"DATABASE_AUTO_MIGRATE"       env-default:"true"`
}

// JournalConfig holds food journal settings.
type JournalConfig struct {
	SQLitePath string `yaml:"sqlite_path" env:"JOURNAL_SQLITE_PATH" env-default:"./data/journal.db"`
	TimeZone   string `yaml:"time_zone"   env:"JOURNAL_TIME_ZONE"   env-default:"Local"`

	// Location is resolved from TimeZone during validation.
	Location *time.Location `yaml:"-" env:"-"`
}

// USDAConfig holds FoodData Central client settings.
type USDAConfig struct {
	BaseURL      string        `yaml:"base_url"   env:"USDA_BASE_URL"   env-default:"https://api.nal.usda.gov/fdc/v1"`
	APIKey       string        `yaml:"api_key"    env:"USDA_API_KEY"    env-default:"DEMO_KEY"`
	Timeout      time.Duration `yaml:"timeout"    env:"USDA_TIMEOUT"    env-default:"10s"`
	PageSize     int           `yaml:"page_size"  env:"USDA_PAGE_SIZE"  env-default:"10"`
	DataTypesRaw string        `yaml:"data_types" env:"USDA_DATA_TYPES" env-default:"Branded,Foundation,Survey (FNDDS),SR Legacy"`
}

// OpenFoodFactsConfig holds barcode registry client settings.
type OpenFoodFactsConfig struct {
	BaseURL   string        `yaml:"base_url"   env:"OFF_BASE_URL"   env-default:"https://world.openfoodfacts.org"`
	Timeout   time.Duration `yaml:"timeout"    env:"OFF_TIMEOUT"    env-default:"10s"`
	UserAgent string        `yaml:"user_agent" env:"OFF_USER_AGENT" env-default:"nutritrack/1.0"`
}

// RetryConfig holds the retry policy for provider calls.
type RetryConfig struct {
	MaxAttempts int           `yaml:"max_attempts" env:"RETRY_MAX_ATTEMPTS" env-default:"3"`
	BaseDelay   time.Duration `yaml:"base_delay"   env:"RETRY_BASE_DELAY"   env-default:"1s"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// DataTypes returns the configured FoodData Central data types.
func (c USDAConfig) DataTypes() []string {
	var out []string
	for _, p := range strings.Split(c.DataTypesRaw, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// PostgresEnabled reports whether a PostgreSQL DSN is configured.
func (c DatabaseConfig) PostgresEnabled() bool {
	return strings.TrimSpace(c.DSN) != ""
}
