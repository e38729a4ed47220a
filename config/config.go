package config

import (
	"os"
	"strings"
	"time"
)

type Config struct {
	Server    ServerConfig    `json:"server"`
	Database  DatabaseConfig  `json:"database"`
	Redis     RedisConfig     `json:"redis"`
	Fetch     FetchConfig     `json:"fetch"`
	Scheduler SchedulerConfig `json:"scheduler"`
	Logging   LoggingConfig   `json:"logging"`
	Auth      AuthConfig      `json:"auth"`
}

type ServerConfig struct {
	Port         int           `json:"port" env:"SERVER_PORT" default:"9000"`
	ReadTimeout  time.Duration `json:"read_timeout" env:"SERVER_READ_TIMEOUT" default:"60s"`
	WriteTimeout time.Duration `json:"write_timeout" env:"SERVER_WRITE_TIMEOUT" default:"60s"`
	IdleTimeout  time.Duration `json:"idle_timeout" env:"SERVER_IDLE_TIMEOUT" default:"120s"`
}

type DatabaseConfig struct {
	MaxConnections    int           `json:"max_connections" env:"DB_MAX_CONNECTIONS" default:"25"`
	ConnectionTimeout time.Duration `json:"connection_timeout" env:"DB_CONNECTION_TIMEOUT" default:"30s"`
}

type RedisConfig struct {
	URL string `json:"url" env:"REDIS_URL" default:"redis://redis:6379"`
}

type FetchConfig struct {
	ClientTimeout       time.Duration `json:"client_timeout" env:"FETCH_CLIENT_TIMEOUT" default:"30s"`
	DialTimeout         time.Duration `json:"dial_timeout" env:"FETCH_DIAL_TIMEOUT" default:"10s"`
	TLSHandshakeTimeout time.Duration `json:"tls_handshake_timeout" env:"FETCH_TLS_HANDSHAKE_TIMEOUT" default:"10s"`
	IdleConnTimeout     time.Duration `json:"idle_conn_timeout" env:"FETCH_IDLE_CONN_TIMEOUT" default:"90s"`
	HostInterval        time.Duration `json:"host_interval" env:"FETCH_HOST_INTERVAL" default:"5s"`
}

type SchedulerConfig struct {
	RunTimeout     time.Duration `json:"run_timeout" env:"SCHEDULER_RUN_TIMEOUT" default:"2m"`
	DailyFireHour  int           `json:"daily_fire_hour" env:"SCHEDULER_DAILY_FIRE_HOUR" default:"6"`
	RescheduleOnUp bool          `json:"reschedule_on_up" env:"SCHEDULER_RESCHEDULE_ON_UP" default:"true"`
}

type LoggingConfig struct {
	Level  string `json:"level" env:"LOG_LEVEL" default:"info"`
	Format string `json:"format" env:"LOG_FORMAT" default:"json"`
}

type AuthConfig struct {
	TokenSecret     string `json:"-" env:"AUTH_TOKEN_SECRET"`
	TokenSecretFile string `json:"-" env:"AUTH_TOKEN_SECRET_FILE"`
}

// NewConfig loads configuration from environment variables with fallback to
// the tag defaults, then validates the result.
func NewConfig() (*Config, error) {
	config := &Config{}

	if err := loadFromEnvironment(config); err != nil {
		return nil, err
	}

	if err := validateConfig(config); err != nil {
		return nil, err
	}

	// Docker Secrets support: a mounted file wins over the env var.
	if config.Auth.TokenSecretFile != "" {
		content, err := os.ReadFile(config.Auth.TokenSecretFile)
		if err == nil {
			config.Auth.TokenSecret = strings.TrimSpace(string(content))
		}
	}

	return config, nil
}

// Load is an alias for NewConfig.
func Load() (*Config, error) {
	return NewConfig()
}
