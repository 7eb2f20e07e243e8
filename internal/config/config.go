package config

import (
	"fmt"
	"time"

	"github.com/BurntSushi/toml"
)

// Config is the full service configuration loaded from config.toml.
type Config struct {
	Server          ServerConfig      `toml:"server"`
	Database        DatabaseConfig    `toml:"database"`
	Logs            LogsConfig        `toml:"logs"`
	Metrics         MetricsConfig     `toml:"metrics"`
	IdentityService IntegrationConfig `toml:"identity_service"`
	PetService      IntegrationConfig `toml:"pet_service"`
	Audit           AuditConfig       `toml:"audit"`
	Jobs            JobsConfig        `toml:"jobs"`
	Business        BusinessConfig    `toml:"business"`
}

// ServerConfig configures the HTTP server.
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// DatabaseConfig configures the PostgreSQL connection.
type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"`
}

// DSN builds the lib/pq connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// LogsConfig configures the file logger.
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig configures the Prometheus endpoint.
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// IntegrationConfig configures an outbound HTTP client.
type IntegrationConfig struct {
	URL     string `toml:"url"`
	Timeout int    `toml:"timeout"` // seconds
}

// AuditConfig configures the Kafka audit event publisher.
type AuditConfig struct {
	Enabled bool   `toml:"enabled"`
	Brokers string `toml:"brokers"` // comma-separated
	Topic   string `toml:"topic"`
}

// JobsConfig configures background jobs.
type JobsConfig struct {
	CompletionSchedule string `toml:"completion_schedule"` // cron spec, e.g. "*/10 * * * *"
}

// BusinessConfig configures salon-level settings.
type BusinessConfig struct {
	Timezone string `toml:"timezone"` // IANA name, e.g. "Europe/London"
}

// Location resolves the configured business timezone, defaulting to UTC.
func (b BusinessConfig) Location() (*time.Location, error) {
	if b.Timezone == "" {
		return time.UTC, nil
	}
	loc, err := time.LoadLocation(b.Timezone)
	if err != nil {
		return nil, fmt.Errorf("config: invalid business timezone %q: %w", b.Timezone, err)
	}
	return loc, nil
}

// Load reads and decodes the TOML config file at path.
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("config: failed to decode %s: %w", path, err)
	}

	if cfg.Server.HTTPPort == 0 {
		cfg.Server.HTTPPort = 8080
	}
	if cfg.Jobs.CompletionSchedule == "" {
		cfg.Jobs.CompletionSchedule = "*/10 * * * *"
	}
	if cfg.Metrics.Path == "" {
		cfg.Metrics.Path = "/metrics"
	}

	return &cfg, nil
}
