package config

import (
	"errors"
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
)

// ErrInvalidConfig возвращается при некорректных значениях конфигурации
var ErrInvalidConfig = errors.New("config: invalid value")

// Config конфигурация сервиса (config.toml)
type Config struct {
	Server       ServerConfig       `toml:"server"`
	Database     DatabaseConfig     `toml:"database"`
	Logs         LogsConfig         `toml:"logs"`
	Metrics      MetricsConfig      `toml:"metrics"`
	Availability AvailabilityConfig `toml:"availability"`
}

// ServerConfig параметры HTTP сервера, таймауты в секундах
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// DatabaseConfig параметры подключения к PostgreSQL
type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"` // секунды
}

// DSN строка подключения для lib/pq
func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

// LogsConfig параметры логирования
type LogsConfig struct {
	File   string `toml:"file"`   // пусто - только stdout
	Level  string `toml:"level"`  // debug, info, warn, error
	Pretty bool   `toml:"pretty"` // человекочитаемый вывод в stdout
}

// MetricsConfig параметры Prometheus метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// AvailabilityConfig параметры вычисления свободных слотов
type AvailabilityConfig struct {
	// SlotBoundary "lenient" (последний слот может закончиться после конца рабочего дня) или "strict"
	SlotBoundary string `toml:"slot_boundary"`
	// BusyIntervals "contained" (только встречи целиком внутри дня) или "clipped"
	BusyIntervals      string `toml:"busy_intervals"`
	MaxDurationMinutes int    `toml:"max_duration_minutes"`
}

// SlotBoundaryPolicy политика границы последнего слота
func (c AvailabilityConfig) SlotBoundaryPolicy() domain.SlotBoundaryPolicy {
	return domain.SlotBoundaryPolicy(c.SlotBoundary)
}

// BusyIntervalPolicy политика отбора занятых интервалов
func (c AvailabilityConfig) BusyIntervalPolicy() domain.BusyIntervalPolicy {
	return domain.BusyIntervalPolicy(c.BusyIntervals)
}

// Load читает конфигурацию из TOML файла, подставляет значения по умолчанию и валидирует
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("config: decode %s: %w", path, err)
	}

	cfg.applyDefaults()

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Server.HTTPPort == 0 {
		c.Server.HTTPPort = 8080
	}
	if c.Server.ReadTimeout == 0 {
		c.Server.ReadTimeout = 10
	}
	if c.Server.WriteTimeout == 0 {
		c.Server.WriteTimeout = 10
	}
	if c.Server.IdleTimeout == 0 {
		c.Server.IdleTimeout = 60
	}
	if c.Server.ShutdownTimeout == 0 {
		c.Server.ShutdownTimeout = 10
	}

	if c.Database.Port == 0 {
		c.Database.Port = 5432
	}
	if c.Database.SSLMode == "" {
		c.Database.SSLMode = "disable"
	}
	if c.Database.MaxOpenConns == 0 {
		c.Database.MaxOpenConns = 25
	}
	if c.Database.MaxIdleConns == 0 {
		c.Database.MaxIdleConns = 5
	}
	if c.Database.ConnMaxLifetime == 0 {
		c.Database.ConnMaxLifetime = 300
	}

	if c.Logs.Level == "" {
		c.Logs.Level = "info"
	}

	if c.Metrics.Path == "" {
		c.Metrics.Path = "/metrics"
	}
	if c.Metrics.ServiceName == "" {
		c.Metrics.ServiceName = "smc-calendar-service"
	}

	if c.Availability.SlotBoundary == "" {
		c.Availability.SlotBoundary = string(domain.DefaultSlotBoundary)
	}
	if c.Availability.BusyIntervals == "" {
		c.Availability.BusyIntervals = string(domain.DefaultBusyIntervalPolicy)
	}
	if c.Availability.MaxDurationMinutes == 0 {
		c.Availability.MaxDurationMinutes = domain.DefaultMaxDurationMinutes
	}
}

func (c *Config) validate() error {
	if c.Server.HTTPPort < 1 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("%w: server.http_port must be a valid TCP port, got %d", ErrInvalidConfig, c.Server.HTTPPort)
	}

	if c.Database.Host == "" {
		return fmt.Errorf("%w: database.host is required", ErrInvalidConfig)
	}
	if c.Database.DBName == "" {
		return fmt.Errorf("%w: database.dbname is required", ErrInvalidConfig)
	}

	switch c.Availability.SlotBoundaryPolicy() {
	case domain.BoundaryLenient, domain.BoundaryStrict:
	default:
		return fmt.Errorf("%w: availability.slot_boundary must be %q or %q, got %q",
			ErrInvalidConfig, domain.BoundaryLenient, domain.BoundaryStrict, c.Availability.SlotBoundary)
	}

	switch c.Availability.BusyIntervalPolicy() {
	case domain.BusyContained, domain.BusyClipped:
	default:
		return fmt.Errorf("%w: availability.busy_intervals must be %q or %q, got %q",
			ErrInvalidConfig, domain.BusyContained, domain.BusyClipped, c.Availability.BusyIntervals)
	}

	if c.Availability.MaxDurationMinutes < 0 {
		return fmt.Errorf("%w: availability.max_duration_minutes must be positive", ErrInvalidConfig)
	}

	return nil
}
