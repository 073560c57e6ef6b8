// Package config loads application configuration from the environment, with
// an optional TOML profile file overlaying it.
package config

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	toml "github.com/pelletier/go-toml/v2"
	"github.com/sethvargo/go-envconfig"
)

// Storage driver names accepted by Config.Storage.Driver.
const (
	DriverMemory = "memory"
	DriverSQLite = "sqlite"
	DriverRedis  = "redis"
	DriverMongo  = "mongo"
)

type Config struct {
	Env       string `env:"ENV,        default=development" toml:"env"`
	LogLevel  string `env:"LOG_LEVEL,  default=info"        toml:"log_level"`
	LogPretty bool   `env:"LOG_PRETTY, default=false"       toml:"log_pretty"`

	Storage       StorageConfig  `toml:"storage"`
	Redis         RedisConfig    `toml:"redis"`
	Mongo         MongoConfig    `toml:"mongo"`
	Reminders     ReminderConfig `toml:"reminders"`
	Notifications NotifyConfig   `toml:"notifications"`
}

type StorageConfig struct {
	// Driver selects the key/value substrate: memory, sqlite, redis, mongo.
	Driver string `env:"STORAGE_DRIVER, default=sqlite"       toml:"driver"`
	// Path is the database file for the sqlite driver.
	Path string `env:"STORAGE_PATH,   default=taskboard.db" toml:"path"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379" toml:"addr"`
	DB   int    `env:"REDIS_DB,   default=0"              toml:"db"`
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017" toml:"uri"`
	Database string `env:"MONGO_DB,  default=task_system"               toml:"database"`
}

// ReminderConfig carries the scan policy constants. Defaults match the
// original application: 5-minute due window polled every minute, 24-hour
// upcoming window polled every 5 minutes.
type ReminderConfig struct {
	DueWindow        time.Duration `env:"REMINDER_DUE_WINDOW,        default=5m"  toml:"due_window"`
	UpcomingWindow   time.Duration `env:"REMINDER_UPCOMING_WINDOW,   default=24h" toml:"upcoming_window"`
	DueInterval      time.Duration `env:"REMINDER_DUE_INTERVAL,      default=60s" toml:"due_interval"`
	UpcomingInterval time.Duration `env:"REMINDER_UPCOMING_INTERVAL, default=5m"  toml:"upcoming_interval"`
}

type NotifyConfig struct {
	// Permission is the platform notification permission state:
	// default, granted, or denied.
	Permission string `env:"NOTIFY_PERMISSION, default=default" toml:"permission"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &cfg, nil
}

// LoadWithFile loads from the environment, then overlays the TOML profile
// file at path when it exists. File values take precedence — the profile is
// the local equivalent of the browser's per-origin settings.
func LoadWithFile(ctx context.Context, path string) (*Config, error) {
	cfg, err := Load(ctx)
	if err != nil {
		return nil, err
	}
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return cfg, nil
}
