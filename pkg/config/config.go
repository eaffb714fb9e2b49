// Package config loads and validates the engine configuration. Every
// safety threshold the engine applies (queue capacity, debounce window,
// chunk sizes, mass-deletion ratio) lives here rather than as magic
// numbers at call sites.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/go-pkgz/lgr"
	"gopkg.in/yaml.v3"
)

//go:generate go run ../../cmd/schema/main.go schema.json

// Config holds the application configuration
type Config struct {
	Server struct {
		Listen  string        `yaml:"listen" json:"listen" jsonschema:"default=:8080,description=HTTP server listen address"`
		Timeout time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=HTTP server timeout"`
	} `yaml:"server" json:"server" jsonschema:"description=Operational API server configuration"`

	Database struct {
		DSN             string `yaml:"dsn" json:"dsn" jsonschema:"default=file:feedsync.db?cache=shared&mode=rwc,description=Database connection string"`
		MaxOpenConns    int    `yaml:"max_open_conns" json:"max_open_conns" jsonschema:"default=10,description=Maximum number of open connections"`
		MaxIdleConns    int    `yaml:"max_idle_conns" json:"max_idle_conns" jsonschema:"default=5,description=Maximum number of idle connections"`
		ConnMaxLifetime int    `yaml:"conn_max_lifetime" json:"conn_max_lifetime" jsonschema:"default=3600,description=Connection maximum lifetime in seconds"`
	} `yaml:"database" json:"database" jsonschema:"description=Database configuration"`

	Remote RemoteConfig `yaml:"remote" json:"remote" jsonschema:"description=Remote feed service API"`

	Queue QueueConfig `yaml:"queue" json:"queue" jsonschema:"description=Mutation queue configuration"`

	Flush FlushConfig `yaml:"flush" json:"flush" jsonschema:"description=Debounced flusher configuration"`

	Sync SyncConfig `yaml:"sync" json:"sync" jsonschema:"description=Pull sync configuration"`
}

// RemoteConfig holds remote API client settings
type RemoteConfig struct {
	Endpoint string        `yaml:"endpoint" json:"endpoint" jsonschema:"required,description=Feed service API endpoint"`
	APIKey   string        `yaml:"api_key" json:"api_key" jsonschema:"description=API key (can use environment variable)"`
	Timeout  time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=Remote call timeout"`
}

// QueueConfig holds mutation queue settings
type QueueConfig struct {
	Capacity int `yaml:"capacity" json:"capacity" jsonschema:"default=1000,minimum=1,description=Maximum pending mutations before FIFO eviction"`
}

// FlushConfig holds debounced flusher settings
type FlushConfig struct {
	Debounce       time.Duration `yaml:"debounce" json:"debounce" jsonschema:"default=500ms,description=Idle window before flushing queued mutations"`
	Threshold      int           `yaml:"threshold" json:"threshold" jsonschema:"default=200,minimum=1,description=Queue size that triggers an immediate flush"`
	ChunkSize      int           `yaml:"chunk_size" json:"chunk_size" jsonschema:"default=200,minimum=1,description=Maximum mutations per remote batch call"`
	MaxAttempts    int           `yaml:"max_attempts" json:"max_attempts" jsonschema:"default=5,minimum=1,description=Attempts before a mutation is dropped as permanently failed"`
	RetryBaseDelay time.Duration `yaml:"retry_base_delay" json:"retry_base_delay" jsonschema:"default=1s,description=Initial backoff delay for transient failures"`
	HealthInterval time.Duration `yaml:"health_interval" json:"health_interval" jsonschema:"default=1m,description=Queue health event period"`
}

// SyncConfig holds pull sync settings
type SyncConfig struct {
	Interval          time.Duration `yaml:"interval" json:"interval" jsonschema:"default=15m,description=Pull sync period"`
	ChunkSize         int           `yaml:"chunk_size" json:"chunk_size" jsonschema:"default=200,minimum=1,description=Maximum ids per bulk delete call"`
	ChunkDelay        time.Duration `yaml:"chunk_delay" json:"chunk_delay" jsonschema:"default=0s,description=Pause between bulk delete chunks"`
	MassDeletionRatio float64       `yaml:"mass_deletion_ratio" json:"mass_deletion_ratio" jsonschema:"default=0.5,minimum=0,maximum=1,description=Largest fraction of records one reconciliation may delete"`
	ConflictLog       string        `yaml:"conflict_log" json:"conflict_log" jsonschema:"default=conflicts.jsonl,description=Path of the append-only conflict log"`
}

// Load reads configuration from a YAML file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // file path comes from CLI flag
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	// expand environment variables
	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	cfg.setDefaults()

	// validate configuration
	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	// verify against embedded schema
	if err := VerifyAgainstEmbeddedSchema(&cfg); err != nil {
		// schema validation is supplementary, warn but don't fail
		lgr.Printf("[WARN] schema validation failed: %v", err)
	}

	return &cfg, nil
}

func (c *Config) setDefaults() {
	// set defaults for server
	if c.Server.Listen == "" {
		c.Server.Listen = ":8080"
	}
	if c.Server.Timeout == 0 {
		c.Server.Timeout = 30 * time.Second
	}

	// set defaults for database
	if c.Database.DSN == "" {
		c.Database.DSN = "file:feedsync.db?cache=shared&mode=rwc&_txlock=immediate"
	}
	if c.Database.MaxOpenConns == 0 {
		c.Database.MaxOpenConns = 10
	}
	if c.Database.MaxIdleConns == 0 {
		c.Database.MaxIdleConns = 5
	}
	if c.Database.ConnMaxLifetime == 0 {
		c.Database.ConnMaxLifetime = 3600
	}

	// set defaults for remote client
	if c.Remote.Timeout == 0 {
		c.Remote.Timeout = 30 * time.Second
	}

	// set defaults for queue and flusher
	if c.Queue.Capacity == 0 {
		c.Queue.Capacity = 1000
	}
	if c.Flush.Debounce == 0 {
		c.Flush.Debounce = 500 * time.Millisecond
	}
	if c.Flush.Threshold == 0 {
		c.Flush.Threshold = 200
	}
	if c.Flush.ChunkSize == 0 {
		c.Flush.ChunkSize = 200
	}
	if c.Flush.MaxAttempts == 0 {
		c.Flush.MaxAttempts = 5
	}
	if c.Flush.RetryBaseDelay == 0 {
		c.Flush.RetryBaseDelay = time.Second
	}
	if c.Flush.HealthInterval == 0 {
		c.Flush.HealthInterval = time.Minute
	}

	// set defaults for pull sync
	if c.Sync.Interval == 0 {
		c.Sync.Interval = 15 * time.Minute
	}
	if c.Sync.ChunkSize == 0 {
		c.Sync.ChunkSize = 200
	}
	if c.Sync.MassDeletionRatio == 0 {
		c.Sync.MassDeletionRatio = 0.5
	}
	if c.Sync.ConflictLog == "" {
		c.Sync.ConflictLog = "conflicts.jsonl"
	}
}

// validate checks configuration for correctness
func validate(cfg *Config) error {
	// validate remote config
	if cfg.Remote.Endpoint == "" {
		return fmt.Errorf("remote.endpoint is required")
	}
	if cfg.Remote.Timeout < time.Second {
		return fmt.Errorf("remote.timeout must be at least 1 second")
	}

	// validate queue and flusher config
	if cfg.Queue.Capacity < 1 {
		return fmt.Errorf("queue.capacity must be at least 1")
	}
	if cfg.Flush.Threshold < 1 {
		return fmt.Errorf("flush.threshold must be at least 1")
	}
	if cfg.Flush.ChunkSize < 1 {
		return fmt.Errorf("flush.chunk_size must be at least 1")
	}
	if cfg.Flush.Threshold > cfg.Queue.Capacity {
		return fmt.Errorf("flush.threshold must not exceed queue.capacity")
	}

	// validate sync config
	if cfg.Sync.ChunkSize < 1 {
		return fmt.Errorf("sync.chunk_size must be at least 1")
	}
	if cfg.Sync.MassDeletionRatio <= 0 || cfg.Sync.MassDeletionRatio > 1 {
		return fmt.Errorf("sync.mass_deletion_ratio must be between 0 and 1")
	}

	// validate server config
	if cfg.Server.Timeout < time.Second {
		return fmt.Errorf("server timeout must be at least 1 second")
	}

	return nil
}

// GetServerConfig returns server configuration
func (c *Config) GetServerConfig() (listen string, timeout time.Duration) {
	return c.Server.Listen, c.Server.Timeout
}

// GetRemoteConfig returns remote API client configuration
func (c *Config) GetRemoteConfig() RemoteConfig {
	return c.Remote
}

// GetSyncConfig returns pull sync configuration
func (c *Config) GetSyncConfig() SyncConfig {
	return c.Sync
}
