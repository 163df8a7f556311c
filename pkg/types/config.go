// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// StoreConfig holds settings for the draft store.
type StoreConfig struct {
	// Path is the SQLite database file (default data/contentspark.db).
	Path string `json:"path" yaml:"path" mapstructure:"path"`

	// BusyTimeout bounds how long a write waits on a locked database (default 5s).
	BusyTimeout time.Duration `json:"busy_timeout" yaml:"busy_timeout" mapstructure:"busy_timeout"`
}

// AIConfig holds shared settings for calls to the Generative AI API.
type AIConfig struct {
	// Model is the AI model identifier (e.g. "claude-sonnet-4-5-20250929").
	Model string `json:"model" yaml:"model" mapstructure:"model"`

	// APIKey is the authentication key for the AI API.
	APIKey string `json:"api_key,omitempty" yaml:"api_key,omitempty" mapstructure:"api_key"`

	// MaxTokens caps the length of each reply (default 2048).
	MaxTokens int `json:"max_tokens" yaml:"max_tokens" mapstructure:"max_tokens"`

	// MaxRetries is the number of retries on HTTP 429 (default 3).
	MaxRetries int `json:"max_retries" yaml:"max_retries" mapstructure:"max_retries"`

	// Timeout is the HTTP request timeout (default 60s).
	Timeout time.Duration `json:"timeout" yaml:"timeout" mapstructure:"timeout"`
}

// GenerationConfig holds settings for the generation tools.
type GenerationConfig struct {
	AIConfig `yaml:",inline" mapstructure:",squash"`

	// DemoMode replaces the AI backend with canned responses.
	DemoMode bool `json:"demo_mode" yaml:"demo_mode" mapstructure:"demo_mode"`

	// TypingInterval is the delay between characters of typed output
	// (default 10ms). Zero prints results at once.
	TypingInterval time.Duration `json:"typing_interval" yaml:"typing_interval" mapstructure:"typing_interval"`
}

// HandoffBackend selects where the handoff slot lives.
type HandoffBackend string

const (
	HandoffMemory HandoffBackend = "memory"
	HandoffRedis  HandoffBackend = "redis"
)

// RedisConfig holds connection settings for the shared handoff slot.
type RedisConfig struct {
	Addr     string `json:"addr" yaml:"addr" mapstructure:"addr"`
	Password string `json:"password,omitempty" yaml:"password,omitempty" mapstructure:"password"`
	DB       int    `json:"db" yaml:"db" mapstructure:"db"`

	// Key is the Redis key holding the slot (default contentspark:handoff).
	Key string `json:"key" yaml:"key" mapstructure:"key"`

	// TTL expires an unconsumed value. Zero keeps it until consumed.
	TTL time.Duration `json:"ttl" yaml:"ttl" mapstructure:"ttl"`
}

// HandoffConfig holds settings for the handoff buffer.
type HandoffConfig struct {
	// Backend is memory (process-local) or redis (shared).
	Backend HandoffBackend `json:"backend" yaml:"backend" mapstructure:"backend"`

	Redis RedisConfig `json:"redis" yaml:"redis" mapstructure:"redis"`
}

// S3Config holds settings for exporting drafts to an S3-compatible bucket.
type S3Config struct {
	Bucket          string `json:"bucket" yaml:"bucket" mapstructure:"bucket"`
	Prefix          string `json:"prefix" yaml:"prefix" mapstructure:"prefix"`
	Region          string `json:"region" yaml:"region" mapstructure:"region"`
	Endpoint        string `json:"endpoint,omitempty" yaml:"endpoint,omitempty" mapstructure:"endpoint"`
	AccessKeyID     string `json:"access_key_id,omitempty" yaml:"access_key_id,omitempty" mapstructure:"access_key_id"`
	SecretAccessKey string `json:"secret_access_key,omitempty" yaml:"secret_access_key,omitempty" mapstructure:"secret_access_key"`
}

// ExportConfig holds settings for the export surface.
type ExportConfig struct {
	// Dir is the local export directory (default exports).
	Dir string `json:"dir" yaml:"dir" mapstructure:"dir"`

	S3 S3Config `json:"s3" yaml:"s3" mapstructure:"s3"`
}

// ServerConfig holds settings for the HTTP API.
type ServerConfig struct {
	// Addr is the listen address (default 127.0.0.1:9002).
	Addr string `json:"addr" yaml:"addr" mapstructure:"addr"`

	// ShutdownTimeout bounds graceful shutdown (default 10s).
	ShutdownTimeout time.Duration `json:"shutdown_timeout" yaml:"shutdown_timeout" mapstructure:"shutdown_timeout"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	// Level is a zerolog level name (default info).
	Level string `json:"level" yaml:"level" mapstructure:"level"`
}

// Config groups every component configuration.
type Config struct {
	Store      StoreConfig      `json:"store" yaml:"store" mapstructure:"store"`
	Generation GenerationConfig `json:"generation" yaml:"generation" mapstructure:"generation"`
	Handoff    HandoffConfig    `json:"handoff" yaml:"handoff" mapstructure:"handoff"`
	Export     ExportConfig     `json:"export" yaml:"export" mapstructure:"export"`
	Server     ServerConfig     `json:"server" yaml:"server" mapstructure:"server"`
	Log        LogConfig        `json:"log" yaml:"log" mapstructure:"log"`
}
