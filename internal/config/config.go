// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package config resolves the typed configuration from viper, the
// environment and the secrets directory.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/pdiddy/contentspark/internal/secrets"
	"github.com/pdiddy/contentspark/pkg/types"
)

// EnvPrefix prefixes every environment override, e.g. CONTENTSPARK_STORE_PATH.
const EnvPrefix = "CONTENTSPARK"

// AnthropicKeyEnv is the conventional environment variable for the API key.
const AnthropicKeyEnv = "ANTHROPIC_API_KEY"

var defaults = map[string]any{
	"store.path":                  "data/contentspark.db",
	"store.busy_timeout":          5 * time.Second,
	"generation.model":            "claude-sonnet-4-5-20250929",
	"generation.api_key":          "",
	"generation.max_tokens":       2048,
	"generation.max_retries":      3,
	"generation.timeout":          60 * time.Second,
	"generation.demo_mode":        false,
	"generation.typing_interval":  10 * time.Millisecond,
	"handoff.backend":             string(types.HandoffMemory),
	"handoff.redis.addr":          "localhost:6379",
	"handoff.redis.password":      "",
	"handoff.redis.db":            0,
	"handoff.redis.key":           "contentspark:handoff",
	"handoff.redis.ttl":           time.Duration(0),
	"export.dir":                  "exports",
	"export.s3.bucket":            "",
	"export.s3.prefix":            "",
	"export.s3.region":            "",
	"export.s3.endpoint":          "",
	"export.s3.access_key_id":     "",
	"export.s3.secret_access_key": "",
	"server.addr":                 "127.0.0.1:9002",
	"server.shutdown_timeout":     10 * time.Second,
	"log.level":                   "info",
}

// SetDefaults registers every default and the environment binding on v.
func SetDefaults(v *viper.Viper) {
	for k, val := range defaults {
		v.SetDefault(k, val)
	}
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
}

// Load decodes v into a Config. Credentials left empty fall back to the
// secrets directory; the API key then falls back to ANTHROPIC_API_KEY.
func Load(v *viper.Viper, s secrets.Secrets) (types.Config, error) {
	var cfg types.Config
	if err := v.Unmarshal(&cfg); err != nil {
		return types.Config{}, fmt.Errorf("decoding config: %w", err)
	}

	if cfg.Generation.APIKey == "" {
		cfg.Generation.APIKey = s.Get(secrets.AnthropicAPIKey)
	}
	if cfg.Generation.APIKey == "" {
		cfg.Generation.APIKey = os.Getenv(AnthropicKeyEnv)
	}

	fallback(&cfg.Handoff.Redis.Password, s.Get(secrets.RedisPassword))
	fallback(&cfg.Export.S3.AccessKeyID, s.Get(secrets.S3AccessKeyID))
	fallback(&cfg.Export.S3.SecretAccessKey, s.Get(secrets.S3SecretAccessKey))

	switch cfg.Handoff.Backend {
	case types.HandoffMemory, types.HandoffRedis:
	default:
		return types.Config{}, fmt.Errorf("handoff.backend %q is not one of memory, redis", cfg.Handoff.Backend)
	}
	return cfg, nil
}

func fallback(dst *string, v string) {
	if *dst == "" {
		*dst = v
	}
}
