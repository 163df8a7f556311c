// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package secrets loads credentials from a directory of plain-text files.
// Each file holds one secret: the filename is the key and the trimmed
// contents are the value.
//
// Known keys: anthropic-api-key, redis-password, s3-access-key-id,
// s3-secret-access-key.
package secrets

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Known secret file names.
const (
	AnthropicAPIKey   = "anthropic-api-key"
	RedisPassword     = "redis-password"
	S3AccessKeyID     = "s3-access-key-id"
	S3SecretAccessKey = "s3-secret-access-key"
)

// Secrets is the result of loading a secrets directory.
type Secrets struct {
	Values map[string]string

	// Unreadable lists files that exist but could not be read.
	Unreadable []string
}

// Get returns the value for key, or "" when it is not set.
func (s Secrets) Get(key string) string {
	return s.Values[key]
}

// Keys returns the loaded key names, sorted. Values are never exposed here
// so the result is safe to log.
func (s Secrets) Keys() []string {
	keys := make([]string, 0, len(s.Values))
	for k := range s.Values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Load reads every regular, non-hidden file in dir. A missing directory is
// not an error and yields no values. Empty files are skipped.
func Load(dir string) (Secrets, error) {
	s := Secrets{Values: map[string]string{}}

	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return Secrets{}, fmt.Errorf("reading secrets directory %s: %w", dir, err)
	}

	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || strings.HasPrefix(name, ".") {
			continue
		}

		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			s.Unreadable = append(s.Unreadable, name)
			continue
		}
		if value := strings.TrimSpace(string(data)); value != "" {
			s.Values[name] = value
		}
	}
	return s, nil
}
