// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/redis/go-redis/v9"

	"github.com/pdiddy/contentspark/internal/draftstore"
	"github.com/pdiddy/contentspark/internal/export"
	"github.com/pdiddy/contentspark/internal/generate"
	"github.com/pdiddy/contentspark/internal/handoff"
	"github.com/pdiddy/contentspark/pkg/types"
)

// openStore opens the configured draft store. The caller closes it.
func openStore() (*draftstore.Store, error) {
	return draftstore.New(cfg.Store, draftstore.WithLogger(log))
}

// newGenerator returns the offline generator in demo mode and the Claude
// backed generator otherwise.
func newGenerator() (generate.Generator, error) {
	if cfg.Generation.DemoMode {
		log.Debug().Msg("demo mode: using offline responses")
		return &generate.Offline{}, nil
	}
	if cfg.Generation.APIKey == "" {
		return nil, fmt.Errorf("no Anthropic API key: set generation.api_key, .secrets/anthropic-api-key or ANTHROPIC_API_KEY, or use --demo")
	}
	return generate.NewAI(generate.NewClaudeBackend(cfg.Generation.AIConfig), log), nil
}

// newHandoff returns the configured handoff buffer and a cleanup func.
// shared reports whether the buffer outlives this process.
func newHandoff() (buf handoff.Buffer, shared bool, cleanup func()) {
	if cfg.Handoff.Backend != types.HandoffRedis {
		return handoff.NewSlot(), false, func() {}
	}
	rc := cfg.Handoff.Redis
	client := redis.NewClient(&redis.Options{
		Addr:     rc.Addr,
		Password: rc.Password,
		DB:       rc.DB,
	})
	return handoff.NewRedisSlot(client, rc.Key, rc.TTL, log), true, func() { client.Close() }
}

// sharedHandoff is newHandoff for commands that only make sense when the
// buffer survives the process.
func sharedHandoff() (handoff.Buffer, func(), error) {
	buf, shared, cleanup := newHandoff()
	if !shared {
		cleanup()
		return nil, nil, fmt.Errorf("the memory handoff buffer lives only inside one process; set handoff.backend=redis to hand off between commands, or use the serve API")
	}
	return buf, cleanup, nil
}

// newExporter returns the S3 exporter when toS3 is set and the directory
// exporter otherwise.
func newExporter(ctx context.Context, toS3 bool) (export.Exporter, error) {
	if toS3 {
		return export.NewS3Exporter(ctx, cfg.Export.S3)
	}
	return &export.DirExporter{Dir: cfg.Export.Dir}, nil
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid draft id %q", s)
	}
	return id, nil
}

// readText returns the text from --file (with "-" for stdin) or the
// joined arguments.
func readText(file string, args []string) (string, error) {
	switch file {
	case "":
		return strings.Join(args, " "), nil
	case "-":
		b, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(b), nil
	default:
		b, err := os.ReadFile(file)
		if err != nil {
			return "", fmt.Errorf("reading %s: %w", file, err)
		}
		return string(b), nil
	}
}
