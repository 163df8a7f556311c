// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package typing

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func collect(chunks *[]string) Emit {
	return func(c string) error {
		*chunks = append(*chunks, c)
		return nil
	}
}

func TestPlay_EmitsRunes(t *testing.T) {
	var chunks []string
	err := Play(context.Background(), "héllo", time.Millisecond, collect(&chunks))
	require.NoError(t, err)
	assert.Equal(t, []string{"h", "é", "l", "l", "o"}, chunks)
}

func TestPlay_ZeroIntervalEmitsAtOnce(t *testing.T) {
	var chunks []string
	require.NoError(t, Play(context.Background(), "whole text", 0, collect(&chunks)))
	assert.Equal(t, []string{"whole text"}, chunks)
}

func TestPlay_EmptyText(t *testing.T) {
	var chunks []string
	require.NoError(t, Play(context.Background(), "", time.Millisecond, collect(&chunks)))
	assert.Empty(t, chunks)
}

func TestPlay_StopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	var chunks []string
	err := Play(ctx, "abcdefghij", 5*time.Millisecond, func(c string) error {
		chunks = append(chunks, c)
		if len(chunks) == 3 {
			cancel()
		}
		return nil
	})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, []string{"a", "b", "c"}, chunks)
}

func TestPlay_StopsOnEmitError(t *testing.T) {
	boom := errors.New("closed")
	calls := 0
	err := Play(context.Background(), "abc", time.Millisecond, func(string) error {
		calls++
		return boom
	})
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 1, calls)
}

func TestPlay_PacesOutput(t *testing.T) {
	start := time.Now()
	require.NoError(t, Play(context.Background(), "abcde", 10*time.Millisecond, func(string) error { return nil }))
	assert.GreaterOrEqual(t, time.Since(start), 35*time.Millisecond)
}

func TestWriter(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Play(context.Background(), "typed", time.Millisecond, Writer(&buf)))
	assert.Equal(t, "typed", buf.String())
}
