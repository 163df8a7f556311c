// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package logger

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestNewWithWriter_Levels(t *testing.T) {
	tests := []struct {
		level string
		want  zerolog.Level
	}{
		{"debug", zerolog.DebugLevel},
		{"INFO", zerolog.InfoLevel},
		{"warn", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"", zerolog.InfoLevel},
		{"nonsense", zerolog.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			var buf bytes.Buffer
			l := NewWithWriter(&buf, tt.level)
			assert.Equal(t, tt.want, l.GetLevel())
		})
	}
}

func TestNewWithWriter_WritesConsoleLines(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter(&buf, "info")

	l.Debug().Msg("hidden")
	l.Info().Str("draft", "1").Msg("saved draft")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "saved draft")
	assert.Contains(t, out, "draft=1")
}
