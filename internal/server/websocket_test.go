// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package server

import (
	"context"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/contentspark/internal/generate"
)

func dialGenerate(t *testing.T, e *testEnv) *websocket.Conn {
	t.Helper()
	ts := httptest.NewServer(e.server.Handler())
	t.Cleanup(ts.Close)

	url := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws/generate"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	conn.SetReadDeadline(time.Now().Add(5 * time.Second))
	return conn
}

// readFrames reads until a done or error frame.
func readFrames(t *testing.T, conn *websocket.Conn) (string, generateFrame) {
	t.Helper()
	var text strings.Builder
	for {
		var f generateFrame
		require.NoError(t, conn.ReadJSON(&f))
		switch f.Type {
		case "chunk":
			text.WriteString(f.Text)
		case "done", "error":
			return text.String(), f
		default:
			t.Fatalf("unexpected frame type %q", f.Type)
		}
	}
}

func TestGenerateStream_TypesResult(t *testing.T) {
	e := newTestEnv(t, nil)
	e.server.interval = time.Millisecond
	conn := dialGenerate(t, e)

	require.NoError(t, conn.WriteJSON(map[string]any{
		"tool":  "rewrite",
		"input": map[string]string{"text": "hi", "tone": "Formal"},
	}))

	text, last := readFrames(t, conn)
	assert.Equal(t, "done", last.Type)
	require.NotNil(t, last.Result)
	assert.Equal(t, last.Result.Text, text)
	assert.Equal(t, `This is a mock rewritten text in a formal tone for: "hi..."`, text)
	assert.Zero(t, last.DraftID)
}

func TestGenerateStream_Save(t *testing.T) {
	e := newTestEnv(t, nil)
	conn := dialGenerate(t, e)

	require.NoError(t, conn.WriteJSON(map[string]any{
		"tool":  "social",
		"input": map[string]string{"topic": "launch", "platform": "Twitter"},
		"save":  true,
	}))

	_, last := readFrames(t, conn)
	require.Equal(t, "done", last.Type)
	require.Positive(t, last.DraftID)

	d, found, err := e.store.GetByID(context.Background(), last.DraftID)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "Social Post: launch...", d.Title)
}

func TestGenerateStream_Errors(t *testing.T) {
	tests := []struct {
		name    string
		gen     generate.Generator
		request map[string]any
		wantErr string
	}{
		{
			name:    "unknown tool",
			request: map[string]any{"tool": "poetry", "input": map[string]string{}},
			wantErr: "unknown tool",
		},
		{
			name:    "empty input",
			request: map[string]any{"tool": "brainstorm", "input": map[string]string{"topic": ""}},
			wantErr: "input is empty",
		},
		{
			name:    "backend failure",
			gen:     failingGenerator{&generate.Offline{}},
			request: map[string]any{"tool": "summarize", "input": map[string]string{"text": "x"}},
			wantErr: "content generation failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestEnv(t, tt.gen)
			conn := dialGenerate(t, e)

			require.NoError(t, conn.WriteJSON(tt.request))
			text, last := readFrames(t, conn)
			assert.Equal(t, "error", last.Type)
			assert.Contains(t, last.Error, tt.wantErr)
			assert.Empty(t, text)
		})
	}
}

func TestGenerateStream_InvalidRequest(t *testing.T) {
	e := newTestEnv(t, nil)
	conn := dialGenerate(t, e)

	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte("not json")))
	_, last := readFrames(t, conn)
	assert.Equal(t, "error", last.Type)
	assert.Equal(t, "invalid request", last.Error)
}
