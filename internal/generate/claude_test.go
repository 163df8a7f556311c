// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package generate

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/contentspark/internal/httputil"
	"github.com/pdiddy/contentspark/pkg/types"
)

func init() {
	httputil.RetryBaseDelay = time.Millisecond
}

func withClaudeServer(t *testing.T, h http.HandlerFunc) *httptest.Server {
	t.Helper()
	ts := httptest.NewServer(h)
	old := claudeAPIURL
	claudeAPIURL = ts.URL
	t.Cleanup(func() {
		claudeAPIURL = old
		ts.Close()
	})
	return ts
}

func TestClaudeBackend_Complete(t *testing.T) {
	var got claudeRequest
	ts := withClaudeServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "test-key", r.Header.Get("x-api-key"))
		assert.Equal(t, "2023-06-01", r.Header.Get("anthropic-version"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		json.NewEncoder(w).Encode(claudeResponse{Content: []claudeContent{
			{Type: "thinking", Text: "ignored"},
			{Type: "text", Text: `{"summary": "ok"}`},
		}})
	})

	b := &ClaudeBackend{APIKey: "test-key", Model: "test-model", Client: ts.Client()}
	reply, err := b.Complete(context.Background(), "Summarize this")
	require.NoError(t, err)

	assert.Equal(t, `{"summary": "ok"}`, reply)
	assert.Equal(t, "test-model", got.Model)
	assert.Equal(t, defaultMaxTokens, got.MaxTokens)
	require.Len(t, got.Messages, 1)
	assert.Equal(t, "user", got.Messages[0].Role)
	assert.Equal(t, "Summarize this", got.Messages[0].Content)
}

func TestClaudeBackend_DefaultsFromConfig(t *testing.T) {
	b := NewClaudeBackend(types.AIConfig{APIKey: "k", MaxTokens: 100, MaxRetries: 2})
	assert.Equal(t, "k", b.APIKey)
	assert.Equal(t, 100, b.MaxTokens)
	assert.Equal(t, 2, b.MaxRetries)
	assert.Equal(t, defaultTimeout, b.Client.Timeout)
}

func TestClaudeBackend_RetriesRateLimit(t *testing.T) {
	var calls int32
	ts := withClaudeServer(t, func(w http.ResponseWriter, r *http.Request) {
		var req claudeRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		if atomic.AddInt32(&calls, 1) == 1 {
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		json.NewEncoder(w).Encode(claudeResponse{Content: []claudeContent{{Type: "text", Text: "done"}}})
	})

	b := &ClaudeBackend{APIKey: "k", Client: ts.Client(), MaxRetries: 3}
	reply, err := b.Complete(context.Background(), "p")
	require.NoError(t, err)
	assert.Equal(t, "done", reply)
	assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
}

func TestClaudeBackend_Errors(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
		errMsg  string
	}{
		{
			name: "server error",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
				w.Write([]byte("overloaded"))
			},
			errMsg: "Claude API returned 500: overloaded",
		},
		{
			name: "bad json",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.Write([]byte("{"))
			},
			errMsg: "decoding Claude response",
		},
		{
			name: "no text block",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				json.NewEncoder(w).Encode(claudeResponse{})
			},
			errMsg: "no text content",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := withClaudeServer(t, tt.handler)
			b := &ClaudeBackend{APIKey: "k", Client: ts.Client()}
			_, err := b.Complete(context.Background(), "p")
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestClaudeBackend_MissingKey(t *testing.T) {
	_, err := (&ClaudeBackend{}).Complete(context.Background(), "p")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "API key")
}

func TestAI_OverClaudeBackend(t *testing.T) {
	ts := withClaudeServer(t, func(w http.ResponseWriter, _ *http.Request) {
		json.NewEncoder(w).Encode(claudeResponse{Content: []claudeContent{
			{Type: "text", Text: `{"post": "Hello LinkedIn"}`},
		}})
	})

	ai := NewAI(&ClaudeBackend{APIKey: "k", Client: ts.Client()}, zerolog.Nop())
	out, err := ai.Social(context.Background(), types.SocialInput{Topic: "hiring", Platform: types.PlatformLinkedIn})
	require.NoError(t, err)
	assert.Equal(t, "Hello LinkedIn", out.Post)
}
