package openrouter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func testConfig(baseURL string) Config {
	return Config{
		APIKey:    "test-key",
		BaseURL:   baseURL,
		Model:     "anthropic/claude-3-opus-20240229",
		MaxTokens: 4000,
		Timeout:   5 * time.Second,
	}
}

func TestCompleteReturnsFirstChoice(t *testing.T) {
	var gotAuth, gotPath string
	var gotReq chatRequest

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotPath = r.URL.Path
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"model": "anthropic/claude-3-opus-20240229", "choices": [{"index": 0, "message": {"role": "assistant", "content": "{\"course\": {}}"}, "finish_reason": "stop"}]}`))
	}))
	defer srv.Close()

	client := New(testConfig(srv.URL), zap.NewNop())
	content, err := client.Complete(context.Background(), "system text", "user text")
	require.NoError(t, err)

	assert.Equal(t, `{"course": {}}`, content)
	assert.Equal(t, "Bearer test-key", gotAuth)
	assert.Equal(t, "/chat/completions", gotPath)
	assert.Equal(t, 4000, gotReq.MaxTokens)
	require.Len(t, gotReq.Messages, 2)
	assert.Equal(t, RoleSystem, gotReq.Messages[0].Role)
	assert.Equal(t, RoleUser, gotReq.Messages[1].Role)
}

func TestCompleteNon2xxIsAnError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, `{"error": "rate limited"}`, http.StatusTooManyRequests)
	}))
	defer srv.Close()

	client := New(testConfig(srv.URL), zap.NewNop())
	_, err := client.Complete(context.Background(), "s", "u")
	assert.Error(t, err)
}

func TestCompleteEmptyChoicesIsAnError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"model": "m", "choices": []}`))
	}))
	defer srv.Close()

	client := New(testConfig(srv.URL), zap.NewNop())
	_, err := client.Complete(context.Background(), "s", "u")
	assert.Error(t, err)
}

func TestCompleteWithoutCredential(t *testing.T) {
	cfg := testConfig("http://127.0.0.1:0")
	cfg.APIKey = ""
	client := New(cfg, zap.NewNop())

	assert.False(t, client.Configured())
	_, err := client.Complete(context.Background(), "s", "u")
	assert.Error(t, err)
}
