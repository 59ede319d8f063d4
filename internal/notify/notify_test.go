package notify

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/fachebot/chat-recap/internal/config"
	"github.com/stretchr/testify/assert"
)

func TestNotify(t *testing.T) {
	var received map[string]string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		body, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(body, &received)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	n := NewNotifier(&config.Digest{Webhook: server.URL})
	err := n.Notify(context.Background(), "Daily digest 2025-02-06 ~ 2025-02-07")

	assert.NoError(t, err)
	assert.Equal(t, "Daily digest 2025-02-06 ~ 2025-02-07", received["text"])
}

func TestNotify_EmptyContent(t *testing.T) {
	called := false
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer server.Close()

	n := NewNotifier(&config.Digest{Webhook: server.URL})
	err := n.Notify(context.Background(), "")

	assert.NoError(t, err)
	assert.False(t, called)
}

func TestNotify_NoWebhook(t *testing.T) {
	n := NewNotifier(&config.Digest{})
	err := n.Notify(context.Background(), "content")
	assert.NoError(t, err)
}

func TestNotify_TruncatesLongContent(t *testing.T) {
	var received map[string]string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(body, &received)
	}))
	defer server.Close()

	n := NewNotifier(&config.Digest{Webhook: server.URL})
	err := n.Notify(context.Background(), strings.Repeat("a", MaxContentLength+100))

	assert.NoError(t, err)
	assert.Len(t, received["text"], MaxContentLength)
}

func TestNotify_TruncatesOnRuneBoundary(t *testing.T) {
	var received map[string]string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(body, &received)
	}))
	defer server.Close()

	n := NewNotifier(&config.Digest{Webhook: server.URL})
	// 3 字节字符且总长度不是 3 的倍数，字节截断会切开字符
	err := n.Notify(context.Background(), strings.Repeat("摘", MaxContentLength/3+10))

	assert.NoError(t, err)
	assert.True(t, utf8.ValidString(received["text"]))
	assert.LessOrEqual(t, len(received["text"]), MaxContentLength)
	assert.Equal(t, MaxContentLength-MaxContentLength%3, len(received["text"]))
}

func TestNotify_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	n := NewNotifier(&config.Digest{Webhook: server.URL})
	err := n.Notify(context.Background(), "content")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "状态码 500")
}

func TestNotify_ContextCanceled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(time.Second)
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	n := NewNotifier(&config.Digest{Webhook: server.URL})
	err := n.Notify(ctx, "content")
	assert.Error(t, err)
}
