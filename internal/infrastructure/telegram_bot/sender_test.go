package telegram_bot

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSend_PostsToChat(t *testing.T) {
	var got map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/bottoken/sendMessage", r.URL.Path)
		b, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(b, &got)
		_, _ = w.Write([]byte(`{"ok":true,"result":{"message_id":1,"date":0,"chat":{"id":42,"type":"private"},"text":"hi"}}`))
	}))
	defer srv.Close()

	s, err := New("token", time.Second, srv.URL)
	require.NoError(t, err)

	require.NoError(t, s.Send(context.Background(), "42", "hi"))
	assert.Equal(t, "42", got["chat_id"])
	assert.Equal(t, "hi", got["text"])
}

func TestSend_ReportsAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"ok":false,"error_code":403,"description":"Forbidden: bot was blocked by the user"}`))
	}))
	defer srv.Close()

	s, err := New("token", time.Second, srv.URL)
	require.NoError(t, err)

	assert.Error(t, s.Send(context.Background(), "42", "hi"))
}

func TestSend_CancelledContext(t *testing.T) {
	s, err := New("token", time.Second, "http://127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, s.Send(ctx, "42", "hi"), context.Canceled)
}

func TestNew_EmptyToken(t *testing.T) {
	_, err := New(" ", time.Second, "")
	assert.Error(t, err)
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "abc", truncate("abc", 5))

	long := strings.Repeat("я", 10)
	out := truncate(long, 5)
	assert.Equal(t, 5, len([]rune(out)))
	assert.True(t, strings.HasSuffix(out, "…"))
}
