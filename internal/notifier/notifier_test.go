package notifier

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"SignalSentinel/internal/collector"
	"SignalSentinel/internal/pipeline"
)

const sampleCSV = `Date,Open,High,Low,Close,Volume
2024-01-01,42000,42500,41800,42300,31250
2024-01-02,42300,43000,42200,42850,28900
2024-01-03,42850,42900,42400,42600,25400
2024-01-04,42600,42700,41900,42100,33100
`

func sampleResult(t *testing.T) *pipeline.Result {
	t.Helper()
	series, err := collector.ParseCSV(strings.NewReader(sampleCSV), "BTC<USD>")
	require.NoError(t, err)
	res, err := pipeline.Analyze(series)
	require.NoError(t, err)
	return res
}

func newTestNotifier(url string) *TelegramNotifier {
	n := NewTelegramNotifier("TOKEN", "42", "")
	n.APIBase = url
	n.Backoff = time.Millisecond
	return n
}

func TestFormatReport(t *testing.T) {
	msg := FormatReport(sampleResult(t))
	assert.Contains(t, msg, "BTC&lt;USD&gt;")
	assert.Contains(t, msg, "2024-01-04")
	assert.Contains(t, msg, "<b>Volatility Regime:</b> Medium")
	assert.Contains(t, msg, "<b>Trend Bias:</b> Bearish")
	assert.Contains(t, msg, "<b>Momentum (RSI 3):</b> 26.8 Oversold")
	assert.Contains(t, msg, "<i>Paper trading only. No financial advice.</i>")
}

func TestFormatError(t *testing.T) {
	assert.Contains(t, FormatError(errors.New("a < b")), "a &lt; b")
}

func TestSend(t *testing.T) {
	var got map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/botTOKEN/sendMessage", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Write([]byte(`{"ok":true}`))
	}))
	defer srv.Close()

	require.NoError(t, newTestNotifier(srv.URL).Send(context.Background(), "hello"))
	assert.Equal(t, "42", got["chat_id"])
	assert.Equal(t, "hello", got["text"])
	assert.Equal(t, "HTML", got["parse_mode"])
}

func TestSendWithRetry(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) < 3 {
			http.Error(w, "busy", http.StatusTooManyRequests)
			return
		}
		w.Write([]byte(`{"ok":true}`))
	}))
	defer srv.Close()

	require.NoError(t, newTestNotifier(srv.URL).SendWithRetry(context.Background(), "hi", 3))
	assert.Equal(t, int32(3), atomic.LoadInt32(&calls))
}

func TestSendWithRetry_Exhausted(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		http.Error(w, "down", http.StatusInternalServerError)
	}))
	defer srv.Close()

	err := newTestNotifier(srv.URL).SendWithRetry(context.Background(), "hi", 2)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "all 3 retries exhausted")
	assert.Equal(t, int32(3), atomic.LoadInt32(&calls))
}

func TestPoll_DispatchesCommands(t *testing.T) {
	var replies []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/botTOKEN/getUpdates":
			assert.Equal(t, "7", r.URL.Query().Get("offset"))
			fmt.Fprint(w, `{"ok":true,"result":[
				{"update_id":7,"message":{"text":" /snapshot "}},
				{"update_id":8},
				{"update_id":9,"message":{"text":"/unknown"}}]}`)
		case "/botTOKEN/sendMessage":
			var body map[string]string
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			replies = append(replies, body["text"])
			w.Write([]byte(`{"ok":true}`))
		}
	}))
	defer srv.Close()

	n := newTestNotifier(srv.URL)
	var seen []string
	handler := func(_ context.Context, cmd string) string {
		seen = append(seen, cmd)
		if cmd == "/snapshot" {
			return "snap"
		}
		return ""
	}
	next, err := n.poll(context.Background(), srv.Client(), 7, handler)
	require.NoError(t, err)
	assert.Equal(t, 10, next)
	assert.Equal(t, []string{"/snapshot", "/unknown"}, seen)
	assert.Equal(t, []string{"snap"}, replies)
}

func TestPoll_APIErrorKeepsOffset(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
	}{
		{"conflict", http.StatusConflict, `{"ok":false,"error_code":409,"description":"Conflict: terminated by other getUpdates request"}`},
		{"unauthorized", http.StatusUnauthorized, `{"ok":false,"error_code":401,"description":"Unauthorized"}`},
		{"not ok with 200", http.StatusOK, `{"ok":false,"description":"Bad Request"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				fmt.Fprint(w, tt.body)
			}))
			defer srv.Close()

			called := false
			handler := func(context.Context, string) string { called = true; return "" }
			next, err := newTestNotifier(srv.URL).poll(context.Background(), srv.Client(), 5, handler)
			require.Error(t, err)
			assert.Equal(t, 5, next)
			assert.False(t, called)
		})
	}
}
