package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestClientIdentifier(t *testing.T) {
	proxies, err := ParseTrustedProxies([]string{"10.0.0.0/8", "192.168.1.1"})
	require.NoError(t, err)
	behindProxy := NewRateLimiter(nil, 1, time.Minute, proxies)
	direct := NewRateLimiter(nil, 1, time.Minute, nil)

	tests := []struct {
		name      string
		limiter   *RateLimiter
		remote    string
		forwarded string
		want      string
	}{
		{"peer address", direct, "10.0.0.5:51234", "", "10.0.0.5"},
		{"forwarded header ignored without trusted proxies", direct, "198.51.100.9:4000", "203.0.113.7", "198.51.100.9"},
		{"forwarded header ignored from untrusted peer", behindProxy, "198.51.100.9:4000", "203.0.113.7", "198.51.100.9"},
		{"trusted proxy", behindProxy, "10.0.0.5:51234", "203.0.113.7", "203.0.113.7"},
		{"rightmost untrusted hop", behindProxy, "10.0.0.5:51234", "1.1.1.1, 203.0.113.7, 192.168.1.1", "203.0.113.7"},
		{"trusted proxy without header", behindProxy, "10.0.0.5:51234", "", "10.0.0.5"},
		{"no port", direct, "10.0.0.5", "", "10.0.0.5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/inventory/1", nil)
			r.RemoteAddr = tt.remote
			if tt.forwarded != "" {
				r.Header.Set("X-Forwarded-For", tt.forwarded)
			}
			assert.Equal(t, tt.want, tt.limiter.clientIdentifier(r))
		})
	}
}

func TestParseTrustedProxies(t *testing.T) {
	prefixes, err := ParseTrustedProxies([]string{"10.1.2.3/8", " 192.168.1.1 ", "", "::1"})
	require.NoError(t, err)
	require.Len(t, prefixes, 3)
	assert.Equal(t, "10.0.0.0/8", prefixes[0].String())
	assert.Equal(t, "192.168.1.1/32", prefixes[1].String())
	assert.Equal(t, "::1/128", prefixes[2].String())

	_, err = ParseTrustedProxies([]string{"not-an-ip"})
	assert.Error(t, err)
}

func TestRateLimiter_FailsOpenWithoutRedis(t *testing.T) {
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		MaxRetries:  -1,
		DialTimeout: 100 * time.Millisecond,
	})
	t.Cleanup(func() { client.Close() })
	handler := NewRateLimiter(client, 1, time.Minute, nil).Middleware()(okHandler())

	for i := 0; i < 3; i++ {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/inventory/1", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
	}
}

func redisForRateLimit(t *testing.T) *redis.Client {
	t.Helper()
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		addr = "localhost:6379"
	}
	client := redis.NewClient(&redis.Options{Addr: addr})
	if err := client.Ping(context.Background()).Err(); err != nil {
		t.Skipf("Redis not available: %v", err)
	}
	t.Cleanup(func() { client.Close() })
	return client
}

// send issues one request from remote, optionally carrying X-Forwarded-For.
func send(handler http.Handler, remote, forwarded string) *httptest.ResponseRecorder {
	r := httptest.NewRequest(http.MethodGet, "/inventory/1", nil)
	r.RemoteAddr = remote + ":40000"
	if forwarded != "" {
		r.Header.Set("X-Forwarded-For", forwarded)
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, r)
	return rec
}

func TestRateLimiter_RejectsOverLimit(t *testing.T) {
	client := redisForRateLimit(t)
	handler := NewRateLimiter(client, 2, time.Minute, nil).Middleware()(okHandler())
	remote := "198.18.0.1"
	client.Del(context.Background(), "ratelimit:"+remote)
	t.Cleanup(func() { client.Del(context.Background(), "ratelimit:"+remote) })

	first := send(handler, remote, "")
	require.Equal(t, http.StatusOK, first.Code)
	assert.Equal(t, "2", first.Header().Get("X-RateLimit-Limit"))
	assert.Equal(t, "1", first.Header().Get("X-RateLimit-Remaining"))
	require.Equal(t, http.StatusOK, send(handler, remote, "").Code)

	rejected := send(handler, remote, "")
	assert.Equal(t, http.StatusTooManyRequests, rejected.Code)
	assert.Equal(t, "0", rejected.Header().Get("X-RateLimit-Remaining"))
	assert.Contains(t, rejected.Body.String(), "Too many requests")
}

func TestRateLimiter_SpoofedForwardedForKeepsCount(t *testing.T) {
	client := redisForRateLimit(t)
	handler := NewRateLimiter(client, 2, time.Minute, nil).Middleware()(okHandler())
	remote := "198.18.0.2"
	client.Del(context.Background(), "ratelimit:"+remote)
	t.Cleanup(func() { client.Del(context.Background(), "ratelimit:"+remote) })

	require.Equal(t, http.StatusOK, send(handler, remote, "203.0.113."+uuid.NewString()[:2]).Code)
	require.Equal(t, http.StatusOK, send(handler, remote, "203.0.113."+uuid.NewString()[:2]).Code)

	rejected := send(handler, remote, "203.0.113."+uuid.NewString()[:2])
	assert.Equal(t, http.StatusTooManyRequests, rejected.Code)
}
