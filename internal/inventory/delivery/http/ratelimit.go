package http

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"net/netip"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/tair/inventory-information/pkg/logger"
)

// RateLimiter limits requests per client with a sliding window kept in Redis
type RateLimiter struct {
	redis          redis.UniversalClient
	maxRequests    int
	window         time.Duration
	trustedProxies []netip.Prefix
}

// NewRateLimiter creates a new rate limiter. Clients are keyed by peer
// address; X-Forwarded-For is honoured only for requests arriving from one of
// trustedProxies.
func NewRateLimiter(client redis.UniversalClient, maxRequests int, window time.Duration, trustedProxies []netip.Prefix) *RateLimiter {
	return &RateLimiter{
		redis:          client,
		maxRequests:    maxRequests,
		window:         window,
		trustedProxies: trustedProxies,
	}
}

// ParseTrustedProxies accepts IP addresses and CIDR prefixes.
func ParseTrustedProxies(values []string) ([]netip.Prefix, error) {
	prefixes := make([]netip.Prefix, 0, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		if strings.Contains(v, "/") {
			prefix, err := netip.ParsePrefix(v)
			if err != nil {
				return nil, fmt.Errorf("trusted proxy %q: %w", v, err)
			}
			prefixes = append(prefixes, prefix.Masked())
			continue
		}
		addr, err := netip.ParseAddr(v)
		if err != nil {
			return nil, fmt.Errorf("trusted proxy %q: %w", v, err)
		}
		addr = addr.Unmap()
		prefixes = append(prefixes, netip.PrefixFrom(addr, addr.BitLen()))
	}
	return prefixes, nil
}

// Middleware rejects clients over the limit with 429. Requests are let
// through when Redis cannot be reached.
func (rl *RateLimiter) Middleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			identifier := rl.clientIdentifier(r)

			allowed, remaining, resetTime, err := rl.checkLimit(r.Context(), identifier)
			if err != nil {
				logger.Error(r.Context()).
					Err(err).
					Str("identifier", identifier).
					Msg("Rate limiter error")
				next.ServeHTTP(w, r)
				return
			}

			w.Header().Set("X-RateLimit-Limit", strconv.Itoa(rl.maxRequests))
			w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(remaining))
			w.Header().Set("X-RateLimit-Reset", strconv.FormatInt(resetTime.Unix(), 10))

			if !allowed {
				logger.Warn(r.Context()).
					Str("identifier", identifier).
					Int("limit", rl.maxRequests).
					Msg("Rate limit exceeded")

				w.Header().Set("Retry-After", strconv.Itoa(int(rl.window.Seconds())))
				respondError(w, http.StatusTooManyRequests,
					fmt.Sprintf("Too many requests. Try again in %v", time.Until(resetTime).Round(time.Second)))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func (rl *RateLimiter) checkLimit(ctx context.Context, identifier string) (bool, int, time.Time, error) {
	key := "ratelimit:" + identifier
	now := time.Now()
	windowStart := now.Add(-rl.window)

	pipe := rl.redis.Pipeline()
	pipe.ZRemRangeByScore(ctx, key, "0", strconv.FormatInt(windowStart.UnixNano(), 10))
	countCmd := pipe.ZCard(ctx, key)
	pipe.ZAdd(ctx, key, redis.Z{
		Score:  float64(now.UnixNano()),
		Member: uuid.NewString(),
	})
	pipe.Expire(ctx, key, rl.window+time.Minute)

	if _, err := pipe.Exec(ctx); err != nil {
		return false, 0, time.Time{}, err
	}

	count := int(countCmd.Val())
	remaining := rl.maxRequests - count - 1
	if remaining < 0 {
		remaining = 0
	}

	return count < rl.maxRequests, remaining, now.Add(rl.window), nil
}

// clientIdentifier returns the peer address. Behind a trusted proxy it walks
// X-Forwarded-For from the right and returns the first untrusted hop.
func (rl *RateLimiter) clientIdentifier(r *http.Request) string {
	peer := remoteHost(r.RemoteAddr)
	if !rl.trusted(peer) {
		return peer
	}

	hops := strings.Split(r.Header.Get("X-Forwarded-For"), ",")
	for i := len(hops) - 1; i >= 0; i-- {
		hop := strings.TrimSpace(hops[i])
		if hop == "" {
			continue
		}
		if !rl.trusted(hop) {
			return hop
		}
	}
	return peer
}

func (rl *RateLimiter) trusted(host string) bool {
	addr, err := netip.ParseAddr(host)
	if err != nil {
		return false
	}
	addr = addr.Unmap()
	for _, p := range rl.trustedProxies {
		if p.Contains(addr) {
			return true
		}
	}
	return false
}

func remoteHost(remoteAddr string) string {
	host, _, err := net.SplitHostPort(remoteAddr)
	if err != nil {
		return remoteAddr
	}
	return host
}
