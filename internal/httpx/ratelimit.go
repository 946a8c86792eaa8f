package httpx

import (
	"context"
	"log"
	"net"
	"net/http"
	"strconv"
	"time"
)

// RateLimiter is satisfied by *redisx.Limiter.
type RateLimiter interface {
	Allow(ctx context.Context, key string) (bool, time.Duration, error)
}

// RateLimit limits requests per client IP. Limiter errors let the request through.
func RateLimit(l RateLimiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ok, retry, err := l.Allow(r.Context(), clientIP(r))
			if err != nil {
				log.Printf("rate limiter unavailable: %v", err)
				next.ServeHTTP(w, r)
				return
			}
			if !ok {
				w.Header().Set("Retry-After", strconv.Itoa(int(retry.Round(time.Second).Seconds())))
				writeError(w, http.StatusTooManyRequests, "Too many orders, please try again later")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

type peerKey struct{}

// PeerAddr keeps the connection's own remote address. It must run before
// middleware.RealIP, which rewrites RemoteAddr from client-supplied headers.
func PeerAddr(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), peerKey{}, r.RemoteAddr)))
	})
}

// clientIP is the rate-limit key: the TCP peer, never X-Forwarded-For / X-Real-IP.
func clientIP(r *http.Request) string {
	addr, ok := r.Context().Value(peerKey{}).(string)
	if !ok {
		addr = r.RemoteAddr
	}
	if host, _, err := net.SplitHostPort(addr); err == nil {
		return host
	}
	return addr
}
