package middleware

import (
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"time"
)

// otpLimiter throttles login-code traffic per client IP. The OTP endpoints
// are the only unauthenticated writes, so they get a tight budget.
type otpLimiter struct {
	mu     sync.Mutex
	seen   map[string][]time.Time
	limit  int
	window time.Duration
}

func newOTPLimiter(limit int, window time.Duration) *otpLimiter {
	return &otpLimiter{
		seen:   make(map[string][]time.Time),
		limit:  limit,
		window: window,
	}
}

func (l *otpLimiter) allow(ip string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now()
	cutoff := now.Add(-l.window)

	var recent []time.Time
	for _, at := range l.seen[ip] {
		if at.After(cutoff) {
			recent = append(recent, at)
		}
	}

	if len(recent) >= l.limit {
		l.seen[ip] = recent
		return false
	}
	l.seen[ip] = append(recent, now)

	// Drop idle IPs once the map gets large; cheaper than a background
	// sweeper for this traffic level.
	if len(l.seen) > 1024 {
		l.sweep(cutoff)
	}

	return true
}

func (l *otpLimiter) sweep(cutoff time.Time) {
	for ip, times := range l.seen {
		idle := true
		for _, at := range times {
			if at.After(cutoff) {
				idle = false
				break
			}
		}
		if idle {
			delete(l.seen, ip)
		}
	}
}

// RateLimitAuth guards the OTP endpoints: 5 requests per 15 minutes per IP.
func RateLimitAuth() func(http.HandlerFunc) http.HandlerFunc {
	limiter := newOTPLimiter(5, 15*time.Minute)

	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			ip := clientIP(r)

			if !limiter.allow(ip) {
				slog.Warn("rate limit exceeded", "ip", ip, "path", r.URL.Path)
				writeJSONError(w, http.StatusTooManyRequests, "RATE_LIMITED", "Too many requests. Please try again later.")
				return
			}

			next(w, r)
		}
	}
}

// clientIP prefers proxy headers over the socket address.
func clientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		return strings.TrimSpace(strings.SplitN(xff, ",", 2)[0])
	}
	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return strings.TrimSpace(xri)
	}

	host := r.RemoteAddr
	if idx := strings.LastIndex(host, ":"); idx != -1 {
		host = host[:idx]
	}
	return host
}
