package middleware

import (
	"net"
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// limiterIdleTTL is how long a client's limiter survives without requests.
const limiterIdleTTL = 10 * time.Minute

type clientEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

type ClientLimiter struct {
	limiters  map[string]*clientEntry
	mu        sync.Mutex
	r         rate.Limit
	b         int
	ttl       time.Duration
	lastSweep time.Time
	now       func() time.Time
}

func NewClientRateLimiter(r rate.Limit, b int) *ClientLimiter {
	return &ClientLimiter{
		limiters:  make(map[string]*clientEntry),
		r:         r,
		b:         b,
		ttl:       limiterIdleTTL,
		lastSweep: time.Now(),
		now:       time.Now,
	}
}

func (u *ClientLimiter) getLimiter(key string) *rate.Limiter {
	u.mu.Lock()
	defer u.mu.Unlock()

	now := u.now()
	if now.Sub(u.lastSweep) >= u.ttl {
		u.sweep(now)
	}

	entry, exists := u.limiters[key]
	if !exists {
		entry = &clientEntry{limiter: rate.NewLimiter(u.r, u.b)}
		u.limiters[key] = entry
	}
	entry.lastSeen = now
	return entry.limiter
}

// sweep drops limiters idle for longer than ttl. Callers hold mu.
func (u *ClientLimiter) sweep(now time.Time) {
	for key, entry := range u.limiters {
		if now.Sub(entry.lastSeen) >= u.ttl {
			delete(u.limiters, key)
		}
	}
	u.lastSweep = now
}

// RateLimitMiddleware throttles money-moving routes per operator, or per
// client IP for unauthenticated callers.
func RateLimitMiddleware(limiter *ClientLimiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var key string
			if operatorID, ok := GetOperatorID(r.Context()); ok {
				key = "operator:" + operatorID
			} else {
				ip, _, err := net.SplitHostPort(r.RemoteAddr)
				if err != nil {
					ip = r.RemoteAddr
				}
				key = "ip:" + ip
			}
			if !limiter.getLimiter(key).Allow() {
				w.Header().Set("Retry-After", "1")
				jsonError(w, "too many requests", http.StatusTooManyRequests)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
