package server

import (
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

const (
	limiterMaxClients = 4096
	limiterClientTTL  = 10 * time.Minute
)

type rateClient struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// clientLimiter enforces a per-client token bucket keyed by remote IP.
// The client map is bounded: once full, idle entries past the TTL are
// swept, and the stalest entry is dropped if the sweep frees nothing.
type clientLimiter struct {
	rps        rate.Limit
	burst      int
	maxClients int
	ttl        time.Duration

	mu      sync.Mutex
	clients map[string]*rateClient
}

func newClientLimiter(rps float64, burst int) *clientLimiter {
	if rps <= 0 {
		rps = 10
	}
	if burst <= 0 {
		burst = 20
	}
	return &clientLimiter{
		rps:        rate.Limit(rps),
		burst:      burst,
		maxClients: limiterMaxClients,
		ttl:        limiterClientTTL,
		clients:    make(map[string]*rateClient),
	}
}

func (cl *clientLimiter) limiterFor(key string) *rate.Limiter {
	cl.mu.Lock()
	defer cl.mu.Unlock()

	now := time.Now()
	if c, ok := cl.clients[key]; ok {
		c.lastSeen = now
		return c.limiter
	}

	if len(cl.clients) >= cl.maxClients {
		cl.evict(now)
	}

	c := &rateClient{limiter: rate.NewLimiter(cl.rps, cl.burst), lastSeen: now}
	cl.clients[key] = c
	return c.limiter
}

// evict removes clients idle past the TTL, falling back to the single
// stalest entry so the map never exceeds maxClients. Callers hold mu.
func (cl *clientLimiter) evict(now time.Time) {
	var (
		stalestKey  string
		stalestSeen time.Time
	)
	for key, c := range cl.clients {
		if now.Sub(c.lastSeen) > cl.ttl {
			delete(cl.clients, key)
			continue
		}
		if stalestKey == "" || c.lastSeen.Before(stalestSeen) {
			stalestKey, stalestSeen = key, c.lastSeen
		}
	}
	if len(cl.clients) >= cl.maxClients && stalestKey != "" {
		delete(cl.clients, stalestKey)
	}
}

// middleware rejects requests over the client's budget. RealIP
// middleware must run first so RemoteAddr reflects the client.
func (cl *clientLimiter) middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !cl.limiterFor(r.RemoteAddr).Allow() {
			http.Error(w, `{"error":"rate limit exceeded"}`, http.StatusTooManyRequests)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// rateLimit builds the per-client limiter middleware.
func rateLimit(rps float64, burst int) func(http.Handler) http.Handler {
	return newClientLimiter(rps, burst).middleware
}
