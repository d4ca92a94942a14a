package middleware

import (
	"context"
	"net"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// RateLimitedObserver cuenta rechazos (métricas). Puede ser nil.
type RateLimitedObserver interface {
	ObserveRateLimited()
}

// LimiterStore mantiene un token-bucket por cliente y limpia los inactivos.
type LimiterStore struct {
	mu      sync.Mutex
	entries map[string]*limiterEntry
	rps     rate.Limit
	burst   int
	idleTTL time.Duration
	now     func() time.Time
}

type limiterEntry struct {
	lim      *rate.Limiter
	lastSeen time.Time
}

func NewLimiterStore(rps float64, burst int) *LimiterStore {
	if burst <= 0 {
		burst = 1
	}
	return &LimiterStore{
		entries: make(map[string]*limiterEntry),
		rps:     rate.Limit(rps),
		burst:   burst,
		idleTTL: 15 * time.Minute,
		now:     time.Now,
	}
}

func (s *LimiterStore) Allow(key string) bool {
	now := s.now()

	s.mu.Lock()
	ent, ok := s.entries[key]
	if !ok {
		ent = &limiterEntry{lim: rate.NewLimiter(s.rps, s.burst)}
		s.entries[key] = ent
	}
	ent.lastSeen = now
	s.mu.Unlock()

	return ent.lim.AllowN(now, 1)
}

func (s *LimiterStore) Cleanup() {
	cutoff := s.now().Add(-s.idleTTL)

	s.mu.Lock()
	defer s.mu.Unlock()

	for k, ent := range s.entries {
		if ent.lastSeen.Before(cutoff) {
			delete(s.entries, k)
		}
	}
}

// StartJanitor limpia periódicamente hasta que se cancele ctx.
func (s *LimiterStore) StartJanitor(ctx context.Context, every time.Duration) {
	if every <= 0 {
		return
	}
	t := time.NewTicker(every)
	go func() {
		defer t.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-t.C:
				s.Cleanup()
			}
		}
	}()
}

func (s *LimiterStore) size() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

// KeyFunc identifica al cliente de un request.
type KeyFunc func(r *http.Request) string

// ClientKeyFunc usa la IP de la conexión. Con trustProxy toma el primer IP de
// X-Forwarded-For (o X-Real-IP); solo activarlo detrás de un proxy propio,
// si no cualquier cliente elige su propia key.
func ClientKeyFunc(trustProxy bool) KeyFunc {
	return func(r *http.Request) string {
		if trustProxy {
			if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
				if ip := strings.TrimSpace(strings.Split(xff, ",")[0]); ip != "" {
					return ip
				}
			}
			if ip := strings.TrimSpace(r.Header.Get("X-Real-IP")); ip != "" {
				return ip
			}
		}

		addr := strings.TrimSpace(r.RemoteAddr)
		if host, _, err := net.SplitHostPort(addr); err == nil && host != "" {
			return host
		}
		if addr != "" {
			return addr
		}
		return "unknown"
	}
}

// RateLimit rechaza con 429 cuando el cliente agota su bucket.
// keyFn nil => ClientKeyFunc(false).
func RateLimit(store *LimiterStore, keyFn KeyFunc, obs RateLimitedObserver) func(http.Handler) http.Handler {
	if keyFn == nil {
		keyFn = ClientKeyFunc(false)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if store.Allow(keyFn(r)) {
				next.ServeHTTP(w, r)
				return
			}

			if obs != nil {
				obs.ObserveRateLimited()
			}
			w.Header().Set("Retry-After", strconv.Itoa(1))
			http.Error(w, http.StatusText(http.StatusTooManyRequests), http.StatusTooManyRequests)
		})
	}
}
