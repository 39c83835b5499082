// Package ratelimit provides per-key token buckets for user facing endpoints.
package ratelimit

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

const idleEviction = 10 * time.Minute

type entry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// KeyedLimiter keeps one token bucket per key, e.g. per user id.
// Buckets idle for longer than ten minutes are evicted.
type KeyedLimiter struct {
	mu      sync.Mutex
	limit   rate.Limit
	burst   int
	entries map[string]*entry
	now     func() time.Time
	sweptAt time.Time
}

// NewPerMinute creates a limiter that allows perMinute events per key per minute,
// all of which may be spent at once.
func NewPerMinute(perMinute int) *KeyedLimiter {
	if perMinute < 1 {
		perMinute = 1
	}
	return &KeyedLimiter{
		limit:   rate.Every(time.Minute / time.Duration(perMinute)),
		burst:   perMinute,
		entries: make(map[string]*entry),
		now:     time.Now,
	}
}

// Allow reports whether one more event for key is allowed now and consumes a token if so.
func (l *KeyedLimiter) Allow(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	l.evictIdle(now)

	e, ok := l.entries[key]
	if !ok {
		e = &entry{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.entries[key] = e
	}
	e.lastSeen = now
	return e.limiter.AllowN(now, 1)
}

// Len returns the number of tracked keys.
func (l *KeyedLimiter) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.entries)
}

func (l *KeyedLimiter) evictIdle(now time.Time) {
	if now.Sub(l.sweptAt) < idleEviction {
		return
	}
	for key, e := range l.entries {
		if now.Sub(e.lastSeen) > idleEviction {
			delete(l.entries, key)
		}
	}
	l.sweptAt = now
}
