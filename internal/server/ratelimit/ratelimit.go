// Package ratelimit provides per-client token bucket rate limiting.
package ratelimit

import (
	"strings"
	"sync"
	"time"
)

// bucket is a token bucket for a single client+endpoint pair. Tokens refill
// continuously at rate tokens per second, up to capacity.
type bucket struct {
	mu       sync.Mutex
	capacity float64
	rate     float64
	tokens   float64
	updated  time.Time // last refill
	seen     time.Time // last request, used for eviction
}

func newBucket(capacity int, rate float64) *bucket {
	now := time.Now()
	return &bucket{
		capacity: float64(capacity),
		rate:     rate,
		tokens:   float64(capacity),
		updated:  now,
		seen:     now,
	}
}

// take refills the bucket and consumes one token if available. It returns
// whether the request is allowed, the tokens remaining, and the time at
// which the bucket will be full again.
func (b *bucket) take() (allowed bool, remaining int, resetAt time.Time) {
	b.mu.Lock()
	defer b.mu.Unlock()

	now := time.Now()
	b.tokens += now.Sub(b.updated).Seconds() * b.rate
	if b.tokens > b.capacity {
		b.tokens = b.capacity
	}
	b.updated = now
	b.seen = now

	if b.tokens >= 1.0 {
		b.tokens -= 1.0
		allowed = true
	}

	remaining = int(b.tokens)
	resetAt = now
	if b.tokens < b.capacity {
		deficit := b.capacity - b.tokens
		resetAt = now.Add(time.Duration(deficit / b.rate * float64(time.Second)))
	}
	return allowed, remaining, resetAt
}

// Info reports the rate limit state for a single decision.
type Info struct {
	Allowed    bool
	Limit      int
	Remaining  int
	ResetAt    time.Time
	RetryAfter time.Duration
}

// Limiter enforces per-client, per-endpoint rate limits.
type Limiter struct {
	mu      sync.Mutex
	buckets map[string]*bucket
	config  *Config
	stop    chan struct{}
	ticker  *time.Ticker
}

// NewLimiter creates a limiter from the given configuration and starts its
// bucket eviction loop.
func NewLimiter(config *Config) *Limiter {
	if config == nil {
		config = defaultConfig()
	}

	l := &Limiter{
		buckets: make(map[string]*bucket),
		config:  config,
	}
	if config.Enabled && config.EvictInterval > 0 {
		l.ticker = time.NewTicker(config.EvictInterval)
		l.stop = make(chan struct{})
		go l.evictLoop()
	}
	return l
}

// Allow decides whether a request from clientID against the given path and
// method may proceed.
func (l *Limiter) Allow(clientID, path, method string) (bool, Info) {
	if !l.config.Enabled || l.config.Exempt[clientID] {
		return true, Info{Allowed: true}
	}
	if l.config.Blocked[clientID] {
		return false, Info{}
	}

	rule := l.match(path, method)
	if rule.Limit <= 0 {
		return true, Info{Allowed: true}
	}

	key := clientID + ":" + method + ":" + rule.Prefix
	b := l.bucket(key, rule)

	allowed, remaining, resetAt := b.take()
	info := Info{
		Allowed:   allowed,
		Limit:     rule.Limit,
		Remaining: remaining,
		ResetAt:   resetAt,
	}
	if !allowed {
		if wait := time.Until(resetAt); wait > 0 {
			info.RetryAfter = wait
		}
	}
	return allowed, info
}

// match finds the rule governing a request. Health checks are never limited.
// Rules match on exact path first, then on prefix for rules ending in "/".
func (l *Limiter) match(path, method string) Rule {
	if path == "/health" && method == "GET" {
		return Rule{}
	}
	for _, r := range l.config.Rules {
		if r.Method == method && r.Prefix == path {
			return r
		}
	}
	for _, r := range l.config.Rules {
		if r.Method == method && strings.HasSuffix(r.Prefix, "/") && strings.HasPrefix(path, r.Prefix) {
			return r
		}
	}
	return Rule{
		Limit:  l.config.DefaultLimit,
		Window: l.config.DefaultWindow,
	}
}

func (l *Limiter) bucket(key string, rule Rule) *bucket {
	l.mu.Lock()
	defer l.mu.Unlock()

	if b, ok := l.buckets[key]; ok {
		return b
	}
	burst := rule.Burst
	if burst <= 0 {
		burst = rule.Limit
	}
	b := newBucket(burst, float64(rule.Limit)/rule.Window.Seconds())
	l.buckets[key] = b
	return b
}

func (l *Limiter) evictLoop() {
	for {
		select {
		case <-l.ticker.C:
			l.evict()
		case <-l.stop:
			return
		}
	}
}

// evict drops buckets idle for longer than an hour.
func (l *Limiter) evict() {
	cutoff := time.Now().Add(-time.Hour)

	l.mu.Lock()
	defer l.mu.Unlock()
	for key, b := range l.buckets {
		b.mu.Lock()
		idle := b.seen.Before(cutoff)
		b.mu.Unlock()
		if idle {
			delete(l.buckets, key)
		}
	}
}

// Stop terminates the eviction loop.
func (l *Limiter) Stop() {
	if l.ticker != nil {
		l.ticker.Stop()
	}
	if l.stop != nil {
		close(l.stop)
	}
}
