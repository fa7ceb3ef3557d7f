package ratelimit

import (
	"errors"
	"fmt"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"
)

var ErrLimitExceeded = errors.New("rate limit exceeded")

const (
	defaultMaxKeys = 1000
	defaultTTL     = 5 * time.Minute
)

// Config configures a Limiter.
type Config struct {
	RequestsPerMin int
	MaxKeys        int           // distinct keys tracked before LRU eviction
	TTL            time.Duration // idle keys are forgotten after TTL
}

// Limiter is a per-key token bucket limiter. Buckets live in an expiring
// LRU so idle callers do not accumulate.
type Limiter struct {
	limiters *expirable.LRU[string, *rate.Limiter]
	rate     rate.Limit
	burst    int
}

// New creates a Limiter. RequestsPerMin must be positive.
func New(cfg Config) (*Limiter, error) {
	if cfg.RequestsPerMin <= 0 {
		return nil, fmt.Errorf("ratelimit: requests per minute must be positive, got %d", cfg.RequestsPerMin)
	}
	if cfg.MaxKeys <= 0 {
		cfg.MaxKeys = defaultMaxKeys
	}
	if cfg.TTL <= 0 {
		cfg.TTL = defaultTTL
	}

	burst := cfg.RequestsPerMin / 10
	if burst < 1 {
		burst = 1
	}

	return &Limiter{
		limiters: expirable.NewLRU[string, *rate.Limiter](cfg.MaxKeys, nil, cfg.TTL),
		rate:     rate.Limit(float64(cfg.RequestsPerMin) / 60.0), // per second
		burst:    burst,
	}, nil
}

// Allow consumes one token for key.
func (l *Limiter) Allow(key string) error {
	limiter, ok := l.limiters.Get(key)
	if !ok {
		limiter = rate.NewLimiter(l.rate, l.burst)
		l.limiters.Add(key, limiter)
	}

	if !limiter.Allow() {
		return fmt.Errorf("%w for %s", ErrLimitExceeded, key)
	}
	return nil
}

// Len reports how many keys are tracked.
func (l *Limiter) Len() int {
	return l.limiters.Len()
}
