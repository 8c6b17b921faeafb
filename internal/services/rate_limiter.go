package services

import (
	"context"
	"sync"
	"time"

	"finance-ledger/internal/config"

	"golang.org/x/time/rate"
)

const (
	DenyReasonRateLimit = "RATE_LIMIT"
	DenyReasonBlocked   = "BLOCKED"
)

// Decision is the outcome of a rate limit check. Reset is how long the
// subject must wait before the denied cost would be affordable.
type Decision struct {
	Allowed   bool
	Reason    string
	Remaining int
	Reset     time.Duration
}

type bucket struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// TokenBucketLimiter keeps one token bucket per subject. Buckets refill
// continuously at RefillTokens per RefillInterval up to Capacity.
type TokenBucketLimiter struct {
	mu      sync.Mutex
	buckets map[string]*bucket
	limit   rate.Limit
	burst   int
	blocked map[string]struct{}
	idleTTL time.Duration
	now     func() time.Time
}

func NewTokenBucketLimiter(cfg config.RateLimitConfig) *TokenBucketLimiter {
	limit := rate.Inf
	if cfg.RefillInterval > 0 && cfg.RefillTokens > 0 {
		limit = rate.Limit(float64(cfg.RefillTokens) / cfg.RefillInterval.Seconds())
	}

	blocked := make(map[string]struct{}, len(cfg.BlockedSubjects))
	for _, subject := range cfg.BlockedSubjects {
		blocked[subject] = struct{}{}
	}

	idleTTL := cfg.RefillInterval
	if idleTTL < time.Minute {
		idleTTL = time.Minute
	}

	return &TokenBucketLimiter{
		buckets: make(map[string]*bucket),
		limit:   limit,
		burst:   cfg.Capacity,
		blocked: blocked,
		idleTTL: idleTTL,
		now:     time.Now,
	}
}

// Protect spends cost tokens from subject's bucket. A blocked subject is
// denied without touching its bucket.
func (l *TokenBucketLimiter) Protect(ctx context.Context, subject string, cost int) Decision {
	if _, ok := l.blocked[subject]; ok {
		return Decision{Allowed: false, Reason: DenyReasonBlocked}
	}

	now := l.now()
	limiter := l.getBucket(subject, now)

	if limiter.AllowN(now, cost) {
		return Decision{
			Allowed:   true,
			Remaining: int(limiter.TokensAt(now)),
		}
	}

	tokens := limiter.TokensAt(now)
	var reset time.Duration
	if l.limit != rate.Inf && l.limit > 0 {
		reset = time.Duration((float64(cost) - tokens) / float64(l.limit) * float64(time.Second))
	}

	return Decision{
		Allowed:   false,
		Reason:    DenyReasonRateLimit,
		Remaining: int(tokens),
		Reset:     reset,
	}
}

func (l *TokenBucketLimiter) getBucket(subject string, now time.Time) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	b, exists := l.buckets[subject]
	if !exists {
		b = &bucket{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.buckets[subject] = b
	}
	b.lastSeen = now
	return b.limiter
}

// Cleanup evicts buckets idle for longer than a full refill, which are
// indistinguishable from fresh ones.
func (l *TokenBucketLimiter) Cleanup() int {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	evicted := 0
	for subject, b := range l.buckets {
		if now.Sub(b.lastSeen) > l.idleTTL {
			delete(l.buckets, subject)
			evicted++
		}
	}
	return evicted
}

// RunCleanup evicts idle buckets every interval until ctx is done.
func (l *TokenBucketLimiter) RunCleanup(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			l.Cleanup()
		}
	}
}
