package ratelimit

import (
	"context"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// DefaultInterval is the minimum spacing between requests to one domain.
const DefaultInterval = 2 * time.Second

// DomainLimiter paces requests per network domain. Grants for different
// domains are independent; grants for the same domain are serialized with at
// least the configured interval between them. It is safe for concurrent use
// and is the only mutable state shared between store crawls.
type DomainLimiter struct {
	mu       sync.Mutex
	limiters map[string]*Limiter
	interval time.Duration
}

// NewDomainLimiter creates a limiter enforcing the given minimum interval
// between requests to any single domain. A non-positive interval falls back
// to DefaultInterval.
func NewDomainLimiter(interval time.Duration) *DomainLimiter {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &DomainLimiter{
		limiters: make(map[string]*Limiter),
		interval: interval,
	}
}

// Wait blocks until a request to the given domain may proceed. It never
// fails except on context cancellation.
func (d *DomainLimiter) Wait(ctx context.Context, domain string) error {
	return d.limiterFor(domain).Wait(ctx)
}

func (d *DomainLimiter) limiterFor(domain string) *Limiter {
	d.mu.Lock()
	defer d.mu.Unlock()
	l, ok := d.limiters[domain]
	if !ok {
		l = New(domain, rate.Every(d.interval))
		d.limiters[domain] = l
	}
	return l
}
