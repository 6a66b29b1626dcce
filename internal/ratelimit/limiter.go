package ratelimit

import (
	"context"
	"fmt"

	"golang.org/x/time/rate"
)

// Limiter wraps rate.Limiter with a name for logging/debugging.
type Limiter struct {
	limiter *rate.Limiter
	name    string
}

// New creates a rate limiter that allows one request per interval with no
// bursting, so consecutive grants are at least interval apart.
func New(name string, interval rate.Limit) *Limiter {
	return &Limiter{
		limiter: rate.NewLimiter(interval, 1),
		name:    name,
	}
}

// NewWithBurst creates a rate limiter with a custom burst size.
func NewWithBurst(name string, interval rate.Limit, burst int) *Limiter {
	return &Limiter{
		limiter: rate.NewLimiter(interval, burst),
		name:    name,
	}
}

// Wait blocks until the rate limiter allows a request to proceed.
// Returns an error only if the context is cancelled.
func (l *Limiter) Wait(ctx context.Context) error {
	if err := l.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limit wait for %s: %w", l.name, err)
	}
	return nil
}

// Allow reports whether a request can proceed without blocking.
// Use this for non-blocking checks; prefer Wait for most cases.
func (l *Limiter) Allow() bool {
	return l.limiter.Allow()
}

// Name returns the name of this rate limiter.
func (l *Limiter) Name() string {
	return l.name
}
