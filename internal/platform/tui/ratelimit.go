package tui

import (
	"net"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// RateLimitConfig configures the per-host connection limiter.
type RateLimitConfig struct {
	PerMinute       float64       // Sessions allowed per minute per remote host
	Burst           int           // Maximum burst size
	CleanupInterval time.Duration // How often to drop idle limiters
}

// DefaultRateLimitConfig allows short bursts of reconnects.
var DefaultRateLimitConfig = RateLimitConfig{
	PerMinute:       6,
	Burst:           3,
	CleanupInterval: 5 * time.Minute,
}

type hostLimiterEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// ConnLimiter rate-limits new SSH sessions per remote host.
type ConnLimiter struct {
	mu       sync.Mutex
	limiters map[string]*hostLimiterEntry
	config   RateLimitConfig
	stopChan chan struct{}
	stopOnce sync.Once
}

// NewConnLimiter creates a limiter and starts its cleanup loop.
// Call Stop to end the loop.
func NewConnLimiter(cfg RateLimitConfig) *ConnLimiter {
	cl := &ConnLimiter{
		limiters: make(map[string]*hostLimiterEntry),
		config:   cfg,
		stopChan: make(chan struct{}),
	}
	if cfg.CleanupInterval > 0 {
		go cl.cleanupLoop()
	}
	return cl
}

// Allow reports whether a new session from addr may start.
func (cl *ConnLimiter) Allow(addr net.Addr) bool {
	host := remoteHost(addr)
	now := time.Now()

	cl.mu.Lock()
	defer cl.mu.Unlock()

	entry, ok := cl.limiters[host]
	if !ok {
		entry = &hostLimiterEntry{
			limiter: rate.NewLimiter(rate.Limit(cl.config.PerMinute/60), cl.config.Burst),
		}
		cl.limiters[host] = entry
	}
	entry.lastSeen = now
	return entry.limiter.AllowN(now, 1)
}

// Stop ends the cleanup loop.
func (cl *ConnLimiter) Stop() {
	cl.stopOnce.Do(func() {
		close(cl.stopChan)
	})
}

func (cl *ConnLimiter) cleanupLoop() {
	ticker := time.NewTicker(cl.config.CleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-cl.stopChan:
			return
		case <-ticker.C:
			cl.cleanup(time.Now().Add(-cl.config.CleanupInterval * 2))
		}
	}
}

// cleanup drops limiters not used since cutoff.
func (cl *ConnLimiter) cleanup(cutoff time.Time) {
	cl.mu.Lock()
	defer cl.mu.Unlock()

	for host, entry := range cl.limiters {
		if entry.lastSeen.Before(cutoff) {
			delete(cl.limiters, host)
		}
	}
}

func remoteHost(addr net.Addr) string {
	if addr == nil {
		return ""
	}
	host, _, err := net.SplitHostPort(addr.String())
	if err != nil {
		return addr.String()
	}
	return host
}
