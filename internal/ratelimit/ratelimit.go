// Package ratelimit bounds request volume per client identity. Reads and
// publishes carry separate token buckets because writes are the scarcer
// resource.
package ratelimit

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

type Class int

const (
	Read Class = iota
	Publish
)

type Limits struct {
	ReadsPerMinute     int
	PublishesPerMinute int
	Burst              int
}

// Limiter manages per-identity token buckets. Identity is typically the
// client IP.
type Limiter struct {
	visitors map[string]*visitor
	mu       sync.Mutex
	limits   Limits
	now      func() time.Time
}

type visitor struct {
	read     *rate.Limiter
	publish  *rate.Limiter
	lastSeen time.Time
}

func New(limits Limits) *Limiter {
	l := &Limiter{
		visitors: make(map[string]*visitor),
		limits:   limits,
		now:      time.Now,
	}
	go l.cleanupVisitors()
	return l
}

func perMinute(n int) rate.Limit {
	return rate.Limit(float64(n) / 60.0)
}

func (l *Limiter) getVisitor(identity string) *visitor {
	l.mu.Lock()
	defer l.mu.Unlock()

	v, exists := l.visitors[identity]
	if !exists {
		v = &visitor{
			read:    rate.NewLimiter(perMinute(l.limits.ReadsPerMinute), l.limits.Burst),
			publish: rate.NewLimiter(perMinute(l.limits.PublishesPerMinute), l.limits.Burst),
		}
		l.visitors[identity] = v
	}
	v.lastSeen = l.now()
	return v
}

// Allow reports whether identity may perform one more request of the given
// class. A false return consumes nothing.
func (l *Limiter) Allow(identity string, class Class) bool {
	v := l.getVisitor(identity)
	if class == Publish {
		return v.publish.Allow()
	}
	return v.read.Allow()
}

// cleanupVisitors evicts identities idle for several minutes so the visitor
// map does not grow without bound.
func (l *Limiter) cleanupVisitors() {
	for {
		time.Sleep(1 * time.Minute)
		l.mu.Lock()
		for identity, v := range l.visitors {
			if l.now().Sub(v.lastSeen) > 3*time.Minute {
				delete(l.visitors, identity)
			}
		}
		l.mu.Unlock()
	}
}
