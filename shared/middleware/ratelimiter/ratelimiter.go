// Package ratelimiter implements per-key token buckets. A bucket that is not
// touched for the expiration time is dropped, so idle keys do not accumulate.
package ratelimiter

import (
	"sync"
	"time"
)

// bucket is a token bucket for one key
type bucket struct {
	mu         sync.Mutex
	tokens     float64
	capacity   float64
	rate       float64
	lastRefill time.Time
	timer      *time.Timer
}

type UserRateLimiter struct {
	mu             sync.RWMutex
	buckets        map[string]*bucket
	rate           float64 // tokens per second
	capacity       float64
	expirationTime time.Duration
}

func New(rate float64, capacity float64, expirationTime time.Duration) *UserRateLimiter {
	return &UserRateLimiter{
		buckets:        make(map[string]*bucket),
		rate:           rate,
		capacity:       capacity,
		expirationTime: expirationTime,
	}
}

// PerMinute allows n requests per minute with a burst of n.
func PerMinute(n float64) *UserRateLimiter {
	return New(n/60, n, time.Hour)
}

// PerSecond allows n requests per second with a burst of n.
func PerSecond(n float64) *UserRateLimiter {
	return New(n, n, time.Hour)
}

func (u *UserRateLimiter) expire(key string, b *bucket) {
	u.mu.Lock()
	if u.buckets[key] == b {
		delete(u.buckets, key)
	}
	u.mu.Unlock()
}

// touch pushes the bucket expiry forward; caller holds b.mu
func (u *UserRateLimiter) touch(key string, b *bucket) {
	if b.timer != nil {
		b.timer.Stop()
	}
	b.timer = time.AfterFunc(u.expirationTime, func() { u.expire(key, b) })
}

func (u *UserRateLimiter) getBucket(key string) *bucket {
	u.mu.RLock()
	b, exists := u.buckets[key]
	u.mu.RUnlock()
	if exists {
		return b
	}

	u.mu.Lock()
	defer u.mu.Unlock()
	// Double-check after acquiring write lock
	if b, exists = u.buckets[key]; exists {
		return b
	}
	b = &bucket{
		tokens:     u.capacity,
		capacity:   u.capacity,
		rate:       u.rate,
		lastRefill: time.Now(),
	}
	u.buckets[key] = b
	return b
}

func (b *bucket) take(now time.Time) bool {
	elapsed := now.Sub(b.lastRefill).Seconds()
	b.tokens = min(b.capacity, b.tokens+elapsed*b.rate)
	b.lastRefill = now

	if b.tokens >= 1 {
		b.tokens--
		return true
	}
	return false
}

// Allow reports whether a request for key may proceed and consumes a token if so.
func (u *UserRateLimiter) Allow(key string) bool {
	b := u.getBucket(key)
	b.mu.Lock()
	defer b.mu.Unlock()
	u.touch(key, b)
	return b.take(time.Now())
}

// Stop cancels all expiry timers
func (u *UserRateLimiter) Stop() {
	u.mu.Lock()
	defer u.mu.Unlock()

	for _, b := range u.buckets {
		b.mu.Lock()
		if b.timer != nil {
			b.timer.Stop()
		}
		b.mu.Unlock()
	}
}

func (u *UserRateLimiter) size() int {
	u.mu.RLock()
	defer u.mu.RUnlock()
	return len(u.buckets)
}
