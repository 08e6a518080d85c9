// Package ratelimit holds process-local request limiting policies.
//
// FixedWindow counts hits per key inside a window that starts at the first
// hit and resets once the window has elapsed. State lives in the value, so
// each process (and each test) owns its own limiter and can Reset it.
package ratelimit

import (
	"sync"
	"time"
)

type window struct {
	start time.Time
	count int
}

type FixedWindow struct {
	size    time.Duration
	maxHits int

	mu      sync.Mutex
	windows map[string]*window
	sweepN  int
}

// Decision reports the outcome of a single hit.
type Decision struct {
	Allowed    bool
	Remaining  int
	RetryAfter time.Duration
}

func NewFixedWindow(size time.Duration, maxHits int) *FixedWindow {
	if maxHits <= 0 {
		maxHits = 1
	}
	if size <= 0 {
		size = time.Minute
	}
	return &FixedWindow{
		size:    size,
		maxHits: maxHits,
		windows: make(map[string]*window),
	}
}

func (f *FixedWindow) Allow(key string, now time.Time) Decision {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.sweepLocked(now)

	w, ok := f.windows[key]
	if !ok || now.Sub(w.start) >= f.size {
		w = &window{start: now}
		f.windows[key] = w
	}

	if w.count >= f.maxHits {
		return Decision{
			Allowed:    false,
			Remaining:  0,
			RetryAfter: w.start.Add(f.size).Sub(now),
		}
	}

	w.count++
	return Decision{Allowed: true, Remaining: f.maxHits - w.count}
}

// Reset drops every tracked window.
func (f *FixedWindow) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.windows = make(map[string]*window)
	f.sweepN = 0
}

func (f *FixedWindow) Len() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.windows)
}

// Evict elapsed windows every 1000 hits to bound memory.
func (f *FixedWindow) sweepLocked(now time.Time) {
	f.sweepN++
	if f.sweepN < 1000 {
		return
	}
	f.sweepN = 0
	for k, w := range f.windows {
		if now.Sub(w.start) >= f.size {
			delete(f.windows, k)
		}
	}
}
