// Package metrics keeps lightweight frame timing for the debug overlay.
package metrics

import (
	"fmt"
	"sync"
	"time"
)

// FrameTap records the last N frame durations in a ring buffer so the
// overlay can report a smoothed frame rate.
type FrameTap struct {
	buffer    []time.Duration
	nextIndex int
	filled    int
	last      time.Time
	mu        sync.RWMutex
}

func NewFrameTap(ringSize int) *FrameTap {
	if ringSize < 1 {
		ringSize = 1
	}
	return &FrameTap{buffer: make([]time.Duration, ringSize)}
}

// Mark records the time since the previous Mark. The first call only sets
// the reference point.
func (t *FrameTap) Mark(now time.Time) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.last.IsZero() {
		t.buffer[t.nextIndex] = now.Sub(t.last)
		t.nextIndex++
		if t.nextIndex >= len(t.buffer) {
			t.nextIndex = 0
		}
		if t.filled < len(t.buffer) {
			t.filled++
		}
	}
	t.last = now
}

// Snapshot returns up to the last n durations, oldest first.
func (t *FrameTap) Snapshot(n int) []time.Duration {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if n > t.filled {
		n = t.filled
	}
	out := make([]time.Duration, n)
	idx := t.nextIndex - n
	if idx < 0 {
		idx += len(t.buffer)
	}
	for i := range out {
		out[i] = t.buffer[idx]
		idx++
		if idx >= len(t.buffer) {
			idx = 0
		}
	}
	return out
}

// FPS is the mean rate over the recorded frames, 0 before two marks.
func (t *FrameTap) FPS() float64 {
	samples := t.Snapshot(len(t.buffer))
	if len(samples) == 0 {
		return 0
	}
	var total time.Duration
	for _, d := range samples {
		total += d
	}
	if total <= 0 {
		return 0
	}
	return float64(len(samples)) / total.Seconds()
}

// FormatDuration renders an uptime as MM:SS. Partial seconds are dropped;
// negative durations read as zero. Minutes are not wrapped into hours.
func FormatDuration(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	d = d.Truncate(time.Second)
	m := int(d / time.Minute)
	s := int((d % time.Minute) / time.Second)
	return fmt.Sprintf("%02d:%02d", m, s)
}
