package page

import (
	"sort"
	"sync"
	"time"
)

// Scheduler runs deferred visual effects. Scheduled functions are never
// cancelled.
type Scheduler interface {
	AfterFunc(d time.Duration, f func())
}

// TimerScheduler schedules on real timers.
type TimerScheduler struct{}

func (TimerScheduler) AfterFunc(d time.Duration, f func()) {
	time.AfterFunc(d, f)
}

type pending struct {
	at  time.Duration
	seq int
	f   func()
}

// ManualScheduler holds scheduled functions until the clock is advanced.
type ManualScheduler struct {
	mu      sync.Mutex
	now     time.Duration
	seq     int
	pending []pending
}

func (m *ManualScheduler) AfterFunc(d time.Duration, f func()) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.seq++
	m.pending = append(m.pending, pending{at: m.now + d, seq: m.seq, f: f})
}

// Pending returns the number of functions not yet run.
func (m *ManualScheduler) Pending() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.pending)
}

// Advance moves the clock forward by d and runs everything now due, in due
// order.
func (m *ManualScheduler) Advance(d time.Duration) {
	m.mu.Lock()
	m.now += d
	var due, rest []pending
	for _, p := range m.pending {
		if p.at <= m.now {
			due = append(due, p)
		} else {
			rest = append(rest, p)
		}
	}
	m.pending = rest
	m.mu.Unlock()

	sort.Slice(due, func(i, j int) bool {
		if due[i].at != due[j].at {
			return due[i].at < due[j].at
		}
		return due[i].seq < due[j].seq
	})
	for _, p := range due {
		p.f()
	}
}

// Flush runs everything pending regardless of delay.
func (m *ManualScheduler) Flush() {
	m.mu.Lock()
	var latest time.Duration
	for _, p := range m.pending {
		if p.at-m.now > latest {
			latest = p.at - m.now
		}
	}
	m.mu.Unlock()
	m.Advance(latest)
}
