// Package sched provides replaceable delayed calls so timer-driven UI logic can be
// driven by hand in tests.
package sched

import (
	"sync"
	"time"
)

// Timer is a handle to one scheduled call.
type Timer interface {
	// Stop prevents the call from running. It returns false if the call already ran or was stopped.
	Stop() bool
}

// Scheduler creates cancellable delayed calls.
type Scheduler interface {
	AfterFunc(d time.Duration, f func()) Timer
}

type realScheduler struct{}

func (realScheduler) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

// Real runs calls on the runtime timer.
var Real Scheduler = realScheduler{}

// Manual holds scheduled calls until Fire is called.
type Manual struct {
	mu     sync.Mutex
	timers []*manualTimer
}

type manualTimer struct {
	owner *Manual
	delay time.Duration
	f     func()
	done  bool
}

func (t *manualTimer) Stop() bool {
	t.owner.mu.Lock()
	defer t.owner.mu.Unlock()
	active := !t.done
	t.done = true
	return active
}

func (m *Manual) AfterFunc(d time.Duration, f func()) Timer {
	m.mu.Lock()
	defer m.mu.Unlock()
	timer := &manualTimer{owner: m, delay: d, f: f}
	m.timers = append(m.timers, timer)
	return timer
}

// Active returns the number of calls that are neither stopped nor fired.
func (m *Manual) Active() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	count := 0
	for _, timer := range m.timers {
		if !timer.done {
			count++
		}
	}
	return count
}

// Delays returns the requested delay of every active call.
func (m *Manual) Delays() []time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []time.Duration
	for _, timer := range m.timers {
		if !timer.done {
			out = append(out, timer.delay)
		}
	}
	return out
}

// Fire runs every active call in scheduling order.
func (m *Manual) Fire() {
	m.mu.Lock()
	var due []*manualTimer
	for _, timer := range m.timers {
		if !timer.done {
			timer.done = true
			due = append(due, timer)
		}
	}
	m.mu.Unlock()
	for _, timer := range due {
		timer.f()
	}
}
