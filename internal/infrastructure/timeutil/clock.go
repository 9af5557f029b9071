// Package timeutil holds the clock seam and the timezone helpers used to place
// inventory timestamps on the storefront's local day.
package timeutil

import (
	"sync"
	"time"
)

// Clock is the time source for cache expiry and search timing.
type Clock interface {
	Now() time.Time
}

// RealClock reads the wall clock.
type RealClock struct{}

func NewRealClock() *RealClock {
	return &RealClock{}
}

func (RealClock) Now() time.Time {
	return time.Now()
}

// MockClock is a manually driven Clock. Search goroutines may read it while a
// test moves it.
type MockClock struct {
	mu  sync.RWMutex
	now time.Time
}

func NewMockClock(t time.Time) *MockClock {
	return &MockClock{now: t}
}

// NewMockClockFromString starts a MockClock at an RFC3339 instant and panics
// when the value does not parse.
func NewMockClockFromString(value string) *MockClock {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		panic("timeutil: bad mock clock time: " + err.Error())
	}
	return NewMockClock(t)
}

func (m *MockClock) Now() time.Time {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.now
}

// Set jumps to t.
func (m *MockClock) Set(t time.Time) {
	m.mu.Lock()
	m.now = t
	m.mu.Unlock()
}

// Advance moves the clock by d, which may be negative.
func (m *MockClock) Advance(d time.Duration) {
	m.mu.Lock()
	m.now = m.now.Add(d)
	m.mu.Unlock()
}

// Since is time.Since against clock.
func Since(clock Clock, t time.Time) time.Duration {
	return clock.Now().Sub(t)
}

var (
	_ Clock = (*RealClock)(nil)
	_ Clock = (*MockClock)(nil)
)
