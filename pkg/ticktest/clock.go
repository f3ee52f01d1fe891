// Package ticktest provides helpers for testing code built on ticks.
//
// # Playback Testing
//
// Step a fake playhead one frame at a time for deterministic tests:
//
//	clk := ticktest.NewFakeClock()
//	for range 24 {
//	    render(clip.FrameAt(clk.Now()))
//	    clk.AdvanceFrames(1, tick.FPS24)
//	}
package ticktest

import (
	"sync"

	"github.com/go-drift/tick/pkg/tick"
)

// FakeClock provides a controllable playhead measured in ticks.
// All methods are safe for concurrent use.
type FakeClock struct {
	mu  sync.Mutex
	now tick.Tick
}

// NewFakeClock returns a FakeClock starting at tick zero.
func NewFakeClock() *FakeClock {
	return &FakeClock{}
}

// Now returns the current fake tick.
func (c *FakeClock) Now() tick.Tick {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// Advance moves the clock forward by d. It panics if the clock would
// overflow, since a test that drives a clock that far is broken.
func (c *FakeClock) Advance(d tick.Tick) {
	c.mu.Lock()
	defer c.mu.Unlock()
	next, err := c.now.Add(d)
	if err != nil {
		panic(err)
	}
	c.now = next
}

// AdvanceFrames moves the clock forward by n whole frames at rate r.
func (c *FakeClock) AdvanceFrames(n int64, r tick.FrameRate) {
	d, err := r.TicksPerFrame().Mul(n)
	if err != nil {
		panic(err)
	}
	c.Advance(d)
}

// Set sets the clock to an exact tick.
func (c *FakeClock) Set(t tick.Tick) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = t
}
