// Package clock provides the millisecond software clock.
//
// A periodic tick (a hardware timer interrupt on the device, a goroutine on
// the host) advances the counter once per millisecond. The counter is a
// single atomic word: one writer (the tick), any number of readers.
// TinyGo implements the atomics on Cortex-M0+ by briefly masking interrupts,
// so reads are never torn.
//
// The counter wraps at 2^32 ms (about 49.7 days). Since and Delay use
// modular subtraction and stay correct across the wrap as long as a single
// wait is shorter than the full range.
package clock

import "sync/atomic"

// TickSource drives Clock.Tick at hz ticks per second once started.
type TickSource interface {
	Start(c *Clock, hz uint32) error
}

// Clock is a millisecond counter. The zero value is ready to use and reads 0.
type Clock struct {
	ms   atomic.Uint32
	idle func()
}

func New() *Clock { return &Clock{} }

// Tick advances the counter by one. Call it exactly once per tick period.
func (c *Clock) Tick() { c.ms.Add(1) }

// Now returns milliseconds since start-up.
func (c *Clock) Now() uint32 { return c.ms.Load() }

// Since returns the milliseconds elapsed since start.
func (c *Clock) Since(start uint32) uint32 { return c.Now() - start }

// SetIdle installs a hook run on every busy-wait poll. nil means a pure spin.
// Set it during setup, before any Delay.
func (c *Clock) SetIdle(fn func()) { c.idle = fn }

// Delay busy-waits until at least ms milliseconds have elapsed. It cannot be
// cancelled. It returns no earlier than ms ticks and, with an otherwise idle
// caller, no later than one tick after that.
func (c *Clock) Delay(ms uint32) {
	start := c.Now()
	for c.Now()-start < ms {
		if c.idle != nil {
			c.idle()
		}
	}
}
