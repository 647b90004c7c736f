//go:build !rp2040

package clock

import (
	"sync"
	"time"

	"rgbcycle-go/errcode"
	"rgbcycle-go/x/timex"
)

// TickerSource stands in for the tick interrupt on hosts: a goroutine ticks
// the clock from a time.Ticker. A slow consumer drops ticker events rather
// than queueing them, the same as a missed interrupt.
type TickerSource struct {
	mu   sync.Mutex
	quit chan struct{}
}

func (s *TickerSource) Start(c *Clock, hz uint32) error {
	if c == nil || hz == 0 {
		return errcode.New(errcode.InvalidParams, "clock.start", "need a clock and hz > 0")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.quit != nil {
		return errcode.New(errcode.Conflict, "clock.start", "tick source already running")
	}
	quit := make(chan struct{})
	s.quit = quit

	tk := time.NewTicker(timex.TickInterval(hz))
	go func() {
		defer tk.Stop()
		for {
			select {
			case <-tk.C:
				c.Tick()
			case <-quit:
				return
			}
		}
	}()
	return nil
}

// Stop halts the tick goroutine. The clock keeps its value.
func (s *TickerSource) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.quit != nil {
		close(s.quit)
		s.quit = nil
	}
}
