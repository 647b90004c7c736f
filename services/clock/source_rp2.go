//go:build rp2040

package clock

import (
	"device/rp"
	"runtime/interrupt"

	"rgbcycle-go/errcode"
)

// AlarmSource ticks the clock from TIMER alarm 1. The TinyGo runtime keeps
// alarm 0 for its own sleep queue.
type AlarmSource struct{}

var (
	alarmClock  *Clock
	alarmStepUs uint32
)

func (AlarmSource) Start(c *Clock, hz uint32) error {
	if c == nil || hz == 0 || hz > 1_000_000 {
		return errcode.New(errcode.InvalidParams, "clock.start", "need a clock and 0 < hz <= 1MHz")
	}
	if alarmClock != nil {
		return errcode.New(errcode.Conflict, "clock.start", "alarm 1 already running")
	}
	alarmClock = c
	alarmStepUs = 1_000_000 / hz

	irq := interrupt.New(rp.IRQ_TIMER_IRQ_1, alarmHandler)
	irq.SetPriority(0x00)
	rp.TIMER.INTE.SetBits(rp.TIMER_INTE_ALARM_1)
	rp.TIMER.ALARM1.Set(rp.TIMER.TIMERAWL.Get() + alarmStepUs)
	irq.Enable()
	return nil
}

// alarmHandler re-arms relative to the previous deadline so the tick rate
// does not drift with handler latency.
func alarmHandler(interrupt.Interrupt) {
	rp.TIMER.INTR.Set(rp.TIMER_INTR_ALARM_1)
	rp.TIMER.ALARM1.Set(rp.TIMER.ALARM1.Get() + alarmStepUs)
	alarmClock.Tick()
}
