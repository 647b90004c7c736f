package pwm

import (
	"rgbcycle-go/errcode"
	"rgbcycle-go/x/mathx"
	"rgbcycle-go/x/timex"
)

// SimChannels is the number of compare channels on a simulated timer.
const SimChannels = 4

// SimTimer is a software model of an up-counting timer with preloaded
// compare registers, used on hosts and in tests.
//
// Writes land in a preload register and are copied to the live compare
// register on the update event, when the counter rolls over. Advanced timers
// keep every output inactive until EnableOutputs sets the main output enable.
type SimTimer struct {
	clockHz   uint32
	prescaler uint32
	advanced  bool

	period  uint32
	counter uint32
	running bool
	moe     bool
	updates uint32

	preload  [SimChannels]uint32
	compare  [SimChannels]uint32
	attached [SimChannels]bool
	pins     [SimChannels]string
	afs      [SimChannels]uint8
}

// NewSimTimer models a timer fed by clockHz and divided by prescaler.
func NewSimTimer(clockHz, prescaler uint32, advanced bool) *SimTimer {
	return &SimTimer{clockHz: clockHz, prescaler: prescaler, advanced: advanced}
}

func (s *SimTimer) Configure(freqHz uint32) (uint32, error) {
	if s.clockHz == 0 || freqHz == 0 {
		return 0, errcode.New(errcode.InvalidParams, "sim.configure", "clock and frequency must be > 0")
	}
	period := timex.PeriodTicks(s.clockHz, s.prescaler, freqHz)
	if period == 0 {
		return 0, errcode.New(errcode.InvalidParams, "sim.configure", "frequency above counter clock")
	}
	s.period = period
	s.counter = 0
	s.preload = [SimChannels]uint32{}
	s.compare = [SimChannels]uint32{}
	s.moe = false
	s.running = true
	return period, nil
}

func (s *SimTimer) Attach(ch uint8, pin string, af uint8) error {
	if ch >= SimChannels {
		return errcode.New(errcode.UnknownChannel, "sim.attach", pin)
	}
	s.attached[ch] = true
	s.pins[ch] = pin
	s.afs[ch] = af
	return nil
}

func (s *SimTimer) SetCompare(ch uint8, v uint32) {
	if ch >= SimChannels {
		return
	}
	s.preload[ch] = mathx.Min(v, s.period)
}

func (s *SimTimer) Compare(ch uint8) uint32 {
	if ch >= SimChannels {
		return 0
	}
	return s.preload[ch]
}

// EnableOutputs sets the main output enable. Only advanced timers gate on it.
func (s *SimTimer) EnableOutputs() { s.moe = true }

// Step advances the counter by n ticks, latching preloads at each rollover.
func (s *SimTimer) Step(n uint32) {
	if !s.running {
		return
	}
	for ; n > 0; n-- {
		s.counter++
		if s.counter >= s.period {
			s.counter = 0
			s.compare = s.preload
			s.updates++
		}
	}
}

// Counter returns the counting register.
func (s *SimTimer) Counter() uint32 { return s.counter }

// Period returns the configured cycle length; 0 before Configure.
func (s *SimTimer) Period() uint32 { return s.period }

// Updates counts update events since Configure.
func (s *SimTimer) Updates() uint32 { return s.updates }

// Latched returns the live compare value of ch.
func (s *SimTimer) Latched(ch uint8) uint32 {
	if ch >= SimChannels {
		return 0
	}
	return s.compare[ch]
}

// Active reports whether ch drives its LED right now.
func (s *SimTimer) Active(ch uint8) bool {
	if ch >= SimChannels || !s.running || !s.attached[ch] {
		return false
	}
	if s.advanced && !s.moe {
		return false
	}
	return s.counter < s.compare[ch]
}

// Level returns the electrical pin level of ch. Outputs are active-low.
func (s *SimTimer) Level(ch uint8) bool { return !s.Active(ch) }

// Routed returns the pin and alternate function attached to ch.
func (s *SimTimer) Routed(ch uint8) (pin string, af uint8, ok bool) {
	if ch >= SimChannels || !s.attached[ch] {
		return "", 0, false
	}
	return s.pins[ch], s.afs[ch], true
}

// Duty measures the fraction of one full cycle during which ch is active,
// by stepping the timer through that cycle.
func (s *SimTimer) Duty(ch uint8) float32 {
	if s.period == 0 {
		return 0
	}
	var on uint32
	for i := uint32(0); i < s.period; i++ {
		if s.Active(ch) {
			on++
		}
		s.Step(1)
	}
	return float32(on) / float32(s.period)
}
