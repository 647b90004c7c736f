//go:build rp2040

package pwm

import (
	"machine"

	"rgbcycle-go/errcode"
	"rgbcycle-go/x/mathx"
	"rgbcycle-go/x/timex"
)

// Local interface to avoid depending on an unexported concrete type in machine.
type pwmCtrl interface {
	Configure(cfg machine.PWMConfig) error
	Channel(pin machine.Pin) (uint8, error)
	Top() uint32
	Set(channel uint8, value uint32)
	SetInverting(channel uint8, inverting bool)
}

// Select controller handle for a given slice number (0..7).
func pwmGroupBySlice(slice uint8) pwmCtrl {
	switch slice {
	case 0:
		return machine.PWM0
	case 1:
		return machine.PWM1
	case 2:
		return machine.PWM2
	case 3:
		return machine.PWM3
	case 4:
		return machine.PWM4
	case 5:
		return machine.PWM5
	case 6:
		return machine.PWM6
	default:
		return machine.PWM7
	}
}

// RP2Slice is one RP2040 PWM slice: a counter with channels A (0) and B (1).
type RP2Slice struct {
	ctrl    pwmCtrl
	slice   uint8
	period  uint32
	compare [2]uint32
}

func NewRP2Slice(slice uint8) *RP2Slice {
	return &RP2Slice{ctrl: pwmGroupBySlice(slice), slice: slice}
}

func (p *RP2Slice) Configure(freqHz uint32) (uint32, error) {
	if freqHz == 0 {
		return 0, errcode.New(errcode.InvalidParams, "rp2.configure", "frequency must be > 0")
	}
	if err := p.ctrl.Configure(machine.PWMConfig{Period: timex.PeriodFromHz(freqHz)}); err != nil {
		return 0, errcode.Wrap(errcode.InvalidParams, "rp2.configure", err)
	}
	p.period = p.ctrl.Top()
	return p.period, nil
}

// Attach switches the pin to its PWM function and inverts the channel so
// that the active-low LED is lit while the counter is below the level.
func (p *RP2Slice) Attach(ch uint8, pin string, _ uint8) error {
	n, ok := GPIONumber(pin)
	if !ok {
		return errcode.New(errcode.UnknownPin, "rp2.attach", pin)
	}
	got, err := p.ctrl.Channel(machine.Pin(n))
	if err != nil {
		return errcode.Wrap(errcode.UnknownPin, "rp2.attach", err)
	}
	if got != ch {
		return errcode.New(errcode.Conflict, "rp2.attach", pin+" is not on the bound channel")
	}
	p.ctrl.SetInverting(ch, true)
	return nil
}

func (p *RP2Slice) SetCompare(ch uint8, v uint32) {
	if ch > 1 {
		return
	}
	v = mathx.Min(v, p.period)
	p.compare[ch] = v
	p.ctrl.Set(ch, v)
}

func (p *RP2Slice) Compare(ch uint8) uint32 {
	if ch > 1 {
		return 0
	}
	return p.compare[ch]
}
