//go:build !rp2040

package platform

import (
	"runtime"

	"rgbcycle-go/drivers/pca9685"
	"rgbcycle-go/errcode"
	"rgbcycle-go/services/clock"
	"rgbcycle-go/services/pwm"
	"rgbcycle-go/services/setups"

	"tinygo.org/x/drivers"
)

// HostI2C implements tinygo drivers.I2C for host runs. It acknowledges every
// write and reads back zeros.
type HostI2C struct{}

var _ drivers.I2C = HostI2C{}

func (HostI2C) Tx(_ uint16, _, r []byte) error {
	clear(r)
	return nil
}

// Open simulates every MCU timer in software and talks to expanders through
// an inert HostI2C. The clock ticks from a goroutine and busy-waits yield.
func Open(s setups.Setup) (*Platform, error) {
	p := &Platform{
		Engines: make(map[string]pwm.Engine, len(s.Timers)),
		Ticks:   &clock.TickerSource{},
		Idle:    runtime.Gosched,
	}
	for _, t := range s.Timers {
		switch t.Kind {
		case setups.KindTimer, setups.KindRP2Slice:
			p.Engines[t.ID] = pwm.NewSimTimer(t.ClockHz, t.Prescaler, t.Advanced)
		case setups.KindPCA9685:
			dev := pca9685.New(HostI2C{})
			if t.Addr != 0 {
				dev.Address = t.Addr
			}
			p.Engines[t.ID] = pwm.NewPCA9685(&dev)
		default:
			return nil, errcode.New(errcode.Unsupported, "platform.open", t.ID)
		}
	}
	return p, nil
}
