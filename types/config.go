package types

import "rgbcycle-go/errcode"

// TickHz is the only tick rate the millisecond clock supports: one tick is
// one millisecond.
const TickHz = 1000

// Config holds the operating parameters of the hue animation.
type Config struct {
	TickHz     uint32  // millisecond clock tick rate; must be TickHz
	PWMFreqHz  uint32  // PWM update frequency shared by all channels
	HueStep    float32 // degrees added per iteration
	IntervalMs uint32  // delay between iterations
	Saturation float32 // held constant, [0,1]
	Value      float32 // held constant, [0,1]
	StartHue   float32 // [0,360)
	LogEvery   uint32  // log one frame every N iterations; 0 = never
}

// DefaultConfig is the reference behaviour: a 1 kHz tick, 500 Hz PWM and a
// full-brightness sweep of one degree every 10 ms.
func DefaultConfig() Config {
	return Config{
		TickHz:     TickHz,
		PWMFreqHz:  500,
		HueStep:    1.0,
		IntervalMs: 10,
		Saturation: 1.0,
		Value:      1.0,
		StartHue:   0,
		LogEvery:   100,
	}
}

// Validate reports the first parameter that makes the setup unusable.
func (c Config) Validate() error {
	const op = "config.validate"
	switch {
	case c.TickHz != TickHz:
		return errcode.New(errcode.InvalidParams, op, "tick_hz must be 1000")
	case c.PWMFreqHz == 0:
		return errcode.New(errcode.InvalidParams, op, "pwm_freq_hz must be > 0")
	case !(c.HueStep > 0) || c.HueStep >= 360:
		return errcode.New(errcode.InvalidParams, op, "hue_step must be in (0,360)")
	case c.IntervalMs == 0:
		return errcode.New(errcode.InvalidParams, op, "interval_ms must be > 0")
	case !unit(c.Saturation):
		return errcode.New(errcode.InvalidParams, op, "saturation must be in [0,1]")
	case !unit(c.Value):
		return errcode.New(errcode.InvalidParams, op, "value must be in [0,1]")
	case !(c.StartHue >= 0) || c.StartHue >= 360:
		return errcode.New(errcode.InvalidParams, op, "start_hue must be in [0,360)")
	}
	return nil
}

func unit(v float32) bool { return v >= 0 && v <= 1 }
