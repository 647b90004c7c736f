// Package platform turns a board setup into running hardware: PWM engines, a
// tick source for the millisecond clock and, on devices, the log console.
//
// Open is provided per target (platform_host.go, platform_rp2.go); Bringup
// is the shared setup sequence on top of it.
package platform

import (
	"rgbcycle-go/services/animator"
	"rgbcycle-go/services/clock"
	"rgbcycle-go/services/pwm"
	"rgbcycle-go/services/setups"
	"rgbcycle-go/types"
	"rgbcycle-go/x/logx"
)

// Platform is what a target provides for one setup.
type Platform struct {
	Engines map[string]pwm.Engine
	Ticks   clock.TickSource
	Idle    func() // busy-wait hook for the clock; nil spins
}

// Rig is a brought-up light, ready for the animation loop.
type Rig struct {
	Clock    *clock.Clock
	Driver   *pwm.Driver
	Light    *animator.Light
	Platform *Platform
}

// Close stops the tick source where the target allows it and stops any
// engine that can be stopped. MCU timers keep running.
func (r *Rig) Close() {
	if s, ok := r.Platform.Ticks.(interface{ Stop() }); ok {
		s.Stop()
	}
	for id, e := range r.Platform.Engines {
		s, ok := e.(interface{ Stop() error })
		if !ok {
			continue
		}
		if err := s.Stop(); err != nil {
			logx.Warn("platform", "engine stop failed", logx.Str("timer", id), logx.Err(err))
		}
	}
}

// Bringup runs the setup sequence: start the 1 kHz tick, configure the PWM
// engines at the configured frequency, then bind the colour components to
// their channels.
func Bringup(s setups.Setup, cfg types.Config) (*Rig, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	p, err := Open(s)
	if err != nil {
		return nil, err
	}
	logx.Info("platform", "opened", logx.Str("setup", s.Name), logx.Int("timers", len(p.Engines)))

	clk := clock.New()
	clk.SetIdle(p.Idle)
	if err := p.Ticks.Start(clk, cfg.TickHz); err != nil {
		return nil, err
	}
	rig := &Rig{Clock: clk, Platform: p}
	logx.Info("platform", "tick started", logx.Uint("hz", cfg.TickHz))

	drv := pwm.New(p.Engines, s.Bindings)
	if err := drv.Configure(cfg.PWMFreqHz); err != nil {
		rig.Close()
		return nil, err
	}
	rig.Driver = drv

	light, err := animator.NewLight(drv)
	if err != nil {
		rig.Close()
		return nil, err
	}
	rig.Light = light
	for i := 0; i < drv.Channels(); i++ {
		b, _ := drv.Binding(i)
		logx.Info("platform", "bound", logx.Str("color", b.Component.String()),
			logx.Str("pin", b.Pin), logx.Str("timer", b.Timer), logx.Uint("ch", uint32(b.Channel)))
	}
	return rig, nil
}
