// Package animator runs the continuous hue sweep: advance the hue, wrap it at
// 360, convert at fixed saturation and value, push the colour to the light,
// wait, repeat.
package animator

import (
	"rgbcycle-go/services/clock"
	"rgbcycle-go/services/color"
	"rgbcycle-go/types"
	"rgbcycle-go/x/logx"
)

// Frame is what one iteration pushed to the light.
type Frame struct {
	Hue   float32
	Color color.RGB
}

type Animator struct {
	light    *Light
	clk      *clock.Clock
	hue      float32
	step     float32
	sat, val float32
	interval uint32
	logEvery uint32
	frames   uint32

	// OnFrame, if set, observes every frame after it is pushed.
	OnFrame func(Frame)
}

func New(light *Light, clk *clock.Clock, cfg types.Config) *Animator {
	return &Animator{
		light:    light,
		clk:      clk,
		hue:      cfg.StartHue,
		step:     cfg.HueStep,
		sat:      cfg.Saturation,
		val:      cfg.Value,
		interval: cfg.IntervalMs,
		logEvery: cfg.LogEvery,
	}
}

// Hue returns the hue of the last frame pushed (the start hue before any).
func (a *Animator) Hue() float32 { return a.hue }

// Step runs one iteration without the delay.
func (a *Animator) Step() Frame {
	a.hue += a.step
	if a.hue >= 360 {
		a.hue = 0
	}
	f := Frame{Hue: a.hue, Color: color.HSVToRGB(a.hue, a.sat, a.val)}
	a.light.SetColor(f.Color)

	a.frames++
	if a.logEvery != 0 && a.frames%a.logEvery == 0 {
		th := a.light.Thresholds()
		logx.Info("anim", "frame",
			logx.Float("hue", f.Hue),
			logx.Uint("r", th[0]), logx.Uint("g", th[1]), logx.Uint("b", th[2]),
			logx.Uint("ms", a.clk.Now()))
	}
	if a.OnFrame != nil {
		a.OnFrame(f)
	}
	return f
}

// Run steps forever, waiting the configured interval on the clock between
// iterations. It never returns.
func (a *Animator) Run() {
	logx.Info("anim", "running",
		logx.Float("start_hue", a.hue), logx.Float("step", a.step), logx.Uint("interval_ms", a.interval))
	for {
		a.Step()
		a.clk.Delay(a.interval)
	}
}
