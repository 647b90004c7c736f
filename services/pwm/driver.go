package pwm

import (
	"rgbcycle-go/errcode"
	"rgbcycle-go/types"
	"rgbcycle-go/x/logx"
	"rgbcycle-go/x/mathx"
)

// Driver maps normalised intensities onto the compare registers named by a
// binding table. Channel i is bindings[i]. It is not safe for concurrent use;
// the animation loop is its only caller.
type Driver struct {
	engines  map[string]Engine
	bindings []types.Binding
	period   uint32
	ready    bool
}

func New(engines map[string]Engine, bindings []types.Binding) *Driver {
	return &Driver{
		engines:  engines,
		bindings: append([]types.Binding(nil), bindings...),
	}
}

// Configure brings every timer referenced by the binding table up at
// freqHz, attaches each bound pin and zeroes every threshold. All timers
// must agree on the period. Call it once, before any SetThreshold.
func (d *Driver) Configure(freqHz uint32) error {
	const op = "pwm.configure"
	if freqHz == 0 {
		return errcode.New(errcode.InvalidParams, op, "frequency must be > 0")
	}
	if len(d.bindings) == 0 {
		return errcode.New(errcode.InvalidParams, op, "empty binding table")
	}

	seen := make(map[types.Component]bool, len(d.bindings))
	for _, b := range d.bindings {
		if seen[b.Component] {
			return errcode.New(errcode.Conflict, op, "component bound twice: "+b.Component.String())
		}
		seen[b.Component] = true
		if d.engines[b.Timer] == nil {
			return errcode.New(errcode.UnknownTimer, op, b.Timer)
		}
	}

	var period uint32
	configured := make(map[string]bool, len(d.engines))
	for _, b := range d.bindings {
		if configured[b.Timer] {
			continue
		}
		p, err := d.engines[b.Timer].Configure(freqHz)
		if err != nil {
			return errcode.Wrap(errcode.Of(err), op+" "+b.Timer, err)
		}
		if p == 0 {
			return errcode.New(errcode.InvalidParams, op, b.Timer+" cannot resolve the frequency")
		}
		if period != 0 && p != period {
			return errcode.New(errcode.Conflict, op, b.Timer+" period differs from other timers")
		}
		period = p
		configured[b.Timer] = true
		logx.Info("pwm", "timer configured", logx.Str("timer", b.Timer), logx.Uint("hz", freqHz), logx.Uint("period", p))
	}

	for _, b := range d.bindings {
		eng := d.engines[b.Timer]
		if err := eng.Attach(b.Channel, b.Pin, b.AltFunc); err != nil {
			return errcode.Wrap(errcode.Of(err), op+" "+b.Pin, err)
		}
		eng.SetCompare(b.Channel, 0)
		logx.Debug("pwm", "attached", logx.Str("pin", b.Pin), logx.Str("timer", b.Timer),
			logx.Uint("ch", uint32(b.Channel)), logx.Bool("inverted", true))
	}
	for id := range configured {
		if en, ok := d.engines[id].(outputEnabler); ok {
			en.EnableOutputs()
		}
	}

	d.period = period
	d.ready = true
	return nil
}

// SetThreshold sets channel ch to round(v*period), with v clamped to [0,1].
// Unknown channels and calls before Configure are ignored.
func (d *Driver) SetThreshold(ch int, v float32) {
	if !d.ready || ch < 0 || ch >= len(d.bindings) {
		return
	}
	b := d.bindings[ch]
	d.engines[b.Timer].SetCompare(b.Channel, mathx.UnitToTicks(v, d.period))
}

// Threshold returns the compare value last written to ch.
func (d *Driver) Threshold(ch int) uint32 {
	if !d.ready || ch < 0 || ch >= len(d.bindings) {
		return 0
	}
	b := d.bindings[ch]
	return d.engines[b.Timer].Compare(b.Channel)
}

// Period is the shared cycle length in counter ticks; 0 before Configure.
func (d *Driver) Period() uint32 { return d.period }

// Channels is the number of bound channels.
func (d *Driver) Channels() int { return len(d.bindings) }

// Lookup returns the channel index bound to component c.
func (d *Driver) Lookup(c types.Component) (int, bool) {
	for i, b := range d.bindings {
		if b.Component == c {
			return i, true
		}
	}
	return -1, false
}

// Binding returns the table entry for channel ch.
func (d *Driver) Binding(ch int) (types.Binding, bool) {
	if ch < 0 || ch >= len(d.bindings) {
		return types.Binding{}, false
	}
	return d.bindings[ch], true
}
