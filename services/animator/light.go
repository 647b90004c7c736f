package animator

import (
	"rgbcycle-go/errcode"
	"rgbcycle-go/services/color"
	"rgbcycle-go/types"
)

// Channels is what a Light needs from the PWM driver.
type Channels interface {
	Lookup(c types.Component) (int, bool)
	SetThreshold(ch int, v float32)
	Threshold(ch int) uint32
}

// Light is an RGB LED whose components are bound to PWM channels.
type Light struct {
	ch               Channels
	red, green, blue int
}

// NewLight resolves the channel of each component once.
func NewLight(ch Channels) (*Light, error) {
	l := &Light{ch: ch}
	for _, b := range []struct {
		c   types.Component
		dst *int
	}{
		{types.Red, &l.red},
		{types.Green, &l.green},
		{types.Blue, &l.blue},
	} {
		idx, ok := ch.Lookup(b.c)
		if !ok {
			return nil, errcode.New(errcode.UnknownChannel, "light.new", b.c.String()+" is not bound")
		}
		*b.dst = idx
	}
	return l, nil
}

// SetColor forwards each component to its bound channel.
func (l *Light) SetColor(c color.RGB) {
	l.ch.SetThreshold(l.blue, c.B)
	l.ch.SetThreshold(l.red, c.R)
	l.ch.SetThreshold(l.green, c.G)
}

// Thresholds returns the compare values currently programmed, in R, G, B order.
func (l *Light) Thresholds() [3]uint32 {
	return [3]uint32{l.ch.Threshold(l.red), l.ch.Threshold(l.green), l.ch.Threshold(l.blue)}
}
