// Package color holds the colour model of the light: RGB intensities in
// [0,1] and the HSV to RGB conversion that drives the hue sweep.
package color

import "math"

// RGB is a normalised intensity per physical channel, each in [0,1].
type RGB struct {
	R, G, B float32
}

// HSV is hue in degrees [0,360), saturation and value in [0,1].
type HSV struct {
	H, S, V float32
}

// RGB converts c with HSVToRGB.
func (c HSV) RGB() RGB { return HSVToRGB(c.H, c.S, c.V) }

// term selects one of the four intermediate values of a conversion.
type term uint8

const (
	termV term = iota
	termP
	termQ
	termT
)

// sectors maps each 60 degree hue sector to the terms feeding r, g and b.
var sectors = [6][3]term{
	{termV, termT, termP},
	{termQ, termV, termP},
	{termP, termV, termT},
	{termP, termQ, termV},
	{termT, termP, termV},
	{termV, termP, termQ},
}

// HSVToRGB converts a hue/saturation/value triple to RGB intensities.
// Zero saturation yields grey (v, v, v) whatever the hue. Hue is expected in
// [0,360); values outside wrap by sector and never panic.
func HSVToRGB(h, s, v float32) RGB {
	if s == 0 {
		return RGB{v, v, v}
	}
	h /= 60
	fl := float32(math.Floor(float64(h)))
	f := h - fl
	i := int(fl) % 6
	if i < 0 {
		i += 6
	}
	vals := [4]float32{
		termV: v,
		termP: v * (1 - s),
		termQ: v * (1 - s*f),
		termT: v * (1 - s*(1-f)),
	}
	row := sectors[i]
	return RGB{vals[row[0]], vals[row[1]], vals[row[2]]}
}
