package mathx

import "golang.org/x/exp/constraints"

// UnitToTicks maps a normalised value in [0,1] onto [0,top] as round(v*top).
// Values below 0 (and NaN) give 0, values above 1 give top. The mapping is
// linear and monotonic.
func UnitToTicks[F constraints.Float](v F, top uint32) uint32 {
	if !(v > 0) {
		return 0
	}
	if v >= 1 {
		return top
	}
	t := uint32(float64(v)*float64(top) + 0.5)
	return Min(t, top)
}
