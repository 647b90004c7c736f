// Package pwm drives the light's intensity channels.
//
// An Engine is one counting timer with compare channels: it counts from 0 to
// its period at a fixed frequency and asserts a channel while the counter is
// below that channel's threshold. Outputs are wired active-low, so every
// engine fixes inverted polarity when a channel is attached: "active" means
// the LED is lit.
//
// The Driver owns a board's binding table and presents the channels as one
// indexed set sharing a single period.
package pwm

// Engine is a fixed-frequency counting timer with compare channels.
type Engine interface {
	// Configure sets the counter clock divider and period for freqHz and
	// starts counting. It returns the period in counter ticks.
	Configure(freqHz uint32) (period uint32, err error)
	// Attach routes pin to compare channel ch through alternate function af
	// and fixes inverted (active-low) polarity for it.
	Attach(ch uint8, pin string, af uint8) error
	// SetCompare writes the threshold of ch. Values above the period are
	// clamped. The new value may only take effect at the next cycle boundary.
	SetCompare(ch uint8, v uint32)
	// Compare returns the last threshold written to ch.
	Compare(ch uint8) uint32
}

// outputEnabler is implemented by engines whose outputs stay off after
// Configure until a separate enable, such as the main output enable of an
// advanced timer. Driver.Configure calls it once every channel is attached.
type outputEnabler interface {
	EnableOutputs()
}
