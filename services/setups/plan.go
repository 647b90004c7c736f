package setups

import "rgbcycle-go/types"

// TimerKind says which engine renders a timer.
type TimerKind uint8

const (
	// KindTimer is a generic up-counting MCU timer; hosts simulate it.
	KindTimer TimerKind = iota
	// KindRP2Slice is an RP2040 PWM slice.
	KindRP2Slice
	// KindPCA9685 is an I²C PWM expander.
	KindPCA9685
)

// TimerPlan specifies one counting engine and its operating parameters.
type TimerPlan struct {
	ID        string // referenced by types.Binding.Timer
	Kind      TimerKind
	ClockHz   uint32 // counter input clock (KindTimer, simulated slices)
	Prescaler uint32 // clock divider (KindTimer, simulated slices)
	Advanced  bool   // needs main-output enable (KindTimer)
	Slice     uint8  // KindRP2Slice
	Bus       string // KindPCA9685, e.g. "i2c0"
	Addr      uint16 // KindPCA9685
	SDA, SCL  int    // KindPCA9685 bus pins
	BusHz     uint32 // KindPCA9685 bus frequency
}

// Setup is a board's complete PWM wiring: its timers and the binding table.
type Setup struct {
	Name     string
	Timers   []TimerPlan
	Bindings []types.Binding
}

// Timer returns the plan for id.
func (s Setup) Timer(id string) (TimerPlan, bool) {
	for _, t := range s.Timers {
		if t.ID == id {
			return t, true
		}
	}
	return TimerPlan{}, false
}
