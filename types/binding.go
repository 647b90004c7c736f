package types

// ------------------------
// Colour components
// ------------------------

// Component names one logical colour channel of the RGB light.
type Component uint8

const (
	Red Component = iota
	Green
	Blue
)

func (c Component) String() string {
	switch c {
	case Red:
		return "red"
	case Green:
		return "green"
	case Blue:
		return "blue"
	default:
		return "unknown"
	}
}

// ------------------------
// Channel bindings
// ------------------------

// Binding ties a logical component to the physical output that renders it.
// A board's binding table is consumed once at setup; the index of a binding
// in its table is the PWM channel index used by the driver.
type Binding struct {
	Component Component
	Pin       string // physical output, e.g. "PA8" or "GP15"
	Timer     string // counting engine identity, e.g. "TIM1" or "PWM7"
	Channel   uint8  // compare channel on that timer, 0-based
	AltFunc   uint8  // alternate function routing the pin to the timer (0 where the platform infers it)
}
