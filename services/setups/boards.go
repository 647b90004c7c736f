package setups

import "rgbcycle-go/types"

// Dash is the reference board: three LEDs on two 16 MHz timers, prescaled to
// a 1 MHz counter (period 2000 at 500 Hz).
//
//	PA8 (blue)  = TIM1 CH1, AF1
//	PB6 (red)   = TIM4 CH1, AF2
//	PB7 (green) = TIM4 CH2, AF2
var Dash = Setup{
	Name: "dash",
	Timers: []TimerPlan{
		{ID: "TIM1", Kind: KindTimer, ClockHz: 16_000_000, Prescaler: 16, Advanced: true},
		{ID: "TIM4", Kind: KindTimer, ClockHz: 16_000_000, Prescaler: 16},
	},
	Bindings: []types.Binding{
		{Component: types.Blue, Pin: "PA8", Timer: "TIM1", Channel: 0, AltFunc: 1},
		{Component: types.Red, Pin: "PB6", Timer: "TIM4", Channel: 0, AltFunc: 2},
		{Component: types.Green, Pin: "PB7", Timer: "TIM4", Channel: 1, AltFunc: 2},
	},
}

// PicoRGB wires an active-low RGB LED to a Raspberry Pi Pico. GP14/GP15 share
// slice 7, GP13 is channel B of slice 6.
var PicoRGB = Setup{
	Name: "pico_rgb",
	Timers: []TimerPlan{
		{ID: "PWM6", Kind: KindRP2Slice, Slice: 6, ClockHz: 125_000_000, Prescaler: 4},
		{ID: "PWM7", Kind: KindRP2Slice, Slice: 7, ClockHz: 125_000_000, Prescaler: 4},
	},
	Bindings: []types.Binding{
		{Component: types.Red, Pin: "GP13", Timer: "PWM6", Channel: 1},
		{Component: types.Green, Pin: "GP14", Timer: "PWM7", Channel: 0},
		{Component: types.Blue, Pin: "GP15", Timer: "PWM7", Channel: 1},
	},
}

// PCA9685RGB drives the LED from channels 0..2 of an expander on i2c0.
var PCA9685RGB = Setup{
	Name: "pca9685_rgb",
	Timers: []TimerPlan{
		{ID: "pca0", Kind: KindPCA9685, Bus: "i2c0", Addr: 0x40, SDA: 4, SCL: 5, BusHz: 400_000},
	},
	Bindings: []types.Binding{
		{Component: types.Red, Pin: "LED0", Timer: "pca0", Channel: 0},
		{Component: types.Green, Pin: "LED1", Timer: "pca0", Channel: 1},
		{Component: types.Blue, Pin: "LED2", Timer: "pca0", Channel: 2},
	},
}
