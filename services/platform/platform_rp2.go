//go:build rp2040

package platform

import (
	"machine"

	"rgbcycle-go/drivers/pca9685"
	"rgbcycle-go/errcode"
	"rgbcycle-go/services/clock"
	"rgbcycle-go/services/pwm"
	"rgbcycle-go/services/setups"
	"rgbcycle-go/x/logx"

	uartx "github.com/jangala-dev/tinygo-uartx/uartx"
)

// Console wiring (RP2040 default pins for uart0).
const (
	consoleTX   = 0
	consoleRX   = 1
	consoleBaud = 115_200
)

// Open maps timer plans onto RP2040 PWM slices and I²C expanders, ticks the
// clock from TIMER alarm 1 and sends the log to uart0.
func Open(s setups.Setup) (*Platform, error) {
	openConsole()

	p := &Platform{
		Engines: make(map[string]pwm.Engine, len(s.Timers)),
		Ticks:   clock.AlarmSource{},
	}
	for _, t := range s.Timers {
		switch t.Kind {
		case setups.KindRP2Slice:
			if t.Slice > 7 {
				return nil, errcode.New(errcode.InvalidParams, "platform.open", t.ID+": slice out of range")
			}
			p.Engines[t.ID] = pwm.NewRP2Slice(t.Slice)
		case setups.KindPCA9685:
			bus, err := openI2C(t)
			if err != nil {
				return nil, err
			}
			dev := pca9685.New(bus)
			if t.Addr != 0 {
				dev.Address = t.Addr
			}
			p.Engines[t.ID] = pwm.NewPCA9685(&dev)
		default:
			return nil, errcode.New(errcode.Unsupported, "platform.open", t.ID)
		}
	}
	return p, nil
}

func openConsole() {
	hw := uartx.UART0
	if err := hw.Configure(uartx.UARTConfig{
		BaudRate: consoleBaud,
		TX:       machine.Pin(consoleTX),
		RX:       machine.Pin(consoleRX),
	}); err != nil {
		logx.Warn("platform", "uart0 console unavailable", logx.Err(err))
		return
	}
	logx.SetOutput(hw)
}

func openI2C(t setups.TimerPlan) (*machine.I2C, error) {
	var hw *machine.I2C
	switch t.Bus {
	case "i2c0":
		hw = machine.I2C0
	case "i2c1":
		hw = machine.I2C1
	default:
		return nil, errcode.New(errcode.InvalidParams, "platform.open", t.ID+": unknown bus "+t.Bus)
	}
	sda := machine.Pin(t.SDA)
	scl := machine.Pin(t.SCL)
	sda.Configure(machine.PinConfig{Mode: machine.PinI2C})
	scl.Configure(machine.PinConfig{Mode: machine.PinI2C})
	if err := hw.Configure(machine.I2CConfig{
		SCL:       scl,
		SDA:       sda,
		Frequency: t.BusHz,
	}); err != nil {
		return nil, errcode.Wrap(errcode.IOError, "platform.open", err)
	}
	return hw, nil
}
