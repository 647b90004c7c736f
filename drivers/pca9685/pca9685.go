// Package pca9685 provides a driver for the PCA9685 16-channel, 12-bit PWM
// controller.
//
// All channels share one prescaled 25 MHz oscillator, so they share one
// frequency. Each channel has ON and OFF counts in [0,4095]; bit 12 of either
// count forces the output fully on or fully off.
//
// NOTE: the driver keeps MODE1 in memory and never reads it back, so a power
// cycle of the chip needs a fresh Configure.
package pca9685

import (
	"errors"
	"time"

	"rgbcycle-go/x/mathx"

	"tinygo.org/x/drivers"
)

// Default I2C address with all address pins low.
const Address = 0x40

// Resolution is the number of counts in one PWM cycle.
const Resolution = 4096

// OscillatorHz is the internal oscillator frequency.
const OscillatorHz = 25_000_000

// Registers.
const (
	regMode1    = 0x00
	regMode2    = 0x01
	regLED0     = 0x06
	regAllLED   = 0xFA
	regPrescale = 0xFE

	regStride = 4 // ON_L, ON_H, OFF_L, OFF_H per channel
)

// MODE1 / MODE2 bits.
const (
	mode1Restart = 0x80
	mode1AI      = 0x20
	mode1Sleep   = 0x10
	mode1AllCall = 0x01

	mode2Invert = 0x10
	mode2OutDrv = 0x04

	fullBit = 0x1000
)

// Errors returned by the driver.
var (
	ErrChannel   = errors.New("pca9685: channel out of range")
	ErrFrequency = errors.New("pca9685: frequency out of range")
)

// Config controls output stage behaviour. All fields are optional.
type Config struct {
	// Address defaults to 0x40 if zero.
	Address uint16
	// Inverted flips the output logic (MODE2.INVRT); use it for LEDs wired
	// active-low between the supply and the pin.
	Inverted bool
	// OpenDrain selects open-drain outputs instead of totem-pole.
	OpenDrain bool
}

// Device wraps an I2C connection to a PCA9685.
type Device struct {
	bus     drivers.I2C
	Address uint16

	mode1    uint8
	prescale uint8
	buf      [5]byte
}

// New creates a new PCA9685 connection. The I2C bus must already be
// configured. This function only creates the Device object; it does not
// touch the device.
func New(bus drivers.I2C) Device {
	return Device{bus: bus, Address: Address}
}

// Configure wakes the device with register auto-increment and applies cfg to
// the output stage. Every channel is switched fully off.
func (d *Device) Configure(cfg Config) error {
	if cfg.Address != 0 {
		d.Address = cfg.Address
	}
	var mode2 uint8
	if cfg.Inverted {
		mode2 |= mode2Invert
	}
	if !cfg.OpenDrain {
		mode2 |= mode2OutDrv
	}
	if err := d.writeReg(regMode2, mode2); err != nil {
		return err
	}
	d.mode1 = mode1AI | mode1AllCall
	if err := d.writeReg(regMode1, d.mode1); err != nil {
		return err
	}
	return d.setCounts(regAllLED, 0, fullBit)
}

// Prescale returns the prescaler value that gives the frequency closest to hz:
// round(osc / (4096 * hz)) - 1, limited to the device range [3,255].
func Prescale(hz uint32) (uint8, error) {
	if hz == 0 {
		return 0, ErrFrequency
	}
	p := mathx.RoundDiv(uint64(OscillatorHz), uint64(Resolution)*uint64(hz))
	if p < 4 || p > 256 {
		return 0, ErrFrequency
	}
	return uint8(p - 1), nil
}

// SetFrequency programs the shared PWM frequency. The prescaler can only be
// written while the oscillator sleeps, so the device is put to sleep,
// reprogrammed, woken and restarted.
func (d *Device) SetFrequency(hz uint32) error {
	p, err := Prescale(hz)
	if err != nil {
		return err
	}
	if err := d.writeReg(regMode1, (d.mode1&^mode1Restart)|mode1Sleep); err != nil {
		return err
	}
	if err := d.writeReg(regPrescale, p); err != nil {
		return err
	}
	if err := d.writeReg(regMode1, d.mode1); err != nil {
		return err
	}
	// Oscillator needs 500 µs to stabilise before RESTART.
	time.Sleep(500 * time.Microsecond)
	if err := d.writeReg(regMode1, d.mode1|mode1Restart); err != nil {
		return err
	}
	d.prescale = p
	return nil
}

// PrescaleValue returns the last prescaler written by SetFrequency.
func (d *Device) PrescaleValue() uint8 { return d.prescale }

// SetChannel writes raw ON and OFF counts for ch (0..15).
func (d *Device) SetChannel(ch uint8, on, off uint16) error {
	if ch > 15 {
		return ErrChannel
	}
	return d.setCounts(regLED0+regStride*ch, on, off)
}

// SetDuty sets ch to be active for duty counts of every cycle.
// 0 forces the channel off and Resolution or more forces it fully on.
func (d *Device) SetDuty(ch uint8, duty uint32) error {
	switch {
	case duty == 0:
		return d.SetChannel(ch, 0, fullBit)
	case duty >= Resolution:
		return d.SetChannel(ch, fullBit, 0)
	default:
		return d.SetChannel(ch, 0, uint16(duty))
	}
}

// Sleep stops the oscillator; outputs go to their off state.
func (d *Device) Sleep() error {
	return d.writeReg(regMode1, (d.mode1&^mode1Restart)|mode1Sleep)
}

func (d *Device) setCounts(reg uint8, on, off uint16) error {
	d.buf[0] = reg
	d.buf[1] = byte(on)
	d.buf[2] = byte(on >> 8)
	d.buf[3] = byte(off)
	d.buf[4] = byte(off >> 8)
	return d.bus.Tx(d.Address, d.buf[:5], nil)
}

func (d *Device) writeReg(reg, val uint8) error {
	d.buf[0] = reg
	d.buf[1] = val
	return d.bus.Tx(d.Address, d.buf[:2], nil)
}
