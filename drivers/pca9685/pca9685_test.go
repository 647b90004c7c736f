package pca9685

import (
	"errors"
	"testing"

	"tinygo.org/x/drivers"
)

// Compile-time check.
var _ drivers.I2C = (*fakeI2C)(nil)

// fakeI2C emulates the register file with auto-increment on writes.
type fakeI2C struct {
	addr uint16
	regs [256]byte
	txs  int
	fail error
}

func (f *fakeI2C) Tx(addr uint16, w, r []byte) error {
	if f.fail != nil {
		return f.fail
	}
	f.addr = addr
	f.txs++
	if len(w) == 0 {
		return nil
	}
	reg := w[0]
	for i, b := range w[1:] {
		f.regs[reg+uint8(i)] = b
	}
	return nil
}

func (f *fakeI2C) counts(ch uint8) (on, off uint16) {
	base := regLED0 + regStride*ch
	on = uint16(f.regs[base]) | uint16(f.regs[base+1])<<8
	off = uint16(f.regs[base+2]) | uint16(f.regs[base+3])<<8
	return on, off
}

func TestPrescale(t *testing.T) {
	cases := []struct {
		hz   uint32
		want uint8
	}{
		{500, 11}, // 25e6/(4096*500) = 12.2 -> 12 - 1
		{200, 30}, // 30.5 -> 31 - 1
		{1526, 3}, // device maximum
		{24, 253}, // near device minimum
	}
	for _, c := range cases {
		got, err := Prescale(c.hz)
		if err != nil || got != c.want {
			t.Fatalf("Prescale(%d) = %d, %v; want %d", c.hz, got, err, c.want)
		}
	}
	for _, hz := range []uint32{0, 5000, 10} {
		if _, err := Prescale(hz); !errors.Is(err, ErrFrequency) {
			t.Fatalf("Prescale(%d): got %v, want ErrFrequency", hz, err)
		}
	}
}

func TestConfigureAndFrequency(t *testing.T) {
	bus := &fakeI2C{}
	d := New(bus)
	if err := d.Configure(Config{Address: 0x41, Inverted: true}); err != nil {
		t.Fatalf("configure: %v", err)
	}
	if bus.addr != 0x41 {
		t.Fatalf("address = %#x, want 0x41", bus.addr)
	}
	if bus.regs[regMode2] != mode2Invert|mode2OutDrv {
		t.Fatalf("MODE2 = %#x", bus.regs[regMode2])
	}
	if bus.regs[regMode1] != mode1AI|mode1AllCall {
		t.Fatalf("MODE1 = %#x", bus.regs[regMode1])
	}
	// ALL_LED full off.
	if bus.regs[regAllLED+3] != 0x10 {
		t.Fatalf("ALL_LED_OFF_H = %#x", bus.regs[regAllLED+3])
	}

	if err := d.SetFrequency(500); err != nil {
		t.Fatalf("frequency: %v", err)
	}
	if bus.regs[regPrescale] != 11 || d.PrescaleValue() != 11 {
		t.Fatalf("PRE_SCALE = %d", bus.regs[regPrescale])
	}
	if bus.regs[regMode1]&mode1Sleep != 0 {
		t.Fatal("device left asleep after SetFrequency")
	}
	if bus.regs[regMode1]&mode1Restart == 0 {
		t.Fatal("RESTART not issued")
	}
}

func TestSetDutyEncodings(t *testing.T) {
	bus := &fakeI2C{}
	d := New(bus)
	_ = d.Configure(Config{})

	cases := []struct {
		ch      uint8
		duty    uint32
		on, off uint16
	}{
		{0, 0, 0, fullBit},
		{1, 2048, 0, 2048},
		{2, Resolution, fullBit, 0},
		{15, 9999, fullBit, 0},
	}
	for _, c := range cases {
		if err := d.SetDuty(c.ch, c.duty); err != nil {
			t.Fatalf("SetDuty(%d,%d): %v", c.ch, c.duty, err)
		}
		on, off := bus.counts(c.ch)
		if on != c.on || off != c.off {
			t.Fatalf("ch%d duty %d: on=%#x off=%#x, want on=%#x off=%#x", c.ch, c.duty, on, off, c.on, c.off)
		}
	}
	if err := d.SetDuty(16, 1); !errors.Is(err, ErrChannel) {
		t.Fatalf("channel 16: got %v", err)
	}
}

func TestBusErrorsPropagate(t *testing.T) {
	boom := errors.New("nack")
	d := New(&fakeI2C{fail: boom})
	if err := d.Configure(Config{}); !errors.Is(err, boom) {
		t.Fatalf("configure: got %v", err)
	}
	if err := d.SetDuty(0, 10); !errors.Is(err, boom) {
		t.Fatalf("set duty: got %v", err)
	}
}

func TestSleepKeepsMode(t *testing.T) {
	bus := &fakeI2C{}
	d := New(bus)
	if err := d.Configure(Config{}); err != nil {
		t.Fatal(err)
	}
	if err := d.Sleep(); err != nil {
		t.Fatal(err)
	}
	if got := bus.regs[regMode1]; got != mode1AI|mode1AllCall|mode1Sleep {
		t.Fatalf("MODE1 = %#x after Sleep", got)
	}
}
