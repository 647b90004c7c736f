package pwm

import (
	"errors"

	"rgbcycle-go/drivers/pca9685"
	"rgbcycle-go/errcode"
	"rgbcycle-go/x/logx"
	"rgbcycle-go/x/mathx"
)

// PCA9685 adapts the I²C expander to Engine. Its period is fixed at 4096
// counts; the frequency only moves the prescaler. Channel pins are
// dedicated, so Attach does no routing.
type PCA9685 struct {
	dev     *pca9685.Device
	period  uint32
	compare [16]uint32
	err     error
}

func NewPCA9685(dev *pca9685.Device) *PCA9685 { return &PCA9685{dev: dev} }

func (p *PCA9685) Configure(freqHz uint32) (uint32, error) {
	const op = "pca9685.configure"
	if err := p.dev.Configure(pca9685.Config{Inverted: true}); err != nil {
		return 0, errcode.Wrap(errcode.IOError, op, err)
	}
	if err := p.dev.SetFrequency(freqHz); err != nil {
		if errors.Is(err, pca9685.ErrFrequency) {
			return 0, errcode.Wrap(errcode.InvalidParams, op, err)
		}
		return 0, errcode.Wrap(errcode.IOError, op, err)
	}
	p.period = pca9685.Resolution
	return p.period, nil
}

func (p *PCA9685) Attach(ch uint8, pin string, _ uint8) error {
	if int(ch) >= len(p.compare) {
		return errcode.New(errcode.UnknownChannel, "pca9685.attach", pin)
	}
	return nil
}

// SetCompare writes through to the device. A bus error is kept for Err and
// logged once; the next successful write clears it.
func (p *PCA9685) SetCompare(ch uint8, v uint32) {
	if int(ch) >= len(p.compare) {
		return
	}
	v = mathx.Min(v, p.period)
	p.compare[ch] = v
	err := p.dev.SetDuty(ch, v)
	if err != nil && p.err == nil {
		logx.Warn("pca9685", "write failed", logx.Uint("ch", uint32(ch)), logx.Err(err))
	}
	p.err = err
}

func (p *PCA9685) Compare(ch uint8) uint32 {
	if int(ch) >= len(p.compare) {
		return 0
	}
	return p.compare[ch]
}

// Err returns the error of the most recent SetCompare, if any.
func (p *PCA9685) Err() error { return p.err }

// Stop puts the expander to sleep, which turns every output off.
func (p *PCA9685) Stop() error {
	if err := p.dev.Sleep(); err != nil {
		return errcode.Wrap(errcode.IOError, "pca9685.stop", err)
	}
	return nil
}
