package errcode

import (
	"errors"
	"testing"
)

func TestCodesAreStableStrings(t *testing.T) {
	cases := map[string]Code{
		"invalid_params":  InvalidParams,
		"unknown_channel": UnknownChannel,
		"unknown_timer":   UnknownTimer,
		"unknown_pin":     UnknownPin,
		"not_configured":  NotConfigured,
		"conflict":        Conflict,
		"unsupported":     Unsupported,
		"io_error":        IOError,
	}
	for want, c := range cases {
		if c.Error() != want {
			t.Fatalf("code %q mismatch: got %q", want, c.Error())
		}
	}
}

func TestOf(t *testing.T) {
	io := errors.New("nack")
	cases := []struct {
		name string
		err  error
		want Code
	}{
		{"nil", nil, OK},
		{"bare code", Conflict, Conflict},
		{"wrapped E", Wrap(IOError, "pca9685.write", io), IOError},
		{"E via New", New(UnknownTimer, "pwm.configure", "TIM9"), UnknownTimer},
		{"foreign", io, Error},
	}
	for _, c := range cases {
		if got := Of(c.err); got != c.want {
			t.Fatalf("%s: Of = %q, want %q", c.name, got, c.want)
		}
	}
}

func TestEFormatsAndUnwraps(t *testing.T) {
	cause := errors.New("bus stuck")
	err := Wrap(IOError, "pca9685.write", cause)
	if got, want := err.Error(), "pca9685.write: io_error (bus stuck)"; got != want {
		t.Fatalf("Error() = %q, want %q", got, want)
	}
	if !errors.Is(err, cause) {
		t.Fatal("errors.Is did not reach the cause")
	}
	if Wrap(IOError, "noop", nil) != nil {
		t.Fatal("Wrap(nil) must stay nil")
	}
	if got, want := New(Conflict, "pwm.configure", "period mismatch").Error(), "pwm.configure: conflict: period mismatch"; got != want {
		t.Fatalf("Error() = %q, want %q", got, want)
	}
}
