package setups

import (
	"testing"

	"rgbcycle-go/types"
)

func TestSetupsAreComplete(t *testing.T) {
	for _, s := range []Setup{Dash, PicoRGB, PCA9685RGB} {
		seen := map[types.Component]bool{}
		for _, b := range s.Bindings {
			if seen[b.Component] {
				t.Fatalf("%s: %s bound twice", s.Name, b.Component)
			}
			seen[b.Component] = true
			if _, ok := s.Timer(b.Timer); !ok {
				t.Fatalf("%s: binding %s uses unknown timer %q", s.Name, b.Pin, b.Timer)
			}
		}
		for _, c := range []types.Component{types.Red, types.Green, types.Blue} {
			if !seen[c] {
				t.Fatalf("%s: %s not bound", s.Name, c)
			}
		}
	}
}

func TestDashMatchesReferenceWiring(t *testing.T) {
	want := map[types.Component]types.Binding{
		types.Blue:  {Component: types.Blue, Pin: "PA8", Timer: "TIM1", Channel: 0, AltFunc: 1},
		types.Red:   {Component: types.Red, Pin: "PB6", Timer: "TIM4", Channel: 0, AltFunc: 2},
		types.Green: {Component: types.Green, Pin: "PB7", Timer: "TIM4", Channel: 1, AltFunc: 2},
	}
	for _, b := range Dash.Bindings {
		if b != want[b.Component] {
			t.Fatalf("%s binding = %+v", b.Component, b)
		}
	}
	if tim1, _ := Dash.Timer("TIM1"); !tim1.Advanced {
		t.Fatal("TIM1 must be an advanced timer")
	}
}
