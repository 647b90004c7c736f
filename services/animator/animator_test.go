package animator

import (
	"runtime"
	"testing"
	"time"

	"rgbcycle-go/errcode"
	"rgbcycle-go/services/clock"
	"rgbcycle-go/services/color"
	"rgbcycle-go/types"
)

// recChannels is a scripted Channels with blue=0, red=1, green=2, matching
// the reference board.
type recChannels struct {
	bound  map[types.Component]int
	values [3]float32
	pushes int
}

func newRec() *recChannels {
	return &recChannels{bound: map[types.Component]int{types.Blue: 0, types.Red: 1, types.Green: 2}}
}

func (r *recChannels) Lookup(c types.Component) (int, bool) {
	i, ok := r.bound[c]
	return i, ok
}

func (r *recChannels) SetThreshold(ch int, v float32) {
	r.values[ch] = v
	r.pushes++
}

func (r *recChannels) Threshold(ch int) uint32 { return uint32(r.values[ch] * 2000) }

func newAnim(t *testing.T, start float32) (*Animator, *recChannels, *clock.Clock) {
	t.Helper()
	rec := newRec()
	light, err := NewLight(rec)
	if err != nil {
		t.Fatal(err)
	}
	cfg := types.DefaultConfig()
	cfg.StartHue = start
	cfg.LogEvery = 0
	clk := clock.New()
	return New(light, clk, cfg), rec, clk
}

func TestSetColorUsesBindings(t *testing.T) {
	rec := newRec()
	light, err := NewLight(rec)
	if err != nil {
		t.Fatal(err)
	}
	light.SetColor(color.RGB{R: 0.1, G: 0.2, B: 0.3})
	if rec.values != [3]float32{0.3, 0.1, 0.2} {
		t.Fatalf("channel values = %v", rec.values)
	}
	if rec.pushes != 3 {
		t.Fatalf("pushes = %d", rec.pushes)
	}
	want := [3]uint32{rec.Threshold(1), rec.Threshold(2), rec.Threshold(0)}
	if got := light.Thresholds(); got != want {
		t.Fatalf("thresholds = %v", got)
	}
}

func TestNewLightNeedsEveryComponent(t *testing.T) {
	rec := newRec()
	delete(rec.bound, types.Green)
	if _, err := NewLight(rec); errcode.Of(err) != errcode.UnknownChannel {
		t.Fatalf("got %v, want unknown_channel", err)
	}
}

func TestHueWrapsExactly(t *testing.T) {
	a, rec, _ := newAnim(t, 358)
	var seen []float32
	a.OnFrame = func(f Frame) { seen = append(seen, f.Hue) }
	for i := 0; i < 3; i++ {
		a.Step()
	}
	want := []float32{359, 0, 1}
	for i := range want {
		if seen[i] != want[i] {
			t.Fatalf("hue sequence = %v, want %v", seen, want)
		}
	}
	// Last push was hue 1 at full saturation: red full, green small, blue off.
	c := color.HSVToRGB(1, 1, 1)
	if rec.values != [3]float32{c.B, c.R, c.G} {
		t.Fatalf("pushed %v for hue 1, want %+v", rec.values, c)
	}
}

func TestFullSweepReturnsToStart(t *testing.T) {
	a, _, _ := newAnim(t, 0)
	for i := 0; i < 360; i++ {
		a.Step()
	}
	if a.Hue() != 0 {
		t.Fatalf("hue after 360 steps = %v", a.Hue())
	}
	for i := 0; i < 120; i++ {
		a.Step()
	}
	if a.Hue() != 120 {
		t.Fatalf("hue after 480 steps = %v", a.Hue())
	}
}

func TestStepPushesConvertedColor(t *testing.T) {
	a, rec, _ := newAnim(t, 119)
	f := a.Step()
	if f.Hue != 120 || f.Color != (color.RGB{R: 0, G: 1, B: 0}) {
		t.Fatalf("frame = %+v", f)
	}
	if rec.values != [3]float32{0, 0, 1} {
		t.Fatalf("pushed %v, want green only", rec.values)
	}
}

// The idle hook ticks the clock, so Run's pacing is exact and the test
// controls the loop through OnFrame.
func TestRunPacesFramesByInterval(t *testing.T) {
	a, _, clk := newAnim(t, 0)
	clk.SetIdle(clk.Tick)

	var stamps []uint32
	a.OnFrame = func(Frame) {
		stamps = append(stamps, clk.Now())
		if len(stamps) == 5 {
			runtime.Goexit()
		}
	}
	done := make(chan struct{})
	go func() {
		defer close(done)
		a.Run()
	}()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not produce 5 frames")
	}
	for i := 1; i < len(stamps); i++ {
		if d := stamps[i] - stamps[i-1]; d != 10 {
			t.Fatalf("frame spacing %d ms at %d, want 10 (stamps %v)", d, i, stamps)
		}
	}
}
