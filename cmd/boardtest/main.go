// cmd/boardtest/main.go
package main

import (
	"time"

	"rgbcycle-go/services/color"
	"rgbcycle-go/services/platform"
	"rgbcycle-go/services/setups"
	"rgbcycle-go/types"
	"rgbcycle-go/x/logx"
)

// ---------- Configuration ----------

const (
	dwellMs = 1000

	// Cycles: 0 = loop forever
	cyclesToRun = 0
)

// Wiring check: each component alone, then all together, then dark.
var sequence = []struct {
	name string
	rgb  color.RGB
}{
	{"red", color.RGB{R: 1}},
	{"green", color.RGB{G: 1}},
	{"blue", color.RGB{B: 1}},
	{"white", color.RGB{R: 1, G: 1, B: 1}},
	{"off", color.RGB{}},
}

func main() {
	time.Sleep(2 * time.Second)
	logx.Info("boardtest", "start", logx.Str("setup", setups.Selected.Name))

	rig, err := platform.Bringup(setups.Selected, types.DefaultConfig())
	if err != nil {
		logx.Error("boardtest", "bringup failed", logx.Err(err))
		return
	}
	defer rig.Close()

	for cycle := 1; cyclesToRun == 0 || cycle <= cyclesToRun; cycle++ {
		for _, step := range sequence {
			rig.Light.SetColor(step.rgb)
			th := rig.Light.Thresholds()
			logx.Info("boardtest", step.name, logx.Int("cycle", cycle),
				logx.Uint("r", th[0]), logx.Uint("g", th[1]), logx.Uint("b", th[2]))
			rig.Clock.Delay(dwellMs)
		}
	}
	logx.Info("boardtest", "done")
}
