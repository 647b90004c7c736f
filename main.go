package main

import (
	"time"

	"rgbcycle-go/services/animator"
	"rgbcycle-go/services/platform"
	"rgbcycle-go/services/setups"
	"rgbcycle-go/types"
	"rgbcycle-go/x/logx"
)

func main() {
	// Allow USB CDC to enumerate before we print.
	time.Sleep(2 * time.Second)
	logx.Info("main", "boot", logx.Str("setup", setups.Selected.Name))

	cfg := types.DefaultConfig()
	rig, err := platform.Bringup(setups.Selected, cfg)
	if err != nil {
		logx.Error("main", "bringup failed", logx.Err(err))
		for {
			time.Sleep(time.Second)
		}
	}

	animator.New(rig.Light, rig.Clock, cfg).Run()
}
