//go:build !pico && !pca9685

package setups

// Selected is the setup main brings up.
var Selected = Dash
