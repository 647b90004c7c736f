//go:build pca9685

package setups

// Selected is the setup main brings up.
var Selected = PCA9685RGB
