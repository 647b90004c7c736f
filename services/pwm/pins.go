package pwm

import (
	"strconv"
	"strings"
)

// GPIONumber parses an RP2 style pin name ("GP15") into its GPIO number.
func GPIONumber(name string) (int, bool) {
	s, ok := strings.CutPrefix(name, "GP")
	if !ok || s == "" {
		return 0, false
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 || n > 29 {
		return 0, false
	}
	return n, true
}
