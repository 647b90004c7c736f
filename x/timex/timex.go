package timex

import "time"

// PeriodFromHz returns a nanosecond period for a requested frequency.
// freqHz==0 is coerced to 1 to avoid division by zero.
func PeriodFromHz(freqHz uint32) uint64 {
	if freqHz == 0 {
		freqHz = 1
	}
	return uint64(time.Second) / uint64(freqHz)
}

// PeriodTicks returns how many counter ticks one cycle at freqHz lasts on a
// timer clocked at clockHz and divided by prescaler. A zero prescaler counts
// as 1; a zero frequency, or one the counter cannot resolve, yields 0.
func PeriodTicks(clockHz, prescaler, freqHz uint32) uint32 {
	if prescaler == 0 {
		prescaler = 1
	}
	if freqHz == 0 {
		return 0
	}
	return clockHz / prescaler / freqHz
}

// TickInterval is the wall-clock spacing of a tick source running at hz.
func TickInterval(hz uint32) time.Duration {
	if hz == 0 {
		return 0
	}
	return time.Second / time.Duration(hz)
}
