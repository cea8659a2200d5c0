package game

import "time"

// pausedFPS caps the frame rate while the cursor is released.
const pausedFPS = 30

// FPSLimiter provides high-precision frame rate limiting
type FPSLimiter struct {
	limit int
	next  time.Time
}

// NewFPSLimiter creates a limiter for limit frames per second. A limit of
// zero or less disables limiting.
func NewFPSLimiter(limit int) *FPSLimiter {
	return &FPSLimiter{limit: limit}
}

// Limit reports the effective cap for the given pause state.
func (f *FPSLimiter) Limit(paused bool) int {
	if paused && (f.limit <= 0 || f.limit > pausedFPS) {
		return pausedFPS
	}
	return f.limit
}

// Wait blocks until the next frame should be rendered based on the FPS limit.
// Uses a hybrid sleep/spin approach for better precision on high FPS caps.
func (f *FPSLimiter) Wait(paused bool) {
	effectiveLimit := f.Limit(paused)
	if effectiveLimit <= 0 {
		f.next = time.Time{}
		return
	}

	target := time.Second / time.Duration(effectiveLimit)

	if f.next.IsZero() {
		f.next = time.Now().Add(target)
	} else {
		f.next = f.next.Add(target)
	}

	for {
		remaining := time.Until(f.next)
		if remaining <= 0 {
			break
		}
		if remaining > 200*time.Microsecond {
			time.Sleep(remaining - 200*time.Microsecond)
		}
		// spin for the final few microseconds
		if time.Until(f.next) <= 0 {
			break
		}
	}

	// resync after a hitch instead of trying to catch up
	if late := -time.Until(f.next); late > target {
		f.next = time.Now().Add(target)
	}
}
