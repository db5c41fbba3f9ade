package sensor

// Ticker is a non-blocking interval gate over a millisecond uptime clock.
// It never sleeps; callers poll Due with the current clock reading from
// their own loop.
type Ticker struct {
	period uint32
	last   uint32
}

// NewTicker creates a ticker that fires every periodMs milliseconds.
func NewTicker(periodMs uint32) *Ticker {
	return &Ticker{period: periodMs}
}

// Set changes the ticker period.
func (t *Ticker) Set(periodMs uint32) {
	t.period = periodMs
}

// Due reports whether the period has elapsed since the last true result,
// and resets the reference timestamp only when it returns true. The
// elapsed time is computed with unsigned subtraction, so a wrapped uptime
// clock (uint32 milliseconds wrap roughly every 49.7 days) still yields
// the actual elapsed interval.
func (t *Ticker) Due(now uint32) bool {
	if now-t.last >= t.period {
		t.last = now
		return true
	}
	return false
}
