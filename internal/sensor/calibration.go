package sensor

// Calibrator tracks the minimum and maximum of a raw analog signal during
// a fixed window after boot, establishing the input range for mapping a
// sensor whose absolute levels depend on the environment (an LDR under
// unknown lighting). The min/max pair is seeded to the opposite extremes
// of the ADC domain so the first observation narrows both bounds.
//
// The window transition is one-way and purely time-driven: once it closes
// the observed bounds freeze at whatever was last recorded.
type Calibrator struct {
	window    uint32
	domainMin int
	domainMax int
	margin    int

	min int
	max int
}

// NewCalibrator creates a tracker with the given window in milliseconds,
// the ADC domain bounds, and the margin used to widen a zero-width range.
func NewCalibrator(windowMs uint32, domainMin, domainMax, margin int) *Calibrator {
	return &Calibrator{
		window:    windowMs,
		domainMin: domainMin,
		domainMax: domainMax,
		margin:    margin,
		min:       domainMax,
		max:       domainMin,
	}
}

// Calibrating reports whether the startup window is still open at the
// given milliseconds-since-boot instant.
func (c *Calibrator) Calibrating(sinceBootMs uint32) bool {
	return sinceBootMs < c.window
}

// Observe feeds a raw sample to the tracker. Bounds move only while the
// window is open; the comparison is strict, so a sample taken at the
// exact instant the window elapses is not recorded.
func (c *Calibrator) Observe(raw int, sinceBootMs uint32) {
	if !c.Calibrating(sinceBootMs) {
		return
	}
	if raw < c.min {
		c.min = raw
	}
	if raw > c.max {
		c.max = raw
	}
}

// Bounds returns the tracked range for mapping. A zero-width range (a
// single observed value, or none at all before any variation) is widened
// by the margin on each side, clamped to the ADC domain, so downstream
// mapping never divides by zero. Widening is written back to the tracked
// state rather than recomputed each call.
func (c *Calibrator) Bounds() (min, max int) {
	if c.min == c.max {
		v := c.min
		c.min = v - c.margin
		if c.min < c.domainMin {
			c.min = c.domainMin
		}
		c.max = v + c.margin
		if c.max > c.domainMax {
			c.max = c.domainMax
		}
	}
	return c.min, c.max
}
