package sensor

import "testing"

func TestTicker_Due(t *testing.T) {
	tick := NewTicker(1000)

	if tick.Due(0) {
		t.Error("Due(0) = true, want false before first period")
	}
	if tick.Due(999) {
		t.Error("Due(999) = true, want false before first period")
	}
	if !tick.Due(1000) {
		t.Error("Due(1000) = false, want true at first period")
	}
	if tick.Due(1000) {
		t.Error("repeated Due at the same instant = true, want false")
	}
	if tick.Due(1500) {
		t.Error("Due(1500) = true, want false mid-period")
	}
	if !tick.Due(2000) {
		t.Error("Due(2000) = false, want true at second period")
	}
}

func TestTicker_AtMostOncePerPeriod(t *testing.T) {
	tick := NewTicker(250)

	fires := 0
	for now := uint32(0); now <= 1000; now += 25 {
		if tick.Due(now) {
			fires++
		}
	}
	// Fires at 250, 500, 750, 1000.
	if fires != 4 {
		t.Errorf("got %d fires over 1000ms at 250ms period, want 4", fires)
	}
}

func TestTicker_Wraparound(t *testing.T) {
	tick := NewTicker(1000)

	// Drive the reference timestamp near the top of the uint32 range.
	last := uint32(0xFFFFFE0C) // 500ms before wrap
	if !tick.Due(last) {
		t.Fatal("priming fire did not trigger")
	}

	// 796ms of real elapsed time, wrapping through zero.
	if tick.Due(296) {
		t.Error("Due fired after 796ms across the wrap, want not due")
	}
	// 1000ms of real elapsed time.
	if !tick.Due(500) {
		t.Error("Due did not fire after 1000ms across the wrap")
	}
}

func TestTicker_Set(t *testing.T) {
	tick := NewTicker(1000)
	tick.Set(100)

	if !tick.Due(100) {
		t.Error("Due(100) = false after Set(100), want true")
	}
}
