package sensor

import "testing"

func TestMapConstrain(t *testing.T) {
	tests := []struct {
		name                            string
		x, inMin, inMax, outMin, outMax int
		want                            int
	}{
		{"lower bound", 1000, 1000, 3000, 0, 100, 0},
		{"upper bound", 3000, 1000, 3000, 0, 100, 100},
		{"midpoint", 2000, 1000, 3000, 0, 100, 50},
		{"below range clamps", -500, 1000, 3000, 0, 100, 0},
		{"above range clamps", 9999, 1000, 3000, 0, 100, 100},
		{"inverted output", 1000, 1000, 3000, 100, 0, 100},
		{"inverted output upper", 3000, 1000, 3000, 100, 0, 0},
		{"degenerate range", 42, 5, 5, 10, 20, 10},
		{"degenerate range other x", -1000, 5, 5, 10, 20, 10},
		{"full ADC domain", 4095, 0, 4095, 0, 100, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MapConstrain(tt.x, tt.inMin, tt.inMax, tt.outMin, tt.outMax)
			if got != tt.want {
				t.Errorf("MapConstrain(%d, %d, %d, %d, %d) = %d, want %d",
					tt.x, tt.inMin, tt.inMax, tt.outMin, tt.outMax, got, tt.want)
			}
		})
	}
}

func TestMapConstrain_Monotonic(t *testing.T) {
	prev := MapConstrain(-200, 1000, 3000, 0, 100)
	for x := -199; x <= 4200; x++ {
		got := MapConstrain(x, 1000, 3000, 0, 100)
		if got < prev {
			t.Fatalf("MapConstrain not monotonic at x=%d: %d < %d", x, got, prev)
		}
		prev = got
	}
}

func TestMapConstrainBi(t *testing.T) {
	tests := []struct {
		name                        string
		x, inA, inB, outMin, outMax int
		want                        int
	}{
		{"normal orientation low", 0, 0, 100, 0, 100, 0},
		{"normal orientation high", 100, 0, 100, 0, 100, 100},
		{"inverted low maps high", 0, 100, 0, 0, 100, 100},
		{"inverted high maps low", 100, 100, 0, 0, 100, 0},
		{"inverted midpoint", 50, 100, 0, 0, 100, 50},
		{"degenerate returns outMin", 77, 9, 9, 5, 95, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MapConstrainBi(tt.x, tt.inA, tt.inB, tt.outMin, tt.outMax)
			if got != tt.want {
				t.Errorf("MapConstrainBi(%d, %d, %d, %d, %d) = %d, want %d",
					tt.x, tt.inA, tt.inB, tt.outMin, tt.outMax, got, tt.want)
			}
		})
	}
}

// The soil probe runs backwards: low raw value in water, high in air.
func TestMapConstrainBi_SoilCalibration(t *testing.T) {
	const (
		rawWater = 1200
		rawAir   = 3000
	)

	tests := []struct {
		name string
		raw  int
		want int
	}{
		{"in water", 1200, 100},
		{"in dry air", 3000, 0},
		{"midpoint", 2100, 50},
		{"wetter than water calibration", 800, 100},
		{"drier than air calibration", 3900, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MapConstrainBi(tt.raw, rawWater, rawAir, 100, 0)
			if got != tt.want {
				t.Errorf("soil raw %d mapped to %d%%, want %d%%", tt.raw, got, tt.want)
			}
		})
	}
}
