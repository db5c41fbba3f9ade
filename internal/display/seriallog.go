package display

import (
	"math"

	"github.com/rs/zerolog"

	"github.com/afroash/plant-monitor/internal/models"
)

// SerialLogger emits the once-per-interval reading line on the structured
// log, the role the reference firmware's serial output played. Failed
// values appear as placeholder strings so downstream log analysis can
// tell "missing" from "zero".
type SerialLogger struct {
	logger zerolog.Logger
}

// NewSerialLogger creates a logger for reading lines.
func NewSerialLogger(logger zerolog.Logger) *SerialLogger {
	return &SerialLogger{logger: logger}
}

// Log writes one reading line.
func (s *SerialLogger) Log(r models.Reading, calibrating bool) {
	ev := s.logger.Info()
	if math.IsNaN(r.Temperature) {
		ev = ev.Str("temp_c", "--.-")
	} else {
		ev = ev.Float64("temp_c", r.Temperature)
	}
	if math.IsNaN(r.Humidity) {
		ev = ev.Str("humidity", "--.-")
	} else {
		ev = ev.Float64("humidity", r.Humidity)
	}
	if r.SoilPct < 0 {
		ev = ev.Str("soil_pct", "--")
	} else {
		ev = ev.Int("soil_pct", r.SoilPct)
	}
	if r.LightPct < 0 {
		ev = ev.Str("light_pct", "--")
	} else {
		ev = ev.Int("light_pct", r.LightPct)
	}
	ev.Bool("calibrating", calibrating).Msg("reading")
}
