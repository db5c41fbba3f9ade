package models

import (
	"encoding/json"
	"fmt"
	"math"
	"time"
)

// Sentinel values for readings that are unavailable. Temperature and
// humidity use NaN instead.
const (
	PctUnavailable = -1 // percentage not available (failure or calibrating)
	RawUnset       = -1 // raw ADC value never read this cycle
)

// Reading is one complete snapshot of all monitored quantities. A fresh
// Reading fully replaces the previous one on every sample cycle; fields
// for sensors that failed carry their sentinel while the others still
// hold valid values.
type Reading struct {
	Timestamp   time.Time `json:"timestamp"`
	Temperature float64   `json:"temperature"` // °C, NaN = sensor failure
	Humidity    float64   `json:"humidity"`    // %RH, NaN = sensor failure
	SoilPct     int       `json:"soil_pct"`    // 0-100, -1 = failure
	LightPct    int       `json:"light_pct"`   // 0-100, -1 = calibrating/failure
	SoilRaw     int       `json:"soil_raw"`    // raw ADC value, -1 = unset
	LightRaw    int       `json:"light_raw"`   // raw ADC value, -1 = unset
}

// NewReading creates a Reading with the current timestamp and every field
// set to its unavailable sentinel.
func NewReading() Reading {
	return Reading{
		Timestamp:   time.Now(),
		Temperature: math.NaN(),
		Humidity:    math.NaN(),
		SoilPct:     PctUnavailable,
		LightPct:    PctUnavailable,
		SoilRaw:     RawUnset,
		LightRaw:    RawUnset,
	}
}

// IsValid checks that every populated field is within its plausible range.
// Sentinel values are considered valid; they signal unavailability, not
// corruption.
func (r *Reading) IsValid() bool {
	const (
		minTemp     = -40.0
		maxTemp     = 80.0
		minHumidity = 0.0
		maxHumidity = 100.0
	)

	if r.Timestamp.IsZero() {
		return false
	}
	if !math.IsNaN(r.Temperature) && (r.Temperature < minTemp || r.Temperature > maxTemp) {
		return false
	}
	if !math.IsNaN(r.Humidity) && (r.Humidity < minHumidity || r.Humidity > maxHumidity) {
		return false
	}
	if r.SoilPct < PctUnavailable || r.SoilPct > 100 {
		return false
	}
	if r.LightPct < PctUnavailable || r.LightPct > 100 {
		return false
	}
	return true
}

// String renders the reading as a single log-friendly line, with dashes
// standing in for unavailable values.
func (r *Reading) String() string {
	return fmt.Sprintf("Temp: %s C, Humidity: %s %%, Soil: %s %%, Light: %s %%",
		fmtFloat(r.Temperature),
		fmtFloat(r.Humidity),
		fmtPct(r.SoilPct),
		fmtPct(r.LightPct))
}

func fmtFloat(v float64) string {
	if math.IsNaN(v) {
		return "--.-"
	}
	return fmt.Sprintf("%.1f", v)
}

func fmtPct(v int) string {
	if v < 0 {
		return "--"
	}
	return fmt.Sprintf("%d", v)
}

// readingJSON is the wire form of a Reading. NaN is not representable in
// JSON, so failed temperature/humidity readings cross the boundary as null.
type readingJSON struct {
	Timestamp   time.Time `json:"timestamp"`
	Temperature *float64  `json:"temperature"`
	Humidity    *float64  `json:"humidity"`
	SoilPct     int       `json:"soil_pct"`
	LightPct    int       `json:"light_pct"`
	SoilRaw     int       `json:"soil_raw"`
	LightRaw    int       `json:"light_raw"`
}

// MarshalJSON converts the NaN sentinels to null at the interface boundary.
func (r Reading) MarshalJSON() ([]byte, error) {
	out := readingJSON{
		Timestamp: r.Timestamp,
		SoilPct:   r.SoilPct,
		LightPct:  r.LightPct,
		SoilRaw:   r.SoilRaw,
		LightRaw:  r.LightRaw,
	}
	if !math.IsNaN(r.Temperature) {
		t := r.Temperature
		out.Temperature = &t
	}
	if !math.IsNaN(r.Humidity) {
		h := r.Humidity
		out.Humidity = &h
	}
	return json.Marshal(out)
}

// UnmarshalJSON restores null fields to their NaN sentinels.
func (r *Reading) UnmarshalJSON(data []byte) error {
	var in readingJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}
	r.Timestamp = in.Timestamp
	r.SoilPct = in.SoilPct
	r.LightPct = in.LightPct
	r.SoilRaw = in.SoilRaw
	r.LightRaw = in.LightRaw
	r.Temperature = math.NaN()
	if in.Temperature != nil {
		r.Temperature = *in.Temperature
	}
	r.Humidity = math.NaN()
	if in.Humidity != nil {
		r.Humidity = *in.Humidity
	}
	return nil
}
