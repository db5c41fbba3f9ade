package display

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"

	"github.com/afroash/plant-monitor/internal/models"
)

func TestSerialLogger_Log(t *testing.T) {
	var buf bytes.Buffer
	s := NewSerialLogger(zerolog.New(&buf))

	s.Log(validReading(), false)

	var line map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &line); err != nil {
		t.Fatalf("log line is not JSON: %v", err)
	}
	if line["temp_c"] != 23.5 {
		t.Errorf("temp_c = %v, want 23.5", line["temp_c"])
	}
	if line["soil_pct"] != float64(57) {
		t.Errorf("soil_pct = %v, want 57", line["soil_pct"])
	}
	if line["calibrating"] != false {
		t.Errorf("calibrating = %v, want false", line["calibrating"])
	}
}

func TestSerialLogger_LogSentinels(t *testing.T) {
	var buf bytes.Buffer
	s := NewSerialLogger(zerolog.New(&buf))

	s.Log(models.NewReading(), true)

	var line map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &line); err != nil {
		t.Fatalf("log line is not JSON: %v", err)
	}
	if line["temp_c"] != "--.-" {
		t.Errorf("temp_c = %v, want placeholder", line["temp_c"])
	}
	if line["light_pct"] != "--" {
		t.Errorf("light_pct = %v, want placeholder", line["light_pct"])
	}
	if line["calibrating"] != true {
		t.Errorf("calibrating = %v, want true", line["calibrating"])
	}
}
