package display

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/afroash/plant-monitor/internal/models"
)

func validReading() models.Reading {
	return models.Reading{
		Timestamp:   time.Now(),
		Temperature: 23.5,
		Humidity:    41.2,
		SoilPct:     57,
		LightPct:    88,
		SoilRaw:     2172,
		LightRaw:    1830,
	}
}

func TestConsoleRenderer_Render(t *testing.T) {
	var buf bytes.Buffer
	r := NewConsoleRenderer(&buf, false)

	if err := r.Render(validReading(), false, 12*time.Second); err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	out := buf.String()
	for _, want := range []string{
		"Temp:    23.5 C",
		"Humid:   41.2 %",
		"Soil:    57 %",
		"Light:   88 %",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "Uptime:") {
		t.Error("uptime row rendered while disabled")
	}
	if strings.Contains(out, "Calibrating") {
		t.Error("calibration row rendered while settled")
	}
}

func TestConsoleRenderer_RenderSentinels(t *testing.T) {
	var buf bytes.Buffer
	r := NewConsoleRenderer(&buf, false)

	if err := r.Render(models.NewReading(), true, time.Second); err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	out := buf.String()
	for _, want := range []string{
		"Status:  Calibrating LDR...",
		"Temp:    --.- C",
		"Humid:   -- %",
		"Soil:    -- %",
		"Light:   -- %",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestConsoleRenderer_Uptime(t *testing.T) {
	var buf bytes.Buffer
	r := NewConsoleRenderer(&buf, true)

	if err := r.Render(validReading(), false, 42*time.Second); err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if !strings.Contains(buf.String(), "Uptime:  42 s") {
		t.Errorf("output missing uptime row:\n%s", buf.String())
	}
}

func TestConsoleRenderer_Splash(t *testing.T) {
	var buf bytes.Buffer
	r := NewConsoleRenderer(&buf, false)

	if err := r.Splash("sensors only"); err != nil {
		t.Fatalf("Splash failed: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "plant-monitor") || !strings.Contains(out, "sensors only") {
		t.Errorf("splash output = %q", out)
	}
}

func TestNopRenderer(t *testing.T) {
	var r Renderer = NopRenderer{}
	if err := r.Splash("x"); err != nil {
		t.Errorf("Splash() = %v", err)
	}
	if err := r.Render(validReading(), false, 0); err != nil {
		t.Errorf("Render() = %v", err)
	}
	if err := r.Close(); err != nil {
		t.Errorf("Close() = %v", err)
	}
}
