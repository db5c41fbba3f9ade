package models

import (
	"testing"
	"time"
)

func TestNewMonitorInfo(t *testing.T) {
	info := NewMonitorInfo("plant-01", "Living Room", "DHT22 + soil + LDR", "v0.1.0")

	if info == nil {
		t.Fatal("NewMonitorInfo returned nil")
	}
	if info.ID != "plant-01" {
		t.Errorf("ID = %v, want plant-01", info.ID)
	}
	if info.Location != "Living Room" {
		t.Errorf("Location = %v, want Living Room", info.Location)
	}
	if info.Hardware != "DHT22 + soil + LDR" {
		t.Errorf("Hardware = %v", info.Hardware)
	}
	if info.Version != "v0.1.0" {
		t.Errorf("Version = %v, want v0.1.0", info.Version)
	}
	if info.StartTime.IsZero() {
		t.Error("StartTime should not be zero")
	}
}

func TestMonitorInfo_Uptime(t *testing.T) {
	info := NewMonitorInfo("plant-01", "Test Lab", "test", "v0.1.0")
	info.StartTime = time.Now().Add(-5 * time.Second)

	uptime := info.Uptime()
	if uptime < 5*time.Second || uptime > 6*time.Second {
		t.Errorf("Uptime() = %v, want about 5s", uptime)
	}
}
