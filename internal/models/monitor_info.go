package models

import "time"

// MonitorInfo contains metadata about the monitor device
type MonitorInfo struct {
	ID        string    `json:"id"`
	Location  string    `json:"location"`
	Hardware  string    `json:"hardware"`
	Version   string    `json:"version"`
	StartTime time.Time `json:"start_time"`
}

// Uptime returns the duration since the monitor started
func (m *MonitorInfo) Uptime() time.Duration {
	return time.Since(m.StartTime)
}

// NewMonitorInfo creates a new MonitorInfo with the current time as start time
func NewMonitorInfo(id, location, hardware, version string) *MonitorInfo {
	return &MonitorInfo{
		ID:        id,
		Location:  location,
		Hardware:  hardware,
		Version:   version,
		StartTime: time.Now(),
	}
}
