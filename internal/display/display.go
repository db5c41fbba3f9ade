// Package display presents sensor snapshots on a local screen and on the
// structured log. It is a thin formatting layer: everything it shows
// comes out of a models.Reading plus the calibration flag, and sentinel
// values render as dashes.
package display

import (
	"time"

	"github.com/afroash/plant-monitor/internal/models"
)

// Renderer draws a reading snapshot on some local output.
type Renderer interface {
	// Splash shows a startup screen with an optional subtitle.
	Splash(subtitle string) error

	// Render draws the full snapshot. calibrating adds a status row while
	// the light sensor is still establishing its range.
	Render(r models.Reading, calibrating bool, uptime time.Duration) error

	Close() error
}

// NopRenderer discards everything. Used when the display is disabled.
type NopRenderer struct{}

func (NopRenderer) Splash(string) error                              { return nil }
func (NopRenderer) Render(models.Reading, bool, time.Duration) error { return nil }
func (NopRenderer) Close() error                                     { return nil }
