package display

import (
	"fmt"
	"io"
	"math"
	"strings"
	"time"

	"github.com/afroash/plant-monitor/internal/models"
)

const title = "plant-monitor"

// ConsoleRenderer writes the reading panel as plain text rows, one panel
// per refresh. Useful on a serial console or when developing without the
// OLED attached.
type ConsoleRenderer struct {
	w          io.Writer
	showUptime bool
}

// NewConsoleRenderer creates a renderer writing to w.
func NewConsoleRenderer(w io.Writer, showUptime bool) *ConsoleRenderer {
	return &ConsoleRenderer{w: w, showUptime: showUptime}
}

// Splash shows the startup banner.
func (c *ConsoleRenderer) Splash(subtitle string) error {
	_, err := fmt.Fprintf(c.w, "%s\n%s\n", title, subtitle)
	return err
}

// Render writes the full panel.
func (c *ConsoleRenderer) Render(r models.Reading, calibrating bool, uptime time.Duration) error {
	var b strings.Builder
	b.WriteString(title + "\n")
	if c.showUptime {
		row(&b, "Uptime:", fmt.Sprintf("%d s", int(uptime.Seconds())))
	}
	if calibrating {
		row(&b, "Status:", "Calibrating LDR...")
	}
	row(&b, "Temp:", tempText(r.Temperature))
	row(&b, "Humid:", humidityText(r.Humidity))
	row(&b, "Soil:", pctText(r.SoilPct))
	row(&b, "Light:", pctText(r.LightPct))
	_, err := io.WriteString(c.w, b.String())
	return err
}

func (c *ConsoleRenderer) Close() error {
	return nil
}

// row keeps the key column aligned across all data rows.
func row(b *strings.Builder, key, val string) {
	fmt.Fprintf(b, "%-8s %s\n", key, val)
}

func tempText(v float64) string {
	if math.IsNaN(v) {
		return "--.- C"
	}
	return fmt.Sprintf("%.1f C", v)
}

func humidityText(v float64) string {
	if math.IsNaN(v) {
		return "-- %"
	}
	return fmt.Sprintf("%.1f %%", v)
}

func pctText(v int) string {
	if v < 0 {
		return "-- %"
	}
	return fmt.Sprintf("%d %%", v)
}
