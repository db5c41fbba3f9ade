package display

import (
	"fmt"
	"image"
	"image/draw"
	"time"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/devices/v3/ssd1306"
	"periph.io/x/devices/v3/ssd1306/image1bit"

	"github.com/afroash/plant-monitor/internal/models"
)

const lineHeight = 13 // basicfont.Face7x13 ascent-to-ascent

// OLEDRenderer draws the reading panel on an SSD1306 128x64 OLED over
// I2C, one text row per quantity.
type OLEDRenderer struct {
	bus        i2c.BusCloser
	dev        *ssd1306.Dev
	img        *image1bit.VerticalLSB
	showUptime bool
}

// NewOLEDRenderer opens the OLED on the named I2C bus (empty string means
// the first available bus).
func NewOLEDRenderer(busName string, showUptime bool) (*OLEDRenderer, error) {
	bus, err := i2creg.Open(busName)
	if err != nil {
		return nil, fmt.Errorf("open i2c bus %q: %w", busName, err)
	}
	dev, err := ssd1306.NewI2C(bus, &ssd1306.DefaultOpts)
	if err != nil {
		bus.Close()
		return nil, fmt.Errorf("open SSD1306: %w", err)
	}
	return &OLEDRenderer{
		bus:        bus,
		dev:        dev,
		img:        image1bit.NewVerticalLSB(dev.Bounds()),
		showUptime: showUptime,
	}, nil
}

// Splash shows the startup banner.
func (o *OLEDRenderer) Splash(subtitle string) error {
	o.clear()
	o.line(1, title)
	o.line(2, subtitle)
	return o.flush()
}

// Render draws the full panel. A 64px panel holds five 13px text rows,
// so the header row doubles as the status row: the calibration notice
// wins over uptime, uptime over the title. The four data rows always
// stay on the panel.
func (o *OLEDRenderer) Render(r models.Reading, calibrating bool, uptime time.Duration) error {
	o.draw(r, calibrating, uptime)
	return o.flush()
}

// draw fills the frame buffer without touching the device.
func (o *OLEDRenderer) draw(r models.Reading, calibrating bool, uptime time.Duration) {
	o.clear()
	switch {
	case calibrating:
		o.line(1, "Calibrating LDR...")
	case o.showUptime:
		o.line(1, fmt.Sprintf("%-7s %d s", "Uptime:", int(uptime.Seconds())))
	default:
		o.line(1, title)
	}
	o.line(2, fmt.Sprintf("%-7s %s", "Temp:", tempText(r.Temperature)))
	o.line(3, fmt.Sprintf("%-7s %s", "Humid:", humidityText(r.Humidity)))
	o.line(4, fmt.Sprintf("%-7s %s", "Soil:", pctText(r.SoilPct)))
	o.line(5, fmt.Sprintf("%-7s %s", "Light:", pctText(r.LightPct)))
}

// Close blanks the panel and releases the bus.
func (o *OLEDRenderer) Close() error {
	o.dev.Halt()
	return o.bus.Close()
}

func (o *OLEDRenderer) clear() {
	draw.Draw(o.img, o.img.Bounds(), &image.Uniform{image1bit.Off}, image.Point{}, draw.Src)
}

// line draws a text row; rows are numbered from 1 at the top.
func (o *OLEDRenderer) line(n int, text string) {
	d := font.Drawer{
		Dst:  o.img,
		Src:  &image.Uniform{image1bit.On},
		Face: basicfont.Face7x13,
		Dot:  fixed.P(0, n*lineHeight-3),
	}
	d.DrawString(text)
}

func (o *OLEDRenderer) flush() error {
	return o.dev.Draw(o.dev.Bounds(), o.img, image.Point{})
}
