package sensor

import (
	"fmt"
	"math"

	"github.com/afroash/dht"
)

// DHTReader implements EnvironmentSensor for DHT11/DHT22 hardware on a
// GPIO pin.
type DHTReader struct {
	pin        int
	maxRetries int
	sensor     *dht.Sensor
}

// NewDHTReader opens a DHT sensor of the given model on a GPIO pin.
// The DHT protocol is timing-sensitive and reads fail routinely, so every
// read retries up to three times internally.
func NewDHTReader(model string, pin int) (*DHTReader, error) {
	var (
		s   *dht.Sensor
		err error
	)
	switch model {
	case "DHT11":
		s, err = dht.NewDHT11(pin)
	case "DHT22", "AM2302":
		s, err = dht.NewDHT22(pin)
	default:
		return nil, fmt.Errorf("unsupported DHT model %q", model)
	}
	if err != nil {
		return nil, fmt.Errorf("open %s on pin %d: %w", model, pin, err)
	}
	return &DHTReader{
		pin:        pin,
		maxRetries: 3,
		sensor:     s,
	}, nil
}

// Read performs a reading with retry logic. Each quantity is checked for
// plausibility independently; an implausible value degrades to NaN while
// the other survives.
func (d *DHTReader) Read() (float64, float64, error) {
	reading, err := d.sensor.ReadRetry(d.maxRetries)
	if err != nil {
		return math.NaN(), math.NaN(), fmt.Errorf("after %d retries, failed to read from sensor: %w", d.maxRetries, err)
	}
	temp, hum := sanitize(reading.Temperature, reading.Humidity)
	return temp, hum, nil
}

// Close cleans up GPIO resources
func (d *DHTReader) Close() error {
	return d.sensor.Close()
}

// sanitize replaces physically implausible values with NaN, per quantity.
func sanitize(temp, humidity float64) (float64, float64) {
	const (
		minTemp     = -40.0
		maxTemp     = 80.0
		minHumidity = 0.0
		maxHumidity = 100.0
	)
	if temp < minTemp || temp > maxTemp {
		temp = math.NaN()
	}
	if humidity < minHumidity || humidity > maxHumidity {
		humidity = math.NaN()
	}
	return temp, humidity
}
