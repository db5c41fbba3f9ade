package sensor

import (
	"fmt"

	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/devices/v3/ads1x15"
)

// ADS1115Reader implements AnalogReader over an ADS1115 I2C ADC. The
// board has no on-chip ADC, so the soil probe and LDR hang off one of
// these.
type ADS1115Reader struct {
	bus  i2c.BusCloser
	pins map[int]ads1x15.PinADC
}

// NewADS1115Reader opens the ADC on the named I2C bus (empty string means
// the first available bus) and prepares a single-ended pin for each of
// the given channels.
func NewADS1115Reader(busName string, channels ...int) (*ADS1115Reader, error) {
	bus, err := i2creg.Open(busName)
	if err != nil {
		return nil, fmt.Errorf("open i2c bus %q: %w", busName, err)
	}
	adc, err := ads1x15.NewADS1115(bus, &ads1x15.DefaultOpts)
	if err != nil {
		bus.Close()
		return nil, fmt.Errorf("open ADS1115: %w", err)
	}

	pins := make(map[int]ads1x15.PinADC, len(channels))
	for _, ch := range channels {
		c, err := channelFor(ch)
		if err != nil {
			bus.Close()
			return nil, err
		}
		// 3.3V sensors, slow signals: the lowest sample rate keeps the
		// chip in power-down between conversions.
		pin, err := adc.PinForChannel(c, 3300*physic.MilliVolt, 8*physic.Hertz, ads1x15.SaveEnergy)
		if err != nil {
			bus.Close()
			return nil, fmt.Errorf("prepare channel %d: %w", ch, err)
		}
		pins[ch] = pin
	}
	return &ADS1115Reader{bus: bus, pins: pins}, nil
}

// Read returns the raw conversion value of a prepared channel.
func (a *ADS1115Reader) Read(channel int) (int, error) {
	pin, ok := a.pins[channel]
	if !ok {
		return 0, fmt.Errorf("channel %d not prepared", channel)
	}
	sample, err := pin.Read()
	if err != nil {
		return 0, fmt.Errorf("read channel %d: %w", channel, err)
	}
	return int(sample.Raw), nil
}

// Close halts the prepared pins and releases the bus.
func (a *ADS1115Reader) Close() error {
	for _, pin := range a.pins {
		pin.Halt()
	}
	return a.bus.Close()
}

func channelFor(ch int) (ads1x15.Channel, error) {
	switch ch {
	case 0:
		return ads1x15.Channel0, nil
	case 1:
		return ads1x15.Channel1, nil
	case 2:
		return ads1x15.Channel2, nil
	case 3:
		return ads1x15.Channel3, nil
	default:
		return 0, fmt.Errorf("ADS1115 has no channel %d", ch)
	}
}
