package sensor

import (
	"time"

	"github.com/afroash/plant-monitor/internal/models"
	"github.com/rs/zerolog"
)

// EnvironmentSensor reads temperature (°C) and relative humidity (%).
// Either value may come back NaN when only one quantity could be read; a
// non-nil error means the whole exchange with the sensor failed.
type EnvironmentSensor interface {
	Read() (temperature float64, humidity float64, err error)
	Close() error
}

// AnalogReader reads one raw ADC value from a numbered channel.
type AnalogReader interface {
	Read(channel int) (raw int, err error)
	Close() error
}

// SoilCalibration holds the fixed raw endpoints for the soil probe:
// the reading in dry air (0% moisture) and submerged in water (100%).
// Higher raw values mean drier soil, so the range runs backwards.
type SoilCalibration struct {
	RawAir   int
	RawWater int
}

// SamplerConfig carries the externally supplied parameters of a Sampler.
type SamplerConfig struct {
	Interval     time.Duration
	SoilChannel  int
	LightChannel int
	Soil         SoilCalibration
}

// Sampler orchestrates the periodic reads of all three sensor sources and
// holds the latest complete snapshot. It owns its calibrator and timer
// exclusively; Update and Current must be called from the same goroutine,
// which the single cooperative monitor loop guarantees.
type Sampler struct {
	env          EnvironmentSensor
	adc          AnalogReader
	soilChannel  int
	lightChannel int
	soil         SoilCalibration
	light        *Calibrator
	tick         *Ticker
	cur          models.Reading
	logger       zerolog.Logger
}

// NewSampler creates a sampler over the given hardware. The light
// calibrator is passed in already configured for the ADC domain. Either
// sensor may be nil when its hardware failed to initialize; that source
// then stays permanently at its sentinels while the others keep sampling.
func NewSampler(env EnvironmentSensor, adc AnalogReader, cfg SamplerConfig, light *Calibrator, logger zerolog.Logger) *Sampler {
	return &Sampler{
		env:          env,
		adc:          adc,
		soilChannel:  cfg.SoilChannel,
		lightChannel: cfg.LightChannel,
		soil:         cfg.Soil,
		light:        light,
		tick:         NewTicker(uint32(cfg.Interval.Milliseconds())),
		cur:          models.NewReading(),
		logger:       logger,
	}
}

// Update samples all sensors if the sampling interval has elapsed.
// now is milliseconds since boot (wraps). The three sub-samples always run
// in the same order and are isolated from each other's failures; the
// previous snapshot stays visible until the new one is fully written.
func (s *Sampler) Update(now uint32) {
	if !s.tick.Due(now) {
		return
	}

	next := models.NewReading()
	s.sampleEnvironment(&next)
	s.sampleSoil(&next)
	s.sampleLight(&next, now)
	s.cur = next
}

// Current returns a copy of the latest complete snapshot.
func (s *Sampler) Current() models.Reading {
	return s.cur
}

// Calibrating reports whether the light sensor is still in its startup
// calibration window.
func (s *Sampler) Calibrating(now uint32) bool {
	return s.light.Calibrating(now)
}

// Close releases the underlying sensor hardware.
func (s *Sampler) Close() error {
	var err error
	if s.env != nil {
		err = s.env.Close()
	}
	if s.adc != nil {
		if cerr := s.adc.Close(); err == nil {
			err = cerr
		}
	}
	return err
}

// sampleEnvironment reads temperature and humidity. A failed exchange,
// or missing hardware, leaves both NaN sentinels in place; the next tick
// is the retry.
func (s *Sampler) sampleEnvironment(next *models.Reading) {
	if s.env == nil {
		return
	}
	temp, hum, err := s.env.Read()
	if err != nil {
		s.logger.Warn().Err(err).Msg("environment sensor read failed")
		return
	}
	next.Temperature = temp
	next.Humidity = hum
}

// sampleSoil reads the soil probe and maps the raw value to a moisture
// percentage using the fixed calibration endpoints.
func (s *Sampler) sampleSoil(next *models.Reading) {
	if s.adc == nil {
		return
	}
	raw, err := s.adc.Read(s.soilChannel)
	if err != nil {
		s.logger.Warn().Err(err).Int("channel", s.soilChannel).Msg("soil read failed")
		return
	}
	next.SoilRaw = raw
	next.SoilPct = MapConstrainBi(raw, s.soil.RawWater, s.soil.RawAir, 100, 0)
}

// sampleLight reads the LDR, feeds the calibrator, and maps through the
// tracked bounds. While the calibration window is open the percentage
// stays at its sentinel; the raw value is still recorded.
func (s *Sampler) sampleLight(next *models.Reading, now uint32) {
	if s.adc == nil {
		return
	}
	raw, err := s.adc.Read(s.lightChannel)
	if err != nil {
		s.logger.Warn().Err(err).Int("channel", s.lightChannel).Msg("light read failed")
		return
	}
	next.LightRaw = raw
	s.light.Observe(raw, now)
	if s.light.Calibrating(now) {
		return
	}
	lo, hi := s.light.Bounds()
	next.LightPct = MapConstrainBi(raw, lo, hi, 0, 100)
}
