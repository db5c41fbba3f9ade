package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all configuration for the plant monitor
type Config struct {
	Monitor   MonitorConfig   `yaml:"monitor"`
	Sampling  SamplingConfig  `yaml:"sampling"`
	DHT       DHTConfig       `yaml:"dht"`
	ADC       ADCConfig       `yaml:"adc"`
	Soil      SoilConfig      `yaml:"soil"`
	Light     LightConfig     `yaml:"light"`
	Display   DisplayConfig   `yaml:"display"`
	SerialLog SerialLogConfig `yaml:"serial_log"`
	Logging   LoggingConfig   `yaml:"logging"`
}

// MonitorConfig identifies this monitor instance
type MonitorConfig struct {
	ID       string `yaml:"id"`
	Location string `yaml:"location"`
}

// SamplingConfig controls how often sensors are read
type SamplingConfig struct {
	Interval time.Duration `yaml:"interval"`
}

// DHTConfig contains settings for the temperature/humidity sensor
type DHTConfig struct {
	Model   string `yaml:"model"` // "DHT11" or "DHT22"
	GPIOPin int    `yaml:"gpio_pin"`
}

// ADCConfig contains settings for the analog front end
type ADCConfig struct {
	Bus          string `yaml:"bus"` // I2C bus name, empty = first available
	SoilChannel  int    `yaml:"soil_channel"`
	LightChannel int    `yaml:"light_channel"`
	DomainMin    int    `yaml:"domain_min"` // lowest possible raw value
	DomainMax    int    `yaml:"domain_max"` // highest possible raw value
}

// SoilConfig contains the fixed calibration endpoints for the soil probe.
// Calibrate by taking a reading in dry air and one submerged in water.
type SoilConfig struct {
	RawAir   int `yaml:"raw_air"`
	RawWater int `yaml:"raw_water"`
}

// LightConfig controls the LDR auto-calibration
type LightConfig struct {
	CalibrationWindow time.Duration `yaml:"calibration_window"`
	WidenMargin       int           `yaml:"widen_margin"`
}

// DisplayConfig contains settings for the local display
type DisplayConfig struct {
	Kind            string        `yaml:"kind"` // "console", "oled" or "none"
	Bus             string        `yaml:"bus"`  // I2C bus for the OLED
	RefreshInterval time.Duration `yaml:"refresh_interval"`
	ShowUptime      bool          `yaml:"show_uptime"`
}

// SerialLogConfig controls the periodic reading log line
type SerialLogConfig struct {
	Interval time.Duration `yaml:"interval"`
}

// LoggingConfig contains logging settings
type LoggingConfig struct {
	Level  string `yaml:"level"`  // "debug", "info", "warn", "error"
	Format string `yaml:"format"` // "json" or "console"
}

// LoadConfig loads configuration from a YAML file
func LoadConfig(path string) (*Config, error) {
	yamlData, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}
	var config Config
	if err := yaml.Unmarshal(yamlData, &config); err != nil {
		return nil, fmt.Errorf("parse config file: %w", err)
	}

	config.ApplyDefaults()
	config.OverrideFromEnv()
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &config, nil
}

// ApplyDefaults sets default values for any unset fields. The analog
// defaults match the reference hardware: a 12-bit ADC, soil probe readings
// of 3000 in dry air and 1200 in water, a 10 second light calibration
// window.
func (c *Config) ApplyDefaults() {
	if c.Sampling.Interval == 0 {
		c.Sampling.Interval = 1 * time.Second
	}
	if c.DHT.Model == "" {
		c.DHT.Model = "DHT22"
	}
	if c.ADC.DomainMax == 0 {
		c.ADC.DomainMax = 4095
	}
	if c.ADC.LightChannel == 0 && c.ADC.SoilChannel == 0 {
		c.ADC.LightChannel = 1
	}
	if c.Soil.RawAir == 0 {
		c.Soil.RawAir = 3000
	}
	if c.Soil.RawWater == 0 {
		c.Soil.RawWater = 1200
	}
	if c.Light.CalibrationWindow == 0 {
		c.Light.CalibrationWindow = 10 * time.Second
	}
	if c.Light.WidenMargin == 0 {
		c.Light.WidenMargin = 50
	}
	if c.Display.Kind == "" {
		c.Display.Kind = "console"
	}
	if c.Display.RefreshInterval == 0 {
		c.Display.RefreshInterval = 250 * time.Millisecond
	}
	if c.SerialLog.Interval == 0 {
		c.SerialLog.Interval = 1 * time.Second
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Logging.Format == "" {
		c.Logging.Format = "json"
	}
}

// OverrideFromEnv overrides config values from environment variables
func (c *Config) OverrideFromEnv() {
	if v := os.Getenv("MONITOR_ID"); v != "" {
		c.Monitor.ID = v
	}
	if v := os.Getenv("MONITOR_LOCATION"); v != "" {
		c.Monitor.Location = v
	}
	if v := os.Getenv("DISPLAY_KIND"); v != "" {
		c.Display.Kind = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Monitor.ID == "" {
		return fmt.Errorf("monitor ID is required")
	}
	if c.DHT.GPIOPin <= 0 {
		return fmt.Errorf("GPIO pin must be greater than 0")
	}
	if c.Sampling.Interval < 100*time.Millisecond {
		return fmt.Errorf("sampling interval must be at least 100ms")
	}
	if c.ADC.SoilChannel < 0 || c.ADC.SoilChannel > 3 {
		return fmt.Errorf("soil channel must be between 0 and 3")
	}
	if c.ADC.LightChannel < 0 || c.ADC.LightChannel > 3 {
		return fmt.Errorf("light channel must be between 0 and 3")
	}
	if c.ADC.SoilChannel == c.ADC.LightChannel {
		return fmt.Errorf("soil and light channels must differ")
	}
	if c.ADC.DomainMin >= c.ADC.DomainMax {
		return fmt.Errorf("ADC domain min must be below domain max")
	}
	if c.Soil.RawAir == c.Soil.RawWater {
		return fmt.Errorf("soil calibration endpoints must differ")
	}
	if c.Light.WidenMargin <= 0 {
		return fmt.Errorf("light widen margin must be greater than 0")
	}
	switch c.Display.Kind {
	case "console", "oled", "none":
	default:
		return fmt.Errorf("display kind must be console, oled or none")
	}
	return nil
}

// String returns a readable representation of the configuration
func (c *Config) String() string {
	return fmt.Sprintf("Config{Monitor: %+v, Sampling: %+v, DHT: %+v, ADC: %+v, Soil: %+v, Light: %+v, Display: %+v, Logging: %+v}",
		c.Monitor,
		c.Sampling,
		c.DHT,
		c.ADC,
		c.Soil,
		c.Light,
		c.Display,
		c.Logging,
	)
}
