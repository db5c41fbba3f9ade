package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"periph.io/x/host/v3"

	"github.com/afroash/plant-monitor/internal/config"
	"github.com/afroash/plant-monitor/internal/display"
	"github.com/afroash/plant-monitor/internal/models"
	"github.com/afroash/plant-monitor/internal/sensor"
)

const version = "v0.1.0"

// loopResolution is how often the cooperative loop polls its tickers. It
// only needs to be comfortably below the fastest cadence (the display
// refresh).
const loopResolution = 25 * time.Millisecond

func main() {
	configPath := flag.String("config", "configs/monitor.yaml", "path to config file")
	flag.Parse()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger := newLogger(cfg.Logging)
	logger.Info().
		Str("version", version).
		Str("monitor", cfg.Monitor.ID).
		Msg("Starting plant monitor")

	if _, err := host.Init(); err != nil {
		logger.Fatal().Err(err).Msg("Peripheral host init failed")
	}

	// Driver init failures degrade rather than abort: the loop runs with
	// the missing source at its sentinels, matching a runtime read failure.
	var env sensor.EnvironmentSensor
	if d, err := sensor.NewDHTReader(cfg.DHT.Model, cfg.DHT.GPIOPin); err != nil {
		logger.Error().Err(err).Msg("DHT init failed, temperature/humidity unavailable")
	} else {
		env = d
	}

	var adc sensor.AnalogReader
	if a, err := sensor.NewADS1115Reader(cfg.ADC.Bus, cfg.ADC.SoilChannel, cfg.ADC.LightChannel); err != nil {
		logger.Error().Err(err).Msg("ADC init failed, soil/light unavailable")
	} else {
		adc = a
	}

	calibrator := sensor.NewCalibrator(
		uint32(cfg.Light.CalibrationWindow.Milliseconds()),
		cfg.ADC.DomainMin,
		cfg.ADC.DomainMax,
		cfg.Light.WidenMargin,
	)
	sampler := sensor.NewSampler(env, adc, sensor.SamplerConfig{
		Interval:     cfg.Sampling.Interval,
		SoilChannel:  cfg.ADC.SoilChannel,
		LightChannel: cfg.ADC.LightChannel,
		Soil: sensor.SoilCalibration{
			RawAir:   cfg.Soil.RawAir,
			RawWater: cfg.Soil.RawWater,
		},
	}, calibrator, logger)
	defer sampler.Close()

	renderer, err := newRenderer(cfg.Display)
	if err != nil {
		logger.Fatal().Err(err).Msg("Display init failed")
	}
	defer renderer.Close()

	info := models.NewMonitorInfo(cfg.Monitor.ID, cfg.Monitor.Location, "DHT + soil + LDR", version)

	if err := renderer.Splash("sensors only"); err != nil {
		logger.Warn().Err(err).Msg("Splash failed")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	err = run(ctx, cfg, sampler, renderer, display.NewSerialLogger(logger), info, logger)
	if err != nil && err != context.Canceled {
		logger.Fatal().Err(err).Msg("Monitor loop failed")
	}
	logger.Info().Msg("Monitor stopped")
}

// run drives the single cooperative loop: sample, log, render, each on
// its own cadence, all on one goroutine.
func run(
	ctx context.Context,
	cfg *config.Config,
	sampler *sensor.Sampler,
	renderer display.Renderer,
	serialLog *display.SerialLogger,
	info *models.MonitorInfo,
	logger zerolog.Logger,
) error {
	serialTick := sensor.NewTicker(uint32(cfg.SerialLog.Interval.Milliseconds()))
	renderTick := sensor.NewTicker(uint32(cfg.Display.RefreshInterval.Milliseconds()))

	boot := time.Now()
	loop := time.NewTicker(loopResolution)
	defer loop.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-loop.C:
			// Wraps every ~49.7 days; the tickers tolerate that.
			now := uint32(time.Since(boot).Milliseconds())

			sampler.Update(now)
			r := sampler.Current()

			if serialTick.Due(now) {
				serialLog.Log(r, sampler.Calibrating(now))
			}
			if renderTick.Due(now) {
				if err := renderer.Render(r, sampler.Calibrating(now), info.Uptime()); err != nil {
					logger.Warn().Err(err).Msg("Render failed")
				}
			}
		}
	}
}

func newLogger(cfg config.LoggingConfig) zerolog.Logger {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil {
		level = zerolog.InfoLevel
	}
	var logger zerolog.Logger
	if cfg.Format == "console" {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr})
	} else {
		logger = zerolog.New(os.Stdout)
	}
	return logger.Level(level).With().Timestamp().Logger()
}

func newRenderer(cfg config.DisplayConfig) (display.Renderer, error) {
	switch cfg.Kind {
	case "console":
		return display.NewConsoleRenderer(os.Stdout, cfg.ShowUptime), nil
	case "oled":
		return display.NewOLEDRenderer(cfg.Bus, cfg.ShowUptime)
	case "none":
		return display.NopRenderer{}, nil
	default:
		return nil, fmt.Errorf("unknown display kind %q", cfg.Kind)
	}
}
