package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

const (
	TickRate = 60.0 // fixed simulation steps per real second

	MinHorizontalSeparation = 5.0    // NM
	MinVerticalSeparation   = 1000.0 // ft
	RadarRange              = 50.0   // NM
	RemovalRangeFactor      = 1.2

	MinAltitude = 0.0     // ft
	MaxAltitude = 40000.0 // ft
	MinSpeed    = 100.0   // kt

	SpawnInterval   = 30.0 // simulated seconds
	SpawnMinFL      = 150
	SpawnMaxFL      = 350
	FlightNumberMin = 100
	FlightNumberMax = 999

	ConflictPenaltyPerSecond = 100.0
	ApproachCreditPerSecond  = 1.0

	MinSimulationSpeed  = 0.25
	MaxSimulationSpeed  = 4.0
	SimulationSpeedStep = 1.5

	AircraftClickRadius = 2.0 // NM
	MaxRadioLogSize     = 50
	ConflictLookahead   = 60.0 // seconds, scope warnings only
)

var AirlineCodes = []string{"AAL", "UAL", "DAL", "SWA", "JBU"}

var ErrInvalidSettings = errors.New("invalid settings")

// Settings are the run-time knobs; everything else is a constant.
type Settings struct {
	Seed            int64   `json:"seed"`
	Airport         string  `json:"airport"`
	RadarRange      float64 `json:"radar_range"`
	SpawnInterval   float64 `json:"spawn_interval"`
	SimulationSpeed float64 `json:"simulation_speed"`
	LogLevel        string  `json:"log_level"`
	LogFile         string  `json:"log_file"`
	HTTPAddr        string  `json:"http_addr"`
}

func Defaults() Settings {
	return Settings{
		Airport:         "KRST",
		RadarRange:      RadarRange,
		SpawnInterval:   SpawnInterval,
		SimulationSpeed: 1.0,
		LogLevel:        "info",
		HTTPAddr:        ":8080",
	}
}

// Load reads a JSON settings file over Defaults. An empty path returns
// the defaults.
func Load(path string) (Settings, error) {
	s := Defaults()
	if path == "" {
		return s, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return s, fmt.Errorf("reading settings: %w", err)
	}
	if err := json.Unmarshal(data, &s); err != nil {
		return s, fmt.Errorf("parsing %s: %w", path, err)
	}
	return s, s.Validate()
}

func (s Settings) Validate() error {
	if s.RadarRange <= 0 {
		return fmt.Errorf("%w: radar_range %.1f must be positive", ErrInvalidSettings, s.RadarRange)
	}
	if s.SpawnInterval <= 0 {
		return fmt.Errorf("%w: spawn_interval %.1f must be positive", ErrInvalidSettings, s.SpawnInterval)
	}
	if s.SimulationSpeed < MinSimulationSpeed || s.SimulationSpeed > MaxSimulationSpeed {
		return fmt.Errorf("%w: simulation_speed %.2f outside [%.2f, %.2f]", ErrInvalidSettings,
			s.SimulationSpeed, MinSimulationSpeed, MaxSimulationSpeed)
	}
	switch s.LogLevel {
	case "debug", "info", "warn", "error", "off":
	default:
		return fmt.Errorf("%w: unknown log_level %q", ErrInvalidSettings, s.LogLevel)
	}
	return nil
}
