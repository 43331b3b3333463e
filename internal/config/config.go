// Package config loads and saves analysis configurations and provides
// named presets for common aircraft and flight conditions.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/flightlab/trimlab/internal/flightdyn"
)

const (
	DefaultAircraft = "cessna172"
	DefaultVelocity = 51.44 // 100 kts [m/s]
	DefaultAltitude = 1524.0
)

// Config describes one trim/stability analysis request.
type Config struct {
	Aircraft        string  `yaml:"aircraft"`
	Velocity        float64 `yaml:"velocity"`
	Altitude        float64 `yaml:"altitude"`
	FlightPathAngle float64 `yaml:"flight_path_angle"`

	// Overrides patches individual aircraft coefficients by name,
	// e.g. {"Cm_alpha": -1.1}.
	Overrides map[string]float64 `yaml:"overrides"`
}

func DefaultConfig() *Config {
	return &Config{
		Aircraft: DefaultAircraft,
		Velocity: DefaultVelocity,
		Altitude: DefaultAltitude,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// BuildAircraft resolves the named aircraft, applies overrides and
// validates the result.
func (c *Config) BuildAircraft() (*flightdyn.Aircraft, error) {
	var ac *flightdyn.Aircraft
	switch c.Aircraft {
	case "", "cessna172":
		ac = flightdyn.NewCessna172()
	case "navion":
		ac = flightdyn.NewNavion()
	default:
		return nil, fmt.Errorf("unknown aircraft: %s", c.Aircraft)
	}

	for name, value := range c.Overrides {
		if err := ac.SetParam(name, value); err != nil {
			return nil, err
		}
	}

	if err := ac.Validate(); err != nil {
		return nil, err
	}
	return ac, nil
}

// Aircraft lists the aircraft names BuildAircraft accepts.
func Aircraft() []string {
	return []string{"cessna172", "navion"}
}
