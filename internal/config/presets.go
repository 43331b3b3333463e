package config

import "sort"

var Presets = map[string]map[string]*Config{
	"cessna172": {
		"cruise": {
			Aircraft: "cessna172", Velocity: 51.44, Altitude: 1524.0,
		},
		"climb": {
			Aircraft: "cessna172", Velocity: 40.0, Altitude: 500.0, FlightPathAngle: 0.05,
		},
		"descent": {
			Aircraft: "cessna172", Velocity: 45.0, Altitude: 1000.0, FlightPathAngle: -0.05,
		},
	},
	"navion": {
		"cruise": {
			Aircraft: "navion", Velocity: 54.0, Altitude: 1000.0,
		},
		"climb": {
			Aircraft: "navion", Velocity: 44.0, Altitude: 300.0, FlightPathAngle: 0.04,
		},
	},
}

func GetPreset(aircraft, preset string) *Config {
	aircraftPresets, ok := Presets[aircraft]
	if !ok {
		return nil
	}
	cfg, ok := aircraftPresets[preset]
	if !ok {
		return nil
	}
	return cfg
}

func ListPresets(aircraft string) []string {
	aircraftPresets, ok := Presets[aircraft]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(aircraftPresets))
	for name := range aircraftPresets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
