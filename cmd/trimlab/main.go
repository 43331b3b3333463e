// Command trimlab is the hosting layer for the trim and stability
// analysis library: it validates requests, runs the solvers and
// renders tables or JSON. The numeric core lives under internal/.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/flightlab/trimlab/internal/config"
	"github.com/flightlab/trimlab/internal/flightdyn"
	"github.com/flightlab/trimlab/internal/linearize"
	"github.com/flightlab/trimlab/internal/trim"
)

var (
	velocity   float64
	altitude   float64
	gamma      float64
	aircraft   string
	preset     string
	configFile string
	asJSON     bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "trimlab",
		Short: "aircraft trim and stability analysis lab",
	}

	trimCmd := &cobra.Command{
		Use:   "trim",
		Short: "solve for longitudinal trim",
		RunE:  runTrim,
	}

	modesCmd := &cobra.Command{
		Use:   "modes",
		Short: "trim, linearize and report stability modes",
		RunE:  runModes,
	}

	for _, c := range []*cobra.Command{trimCmd, modesCmd} {
		c.Flags().Float64Var(&velocity, "velocity", config.DefaultVelocity, "true airspeed [m/s]")
		c.Flags().Float64Var(&altitude, "altitude", config.DefaultAltitude, "altitude [m]")
		c.Flags().Float64Var(&gamma, "gamma", 0.0, "flight path angle [rad]")
		c.Flags().StringVar(&aircraft, "aircraft", config.DefaultAircraft, "aircraft name")
		c.Flags().StringVar(&preset, "preset", "", "use preset flight condition")
		c.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
		c.Flags().BoolVar(&asJSON, "json", false, "emit JSON instead of a table")
	}

	presetsCmd := &cobra.Command{
		Use:   "presets [aircraft]",
		Short: "list preset flight conditions",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			names := config.Aircraft()
			if len(args) == 1 {
				names = args[:1]
			}
			for _, ac := range names {
				presets := config.ListPresets(ac)
				if len(presets) == 0 {
					fmt.Printf("no presets for aircraft: %s\n", ac)
					continue
				}
				fmt.Printf("presets for %s:\n", ac)
				for _, p := range presets {
					fmt.Printf("  %s\n", p)
				}
			}
			return nil
		},
	}

	rootCmd.AddCommand(trimCmd, modesCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// buildRequest merges preset, config file and flags into one request,
// with explicit flags taking precedence.
func buildRequest(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(aircraft, preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets(aircraft))
		}
		// Copy so flag overrides below never touch the preset table.
		c := *p
		cfg = &c
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	if cmd.Flags().Changed("aircraft") || cfg.Aircraft == "" {
		cfg.Aircraft = aircraft
	}
	if cmd.Flags().Changed("velocity") {
		cfg.Velocity = velocity
	}
	if cmd.Flags().Changed("altitude") {
		cfg.Altitude = altitude
	}
	if cmd.Flags().Changed("gamma") {
		cfg.FlightPathAngle = gamma
	}

	if cfg.Velocity <= 0 {
		return nil, fmt.Errorf("velocity must be > 0, got %g", cfg.Velocity)
	}
	return cfg, nil
}

type trimResponse struct {
	AlphaDeg    float64 `json:"alpha_deg"`
	ElevatorDeg float64 `json:"elevator_deg"`
	Throttle    float64 `json:"throttle"`
	ThetaDeg    float64 `json:"theta_deg"`
	U           float64 `json:"u"`
	W           float64 `json:"w"`
}

type modeData struct {
	Name string  `json:"name"`
	Real float64 `json:"real"`
	Imag float64 `json:"imag"`
	Wn   float64 `json:"wn"`
	Zeta float64 `json:"zeta"`
}

type analysisResponse struct {
	Trim         trimResponse `json:"trim"`
	Longitudinal []modeData   `json:"longitudinal"`
	Lateral      []modeData   `json:"lateral"`
}

func solveTrim(cmd *cobra.Command) (*config.Config, *flightdyn.Aircraft, *trim.State, error) {
	cfg, err := buildRequest(cmd)
	if err != nil {
		return nil, nil, nil, err
	}

	ac, err := cfg.BuildAircraft()
	if err != nil {
		return nil, nil, nil, err
	}

	ts, err := trim.NewSolver(ac).Solve(cfg.Velocity, cfg.Altitude, cfg.FlightPathAngle)
	if err != nil {
		return nil, nil, nil, err
	}
	return cfg, ac, ts, nil
}

func trimToResponse(ts *trim.State) trimResponse {
	return trimResponse{
		AlphaDeg:    ts.AlphaDeg(),
		ElevatorDeg: ts.ElevatorDeg(),
		Throttle:    ts.Throttle,
		ThetaDeg:    ts.ThetaDeg(),
		U:           ts.U,
		W:           ts.W,
	}
}

func runTrim(cmd *cobra.Command, args []string) error {
	cfg, _, ts, err := solveTrim(cmd)
	if err != nil {
		return err
	}

	if asJSON {
		return json.NewEncoder(os.Stdout).Encode(trimToResponse(ts))
	}

	fmt.Printf("%s trim at V=%.2f m/s, h=%.0f m, gamma=%.3f rad\n\n",
		cfg.Aircraft, cfg.Velocity, cfg.Altitude, cfg.FlightPathAngle)

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "alpha\t%.3f deg\n", ts.AlphaDeg())
	fmt.Fprintf(w, "elevator\t%.3f deg\n", ts.ElevatorDeg())
	fmt.Fprintf(w, "throttle\t%.3f\n", ts.Throttle)
	fmt.Fprintf(w, "theta\t%.3f deg\n", ts.ThetaDeg())
	fmt.Fprintf(w, "u\t%.3f m/s\n", ts.U)
	fmt.Fprintf(w, "w\t%.3f m/s\n", ts.W)
	return w.Flush()
}

func modesToData(modes []linearize.Mode) []modeData {
	out := make([]modeData, len(modes))
	for i, m := range modes {
		out[i] = modeData{
			Name: m.Name,
			Real: real(m.Eigenvalue),
			Imag: imag(m.Eigenvalue),
			Wn:   m.Wn,
			Zeta: m.Zeta,
		}
	}
	return out
}

func runModes(cmd *cobra.Command, args []string) error {
	cfg, ac, ts, err := solveTrim(cmd)
	if err != nil {
		return err
	}

	lin := linearize.New(ac, ts)

	lonEvs, err := lin.LongitudinalModes()
	if err != nil {
		return err
	}
	latEvs, err := lin.LateralModes()
	if err != nil {
		return err
	}

	lon := linearize.ClassifyLongitudinal(lonEvs)
	lat := linearize.ClassifyLateral(latEvs)

	if asJSON {
		return json.NewEncoder(os.Stdout).Encode(analysisResponse{
			Trim:         trimToResponse(ts),
			Longitudinal: modesToData(lon),
			Lateral:      modesToData(lat),
		})
	}

	fmt.Printf("%s at V=%.2f m/s, h=%.0f m: alpha=%.2f deg, elevator=%.2f deg, throttle=%.2f\n",
		cfg.Aircraft, cfg.Velocity, cfg.Altitude, ts.AlphaDeg(), ts.ElevatorDeg(), ts.Throttle)

	printModes := func(title string, modes []linearize.Mode) error {
		fmt.Printf("\n%s modes:\n", title)
		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "mode\teigenvalue\twn [rad/s]\tzeta")
		for _, m := range modes {
			fmt.Fprintf(w, "%s\t%.4f %+.4fi\t%.4f\t%.4f\n",
				m.Name, real(m.Eigenvalue), imag(m.Eigenvalue), m.Wn, m.Zeta)
		}
		return w.Flush()
	}

	if err := printModes("longitudinal", lon); err != nil {
		return err
	}
	return printModes("lateral", lat)
}
