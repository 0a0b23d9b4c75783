package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/fleetgen/fleetgen/sim"
	"github.com/fleetgen/fleetgen/sim/record"
)

var (
	// CLI flags for the generation run
	target         string  // Directory the output tables are written into
	nAssets        int     // Initial fleet size
	tripDuration   float64 // Mean trip length in simulated days
	shrinkageRate  float64 // Per-trip loss probability
	replenishRate  float64 // Expected new assets per day
	days           int     // Simulation horizon in days
	seed           int64   // Master seed for all random draws
	tripDist       string  // Trip-duration distribution shape
	replenishMode  string  // Replenishment count semantics
	dispatchPolicy string  // Dispatch pass policy
	restDays       int     // Idle days before a returned asset redispatches
	format         string  // Output format (csv or sqlite)
	scenarioPath   string  // Optional scenario YAML file
	logLevel       string  // Log verbosity level
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "fleetgen",
	Short: "Synthetic fleet-lifecycle data generator",
}

// generateCmd executes one generation run using parameters from CLI flags
// and/or a scenario file.
var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a synthetic fleet lifecycle dataset",
	Run: func(cmd *cobra.Command, args []string) {
		// Set up logging
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)

		cfg, outDir, outFormat, err := resolveRun(cmd)
		if err != nil {
			logrus.Fatalf("Invalid run configuration: %v", err)
		}

		logrus.Infof("Starting generation: n_assets=%d trip_duration=%.1f shrinkage_rate=%.3f replenish_rate=%.2f days=%d seed=%d",
			cfg.NAssets, cfg.TripDuration, cfg.ShrinkageRate, cfg.ReplenishRate, cfg.Days, cfg.Seed)
		startTime := time.Now()

		s, err := sim.NewSimulator(cfg)
		if err != nil {
			logrus.Fatalf("Invalid run configuration: %v", err)
		}
		series, err := s.Run()
		if err != nil {
			logrus.Fatalf("Generation failed: %v", err)
		}

		if err := writeOutputs(series, s, outDir, outFormat); err != nil {
			logrus.Fatalf("Writing outputs: %v", err)
		}

		s.Summary().Print()
		logrus.Infof("Generation complete in %s; outputs in %s", time.Since(startTime).Round(time.Millisecond), outDir)
	},
}

// resolveRun merges the scenario file (if any) with the CLI flags. Without a
// scenario the flag values are used directly; with one, the scenario is the
// base and any flag explicitly set on the command line wins.
func resolveRun(cmd *cobra.Command) (sim.Config, string, string, error) {
	outDir, outFormat := target, format

	cfg := sim.Config{
		NAssets:          nAssets,
		TripDuration:     tripDuration,
		ShrinkageRate:    shrinkageRate,
		ReplenishRate:    replenishRate,
		Days:             days,
		Seed:             seed,
		TripDistribution: tripDist,
		ReplenishMode:    replenishMode,
		DispatchPolicy:   dispatchPolicy,
		RestDays:         restDays,
	}

	if scenarioPath != "" {
		sc, err := LoadScenario(scenarioPath)
		if err != nil {
			return cfg, "", "", err
		}
		base := sc.Config

		flags := cmd.Flags()
		if flags.Changed("n-assets") {
			base.NAssets = nAssets
		}
		if flags.Changed("trip-duration") {
			base.TripDuration = tripDuration
		}
		if flags.Changed("shrinkage-rate") {
			base.ShrinkageRate = shrinkageRate
		}
		if flags.Changed("replenish-rate") {
			base.ReplenishRate = replenishRate
		}
		if flags.Changed("days") {
			base.Days = days
		}
		if flags.Changed("seed") {
			base.Seed = seed
		}
		if flags.Changed("trip-distribution") {
			base.TripDistribution = tripDist
		}
		if flags.Changed("replenish-mode") {
			base.ReplenishMode = replenishMode
		}
		if flags.Changed("dispatch-policy") {
			base.DispatchPolicy = dispatchPolicy
		}
		if flags.Changed("rest-days") {
			base.RestDays = restDays
		}
		if sc.Target != "" && !flags.Changed("target") {
			outDir = sc.Target
		}
		if sc.Format != "" && !flags.Changed("format") {
			outFormat = sc.Format
		}
		cfg = base
	}

	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return cfg, "", "", err
	}
	if outFormat != "csv" && outFormat != "sqlite" {
		return cfg, "", "", fmt.Errorf("unknown output format %q; valid: csv, sqlite", outFormat)
	}
	return cfg, outDir, outFormat, nil
}

// writeOutputs hands the finished series to the selected persistence sink.
func writeOutputs(series *record.Series, s *sim.Simulator, dir, outFormat string) error {
	switch outFormat {
	case "csv":
		return record.WriteCSV(series, dir)
	case "sqlite":
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating target dir: %w", err)
		}
		store, err := record.OpenSQLite(filepath.Join(dir, "fleet.db"))
		if err != nil {
			return err
		}
		defer store.Close()
		return store.SaveRun(s.Meta(), series)
	default:
		return fmt.Errorf("unknown output format %q", outFormat)
	}
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// init sets up CLI flags and subcommands
func init() {
	generateCmd.Flags().StringVarP(&target, "target", "t", "data", "Target directory for output tables")
	generateCmd.Flags().IntVarP(&nAssets, "n-assets", "n", 2000, "Initial fleet size")
	generateCmd.Flags().Float64VarP(&tripDuration, "trip-duration", "T", 100, "Mean trip duration in days")
	generateCmd.Flags().Float64VarP(&shrinkageRate, "shrinkage-rate", "s", 0.15, "Per-trip loss probability in [0,1]")
	generateCmd.Flags().Float64VarP(&replenishRate, "replenish-rate", "r", 1, "Expected new assets per day")
	generateCmd.Flags().IntVarP(&days, "days", "d", 2000, "Number of days to simulate")
	generateCmd.Flags().Int64Var(&seed, "seed", 42, "Seed for all random draws")

	generateCmd.Flags().StringVar(&tripDist, "trip-distribution", sim.DistExponential, "Trip-duration distribution (exponential, lognormal, fixed)")
	generateCmd.Flags().StringVar(&replenishMode, "replenish-mode", sim.ReplenishPoisson, "Replenishment semantics (poisson, fixed)")
	generateCmd.Flags().StringVar(&dispatchPolicy, "dispatch-policy", sim.DispatchFull, "Dispatch policy (full, demand)")
	generateCmd.Flags().IntVar(&restDays, "rest-days", 0, "Idle days before a returned asset is dispatch-eligible again")

	generateCmd.Flags().StringVar(&format, "format", "csv", "Output format (csv, sqlite)")
	generateCmd.Flags().StringVar(&scenarioPath, "scenario", "", "Scenario YAML file; explicit flags override its values")
	generateCmd.Flags().StringVar(&logLevel, "log", "info", "Log level (trace, debug, info, warn, error, fatal, panic)")

	// Attach `generate` as a subcommand to `root`
	rootCmd.AddCommand(generateCmd)
}
