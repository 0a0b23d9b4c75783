package cmd

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/fleetgen/fleetgen/sim"
)

// Scenario is the YAML shape of a saved parameter set. The simulation knobs
// are inlined, so a scenario file reads flat:
//
//	n_assets: 500
//	trip_duration: 30
//	shrinkage_rate: 0.1
//	replenish_rate: 2
//	days: 365
//	seed: 7
//	target: data/sweep-a
//	format: sqlite
//
// A flag explicitly set on the command line overrides the scenario value
// (see resolveRun in root.go).
type Scenario struct {
	Target string     `yaml:"target,omitempty"`
	Format string     `yaml:"format,omitempty"`
	Config sim.Config `yaml:",inline"`
}

// LoadScenario reads and parses a scenario YAML file. Missing fields keep
// the documented defaults.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scenario: %w", err)
	}
	sc := &Scenario{Config: sim.DefaultConfig()}
	if err := yaml.Unmarshal(data, sc); err != nil {
		return nil, fmt.Errorf("parsing scenario: %w", err)
	}
	return sc, nil
}
