package labormarket

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Scenario is the on-disk configuration shape (YAML) for a model run: the
// market coefficients plus output settings for the example driver.
type Scenario struct {
	Market MarketConfig `yaml:"market"`
	Output OutputConfig `yaml:"output"`
}

// MarketConfig mirrors Params field by field.
type MarketConfig struct {
	SupplyIntercept float64 `yaml:"supply_intercept"`
	SupplySlope     float64 `yaml:"supply_slope"`
	DemandIntercept float64 `yaml:"demand_intercept"`
	DemandSlope     float64 `yaml:"demand_slope"`
	ShiftMagnitude  float64 `yaml:"shift_magnitude"`
	WageFloor       float64 `yaml:"wage_floor"`
	Time            float64 `yaml:"time"`
}

// OutputConfig controls where and how densely the driver renders charts.
type OutputConfig struct {
	Dir             string `yaml:"dir"`              // chart output directory
	DynamicsSamples int    `yaml:"dynamics_samples"` // sweep resolution for the dynamics chart
}

// LoadScenario reads a YAML scenario and validates it by constructing the
// model, so a loaded scenario is always one New can accept. Validation
// failures carry the usual ErrInvalidParameter / ErrNonBindingFloor kinds.
func LoadScenario(path string) (*Scenario, error) {
	s, err := LoadScenarioUnchecked(path)
	if err != nil {
		return nil, err
	}
	if _, err := s.Model(); err != nil {
		return nil, fmt.Errorf("scenario %s: %w", path, err)
	}
	return s, nil
}

// LoadScenarioUnchecked loads a scenario without validating the market
// parameters. Useful for printing or editing partial scenarios.
func LoadScenarioUnchecked(path string) (*Scenario, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var s Scenario
	if err := yaml.Unmarshal(raw, &s); err != nil {
		return nil, fmt.Errorf("scenario %s: %w", path, err)
	}
	return &s, nil
}

// Params converts the YAML shape to model parameters.
func (c MarketConfig) Params() Params {
	return Params{
		SupplyIntercept: c.SupplyIntercept,
		SupplySlope:     c.SupplySlope,
		DemandIntercept: c.DemandIntercept,
		DemandSlope:     c.DemandSlope,
		ShiftMagnitude:  c.ShiftMagnitude,
		WageFloor:       c.WageFloor,
		Time:            c.Time,
	}
}

// Model constructs the validated model the scenario describes.
func (s *Scenario) Model() (*Model, error) {
	return New(s.Market.Params())
}
