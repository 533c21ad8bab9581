// Package config loads and validates simulation inputs. Range validation
// lives here, at the input boundary; the projection engine assumes its
// preconditions hold and only handles the degenerate-horizon case itself.
package config

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"github.com/wealthpath/nestegg/internal/domain"
	"gopkg.in/yaml.v3"
)

// Declared input domains. The engine does not re-check these.
var (
	minAge           = 18
	maxAge           = 80
	minRetirementAge = 50
	maxRetirementAge = 80
	minReturn        = decimal.NewFromInt(1)
	maxReturn        = decimal.NewFromInt(15)
	minInflation     = decimal.NewFromInt(1)
	maxInflation     = decimal.NewFromInt(8)
)

// InputParser handles parsing of simulation input files.
type InputParser struct{}

// NewInputParser creates a new input parser.
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads simulation inputs from a YAML file and validates them
// against the declared domains.
func (ip *InputParser) LoadFromFile(filename string) (domain.SimulationInputs, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return domain.SimulationInputs{}, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	var inputs domain.SimulationInputs
	if err := yaml.Unmarshal(data, &inputs); err != nil {
		return domain.SimulationInputs{}, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := ip.ValidateInputs(inputs); err != nil {
		return domain.SimulationInputs{}, fmt.Errorf("input validation failed: %w", err)
	}

	return inputs, nil
}

// ValidateInputs checks every field against its declared domain. A retirement
// age at or below the current age passes validation: the engine handles that
// horizon as a first-class degenerate scenario.
func (ip *InputParser) ValidateInputs(inputs domain.SimulationInputs) error {
	if inputs.CurrentAge < minAge || inputs.CurrentAge > maxAge {
		return fmt.Errorf("current age must be between %d and %d, got %d", minAge, maxAge, inputs.CurrentAge)
	}
	if inputs.RetirementAge < minRetirementAge || inputs.RetirementAge > maxRetirementAge {
		return fmt.Errorf("retirement age must be between %d and %d, got %d", minRetirementAge, maxRetirementAge, inputs.RetirementAge)
	}
	if inputs.CurrentSavings.IsNegative() {
		return fmt.Errorf("current savings cannot be negative, got %s", inputs.CurrentSavings.String())
	}
	if inputs.MonthlyContribution.IsNegative() {
		return fmt.Errorf("monthly contribution cannot be negative, got %s", inputs.MonthlyContribution.String())
	}
	if inputs.ExpectedReturn.LessThan(minReturn) || inputs.ExpectedReturn.GreaterThan(maxReturn) {
		return fmt.Errorf("expected return must be between %s%% and %s%%, got %s%%",
			minReturn.String(), maxReturn.String(), inputs.ExpectedReturn.String())
	}
	if inputs.InflationRate.LessThan(minInflation) || inputs.InflationRate.GreaterThan(maxInflation) {
		return fmt.Errorf("inflation rate must be between %s%% and %s%%, got %s%%",
			minInflation.String(), maxInflation.String(), inputs.InflationRate.String())
	}
	if inputs.RetirementExpenses.IsNegative() {
		return fmt.Errorf("retirement expenses cannot be negative, got %s", inputs.RetirementExpenses.String())
	}
	return nil
}

// ExampleInputs returns a starter input set with typical values.
func ExampleInputs() domain.SimulationInputs {
	return domain.SimulationInputs{
		CurrentAge:          30,
		RetirementAge:       65,
		CurrentSavings:      decimal.NewFromInt(25000),
		MonthlyContribution: decimal.NewFromInt(500),
		ExpectedReturn:      decimal.NewFromInt(7),
		InflationRate:       decimal.NewFromFloat(2.5),
		RetirementExpenses:  decimal.NewFromInt(3000),
	}
}

// SaveInputs writes simulation inputs to a YAML file.
func SaveInputs(inputs domain.SimulationInputs, filename string) error {
	data, err := yaml.Marshal(inputs)
	if err != nil {
		return err
	}
	return os.WriteFile(filename, data, 0644)
}
