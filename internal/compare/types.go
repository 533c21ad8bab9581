// Package compare computes deltas of what-if scenarios against the base case.
package compare

import (
	"github.com/shopspring/decimal"
	"github.com/wealthpath/nestegg/internal/domain"
)

// Result is a single scenario with its comparison metrics against the base.
type Result struct {
	ScenarioName string             `json:"scenarioName"`
	Color        string             `json:"color"`
	Horizon      domain.HorizonKind `json:"horizon"`

	// Key metrics
	FinalAmount              decimal.Decimal      `json:"finalAmount"`
	SustainableMonthlyIncome decimal.Decimal      `json:"sustainableMonthlyIncome"`
	YearsOfIncomeCoverage    domain.CoverageRatio `json:"yearsOfIncomeCoverage"`

	// Deltas from the base case (zero for the base itself)
	FinalDiffFromBase  decimal.Decimal `json:"finalDiffFromBase"`
	FinalPctFromBase   decimal.Decimal `json:"finalPctFromBase"`
	IncomeDiffFromBase decimal.Decimal `json:"incomeDiffFromBase"`
	IncomePctFromBase  decimal.Decimal `json:"incomePctFromBase"`
}

// Set is the base case plus every alternative, in catalogue order.
type Set struct {
	BaseScenarioName   string   `json:"baseScenarioName"`
	BaseResult         *Result  `json:"baseResult"`
	AlternativeResults []Result `json:"alternativeResults"`
}

// MetricsCalculator extracts comparison metrics from scenario results.
type MetricsCalculator struct{}

// NewMetricsCalculator creates a new metrics calculator.
func NewMetricsCalculator() *MetricsCalculator {
	return &MetricsCalculator{}
}

// CalculateMetrics lifts the summary figures of one scenario into a Result.
func (mc *MetricsCalculator) CalculateMetrics(sr domain.ScenarioResult) Result {
	return Result{
		ScenarioName:             sr.Name,
		Color:                    sr.Color,
		Horizon:                  sr.Horizon,
		FinalAmount:              sr.FinalAmount,
		SustainableMonthlyIncome: sr.SustainableMonthlyIncome,
		YearsOfIncomeCoverage:    sr.YearsOfIncomeCoverage,
	}
}

// CalculateComparison fills in the scenario's deltas against the base.
// The comparison is read-only over both results.
func (mc *MetricsCalculator) CalculateComparison(scenario, base Result) Result {
	scenario.FinalDiffFromBase = scenario.FinalAmount.Sub(base.FinalAmount)
	if !base.FinalAmount.IsZero() {
		scenario.FinalPctFromBase = scenario.FinalDiffFromBase.
			Div(base.FinalAmount).
			Mul(decimal.NewFromInt(100))
	}

	scenario.IncomeDiffFromBase = scenario.SustainableMonthlyIncome.Sub(base.SustainableMonthlyIncome)
	if !base.SustainableMonthlyIncome.IsZero() {
		scenario.IncomePctFromBase = scenario.IncomeDiffFromBase.
			Div(base.SustainableMonthlyIncome).
			Mul(decimal.NewFromInt(100))
	}

	return scenario
}
