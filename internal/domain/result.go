package domain

import (
	"math"

	"github.com/goccy/go-json"
	"github.com/shopspring/decimal"
)

// CoverageRatio is a years-of-expenses ratio. In process it behaves as an
// ordinary float, so zero expenses produce +Inf and callers see it unmodified.
// Non-finite values serialize as JSON null since JSON cannot carry them.
type CoverageRatio float64

// IsFinite reports whether the ratio is a representable number.
func (cr CoverageRatio) IsFinite() bool {
	f := float64(cr)
	return !math.IsInf(f, 0) && !math.IsNaN(f)
}

// MarshalJSON encodes non-finite ratios as null.
func (cr CoverageRatio) MarshalJSON() ([]byte, error) {
	if !cr.IsFinite() {
		return []byte("null"), nil
	}
	return json.Marshal(float64(cr))
}

// UnmarshalJSON decodes null back to +Inf.
func (cr *CoverageRatio) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*cr = CoverageRatio(math.Inf(1))
		return nil
	}
	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return err
	}
	*cr = CoverageRatio(f)
	return nil
}

// HorizonKind tags how a scenario's projection horizon was handled.
type HorizonKind string

const (
	// HorizonNormal is a projection over one or more full years.
	HorizonNormal HorizonKind = "normal"
	// HorizonDegenerate marks a retirement age at or before the current age.
	// The result carries a single trajectory point and no simulated growth.
	HorizonDegenerate HorizonKind = "degenerate"
)

// YearPoint is one row of a projection trajectory.
type YearPoint struct {
	Age     int             `json:"age"`
	Nominal decimal.Decimal `json:"nominal"`
	Real    decimal.Decimal `json:"real"` // nominal discounted by cumulative inflation
}

// ScenarioResult is the complete outcome of projecting one named scenario:
// the year-by-year trajectory plus summary metrics. Results are built once,
// read many times, and discarded wholesale on recomputation.
type ScenarioResult struct {
	Name    string      `json:"name"`
	Color   string      `json:"color"` // opaque presentation identifier
	Horizon HorizonKind `json:"horizon"`

	FinalAmount              decimal.Decimal `json:"finalAmount"`
	SustainableMonthlyIncome decimal.Decimal `json:"sustainableMonthlyIncome"` // inflation-adjusted
	// YearsOfIncomeCoverage is a plain ratio of nominal savings to annualized
	// nominal expenses. Zero expenses yield +Inf, which propagates to the
	// consumer; formatting layers are expected to handle it.
	YearsOfIncomeCoverage CoverageRatio `json:"yearsOfIncomeCoverage"`

	Trajectory []YearPoint `json:"trajectory"`
}

// FinalPoint returns the last trajectory point.
func (sr ScenarioResult) FinalPoint() YearPoint {
	return sr.Trajectory[len(sr.Trajectory)-1]
}

// StartAge returns the age of the first trajectory point.
func (sr ScenarioResult) StartAge() int {
	return sr.Trajectory[0].Age
}

// NominalSeries returns the nominal balances as float64s for charting.
func (sr ScenarioResult) NominalSeries() []float64 {
	points := make([]float64, len(sr.Trajectory))
	for i, p := range sr.Trajectory {
		points[i] = p.Nominal.InexactFloat64()
	}
	return points
}

// RealSeries returns the inflation-adjusted balances as float64s for charting.
func (sr ScenarioResult) RealSeries() []float64 {
	points := make([]float64, len(sr.Trajectory))
	for i, p := range sr.Trajectory {
		points[i] = p.Real.InexactFloat64()
	}
	return points
}
