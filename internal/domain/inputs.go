package domain

import (
	"github.com/shopspring/decimal"
)

// SimulationInputs holds the full set of financial assumptions for one
// projection. It is treated as a value: every derived scenario works on its
// own copy and nothing mutates a set of inputs after it is built.
type SimulationInputs struct {
	CurrentAge          int             `json:"currentAge" yaml:"current_age"`
	RetirementAge       int             `json:"retirementAge" yaml:"retirement_age"`
	CurrentSavings      decimal.Decimal `json:"currentSavings" yaml:"current_savings"`
	MonthlyContribution decimal.Decimal `json:"monthlyContribution" yaml:"monthly_contribution"`
	ExpectedReturn      decimal.Decimal `json:"expectedReturn" yaml:"expected_return"`      // annual %
	InflationRate       decimal.Decimal `json:"inflationRate" yaml:"inflation_rate"`        // annual %
	RetirementExpenses  decimal.Decimal `json:"retirementExpenses" yaml:"retirement_expenses"` // monthly
}

// YearsToRetirement returns the projection horizon in years. It may be zero
// or negative; callers decide how to handle the degenerate horizon.
func (si SimulationInputs) YearsToRetirement() int {
	return si.RetirementAge - si.CurrentAge
}

// ScenarioOverride is a partial replacement of input fields used to derive a
// named what-if variant from a base input set. Nil fields keep the base value.
type ScenarioOverride struct {
	CurrentAge          *int             `json:"currentAge,omitempty" yaml:"current_age,omitempty"`
	RetirementAge       *int             `json:"retirementAge,omitempty" yaml:"retirement_age,omitempty"`
	CurrentSavings      *decimal.Decimal `json:"currentSavings,omitempty" yaml:"current_savings,omitempty"`
	MonthlyContribution *decimal.Decimal `json:"monthlyContribution,omitempty" yaml:"monthly_contribution,omitempty"`
	ExpectedReturn      *decimal.Decimal `json:"expectedReturn,omitempty" yaml:"expected_return,omitempty"`
	InflationRate       *decimal.Decimal `json:"inflationRate,omitempty" yaml:"inflation_rate,omitempty"`
	RetirementExpenses  *decimal.Decimal `json:"retirementExpenses,omitempty" yaml:"retirement_expenses,omitempty"`
}

// Apply returns a copy of base with every non-nil override field replaced.
// The base is never modified.
func (so ScenarioOverride) Apply(base SimulationInputs) SimulationInputs {
	effective := base
	if so.CurrentAge != nil {
		effective.CurrentAge = *so.CurrentAge
	}
	if so.RetirementAge != nil {
		effective.RetirementAge = *so.RetirementAge
	}
	if so.CurrentSavings != nil {
		effective.CurrentSavings = *so.CurrentSavings
	}
	if so.MonthlyContribution != nil {
		effective.MonthlyContribution = *so.MonthlyContribution
	}
	if so.ExpectedReturn != nil {
		effective.ExpectedReturn = *so.ExpectedReturn
	}
	if so.InflationRate != nil {
		effective.InflationRate = *so.InflationRate
	}
	if so.RetirementExpenses != nil {
		effective.RetirementExpenses = *so.RetirementExpenses
	}
	return effective
}

// IsEmpty reports whether the override replaces no fields.
func (so ScenarioOverride) IsEmpty() bool {
	return so.CurrentAge == nil &&
		so.RetirementAge == nil &&
		so.CurrentSavings == nil &&
		so.MonthlyContribution == nil &&
		so.ExpectedReturn == nil &&
		so.InflationRate == nil &&
		so.RetirementExpenses == nil
}

// IntPtr returns a pointer to v, for building overrides inline.
func IntPtr(v int) *int { return &v }

// DecimalPtr returns a pointer to d, for building overrides inline.
func DecimalPtr(d decimal.Decimal) *decimal.Decimal { return &d }
