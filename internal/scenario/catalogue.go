// Package scenario defines the fixed what-if catalogue and orchestrates the
// projection engine across it.
package scenario

import (
	"github.com/shopspring/decimal"
	"github.com/wealthpath/nestegg/internal/domain"
)

// BaseCaseName is the name of the unmodified scenario. Downstream comparison
// looks it up by name, so it is always present and always first.
const BaseCaseName = "Base Case"

// Spec is one catalogue entry: a display name, a presentation color and the
// field overrides that derive the scenario from the base inputs.
type Spec struct {
	Name     string                  `json:"name"`
	Color    string                  `json:"color"`
	Override domain.ScenarioOverride `json:"override"`
}

// Catalogue returns the fixed set of named perturbations, base case first.
// Overrides always apply to the base inputs directly and are never compounded
// across entries.
func Catalogue() []Spec {
	return []Spec{
		{
			Name:  BaseCaseName,
			Color: "#8884d8",
		},
		{
			Name:     "Inflation Spike (5%)",
			Color:    "#82ca9d",
			Override: domain.ScenarioOverride{InflationRate: domain.DecimalPtr(decimal.NewFromInt(5))},
		},
		{
			Name:     "Early Retirement (60)",
			Color:    "#ffc658",
			Override: domain.ScenarioOverride{RetirementAge: domain.IntPtr(60)},
		},
		{
			Name:     "Market Downturn (4% return)",
			Color:    "#ff7f50",
			Override: domain.ScenarioOverride{ExpectedReturn: domain.DecimalPtr(decimal.NewFromInt(4))},
		},
		{
			Name:     "Optimistic (10% return)",
			Color:    "#8dd1e1",
			Override: domain.ScenarioOverride{ExpectedReturn: domain.DecimalPtr(decimal.NewFromInt(10))},
		},
	}
}
