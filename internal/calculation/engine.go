package calculation

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/wealthpath/nestegg/internal/domain"
)

var (
	one            = decimal.NewFromInt(1)
	twelve         = decimal.NewFromInt(12)
	oneHundred     = decimal.NewFromInt(100)
	withdrawalRate = decimal.NewFromFloat(0.04) // fixed 4% annual withdrawal heuristic
)

// ProjectionEngine turns a set of financial inputs into a year-by-year
// savings trajectory plus summary metrics. Project is pure and deterministic:
// identical inputs produce identical results, and no state is shared between
// invocations.
type ProjectionEngine struct {
	Logger Logger
}

// NewProjectionEngine creates a new projection engine with a no-op logger.
func NewProjectionEngine() *ProjectionEngine {
	return &ProjectionEngine{Logger: NopLogger{}}
}

// SetLogger sets a custom logger. A nil logger restores the no-op default.
func (pe *ProjectionEngine) SetLogger(logger Logger) {
	if logger == nil {
		logger = NopLogger{}
	}
	pe.Logger = logger
}

// Project computes one named scenario against the base inputs. The override
// is applied field-wise to a copy of base; unspecified fields keep the base
// value. The function is total over the declared input domain: a retirement
// age at or before the current age yields a tagged degenerate result rather
// than an error.
func (pe *ProjectionEngine) Project(ctx context.Context, base domain.SimulationInputs, name, color string, override domain.ScenarioOverride) domain.ScenarioResult {
	effective := override.Apply(base)

	years := effective.YearsToRetirement()
	pe.Logger.Debugf("projecting %q: horizon %d years, return %s%%, inflation %s%%",
		name, years, effective.ExpectedReturn.String(), effective.InflationRate.String())

	if years <= 0 {
		return pe.degenerate(name, color, effective)
	}

	monthlyRate := effective.ExpectedReturn.Div(oneHundred).Div(twelve)
	growthFactor := one.Add(monthlyRate)
	inflationFactor := one.Add(effective.InflationRate.Div(oneHundred))

	amount := effective.CurrentSavings
	trajectory := make([]domain.YearPoint, 0, years+1)

	for year := 0; year <= years; year++ {
		// The terminal year records the balance already reached; growth is
		// only applied for full years before the horizon. This leaves the
		// last two points equal by construction.
		if year < years {
			for month := 0; month < 12; month++ {
				// Contribution lands after the month's growth and is not
				// growth-adjusted within that month.
				amount = amount.Mul(growthFactor).Add(effective.MonthlyContribution)
			}
		}

		discount := inflationFactor.Pow(decimal.NewFromInt(int64(year)))
		trajectory = append(trajectory, domain.YearPoint{
			Age:     effective.CurrentAge + year,
			Nominal: amount,
			Real:    amount.Div(discount),
		})
	}

	finalAmount := amount
	horizonDiscount := inflationFactor.Pow(decimal.NewFromInt(int64(years)))

	return domain.ScenarioResult{
		Name:                     name,
		Color:                    color,
		Horizon:                  domain.HorizonNormal,
		FinalAmount:              finalAmount,
		SustainableMonthlyIncome: sustainableMonthlyIncome(finalAmount, horizonDiscount),
		YearsOfIncomeCoverage:    yearsOfIncomeCoverage(finalAmount, effective.RetirementExpenses),
		Trajectory:               trajectory,
	}
}

// degenerate handles a non-positive horizon: a single point at the current
// age holding the current savings, with no growth simulated. Summary metrics
// are computed from that amount with the horizon clamped to zero for
// discounting.
func (pe *ProjectionEngine) degenerate(name, color string, effective domain.SimulationInputs) domain.ScenarioResult {
	pe.Logger.Warnf("scenario %q has retirement age %d not after current age %d; producing degenerate result",
		name, effective.RetirementAge, effective.CurrentAge)

	amount := effective.CurrentSavings
	return domain.ScenarioResult{
		Name:                     name,
		Color:                    color,
		Horizon:                  domain.HorizonDegenerate,
		FinalAmount:              amount,
		SustainableMonthlyIncome: sustainableMonthlyIncome(amount, one),
		YearsOfIncomeCoverage:    yearsOfIncomeCoverage(amount, effective.RetirementExpenses),
		Trajectory: []domain.YearPoint{{
			Age:     effective.CurrentAge,
			Nominal: amount,
			Real:    amount,
		}},
	}
}

// sustainableMonthlyIncome applies the fixed 4% annual withdrawal rate to the
// final balance and discounts the monthly figure back to present-day
// purchasing power at the retirement horizon.
func sustainableMonthlyIncome(finalAmount, horizonDiscount decimal.Decimal) decimal.Decimal {
	return finalAmount.Mul(withdrawalRate).Div(twelve).Div(horizonDiscount)
}

// yearsOfIncomeCoverage is the ratio of nominal final savings to annualized
// nominal monthly expenses. Unlike the sustainable income figure it is not
// inflation-adjusted. Zero expenses yield +Inf; the value propagates to the
// consumer unmodified.
func yearsOfIncomeCoverage(finalAmount, monthlyExpenses decimal.Decimal) domain.CoverageRatio {
	return domain.CoverageRatio(finalAmount.InexactFloat64() / (monthlyExpenses.InexactFloat64() * 12))
}
