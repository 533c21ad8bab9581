package calculation

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wealthpath/nestegg/internal/domain"
)

// seedInputs is a hand-checkable projection: one year at 12% annual return,
// no contributions, no inflation. monthlyRate = 0.01, so the balance after
// year zero is 1000 * 1.01^12.
func seedInputs() domain.SimulationInputs {
	return domain.SimulationInputs{
		CurrentAge:          30,
		RetirementAge:       31,
		CurrentSavings:      decimal.NewFromInt(1000),
		MonthlyContribution: decimal.Zero,
		ExpectedReturn:      decimal.NewFromInt(12),
		InflationRate:       decimal.Zero,
		RetirementExpenses:  decimal.NewFromInt(100),
	}
}

func TestProjectionEngine_SeedScenario(t *testing.T) {
	engine := NewProjectionEngine()

	result := engine.Project(context.Background(), seedInputs(), "seed", "#8884d8", domain.ScenarioOverride{})

	require.Len(t, result.Trajectory, 2, "One-year horizon should give two points")
	assert.Equal(t, domain.HorizonNormal, result.Horizon)

	assert.Equal(t, 30, result.Trajectory[0].Age)
	assert.Equal(t, 31, result.Trajectory[1].Age)

	// 1000 * 1.01^12
	assert.InDelta(t, 1126.83, result.Trajectory[0].Nominal.InexactFloat64(), 0.01)
	assert.InDelta(t, 1126.83, result.FinalAmount.InexactFloat64(), 0.01)
	assert.InDelta(t, 0.939, float64(result.YearsOfIncomeCoverage), 0.001)
}

func TestProjectionEngine_Determinism(t *testing.T) {
	engine := NewProjectionEngine()
	base := seedInputs()
	override := domain.ScenarioOverride{InflationRate: domain.DecimalPtr(decimal.NewFromInt(5))}

	first := engine.Project(context.Background(), base, "a", "#fff", override)
	second := engine.Project(context.Background(), base, "a", "#fff", override)

	assert.Equal(t, first, second, "Identical arguments should yield identical results")
}

func TestProjectionEngine_TrajectoryShape(t *testing.T) {
	engine := NewProjectionEngine()
	inputs := domain.SimulationInputs{
		CurrentAge:          40,
		RetirementAge:       65,
		CurrentSavings:      decimal.NewFromInt(50000),
		MonthlyContribution: decimal.NewFromInt(800),
		ExpectedReturn:      decimal.NewFromInt(7),
		InflationRate:       decimal.NewFromInt(3),
		RetirementExpenses:  decimal.NewFromInt(4000),
	}

	result := engine.Project(context.Background(), inputs, "shape", "#fff", domain.ScenarioOverride{})

	require.Len(t, result.Trajectory, 26, "25-year horizon should give 26 points")
	for i, p := range result.Trajectory {
		assert.Equal(t, 40+i, p.Age, "Ages should increase strictly from the current age")
	}
	assert.Equal(t, 65, result.FinalPoint().Age, "Trajectory should end at the retirement age")
}

func TestProjectionEngine_TerminalDuplication(t *testing.T) {
	engine := NewProjectionEngine()

	result := engine.Project(context.Background(), seedInputs(), "dup", "#fff", domain.ScenarioOverride{})

	n := len(result.Trajectory)
	last, secondToLast := result.Trajectory[n-1], result.Trajectory[n-2]
	assert.True(t, last.Nominal.Equal(secondToLast.Nominal),
		"The terminal year records no growth, so the last two points match")
	assert.True(t, result.FinalAmount.Equal(last.Nominal), "Final amount is the last nominal balance")
}

func TestProjectionEngine_MonotonicGrowth(t *testing.T) {
	engine := NewProjectionEngine()
	inputs := domain.SimulationInputs{
		CurrentAge:          35,
		RetirementAge:       55,
		CurrentSavings:      decimal.NewFromInt(10000),
		MonthlyContribution: decimal.NewFromInt(250),
		ExpectedReturn:      decimal.NewFromInt(5),
		InflationRate:       decimal.NewFromInt(2),
		RetirementExpenses:  decimal.NewFromInt(2500),
	}

	result := engine.Project(context.Background(), inputs, "mono", "#fff", domain.ScenarioOverride{})

	for i := 1; i < len(result.Trajectory); i++ {
		assert.True(t, result.Trajectory[i].Nominal.GreaterThanOrEqual(result.Trajectory[i-1].Nominal),
			"Nominal balance should never decrease with non-negative contribution and return")
	}
}

func TestProjectionEngine_RealEqualsNominalAtStart(t *testing.T) {
	engine := NewProjectionEngine()
	inputs := seedInputs()
	inputs.InflationRate = decimal.NewFromInt(4)

	result := engine.Project(context.Background(), inputs, "real", "#fff", domain.ScenarioOverride{})

	first := result.Trajectory[0]
	assert.True(t, first.Real.Equal(first.Nominal), "No discounting applies at year offset zero")

	final := result.FinalPoint()
	assert.True(t, final.Real.LessThan(final.Nominal), "Later points should be discounted")
}

func TestProjectionEngine_ZeroHorizonDegenerate(t *testing.T) {
	engine := NewProjectionEngine()
	inputs := seedInputs()
	inputs.CurrentAge = 65
	inputs.RetirementAge = 65

	result := engine.Project(context.Background(), inputs, "zero", "#fff", domain.ScenarioOverride{})

	assert.Equal(t, domain.HorizonDegenerate, result.Horizon, "Equal ages leave no horizon to simulate")
	require.Len(t, result.Trajectory, 1, "Zero horizon should give a single point")
	assert.Equal(t, 65, result.Trajectory[0].Age)
	assert.True(t, result.FinalAmount.Equal(inputs.CurrentSavings), "No growth applies over a zero horizon")
	assert.True(t, result.Trajectory[0].Real.Equal(result.Trajectory[0].Nominal),
		"No discounting applies at a zero horizon")
}

func TestProjectionEngine_NegativeHorizonDegenerate(t *testing.T) {
	engine := NewProjectionEngine()
	inputs := seedInputs()
	inputs.CurrentAge = 70
	inputs.RetirementAge = 65

	result := engine.Project(context.Background(), inputs, "late", "#fff", domain.ScenarioOverride{})

	assert.Equal(t, domain.HorizonDegenerate, result.Horizon, "Negative horizon should be tagged degenerate")
	require.Len(t, result.Trajectory, 1)
	assert.Equal(t, 70, result.Trajectory[0].Age)
	assert.True(t, result.FinalAmount.Equal(inputs.CurrentSavings), "Degenerate result carries current savings unchanged")
	assert.InDelta(t, 1000.0/1200.0, float64(result.YearsOfIncomeCoverage), 0.001,
		"Coverage is still computed from the degenerate amount")
}

func TestProjectionEngine_ZeroExpensesPropagateInfinity(t *testing.T) {
	engine := NewProjectionEngine()
	inputs := seedInputs()
	inputs.RetirementExpenses = decimal.Zero

	result := engine.Project(context.Background(), inputs, "inf", "#fff", domain.ScenarioOverride{})

	assert.False(t, result.YearsOfIncomeCoverage.IsFinite(),
		"Zero expenses should yield an infinite coverage ratio, not an error")
}

func TestProjectionEngine_SustainableIncomeDiscounting(t *testing.T) {
	engine := NewProjectionEngine()

	// No inflation: the 4% rule applies undiscounted.
	result := engine.Project(context.Background(), seedInputs(), "income", "#fff", domain.ScenarioOverride{})
	expected := result.FinalAmount.Mul(decimal.NewFromFloat(0.04)).Div(decimal.NewFromInt(12))
	assert.True(t, result.SustainableMonthlyIncome.Equal(expected),
		"With zero inflation the sustainable income is final*0.04/12")

	// With inflation the figure shrinks by the horizon discount.
	inputs := seedInputs()
	inputs.InflationRate = decimal.NewFromInt(5)
	discounted := engine.Project(context.Background(), inputs, "income", "#fff", domain.ScenarioOverride{})
	assert.True(t, discounted.SustainableMonthlyIncome.LessThan(result.SustainableMonthlyIncome),
		"Inflation should reduce present-day purchasing power")
}

func TestProjectionEngine_SetLogger(t *testing.T) {
	engine := NewProjectionEngine()

	custom := &testLogger{}
	engine.SetLogger(custom)
	assert.Equal(t, custom, engine.Logger, "Should set custom logger")

	engine.SetLogger(nil)
	assert.IsType(t, NopLogger{}, engine.Logger, "Nil logger should restore the no-op default")
}

// testLogger records messages for assertions.
type testLogger struct {
	messages []string
}

func (tl *testLogger) Debugf(format string, args ...any) { tl.messages = append(tl.messages, format) }
func (tl *testLogger) Infof(format string, args ...any)  { tl.messages = append(tl.messages, format) }
func (tl *testLogger) Warnf(format string, args ...any)  { tl.messages = append(tl.messages, format) }
func (tl *testLogger) Errorf(format string, args ...any) { tl.messages = append(tl.messages, format) }
