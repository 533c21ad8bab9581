package compare

import (
	"context"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wealthpath/nestegg/internal/domain"
	"github.com/wealthpath/nestegg/internal/scenario"
)

func compareInputs() domain.SimulationInputs {
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

func TestEngine_Compare(t *testing.T) {
	engine := NewEngine(scenario.NewSetBuilder(nil))

	set, err := engine.Compare(context.Background(), compareInputs())
	require.NoError(t, err)

	assert.Equal(t, scenario.BaseCaseName, set.BaseScenarioName)
	require.NotNil(t, set.BaseResult)
	assert.Len(t, set.AlternativeResults, 4, "Four alternatives against the base")

	assert.True(t, set.BaseResult.FinalDiffFromBase.IsZero(), "The base has no delta from itself")

	for _, alt := range set.AlternativeResults {
		expected := alt.FinalAmount.Sub(set.BaseResult.FinalAmount)
		assert.True(t, alt.FinalDiffFromBase.Equal(expected), "Delta is alternative minus base")
	}
}

func TestEngine_CompareDeltaDirections(t *testing.T) {
	engine := NewEngine(scenario.NewSetBuilder(nil))

	set, err := engine.Compare(context.Background(), compareInputs())
	require.NoError(t, err)

	byName := make(map[string]Result)
	for _, alt := range set.AlternativeResults {
		byName[alt.ScenarioName] = alt
	}

	assert.True(t, byName["Market Downturn (4% return)"].FinalDiffFromBase.IsNegative(),
		"A downturn loses against the base")
	assert.True(t, byName["Optimistic (10% return)"].FinalDiffFromBase.IsPositive(),
		"An optimistic return beats the base")
	assert.True(t, byName["Inflation Spike (5%)"].FinalDiffFromBase.IsZero(),
		"Inflation changes nothing nominal; only the income delta moves")
	assert.True(t, byName["Inflation Spike (5%)"].IncomeDiffFromBase.IsNegative(),
		"Higher inflation erodes sustainable income")
}

func TestEngine_CompareResultsMissingBase(t *testing.T) {
	engine := NewEngine(scenario.NewSetBuilder(nil))

	_, err := engine.CompareResults([]domain.ScenarioResult{{Name: "Something Else"}})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "Base Case")
}

func TestMetricsCalculator_CalculateComparison(t *testing.T) {
	mc := NewMetricsCalculator()

	base := Result{
		FinalAmount:              decimal.NewFromInt(1000),
		SustainableMonthlyIncome: decimal.NewFromInt(40),
	}
	alt := Result{
		FinalAmount:              decimal.NewFromInt(1200),
		SustainableMonthlyIncome: decimal.NewFromInt(50),
	}

	got := mc.CalculateComparison(alt, base)

	assert.True(t, got.FinalDiffFromBase.Equal(decimal.NewFromInt(200)))
	assert.True(t, got.FinalPctFromBase.Equal(decimal.NewFromInt(20)))
	assert.True(t, got.IncomeDiffFromBase.Equal(decimal.NewFromInt(10)))
	assert.True(t, got.IncomePctFromBase.Equal(decimal.NewFromInt(25)))
}

func TestMetricsCalculator_ZeroBaseAvoidsDivision(t *testing.T) {
	mc := NewMetricsCalculator()

	base := Result{FinalAmount: decimal.Zero, SustainableMonthlyIncome: decimal.Zero}
	alt := Result{FinalAmount: decimal.NewFromInt(100), SustainableMonthlyIncome: decimal.NewFromInt(5)}

	got := mc.CalculateComparison(alt, base)

	assert.True(t, got.FinalDiffFromBase.Equal(decimal.NewFromInt(100)))
	assert.True(t, got.FinalPctFromBase.IsZero(), "Percentage against a zero base stays zero")
}

func TestTableFormatter_Format(t *testing.T) {
	engine := NewEngine(scenario.NewSetBuilder(nil))
	set, err := engine.Compare(context.Background(), compareInputs())
	require.NoError(t, err)

	out := (&TableFormatter{}).Format(set)

	assert.Contains(t, out, "RETIREMENT SCENARIO COMPARISON")
	assert.Contains(t, out, "Base Case (base)")
	assert.Contains(t, out, "Optimistic (10% return)")
	assert.Contains(t, out, "COMPARISON TO BASE")
}

func TestTableFormatter_TruncateKeepsRunesWhole(t *testing.T) {
	tf := &TableFormatter{}

	assert.Equal(t, "short", tf.truncate("short", 10))
	assert.Equal(t, "Rüc...", tf.truncate("Rückzug-Szenario", 6),
		"Truncation counts runes, not bytes")

	long := strings.Repeat("ä", 30)
	got := tf.truncate(long, 10)
	assert.Equal(t, 10, len([]rune(got)))
	assert.True(t, strings.HasSuffix(got, "..."))
}

func TestTableFormatter_FormatCompact(t *testing.T) {
	engine := NewEngine(scenario.NewSetBuilder(nil))
	set, err := engine.Compare(context.Background(), compareInputs())
	require.NoError(t, err)

	out := (&TableFormatter{}).FormatCompact(set)

	assert.True(t, strings.HasPrefix(out, "Base: $"), "Compact line leads with the base balance")
	assert.Contains(t, out, "Market Downturn (4% return): -$")
}
