package compare

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/wealthpath/nestegg/internal/domain"
)

// TableFormatter formats a comparison set as a console table.
type TableFormatter struct{}

// Format renders the full comparison: one row per scenario plus a per-scenario
// delta breakdown against the base case.
func (tf *TableFormatter) Format(set *Set) string {
	var sb strings.Builder

	sb.WriteString("RETIREMENT SCENARIO COMPARISON\n")
	sb.WriteString(strings.Repeat("=", 88) + "\n")
	sb.WriteString(fmt.Sprintf("Base Scenario: %s\n", set.BaseScenarioName))
	sb.WriteString("\n")

	nameWidth := 28
	numWidth := 18

	sb.WriteString(fmt.Sprintf("%-*s %*s %*s %*s\n",
		nameWidth, "Scenario",
		numWidth, "Final Balance",
		numWidth, "Monthly Income",
		numWidth, "Coverage"))
	sb.WriteString(strings.Repeat("-", 88) + "\n")

	sb.WriteString(tf.formatRow(set.BaseResult, nameWidth, numWidth, true))

	if len(set.AlternativeResults) > 0 {
		sb.WriteString(strings.Repeat("-", 88) + "\n")
		for i := range set.AlternativeResults {
			sb.WriteString(tf.formatRow(&set.AlternativeResults[i], nameWidth, numWidth, false))
		}
	}

	sb.WriteString(strings.Repeat("=", 88) + "\n")

	if len(set.AlternativeResults) > 0 {
		sb.WriteString("\nCOMPARISON TO BASE\n")
		sb.WriteString(strings.Repeat("-", 88) + "\n")

		for _, alt := range set.AlternativeResults {
			sb.WriteString(fmt.Sprintf("\n%s:\n", alt.ScenarioName))

			finalSymbol := tf.deltaSymbol(alt.FinalDiffFromBase)
			sb.WriteString(fmt.Sprintf("  Final Balance:    %s$%s (%s%s%%)\n",
				finalSymbol,
				tf.formatDecimal(alt.FinalDiffFromBase.Abs()),
				finalSymbol,
				alt.FinalPctFromBase.Abs().StringFixed(1)))

			incomeSymbol := tf.deltaSymbol(alt.IncomeDiffFromBase)
			sb.WriteString(fmt.Sprintf("  Monthly Income:   %s$%s (%s%s%%)\n",
				incomeSymbol,
				tf.formatDecimal(alt.IncomeDiffFromBase.Abs()),
				incomeSymbol,
				alt.IncomePctFromBase.Abs().StringFixed(1)))
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

// FormatCompact creates a single-line summary of the alternatives.
func (tf *TableFormatter) FormatCompact(set *Set) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Base: $%s | ", tf.formatDecimal(set.BaseResult.FinalAmount)))

	for i, alt := range set.AlternativeResults {
		if i > 0 {
			sb.WriteString(" | ")
		}
		change := "="
		if alt.FinalDiffFromBase.IsPositive() {
			change = fmt.Sprintf("+$%s", tf.formatDecimal(alt.FinalDiffFromBase))
		} else if alt.FinalDiffFromBase.IsNegative() {
			change = fmt.Sprintf("-$%s", tf.formatDecimal(alt.FinalDiffFromBase.Abs()))
		}
		sb.WriteString(fmt.Sprintf("%s: %s", alt.ScenarioName, change))
	}

	return sb.String()
}

// formatRow formats a single scenario row.
func (tf *TableFormatter) formatRow(result *Result, nameWidth, numWidth int, isBase bool) string {
	name := result.ScenarioName
	if isBase {
		name += " (base)"
	}
	if result.Horizon == domain.HorizonDegenerate {
		name += " [no horizon]"
	}

	return fmt.Sprintf("%-*s %*s %*s %*s\n",
		nameWidth, tf.truncate(name, nameWidth),
		numWidth, "$"+tf.formatDecimal(result.FinalAmount),
		numWidth, "$"+result.SustainableMonthlyIncome.StringFixed(0)+"/mo",
		numWidth, tf.formatCoverage(result.YearsOfIncomeCoverage))
}

// formatCoverage renders the coverage ratio, handling the zero-expense
// infinity the engine deliberately propagates.
func (tf *TableFormatter) formatCoverage(years domain.CoverageRatio) string {
	if !years.IsFinite() {
		return "n/a"
	}
	return fmt.Sprintf("%.1f years", float64(years))
}

// formatDecimal abbreviates large amounts to K/M for table display.
func (tf *TableFormatter) formatDecimal(d decimal.Decimal) string {
	if d.Abs().GreaterThanOrEqual(decimal.NewFromInt(1000000)) {
		return d.Div(decimal.NewFromInt(1000000)).StringFixed(2) + "M"
	} else if d.Abs().GreaterThanOrEqual(decimal.NewFromInt(1000)) {
		return d.Div(decimal.NewFromInt(1000)).StringFixed(1) + "K"
	}
	return d.StringFixed(0)
}

// deltaSymbol returns + for positive deltas and nothing otherwise.
func (tf *TableFormatter) deltaSymbol(delta decimal.Decimal) string {
	if delta.IsPositive() {
		return "+"
	} else if delta.IsNegative() {
		return "-"
	}
	return " "
}

// truncate shortens a string to maxLen runes.
func (tf *TableFormatter) truncate(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	return string(runes[:maxLen-3]) + "..."
}
