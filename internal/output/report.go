// Package output renders scenario sets for external consumers: a console
// report, CSV rows and machine-readable JSON. It is purely presentational;
// nothing here feeds back into the projection.
package output

import (
	"encoding/csv"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/goccy/go-json"
	"github.com/shopspring/decimal"
	"github.com/wealthpath/nestegg/internal/domain"
)

// Formatter renders a scenario set to bytes.
type Formatter interface {
	Format(results []domain.ScenarioResult) ([]byte, error)
	Name() string
}

// GetFormatterByName returns the formatter registered under name, or nil.
func GetFormatterByName(name string) Formatter {
	switch name {
	case "console":
		return &ConsoleFormatter{}
	case "csv":
		return &CSVFormatter{}
	case "json":
		return &JSONFormatter{}
	default:
		return nil
	}
}

// FormatterNames lists the supported output format names.
func FormatterNames() []string {
	return []string{"console", "csv", "json"}
}

// ConsoleFormatter renders a human-readable report of every scenario.
type ConsoleFormatter struct{}

// Name returns the registry name of the formatter.
func (cf *ConsoleFormatter) Name() string { return "console" }

// Format renders each scenario's summary metrics and trajectory endpoints.
func (cf *ConsoleFormatter) Format(results []domain.ScenarioResult) ([]byte, error) {
	var sb strings.Builder

	sb.WriteString("RETIREMENT SAVINGS PROJECTION\n")
	sb.WriteString(strings.Repeat("=", 72) + "\n\n")

	for i, sr := range results {
		sb.WriteString(fmt.Sprintf("SCENARIO %d: %s\n", i+1, sr.Name))
		sb.WriteString(strings.Repeat("-", 50) + "\n")

		if sr.Horizon == domain.HorizonDegenerate {
			sb.WriteString("  Retirement age is not after current age; no growth simulated.\n")
		}

		start := sr.Trajectory[0]
		final := sr.FinalPoint()
		sb.WriteString(fmt.Sprintf("  Age %d:               %s\n", start.Age, FormatCurrency(start.Nominal)))
		if final.Age != start.Age {
			sb.WriteString(fmt.Sprintf("  Age %d (retirement):  %s\n", final.Age, FormatCurrency(final.Nominal)))
		}
		sb.WriteString(fmt.Sprintf("  In today's money:     %s\n", FormatCurrency(final.Real)))
		sb.WriteString(fmt.Sprintf("  Final Balance:        %s\n", FormatCompactCurrency(sr.FinalAmount)))
		sb.WriteString(fmt.Sprintf("  Sustainable Income:   %s/month\n", FormatCurrency(sr.SustainableMonthlyIncome)))
		sb.WriteString(fmt.Sprintf("  Expense Coverage:     %s\n", FormatCoverage(sr.YearsOfIncomeCoverage)))
		sb.WriteString("\n")
	}

	return []byte(sb.String()), nil
}

// CSVFormatter renders the scenario trajectories pivoted per age, one column
// per scenario, the shape multi-series chart consumers expect.
type CSVFormatter struct{}

// Name returns the registry name of the formatter.
func (cf *CSVFormatter) Name() string { return "csv" }

// Format writes one row per age with the nominal balance of every scenario.
func (cf *CSVFormatter) Format(results []domain.ScenarioResult) ([]byte, error) {
	var sb strings.Builder
	writer := csv.NewWriter(&sb)

	header := []string{"age"}
	for _, sr := range results {
		header = append(header, sr.Name)
	}
	if err := writer.Write(header); err != nil {
		return nil, err
	}

	for _, row := range PivotByAge(results) {
		record := []string{strconv.Itoa(row.Age)}
		for _, sr := range results {
			if amount, ok := row.Nominal[sr.Name]; ok {
				record = append(record, amount.StringFixed(2))
			} else {
				record = append(record, "")
			}
		}
		if err := writer.Write(record); err != nil {
			return nil, err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, err
	}
	return []byte(sb.String()), nil
}

// JSONFormatter renders the full scenario set as indented JSON.
type JSONFormatter struct{}

// Name returns the registry name of the formatter.
func (jf *JSONFormatter) Name() string { return "json" }

// Format marshals the scenario results. Infinite coverage ratios serialize
// as null (see domain.CoverageRatio).
func (jf *JSONFormatter) Format(results []domain.ScenarioResult) ([]byte, error) {
	return json.MarshalIndent(results, "", "  ")
}

// AgeRow is one pivoted row: an age and the balance of each scenario that
// reaches it, keyed by scenario name.
type AgeRow struct {
	Age     int
	Nominal map[string]decimal.Decimal
}

// PivotByAge reshapes the per-scenario trajectories into per-age rows for
// multi-series display. Ages are the union across scenarios, ascending;
// scenarios with shorter horizons simply have no value at later ages.
func PivotByAge(results []domain.ScenarioResult) []AgeRow {
	minAge, maxAge := math.MaxInt, math.MinInt
	for _, sr := range results {
		if len(sr.Trajectory) == 0 {
			continue
		}
		if sr.StartAge() < minAge {
			minAge = sr.StartAge()
		}
		if sr.FinalPoint().Age > maxAge {
			maxAge = sr.FinalPoint().Age
		}
	}
	if minAge > maxAge {
		return nil
	}

	rows := make([]AgeRow, 0, maxAge-minAge+1)
	for age := minAge; age <= maxAge; age++ {
		row := AgeRow{Age: age, Nominal: make(map[string]decimal.Decimal)}
		for _, sr := range results {
			offset := age - sr.StartAge()
			if offset >= 0 && offset < len(sr.Trajectory) {
				row.Nominal[sr.Name] = sr.Trajectory[offset].Nominal
			}
		}
		rows = append(rows, row)
	}
	return rows
}

// FormatCurrency formats a decimal as a full currency amount.
func FormatCurrency(amount decimal.Decimal) string {
	return "$" + amount.StringFixed(2)
}

// FormatCompactCurrency abbreviates an amount to K/M magnitude suffixes.
func FormatCompactCurrency(amount decimal.Decimal) string {
	abs := amount.Abs()
	switch {
	case abs.GreaterThanOrEqual(decimal.NewFromInt(1000000)):
		return "$" + amount.Div(decimal.NewFromInt(1000000)).StringFixed(2) + "M"
	case abs.GreaterThanOrEqual(decimal.NewFromInt(1000)):
		return "$" + amount.Div(decimal.NewFromInt(1000)).StringFixed(1) + "K"
	default:
		return "$" + amount.StringFixed(0)
	}
}

// FormatPercentage formats a decimal as a percentage.
func FormatPercentage(amount decimal.Decimal) string {
	return amount.StringFixed(2) + "%"
}

// FormatCoverage renders the years-of-coverage ratio. The engine propagates
// +Inf for zero expenses; that boundary is handled here, at formatting time.
func FormatCoverage(years domain.CoverageRatio) string {
	if !years.IsFinite() {
		return "n/a (no expenses configured)"
	}
	return fmt.Sprintf("%.1f years of expenses", float64(years))
}
