package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"
	"github.com/wealthpath/nestegg/internal/domain"
	"github.com/wealthpath/nestegg/internal/output"
)

// ScenarioCard summarizes one scenario next to the chart: final balance,
// sustainable income, coverage and the delta against the base case.
type ScenarioCard struct {
	Result    domain.ScenarioResult
	BaseFinal decimal.Decimal
	IsBase    bool
	Width     int
}

// NewScenarioCard creates a card for a scenario, with the base-case final
// balance for delta display.
func NewScenarioCard(result domain.ScenarioResult, baseFinal decimal.Decimal, isBase bool) *ScenarioCard {
	return &ScenarioCard{
		Result:    result,
		BaseFinal: baseFinal,
		IsBase:    isBase,
		Width:     34,
	}
}

// Render returns the bordered card.
func (sc *ScenarioCard) Render() string {
	border := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(sc.Result.Color)).
		Padding(0, 1).
		Width(sc.Width)

	title := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(sc.Result.Color))
	label := lipgloss.NewStyle().Foreground(lipgloss.Color("240"))

	var sb strings.Builder
	name := sc.Result.Name
	if sc.IsBase {
		name += " (base)"
	}
	sb.WriteString(title.Render(name))
	sb.WriteString("\n")
	sb.WriteString(label.Render("Final:    "))
	sb.WriteString(output.FormatCompactCurrency(sc.Result.FinalAmount))
	sb.WriteString(sc.renderDelta())
	sb.WriteString("\n")
	sb.WriteString(label.Render("Income:   "))
	sb.WriteString(output.FormatCompactCurrency(sc.Result.SustainableMonthlyIncome) + "/mo")
	sb.WriteString("\n")
	sb.WriteString(label.Render("Coverage: "))
	sb.WriteString(output.FormatCoverage(sc.Result.YearsOfIncomeCoverage))

	return border.Render(sb.String())
}

// renderDelta shows the percentage change of the final balance against the
// base case, colored by direction.
func (sc *ScenarioCard) renderDelta() string {
	if sc.IsBase || sc.BaseFinal.IsZero() {
		return ""
	}
	pct := sc.Result.FinalAmount.Sub(sc.BaseFinal).
		Div(sc.BaseFinal).
		Mul(decimal.NewFromInt(100))

	style := lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	sign := "+"
	if pct.IsNegative() {
		style = style.Foreground(lipgloss.Color("196"))
		sign = ""
	}
	return " " + style.Render(sign+pct.StringFixed(1)+"%")
}
