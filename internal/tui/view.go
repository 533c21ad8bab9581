package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"

	"github.com/wealthpath/nestegg/internal/scenario"
	"github.com/wealthpath/nestegg/internal/tui/components"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212")).MarginBottom(1)
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("240")).MarginTop(1)
)

// View renders the explorer: sliders, the trajectory chart and one card per
// scenario, with a help footer.
func (m Model) View() string {
	var sb strings.Builder

	sb.WriteString(titleStyle.Render("nestegg · retirement what-if explorer"))
	sb.WriteString("\n")

	for _, slider := range m.sliders {
		sb.WriteString(slider.Render())
		sb.WriteString("\n")
	}

	if len(m.results) > 0 {
		chartTitle := "Nominal balance by age"
		if m.showReal {
			chartTitle = "Balance by age, today's money"
		}
		sb.WriteString(headerStyle.Render(chartTitle))
		sb.WriteString("\n")
		sb.WriteString(m.renderChart())
		sb.WriteString("\n")
		sb.WriteString(m.renderCards())
		sb.WriteString("\n")
	}

	sb.WriteString("\n")
	sb.WriteString(m.help.View(m.keys))

	return lipgloss.NewStyle().Padding(1, 2).Render(sb.String())
}

// renderChart draws every scenario's trajectory on one grid.
func (m Model) renderChart() string {
	chart := components.NewTrajectoryChart()

	var ages []int
	for _, sr := range m.results {
		points := sr.NominalSeries()
		if m.showReal {
			points = sr.RealSeries()
		}
		chart.AddSeries(sr.Name, points, lipgloss.Color(sr.Color))
		if len(sr.Trajectory) > len(ages) {
			ages = ages[:0]
			for _, p := range sr.Trajectory {
				ages = append(ages, p.Age)
			}
		}
	}
	chart.WithAges(ages)

	if m.width > 40 {
		chart.WithSize(min(m.width-8, 90), 14)
	}
	return chart.Render()
}

// renderCards lays the scenario cards out in two columns.
func (m Model) renderCards() string {
	baseFinal := decimal.Zero
	if base, ok := scenario.FindByName(m.results, scenario.BaseCaseName); ok {
		baseFinal = base.FinalAmount
	}

	cards := make([]string, 0, len(m.results))
	for _, sr := range m.results {
		card := components.NewScenarioCard(sr, baseFinal, sr.Name == scenario.BaseCaseName)
		cards = append(cards, card.Render())
	}

	rows := make([]string, 0, (len(cards)+1)/2)
	for i := 0; i < len(cards); i += 2 {
		end := i + 2
		if end > len(cards) {
			end = len(cards)
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards[i:end]...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}
