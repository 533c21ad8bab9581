// Package tui is the interactive explorer: sliders over the simulation
// inputs with live recomputation of the full scenario set on every change.
package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/shopspring/decimal"

	"github.com/wealthpath/nestegg/internal/calculation"
	"github.com/wealthpath/nestegg/internal/domain"
	"github.com/wealthpath/nestegg/internal/scenario"
	"github.com/wealthpath/nestegg/internal/tui/components"
)

// Slider order; must match buildSliders and inputsFromSliders.
const (
	fieldCurrentAge = iota
	fieldRetirementAge
	fieldCurrentSavings
	fieldMonthlyContribution
	fieldExpectedReturn
	fieldInflationRate
	fieldRetirementExpenses
	fieldCount
)

// KeyMap defines the explorer's key bindings.
type KeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Left   key.Binding
	Right  key.Binding
	Toggle key.Binding
	Quit   key.Binding
}

// ShortHelp returns the bindings for the one-line help footer.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Left, k.Right, k.Toggle, k.Quit}
}

// FullHelp returns the bindings for the expanded help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down}, {k.Left, k.Right}, {k.Toggle, k.Quit}}
}

// DefaultKeyMap returns the standard bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "previous field")),
		Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "next field")),
		Left:   key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "decrease")),
		Right:  key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "increase")),
		Toggle: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "nominal/real")),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// Model is the explorer's application state.
type Model struct {
	builder *scenario.SetBuilder

	sliders []*components.Slider
	focus   int

	results  []domain.ScenarioResult
	showReal bool

	keys KeyMap
	help help.Model

	width  int
	height int
}

// NewModel creates the explorer seeded with the given inputs.
func NewModel(inputs domain.SimulationInputs) Model {
	m := Model{
		builder: scenario.NewSetBuilder(calculation.NewProjectionEngine()),
		sliders: buildSliders(inputs),
		keys:    DefaultKeyMap(),
		help:    help.New(),
		width:   100,
		height:  30,
	}
	m.sliders[m.focus].IsFocused = true
	return m
}

// Init kicks off the first computation.
func (m Model) Init() tea.Cmd {
	return recomputeCmd(m.builder, m.currentInputs())
}

// buildSliders maps each input field to a slider over its declared domain.
func buildSliders(inputs domain.SimulationInputs) []*components.Slider {
	sliders := make([]*components.Slider, fieldCount)
	sliders[fieldCurrentAge] = components.NewSlider("Current Age", float64(inputs.CurrentAge), 18, 80, 1)
	sliders[fieldRetirementAge] = components.NewSlider("Retirement Age", float64(inputs.RetirementAge), 50, 80, 1)
	sliders[fieldCurrentSavings] = components.NewSlider("Current Savings", inputs.CurrentSavings.InexactFloat64(), 0, 1000000, 5000).
		WithUnit(" $")
	sliders[fieldMonthlyContribution] = components.NewSlider("Monthly Contribution", inputs.MonthlyContribution.InexactFloat64(), 0, 10000, 100).
		WithUnit(" $/mo")
	sliders[fieldExpectedReturn] = components.NewSlider("Expected Return", inputs.ExpectedReturn.InexactFloat64(), 1, 15, 0.5).
		WithFormat("%.1f").WithUnit("%")
	sliders[fieldInflationRate] = components.NewSlider("Inflation Rate", inputs.InflationRate.InexactFloat64(), 1, 8, 0.5).
		WithFormat("%.1f").WithUnit("%")
	sliders[fieldRetirementExpenses] = components.NewSlider("Retirement Expenses", inputs.RetirementExpenses.InexactFloat64(), 0, 20000, 250).
		WithUnit(" $/mo")
	return sliders
}

// currentInputs reassembles a SimulationInputs value from the slider state.
func (m Model) currentInputs() domain.SimulationInputs {
	return domain.SimulationInputs{
		CurrentAge:          int(m.sliders[fieldCurrentAge].Value),
		RetirementAge:       int(m.sliders[fieldRetirementAge].Value),
		CurrentSavings:      decimal.NewFromFloat(m.sliders[fieldCurrentSavings].Value),
		MonthlyContribution: decimal.NewFromFloat(m.sliders[fieldMonthlyContribution].Value),
		ExpectedReturn:      decimal.NewFromFloat(m.sliders[fieldExpectedReturn].Value),
		InflationRate:       decimal.NewFromFloat(m.sliders[fieldInflationRate].Value),
		RetirementExpenses:  decimal.NewFromFloat(m.sliders[fieldRetirementExpenses].Value),
	}
}
