package components

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Slider is an adjustable numeric input rendered as a labelled bar. The TUI
// keeps one per simulation field; arrow keys step the value within its
// declared domain.
type Slider struct {
	Label     string
	Value     float64
	Min       float64
	Max       float64
	Step      float64
	Format    string // value format, e.g. "%.0f"
	Unit      string // suffix, e.g. "%", "/mo"
	Width     int
	IsFocused bool
}

// NewSlider creates a slider over [min, max] with the given step.
func NewSlider(label string, value, min, max, step float64) *Slider {
	return &Slider{
		Label:  label,
		Value:  value,
		Min:    min,
		Max:    max,
		Step:   step,
		Format: "%.0f",
		Width:  24,
	}
}

// WithFormat sets the value format string.
func (s *Slider) WithFormat(format string) *Slider {
	s.Format = format
	return s
}

// WithUnit sets the value suffix.
func (s *Slider) WithUnit(unit string) *Slider {
	s.Unit = unit
	return s
}

// Increment steps the value up, clamped to the domain.
func (s *Slider) Increment() {
	s.SetValue(s.Value + s.Step)
}

// Decrement steps the value down, clamped to the domain.
func (s *Slider) Decrement() {
	s.SetValue(s.Value - s.Step)
}

// SetValue sets the value, clamped to [Min, Max].
func (s *Slider) SetValue(value float64) {
	s.Value = math.Max(s.Min, math.Min(s.Max, value))
}

// Render returns the slider as a single line: label, bar, value.
func (s *Slider) Render() string {
	labelStyle := lipgloss.NewStyle().Width(22)
	valueStyle := lipgloss.NewStyle().Bold(true)
	if s.IsFocused {
		labelStyle = labelStyle.Foreground(lipgloss.Color("212"))
		valueStyle = valueStyle.Foreground(lipgloss.Color("212"))
	}

	ratio := 0.0
	if s.Max > s.Min {
		ratio = (s.Value - s.Min) / (s.Max - s.Min)
	}
	filled := int(math.Round(float64(s.Width) * ratio))
	if filled > s.Width {
		filled = s.Width
	}

	var bar strings.Builder
	bar.WriteString("[")
	for i := 0; i < s.Width; i++ {
		switch {
		case i == filled || (filled == s.Width && i == s.Width-1):
			bar.WriteString("●")
		case i < filled:
			bar.WriteString("━")
		default:
			bar.WriteString("─")
		}
	}
	bar.WriteString("]")

	value := fmt.Sprintf(s.Format, s.Value) + s.Unit
	return fmt.Sprintf("%s %s %s", labelStyle.Render(s.Label), bar.String(), valueStyle.Render(value))
}
