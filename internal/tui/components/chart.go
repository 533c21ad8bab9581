// Package components holds the reusable rendering pieces of the interactive
// explorer: the trajectory chart, parameter sliders and scenario cards.
package components

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Series is one projected trajectory drawn on the chart.
type Series struct {
	Name   string
	Points []float64
	Color  lipgloss.Color
}

// TrajectoryChart draws every scenario's balance-by-age curve on one grid.
type TrajectoryChart struct {
	Series []Series
	Ages   []int // X-axis labels, ascending
	Width  int
	Height int
}

// NewTrajectoryChart creates a chart with default dimensions.
func NewTrajectoryChart() *TrajectoryChart {
	return &TrajectoryChart{Width: 64, Height: 14}
}

// AddSeries appends a trajectory to the chart.
func (c *TrajectoryChart) AddSeries(name string, points []float64, color lipgloss.Color) *TrajectoryChart {
	c.Series = append(c.Series, Series{Name: name, Points: points, Color: color})
	return c
}

// WithAges sets the X-axis age labels.
func (c *TrajectoryChart) WithAges(ages []int) *TrajectoryChart {
	c.Ages = ages
	return c
}

// WithSize sets the chart dimensions.
func (c *TrajectoryChart) WithSize(width, height int) *TrajectoryChart {
	c.Width = width
	c.Height = height
	return c
}

var seriesRunes = []rune{'●', '■', '▲', '♦', '○'}

// Render returns the chart grid with Y-axis labels and a legend.
func (c *TrajectoryChart) Render() string {
	if len(c.Series) == 0 {
		return "no data"
	}

	lo, hi := c.bounds()
	if hi == lo {
		hi = lo + 1
	}

	yAxisWidth := 8
	plotWidth := c.Width - yAxisWidth
	if plotWidth < 10 {
		plotWidth = 10
	}

	grid := make([][]rune, c.Height)
	styles := make([][]int, c.Height) // series index per cell, -1 = empty
	for i := range grid {
		grid[i] = make([]rune, plotWidth)
		styles[i] = make([]int, plotWidth)
		for j := range grid[i] {
			grid[i][j] = ' '
			styles[i][j] = -1
		}
	}

	for si, s := range c.Series {
		c.plot(grid, styles, si, s.Points, lo, hi, plotWidth)
	}

	var sb strings.Builder
	muted := lipgloss.NewStyle().Foreground(lipgloss.Color("240"))

	for row := 0; row < c.Height; row++ {
		yValue := hi - (float64(row)/float64(c.Height-1))*(hi-lo)
		sb.WriteString(muted.Width(yAxisWidth).Align(lipgloss.Right).Render(axisLabel(yValue)))
		sb.WriteString(" │")
		for col := 0; col < plotWidth; col++ {
			if si := styles[row][col]; si >= 0 {
				sb.WriteString(lipgloss.NewStyle().Foreground(c.Series[si].Color).Render(string(grid[row][col])))
			} else {
				sb.WriteRune(' ')
			}
		}
		sb.WriteString("\n")
	}

	sb.WriteString(strings.Repeat(" ", yAxisWidth))
	sb.WriteString(" └")
	sb.WriteString(strings.Repeat("─", plotWidth))
	sb.WriteString("\n")
	sb.WriteString(c.renderAgeLabels(yAxisWidth, plotWidth, muted))
	sb.WriteString("\n")
	sb.WriteString(c.renderLegend())

	return sb.String()
}

// plot draws one series onto the grid, connecting consecutive points.
func (c *TrajectoryChart) plot(grid [][]rune, styles [][]int, si int, points []float64, lo, hi float64, plotWidth int) {
	if len(points) == 0 {
		return
	}
	ch := seriesRunes[si%len(seriesRunes)]

	toCell := func(i int, v float64) (int, int) {
		x := 0
		if len(points) > 1 {
			x = int(float64(i) / float64(len(points)-1) * float64(plotWidth-1))
		}
		y := c.Height - 1 - int((v-lo)/(hi-lo)*float64(c.Height-1))
		return x, y
	}

	prevX, prevY := -1, -1
	for i, v := range points {
		x, y := toCell(i, v)
		if x >= 0 && x < plotWidth && y >= 0 && y < c.Height {
			grid[y][x] = ch
			styles[y][x] = si
		}
		if prevX >= 0 {
			drawSegment(grid, styles, si, ch, prevX, prevY, x, y)
		}
		prevX, prevY = x, y
	}
}

// drawSegment connects two cells with a Bresenham walk, never overwriting a
// cell another series already claimed.
func drawSegment(grid [][]rune, styles [][]int, si int, ch rune, x0, y0, x1, y1 int) {
	dx, dy := absInt(x1-x0), absInt(y1-y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	err := dx - dy

	x, y := x0, y0
	for {
		if y >= 0 && y < len(grid) && x >= 0 && x < len(grid[0]) && grid[y][x] == ' ' {
			grid[y][x] = ch
			styles[y][x] = si
		}
		if x == x1 && y == y1 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x += sx
		}
		if e2 < dx {
			err += dx
			y += sy
		}
	}
}

// bounds finds the global value range across all series, with 10% headroom.
func (c *TrajectoryChart) bounds() (float64, float64) {
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, s := range c.Series {
		for _, v := range s.Points {
			lo = math.Min(lo, v)
			hi = math.Max(hi, v)
		}
	}
	pad := (hi - lo) * 0.1
	return lo - pad, hi + pad
}

// renderAgeLabels places up to five evenly spaced age labels under the axis.
func (c *TrajectoryChart) renderAgeLabels(yAxisWidth, plotWidth int, style lipgloss.Style) string {
	if len(c.Ages) < 2 {
		return ""
	}
	first := fmt.Sprintf("age %d", c.Ages[0])
	last := fmt.Sprintf("%d", c.Ages[len(c.Ages)-1])
	gap := plotWidth - len(first) - len(last)
	if gap < 1 {
		gap = 1
	}
	return strings.Repeat(" ", yAxisWidth+2) + style.Render(first+strings.Repeat(" ", gap)+last)
}

// renderLegend lists each series with its plot symbol in its color.
func (c *TrajectoryChart) renderLegend() string {
	items := make([]string, 0, len(c.Series))
	for i, s := range c.Series {
		symbol := lipgloss.NewStyle().Foreground(s.Color).Render(string(seriesRunes[i%len(seriesRunes)]))
		items = append(items, symbol+" "+s.Name)
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Render(strings.Join(items, "  "))
}

// axisLabel abbreviates a Y-axis value to a K/M magnitude suffix.
func axisLabel(value float64) string {
	switch {
	case math.Abs(value) >= 1000000:
		return fmt.Sprintf("$%.1fM", value/1000000)
	case math.Abs(value) >= 1000:
		return fmt.Sprintf("$%.0fK", value/1000)
	default:
		return fmt.Sprintf("$%.0f", value)
	}
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
