package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/wealthpath/nestegg/internal/domain"
	"github.com/wealthpath/nestegg/internal/scenario"
)

// ResultsMsg carries a freshly computed scenario set.
type ResultsMsg struct {
	Results []domain.ScenarioResult
}

// recomputeCmd rebuilds the full scenario set for the given inputs. The set
// is always rebuilt from scratch; prior results are discarded.
func recomputeCmd(builder *scenario.SetBuilder, inputs domain.SimulationInputs) tea.Cmd {
	return func() tea.Msg {
		return ResultsMsg{Results: builder.BuildScenarios(context.Background(), inputs)}
	}
}
