package compare

import (
	"context"
	"fmt"

	"github.com/wealthpath/nestegg/internal/domain"
	"github.com/wealthpath/nestegg/internal/scenario"
)

// Engine builds a scenario set and compares every alternative against the
// base case.
type Engine struct {
	Builder           *scenario.SetBuilder
	MetricsCalculator *MetricsCalculator
}

// NewEngine creates a comparison engine around the given set builder.
func NewEngine(builder *scenario.SetBuilder) *Engine {
	return &Engine{
		Builder:           builder,
		MetricsCalculator: NewMetricsCalculator(),
	}
}

// Compare projects the full catalogue for the base inputs and computes the
// deltas of each alternative against the base case.
func (e *Engine) Compare(ctx context.Context, base domain.SimulationInputs) (*Set, error) {
	results := e.Builder.BuildScenarios(ctx, base)
	return e.CompareResults(results)
}

// CompareResults compares an already built scenario set. The base case is
// located by name; a set without one is malformed.
func (e *Engine) CompareResults(results []domain.ScenarioResult) (*Set, error) {
	baseScenario, ok := scenario.FindByName(results, scenario.BaseCaseName)
	if !ok {
		return nil, fmt.Errorf("scenario set has no %q entry", scenario.BaseCaseName)
	}

	baseResult := e.MetricsCalculator.CalculateMetrics(baseScenario)

	alternatives := make([]Result, 0, len(results)-1)
	for _, sr := range results {
		if sr.Name == scenario.BaseCaseName {
			continue
		}
		alt := e.MetricsCalculator.CalculateMetrics(sr)
		alt = e.MetricsCalculator.CalculateComparison(alt, baseResult)
		alternatives = append(alternatives, alt)
	}

	return &Set{
		BaseScenarioName:   scenario.BaseCaseName,
		BaseResult:         &baseResult,
		AlternativeResults: alternatives,
	}, nil
}
