package scenario

import (
	"context"
	"sync"

	"github.com/wealthpath/nestegg/internal/calculation"
	"github.com/wealthpath/nestegg/internal/domain"
)

// SetBuilder runs the projection engine across the catalogue, producing the
// ordered scenario set consumed by comparison and rendering.
type SetBuilder struct {
	Engine *calculation.ProjectionEngine
}

// NewSetBuilder creates a set builder around the given engine. A nil engine
// gets a fresh default.
func NewSetBuilder(engine *calculation.ProjectionEngine) *SetBuilder {
	if engine == nil {
		engine = calculation.NewProjectionEngine()
	}
	return &SetBuilder{Engine: engine}
}

// BuildScenarios projects every catalogue entry against the same base inputs.
// The five computations are independent, so they run concurrently, each
// writing only its own slot; the returned order matches the catalogue, base
// case first. The set is rebuilt wholesale on every call; nothing is cached.
func (sb *SetBuilder) BuildScenarios(ctx context.Context, base domain.SimulationInputs) []domain.ScenarioResult {
	specs := Catalogue()
	results := make([]domain.ScenarioResult, len(specs))

	var wg sync.WaitGroup
	for i, spec := range specs {
		wg.Add(1)
		go func(i int, spec Spec) {
			defer wg.Done()
			results[i] = sb.Engine.Project(ctx, base, spec.Name, spec.Color, spec.Override)
		}(i, spec)
	}
	wg.Wait()

	return results
}

// FindByName returns the scenario with the given name from a built set, or
// false if no scenario carries it.
func FindByName(results []domain.ScenarioResult, name string) (domain.ScenarioResult, bool) {
	for _, r := range results {
		if r.Name == name {
			return r, true
		}
	}
	return domain.ScenarioResult{}, false
}
