package coupling

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/archscope/depscope/core"
)

func buildGraph(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	require.NoError(t, g.AddVertex(&core.Project{Path: "/p/a", Name: "A"}))
	require.NoError(t, g.AddVertex(&core.Project{Path: "/p/b", Name: "B"}))
	require.NoError(t, g.AddVertex(&core.Project{Path: "/p/c", Name: "C"}))
	require.NoError(t, g.AddEdge("/p/a", "/p/b", core.ProjectReferenceKind))
	require.NoError(t, g.AddEdge("/p/b", "/p/c", core.ProjectReferenceKind))
	require.NoError(t, g.AddEdge("/p/c", "/p/a", core.ProjectReferenceKind))
	return g
}

func TestFactAnalyzer_AggregatesCallSitesByTargetAssembly(t *testing.T) {
	store := MapFactStore{
		"/p/a": {CallSites: []CallSite{{TargetAssembly: "B"}, {TargetAssembly: "B"}}},
	}
	a := NewFactAnalyzer(store)

	signals, err := a.Analyze(context.Background(), &core.Project{Path: "/p/a", Name: "A"})
	require.NoError(t, err)
	require.Equal(t, 2, signals.CallSitesByTargetAssembly["B"])
}

func TestFactAnalyzer_MissingFactsReturnsErrFactsUnavailable(t *testing.T) {
	a := NewFactAnalyzer(MapFactStore{})
	_, err := a.Analyze(context.Background(), &core.Project{Path: "/p/missing", Name: "X"})
	require.ErrorIs(t, err, ErrFactsUnavailable)
}

func TestFactAnalyzer_AvgComplexity(t *testing.T) {
	store := MapFactStore{
		"/p/a": {Units: []Unit{{DecisionPoints: 0}, {DecisionPoints: 4}}},
	}
	a := NewFactAnalyzer(store)
	signals, err := a.Analyze(context.Background(), &core.Project{Path: "/p/a", Name: "A"})
	require.NoError(t, err)
	require.InDelta(t, 3.0, signals.AvgCyclomaticComplexity, 1e-9) // (1 + 5) / 2
}

func TestAnalyzeAllAndApplyCoupling_SemanticWeightOverridesDefault(t *testing.T) {
	g := buildGraph(t)
	store := MapFactStore{
		"/p/a": {CallSites: []CallSite{{TargetAssembly: "B"}, {TargetAssembly: "B"}}},
		"/p/b": {CallSites: []CallSite{{TargetAssembly: "C"}}},
		"/p/c": {CallSites: []CallSite{{TargetAssembly: "A"}}},
	}
	analyzer := NewFactAnalyzer(store)

	signals, warnings, err := AnalyzeAll(context.Background(), g, analyzer, nil)
	require.NoError(t, err)
	require.Empty(t, warnings)

	ApplyCoupling(g, signals)

	for _, e := range g.Edges() {
		switch e.Source {
		case "/p/a":
			require.Equal(t, 2, e.CouplingScore)
		case "/p/b", "/p/c":
			require.Equal(t, 1, e.CouplingScore)
		}
	}
}

func TestAnalyzeAllAndApplyCoupling_FallsBackToDefaultAndWarnsWhenFactsUnavailable(t *testing.T) {
	g := buildGraph(t)
	analyzer := NewFactAnalyzer(MapFactStore{})

	signals, warnings, err := AnalyzeAll(context.Background(), g, analyzer, nil)
	require.NoError(t, err)
	require.Len(t, warnings, 3)
	require.Empty(t, signals)

	ApplyCoupling(g, signals)

	for _, e := range g.Edges() {
		require.Equal(t, 1, e.CouplingScore)
		require.Equal(t, core.Weak, e.CouplingStrength)
	}
}

func TestAnalyzeAll_RespectsCancellation(t *testing.T) {
	g := buildGraph(t)
	analyzer := NewFactAnalyzer(MapFactStore{})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err := AnalyzeAll(ctx, g, analyzer, nil)
	require.Error(t, err)
}
