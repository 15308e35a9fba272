package recommend

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/archscope/depscope/core"
	"github.com/archscope/depscope/cycles"
)

func buildAnnotatedCycle(t *testing.T) (*core.Graph, []*cycles.Cycle) {
	t.Helper()
	g := core.NewGraph()
	for _, p := range []string{"a", "b", "c"} {
		require.NoError(t, g.AddVertex(&core.Project{Path: "/p/" + p, Name: capitalize(p)}))
	}
	require.NoError(t, g.AddEdge("/p/a", "/p/b", core.ProjectReferenceKind))
	require.NoError(t, g.AddEdge("/p/b", "/p/c", core.ProjectReferenceKind))
	require.NoError(t, g.AddEdge("/p/c", "/p/a", core.ProjectReferenceKind))

	require.NoError(t, g.SetCoupling("/p/a", "/p/b", core.ProjectReferenceKind, 2))
	require.NoError(t, g.SetCoupling("/p/b", "/p/c", core.ProjectReferenceKind, 10))
	require.NoError(t, g.SetCoupling("/p/c", "/p/a", core.ProjectReferenceKind, 2))

	found := cycles.Detect(g)
	require.Len(t, found, 1)
	return g, found
}

func capitalize(s string) string {
	if len(s) == 0 {
		return s
	}
	return string(s[0]-'a'+'A') + s[1:]
}

func TestAnnotateWeakEdges_FindsMinimumCouplingEdges(t *testing.T) {
	g, found := buildAnnotatedCycle(t)
	warnings := AnnotateWeakEdges(g, found)
	require.Empty(t, warnings)

	c := found[0]
	require.Equal(t, 2, c.WeakCouplingScore)
	require.Len(t, c.WeakEdges, 2)
}

func TestRecommend_S2_WeakEdgeRanking(t *testing.T) {
	g, found := buildAnnotatedCycle(t)
	AnnotateWeakEdges(g, found)

	suggestions := Recommend(g, found)
	require.Len(t, suggestions, 2)

	require.Equal(t, "A", suggestions[0].SourceProject)
	require.Equal(t, "B", suggestions[0].TargetProject)
	require.Equal(t, 1, suggestions[0].Rank)

	require.Equal(t, "C", suggestions[1].SourceProject)
	require.Equal(t, "A", suggestions[1].TargetProject)
	require.Equal(t, 2, suggestions[1].Rank)
}

func TestRationale_Table(t *testing.T) {
	require.Contains(t, rationale(1, 3), "only 1 method call")
	require.Contains(t, rationale(2, 3), "just 2 method calls")
	require.Contains(t, rationale(4, 5), "only 4 method calls")
	require.Contains(t, rationale(7, 3), "7 method calls")
	require.Contains(t, rationale(2, 12), "critical 12-project cycle")
	require.Contains(t, rationale(2, 7), "large 7-project cycle")
	require.Contains(t, rationale(2, 5), "5-project cycle")
	require.Contains(t, rationale(2, 2), "small 2-project cycle")
}

func TestAnnotateWeakEdges_RanksFormIntegerIntervalWithNoDuplicates(t *testing.T) {
	g, found := buildAnnotatedCycle(t)
	AnnotateWeakEdges(g, found)
	suggestions := Recommend(g, found)

	seen := make(map[int]bool)
	for _, s := range suggestions {
		require.False(t, seen[s.Rank])
		seen[s.Rank] = true
	}
	require.Len(t, seen, len(suggestions))
	for rank := 1; rank <= len(suggestions); rank++ {
		require.True(t, seen[rank], "rank %d missing from [1..N]", rank)
	}
}
