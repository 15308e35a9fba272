package builder

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/archscope/depscope/core"
)

func TestBuildGraph_ResolvesProjectReferenceByPath(t *testing.T) {
	projects := []core.ProjectInfo{
		{Name: "A", FilePath: "/p/a.csproj", References: []core.Reference{
			{TargetName: "B", Kind: core.ProjectReferenceKind, TargetPath: "/p/b.csproj"},
		}},
		{Name: "B", FilePath: "/p/b.csproj"},
	}

	g, warnings, err := BuildGraph(projects)
	require.NoError(t, err)
	require.Empty(t, warnings)
	require.Equal(t, 2, g.VertexCount())
	require.True(t, g.HasEdge("/p/a.csproj", "/p/b.csproj", core.ProjectReferenceKind))
}

func TestBuildGraph_ResolvesProjectReferenceByNameFallback(t *testing.T) {
	projects := []core.ProjectInfo{
		{Name: "A", FilePath: "/p/a.csproj", References: []core.Reference{
			{TargetName: "B", Kind: core.ProjectReferenceKind},
		}},
		{Name: "B", FilePath: "/p/b.csproj"},
	}

	g, warnings, err := BuildGraph(projects)
	require.NoError(t, err)
	require.Empty(t, warnings)
	require.True(t, g.HasEdge("/p/a.csproj", "/p/b.csproj", core.ProjectReferenceKind))
}

func TestBuildGraph_UnresolvedAssemblyReferenceMaterializesSynthetic(t *testing.T) {
	projects := []core.ProjectInfo{
		{Name: "A", FilePath: "/p/a.csproj", References: []core.Reference{
			{TargetName: "Newtonsoft.Json", Kind: core.AssemblyReferenceKind},
		}},
	}

	g, warnings, err := BuildGraph(projects)
	require.NoError(t, err)
	require.Len(t, warnings, 1)
	require.Equal(t, core.WarningUnresolvedReference, warnings[0].Kind)
	require.Equal(t, 2, g.VertexCount())

	synthetic := g.VerticesByName("Newtonsoft.Json")
	require.Len(t, synthetic, 1)
	require.True(t, synthetic[0].Synthetic)
}

func TestBuildGraph_RepeatedUnresolvedNameCollapsesToOneSyntheticVertex(t *testing.T) {
	projects := []core.ProjectInfo{
		{Name: "A", FilePath: "/p/a.csproj", References: []core.Reference{
			{TargetName: "Newtonsoft.Json", Kind: core.AssemblyReferenceKind},
		}},
		{Name: "B", FilePath: "/p/b.csproj", References: []core.Reference{
			{TargetName: "Newtonsoft.Json", Kind: core.AssemblyReferenceKind},
		}},
	}

	g, _, err := BuildGraph(projects)
	require.NoError(t, err)
	require.Len(t, g.VerticesByName("Newtonsoft.Json"), 1)
}

func TestBuildGraph_DuplicatePathAcrossSolutionsCollapsesAndKeepsFirstSolution(t *testing.T) {
	projects := []core.ProjectInfo{
		{Name: "Shared", FilePath: "/p/shared.csproj", SolutionName: "Sln1"},
		{Name: "Shared", FilePath: "/p/shared.csproj", SolutionName: "Sln2"},
	}

	g, _, err := BuildGraph(projects)
	require.NoError(t, err)
	require.Equal(t, 1, g.VertexCount())
	require.Equal(t, "Sln1", g.Vertex("/p/shared.csproj").SolutionName)
}

func TestBuildGraph_ConflictingIdentityIsHardError(t *testing.T) {
	projects := []core.ProjectInfo{
		{Name: "Alpha", FilePath: "/p/shared.csproj"},
		{Name: "Beta", FilePath: "/p/shared.csproj"},
	}

	_, _, err := BuildGraph(projects)
	require.ErrorIs(t, err, ErrConflictingIdentity)
}

func TestBuildGraph_EmptyProjectNameIsHardError(t *testing.T) {
	projects := []core.ProjectInfo{{Name: "", FilePath: "/p/a.csproj"}}

	_, _, err := BuildGraph(projects)
	require.ErrorIs(t, err, ErrEmptyProjectName)
}

func TestBuildGraph_SelfReferenceIsWarningNotFatal(t *testing.T) {
	projects := []core.ProjectInfo{
		{Name: "A", FilePath: "/p/a.csproj", References: []core.Reference{
			{TargetName: "A", Kind: core.ProjectReferenceKind, TargetPath: "/p/a.csproj"},
		}},
	}

	g, warnings, err := BuildGraph(projects)
	require.NoError(t, err)
	require.Len(t, warnings, 1)
	require.Equal(t, 0, g.EdgeCount())
}
