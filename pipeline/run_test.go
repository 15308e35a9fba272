package pipeline

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/archscope/depscope/config"
	"github.com/archscope/depscope/core"
	"github.com/archscope/depscope/coupling"
)

func threeProjectCycle() []core.ProjectInfo {
	return []core.ProjectInfo{
		{
			Name: "A", FilePath: "/p/a", TargetFramework: "net6.0", SolutionName: "Sol",
			References: []core.Reference{{TargetName: "B", Kind: core.ProjectReferenceKind, TargetPath: "/p/b"}},
		},
		{
			Name: "B", FilePath: "/p/b", TargetFramework: "net6.0", SolutionName: "Sol",
			References: []core.Reference{{TargetName: "C", Kind: core.ProjectReferenceKind, TargetPath: "/p/c"}},
		},
		{
			Name: "C", FilePath: "/p/c", TargetFramework: "net6.0", SolutionName: "Sol",
			References: []core.Reference{{TargetName: "A", Kind: core.ProjectReferenceKind, TargetPath: "/p/a"}},
		},
	}
}

func TestRun_SuccessProducesCyclesScoresAndDOT(t *testing.T) {
	result, err := Run(context.Background(), threeProjectCycle(), config.Default(), nil, nil)
	require.NoError(t, err)
	require.Len(t, result.Cycles, 1)
	require.Len(t, result.Scores, 3)
	require.Equal(t, 3, result.ScoreStats.Total())
	require.NotEmpty(t, result.DOTSource)
	require.NotEmpty(t, result.ExtractionScoresCSV)
	require.NotEmpty(t, result.CyclesCSV)
	require.NotEmpty(t, result.DependencyMatrixCSV)
}

func TestRun_InvalidWeightsIsConfigurationError(t *testing.T) {
	cfg := config.Default()
	cfg.ScoringWeights.Coupling = 2.0
	_, err := Run(context.Background(), threeProjectCycle(), cfg, nil, nil)
	require.ErrorIs(t, err, ErrConfiguration)
}

func TestRun_DuplicatePathConflictingIdentityIsInputError(t *testing.T) {
	projects := []core.ProjectInfo{
		{Name: "A", FilePath: "/p/a", TargetFramework: "net6.0"},
		{Name: "Different", FilePath: "/p/a", TargetFramework: "net6.0"},
	}
	_, err := Run(context.Background(), projects, config.Default(), nil, nil)
	require.ErrorIs(t, err, ErrInput)
}

func TestRun_CancelledContextBeforeCallYieldsNoResult(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	result, err := Run(ctx, threeProjectCycle(), config.Default(), nil, nil)
	require.ErrorIs(t, err, ErrCancelled)
	require.Nil(t, result)
}

type alwaysDegradedAnalyzer struct{}

func (alwaysDegradedAnalyzer) Analyze(ctx context.Context, p *core.Project) (coupling.Signals, error) {
	return coupling.Signals{}, coupling.ErrFactsUnavailable
}

func TestRun_DegradedAnalysisYieldsSuccessWithWarnings(t *testing.T) {
	result, err := Run(context.Background(), threeProjectCycle(), config.Default(), alwaysDegradedAnalyzer{}, nil)
	require.Error(t, err) // success-with-warnings: non-nil multierror, not a fatal sentinel
	require.NotErrorIs(t, err, ErrConfiguration)
	require.NotErrorIs(t, err, ErrInput)
	require.NotErrorIs(t, err, ErrCancelled)
	require.NotEmpty(t, result.Warnings)
	require.Len(t, result.Scores, 3)
}
