package pipeline

import (
	"bytes"
	"context"
	"fmt"

	"github.com/hashicorp/go-multierror"
	"github.com/sirupsen/logrus"

	"github.com/archscope/depscope/builder"
	"github.com/archscope/depscope/config"
	"github.com/archscope/depscope/core"
	"github.com/archscope/depscope/coupling"
	"github.com/archscope/depscope/cycles"
	"github.com/archscope/depscope/emit"
	"github.com/archscope/depscope/filter"
	"github.com/archscope/depscope/recommend"
	"github.com/archscope/depscope/scoring"
)

// Run executes the full seven-stage pipeline (C1–C7) over projects using
// cfg, using analyzer as the semantic-analysis backend (§1's "external
// collaborator" seam — pass coupling.NewFactAnalyzer(store) for the
// shipped default, or nil to skip semantic annotation entirely and score
// every project on its neutral fallbacks).
//
// Run returns a non-nil error wrapping ErrConfiguration or ErrInput for the
// two fatal outcomes in §7; any other condition is collected into
// Result.Warnings and the returned *multierror.Error, and Run still
// produces a complete Result (the "success-with-warnings" outcome).
// Cancelling ctx produces an error wrapping ErrCancelled and a nil Result;
// per §7, a cancelled run emits no DOT/CSV output.
func Run(ctx context.Context, projects []core.ProjectInfo, cfg config.Config, analyzer coupling.SemanticAnalyzer, log *logrus.Entry) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfiguration, err)
	}

	var allWarnings []core.Warning

	graph, buildWarnings, err := builder.BuildGraph(projects)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInput, err)
	}
	allWarnings = append(allWarnings, buildWarnings...)

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCancelled, err)
	}

	filtered := filter.Apply(graph, cfg.FrameworkFilters)

	detected := cycles.Detect(filtered)
	cycleStats := cycles.ComputeStatistics(filtered, detected)

	var signals map[string]coupling.Signals
	if analyzer != nil {
		s, analysisWarnings, err := coupling.AnalyzeAll(ctx, filtered, analyzer, log)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrCancelled, err)
		}
		signals = s
		allWarnings = append(allWarnings, analysisWarnings...)
		coupling.ApplyCoupling(filtered, signals)
	}

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCancelled, err)
	}

	weakEdgeWarnings := recommend.AnnotateWeakEdges(filtered, detected)
	allWarnings = append(allWarnings, weakEdgeWarnings...)
	recommendations := recommend.Recommend(filtered, detected)

	scores, scoreStats := scoring.Score(filtered, signals, cfg.ScoringWeights)
	sorted, topEasy, bottomHard := scoring.RankedCandidates(scores)

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCancelled, err)
	}

	var dotBuf, scoresBuf, cyclesBuf, matrixBuf bytes.Buffer
	emitWarnings, err := emit.WriteDOT(&dotBuf, emit.DOTInput{
		Graph:           filtered,
		Cycles:          detected,
		Recommendations: recommendations,
		Scores:          sorted,
		ShowScoreLabels: true,
	})
	if err != nil {
		return nil, fmt.Errorf("pipeline: emit dot: %w", err)
	}
	allWarnings = append(allWarnings, emitWarnings...)

	if err := emit.WriteExtractionScoresCSV(&scoresBuf, sorted); err != nil {
		return nil, fmt.Errorf("pipeline: emit extraction-scores.csv: %w", err)
	}
	if err := emit.WriteCyclesCSV(&cyclesBuf, detected, recommendations); err != nil {
		return nil, fmt.Errorf("pipeline: emit cycles.csv: %w", err)
	}
	if err := emit.WriteDependencyMatrixCSV(&matrixBuf, filtered); err != nil {
		return nil, fmt.Errorf("pipeline: emit dependency-matrix.csv: %w", err)
	}

	result := &Result{
		Graph:               graph,
		FilteredGraph:       filtered,
		Cycles:              detected,
		CycleStats:          cycleStats,
		Signals:             signals,
		Recommendations:     recommendations,
		Scores:              sorted,
		ScoreStats:          scoreStats,
		TopEasy:             topEasy,
		BottomHard:          bottomHard,
		Warnings:            allWarnings,
		DOTSource:           []byte(dotBuf.String()),
		DOTFilename:         emit.DOTFilename(filtered),
		ExtractionScoresCSV: scoresBuf.Bytes(),
		CyclesCSV:           cyclesBuf.Bytes(),
		DependencyMatrixCSV: matrixBuf.Bytes(),
	}

	return result, warningsError(allWarnings)
}

// warningsError folds a run's warnings into a single *multierror.Error for
// the "success-with-warnings" outcome, or nil when the run was clean.
func warningsError(warnings []core.Warning) error {
	if len(warnings) == 0 {
		return nil
	}
	var merr *multierror.Error
	for _, w := range warnings {
		merr = multierror.Append(merr, w)
	}
	return merr.ErrorOrNil()
}
