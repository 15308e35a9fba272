package pipeline

import (
	"github.com/archscope/depscope/core"
	"github.com/archscope/depscope/coupling"
	"github.com/archscope/depscope/cycles"
	"github.com/archscope/depscope/recommend"
	"github.com/archscope/depscope/scoring"
)

// Result is the aggregate output of a full Run, per §5's seven-stage
// pipeline and §7's "success / success-with-warnings" distinction: Warnings
// is non-empty exactly for the latter.
type Result struct {
	Graph           *core.Graph
	FilteredGraph   *core.Graph
	Cycles          []*cycles.Cycle
	CycleStats      cycles.Statistics
	Signals         map[string]coupling.Signals
	Recommendations []recommend.BreakSuggestion
	Scores          []scoring.ExtractionScore
	ScoreStats      scoring.Statistics
	TopEasy         []scoring.ExtractionScore
	BottomHard      []scoring.ExtractionScore
	Warnings        []core.Warning

	// DOTSource, DOTFilename, and the three CSV byte slices are C7's
	// rendered output. Run always populates them (emission is a total
	// function, §8 invariant 6); writing them to disk is left to the
	// caller, matching the loader package's read-only-in/bytes-out shape.
	DOTSource           []byte
	DOTFilename         string
	ExtractionScoresCSV []byte
	CyclesCSV           []byte
	DependencyMatrixCSV []byte
}
