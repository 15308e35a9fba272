package emit

import (
	"github.com/archscope/depscope/core"
	"github.com/archscope/depscope/cycles"
	"github.com/archscope/depscope/recommend"
	"github.com/archscope/depscope/scoring"
)

// DOTInput bundles everything the DOT Emitter needs, per §4.7. Cycles,
// Recommendations, and Scores are all optional (nil slices render a
// dependencies-only graph with default colouring).
type DOTInput struct {
	Graph           *core.Graph
	Cycles          []*cycles.Cycle
	Recommendations []recommend.BreakSuggestion
	Scores          []scoring.ExtractionScore
	ShowScoreLabels bool
}

// topBreakSuggestionCap is the §4.7 "break-suggestion cap": only the first
// 10 globally ranked recommendations may be coloured as break points.
const topBreakSuggestionCap = 10
