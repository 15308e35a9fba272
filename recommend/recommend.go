package recommend

import (
	"fmt"
	"sort"
	"strings"

	"github.com/archscope/depscope/core"
	"github.com/archscope/depscope/cycles"
)

// AnnotateWeakEdges populates WeakCouplingScore and WeakEdges on each cycle
// from the annotated graph g, per §4.5 steps 1-3. It returns a warning for
// any cycle whose internal edge set is unexpectedly empty (should not
// happen for a true SCC, but guarded defensively).
func AnnotateWeakEdges(g *core.Graph, detected []*cycles.Cycle) []core.Warning {
	var warnings []core.Warning

	for _, c := range detected {
		members := c.Members()
		var internal []*core.Edge
		for _, p := range c.Projects {
			for _, e := range g.OutEdges(p.Path) {
				if _, ok := members[e.Target]; ok {
					internal = append(internal, e)
				}
			}
		}

		if len(internal) == 0 {
			warnings = append(warnings, core.Warning{
				Stage:   "recommend",
				Kind:    core.WarningEmptyCycleEdgeSet,
				Message: fmt.Sprintf("cycle %d has no internal edges", c.ID),
			})
			continue
		}

		min := internal[0].CouplingScore
		for _, e := range internal {
			if e.CouplingScore < min {
				min = e.CouplingScore
			}
		}

		c.WeakCouplingScore = min
		c.WeakEdges = nil
		for _, e := range internal {
			if e.CouplingScore == min {
				c.WeakEdges = append(c.WeakEdges, e)
			}
		}
	}

	return warnings
}

// Recommend flattens every cycle's WeakEdges into globally-ranked
// BreakSuggestions per §4.5's three-key sort. AnnotateWeakEdges must have
// already populated WeakEdges on each cycle.
func Recommend(g *core.Graph, detected []*cycles.Cycle) []BreakSuggestion {
	var suggestions []BreakSuggestion

	for _, c := range detected {
		for _, e := range c.WeakEdges {
			source := g.Vertex(e.Source)
			target := g.Vertex(e.Target)
			if source == nil || target == nil {
				continue
			}
			suggestions = append(suggestions, BreakSuggestion{
				CycleID:       c.ID,
				SourceProject: source.Name,
				TargetProject: target.Name,
				CouplingScore: e.CouplingScore,
				CycleSize:     c.Size,
				Rationale:     rationale(e.CouplingScore, c.Size),
			})
		}
	}

	sort.SliceStable(suggestions, func(i, j int) bool {
		a, b := suggestions[i], suggestions[j]
		if a.CouplingScore != b.CouplingScore {
			return a.CouplingScore < b.CouplingScore
		}
		if a.CycleSize != b.CycleSize {
			return a.CycleSize > b.CycleSize
		}
		return strings.ToLower(a.SourceProject) < strings.ToLower(b.SourceProject)
	})

	for i := range suggestions {
		suggestions[i].Rank = i + 1
	}

	return suggestions
}

// rationale renders the §4.5 rationale-text table from a weak edge's
// coupling score and its cycle's size.
func rationale(score, cycleSize int) string {
	return fmt.Sprintf("Breaking this %s would resolve the cycle (%s).", cycleDescription(cycleSize), callCountDescription(score))
}

func cycleDescription(size int) string {
	switch {
	case size >= 10:
		return fmt.Sprintf("critical %d-project cycle", size)
	case size >= 6:
		return fmt.Sprintf("large %d-project cycle", size)
	case size >= 4:
		return fmt.Sprintf("%d-project cycle", size)
	default:
		return fmt.Sprintf("small %d-project cycle", size)
	}
}

func callCountDescription(score int) string {
	switch {
	case score == 1:
		return "only 1 method call"
	case score == 2:
		return "just 2 method calls"
	case score <= 5:
		return fmt.Sprintf("only %d method calls", score)
	default:
		return fmt.Sprintf("%d method calls", score)
	}
}
