package emit

import (
	"github.com/archscope/depscope/core"
	"github.com/archscope/depscope/cycles"
	"github.com/archscope/depscope/recommend"
)

// cycleEdgeSet returns the set of every edge that lies inside any detected
// cycle (both endpoints in the same cycle's vertex set), for §4.7's "edge
// is inside any cycle" colouring rule. This is every internal edge of the
// SCC, not just its weak edges.
func cycleEdgeSet(g *core.Graph, detected []*cycles.Cycle) map[edgeRef]bool {
	set := make(map[edgeRef]bool)
	for _, c := range detected {
		members := c.Members()
		for _, p := range c.Projects {
			for _, e := range g.OutEdges(p.Path) {
				if _, ok := members[e.Target]; ok {
					set[edgeRef{source: e.Source, target: e.Target, kind: e.Kind}] = true
				}
			}
		}
	}
	return set
}

// topBreakEdgeSet returns the (source,target) pairs of the first
// topBreakSuggestionCap globally-ranked recommendations, resolved back to
// project paths via g, for §4.7's break-suggestion cap.
func topBreakEdgeSet(recommendations []recommend.BreakSuggestion, g *core.Graph) map[edgeRef]bool {
	set := make(map[edgeRef]bool)
	count := 0
	for _, r := range recommendations {
		if count >= topBreakSuggestionCap {
			break
		}
		sourcePath, ok1 := pathByName(g, r.SourceProject)
		targetPath, ok2 := pathByName(g, r.TargetProject)
		if !ok1 || !ok2 {
			continue
		}
		for _, e := range g.OutEdges(sourcePath) {
			if e.Target == targetPath {
				set[edgeRef{source: e.Source, target: e.Target, kind: e.Kind}] = true
			}
		}
		count++
	}
	return set
}

func pathByName(g *core.Graph, name string) (string, bool) {
	matches := g.VerticesByName(name)
	if len(matches) == 0 {
		return "", false
	}
	return matches[0].Path, true
}
