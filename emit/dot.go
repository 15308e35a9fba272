package emit

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/archscope/depscope/core"
	"github.com/archscope/depscope/scoring"
)

// edgeRef identifies an edge by its (source,target,kind) key for overlay
// membership lookups, mirroring core's own edge identity.
type edgeRef struct {
	source, target string
	kind            core.ReferenceKind
}

// WriteDOT renders in as a Graphviz DOT digraph to w, per §4.7: every node
// declaration precedes the first edge that references it, vertices and
// edges are emitted in the graph's stable sorted order (making the output
// byte-for-byte deterministic for the same input), and legend clusters
// follow the main content. Returns warnings for missing or duplicate
// project scores.
func WriteDOT(w io.Writer, in DOTInput) ([]core.Warning, error) {
	var warnings []core.Warning
	var b strings.Builder

	if err := headerTemplate.Execute(&b, nil); err != nil {
		return warnings, fmt.Errorf("emit: render header: %w", err)
	}

	scoreByName, dupWarnings := indexScoresByName(in.Scores)
	warnings = append(warnings, dupWarnings...)

	cycleEdges := cycleEdgeSet(in.Graph, in.Cycles)
	topBreaks := topBreakEdgeSet(in.Recommendations, in.Graph)

	vertices := in.Graph.Vertices()
	for _, v := range vertices {
		line, w := nodeLine(v, in, scoreByName)
		if w != nil {
			warnings = append(warnings, *w)
		}
		b.WriteString(line)
	}
	b.WriteString("\n")

	for _, e := range in.Graph.Edges() {
		b.WriteString(edgeLine(in.Graph, e, cycleEdges, topBreaks))
	}
	b.WriteString("\n")

	writeLegends(&b, in)

	b.WriteString("}\n")

	if _, err := io.WriteString(w, b.String()); err != nil {
		return warnings, fmt.Errorf("emit: write dot: %w", err)
	}
	return warnings, nil
}

// indexScoresByName builds a first-wins lookup of ExtractionScore by
// project name, warning on every subsequent duplicate (§4.7).
func indexScoresByName(scores []scoring.ExtractionScore) (map[string]scoring.ExtractionScore, []core.Warning) {
	byName := make(map[string]scoring.ExtractionScore, len(scores))
	var warnings []core.Warning
	for _, s := range scores {
		name := s.Project.Name
		if _, exists := byName[name]; exists {
			warnings = append(warnings, core.Warning{
				Stage:   "emit",
				Project: name,
				Kind:    core.WarningDuplicateScore,
				Message: "duplicate extraction score for project name; first one wins",
			})
			continue
		}
		byName[name] = s
	}
	return byName, warnings
}

func nodeLine(v *core.Project, in DOTInput, scoreByName map[string]scoring.ExtractionScore) (string, *core.Warning) {
	fill, fontColor := "lightblue", "black"
	label := escapeIdentifier(v.Name)
	var warning *core.Warning

	if len(in.Scores) > 0 {
		s, ok := scoreByName[v.Name]
		if !ok {
			warning = &core.Warning{
				Stage:   "emit",
				Project: v.Name,
				Kind:    core.WarningMissingScore,
				Message: "no extraction score supplied for project; using default colour",
			}
		} else {
			fill, fontColor = categoryColor(s.Category)
			if in.ShowScoreLabels {
				label = escapeIdentifier(fmt.Sprintf("%s\nScore: %d", v.Name, roundHalfUp(s.FinalScore)))
			}
		}
	}

	return fmt.Sprintf("  %q [label=%q, fillcolor=%q, fontcolor=%q];\n", v.Path, label, fill, fontColor), warning
}

func categoryColor(c scoring.Category) (fill, fontColor string) {
	switch c {
	case scoring.Easy:
		return "lightgreen", "black"
	case scoring.Medium:
		return "yellow", "black"
	case scoring.Hard:
		return "lightcoral", "white"
	default:
		return "lightblue", "black"
	}
}

func edgeLine(g *core.Graph, e *core.Edge, cycleEdges, topBreaks map[edgeRef]bool) string {
	ref := edgeRef{source: e.Source, target: e.Target, kind: e.Kind}
	color, style := edgeColor(g, e, ref, cycleEdges, topBreaks)

	return fmt.Sprintf("  %q -> %q [color=%q, style=%q];\n", e.Source, e.Target, color, style)
}

// edgeColor implements §4.7's priority-ordered edge colouring: break
// suggestion > cycle membership > cross-solution > default.
func edgeColor(g *core.Graph, e *core.Edge, ref edgeRef, cycleEdges, topBreaks map[edgeRef]bool) (color, style string) {
	if topBreaks[ref] {
		return "yellow", "bold"
	}
	if cycleEdges[ref] {
		return "red", "bold"
	}
	if crossesSolutions(g, e) {
		return "blue", "solid"
	}
	return "black", "solid"
}

func crossesSolutions(g *core.Graph, e *core.Edge) bool {
	source := g.Vertex(e.Source)
	target := g.Vertex(e.Target)
	if source == nil || target == nil {
		return false
	}
	return source.SolutionName != "" && target.SolutionName != "" && source.SolutionName != target.SolutionName
}

func escapeIdentifier(s string) string {
	return strings.ReplaceAll(s, `"`, `\"`)
}

// roundHalfUp rounds v to the nearest integer, ties rounding up toward
// +Inf (§4.7's "standard round-half-up to integer").
func roundHalfUp(v float64) int {
	return int(math.Floor(v + 0.5))
}
